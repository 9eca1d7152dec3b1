// file: internals/constants/term.go
package constants

import "fmt"

/* =======================================================
   Academic term — (AcademicYear, Semester) pair
   ======================================================= */

type Semester string

const (
	Semester1 Semester = "SEMESTER_1"
	Semester2 Semester = "SEMESTER_2"
)

func (s Semester) Valid() bool {
	return s == Semester1 || s == Semester2
}

// Digit returns the single-character form used inside identifier
// encodings, e.g. "1" for SEMESTER_1.
func (s Semester) Digit() string {
	if s == Semester2 {
		return "2"
	}
	return "1"
}

// ParseSemesterParam accepts the URL form ("1", "2") or the enum form.
func ParseSemesterParam(raw string) (Semester, error) {
	switch raw {
	case "1", string(Semester1):
		return Semester1, nil
	case "2", string(Semester2):
		return Semester2, nil
	}
	return "", fmt.Errorf("invalid semester %q (want 1 or 2)", raw)
}

// ConfigID is the canonical term-config key, e.g. "1-2567".
func ConfigID(academicYear int, s Semester) string {
	return fmt.Sprintf("%s-%d", s.Digit(), academicYear)
}
