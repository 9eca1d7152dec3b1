// file: internals/features/school/timetable/schedules/service/conflict_detector.go
package service

import (
	"fmt"
	"sort"

	tsService "timetable_backend/internals/features/school/timetable/timeslots/service"
)

/* =======================================================
   Conflict detection — pure, read-only.

   Input is the term's flattened schedule entries; output
   is a report value, never an error. The controller
   fetches and flattens rows, this package only groups
   and classifies them.
   ======================================================= */

type TeacherRef struct {
	TeacherID int    `json:"teacher_id"`
	Name      string `json:"name"`
}

// ScheduleEntry is one class_schedules row denormalized with subject,
// room and teacher names so conflict output is directly displayable.
type ScheduleEntry struct {
	ClassID     string       `json:"class_id"`
	TimeslotID  string       `json:"timeslot_id"`
	SubjectCode string       `json:"subject_code"`
	SubjectName string       `json:"subject_name"`
	GradeID     string       `json:"grade_id"`
	RoomID      *int         `json:"room_id,omitempty"`
	RoomName    string       `json:"room_name,omitempty"`
	IsLocked    bool         `json:"is_locked"`
	Teachers    []TeacherRef `json:"teachers"`
}

type ConflictEntry struct {
	ClassID      string   `json:"class_id"`
	SubjectCode  string   `json:"subject_code"`
	SubjectName  string   `json:"subject_name"`
	GradeID      string   `json:"grade_id"`
	RoomName     string   `json:"room_name,omitempty"`
	TeacherNames []string `json:"teacher_names,omitempty"`
}

type TeacherConflict struct {
	TeacherID   int             `json:"teacher_id"`
	TeacherName string          `json:"teacher_name"`
	TimeslotID  string          `json:"timeslot_id"`
	Entries     []ConflictEntry `json:"entries"`
}

type RoomConflict struct {
	RoomID     int             `json:"room_id"`
	RoomName   string          `json:"room_name"`
	TimeslotID string          `json:"timeslot_id"`
	Entries    []ConflictEntry `json:"entries"`
}

type ClassConflict struct {
	GradeID    string          `json:"grade_id"`
	TimeslotID string          `json:"timeslot_id"`
	Entries    []ConflictEntry `json:"entries"`
}

// MissingResource tags what an unassigned entry lacks.
type MissingResource string

const (
	MissingTeacher MissingResource = "TEACHER"
	MissingRoom    MissingResource = "ROOM"
	MissingBoth    MissingResource = "BOTH"
)

type UnassignedSchedule struct {
	ClassID     string          `json:"class_id"`
	TimeslotID  string          `json:"timeslot_id"`
	SubjectCode string          `json:"subject_code"`
	SubjectName string          `json:"subject_name"`
	GradeID     string          `json:"grade_id"`
	Missing     MissingResource `json:"missing"`
}

type ConflictSummary struct {
	TeacherConflicts []TeacherConflict    `json:"teacher_conflicts"`
	RoomConflicts    []RoomConflict       `json:"room_conflicts"`
	ClassConflicts   []ClassConflict      `json:"class_conflicts"`
	Unassigned       []UnassignedSchedule `json:"unassigned_schedules"`
	TotalConflicts   int                  `json:"total_conflicts"`
}

func toConflictEntry(e ScheduleEntry) ConflictEntry {
	names := make([]string, 0, len(e.Teachers))
	for _, t := range e.Teachers {
		names = append(names, t.Name)
	}
	return ConflictEntry{
		ClassID:      e.ClassID,
		SubjectCode:  e.SubjectCode,
		SubjectName:  e.SubjectName,
		GradeID:      e.GradeID,
		RoomName:     e.RoomName,
		TeacherNames: names,
	}
}

// Detect classifies every resource collision and unassigned entry in a
// term. Grouping is one pass per resource kind; output order follows
// timeslot order then resource id so reports are stable.
func Detect(entries []ScheduleEntry) ConflictSummary {
	type teacherKey struct {
		teacherID  int
		timeslotID string
	}
	type roomKey struct {
		roomID     int
		timeslotID string
	}
	type classKey struct {
		gradeID    string
		timeslotID string
	}

	teacherGroups := map[teacherKey][]ScheduleEntry{}
	teacherNames := map[int]string{}
	roomGroups := map[roomKey][]ScheduleEntry{}
	classGroups := map[classKey][]ScheduleEntry{}

	summary := ConflictSummary{
		TeacherConflicts: []TeacherConflict{},
		RoomConflicts:    []RoomConflict{},
		ClassConflicts:   []ClassConflict{},
		Unassigned:       []UnassignedSchedule{},
	}

	for _, e := range entries {
		for _, t := range e.Teachers {
			teacherGroups[teacherKey{t.TeacherID, e.TimeslotID}] = append(
				teacherGroups[teacherKey{t.TeacherID, e.TimeslotID}], e)
			teacherNames[t.TeacherID] = t.Name
		}
		if e.RoomID != nil {
			roomGroups[roomKey{*e.RoomID, e.TimeslotID}] = append(
				roomGroups[roomKey{*e.RoomID, e.TimeslotID}], e)
		}
		classGroups[classKey{e.GradeID, e.TimeslotID}] = append(
			classGroups[classKey{e.GradeID, e.TimeslotID}], e)

		noTeacher := len(e.Teachers) == 0
		noRoom := e.RoomID == nil
		if noTeacher || noRoom {
			missing := MissingTeacher
			switch {
			case noTeacher && noRoom:
				missing = MissingBoth
			case noRoom:
				missing = MissingRoom
			}
			summary.Unassigned = append(summary.Unassigned, UnassignedSchedule{
				ClassID:     e.ClassID,
				TimeslotID:  e.TimeslotID,
				SubjectCode: e.SubjectCode,
				SubjectName: e.SubjectName,
				GradeID:     e.GradeID,
				Missing:     missing,
			})
		}
	}

	teacherKeys := make([]teacherKey, 0, len(teacherGroups))
	for k, g := range teacherGroups {
		if len(g) > 1 {
			teacherKeys = append(teacherKeys, k)
		}
	}
	sort.Slice(teacherKeys, func(i, j int) bool {
		if c := compareTimeslotIDs(teacherKeys[i].timeslotID, teacherKeys[j].timeslotID); c != 0 {
			return c < 0
		}
		return teacherKeys[i].teacherID < teacherKeys[j].teacherID
	})
	for _, k := range teacherKeys {
		summary.TeacherConflicts = append(summary.TeacherConflicts, TeacherConflict{
			TeacherID:   k.teacherID,
			TeacherName: teacherNames[k.teacherID],
			TimeslotID:  k.timeslotID,
			Entries:     conflictEntries(teacherGroups[k]),
		})
	}

	roomKeys := make([]roomKey, 0, len(roomGroups))
	for k, g := range roomGroups {
		if len(g) > 1 {
			roomKeys = append(roomKeys, k)
		}
	}
	sort.Slice(roomKeys, func(i, j int) bool {
		if c := compareTimeslotIDs(roomKeys[i].timeslotID, roomKeys[j].timeslotID); c != 0 {
			return c < 0
		}
		return roomKeys[i].roomID < roomKeys[j].roomID
	})
	for _, k := range roomKeys {
		g := roomGroups[k]
		summary.RoomConflicts = append(summary.RoomConflicts, RoomConflict{
			RoomID:     k.roomID,
			RoomName:   g[0].RoomName,
			TimeslotID: k.timeslotID,
			Entries:    conflictEntries(g),
		})
	}

	classKeys := make([]classKey, 0, len(classGroups))
	for k, g := range classGroups {
		if len(g) > 1 {
			classKeys = append(classKeys, k)
		}
	}
	sort.Slice(classKeys, func(i, j int) bool {
		if c := compareTimeslotIDs(classKeys[i].timeslotID, classKeys[j].timeslotID); c != 0 {
			return c < 0
		}
		return classKeys[i].gradeID < classKeys[j].gradeID
	})
	for _, k := range classKeys {
		summary.ClassConflicts = append(summary.ClassConflicts, ClassConflict{
			GradeID:    k.gradeID,
			TimeslotID: k.timeslotID,
			Entries:    conflictEntries(classGroups[k]),
		})
	}

	sort.Slice(summary.Unassigned, func(i, j int) bool {
		if c := compareTimeslotIDs(summary.Unassigned[i].TimeslotID, summary.Unassigned[j].TimeslotID); c != 0 {
			return c < 0
		}
		return summary.Unassigned[i].ClassID < summary.Unassigned[j].ClassID
	})

	summary.TotalConflicts = len(summary.TeacherConflicts) +
		len(summary.RoomConflicts) + len(summary.ClassConflicts)
	return summary
}

// DetectForTeacher returns entries at the teacher's occupied timeslots
// that involve other teachers, for a single-teacher conflict view.
func DetectForTeacher(entries []ScheduleEntry, teacherID int) []ScheduleEntry {
	occupied := map[string]bool{}
	for _, e := range entries {
		for _, t := range e.Teachers {
			if t.TeacherID == teacherID {
				occupied[e.TimeslotID] = true
			}
		}
	}

	var out []ScheduleEntry
	for _, e := range entries {
		if !occupied[e.TimeslotID] {
			continue
		}
		for _, t := range e.Teachers {
			if t.TeacherID != teacherID {
				out = append(out, e)
				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if c := compareTimeslotIDs(out[i].TimeslotID, out[j].TimeslotID); c != 0 {
			return c < 0
		}
		return out[i].ClassID < out[j].ClassID
	})
	return out
}

/* =======================================================
   Placement checking — drag-and-drop validation
   ======================================================= */

type PlacementReason string

const (
	ReasonLocked             PlacementReason = "SLOT_LOCKED"
	ReasonTeacherNotAssigned PlacementReason = "TEACHER_NOT_ASSIGNED"
	ReasonClassBusy          PlacementReason = "CLASS_BUSY"
	ReasonTeacherBusy        PlacementReason = "TEACHER_BUSY"
	ReasonRoomBusy           PlacementReason = "ROOM_BUSY"
)

type ResponsibilityRef struct {
	TeacherID   int
	SubjectCode string
	GradeID     string
}

type Placement struct {
	TimeslotID  string
	SubjectCode string
	GradeID     string
	RoomID      *int
	TeacherIDs  []int
	// IgnoreClassID excludes the entry being moved from the checks.
	IgnoreClassID string
}

type PlacementIssue struct {
	Reason             PlacementReason `json:"reason"`
	Message            string          `json:"message"`
	ConflictingClassID string          `json:"conflicting_class_id,omitempty"`
}

// CheckPlacement validates one prospective placement against the
// current term. Checks run in severity order and the first hit wins:
// locked slot, teacher not assigned to the subject/grade, class busy,
// teacher busy, room busy. A nil result means the drop is allowed.
func CheckPlacement(entries []ScheduleEntry, resps []ResponsibilityRef, p Placement) *PlacementIssue {
	var atSlot []ScheduleEntry
	for _, e := range entries {
		if e.TimeslotID == p.TimeslotID && e.ClassID != p.IgnoreClassID {
			atSlot = append(atSlot, e)
		}
	}

	for _, e := range atSlot {
		if e.IsLocked && e.GradeID == p.GradeID {
			return &PlacementIssue{
				Reason:             ReasonLocked,
				Message:            fmt.Sprintf("Timeslot %s is locked for grade %s", p.TimeslotID, p.GradeID),
				ConflictingClassID: e.ClassID,
			}
		}
	}

	assigned := map[int]bool{}
	for _, r := range resps {
		if r.SubjectCode == p.SubjectCode && r.GradeID == p.GradeID {
			assigned[r.TeacherID] = true
		}
	}
	for _, tid := range p.TeacherIDs {
		if !assigned[tid] {
			return &PlacementIssue{
				Reason:  ReasonTeacherNotAssigned,
				Message: fmt.Sprintf("Teacher %d is not assigned to teach %s for grade %s", tid, p.SubjectCode, p.GradeID),
			}
		}
	}

	for _, e := range atSlot {
		if e.GradeID == p.GradeID {
			return &PlacementIssue{
				Reason:             ReasonClassBusy,
				Message:            fmt.Sprintf("Grade %s already has a class at %s", p.GradeID, p.TimeslotID),
				ConflictingClassID: e.ClassID,
			}
		}
	}

	for _, e := range atSlot {
		for _, t := range e.Teachers {
			for _, tid := range p.TeacherIDs {
				if t.TeacherID == tid {
					return &PlacementIssue{
						Reason:             ReasonTeacherBusy,
						Message:            fmt.Sprintf("Teacher %s is already teaching at %s", t.Name, p.TimeslotID),
						ConflictingClassID: e.ClassID,
					}
				}
			}
		}
	}

	if p.RoomID != nil {
		for _, e := range atSlot {
			if e.RoomID != nil && *e.RoomID == *p.RoomID {
				return &PlacementIssue{
					Reason:             ReasonRoomBusy,
					Message:            fmt.Sprintf("Room %s is occupied at %s", e.RoomName, p.TimeslotID),
					ConflictingClassID: e.ClassID,
				}
			}
		}
	}

	return nil
}

func conflictEntries(group []ScheduleEntry) []ConflictEntry {
	sort.Slice(group, func(i, j int) bool { return group[i].ClassID < group[j].ClassID })
	out := make([]ConflictEntry, 0, len(group))
	for _, e := range group {
		out = append(out, toConflictEntry(e))
	}
	return out
}

var dayRank = map[string]int{
	"MON": 0, "TUE": 1, "WED": 2, "THU": 3, "FRI": 4, "SAT": 5, "SUN": 6,
}

// compareTimeslotIDs orders ids by day then period, matching the
// canonical timeslot sort.
func compareTimeslotIDs(a, b string) int {
	da, db := dayRank[tsService.ParseDay(a)], dayRank[tsService.ParseDay(b)]
	if da != db {
		return da - db
	}
	if pa, pb := tsService.ParsePeriod(a), tsService.ParsePeriod(b); pa != pb {
		return pa - pb
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
