// file: internals/features/school/timetable/locks/service/lock_scheduler.go
package service

import (
	"fmt"

	scheduleModel "timetable_backend/internals/features/school/timetable/schedules/model"
	"timetable_backend/internals/helpers/errs"
)

/* =======================================================
   Lock expansion — pure, no I/O.

   A lock request fans out over timeslots × grades; every
   produced entry shares the same room, subject and
   teacher set because a lock is one recurring activity
   supervised by the same staff across all its slots.
   ======================================================= */

// LockSpec is one lock request, either user-supplied or produced by
// template resolution.
type LockSpec struct {
	SubjectCode       string                 `json:"subject_code"`
	RoomID            *int                   `json:"room_id,omitempty"`
	TimeslotIDs       []string               `json:"timeslot_ids"`
	GradeIDs          []string               `json:"grade_ids"`
	ResponsibilityIDs []int                  `json:"responsibility_ids"`
	Kind              scheduleModel.LockKind `json:"kind"`
}

// DeriveClassID builds the deterministic lock identity. The same
// (timeslot, subject, grade) triple always maps to the same id, so
// re-applying a template upserts instead of duplicating.
func DeriveClassID(timeslotID, subjectCode, gradeID string) string {
	return fmt.Sprintf("%s-%s-%s", timeslotID, subjectCode, gradeID)
}

// BuildLocks expands one spec into concrete schedule entries. Output
// order is outer timeslots, inner grades, so the result is
// reproducible. Exactly len(TimeslotIDs)*len(GradeIDs) entries.
func BuildLocks(spec LockSpec) ([]scheduleModel.ClassScheduleModel, error) {
	if spec.SubjectCode == "" {
		return nil, errs.NewValidation("subject_code", "Subject code is required")
	}
	if len(spec.TimeslotIDs) == 0 {
		return nil, errs.NewValidation("timeslot_ids", "Timeslot list must not be empty")
	}
	if len(spec.GradeIDs) == 0 {
		return nil, errs.NewValidation("grade_ids", "Grade list must not be empty")
	}
	if len(spec.ResponsibilityIDs) == 0 {
		return nil, errs.NewValidation("responsibility_ids", "Responsibility list must not be empty")
	}
	kind := spec.Kind
	if kind == "" {
		kind = scheduleModel.LockOther
	}
	if !kind.Valid() {
		return nil, errs.NewValidation("kind", fmt.Sprintf("Unknown lock kind %q", spec.Kind))
	}

	entries := make([]scheduleModel.ClassScheduleModel, 0, len(spec.TimeslotIDs)*len(spec.GradeIDs))
	for _, tsID := range spec.TimeslotIDs {
		for _, gradeID := range spec.GradeIDs {
			entries = append(entries, scheduleModel.ClassScheduleModel{
				ClassID:     DeriveClassID(tsID, spec.SubjectCode, gradeID),
				TimeslotID:  tsID,
				SubjectCode: spec.SubjectCode,
				GradeID:     gradeID,
				RoomID:      spec.RoomID,
				IsLocked:    true,
				LockKind:    kind,
			})
		}
	}
	return entries, nil
}

// LinkRow is one teacher link a lock entry should carry.
type LinkRow struct {
	ClassScheduleID string
	RespID          int
}

// LinkRows expands specs into the exact teacher-link set their entries
// carry after a write. Re-applying a spec replaces the links, it never
// adds to them, so callers prune existing rows for the same class ids
// in the same transaction before inserting these.
func LinkRows(specs []LockSpec) []LinkRow {
	var rows []LinkRow
	for _, spec := range specs {
		for _, tsID := range spec.TimeslotIDs {
			for _, gradeID := range spec.GradeIDs {
				classID := DeriveClassID(tsID, spec.SubjectCode, gradeID)
				for _, respID := range spec.ResponsibilityIDs {
					rows = append(rows, LinkRow{ClassScheduleID: classID, RespID: respID})
				}
			}
		}
	}
	return rows
}

// BuildBulkLocks expands several specs as one logical unit: any
// invalid spec fails the whole batch before anything is returned, so
// the caller can write the result in a single transaction.
func BuildBulkLocks(specs []LockSpec) ([]scheduleModel.ClassScheduleModel, error) {
	if len(specs) == 0 {
		return nil, errs.NewValidation("locks", "Lock list must not be empty")
	}
	var all []scheduleModel.ClassScheduleModel
	for i, spec := range specs {
		entries, err := BuildLocks(spec)
		if err != nil {
			if ae, ok := err.(*errs.AppError); ok {
				return nil, errs.NewValidation(
					fmt.Sprintf("locks[%d].%s", i, ae.Field), ae.Message)
			}
			return nil, err
		}
		all = append(all, entries...)
	}
	return all, nil
}
