// file: internals/features/school/timetable/schedules/dto/schedule_dto.go
package dto

import (
	"strings"

	"timetable_backend/internals/features/school/timetable/schedules/service"
)

// ValidateDropRequest is one prospective drag-and-drop placement.
type ValidateDropRequest struct {
	TimeslotID    string `json:"timeslot_id" validate:"required"`
	SubjectCode   string `json:"subject_code" validate:"required,max=20"`
	GradeID       string `json:"grade_id" validate:"required,max=20"`
	RoomID        *int   `json:"room_id,omitempty" validate:"omitempty,gt=0"`
	TeacherIDs    []int  `json:"teacher_ids" validate:"dive,gt=0"`
	IgnoreClassID string `json:"ignore_class_id,omitempty"`
}

func (r *ValidateDropRequest) Normalize() {
	r.TimeslotID = strings.TrimSpace(r.TimeslotID)
	r.SubjectCode = strings.ToUpper(strings.TrimSpace(r.SubjectCode))
	r.GradeID = strings.ToUpper(strings.TrimSpace(r.GradeID))
}

func (r *ValidateDropRequest) ToPlacement() service.Placement {
	return service.Placement{
		TimeslotID:    r.TimeslotID,
		SubjectCode:   r.SubjectCode,
		GradeID:       r.GradeID,
		RoomID:        r.RoomID,
		TeacherIDs:    r.TeacherIDs,
		IgnoreClassID: r.IgnoreClassID,
	}
}
