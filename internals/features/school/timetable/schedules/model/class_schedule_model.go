// file: internals/features/school/timetable/schedules/model/class_schedule_model.go
package model

import (
	"time"

	gradeModel "timetable_backend/internals/features/school/academics/gradelevels/model"
	respModel "timetable_backend/internals/features/school/academics/responsibilities/model"
	roomModel "timetable_backend/internals/features/school/academics/rooms/model"
	subjectModel "timetable_backend/internals/features/school/academics/subjects/model"
)

/* =======================================================
   LockKind — explicit discriminant for locked entries.

   Set at creation/resolution time, never inferred from
   subject names.
   ======================================================= */

type LockKind string

const (
	LockNone     LockKind = "NONE"
	LockSubject  LockKind = "SUBJECT"
	LockLunch    LockKind = "LUNCH"
	LockActivity LockKind = "ACTIVITY"
	LockAssembly LockKind = "ASSEMBLY"
	LockExam     LockKind = "EXAM"
	LockOther    LockKind = "OTHER"
)

func (k LockKind) Valid() bool {
	switch k {
	case LockNone, LockSubject, LockLunch, LockActivity, LockAssembly, LockExam, LockOther:
		return true
	}
	return false
}

/* =======================================================
   ClassScheduleModel — maps to table class_schedules

   ClassID is derived from (timeslot_id, subject_code,
   grade_id) so re-creating the same placement always
   lands on the same row.
   ======================================================= */

type ClassScheduleModel struct {
	ClassID     string   `json:"class_id" gorm:"type:text;primaryKey;column:class_id"`
	TimeslotID  string   `json:"timeslot_id" gorm:"type:text;column:timeslot_id;not null;index"`
	SubjectCode string   `json:"subject_code" gorm:"type:text;column:subject_code;not null"`
	GradeID     string   `json:"grade_id" gorm:"type:text;column:grade_id;not null;index"`
	RoomID      *int     `json:"room_id,omitempty" gorm:"column:room_id"`
	IsLocked    bool     `json:"is_locked" gorm:"column:is_locked;not null;default:false"`
	LockKind    LockKind `json:"lock_kind" gorm:"type:text;column:lock_kind;not null;default:NONE"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;not null;autoUpdateTime"`

	Subject *subjectModel.SubjectModel  `json:"subject,omitempty" gorm:"foreignKey:SubjectCode;references:SubjectCode"`
	Grade   *gradeModel.GradeLevelModel `json:"grade,omitempty" gorm:"foreignKey:GradeID;references:GradeID"`
	Room    *roomModel.RoomModel        `json:"room,omitempty" gorm:"foreignKey:RoomID;references:RoomID"`

	Responsibilities []respModel.TeachersResponsibilityModel `json:"responsibilities,omitempty" gorm:"many2many:class_schedule_resps;joinForeignKey:ClassScheduleID;joinReferences:RespID"`
}

func (ClassScheduleModel) TableName() string {
	return "class_schedules"
}
