// file: internals/features/school/timetable/locks/model/lock_template_model.go
package model

import (
	"time"

	"gorm.io/datatypes"

	scheduleModel "timetable_backend/internals/features/school/timetable/schedules/model"
)

/* =======================================================
   GradeFilter — which grades a template spans
   ======================================================= */

type GradeFilter string

const (
	GradesAll      GradeFilter = "ALL"
	GradesJunior   GradeFilter = "JUNIOR"
	GradesSenior   GradeFilter = "SENIOR"
	GradesSpecific GradeFilter = "SPECIFIC"
)

func (f GradeFilter) Valid() bool {
	switch f {
	case GradesAll, GradesJunior, GradesSenior, GradesSpecific:
		return true
	}
	return false
}

// BreakSelector picks timeslots by their break classification instead
// of day/period lists, so lunch templates follow whatever periods the
// term config marked as breaks.
type BreakSelector string

const (
	BreakSelectNone   BreakSelector = ""
	BreakSelectJunior BreakSelector = "JUNIOR"
	BreakSelectSenior BreakSelector = "SENIOR"
)

/* =======================================================
   LockTemplateModel — maps to table lock_templates

   Custom operator-defined templates. The builtin catalog
   lives in the service layer and never touches this
   table.
   ======================================================= */

type LockTemplateModel struct {
	TemplateID  string                 `json:"template_id" gorm:"type:uuid;primaryKey;column:template_id;default:gen_random_uuid()"`
	Name        string                 `json:"name" gorm:"type:text;not null;column:name"`
	Kind        scheduleModel.LockKind `json:"kind" gorm:"type:text;not null;column:kind"`
	SubjectCode string                 `json:"subject_code" gorm:"type:text;not null;column:subject_code"`
	RoomName    *string                `json:"room_name,omitempty" gorm:"type:text;column:room_name"`
	GradeFilter GradeFilter            `json:"grade_filter" gorm:"type:text;not null;default:ALL;column:grade_filter"`
	SelectBreak BreakSelector          `json:"select_break,omitempty" gorm:"type:text;column:select_break"`

	// JSON arrays: grade ids (SPECIFIC filter), day codes and period
	// numbers for the timeslot selector.
	GradeIDs datatypes.JSON `json:"grade_ids,omitempty" gorm:"type:jsonb;column:grade_ids"`
	Days     datatypes.JSON `json:"days,omitempty" gorm:"type:jsonb;column:days"`
	Periods  datatypes.JSON `json:"periods,omitempty" gorm:"type:jsonb;column:periods"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (LockTemplateModel) TableName() string {
	return "lock_templates"
}
