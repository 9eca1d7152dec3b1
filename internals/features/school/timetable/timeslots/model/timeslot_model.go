// file: internals/features/school/timetable/timeslots/model/timeslot_model.go
package model

import (
	"time"

	"timetable_backend/internals/constants"
)

/* =======================================================
   Breaktime — closed set of break classifications
   ======================================================= */

type Breaktime string

const (
	NotBreak    Breaktime = "NOT_BREAK"
	BreakJunior Breaktime = "BREAK_JUNIOR"
	BreakSenior Breaktime = "BREAK_SENIOR"
	BreakBoth   Breaktime = "BREAK_BOTH"
)

func (b Breaktime) IsBreak() bool {
	return b != NotBreak && b != ""
}

/* =======================================================
   TimeslotModel — maps to table timeslots

   TimeslotID encodes the term, day and period, e.g.
   "1/2567-MON3". Downstream consumers parse the day and
   trailing period number back out of it.
   ======================================================= */

type TimeslotModel struct {
	TimeslotID   string             `json:"timeslot_id" gorm:"type:text;primaryKey;column:timeslot_id"`
	AcademicYear int                `json:"academic_year" gorm:"column:academic_year;not null;index:idx_timeslot_term"`
	Semester     constants.Semester `json:"semester" gorm:"type:text;column:semester;not null;index:idx_timeslot_term"`
	DayOfWeek    string             `json:"day_of_week" gorm:"type:text;column:day_of_week;not null"`
	StartTime    string             `json:"start_time" gorm:"type:text;column:start_time;not null"`
	EndTime      string             `json:"end_time" gorm:"type:text;column:end_time;not null"`
	Breaktime    Breaktime          `json:"breaktime" gorm:"type:text;column:breaktime;not null;default:NOT_BREAK"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (TimeslotModel) TableName() string {
	return "timeslots"
}
