// file: internals/features/school/timetable/timeslots/dto/timeslot_dto.go
package dto

import (
	"strings"

	"timetable_backend/internals/constants"
	"timetable_backend/internals/features/school/timetable/timeslots/service"
)

type MiniBreakConfig struct {
	SlotNumber int `json:"slot_number" validate:"required,gt=0"`
	Duration   int `json:"duration" validate:"required,gt=0,lte=120"`
}

type BreakPeriods struct {
	Junior int `json:"junior" validate:"gte=0"`
	Senior int `json:"senior" validate:"gte=0"`
}

type GenerateTimeslotsRequest struct {
	AcademicYear   int              `json:"academic_year" validate:"required,gte=2500,lte=2700"`
	Semester       string           `json:"semester" validate:"required"`
	Days           []string         `json:"days" validate:"required,min=1,dive,oneof=MON TUE WED THU FRI SAT SUN"`
	TimeslotPerDay int              `json:"timeslot_per_day" validate:"required,gt=0,lte=12"`
	StartTime      string           `json:"start_time" validate:"required"`
	Duration       int              `json:"duration" validate:"required,gt=0,lte=240"`
	BreakDuration  int              `json:"break_duration" validate:"required,gt=0,lte=240"`
	HasMinibreak   bool             `json:"has_minibreak"`
	MiniBreak      *MiniBreakConfig `json:"mini_break,omitempty"`
	BreakTimeslots BreakPeriods     `json:"break_timeslots"`
}

func (r *GenerateTimeslotsRequest) Normalize() {
	for i, d := range r.Days {
		r.Days[i] = strings.ToUpper(strings.TrimSpace(d))
	}
	r.StartTime = strings.TrimSpace(r.StartTime)
	if !r.HasMinibreak {
		r.MiniBreak = nil
	}
}

func (r *GenerateTimeslotsRequest) ToConfig(sem constants.Semester) service.GenerateConfig {
	cfg := service.GenerateConfig{
		AcademicYear:   r.AcademicYear,
		Semester:       sem,
		Days:           r.Days,
		PeriodsPerDay:  r.TimeslotPerDay,
		StartTime:      r.StartTime,
		PeriodDuration: r.Duration,
		BreakDuration:  r.BreakDuration,
		JuniorBreak:    r.BreakTimeslots.Junior,
		SeniorBreak:    r.BreakTimeslots.Senior,
	}
	if r.HasMinibreak && r.MiniBreak != nil {
		cfg.MiniBreak = &service.MiniBreak{
			SlotNumber: r.MiniBreak.SlotNumber,
			Duration:   r.MiniBreak.Duration,
		}
	}
	return cfg
}
