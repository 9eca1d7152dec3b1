// file: internals/features/school/timetable/timeslots/service/generator.go
package service

import (
	"fmt"
	"sort"
	"strings"

	"timetable_backend/internals/constants"
	"timetable_backend/internals/features/school/timetable/timeslots/model"
	"timetable_backend/internals/helpers/errs"
)

/* =======================================================
   Timeslot generation — pure, no I/O.

   The controller owns the duplicate-term guard and the
   transactional write; everything here is deterministic
   computation over the config.
   ======================================================= */

// dayOrder fixes MON..SUN ordering for generation and sorting.
var dayOrder = map[string]int{
	"MON": 0, "TUE": 1, "WED": 2, "THU": 3, "FRI": 4, "SAT": 5, "SUN": 6,
}

type MiniBreak struct {
	SlotNumber int
	Duration   int
}

type GenerateConfig struct {
	AcademicYear   int
	Semester       constants.Semester
	Days           []string
	PeriodsPerDay  int
	StartTime      string // "08:30"
	PeriodDuration int    // minutes
	BreakDuration  int    // minutes, applied to break periods instead of PeriodDuration
	MiniBreak      *MiniBreak
	JuniorBreak    int // period number that is the junior lunch break
	SeniorBreak    int // period number that is the senior lunch break
}

// Generate walks each configured day with a running clock and emits
// one timeslot per period. A slot's end time always becomes the next
// slot's start time within the same day.
func Generate(cfg GenerateConfig) ([]model.TimeslotModel, error) {
	if len(cfg.Days) == 0 {
		return nil, errs.NewValidation("days", "At least one day is required")
	}
	for _, d := range cfg.Days {
		if _, ok := dayOrder[d]; !ok {
			return nil, errs.NewValidation("days", fmt.Sprintf("Unknown day %q", d))
		}
	}
	if cfg.PeriodsPerDay <= 0 {
		return nil, errs.NewValidation("timeslot_per_day", "Periods per day must be positive")
	}
	if cfg.PeriodDuration <= 0 {
		return nil, errs.NewValidation("duration", "Period duration must be positive")
	}
	if !cfg.Semester.Valid() {
		return nil, errs.NewValidation("semester", "Invalid semester")
	}
	startMin, err := parseClock(cfg.StartTime)
	if err != nil {
		return nil, errs.NewValidation("start_time", "Start time must look like HH:MM")
	}
	if cfg.MiniBreak != nil && (cfg.MiniBreak.SlotNumber <= 0 || cfg.MiniBreak.Duration <= 0) {
		return nil, errs.NewValidation("mini_break", "Mini break slot and duration must be positive")
	}

	// Every day runs the same clock, so one pass is enough to know
	// whether the last period spills past midnight.
	dayEnd := startMin
	for period := 1; period <= cfg.PeriodsPerDay; period++ {
		if cfg.MiniBreak != nil && cfg.MiniBreak.SlotNumber == period {
			dayEnd += cfg.MiniBreak.Duration
		}
		if CalculateBreaktime(period, cfg.JuniorBreak, cfg.SeniorBreak).IsBreak() {
			dayEnd += cfg.BreakDuration
		} else {
			dayEnd += cfg.PeriodDuration
		}
	}
	if dayEnd > 23*60+59 {
		return nil, errs.NewValidation("duration", "Schedule runs past midnight, shorten the periods or start earlier")
	}

	slots := make([]model.TimeslotModel, 0, len(cfg.Days)*cfg.PeriodsPerDay)
	for _, day := range cfg.Days {
		clock := startMin
		for period := 1; period <= cfg.PeriodsPerDay; period++ {
			if cfg.MiniBreak != nil && cfg.MiniBreak.SlotNumber == period {
				clock += cfg.MiniBreak.Duration
			}

			bk := CalculateBreaktime(period, cfg.JuniorBreak, cfg.SeniorBreak)
			dur := cfg.PeriodDuration
			if bk.IsBreak() {
				dur = cfg.BreakDuration
			}
			end := clock + dur

			slots = append(slots, model.TimeslotModel{
				TimeslotID:   FormatTimeslotID(cfg.Semester, cfg.AcademicYear, day, period),
				AcademicYear: cfg.AcademicYear,
				Semester:     cfg.Semester,
				DayOfWeek:    day,
				StartTime:    formatClock(clock),
				EndTime:      formatClock(end),
				Breaktime:    bk,
			})
			clock = end
		}
	}
	return slots, nil
}

// CalculateBreaktime classifies a period against the configured junior
// and senior lunch period numbers.
func CalculateBreaktime(period, juniorBreak, seniorBreak int) model.Breaktime {
	junior := juniorBreak > 0 && period == juniorBreak
	senior := seniorBreak > 0 && period == seniorBreak
	switch {
	case junior && senior:
		return model.BreakBoth
	case senior:
		return model.BreakSenior
	case junior:
		return model.BreakJunior
	default:
		return model.NotBreak
	}
}

// FormatTimeslotID builds the canonical id, e.g. "1/2567-MON3".
func FormatTimeslotID(sem constants.Semester, academicYear int, day string, period int) string {
	return fmt.Sprintf("%s/%d-%s%d", sem.Digit(), academicYear, day, period)
}

// ParsePeriod recovers the period number from a timeslot id's trailing
// digits. Returns 0 when the id has no digit suffix.
func ParsePeriod(timeslotID string) int {
	n := 0
	mul := 1
	for i := len(timeslotID) - 1; i >= 0; i-- {
		c := timeslotID[i]
		if c < '0' || c > '9' {
			break
		}
		n += int(c-'0') * mul
		mul *= 10
	}
	return n
}

// ParseDay recovers the 3-letter day code from a timeslot id, or ""
// when the id does not carry one.
func ParseDay(timeslotID string) string {
	idx := strings.LastIndex(timeslotID, "-")
	if idx < 0 || idx+4 > len(timeslotID) {
		return ""
	}
	day := timeslotID[idx+1 : idx+4]
	if _, ok := dayOrder[day]; !ok {
		return ""
	}
	return day
}

// Sort orders timeslots by day (MON..SUN) then by period number. The
// conflict report relies on this order for stable output.
func Sort(slots []model.TimeslotModel) {
	sort.SliceStable(slots, func(i, j int) bool {
		da, db := dayOrder[slots[i].DayOfWeek], dayOrder[slots[j].DayOfWeek]
		if da != db {
			return da < db
		}
		return ParsePeriod(slots[i].TimeslotID) < ParsePeriod(slots[j].TimeslotID)
	})
}

// SortIDs orders bare timeslot ids the same way Sort orders rows.
func SortIDs(ids []string) {
	sort.SliceStable(ids, func(i, j int) bool {
		da, db := dayOrder[ParseDay(ids[i])], dayOrder[ParseDay(ids[j])]
		if da != db {
			return da < db
		}
		return ParsePeriod(ids[i]) < ParsePeriod(ids[j])
	})
}

func parseClock(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, err
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("clock out of range: %s", s)
	}
	return h*60 + m, nil
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
