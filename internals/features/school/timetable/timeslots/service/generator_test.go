// file: internals/features/school/timetable/timeslots/service/generator_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timetable_backend/internals/constants"
	"timetable_backend/internals/features/school/timetable/timeslots/model"
	"timetable_backend/internals/helpers/errs"
)

func baseConfig() GenerateConfig {
	return GenerateConfig{
		AcademicYear:   2567,
		Semester:       constants.Semester1,
		Days:           []string{"MON", "TUE", "WED", "THU", "FRI"},
		PeriodsPerDay:  8,
		StartTime:      "08:30",
		PeriodDuration: 50,
		BreakDuration:  60,
		JuniorBreak:    4,
		SeniorBreak:    5,
	}
}

func TestGenerate_CountAndChaining(t *testing.T) {
	cfg := baseConfig()
	slots, err := Generate(cfg)
	require.NoError(t, err)
	require.Len(t, slots, len(cfg.Days)*cfg.PeriodsPerDay)

	// Within each day the end of one period is the start of the next.
	byDay := map[string][]model.TimeslotModel{}
	for _, s := range slots {
		byDay[s.DayOfWeek] = append(byDay[s.DayOfWeek], s)
	}
	for day, daySlots := range byDay {
		require.Len(t, daySlots, cfg.PeriodsPerDay, "day %s", day)
		for i := 0; i < len(daySlots)-1; i++ {
			assert.Equal(t, daySlots[i].EndTime, daySlots[i+1].StartTime,
				"%s period %d should chain into period %d", day, i+1, i+2)
		}
		assert.Equal(t, cfg.StartTime, daySlots[0].StartTime)
	}
}

func TestGenerate_TwoDayTwoPeriodSharedLunch(t *testing.T) {
	cfg := GenerateConfig{
		AcademicYear:   2567,
		Semester:       constants.Semester1,
		Days:           []string{"MON", "TUE"},
		PeriodsPerDay:  2,
		StartTime:      "08:30",
		PeriodDuration: 50,
		BreakDuration:  15,
		JuniorBreak:    2,
		SeniorBreak:    2,
	}
	slots, err := Generate(cfg)
	require.NoError(t, err)
	require.Len(t, slots, 4)

	for _, s := range slots {
		period := ParsePeriod(s.TimeslotID)
		switch period {
		case 1:
			assert.Equal(t, model.NotBreak, s.Breaktime)
			assert.Equal(t, "08:30", s.StartTime)
			assert.Equal(t, "09:20", s.EndTime)
		case 2:
			assert.Equal(t, model.BreakBoth, s.Breaktime)
			assert.Equal(t, "09:20", s.StartTime)
			assert.Equal(t, "09:35", s.EndTime)
		default:
			t.Fatalf("unexpected period %d in %s", period, s.TimeslotID)
		}
	}
}

func TestGenerate_MiniBreakShiftsClock(t *testing.T) {
	cfg := baseConfig()
	cfg.Days = []string{"MON"}
	cfg.PeriodsPerDay = 3
	cfg.MiniBreak = &MiniBreak{SlotNumber: 2, Duration: 10}
	cfg.JuniorBreak = 0
	cfg.SeniorBreak = 0

	slots, err := Generate(cfg)
	require.NoError(t, err)
	require.Len(t, slots, 3)

	assert.Equal(t, "08:30", slots[0].StartTime)
	assert.Equal(t, "09:20", slots[0].EndTime)
	// Period 2 starts 10 minutes after period 1 ends.
	assert.Equal(t, "09:30", slots[1].StartTime)
	assert.Equal(t, "10:20", slots[1].EndTime)
	// Period 3 chains directly off period 2.
	assert.Equal(t, "10:20", slots[2].StartTime)
}

func TestGenerate_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GenerateConfig)
		field  string
	}{
		{"no days", func(c *GenerateConfig) { c.Days = nil }, "days"},
		{"unknown day", func(c *GenerateConfig) { c.Days = []string{"MONDAY"} }, "days"},
		{"zero periods", func(c *GenerateConfig) { c.PeriodsPerDay = 0 }, "timeslot_per_day"},
		{"bad start time", func(c *GenerateConfig) { c.StartTime = "late" }, "start_time"},
		{"bad clock range", func(c *GenerateConfig) { c.StartTime = "25:99" }, "start_time"},
		{"zero duration", func(c *GenerateConfig) { c.PeriodDuration = 0 }, "duration"},
		{"runs past midnight", func(c *GenerateConfig) {
			c.StartTime = "20:00"
			c.PeriodDuration = 60
			c.BreakDuration = 60
		}, "duration"},
		{"bad mini break", func(c *GenerateConfig) { c.MiniBreak = &MiniBreak{SlotNumber: 0, Duration: 10} }, "mini_break"},
		{"bad semester", func(c *GenerateConfig) { c.Semester = "SEMESTER_3" }, "semester"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := baseConfig()
			tt.mutate(&cfg)
			slots, err := Generate(cfg)
			require.Error(t, err)
			assert.Nil(t, slots)

			var appErr *errs.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, errs.CodeValidation, appErr.Code)
			assert.Equal(t, tt.field, appErr.Field)
		})
	}
}

func TestCalculateBreaktime(t *testing.T) {
	tests := []struct {
		name           string
		period, jr, sr int
		want           model.Breaktime
	}{
		{"both match", 4, 4, 4, model.BreakBoth},
		{"junior only", 4, 4, 5, model.BreakJunior},
		{"senior only", 5, 4, 5, model.BreakSenior},
		{"neither", 3, 4, 5, model.NotBreak},
		{"zero config never matches", 0, 0, 0, model.NotBreak},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateBreaktime(tt.period, tt.jr, tt.sr))
		})
	}
}

func TestTimeslotIDCodec(t *testing.T) {
	id := FormatTimeslotID(constants.Semester1, 2567, "MON", 3)
	assert.Equal(t, "1/2567-MON3", id)
	assert.Equal(t, 3, ParsePeriod(id))
	assert.Equal(t, "MON", ParseDay(id))

	id2 := FormatTimeslotID(constants.Semester2, 2568, "FRI", 12)
	assert.Equal(t, "2/2568-FRI12", id2)
	assert.Equal(t, 12, ParsePeriod(id2))
	assert.Equal(t, "FRI", ParseDay(id2))

	assert.Equal(t, 0, ParsePeriod("no-digits"))
	assert.Equal(t, "", ParseDay("garbage"))
}

func TestSort_DayThenPeriod_Idempotent(t *testing.T) {
	cfg := baseConfig()
	slots, err := Generate(cfg)
	require.NoError(t, err)

	// Shuffle deterministically by reversing.
	for i, j := 0, len(slots)-1; i < j; i, j = i+1, j-1 {
		slots[i], slots[j] = slots[j], slots[i]
	}

	Sort(slots)
	once := make([]string, len(slots))
	for i, s := range slots {
		once[i] = s.TimeslotID
	}

	Sort(slots)
	twice := make([]string, len(slots))
	for i, s := range slots {
		twice[i] = s.TimeslotID
	}
	assert.Equal(t, once, twice)

	// First block is all Monday in period order.
	assert.Equal(t, "1/2567-MON1", once[0])
	assert.Equal(t, "1/2567-MON2", once[1])
	assert.Equal(t, "1/2567-TUE1", once[cfg.PeriodsPerDay])
}

func TestSortIDs(t *testing.T) {
	ids := []string{"1/2567-FRI2", "1/2567-MON10", "1/2567-MON2", "1/2567-TUE1"}
	SortIDs(ids)
	assert.Equal(t, []string{"1/2567-MON2", "1/2567-MON10", "1/2567-TUE1", "1/2567-FRI2"}, ids)
}
