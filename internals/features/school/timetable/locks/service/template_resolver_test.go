// file: internals/features/school/timetable/locks/service/template_resolver_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lockModel "timetable_backend/internals/features/school/timetable/locks/model"
	scheduleModel "timetable_backend/internals/features/school/timetable/schedules/model"
	tsModel "timetable_backend/internals/features/school/timetable/timeslots/model"
)

func termContext() ResolveContext {
	return ResolveContext{
		Grades: []GradeRef{
			{GradeID: "M1-1", Year: 1},
			{GradeID: "M2-1", Year: 2},
			{GradeID: "M4-1", Year: 4},
			{GradeID: "M6-1", Year: 6},
		},
		Timeslots: []TimeslotRef{
			{TimeslotID: "1/2567-MON1", DayOfWeek: "MON", Breaktime: tsModel.NotBreak},
			{TimeslotID: "1/2567-MON4", DayOfWeek: "MON", Breaktime: tsModel.BreakJunior},
			{TimeslotID: "1/2567-MON5", DayOfWeek: "MON", Breaktime: tsModel.BreakSenior},
			{TimeslotID: "1/2567-TUE4", DayOfWeek: "TUE", Breaktime: tsModel.BreakBoth},
		},
		Rooms: []RoomRef{
			{RoomID: 1, RoomName: "Cafeteria"},
			{RoomID: 2, RoomName: "Main Field"},
		},
		Subjects: []string{"LUNCH", "ASSEMBLY", "MATH"},
		Responsibilities: []RespRef{
			{RespID: 10, TeacherID: 1, SubjectCode: "LUNCH", GradeID: "M1-1"},
			{RespID: 11, TeacherID: 1, SubjectCode: "LUNCH", GradeID: "M2-1"},
			{RespID: 12, TeacherID: 2, SubjectCode: "LUNCH", GradeID: "M4-1"},
			{RespID: 13, TeacherID: 2, SubjectCode: "ASSEMBLY", GradeID: "M1-1"},
		},
	}
}

func TestResolve_JuniorLunch(t *testing.T) {
	tpl, ok := FindBuiltinTemplate("lunch-junior")
	require.True(t, ok)

	locks, warnings, errs := Resolve(tpl, termContext())
	require.Empty(t, errs)
	require.Empty(t, warnings)
	require.Len(t, locks, 1)

	spec := locks[0]
	assert.Equal(t, "LUNCH", spec.SubjectCode)
	assert.Equal(t, scheduleModel.LockLunch, spec.Kind)
	// Junior break slots: BREAK_JUNIOR and BREAK_BOTH.
	assert.Equal(t, []string{"1/2567-MON4", "1/2567-TUE4"}, spec.TimeslotIDs)
	// Junior grades only.
	assert.Equal(t, []string{"M1-1", "M2-1"}, spec.GradeIDs)
	// Cafeteria resolved to a concrete room.
	require.NotNil(t, spec.RoomID)
	assert.Equal(t, 1, *spec.RoomID)
	assert.ElementsMatch(t, []int{10, 11}, spec.ResponsibilityIDs)
}

func TestResolve_SeniorGradeFilter(t *testing.T) {
	tpl, ok := FindBuiltinTemplate("lunch-senior")
	require.True(t, ok)

	locks, _, errs := Resolve(tpl, termContext())
	require.Empty(t, errs)
	require.Len(t, locks, 1)
	assert.Equal(t, []string{"M4-1", "M6-1"}, locks[0].GradeIDs)
	assert.Equal(t, []string{"1/2567-MON5", "1/2567-TUE4"}, locks[0].TimeslotIDs)
	assert.ElementsMatch(t, []int{12}, locks[0].ResponsibilityIDs)
}

func TestResolve_MissingRoomIsWarningOnly(t *testing.T) {
	ctx := termContext()
	ctx.Rooms = []RoomRef{{RoomID: 9, RoomName: "Library"}}

	tpl, _ := FindBuiltinTemplate("lunch-junior")
	locks, warnings, errs := Resolve(tpl, ctx)

	require.Empty(t, errs)
	require.NotEmpty(t, locks)
	require.NotEmpty(t, warnings)
	assert.Contains(t, warnings[0], "Cafeteria")
	assert.Nil(t, locks[0].RoomID)
}

func TestResolve_MissingSubjectIsError(t *testing.T) {
	ctx := termContext()
	ctx.Subjects = []string{"MATH"}

	tpl, _ := FindBuiltinTemplate("lunch-junior")
	locks, _, errs := Resolve(tpl, ctx)

	assert.Empty(t, locks)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0], "LUNCH")
}

func TestResolve_ZeroTimeslotsIsError(t *testing.T) {
	ctx := termContext()
	// No break-tagged slots at all.
	ctx.Timeslots = []TimeslotRef{
		{TimeslotID: "1/2567-MON1", DayOfWeek: "MON", Breaktime: tsModel.NotBreak},
	}

	tpl, _ := FindBuiltinTemplate("lunch-junior")
	locks, _, errs := Resolve(tpl, ctx)
	assert.Empty(t, locks)
	assert.NotEmpty(t, errs)
}

func TestResolve_ZeroGradesIsError(t *testing.T) {
	ctx := termContext()
	ctx.Grades = []GradeRef{{GradeID: "M5-1", Year: 5}}

	tpl, _ := FindBuiltinTemplate("lunch-junior")
	locks, _, errs := Resolve(tpl, ctx)
	assert.Empty(t, locks)
	assert.NotEmpty(t, errs)
}

func TestResolve_NoResponsibilityIsError(t *testing.T) {
	ctx := termContext()
	ctx.Responsibilities = []RespRef{
		{RespID: 13, TeacherID: 2, SubjectCode: "ASSEMBLY", GradeID: "M1-1"},
	}

	tpl, _ := FindBuiltinTemplate("lunch-junior")
	locks, _, errs := Resolve(tpl, ctx)
	assert.Empty(t, locks)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0], "responsibility")
}

func TestResolve_SpecificGradesSkipMissing(t *testing.T) {
	tpl := Template{
		TemplateID:  "custom-1",
		Name:        "Custom lunch",
		Kind:        scheduleModel.LockLunch,
		SubjectCode: "LUNCH",
		GradeFilter: lockModel.GradesSpecific,
		GradeIDs:    []string{"M1-1", "M9-9"},
		SelectBreak: lockModel.BreakSelectJunior,
	}

	locks, warnings, errs := Resolve(tpl, termContext())
	require.Empty(t, errs)
	require.Len(t, locks, 1)
	assert.Equal(t, []string{"M1-1"}, locks[0].GradeIDs)
	require.NotEmpty(t, warnings)
	assert.Contains(t, warnings[0], "M9-9")
}

func TestResolve_DayPeriodSelector(t *testing.T) {
	tpl, ok := FindBuiltinTemplate("assembly-weekly")
	require.True(t, ok)

	locks, _, errs := Resolve(tpl, termContext())
	require.Empty(t, errs)
	require.Len(t, locks, 1)
	assert.Equal(t, []string{"1/2567-MON1"}, locks[0].TimeslotIDs)
	assert.Equal(t, scheduleModel.LockAssembly, locks[0].Kind)
	// All grades in the catalog.
	assert.Len(t, locks[0].GradeIDs, 4)
}
