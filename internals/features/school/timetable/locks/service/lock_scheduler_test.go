// file: internals/features/school/timetable/locks/service/lock_scheduler_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	scheduleModel "timetable_backend/internals/features/school/timetable/schedules/model"
	"timetable_backend/internals/helpers/errs"
)

func intPtr(v int) *int { return &v }

func lunchSpec() LockSpec {
	return LockSpec{
		SubjectCode:       "LUNCH",
		RoomID:            intPtr(5),
		TimeslotIDs:       []string{"1/2567-MON4", "1/2567-TUE4"},
		GradeIDs:          []string{"M1-1", "M1-2", "M2-1"},
		ResponsibilityIDs: []int{7},
		Kind:              scheduleModel.LockLunch,
	}
}

func TestBuildLocks_CartesianProduct(t *testing.T) {
	spec := lunchSpec()
	entries, err := BuildLocks(spec)
	require.NoError(t, err)
	require.Len(t, entries, 6)

	seen := map[string]bool{}
	for _, e := range entries {
		assert.Equal(t, "LUNCH", e.SubjectCode)
		require.NotNil(t, e.RoomID)
		assert.Equal(t, 5, *e.RoomID)
		assert.True(t, e.IsLocked)
		assert.Equal(t, scheduleModel.LockLunch, e.LockKind)
		assert.False(t, seen[e.ClassID], "class id %s duplicated", e.ClassID)
		seen[e.ClassID] = true
	}

	// Outer loop over timeslots, inner over grades.
	assert.Equal(t, "1/2567-MON4-LUNCH-M1-1", entries[0].ClassID)
	assert.Equal(t, "1/2567-MON4-LUNCH-M1-2", entries[1].ClassID)
	assert.Equal(t, "1/2567-TUE4-LUNCH-M2-1", entries[5].ClassID)
}

func TestBuildLocks_IdempotentClassIDs(t *testing.T) {
	first, err := BuildLocks(lunchSpec())
	require.NoError(t, err)
	second, err := BuildLocks(lunchSpec())
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ClassID, second[i].ClassID)
	}
}

func TestBuildLocks_EmptyListValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*LockSpec)
		field  string
	}{
		{"no subject", func(s *LockSpec) { s.SubjectCode = "" }, "subject_code"},
		{"no timeslots", func(s *LockSpec) { s.TimeslotIDs = nil }, "timeslot_ids"},
		{"no grades", func(s *LockSpec) { s.GradeIDs = []string{} }, "grade_ids"},
		{"no responsibilities", func(s *LockSpec) { s.ResponsibilityIDs = nil }, "responsibility_ids"},
		{"bad kind", func(s *LockSpec) { s.Kind = "BANANA" }, "kind"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := lunchSpec()
			tt.mutate(&spec)
			entries, err := BuildLocks(spec)
			assert.Nil(t, entries)

			var appErr *errs.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, errs.CodeValidation, appErr.Code)
			assert.Equal(t, tt.field, appErr.Field)
		})
	}
}

func TestBuildLocks_DefaultsKindToOther(t *testing.T) {
	spec := lunchSpec()
	spec.Kind = ""
	entries, err := BuildLocks(spec)
	require.NoError(t, err)
	for _, e := range entries {
		assert.Equal(t, scheduleModel.LockOther, e.LockKind)
	}
}

func TestBuildBulkLocks(t *testing.T) {
	specs := []LockSpec{lunchSpec(), {
		SubjectCode:       "ASSEMBLY",
		TimeslotIDs:       []string{"1/2567-MON1"},
		GradeIDs:          []string{"M1-1"},
		ResponsibilityIDs: []int{3},
		Kind:              scheduleModel.LockAssembly,
	}}

	entries, err := BuildBulkLocks(specs)
	require.NoError(t, err)
	assert.Len(t, entries, 7)

	// One bad spec fails the whole batch.
	specs[1].GradeIDs = nil
	entries, err = BuildBulkLocks(specs)
	assert.Nil(t, entries)
	var appErr *errs.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "locks[1].grade_ids", appErr.Field)

	entries, err = BuildBulkLocks(nil)
	assert.Nil(t, entries)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errs.CodeValidation, appErr.Code)
}

func TestLinkRows_ReplacesOnRespChange(t *testing.T) {
	spec := lunchSpec()
	rows := LinkRows([]LockSpec{spec})
	require.Len(t, rows, 6) // 2 timeslots × 3 grades × 1 resp
	for _, r := range rows {
		assert.Equal(t, 7, r.RespID)
	}

	// The same spec with a new teacher set names only the new ids, so
	// a prune-then-insert write cannot accrete stale links.
	spec.ResponsibilityIDs = []int{8, 9}
	rows = LinkRows([]LockSpec{spec})
	require.Len(t, rows, 12)
	for _, r := range rows {
		assert.NotEqual(t, 7, r.RespID)
	}

	// Every link targets a class id BuildLocks emits for the spec,
	// so pruning by entry id covers exactly the re-linked rows.
	entries, err := BuildLocks(spec)
	require.NoError(t, err)
	entryIDs := map[string]bool{}
	for _, e := range entries {
		entryIDs[e.ClassID] = true
	}
	for _, r := range rows {
		assert.True(t, entryIDs[r.ClassScheduleID], "link for unknown class id %s", r.ClassScheduleID)
	}

	assert.Empty(t, LinkRows(nil))
}

func TestDeriveClassID(t *testing.T) {
	assert.Equal(t, "1/2567-MON3-MATH-M1-1", DeriveClassID("1/2567-MON3", "MATH", "M1-1"))
	assert.Equal(t, DeriveClassID("a", "b", "c"), DeriveClassID("a", "b", "c"))
}
