// file: internals/features/school/timetable/schedules/service/conflict_detector_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func entry(classID, timeslotID, subject, grade string, roomID *int, teachers ...TeacherRef) ScheduleEntry {
	return ScheduleEntry{
		ClassID:     classID,
		TimeslotID:  timeslotID,
		SubjectCode: subject,
		SubjectName: subject,
		GradeID:     grade,
		RoomID:      roomID,
		Teachers:    teachers,
	}
}

var (
	somchai = TeacherRef{TeacherID: 1, Name: "Somchai"}
	malee   = TeacherRef{TeacherID: 2, Name: "Malee"}
	anong   = TeacherRef{TeacherID: 3, Name: "Anong"}
)

func TestDetect_EmptyInput(t *testing.T) {
	sum := Detect(nil)
	assert.Empty(t, sum.TeacherConflicts)
	assert.Empty(t, sum.RoomConflicts)
	assert.Empty(t, sum.ClassConflicts)
	assert.Empty(t, sum.Unassigned)
	assert.Zero(t, sum.TotalConflicts)
}

func TestDetect_TeacherDoubleBooked(t *testing.T) {
	entries := []ScheduleEntry{
		entry("A", "1/2567-MON1", "MATH", "M1-1", intPtr(1), somchai),
		entry("B", "1/2567-MON1", "SCI", "M2-1", intPtr(2), somchai),
		entry("C", "1/2567-MON2", "ENG", "M1-1", intPtr(1), somchai),
	}
	sum := Detect(entries)

	require.Len(t, sum.TeacherConflicts, 1)
	tc := sum.TeacherConflicts[0]
	assert.Equal(t, 1, tc.TeacherID)
	assert.Equal(t, "Somchai", tc.TeacherName)
	assert.Equal(t, "1/2567-MON1", tc.TimeslotID)
	require.Len(t, tc.Entries, 2)
	assert.Equal(t, "A", tc.Entries[0].ClassID)
	assert.Equal(t, "B", tc.Entries[1].ClassID)

	assert.Empty(t, sum.RoomConflicts)
	assert.Empty(t, sum.ClassConflicts)
	assert.Equal(t, 1, sum.TotalConflicts)
}

func TestDetect_GroupSizeMatchesSharedEntries(t *testing.T) {
	entries := []ScheduleEntry{
		entry("A", "1/2567-TUE3", "MATH", "M1-1", intPtr(1), malee),
		entry("B", "1/2567-TUE3", "SCI", "M2-1", intPtr(2), malee),
		entry("C", "1/2567-TUE3", "ENG", "M3-1", intPtr(3), malee),
	}
	sum := Detect(entries)
	require.Len(t, sum.TeacherConflicts, 1)
	assert.Len(t, sum.TeacherConflicts[0].Entries, 3)
}

func TestDetect_RoomAndClassConflicts(t *testing.T) {
	entries := []ScheduleEntry{
		entry("A", "1/2567-MON1", "MATH", "M1-1", intPtr(7), somchai),
		entry("B", "1/2567-MON1", "SCI", "M2-1", intPtr(7), malee),
		entry("C", "1/2567-WED4", "ENG", "M3-2", intPtr(1), anong),
		entry("D", "1/2567-WED4", "THAI", "M3-2", intPtr(2), malee),
	}
	sum := Detect(entries)

	require.Len(t, sum.RoomConflicts, 1)
	assert.Equal(t, 7, sum.RoomConflicts[0].RoomID)
	assert.Equal(t, "1/2567-MON1", sum.RoomConflicts[0].TimeslotID)
	assert.Len(t, sum.RoomConflicts[0].Entries, 2)

	require.Len(t, sum.ClassConflicts, 1)
	assert.Equal(t, "M3-2", sum.ClassConflicts[0].GradeID)
	assert.Equal(t, "1/2567-WED4", sum.ClassConflicts[0].TimeslotID)

	assert.Empty(t, sum.TeacherConflicts)
	assert.Equal(t, 2, sum.TotalConflicts)
}

func TestDetect_CoTeachingContributesPerTeacher(t *testing.T) {
	// One entry with two teachers collides with a second entry per
	// teacher independently.
	entries := []ScheduleEntry{
		entry("A", "1/2567-FRI2", "MATH", "M1-1", intPtr(1), somchai, malee),
		entry("B", "1/2567-FRI2", "SCI", "M2-1", intPtr(2), somchai),
		entry("C", "1/2567-FRI2", "ENG", "M3-1", intPtr(3), malee),
	}
	sum := Detect(entries)
	require.Len(t, sum.TeacherConflicts, 2)
	assert.Equal(t, 1, sum.TeacherConflicts[0].TeacherID)
	assert.Equal(t, 2, sum.TeacherConflicts[1].TeacherID)
}

func TestDetect_Unassigned(t *testing.T) {
	entries := []ScheduleEntry{
		entry("A", "1/2567-MON1", "MATH", "M1-1", nil),           // no teacher, no room
		entry("B", "1/2567-MON2", "SCI", "M1-1", intPtr(4)),      // no teacher
		entry("C", "1/2567-MON3", "ENG", "M1-1", nil, somchai),   // no room
		entry("D", "1/2567-MON4", "THAI", "M1-1", intPtr(5), malee), // fully assigned
	}
	sum := Detect(entries)

	require.Len(t, sum.Unassigned, 3)
	assert.Equal(t, MissingBoth, sum.Unassigned[0].Missing)
	assert.Equal(t, "A", sum.Unassigned[0].ClassID)
	assert.Equal(t, MissingTeacher, sum.Unassigned[1].Missing)
	assert.Equal(t, MissingRoom, sum.Unassigned[2].Missing)

	// Unassigned entries are a report, not conflicts.
	assert.Zero(t, sum.TotalConflicts)
}

func TestDetect_OutputOrderFollowsTimeslotOrder(t *testing.T) {
	entries := []ScheduleEntry{
		entry("A", "1/2567-FRI1", "MATH", "M1-1", intPtr(1), somchai),
		entry("B", "1/2567-FRI1", "SCI", "M2-1", intPtr(2), somchai),
		entry("C", "1/2567-MON5", "ENG", "M3-1", intPtr(3), malee),
		entry("D", "1/2567-MON5", "THAI", "M4-1", intPtr(4), malee),
	}
	sum := Detect(entries)
	require.Len(t, sum.TeacherConflicts, 2)
	assert.Equal(t, "1/2567-MON5", sum.TeacherConflicts[0].TimeslotID)
	assert.Equal(t, "1/2567-FRI1", sum.TeacherConflicts[1].TimeslotID)
}

func TestDetectForTeacher(t *testing.T) {
	entries := []ScheduleEntry{
		entry("A", "1/2567-MON1", "MATH", "M1-1", intPtr(1), somchai),
		entry("B", "1/2567-MON1", "SCI", "M2-1", intPtr(2), malee),
		entry("C", "1/2567-TUE2", "ENG", "M3-1", intPtr(3), anong),
		entry("D", "1/2567-WED3", "THAI", "M1-1", intPtr(4), somchai),
	}

	got := DetectForTeacher(entries, somchai.TeacherID)
	require.Len(t, got, 1)
	assert.Equal(t, "B", got[0].ClassID)

	// A teacher with no overlapping slots sees nothing.
	assert.Empty(t, DetectForTeacher(entries, anong.TeacherID))
	// Unknown teacher sees nothing.
	assert.Empty(t, DetectForTeacher(entries, 99))
}

func TestCheckPlacement_PriorityOrder(t *testing.T) {
	locked := entry("L", "1/2567-MON4", "LUNCH", "M1-1", intPtr(9))
	locked.IsLocked = true

	entries := []ScheduleEntry{
		locked,
		entry("A", "1/2567-MON1", "MATH", "M1-1", intPtr(1), somchai),
		entry("B", "1/2567-MON2", "SCI", "M2-1", intPtr(2), somchai),
	}
	resps := []ResponsibilityRef{
		{TeacherID: somchai.TeacherID, SubjectCode: "MATH", GradeID: "M1-1"},
		{TeacherID: somchai.TeacherID, SubjectCode: "ENG", GradeID: "M3-1"},
		{TeacherID: malee.TeacherID, SubjectCode: "ENG", GradeID: "M1-1"},
	}

	tests := []struct {
		name string
		p    Placement
		want PlacementReason
	}{
		{
			name: "locked slot beats everything",
			p: Placement{
				TimeslotID: "1/2567-MON4", SubjectCode: "MATH", GradeID: "M1-1",
				TeacherIDs: []int{somchai.TeacherID},
			},
			want: ReasonLocked,
		},
		{
			name: "teacher without responsibility",
			p: Placement{
				TimeslotID: "1/2567-TUE1", SubjectCode: "SCI", GradeID: "M1-1",
				TeacherIDs: []int{somchai.TeacherID},
			},
			want: ReasonTeacherNotAssigned,
		},
		{
			name: "class already busy",
			p: Placement{
				TimeslotID: "1/2567-MON1", SubjectCode: "ENG", GradeID: "M1-1",
				TeacherIDs: []int{malee.TeacherID},
			},
			want: ReasonClassBusy,
		},
		{
			name: "teacher already busy",
			p: Placement{
				TimeslotID: "1/2567-MON2", SubjectCode: "ENG", GradeID: "M3-1",
				TeacherIDs: []int{somchai.TeacherID},
			},
			want: ReasonTeacherBusy,
		},
		{
			name: "room already busy",
			p: Placement{
				TimeslotID: "1/2567-MON1", SubjectCode: "ENG", GradeID: "M2-1",
				RoomID:     intPtr(1),
			},
			want: ReasonRoomBusy,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issue := CheckPlacement(entries, resps, tt.p)
			require.NotNil(t, issue)
			assert.Equal(t, tt.want, issue.Reason)
		})
	}
}

func TestCheckPlacement_AllowedAndIgnoreSelf(t *testing.T) {
	entries := []ScheduleEntry{
		entry("A", "1/2567-MON1", "MATH", "M1-1", intPtr(1), somchai),
	}
	resps := []ResponsibilityRef{
		{TeacherID: somchai.TeacherID, SubjectCode: "MATH", GradeID: "M1-1"},
	}

	// Free slot: allowed.
	assert.Nil(t, CheckPlacement(entries, resps, Placement{
		TimeslotID: "1/2567-MON2", SubjectCode: "MATH", GradeID: "M1-1",
		RoomID: intPtr(1), TeacherIDs: []int{somchai.TeacherID},
	}))

	// Moving an entry onto its own slot ignores itself.
	assert.Nil(t, CheckPlacement(entries, resps, Placement{
		TimeslotID: "1/2567-MON1", SubjectCode: "MATH", GradeID: "M1-1",
		RoomID: intPtr(1), TeacherIDs: []int{somchai.TeacherID},
		IgnoreClassID: "A",
	}))
}
