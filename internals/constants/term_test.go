// file: internals/constants/term_test.go
package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSemesterParam(t *testing.T) {
	tests := []struct {
		raw     string
		want    Semester
		wantErr bool
	}{
		{"1", Semester1, false},
		{"2", Semester2, false},
		{"SEMESTER_1", Semester1, false},
		{"SEMESTER_2", Semester2, false},
		{"3", "", true},
		{"", "", true},
		{"first", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseSemesterParam(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSemesterDigitAndConfigID(t *testing.T) {
	assert.Equal(t, "1", Semester1.Digit())
	assert.Equal(t, "2", Semester2.Digit())
	assert.Equal(t, "1-2567", ConfigID(2567, Semester1))
	assert.Equal(t, "2-2568", ConfigID(2568, Semester2))
	assert.True(t, Semester1.Valid())
	assert.False(t, Semester("SEMESTER_3").Valid())
}
