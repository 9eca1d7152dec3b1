// file: internals/features/school/academics/gradelevels/model/gradelevel_model.go
package model

import (
	"strconv"
	"time"
)

/* =======================================================
   GradeLevelModel — maps to table gradelevels

   GradeID follows the school convention "M{year}-{number}",
   e.g. M1-1 is year 1, section 1. Years 1-3 are junior,
   4-6 senior.
   ======================================================= */

type GradeLevelModel struct {
	GradeID string  `json:"grade_id" gorm:"type:text;primaryKey;column:grade_id"`
	Year    int     `json:"year" gorm:"not null;column:year"`
	Number  int     `json:"number" gorm:"not null;column:number"`
	Program *string `json:"program,omitempty" gorm:"type:text;column:program"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (GradeLevelModel) TableName() string {
	return "gradelevels"
}

const (
	JuniorMaxYear = 3
	SeniorMaxYear = 6
)

func (m GradeLevelModel) IsJunior() bool {
	return m.Year >= 1 && m.Year <= JuniorMaxYear
}

func (m GradeLevelModel) IsSenior() bool {
	return m.Year > JuniorMaxYear && m.Year <= SeniorMaxYear
}

// GradeName is the display form "1/1" used in reports.
func (m GradeLevelModel) GradeName() string {
	return strconv.Itoa(m.Year) + "/" + strconv.Itoa(m.Number)
}

// BuildGradeID builds the canonical id "M{year}-{number}".
func BuildGradeID(year, number int) string {
	return "M" + strconv.Itoa(year) + "-" + strconv.Itoa(number)
}
