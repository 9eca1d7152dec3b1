// file: internals/features/school/academics/teachers/model/teacher_model.go
package model

import (
	"time"
)

/* =======================================================
   TeacherModel — maps to table teachers
   ======================================================= */

type TeacherModel struct {
	TeacherID  int     `json:"teacher_id" gorm:"column:teacher_id;primaryKey;autoIncrement"`
	Prefix     string  `json:"prefix" gorm:"type:text;not null;column:prefix"`
	Firstname  string  `json:"firstname" gorm:"type:text;not null;column:firstname"`
	Lastname   string  `json:"lastname" gorm:"type:text;not null;column:lastname"`
	Department *string `json:"department,omitempty" gorm:"type:text;column:department"`
	Email      *string `json:"email,omitempty" gorm:"type:text;uniqueIndex;column:email"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (TeacherModel) TableName() string {
	return "teachers"
}

// FullName is the display form used in conflict reports.
func (m TeacherModel) FullName() string {
	return m.Prefix + m.Firstname + " " + m.Lastname
}
