// file: internals/features/school/academics/subjects/model/subject_model.go
package model

import "time"

/* =======================================================
   SubjectModel — maps to table subjects
   ======================================================= */

type SubjectModel struct {
	SubjectCode string  `json:"subject_code" gorm:"type:text;primaryKey;column:subject_code"`
	SubjectName string  `json:"subject_name" gorm:"type:text;not null;column:subject_name"`
	Credit      float64 `json:"credit" gorm:"type:numeric;not null;default:1.0;column:credit"`
	Category    *string `json:"category,omitempty" gorm:"type:text;column:category"`
	Program     *string `json:"program,omitempty" gorm:"type:text;column:program"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (SubjectModel) TableName() string {
	return "subjects"
}
