// file: internals/features/school/academics/responsibilities/model/responsibility_model.go
package model

import (
	"time"

	"timetable_backend/internals/constants"
	gradeModel "timetable_backend/internals/features/school/academics/gradelevels/model"
	subjectModel "timetable_backend/internals/features/school/academics/subjects/model"
	teacherModel "timetable_backend/internals/features/school/academics/teachers/model"
)

/* =======================================================
   TeachersResponsibilityModel — maps to table teachers_responsibility

   One row = one teacher assigned to teach one subject to one
   grade for a given term (academic year + semester).
   ======================================================= */

type TeachersResponsibilityModel struct {
	RespID       int                `json:"resp_id" gorm:"column:resp_id;primaryKey;autoIncrement"`
	TeacherID    int                `json:"teacher_id" gorm:"column:teacher_id;not null;index:idx_resp_term_teacher"`
	GradeID      string             `json:"grade_id" gorm:"type:text;column:grade_id;not null"`
	SubjectCode  string             `json:"subject_code" gorm:"type:text;column:subject_code;not null"`
	AcademicYear int                `json:"academic_year" gorm:"column:academic_year;not null;index:idx_resp_term_teacher"`
	Semester     constants.Semester `json:"semester" gorm:"type:text;column:semester;not null;index:idx_resp_term_teacher"`
	TeachHour    int                `json:"teach_hour" gorm:"column:teach_hour;not null;default:0"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;not null;autoUpdateTime"`

	Teacher *teacherModel.TeacherModel  `json:"teacher,omitempty" gorm:"foreignKey:TeacherID;references:TeacherID"`
	Subject *subjectModel.SubjectModel  `json:"subject,omitempty" gorm:"foreignKey:SubjectCode;references:SubjectCode"`
	Grade   *gradeModel.GradeLevelModel `json:"grade,omitempty" gorm:"foreignKey:GradeID;references:GradeID"`
}

func (TeachersResponsibilityModel) TableName() string {
	return "teachers_responsibility"
}
