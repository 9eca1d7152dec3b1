// file: internals/features/school/academics/responsibilities/dto/responsibility_dto.go
package dto

import (
	"strings"

	"timetable_backend/internals/constants"
	m "timetable_backend/internals/features/school/academics/responsibilities/model"
)

type CreateResponsibilityRequest struct {
	TeacherID    int    `json:"teacher_id" validate:"required,gt=0"`
	GradeID      string `json:"grade_id" validate:"required,max=20"`
	SubjectCode  string `json:"subject_code" validate:"required,max=20"`
	AcademicYear int    `json:"academic_year" validate:"required,gte=2500,lte=2700"`
	Semester     string `json:"semester" validate:"required"`
	TeachHour    int    `json:"teach_hour" validate:"gte=0,lte=40"`
}

func (r *CreateResponsibilityRequest) Normalize() {
	r.GradeID = strings.ToUpper(strings.TrimSpace(r.GradeID))
	r.SubjectCode = strings.ToUpper(strings.TrimSpace(r.SubjectCode))
}

func (r *CreateResponsibilityRequest) ToModel(sem constants.Semester) m.TeachersResponsibilityModel {
	return m.TeachersResponsibilityModel{
		TeacherID:    r.TeacherID,
		GradeID:      r.GradeID,
		SubjectCode:  r.SubjectCode,
		AcademicYear: r.AcademicYear,
		Semester:     sem,
		TeachHour:    r.TeachHour,
	}
}

type UpdateResponsibilityRequest struct {
	TeacherID *int `json:"teacher_id,omitempty" validate:"omitempty,gt=0"`
	TeachHour *int `json:"teach_hour,omitempty" validate:"omitempty,gte=0,lte=40"`
}

func (r *UpdateResponsibilityRequest) BuildUpdateMap() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.TeacherID != nil {
		updates["teacher_id"] = *r.TeacherID
	}
	if r.TeachHour != nil {
		updates["teach_hour"] = *r.TeachHour
	}
	return updates
}
