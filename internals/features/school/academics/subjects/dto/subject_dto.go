// file: internals/features/school/academics/subjects/dto/subject_dto.go
package dto

import (
	"strings"

	m "timetable_backend/internals/features/school/academics/subjects/model"
)

type CreateSubjectRequest struct {
	SubjectCode string  `json:"subject_code" validate:"required,max=20"`
	SubjectName string  `json:"subject_name" validate:"required,max=200"`
	Credit      float64 `json:"credit" validate:"gte=0,lte=2"`
	Category    *string `json:"category,omitempty" validate:"omitempty,max=100"`
	Program     *string `json:"program,omitempty" validate:"omitempty,max=100"`
}

func (r *CreateSubjectRequest) Normalize() {
	r.SubjectCode = strings.ToUpper(strings.TrimSpace(r.SubjectCode))
	r.SubjectName = strings.TrimSpace(r.SubjectName)
	r.Category = strPtrOrNil(r.Category)
	r.Program = strPtrOrNil(r.Program)
	if r.Credit == 0 {
		r.Credit = 1.0
	}
}

func (r *CreateSubjectRequest) ToModel() m.SubjectModel {
	return m.SubjectModel{
		SubjectCode: r.SubjectCode,
		SubjectName: r.SubjectName,
		Credit:      r.Credit,
		Category:    r.Category,
		Program:     r.Program,
	}
}

type UpdateSubjectRequest struct {
	SubjectName *string  `json:"subject_name,omitempty" validate:"omitempty,max=200"`
	Credit      *float64 `json:"credit,omitempty" validate:"omitempty,gte=0,lte=2"`
	Category    *string  `json:"category,omitempty" validate:"omitempty,max=100"`
	Program     *string  `json:"program,omitempty" validate:"omitempty,max=100"`
}

func (r *UpdateSubjectRequest) BuildUpdateMap() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.SubjectName != nil {
		updates["subject_name"] = strings.TrimSpace(*r.SubjectName)
	}
	if r.Credit != nil {
		updates["credit"] = *r.Credit
	}
	if r.Category != nil {
		updates["category"] = strPtrOrNil(r.Category)
	}
	if r.Program != nil {
		updates["program"] = strPtrOrNil(r.Program)
	}
	return updates
}

func strPtrOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
