// file: internals/features/school/academics/gradelevels/dto/gradelevel_dto.go
package dto

import (
	"strings"

	m "timetable_backend/internals/features/school/academics/gradelevels/model"
)

type CreateGradeLevelRequest struct {
	Year    int     `json:"year" validate:"required,gte=1,lte=6"`
	Number  int     `json:"number" validate:"required,gte=1,lte=20"`
	Program *string `json:"program,omitempty" validate:"omitempty,max=100"`
}

func (r *CreateGradeLevelRequest) Normalize() {
	if r.Program != nil {
		t := strings.TrimSpace(*r.Program)
		if t == "" {
			r.Program = nil
		} else {
			r.Program = &t
		}
	}
}

func (r *CreateGradeLevelRequest) ToModel() m.GradeLevelModel {
	return m.GradeLevelModel{
		GradeID: m.BuildGradeID(r.Year, r.Number),
		Year:    r.Year,
		Number:  r.Number,
		Program: r.Program,
	}
}

type GradeLevelResponse struct {
	GradeID   string  `json:"grade_id"`
	Year      int     `json:"year"`
	Number    int     `json:"number"`
	GradeName string  `json:"grade_name"`
	Program   *string `json:"program,omitempty"`
	IsJunior  bool    `json:"is_junior"`
}

func ToGradeLevelResponse(src m.GradeLevelModel) GradeLevelResponse {
	return GradeLevelResponse{
		GradeID:   src.GradeID,
		Year:      src.Year,
		Number:    src.Number,
		GradeName: src.GradeName(),
		Program:   src.Program,
		IsJunior:  src.IsJunior(),
	}
}
