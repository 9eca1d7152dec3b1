// file: internals/features/school/academics/teachers/dto/teacher_dto.go
package dto

import (
	"strings"
	"time"

	m "timetable_backend/internals/features/school/academics/teachers/model"
)

/* =======================================================
   Request DTOs
   ======================================================= */

type CreateTeacherRequest struct {
	Prefix     string  `json:"prefix" validate:"required,max=40"`
	Firstname  string  `json:"firstname" validate:"required,max=100"`
	Lastname   string  `json:"lastname" validate:"required,max=100"`
	Department *string `json:"department,omitempty" validate:"omitempty,max=100"`
	Email      *string `json:"email,omitempty" validate:"omitempty,email"`
}

func (r *CreateTeacherRequest) Normalize() {
	r.Prefix = strings.TrimSpace(r.Prefix)
	r.Firstname = strings.TrimSpace(r.Firstname)
	r.Lastname = strings.TrimSpace(r.Lastname)
	r.Department = strPtrOrNil(r.Department)
	r.Email = strPtrOrNil(r.Email)
}

func (r *CreateTeacherRequest) ToModel() m.TeacherModel {
	return m.TeacherModel{
		Prefix:     r.Prefix,
		Firstname:  r.Firstname,
		Lastname:   r.Lastname,
		Department: r.Department,
		Email:      r.Email,
	}
}

type UpdateTeacherRequest struct {
	Prefix     *string `json:"prefix,omitempty" validate:"omitempty,max=40"`
	Firstname  *string `json:"firstname,omitempty" validate:"omitempty,max=100"`
	Lastname   *string `json:"lastname,omitempty" validate:"omitempty,max=100"`
	Department *string `json:"department,omitempty" validate:"omitempty,max=100"`
	Email      *string `json:"email,omitempty" validate:"omitempty,email"`
}

// BuildUpdateMap applies only the fields that were sent.
func (r *UpdateTeacherRequest) BuildUpdateMap() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Prefix != nil {
		updates["prefix"] = strings.TrimSpace(*r.Prefix)
	}
	if r.Firstname != nil {
		updates["firstname"] = strings.TrimSpace(*r.Firstname)
	}
	if r.Lastname != nil {
		updates["lastname"] = strings.TrimSpace(*r.Lastname)
	}
	if r.Department != nil {
		updates["department"] = strPtrOrNil(r.Department)
	}
	if r.Email != nil {
		updates["email"] = strPtrOrNil(r.Email)
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

/* =======================================================
   Response DTO
   ======================================================= */

type TeacherResponse struct {
	TeacherID  int       `json:"teacher_id"`
	Prefix     string    `json:"prefix"`
	Firstname  string    `json:"firstname"`
	Lastname   string    `json:"lastname"`
	FullName   string    `json:"full_name"`
	Department *string   `json:"department,omitempty"`
	Email      *string   `json:"email,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func ToTeacherResponse(src m.TeacherModel) TeacherResponse {
	return TeacherResponse{
		TeacherID:  src.TeacherID,
		Prefix:     src.Prefix,
		Firstname:  src.Firstname,
		Lastname:   src.Lastname,
		FullName:   src.FullName(),
		Department: src.Department,
		Email:      src.Email,
		CreatedAt:  src.CreatedAt,
		UpdatedAt:  src.UpdatedAt,
	}
}
