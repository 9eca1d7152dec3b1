// file: internals/features/school/timetable/locks/dto/lock_dto.go
package dto

import (
	"strings"

	"github.com/bytedance/sonic"

	lockModel "timetable_backend/internals/features/school/timetable/locks/model"
	"timetable_backend/internals/features/school/timetable/locks/service"
	scheduleModel "timetable_backend/internals/features/school/timetable/schedules/model"
)

type CreateLockRequest struct {
	SubjectCode       string   `json:"subject_code" validate:"required,max=20"`
	RoomID            *int     `json:"room_id,omitempty" validate:"omitempty,gt=0"`
	TimeslotIDs       []string `json:"timeslot_ids" validate:"required,min=1,dive,required"`
	GradeIDs          []string `json:"grade_ids" validate:"required,min=1,dive,required"`
	ResponsibilityIDs []int    `json:"responsibility_ids" validate:"required,min=1,dive,gt=0"`
	Kind              string   `json:"kind" validate:"omitempty,oneof=NONE SUBJECT LUNCH ACTIVITY ASSEMBLY EXAM OTHER"`
}

func (r *CreateLockRequest) Normalize() {
	r.SubjectCode = strings.ToUpper(strings.TrimSpace(r.SubjectCode))
	for i, id := range r.TimeslotIDs {
		r.TimeslotIDs[i] = strings.TrimSpace(id)
	}
	for i, id := range r.GradeIDs {
		r.GradeIDs[i] = strings.ToUpper(strings.TrimSpace(id))
	}
	r.Kind = strings.ToUpper(strings.TrimSpace(r.Kind))
}

func (r *CreateLockRequest) ToSpec() service.LockSpec {
	return service.LockSpec{
		SubjectCode:       r.SubjectCode,
		RoomID:            r.RoomID,
		TimeslotIDs:       r.TimeslotIDs,
		GradeIDs:          r.GradeIDs,
		ResponsibilityIDs: r.ResponsibilityIDs,
		Kind:              scheduleModel.LockKind(r.Kind),
	}
}

type CreateBulkLocksRequest struct {
	Locks []CreateLockRequest `json:"locks" validate:"required,min=1,dive"`
}

type DeleteLocksRequest struct {
	ClassIDs []string `json:"class_ids" validate:"required,min=1,dive,required"`
}

type CreateLockTemplateRequest struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Kind        string   `json:"kind" validate:"required,oneof=SUBJECT LUNCH ACTIVITY ASSEMBLY EXAM OTHER"`
	SubjectCode string   `json:"subject_code" validate:"required,max=20"`
	RoomName    *string  `json:"room_name,omitempty" validate:"omitempty,max=100"`
	GradeFilter string   `json:"grade_filter" validate:"required,oneof=ALL JUNIOR SENIOR SPECIFIC"`
	GradeIDs    []string `json:"grade_ids,omitempty" validate:"omitempty,dive,required"`
	SelectBreak string   `json:"select_break,omitempty" validate:"omitempty,oneof=JUNIOR SENIOR"`
	Days        []string `json:"days,omitempty" validate:"omitempty,dive,oneof=MON TUE WED THU FRI SAT SUN"`
	Periods     []int    `json:"periods,omitempty" validate:"omitempty,dive,gt=0"`
}

func (r *CreateLockTemplateRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.SubjectCode = strings.ToUpper(strings.TrimSpace(r.SubjectCode))
	r.Kind = strings.ToUpper(strings.TrimSpace(r.Kind))
	r.GradeFilter = strings.ToUpper(strings.TrimSpace(r.GradeFilter))
	r.SelectBreak = strings.ToUpper(strings.TrimSpace(r.SelectBreak))
	for i, d := range r.Days {
		r.Days[i] = strings.ToUpper(strings.TrimSpace(d))
	}
	for i, g := range r.GradeIDs {
		r.GradeIDs[i] = strings.ToUpper(strings.TrimSpace(g))
	}
}

func (r *CreateLockTemplateRequest) ToModel() (lockModel.LockTemplateModel, error) {
	m := lockModel.LockTemplateModel{
		Name:        r.Name,
		Kind:        scheduleModel.LockKind(r.Kind),
		SubjectCode: r.SubjectCode,
		RoomName:    r.RoomName,
		GradeFilter: lockModel.GradeFilter(r.GradeFilter),
		SelectBreak: lockModel.BreakSelector(r.SelectBreak),
	}
	var err error
	if m.GradeIDs, err = sonic.Marshal(r.GradeIDs); err != nil {
		return m, err
	}
	if m.Days, err = sonic.Marshal(r.Days); err != nil {
		return m, err
	}
	if m.Periods, err = sonic.Marshal(r.Periods); err != nil {
		return m, err
	}
	return m, nil
}

// TemplateFromModel decodes a stored custom template into the
// resolver's working form.
func TemplateFromModel(m lockModel.LockTemplateModel) (service.Template, error) {
	tpl := service.Template{
		TemplateID:  m.TemplateID,
		Name:        m.Name,
		Kind:        m.Kind,
		SubjectCode: m.SubjectCode,
		RoomName:    m.RoomName,
		GradeFilter: m.GradeFilter,
		SelectBreak: m.SelectBreak,
	}
	if len(m.GradeIDs) > 0 {
		if err := sonic.Unmarshal(m.GradeIDs, &tpl.GradeIDs); err != nil {
			return tpl, err
		}
	}
	if len(m.Days) > 0 {
		if err := sonic.Unmarshal(m.Days, &tpl.Days); err != nil {
			return tpl, err
		}
	}
	if len(m.Periods) > 0 {
		if err := sonic.Unmarshal(m.Periods, &tpl.Periods); err != nil {
			return tpl, err
		}
	}
	return tpl, nil
}
