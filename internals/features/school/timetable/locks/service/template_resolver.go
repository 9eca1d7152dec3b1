// file: internals/features/school/timetable/locks/service/template_resolver.go
package service

import (
	"fmt"

	lockModel "timetable_backend/internals/features/school/timetable/locks/model"
	scheduleModel "timetable_backend/internals/features/school/timetable/schedules/model"
	tsModel "timetable_backend/internals/features/school/timetable/timeslots/model"
	tsService "timetable_backend/internals/features/school/timetable/timeslots/service"
)

/* =======================================================
   Template resolution — pure, no I/O.

   A template's selectors are matched against the live
   catalogs. Missing non-structural resources (a room,
   one grade of several) degrade to warnings; the
   template only fails when its pinned subject is absent,
   no responsibility exists for it, or the selectors
   produce zero locks.
   ======================================================= */

// Template is the resolver's working form. Builtin catalog entries
// are declared directly; stored custom templates are decoded into it.
type Template struct {
	TemplateID  string                  `json:"template_id"`
	Name        string                  `json:"name"`
	Kind        scheduleModel.LockKind  `json:"kind"`
	SubjectCode string                  `json:"subject_code"`
	RoomName    *string                 `json:"room_name,omitempty"`
	GradeFilter lockModel.GradeFilter   `json:"grade_filter"`
	GradeIDs    []string                `json:"grade_ids,omitempty"`
	SelectBreak lockModel.BreakSelector `json:"select_break,omitempty"`
	Days        []string                `json:"days,omitempty"`
	Periods     []int                   `json:"periods,omitempty"`
	Builtin     bool                    `json:"builtin"`
}

type GradeRef struct {
	GradeID string
	Year    int
}

type TimeslotRef struct {
	TimeslotID string
	DayOfWeek  string
	Breaktime  tsModel.Breaktime
}

type RoomRef struct {
	RoomID   int
	RoomName string
}

type RespRef struct {
	RespID      int
	TeacherID   int
	SubjectCode string
	GradeID     string
}

// ResolveContext bundles the live catalogs a template resolves
// against.
type ResolveContext struct {
	Grades           []GradeRef
	Timeslots        []TimeslotRef
	Rooms            []RoomRef
	Subjects         []string
	Responsibilities []RespRef
}

func strPtr(s string) *string { return &s }

// BuiltinTemplates is the fixed catalog of common recurring blocks.
// Lunch templates follow the break classification the term config
// produced instead of hardcoding period numbers.
var BuiltinTemplates = []Template{
	{
		TemplateID: "lunch-junior", Name: "Junior lunch break",
		Kind: scheduleModel.LockLunch, SubjectCode: "LUNCH",
		RoomName: strPtr("Cafeteria"), GradeFilter: lockModel.GradesJunior,
		SelectBreak: lockModel.BreakSelectJunior, Builtin: true,
	},
	{
		TemplateID: "lunch-senior", Name: "Senior lunch break",
		Kind: scheduleModel.LockLunch, SubjectCode: "LUNCH",
		RoomName: strPtr("Cafeteria"), GradeFilter: lockModel.GradesSenior,
		SelectBreak: lockModel.BreakSelectSenior, Builtin: true,
	},
	{
		TemplateID: "assembly-weekly", Name: "Weekly assembly",
		Kind: scheduleModel.LockAssembly, SubjectCode: "ASSEMBLY",
		RoomName: strPtr("Main Field"), GradeFilter: lockModel.GradesAll,
		Days: []string{"MON"}, Periods: []int{1}, Builtin: true,
	},
	{
		TemplateID: "activity-club", Name: "Club activities",
		Kind: scheduleModel.LockActivity, SubjectCode: "CLUB",
		GradeFilter: lockModel.GradesAll,
		Days:        []string{"FRI"}, Periods: []int{7, 8}, Builtin: true,
	},
	{
		TemplateID: "activity-scout", Name: "Scout activities",
		Kind: scheduleModel.LockActivity, SubjectCode: "SCOUT",
		GradeFilter: lockModel.GradesJunior,
		Days:        []string{"WED"}, Periods: []int{7, 8}, Builtin: true,
	},
	{
		TemplateID: "exam-midterm", Name: "Midterm examinations",
		Kind: scheduleModel.LockExam, SubjectCode: "EXAM",
		GradeFilter: lockModel.GradesAll,
		Days:        []string{"MON", "TUE", "WED"}, Periods: []int{1, 2, 3, 4}, Builtin: true,
	},
}

// FindBuiltinTemplate returns the catalog entry with the given id.
func FindBuiltinTemplate(templateID string) (Template, bool) {
	for _, t := range BuiltinTemplates {
		if t.TemplateID == templateID {
			return t, true
		}
	}
	return Template{}, false
}

// Resolve maps a template's selectors onto the live catalogs.
// Warnings mark skipped portions; a non-empty errors list means the
// caller must not apply the result.
func Resolve(tpl Template, ctx ResolveContext) (locks []LockSpec, warnings []string, resolveErrors []string) {
	locks = []LockSpec{}
	warnings = []string{}
	resolveErrors = []string{}

	if tpl.SubjectCode == "" {
		resolveErrors = append(resolveErrors, "template has no subject code")
		return
	}
	subjectExists := false
	for _, code := range ctx.Subjects {
		if code == tpl.SubjectCode {
			subjectExists = true
			break
		}
	}
	if !subjectExists {
		resolveErrors = append(resolveErrors,
			fmt.Sprintf("subject %q does not exist", tpl.SubjectCode))
		return
	}

	gradeIDs, gradeWarnings := resolveGrades(tpl, ctx.Grades)
	warnings = append(warnings, gradeWarnings...)
	if len(gradeIDs) == 0 {
		resolveErrors = append(resolveErrors, "no grades match the template's grade filter")
		return
	}

	timeslotIDs := resolveTimeslots(tpl, ctx.Timeslots)
	if len(timeslotIDs) == 0 {
		resolveErrors = append(resolveErrors, "no timeslots match the template's day/period selector")
		return
	}
	tsService.SortIDs(timeslotIDs)

	var roomID *int
	if tpl.RoomName != nil {
		for _, r := range ctx.Rooms {
			if r.RoomName == *tpl.RoomName {
				id := r.RoomID
				roomID = &id
				break
			}
		}
		if roomID == nil {
			warnings = append(warnings,
				fmt.Sprintf("room %q not found, locks created without a room", *tpl.RoomName))
		}
	}

	inGrades := map[string]bool{}
	for _, g := range gradeIDs {
		inGrades[g] = true
	}
	var respIDs []int
	for _, r := range ctx.Responsibilities {
		if r.SubjectCode == tpl.SubjectCode && inGrades[r.GradeID] {
			respIDs = append(respIDs, r.RespID)
		}
	}
	if len(respIDs) == 0 {
		resolveErrors = append(resolveErrors,
			fmt.Sprintf("no teacher responsibility exists for subject %q in the selected grades", tpl.SubjectCode))
		return
	}

	locks = append(locks, LockSpec{
		SubjectCode:       tpl.SubjectCode,
		RoomID:            roomID,
		TimeslotIDs:       timeslotIDs,
		GradeIDs:          gradeIDs,
		ResponsibilityIDs: respIDs,
		Kind:              tpl.Kind,
	})
	return
}

func resolveGrades(tpl Template, grades []GradeRef) ([]string, []string) {
	var out []string
	var warnings []string

	switch tpl.GradeFilter {
	case lockModel.GradesSpecific:
		known := map[string]bool{}
		for _, g := range grades {
			known[g.GradeID] = true
		}
		for _, id := range tpl.GradeIDs {
			if known[id] {
				out = append(out, id)
			} else {
				warnings = append(warnings, fmt.Sprintf("grade %q not found, skipped", id))
			}
		}
	case lockModel.GradesJunior:
		for _, g := range grades {
			if g.Year >= 1 && g.Year <= 3 {
				out = append(out, g.GradeID)
			}
		}
	case lockModel.GradesSenior:
		for _, g := range grades {
			if g.Year >= 4 && g.Year <= 6 {
				out = append(out, g.GradeID)
			}
		}
	default: // ALL
		for _, g := range grades {
			out = append(out, g.GradeID)
		}
	}
	return out, warnings
}

func resolveTimeslots(tpl Template, timeslots []TimeslotRef) []string {
	dayFilter := map[string]bool{}
	for _, d := range tpl.Days {
		dayFilter[d] = true
	}
	periodFilter := map[int]bool{}
	for _, p := range tpl.Periods {
		periodFilter[p] = true
	}

	var out []string
	for _, ts := range timeslots {
		switch tpl.SelectBreak {
		case lockModel.BreakSelectJunior:
			if ts.Breaktime != tsModel.BreakJunior && ts.Breaktime != tsModel.BreakBoth {
				continue
			}
		case lockModel.BreakSelectSenior:
			if ts.Breaktime != tsModel.BreakSenior && ts.Breaktime != tsModel.BreakBoth {
				continue
			}
		}
		if len(dayFilter) > 0 && !dayFilter[ts.DayOfWeek] {
			continue
		}
		if len(periodFilter) > 0 && !periodFilter[tsService.ParsePeriod(ts.TimeslotID)] {
			continue
		}
		out = append(out, ts.TimeslotID)
	}
	return out
}
