// file: internals/features/school/timetable/schedules/controller/schedule_controller.go
package controller

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"timetable_backend/internals/constants"
	respModel "timetable_backend/internals/features/school/academics/responsibilities/model"
	"timetable_backend/internals/features/school/timetable/schedules/dto"
	"timetable_backend/internals/features/school/timetable/schedules/model"
	"timetable_backend/internals/features/school/timetable/schedules/service"
	helper "timetable_backend/internals/helpers"
	"timetable_backend/internals/helpers/errs"
)

type ScheduleController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewScheduleController(db *gorm.DB, v *validator.Validate) *ScheduleController {
	return &ScheduleController{DB: db, Validate: v}
}

func parseTermQuery(c *fiber.Ctx) (int, constants.Semester, error) {
	year := c.QueryInt("academic_year")
	if year <= 0 {
		return 0, "", errs.NewValidation("academic_year", "Invalid or missing academic_year")
	}
	sem, err := constants.ParseSemesterParam(c.Query("semester"))
	if err != nil {
		return 0, "", errs.NewValidation("semester", "Invalid or missing semester")
	}
	return year, sem, nil
}

// fetchTermEntries loads a term's schedule rows with everything the
// conflict report needs denormalized, flattened for the detector.
func (ctl *ScheduleController) fetchTermEntries(c *fiber.Ctx, year int, sem constants.Semester) ([]service.ScheduleEntry, error) {
	var rows []model.ClassScheduleModel
	err := ctl.DB.WithContext(c.UserContext()).
		Where(`timeslot_id IN (
			SELECT timeslot_id FROM timeslots WHERE academic_year = ? AND semester = ?)`, year, sem).
		Preload("Subject").Preload("Room").
		Preload("Responsibilities").Preload("Responsibilities.Teacher").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return flattenEntries(rows), nil
}

func flattenEntries(rows []model.ClassScheduleModel) []service.ScheduleEntry {
	entries := make([]service.ScheduleEntry, 0, len(rows))
	for _, r := range rows {
		e := service.ScheduleEntry{
			ClassID:     r.ClassID,
			TimeslotID:  r.TimeslotID,
			SubjectCode: r.SubjectCode,
			GradeID:     r.GradeID,
			RoomID:      r.RoomID,
			IsLocked:    r.IsLocked,
			Teachers:    []service.TeacherRef{},
		}
		if r.Subject != nil {
			e.SubjectName = r.Subject.SubjectName
		}
		if r.Room != nil {
			e.RoomName = r.Room.RoomName
		}
		for _, resp := range r.Responsibilities {
			ref := service.TeacherRef{TeacherID: resp.TeacherID}
			if resp.Teacher != nil {
				ref.Name = resp.Teacher.FullName()
			}
			e.Teachers = append(e.Teachers, ref)
		}
		entries = append(entries, e)
	}
	return entries
}

// List returns a term's schedule rows with relations preloaded.
func (ctl *ScheduleController) List(c *fiber.Ctx) error {
	year, sem, err := parseTermQuery(c)
	if err != nil {
		return errs.Respond(c, err)
	}

	db := ctl.DB.WithContext(c.UserContext()).
		Where(`timeslot_id IN (
			SELECT timeslot_id FROM timeslots WHERE academic_year = ? AND semester = ?)`, year, sem).
		Preload("Subject").Preload("Grade").Preload("Room").
		Preload("Responsibilities").Preload("Responsibilities.Teacher")

	if gid := c.Query("grade_id"); gid != "" {
		db = db.Where("grade_id = ?", gid)
	}

	var rows []model.ClassScheduleModel
	if err := db.Order("timeslot_id ASC, class_id ASC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch schedules")
	}
	return helper.Success(c, "OK", rows)
}

// Conflicts runs the whole-term conflict report.
func (ctl *ScheduleController) Conflicts(c *fiber.Ctx) error {
	year, sem, err := parseTermQuery(c)
	if err != nil {
		return errs.Respond(c, err)
	}

	entries, err := ctl.fetchTermEntries(c, year, sem)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch schedules")
	}
	return helper.Success(c, "OK", service.Detect(entries))
}

// TeacherConflicts answers "what conflicts with me" for one teacher.
func (ctl *ScheduleController) TeacherConflicts(c *fiber.Ctx) error {
	year, sem, err := parseTermQuery(c)
	if err != nil {
		return errs.Respond(c, err)
	}
	teacherID, convErr := strconv.Atoi(c.Params("id"))
	if convErr != nil {
		return errs.Respond(c, errs.NewValidation("id", "Invalid teacher id"))
	}

	entries, err := ctl.fetchTermEntries(c, year, sem)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch schedules")
	}

	conflicting := service.DetectForTeacher(entries, teacherID)
	if conflicting == nil {
		conflicting = []service.ScheduleEntry{}
	}
	return helper.Success(c, "OK", fiber.Map{
		"teacher_id": teacherID,
		"entries":    conflicting,
	})
}

// ValidateDrop checks one prospective placement before the UI commits
// a drag-and-drop move.
func (ctl *ScheduleController) ValidateDrop(c *fiber.Ctx) error {
	year, sem, err := parseTermQuery(c)
	if err != nil {
		return errs.Respond(c, err)
	}

	var req dto.ValidateDropRequest
	if err := c.BodyParser(&req); err != nil {
		return errs.Respond(c, errs.NewValidation("body", "Invalid payload"))
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	entries, err := ctl.fetchTermEntries(c, year, sem)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch schedules")
	}

	var respRows []respModel.TeachersResponsibilityModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("academic_year = ? AND semester = ?", year, sem).
		Find(&respRows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch responsibilities")
	}
	resps := make([]service.ResponsibilityRef, 0, len(respRows))
	for _, r := range respRows {
		resps = append(resps, service.ResponsibilityRef{
			TeacherID:   r.TeacherID,
			SubjectCode: r.SubjectCode,
			GradeID:     r.GradeID,
		})
	}

	issue := service.CheckPlacement(entries, resps, req.ToPlacement())
	return helper.Success(c, "OK", fiber.Map{
		"allowed": issue == nil,
		"issue":   issue,
	})
}
