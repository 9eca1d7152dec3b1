// file: internals/features/school/academics/responsibilities/controller/responsibility_controller.go
package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"timetable_backend/internals/constants"
	"timetable_backend/internals/features/school/academics/responsibilities/dto"
	"timetable_backend/internals/features/school/academics/responsibilities/model"
	helper "timetable_backend/internals/helpers"
	"timetable_backend/internals/helpers/errs"
)

type ResponsibilityController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewResponsibilityController(db *gorm.DB, v *validator.Validate) *ResponsibilityController {
	return &ResponsibilityController{DB: db, Validate: v}
}

// parseTerm reads academic_year + semester query params shared by the
// term-scoped endpoints.
func parseTerm(c *fiber.Ctx) (int, constants.Semester, error) {
	year, err := strconv.Atoi(c.Query("academic_year"))
	if err != nil || year <= 0 {
		return 0, "", errs.NewValidation("academic_year", "Invalid or missing academic_year")
	}
	sem, err := constants.ParseSemesterParam(c.Query("semester"))
	if err != nil {
		return 0, "", errs.NewValidation("semester", "Invalid or missing semester")
	}
	return year, sem, nil
}

func (ctl *ResponsibilityController) ListByTerm(c *fiber.Ctx) error {
	year, sem, err := parseTerm(c)
	if err != nil {
		return errs.Respond(c, err)
	}

	db := ctl.DB.WithContext(c.UserContext()).
		Model(&model.TeachersResponsibilityModel{}).
		Where("academic_year = ? AND semester = ?", year, sem).
		Preload("Teacher").Preload("Subject").Preload("Grade")

	if tid := c.Query("teacher_id"); tid != "" {
		id, convErr := strconv.Atoi(tid)
		if convErr != nil {
			return errs.Respond(c, errs.NewValidation("teacher_id", "Invalid teacher_id"))
		}
		db = db.Where("teacher_id = ?", id)
	}
	if gid := c.Query("grade_id"); gid != "" {
		db = db.Where("grade_id = ?", gid)
	}

	var rows []model.TeachersResponsibilityModel
	if err := db.Order("grade_id ASC, subject_code ASC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch responsibilities")
	}
	return helper.Success(c, "OK", rows)
}

func (ctl *ResponsibilityController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return errs.Respond(c, errs.NewValidation("id", "Invalid responsibility id"))
	}

	var row model.TeachersResponsibilityModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Preload("Teacher").Preload("Subject").Preload("Grade").
		First(&row, "resp_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.Respond(c, errs.NewNotFound(c.Params("id"), "Responsibility not found"))
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch responsibility")
	}
	return helper.Success(c, "OK", row)
}

func (ctl *ResponsibilityController) Create(c *fiber.Ctx) error {
	var req dto.CreateResponsibilityRequest
	if err := c.BodyParser(&req); err != nil {
		return errs.Respond(c, errs.NewValidation("body", "Invalid payload"))
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	sem, err := constants.ParseSemesterParam(req.Semester)
	if err != nil {
		return errs.Respond(c, errs.NewValidation("semester", "Semester must be 1, 2, SEMESTER_1 or SEMESTER_2"))
	}

	// Same subject+grade+term may not be assigned twice.
	var count int64
	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&model.TeachersResponsibilityModel{}).
		Where("grade_id = ? AND subject_code = ? AND academic_year = ? AND semester = ?",
			req.GradeID, req.SubjectCode, req.AcademicYear, sem).
		Count(&count).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to check existing assignment")
	}
	if count > 0 {
		return errs.Respond(c, errs.NewDuplicate("This subject is already assigned for this grade and term"))
	}

	row := req.ToModel(sem)
	if err := ctl.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create responsibility")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Responsibility created", row)
}

func (ctl *ResponsibilityController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return errs.Respond(c, errs.NewValidation("id", "Invalid responsibility id"))
	}

	var req dto.UpdateResponsibilityRequest
	if err := c.BodyParser(&req); err != nil {
		return errs.Respond(c, errs.NewValidation("body", "Invalid payload"))
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row model.TeachersResponsibilityModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&row, "resp_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.Respond(c, errs.NewNotFound(c.Params("id"), "Responsibility not found"))
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch responsibility")
	}

	updates := req.BuildUpdateMap()
	if len(updates) == 0 {
		return errs.Respond(c, errs.NewValidation("body", "No fields to update"))
	}
	if err := ctl.DB.WithContext(c.UserContext()).Model(&row).Updates(updates).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update responsibility")
	}
	return helper.Success(c, "Responsibility updated", row)
}

func (ctl *ResponsibilityController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return errs.Respond(c, errs.NewValidation("id", "Invalid responsibility id"))
	}

	tx := ctl.DB.WithContext(c.UserContext()).
		Delete(&model.TeachersResponsibilityModel{}, "resp_id = ?", id)
	if tx.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete responsibility")
	}
	if tx.RowsAffected == 0 {
		return errs.Respond(c, errs.NewNotFound(c.Params("id"), "Responsibility not found"))
	}
	return helper.Success(c, "Responsibility deleted", fiber.Map{"deleted": true})
}
