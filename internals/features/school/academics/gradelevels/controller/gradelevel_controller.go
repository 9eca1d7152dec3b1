// file: internals/features/school/academics/gradelevels/controller/gradelevel_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"timetable_backend/internals/features/school/academics/gradelevels/dto"
	"timetable_backend/internals/features/school/academics/gradelevels/model"
	helper "timetable_backend/internals/helpers"
	"timetable_backend/internals/helpers/errs"
)

type GradeLevelController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewGradeLevelController(db *gorm.DB, v *validator.Validate) *GradeLevelController {
	return &GradeLevelController{DB: db, Validate: v}
}

func (ctl *GradeLevelController) List(c *fiber.Ctx) error {
	db := ctl.DB.WithContext(c.UserContext()).Model(&model.GradeLevelModel{})

	switch c.Query("level") {
	case "junior":
		db = db.Where("year BETWEEN 1 AND ?", model.JuniorMaxYear)
	case "senior":
		db = db.Where("year BETWEEN ? AND ?", model.JuniorMaxYear+1, model.SeniorMaxYear)
	}

	var rows []model.GradeLevelModel
	if err := db.Order("year ASC, number ASC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch grade levels")
	}

	out := make([]dto.GradeLevelResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.ToGradeLevelResponse(row))
	}
	return helper.Success(c, "OK", out)
}

func (ctl *GradeLevelController) GetByID(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))

	var row model.GradeLevelModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&row, "grade_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.Respond(c, errs.NewNotFound(id, "Grade level not found"))
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch grade level")
	}
	return helper.Success(c, "OK", dto.ToGradeLevelResponse(row))
}

func (ctl *GradeLevelController) Create(c *fiber.Ctx) error {
	var req dto.CreateGradeLevelRequest
	if err := c.BodyParser(&req); err != nil {
		return errs.Respond(c, errs.NewValidation("body", "Invalid payload"))
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return errs.Respond(c, errs.NewDuplicate("Grade level already exists"))
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create grade level")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Grade level created", dto.ToGradeLevelResponse(row))
}

func (ctl *GradeLevelController) Delete(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))

	tx := ctl.DB.WithContext(c.UserContext()).Delete(&model.GradeLevelModel{}, "grade_id = ?", id)
	if tx.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete grade level")
	}
	if tx.RowsAffected == 0 {
		return errs.Respond(c, errs.NewNotFound(id, "Grade level not found"))
	}
	return helper.Success(c, "Grade level deleted", fiber.Map{"deleted": true})
}
