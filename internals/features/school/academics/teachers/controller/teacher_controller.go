// file: internals/features/school/academics/teachers/controller/teacher_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"timetable_backend/internals/features/school/academics/teachers/dto"
	"timetable_backend/internals/features/school/academics/teachers/model"
	helper "timetable_backend/internals/helpers"
	"timetable_backend/internals/helpers/errs"
)

/* =======================================================
   CONTROLLER
   ======================================================= */

type TeacherController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTeacherController(db *gorm.DB, v *validator.Validate) *TeacherController {
	return &TeacherController{DB: db, Validate: v}
}

func (ctl *TeacherController) List(c *fiber.Ctx) error {
	db := ctl.DB.WithContext(c.UserContext()).Model(&model.TeacherModel{})

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		s := "%" + strings.ToLower(search) + "%"
		db = db.Where("(LOWER(firstname) LIKE ? OR LOWER(lastname) LIKE ? OR LOWER(COALESCE(department,'')) LIKE ?)", s, s, s)
	}
	if dept := strings.TrimSpace(c.Query("department")); dept != "" {
		db = db.Where("department = ?", dept)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count teachers")
	}

	p := helper.ParseQuery(c)
	var rows []model.TeacherModel
	if err := db.Order("teacher_id ASC").Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch teachers")
	}

	out := make([]dto.TeacherResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.ToTeacherResponse(row))
	}
	return helper.Success(c, "OK", fiber.Map{
		"items": out,
		"total": total,
		"page":  p.Page,
		"limit": p.Limit(),
	})
}

func (ctl *TeacherController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return errs.Respond(c, errs.NewValidation("id", "Invalid teacher id"))
	}

	var row model.TeacherModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&row, "teacher_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.Respond(c, errs.NewNotFound(c.Params("id"), "Teacher not found"))
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch teacher")
	}
	return helper.Success(c, "OK", dto.ToTeacherResponse(row))
}

func (ctl *TeacherController) Create(c *fiber.Ctx) error {
	var req dto.CreateTeacherRequest
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
			return errs.Respond(c, errs.NewDuplicate("Teacher email already in use"))
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create teacher")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Teacher created", dto.ToTeacherResponse(row))
}

func (ctl *TeacherController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return errs.Respond(c, errs.NewValidation("id", "Invalid teacher id"))
	}

	var req dto.UpdateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return errs.Respond(c, errs.NewValidation("body", "Invalid payload"))
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row model.TeacherModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&row, "teacher_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.Respond(c, errs.NewNotFound(c.Params("id"), "Teacher not found"))
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch teacher")
	}

	updates := req.BuildUpdateMap()
	if len(updates) == 0 {
		return errs.Respond(c, errs.NewValidation("body", "No fields to update"))
	}
	if err := ctl.DB.WithContext(c.UserContext()).Model(&row).Updates(updates).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return errs.Respond(c, errs.NewDuplicate("Teacher email already in use"))
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update teacher")
	}
	return helper.Success(c, "Teacher updated", dto.ToTeacherResponse(row))
}

func (ctl *TeacherController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return errs.Respond(c, errs.NewValidation("id", "Invalid teacher id"))
	}

	tx := ctl.DB.WithContext(c.UserContext()).Delete(&model.TeacherModel{}, "teacher_id = ?", id)
	if tx.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete teacher")
	}
	if tx.RowsAffected == 0 {
		return errs.Respond(c, errs.NewNotFound(c.Params("id"), "Teacher not found"))
	}
	return helper.Success(c, "Teacher deleted", fiber.Map{"deleted": true})
}
