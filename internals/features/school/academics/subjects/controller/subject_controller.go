// file: internals/features/school/academics/subjects/controller/subject_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"timetable_backend/internals/features/school/academics/subjects/dto"
	"timetable_backend/internals/features/school/academics/subjects/model"
	helper "timetable_backend/internals/helpers"
	"timetable_backend/internals/helpers/errs"
)

type SubjectController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSubjectController(db *gorm.DB, v *validator.Validate) *SubjectController {
	return &SubjectController{DB: db, Validate: v}
}

func (ctl *SubjectController) List(c *fiber.Ctx) error {
	db := ctl.DB.WithContext(c.UserContext()).Model(&model.SubjectModel{})

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		s := "%" + strings.ToLower(search) + "%"
		db = db.Where("(LOWER(subject_code) LIKE ? OR LOWER(subject_name) LIKE ?)", s, s)
	}
	if cat := strings.TrimSpace(c.Query("category")); cat != "" {
		db = db.Where("category = ?", cat)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count subjects")
	}

	p := helper.ParseQuery(c)
	var rows []model.SubjectModel
	if err := db.Order("subject_code ASC").Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch subjects")
	}
	return helper.Success(c, "OK", fiber.Map{
		"items": rows,
		"total": total,
		"page":  p.Page,
		"limit": p.Limit(),
	})
}

func (ctl *SubjectController) GetByCode(c *fiber.Ctx) error {
	code := strings.ToUpper(strings.TrimSpace(c.Params("code")))

	var row model.SubjectModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&row, "subject_code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.Respond(c, errs.NewNotFound(code, "Subject not found"))
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch subject")
	}
	return helper.Success(c, "OK", row)
}

func (ctl *SubjectController) Create(c *fiber.Ctx) error {
	var req dto.CreateSubjectRequest
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
			return errs.Respond(c, errs.NewDuplicate("Subject code already exists"))
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create subject")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Subject created", row)
}

func (ctl *SubjectController) Update(c *fiber.Ctx) error {
	code := strings.ToUpper(strings.TrimSpace(c.Params("code")))

	var req dto.UpdateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return errs.Respond(c, errs.NewValidation("body", "Invalid payload"))
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row model.SubjectModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&row, "subject_code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.Respond(c, errs.NewNotFound(code, "Subject not found"))
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch subject")
	}

	updates := req.BuildUpdateMap()
	if len(updates) == 0 {
		return errs.Respond(c, errs.NewValidation("body", "No fields to update"))
	}
	if err := ctl.DB.WithContext(c.UserContext()).Model(&row).Updates(updates).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update subject")
	}
	return helper.Success(c, "Subject updated", row)
}

func (ctl *SubjectController) Delete(c *fiber.Ctx) error {
	code := strings.ToUpper(strings.TrimSpace(c.Params("code")))

	tx := ctl.DB.WithContext(c.UserContext()).Delete(&model.SubjectModel{}, "subject_code = ?", code)
	if tx.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete subject")
	}
	if tx.RowsAffected == 0 {
		return errs.Respond(c, errs.NewNotFound(code, "Subject not found"))
	}
	return helper.Success(c, "Subject deleted", fiber.Map{"deleted": true})
}
