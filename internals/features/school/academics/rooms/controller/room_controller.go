// file: internals/features/school/academics/rooms/controller/room_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"timetable_backend/internals/features/school/academics/rooms/dto"
	"timetable_backend/internals/features/school/academics/rooms/model"
	helper "timetable_backend/internals/helpers"
	"timetable_backend/internals/helpers/errs"
)

type RoomController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewRoomController(db *gorm.DB, v *validator.Validate) *RoomController {
	return &RoomController{DB: db, Validate: v}
}

func (ctl *RoomController) List(c *fiber.Ctx) error {
	db := ctl.DB.WithContext(c.UserContext()).Model(&model.RoomModel{})

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		s := "%" + strings.ToLower(search) + "%"
		db = db.Where("(LOWER(room_name) LIKE ? OR LOWER(COALESCE(building,'')) LIKE ?)", s, s)
	}

	var rows []model.RoomModel
	if err := db.Order("room_id ASC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch rooms")
	}
	return helper.Success(c, "OK", rows)
}

func (ctl *RoomController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return errs.Respond(c, errs.NewValidation("id", "Invalid room id"))
	}

	var row model.RoomModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&row, "room_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.Respond(c, errs.NewNotFound(c.Params("id"), "Room not found"))
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch room")
	}
	return helper.Success(c, "OK", row)
}

func (ctl *RoomController) Create(c *fiber.Ctx) error {
	var req dto.CreateRoomRequest
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
			return errs.Respond(c, errs.NewDuplicate("Room name already in use"))
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create room")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Room created", row)
}

func (ctl *RoomController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return errs.Respond(c, errs.NewValidation("id", "Invalid room id"))
	}

	var req dto.UpdateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return errs.Respond(c, errs.NewValidation("body", "Invalid payload"))
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row model.RoomModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&row, "room_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.Respond(c, errs.NewNotFound(c.Params("id"), "Room not found"))
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch room")
	}

	updates := req.BuildUpdateMap()
	if len(updates) == 0 {
		return errs.Respond(c, errs.NewValidation("body", "No fields to update"))
	}
	if err := ctl.DB.WithContext(c.UserContext()).Model(&row).Updates(updates).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return errs.Respond(c, errs.NewDuplicate("Room name already in use"))
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update room")
	}
	return helper.Success(c, "Room updated", row)
}

func (ctl *RoomController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return errs.Respond(c, errs.NewValidation("id", "Invalid room id"))
	}

	tx := ctl.DB.WithContext(c.UserContext()).Delete(&model.RoomModel{}, "room_id = ?", id)
	if tx.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete room")
	}
	if tx.RowsAffected == 0 {
		return errs.Respond(c, errs.NewNotFound(c.Params("id"), "Room not found"))
	}
	return helper.Success(c, "Room deleted", fiber.Map{"deleted": true})
}
