// file: internals/features/school/timetable/timeslots/controller/timeslot_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"timetable_backend/internals/constants"
	respModel "timetable_backend/internals/features/school/academics/responsibilities/model"
	scheduleModel "timetable_backend/internals/features/school/timetable/schedules/model"
	"timetable_backend/internals/features/school/timetable/timeslots/dto"
	"timetable_backend/internals/features/school/timetable/timeslots/model"
	"timetable_backend/internals/features/school/timetable/timeslots/service"
	helper "timetable_backend/internals/helpers"
	"timetable_backend/internals/helpers/errs"
)

type TimeslotController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTimeslotController(db *gorm.DB, v *validator.Validate) *TimeslotController {
	return &TimeslotController{DB: db, Validate: v}
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

// Generate initializes a term's timeslot grid. Rejected when the term
// already has timeslots; the operator must delete the term first.
func (ctl *TimeslotController) Generate(c *fiber.Ctx) error {
	var req dto.GenerateTimeslotsRequest
	if err := c.BodyParser(&req); err != nil {
		return errs.Respond(c, errs.NewValidation("body", "Invalid payload"))
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.HasMinibreak && req.MiniBreak == nil {
		return errs.Respond(c, errs.NewValidation("mini_break", "Mini break config is required when has_minibreak is true"))
	}
	sem, err := constants.ParseSemesterParam(req.Semester)
	if err != nil {
		return errs.Respond(c, errs.NewValidation("semester", "Semester must be 1, 2, SEMESTER_1 or SEMESTER_2"))
	}

	var existing int64
	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&model.TimeslotModel{}).
		Where("academic_year = ? AND semester = ?", req.AcademicYear, sem).
		Count(&existing).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to check existing timeslots")
	}
	if existing > 0 {
		return errs.Respond(c, errs.NewDuplicate("Timeslots already exist for this term, delete the term before regenerating"))
	}

	slots, genErr := service.Generate(req.ToConfig(sem))
	if genErr != nil {
		return errs.Respond(c, genErr)
	}

	rawConfig, mErr := sonic.Marshal(req)
	if mErr != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to encode config")
	}
	cfg := model.TableConfigModel{
		ConfigID:     constants.ConfigID(req.AcademicYear, sem),
		AcademicYear: req.AcademicYear,
		Semester:     sem,
		Config:       rawConfig,
	}

	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "config_id"}},
			UpdateAll: true,
		}).Create(&cfg).Error; err != nil {
			return err
		}
		return tx.CreateInBatches(slots, 200).Error
	})
	if txErr != nil {
		log.Printf("[ERROR] timeslot generation failed for %s: %v", cfg.ConfigID, txErr)
		return errs.Respond(c, errs.NewTransaction("Failed to save generated timeslots"))
	}

	log.Printf("📅 generated %d timeslots for term %s", len(slots), cfg.ConfigID)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Timeslots generated", fiber.Map{
		"config_id": cfg.ConfigID,
		"count":     len(slots),
		"timeslots": slots,
	})
}

// List returns a term's timeslots in day/period order.
func (ctl *TimeslotController) List(c *fiber.Ctx) error {
	year, sem, err := parseTermQuery(c)
	if err != nil {
		return errs.Respond(c, err)
	}

	var rows []model.TimeslotModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("academic_year = ? AND semester = ?", year, sem).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch timeslots")
	}
	service.Sort(rows)
	return helper.Success(c, "OK", rows)
}

// GetByID returns one timeslot. The id carries a slash, so the route
// reads it from a query param.
func (ctl *TimeslotController) GetByID(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return errs.Respond(c, errs.NewValidation("id", "Missing timeslot id"))
	}

	var row model.TimeslotModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&row, "timeslot_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.Respond(c, errs.NewNotFound(id, "Timeslot not found"))
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch timeslot")
	}
	return helper.Success(c, "OK", row)
}

// GetConfig returns the stored generation config for a term.
func (ctl *TimeslotController) GetConfig(c *fiber.Ctx) error {
	year, sem, err := parseTermQuery(c)
	if err != nil {
		return errs.Respond(c, err)
	}

	var cfg model.TableConfigModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&cfg, "config_id = ?", constants.ConfigID(year, sem)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.Respond(c, errs.NewNotFound(constants.ConfigID(year, sem), "No config for this term"))
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch config")
	}
	return helper.Success(c, "OK", cfg)
}

// DeleteTerm removes a term's timeslots plus everything hanging off
// them: schedule entries (and their teacher links), responsibilities
// and the stored config. One transaction so the term never ends up
// half-deleted.
func (ctl *TimeslotController) DeleteTerm(c *fiber.Ctx) error {
	year, sem, err := parseTermQuery(c)
	if err != nil {
		return errs.Respond(c, err)
	}

	var deletedSlots, deletedSchedules, deletedResps int64
	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM class_schedule_resps
			WHERE class_schedule_id IN (
				SELECT class_id FROM class_schedules cs
				JOIN timeslots t ON t.timeslot_id = cs.timeslot_id
				WHERE t.academic_year = ? AND t.semester = ?)`, year, sem).Error; err != nil {
			return err
		}

		res := tx.Where(`timeslot_id IN (
			SELECT timeslot_id FROM timeslots WHERE academic_year = ? AND semester = ?)`, year, sem).
			Delete(&scheduleModel.ClassScheduleModel{})
		if res.Error != nil {
			return res.Error
		}
		deletedSchedules = res.RowsAffected

		res = tx.Where("academic_year = ? AND semester = ?", year, sem).
			Delete(&respModel.TeachersResponsibilityModel{})
		if res.Error != nil {
			return res.Error
		}
		deletedResps = res.RowsAffected

		if err := tx.Delete(&model.TableConfigModel{}, "config_id = ?", constants.ConfigID(year, sem)).Error; err != nil {
			return err
		}

		res = tx.Where("academic_year = ? AND semester = ?", year, sem).
			Delete(&model.TimeslotModel{})
		if res.Error != nil {
			return res.Error
		}
		deletedSlots = res.RowsAffected
		return nil
	})
	if txErr != nil {
		log.Printf("[ERROR] term deletion failed for %s: %v", constants.ConfigID(year, sem), txErr)
		return errs.Respond(c, errs.NewTransaction("Failed to delete term"))
	}
	if deletedSlots == 0 {
		return errs.Respond(c, errs.NewNotFound(constants.ConfigID(year, sem), "No timeslots for this term"))
	}

	log.Printf("🗑️ deleted term %s: %d timeslots, %d schedules, %d responsibilities",
		constants.ConfigID(year, sem), deletedSlots, deletedSchedules, deletedResps)
	return helper.Success(c, "Term deleted", fiber.Map{
		"deleted_timeslots":        deletedSlots,
		"deleted_schedules":        deletedSchedules,
		"deleted_responsibilities": deletedResps,
	})
}

// Stats summarizes a term's grid: slots per day and break counts.
func (ctl *TimeslotController) Stats(c *fiber.Ctx) error {
	year, sem, err := parseTermQuery(c)
	if err != nil {
		return errs.Respond(c, err)
	}

	var rows []model.TimeslotModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("academic_year = ? AND semester = ?", year, sem).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch timeslots")
	}

	perDay := map[string]int{}
	perBreak := map[model.Breaktime]int{}
	for _, r := range rows {
		perDay[r.DayOfWeek]++
		perBreak[r.Breaktime]++
	}
	return helper.Success(c, "OK", fiber.Map{
		"total":     len(rows),
		"per_day":   perDay,
		"per_break": perBreak,
	})
}
