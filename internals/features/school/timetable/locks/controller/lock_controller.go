// file: internals/features/school/timetable/locks/controller/lock_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"timetable_backend/internals/constants"
	gradeModel "timetable_backend/internals/features/school/academics/gradelevels/model"
	respModel "timetable_backend/internals/features/school/academics/responsibilities/model"
	roomModel "timetable_backend/internals/features/school/academics/rooms/model"
	subjectModel "timetable_backend/internals/features/school/academics/subjects/model"
	"timetable_backend/internals/features/school/timetable/locks/dto"
	lockModel "timetable_backend/internals/features/school/timetable/locks/model"
	"timetable_backend/internals/features/school/timetable/locks/service"
	scheduleModel "timetable_backend/internals/features/school/timetable/schedules/model"
	tsModel "timetable_backend/internals/features/school/timetable/timeslots/model"
	helper "timetable_backend/internals/helpers"
	"timetable_backend/internals/helpers/errs"
)

type LockController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewLockController(db *gorm.DB, v *validator.Validate) *LockController {
	return &LockController{DB: db, Validate: v}
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

// checkSpecRefs verifies every id a spec references actually exists,
// so a bad request fails with the offending id instead of a broken
// foreign key.
func (ctl *LockController) checkSpecRefs(c *fiber.Ctx, spec service.LockSpec) error {
	db := ctl.DB.WithContext(c.UserContext())

	var count int64
	if err := db.Model(&subjectModel.SubjectModel{}).
		Where("subject_code = ?", spec.SubjectCode).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewNotFound(spec.SubjectCode, "Subject not found")
	}

	if spec.RoomID != nil {
		if err := db.Model(&roomModel.RoomModel{}).
			Where("room_id = ?", *spec.RoomID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewNotFound(fmt.Sprintf("%d", *spec.RoomID), "Room not found")
		}
	}

	var foundSlots []string
	if err := db.Model(&tsModel.TimeslotModel{}).
		Where("timeslot_id IN ?", spec.TimeslotIDs).
		Pluck("timeslot_id", &foundSlots).Error; err != nil {
		return err
	}
	if missing := firstMissing(spec.TimeslotIDs, foundSlots); missing != "" {
		return errs.NewNotFound(missing, "Timeslot not found")
	}

	var foundGrades []string
	if err := db.Model(&gradeModel.GradeLevelModel{}).
		Where("grade_id IN ?", spec.GradeIDs).
		Pluck("grade_id", &foundGrades).Error; err != nil {
		return err
	}
	if missing := firstMissing(spec.GradeIDs, foundGrades); missing != "" {
		return errs.NewNotFound(missing, "Grade level not found")
	}

	var foundResps []int
	if err := db.Model(&respModel.TeachersResponsibilityModel{}).
		Where("resp_id IN ?", spec.ResponsibilityIDs).
		Pluck("resp_id", &foundResps).Error; err != nil {
		return err
	}
	present := map[int]bool{}
	for _, id := range foundResps {
		present[id] = true
	}
	for _, id := range spec.ResponsibilityIDs {
		if !present[id] {
			return errs.NewNotFound(fmt.Sprintf("%d", id), "Responsibility not found")
		}
	}
	return nil
}

func firstMissing(want, have []string) string {
	present := map[string]bool{}
	for _, id := range have {
		present[id] = true
	}
	for _, id := range want {
		if !present[id] {
			return id
		}
	}
	return ""
}

// writeLocks persists expanded entries plus their teacher links in
// one transaction. Re-applying a spec upserts on class_id and
// replaces the links, so an entry never keeps teachers its spec no
// longer names.
func (ctl *LockController) writeLocks(c *fiber.Ctx, specs []service.LockSpec, entries []scheduleModel.ClassScheduleModel) error {
	classIDs := make([]string, 0, len(entries))
	for _, e := range entries {
		classIDs = append(classIDs, e.ClassID)
	}
	links := service.LinkRows(specs)

	return ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "class_id"}},
			UpdateAll: true,
		}).CreateInBatches(entries, 200).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM class_schedule_resps WHERE class_schedule_id IN ?`,
			classIDs).Error; err != nil {
			return err
		}
		for _, l := range links {
			if err := tx.Exec(`INSERT INTO class_schedule_resps (class_schedule_id, resp_id)
				VALUES (?, ?) ON CONFLICT DO NOTHING`, l.ClassScheduleID, l.RespID).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// List returns a term's locked entries grouped by subject.
func (ctl *LockController) List(c *fiber.Ctx) error {
	year, sem, err := parseTermQuery(c)
	if err != nil {
		return errs.Respond(c, err)
	}

	var rows []scheduleModel.ClassScheduleModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where(`is_locked = TRUE AND timeslot_id IN (
			SELECT timeslot_id FROM timeslots WHERE academic_year = ? AND semester = ?)`, year, sem).
		Preload("Subject").Preload("Room").
		Preload("Responsibilities").Preload("Responsibilities.Teacher").
		Order("subject_code ASC, class_id ASC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch locks")
	}

	grouped := map[string][]scheduleModel.ClassScheduleModel{}
	var order []string
	for _, r := range rows {
		if _, seen := grouped[r.SubjectCode]; !seen {
			order = append(order, r.SubjectCode)
		}
		grouped[r.SubjectCode] = append(grouped[r.SubjectCode], r)
	}

	type group struct {
		SubjectCode string                             `json:"subject_code"`
		LockKind    scheduleModel.LockKind             `json:"lock_kind"`
		Count       int                                `json:"count"`
		Entries     []scheduleModel.ClassScheduleModel `json:"entries"`
	}
	out := make([]group, 0, len(order))
	for _, code := range order {
		g := grouped[code]
		out = append(out, group{
			SubjectCode: code,
			LockKind:    g[0].LockKind,
			Count:       len(g),
			Entries:     g,
		})
	}
	return helper.Success(c, "OK", out)
}

// Create expands and persists one lock request.
func (ctl *LockController) Create(c *fiber.Ctx) error {
	var req dto.CreateLockRequest
	if err := c.BodyParser(&req); err != nil {
		return errs.Respond(c, errs.NewValidation("body", "Invalid payload"))
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	spec := req.ToSpec()
	entries, buildErr := service.BuildLocks(spec)
	if buildErr != nil {
		return errs.Respond(c, buildErr)
	}
	if err := ctl.checkSpecRefs(c, spec); err != nil {
		if ae, ok := err.(*errs.AppError); ok {
			return errs.Respond(c, ae)
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to verify references")
	}

	if err := ctl.writeLocks(c, []service.LockSpec{spec}, entries); err != nil {
		log.Printf("[ERROR] lock creation failed for %s: %v", spec.SubjectCode, err)
		return errs.Respond(c, errs.NewTransaction("Failed to save locks"))
	}

	log.Printf("🔒 created %d locks for subject %s", len(entries), spec.SubjectCode)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Locks created", fiber.Map{
		"count":   len(entries),
		"entries": entries,
	})
}

// CreateBulk expands and persists several lock requests atomically.
func (ctl *LockController) CreateBulk(c *fiber.Ctx) error {
	var req dto.CreateBulkLocksRequest
	if err := c.BodyParser(&req); err != nil {
		return errs.Respond(c, errs.NewValidation("body", "Invalid payload"))
	}
	for i := range req.Locks {
		req.Locks[i].Normalize()
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	specs := make([]service.LockSpec, 0, len(req.Locks))
	for _, l := range req.Locks {
		specs = append(specs, l.ToSpec())
	}
	entries, buildErr := service.BuildBulkLocks(specs)
	if buildErr != nil {
		return errs.Respond(c, buildErr)
	}
	for _, spec := range specs {
		if err := ctl.checkSpecRefs(c, spec); err != nil {
			if ae, ok := err.(*errs.AppError); ok {
				return errs.Respond(c, ae)
			}
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to verify references")
		}
	}

	if err := ctl.writeLocks(c, specs, entries); err != nil {
		log.Printf("[ERROR] bulk lock creation failed: %v", err)
		return errs.Respond(c, errs.NewTransaction("Failed to save locks"))
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Locks created", fiber.Map{
		"count": len(entries),
	})
}

// Delete removes locked entries by class id.
func (ctl *LockController) Delete(c *fiber.Ctx) error {
	var req dto.DeleteLocksRequest
	if err := c.BodyParser(&req); err != nil {
		return errs.Respond(c, errs.NewValidation("body", "Invalid payload"))
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var deleted int64
	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		// Resolve the locked subset first and delete links and rows
		// off the same id list, so a non-locked class id in the
		// request leaves that entry and its teachers untouched.
		var lockedIDs []string
		if err := tx.Model(&scheduleModel.ClassScheduleModel{}).
			Where("class_id IN ? AND is_locked = TRUE", req.ClassIDs).
			Pluck("class_id", &lockedIDs).Error; err != nil {
			return err
		}
		if len(lockedIDs) == 0 {
			return nil
		}
		if err := tx.Exec(`DELETE FROM class_schedule_resps WHERE class_schedule_id IN ?`,
			lockedIDs).Error; err != nil {
			return err
		}
		res := tx.Where("class_id IN ?", lockedIDs).
			Delete(&scheduleModel.ClassScheduleModel{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected
		return nil
	})
	if txErr != nil {
		return errs.Respond(c, errs.NewTransaction("Failed to delete locks"))
	}
	return helper.Success(c, "Locks deleted", fiber.Map{"deleted": deleted})
}

/* =======================================================
   Templates
   ======================================================= */

// loadTemplate finds a builtin catalog entry or a stored custom
// template by id.
func (ctl *LockController) loadTemplate(c *fiber.Ctx, templateID string) (service.Template, error) {
	if tpl, ok := service.FindBuiltinTemplate(templateID); ok {
		return tpl, nil
	}
	var row lockModel.LockTemplateModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&row, "template_id = ?", templateID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return service.Template{}, errs.NewNotFound(templateID, "Lock template not found")
		}
		return service.Template{}, err
	}
	return dto.TemplateFromModel(row)
}

// loadResolveContext gathers the live catalogs a template resolves
// against for one term.
func (ctl *LockController) loadResolveContext(c *fiber.Ctx, year int, sem constants.Semester) (service.ResolveContext, error) {
	db := ctl.DB.WithContext(c.UserContext())
	ctx := service.ResolveContext{}

	var grades []gradeModel.GradeLevelModel
	if err := db.Order("grade_id ASC").Find(&grades).Error; err != nil {
		return ctx, err
	}
	for _, g := range grades {
		ctx.Grades = append(ctx.Grades, service.GradeRef{GradeID: g.GradeID, Year: g.Year})
	}

	var slots []tsModel.TimeslotModel
	if err := db.Where("academic_year = ? AND semester = ?", year, sem).
		Find(&slots).Error; err != nil {
		return ctx, err
	}
	for _, s := range slots {
		ctx.Timeslots = append(ctx.Timeslots, service.TimeslotRef{
			TimeslotID: s.TimeslotID,
			DayOfWeek:  s.DayOfWeek,
			Breaktime:  s.Breaktime,
		})
	}

	var rooms []roomModel.RoomModel
	if err := db.Find(&rooms).Error; err != nil {
		return ctx, err
	}
	for _, r := range rooms {
		ctx.Rooms = append(ctx.Rooms, service.RoomRef{RoomID: r.RoomID, RoomName: r.RoomName})
	}

	if err := db.Model(&subjectModel.SubjectModel{}).
		Pluck("subject_code", &ctx.Subjects).Error; err != nil {
		return ctx, err
	}

	var resps []respModel.TeachersResponsibilityModel
	if err := db.Where("academic_year = ? AND semester = ?", year, sem).
		Find(&resps).Error; err != nil {
		return ctx, err
	}
	for _, r := range resps {
		ctx.Responsibilities = append(ctx.Responsibilities, service.RespRef{
			RespID:      r.RespID,
			TeacherID:   r.TeacherID,
			SubjectCode: r.SubjectCode,
			GradeID:     r.GradeID,
		})
	}
	return ctx, nil
}

// ListTemplates returns the builtin catalog plus stored custom
// templates.
func (ctl *LockController) ListTemplates(c *fiber.Ctx) error {
	var custom []lockModel.LockTemplateModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Order("created_at ASC").Find(&custom).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch templates")
	}
	return helper.Success(c, "OK", fiber.Map{
		"builtin": service.BuiltinTemplates,
		"custom":  custom,
	})
}

// CreateTemplate stores a custom template.
func (ctl *LockController) CreateTemplate(c *fiber.Ctx) error {
	var req dto.CreateLockTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return errs.Respond(c, errs.NewValidation("body", "Invalid payload"))
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.GradeFilter == string(lockModel.GradesSpecific) && len(req.GradeIDs) == 0 {
		return errs.Respond(c, errs.NewValidation("grade_ids", "Grade list is required for the SPECIFIC filter"))
	}
	if req.SelectBreak == "" && len(req.Days) == 0 && len(req.Periods) == 0 {
		return errs.Respond(c, errs.NewValidation("days", "A timeslot selector (break, days or periods) is required"))
	}

	row, convErr := req.ToModel()
	if convErr != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to encode template")
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save template")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Template created", row)
}

// DeleteTemplate removes a custom template. Builtins cannot be
// deleted.
func (ctl *LockController) DeleteTemplate(c *fiber.Ctx) error {
	templateID := c.Params("id")
	if _, ok := service.FindBuiltinTemplate(templateID); ok {
		return errs.Respond(c, errs.NewValidation("id", "Builtin templates cannot be deleted"))
	}

	tx := ctl.DB.WithContext(c.UserContext()).
		Delete(&lockModel.LockTemplateModel{}, "template_id = ?", templateID)
	if tx.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete template")
	}
	if tx.RowsAffected == 0 {
		return errs.Respond(c, errs.NewNotFound(templateID, "Lock template not found"))
	}
	return helper.Success(c, "Template deleted", fiber.Map{"deleted": true})
}

// ResolveTemplate previews what a template would create for a term.
func (ctl *LockController) ResolveTemplate(c *fiber.Ctx) error {
	year, sem, err := parseTermQuery(c)
	if err != nil {
		return errs.Respond(c, err)
	}

	tpl, loadErr := ctl.loadTemplate(c, c.Params("id"))
	if loadErr != nil {
		if ae, ok := loadErr.(*errs.AppError); ok {
			return errs.Respond(c, ae)
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load template")
	}

	ctx, ctxErr := ctl.loadResolveContext(c, year, sem)
	if ctxErr != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load term catalogs")
	}

	locks, warnings, resolveErrors := service.Resolve(tpl, ctx)
	return helper.Success(c, "OK", fiber.Map{
		"template": tpl,
		"locks":    locks,
		"warnings": warnings,
		"errors":   resolveErrors,
	})
}

// ApplyTemplate resolves a template and persists the produced locks.
// Resolution errors block application; warnings are passed through.
func (ctl *LockController) ApplyTemplate(c *fiber.Ctx) error {
	year, sem, err := parseTermQuery(c)
	if err != nil {
		return errs.Respond(c, err)
	}

	tpl, loadErr := ctl.loadTemplate(c, c.Params("id"))
	if loadErr != nil {
		if ae, ok := loadErr.(*errs.AppError); ok {
			return errs.Respond(c, ae)
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load template")
	}

	ctx, ctxErr := ctl.loadResolveContext(c, year, sem)
	if ctxErr != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load term catalogs")
	}

	locks, warnings, resolveErrors := service.Resolve(tpl, ctx)
	if len(resolveErrors) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"code":    fiber.StatusUnprocessableEntity,
			"status":  "error",
			"error":   errs.CodeTemplateResolution,
			"message": "Template cannot be applied",
			"errors":  resolveErrors,
		})
	}

	entries, buildErr := service.BuildBulkLocks(locks)
	if buildErr != nil {
		return errs.Respond(c, buildErr)
	}
	if err := ctl.writeLocks(c, locks, entries); err != nil {
		log.Printf("[ERROR] template application failed for %s: %v", tpl.TemplateID, err)
		return errs.Respond(c, errs.NewTransaction("Failed to save locks"))
	}

	log.Printf("🔒 applied template %s: %d locks for term %s", tpl.TemplateID, len(entries), constants.ConfigID(year, sem))
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Template applied", fiber.Map{
		"count":    len(entries),
		"warnings": warnings,
	})
}
