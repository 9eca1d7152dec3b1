// file: internals/features/school/timetable/schedules/route/schedule_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"timetable_backend/internals/features/school/timetable/schedules/controller"
)

func SchedulePublicRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewScheduleController(db, v)
	g := r.Group("/schedules")
	g.Get("/", ctl.List)
	g.Get("/conflicts", ctl.Conflicts)
	g.Get("/conflicts/teacher/:id", ctl.TeacherConflicts)
	g.Post("/validate-drop", ctl.ValidateDrop)
}
