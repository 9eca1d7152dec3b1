// file: internals/features/school/timetable/timeslots/route/timeslot_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"timetable_backend/internals/features/school/timetable/timeslots/controller"
)

func TimeslotPublicRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewTimeslotController(db, v)
	g := r.Group("/timeslots")
	g.Get("/", ctl.List)
	g.Get("/one", ctl.GetByID)
	g.Get("/config", ctl.GetConfig)
	g.Get("/stats", ctl.Stats)
}

func TimeslotAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewTimeslotController(db, v)
	g := r.Group("/timeslots")
	g.Post("/generate", ctl.Generate)
	g.Delete("/", ctl.DeleteTerm)
}
