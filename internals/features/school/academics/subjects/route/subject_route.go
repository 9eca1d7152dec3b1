// file: internals/features/school/academics/subjects/route/subject_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"timetable_backend/internals/features/school/academics/subjects/controller"
)

func SubjectPublicRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewSubjectController(db, v)
	g := r.Group("/subjects")
	g.Get("/", ctl.List)
	g.Get("/:code", ctl.GetByCode)
}

func SubjectAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewSubjectController(db, v)
	g := r.Group("/subjects")
	g.Post("/", ctl.Create)
	g.Patch("/:code", ctl.Update)
	g.Delete("/:code", ctl.Delete)
}
