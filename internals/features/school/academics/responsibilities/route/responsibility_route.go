// file: internals/features/school/academics/responsibilities/route/responsibility_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"timetable_backend/internals/features/school/academics/responsibilities/controller"
)

func ResponsibilityPublicRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewResponsibilityController(db, v)
	g := r.Group("/responsibilities")
	g.Get("/", ctl.ListByTerm)
	g.Get("/:id", ctl.GetByID)
}

func ResponsibilityAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewResponsibilityController(db, v)
	g := r.Group("/responsibilities")
	g.Post("/", ctl.Create)
	g.Patch("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
