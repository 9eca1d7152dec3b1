// file: internals/features/school/academics/gradelevels/route/gradelevel_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"timetable_backend/internals/features/school/academics/gradelevels/controller"
)

func GradeLevelPublicRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewGradeLevelController(db, v)
	g := r.Group("/gradelevels")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
}

func GradeLevelAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewGradeLevelController(db, v)
	g := r.Group("/gradelevels")
	g.Post("/", ctl.Create)
	g.Delete("/:id", ctl.Delete)
}
