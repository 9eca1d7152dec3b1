// file: internals/features/school/academics/teachers/route/teacher_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"timetable_backend/internals/features/school/academics/teachers/controller"
)

// Public: read-only. Admin: mutations.
func TeacherPublicRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewTeacherController(db, v)
	g := r.Group("/teachers")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
}

func TeacherAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewTeacherController(db, v)
	g := r.Group("/teachers")
	g.Post("/", ctl.Create)
	g.Patch("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
