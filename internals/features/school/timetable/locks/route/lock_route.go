// file: internals/features/school/timetable/locks/route/lock_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"timetable_backend/internals/features/school/timetable/locks/controller"
)

func LockPublicRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewLockController(db, v)
	g := r.Group("/locks")
	g.Get("/", ctl.List)
	g.Get("/templates", ctl.ListTemplates)
	g.Get("/templates/:id/resolve", ctl.ResolveTemplate)
}

func LockAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewLockController(db, v)
	g := r.Group("/locks")
	g.Post("/", ctl.Create)
	g.Post("/bulk", ctl.CreateBulk)
	g.Delete("/", ctl.Delete)
	g.Post("/templates", ctl.CreateTemplate)
	g.Delete("/templates/:id", ctl.DeleteTemplate)
	g.Post("/templates/:id/apply", ctl.ApplyTemplate)
}
