// file: internals/features/school/academics/rooms/route/room_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"timetable_backend/internals/features/school/academics/rooms/controller"
)

func RoomPublicRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewRoomController(db, v)
	g := r.Group("/rooms")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
}

func RoomAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewRoomController(db, v)
	g := r.Group("/rooms")
	g.Post("/", ctl.Create)
	g.Patch("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
