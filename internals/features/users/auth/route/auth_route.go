// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"timetable_backend/internals/configs"
	"timetable_backend/internals/features/users/auth/controller"
	"timetable_backend/internals/middlewares"
	authmw "timetable_backend/internals/middlewares/auth"
)

func AuthRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewAuthController(db, v)
	g := r.Group("/auth")
	g.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	g.Get("/me", authmw.AuthJWT(authmw.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	}), ctl.Me)
}
