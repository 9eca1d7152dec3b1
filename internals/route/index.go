// file: internals/route/index.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"timetable_backend/internals/configs"
	gradelevelRoute "timetable_backend/internals/features/school/academics/gradelevels/route"
	respRoute "timetable_backend/internals/features/school/academics/responsibilities/route"
	roomRoute "timetable_backend/internals/features/school/academics/rooms/route"
	subjectRoute "timetable_backend/internals/features/school/academics/subjects/route"
	teacherRoute "timetable_backend/internals/features/school/academics/teachers/route"
	lockRoute "timetable_backend/internals/features/school/timetable/locks/route"
	scheduleRoute "timetable_backend/internals/features/school/timetable/schedules/route"
	timeslotRoute "timetable_backend/internals/features/school/timetable/timeslots/route"
	authRoute "timetable_backend/internals/features/users/auth/route"
	authmw "timetable_backend/internals/middlewares/auth"
)

// SetupRoutes mounts the whole API. Reads are public; anything that
// mutates the timetable sits behind JWT + admin role.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	validate := validator.New()

	api := app.Group("/api")

	authRoute.AuthRoutes(api, db, validate)

	public := api.Group("/public")
	teacherRoute.TeacherPublicRoutes(public, db, validate)
	subjectRoute.SubjectPublicRoutes(public, db, validate)
	gradelevelRoute.GradeLevelPublicRoutes(public, db, validate)
	roomRoute.RoomPublicRoutes(public, db, validate)
	respRoute.ResponsibilityPublicRoutes(public, db, validate)
	timeslotRoute.TimeslotPublicRoutes(public, db, validate)
	scheduleRoute.SchedulePublicRoutes(public, db, validate)
	lockRoute.LockPublicRoutes(public, db, validate)

	admin := api.Group("/admin",
		authmw.AuthJWT(authmw.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
		authmw.RequireAdmin(),
	)
	teacherRoute.TeacherAdminRoutes(admin, db, validate)
	subjectRoute.SubjectAdminRoutes(admin, db, validate)
	gradelevelRoute.GradeLevelAdminRoutes(admin, db, validate)
	roomRoute.RoomAdminRoutes(admin, db, validate)
	respRoute.ResponsibilityAdminRoutes(admin, db, validate)
	timeslotRoute.TimeslotAdminRoutes(admin, db, validate)
	lockRoute.LockAdminRoutes(admin, db, validate)
}
