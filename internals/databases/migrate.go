// file: internals/databases/migrate.go
package database

import (
	"log"

	gradeModel "timetable_backend/internals/features/school/academics/gradelevels/model"
	respModel "timetable_backend/internals/features/school/academics/responsibilities/model"
	roomModel "timetable_backend/internals/features/school/academics/rooms/model"
	subjectModel "timetable_backend/internals/features/school/academics/subjects/model"
	teacherModel "timetable_backend/internals/features/school/academics/teachers/model"
	lockModel "timetable_backend/internals/features/school/timetable/locks/model"
	scheduleModel "timetable_backend/internals/features/school/timetable/schedules/model"
	tsModel "timetable_backend/internals/features/school/timetable/timeslots/model"
	userModel "timetable_backend/internals/features/users/auth/model"
)

// MigrateAll syncs the schema. Gated behind DB_AUTOMIGRATE so
// production deployments can run SQL migrations instead.
func MigrateAll() {
	err := DB.AutoMigrate(
		&userModel.UserModel{},
		&teacherModel.TeacherModel{},
		&subjectModel.SubjectModel{},
		&gradeModel.GradeLevelModel{},
		&roomModel.RoomModel{},
		&respModel.TeachersResponsibilityModel{},
		&tsModel.TimeslotModel{},
		&tsModel.TableConfigModel{},
		&scheduleModel.ClassScheduleModel{},
		&lockModel.LockTemplateModel{},
	)
	if err != nil {
		log.Fatalf("❌ migration failed: %v", err)
	}
	log.Println("✅ schema migrated")
}
