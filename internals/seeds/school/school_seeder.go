// file: internals/seeds/school/school_seeder.go
package school

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	gradeModel "timetable_backend/internals/features/school/academics/gradelevels/model"
	roomModel "timetable_backend/internals/features/school/academics/rooms/model"
	subjectModel "timetable_backend/internals/features/school/academics/subjects/model"
	teacherModel "timetable_backend/internals/features/school/academics/teachers/model"
	userModel "timetable_backend/internals/features/users/auth/model"
)

func strPtr(s string) *string { return &s }
func intPtr(v int) *int       { return &v }

func SeedAll(db *gorm.DB) error {
	if err := seedAdminUser(db); err != nil {
		return err
	}
	if err := seedGradeLevels(db); err != nil {
		return err
	}
	if err := seedSubjects(db); err != nil {
		return err
	}
	if err := seedRooms(db); err != nil {
		return err
	}
	return seedTeachers(db)
}

func seedAdminUser(db *gorm.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("changeme-admin"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := userModel.UserModel{
		Email:    "admin@school.local",
		Password: string(hash),
		FullName: "System Administrator",
		Role:     "admin",
	}
	if err := db.Where("email = ?", admin.Email).
		FirstOrCreate(&admin).Error; err != nil {
		return err
	}
	log.Println("👤 admin user ready")
	return nil
}

func seedGradeLevels(db *gorm.DB) error {
	// Years 1-3 are junior, 4-6 senior; two classrooms per year.
	for year := 1; year <= 6; year++ {
		for number := 1; number <= 2; number++ {
			g := gradeModel.GradeLevelModel{
				GradeID: gradeModel.BuildGradeID(year, number),
				Year:    year,
				Number:  number,
			}
			if err := db.Where("grade_id = ?", g.GradeID).
				FirstOrCreate(&g).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func seedSubjects(db *gorm.DB) error {
	subjects := []subjectModel.SubjectModel{
		{SubjectCode: "MATH", SubjectName: "Mathematics", Credit: 1.5},
		{SubjectCode: "SCI", SubjectName: "Science", Credit: 1.5},
		{SubjectCode: "ENG", SubjectName: "English", Credit: 1.0},
		{SubjectCode: "THAI", SubjectName: "Thai Language", Credit: 1.0},
		{SubjectCode: "SOC", SubjectName: "Social Studies", Credit: 1.0},
		{SubjectCode: "PE", SubjectName: "Physical Education", Credit: 0.5},
		// Non-teaching blocks used by the lock templates.
		{SubjectCode: "LUNCH", SubjectName: "Lunch Break", Credit: 0},
		{SubjectCode: "ASSEMBLY", SubjectName: "School Assembly", Credit: 0},
		{SubjectCode: "CLUB", SubjectName: "Club Activities", Credit: 0.5},
		{SubjectCode: "SCOUT", SubjectName: "Scout Activities", Credit: 0.5},
		{SubjectCode: "EXAM", SubjectName: "Examination Block", Credit: 0},
	}
	for _, s := range subjects {
		row := s
		if err := db.Where("subject_code = ?", row.SubjectCode).
			FirstOrCreate(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedRooms(db *gorm.DB) error {
	rooms := []roomModel.RoomModel{
		{RoomName: "Cafeteria", Building: strPtr("Central"), Floor: intPtr(1)},
		{RoomName: "Main Field"},
		{RoomName: "Room 101", Building: strPtr("A"), Floor: intPtr(1)},
		{RoomName: "Room 102", Building: strPtr("A"), Floor: intPtr(1)},
		{RoomName: "Room 201", Building: strPtr("A"), Floor: intPtr(2)},
		{RoomName: "Science Lab", Building: strPtr("B"), Floor: intPtr(3)},
	}
	for _, r := range rooms {
		row := r
		if err := db.Where("room_name = ?", row.RoomName).
			FirstOrCreate(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedTeachers(db *gorm.DB) error {
	teachers := []teacherModel.TeacherModel{
		{Prefix: "Mr.", Firstname: "Somchai", Lastname: "Wongsa", Department: strPtr("Mathematics")},
		{Prefix: "Mrs.", Firstname: "Malee", Lastname: "Srisuk", Department: strPtr("Science")},
		{Prefix: "Ms.", Firstname: "Anong", Lastname: "Chaiyo", Department: strPtr("Languages")},
	}
	for _, t := range teachers {
		row := t
		if err := db.Where("firstname = ? AND lastname = ?", row.Firstname, row.Lastname).
			FirstOrCreate(&row).Error; err != nil {
			return err
		}
	}
	return nil
}
