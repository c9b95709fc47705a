package db

import (
	"gorm.io/gorm"

	types "github.com/Digital-Coach-Women/APP-API/internal/domain"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(

		// =========================
		// Identity + auth
		// =========================
		&types.User{},
		&types.UserToken{},

		// =========================
		// Catalog (read-mostly structure)
		// =========================
		&types.Speciality{},
		&types.SpecialityLevel{},
		&types.Course{},
		&types.CourseLesson{},

		// =========================
		// Per-user progress cascade
		// =========================
		&types.UserSpecialityLevel{},
		&types.UserCourse{},
		&types.UserCourseLesson{},

		// =========================
		// Direct messages
		// =========================
		&types.Chat{},
		&types.ChatMessage{},
	)
}
