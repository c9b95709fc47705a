package progress

import (
	"time"

	"github.com/google/uuid"

	"github.com/Digital-Coach-Women/APP-API/internal/domain/catalog"
	"github.com/Digital-Coach-Women/APP-API/internal/domain/user"
)

// UserCourse is one user's progress on one course under an enrollment.
// Exactly one row exists per (enrollment, course); all rows are created in
// the same transaction as the enrollment itself.
type UserCourse struct {
	ID                    uuid.UUID            `gorm:"type:uuid;primaryKey" json:"id"`
	UserSpecialityLevelID uuid.UUID            `gorm:"type:uuid;not null;index" json:"user_speciality_level_id"`
	UserSpecialityLevel   *UserSpecialityLevel `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserSpecialityLevelID;references:ID" json:"user_speciality_level,omitempty"`
	CourseID              uuid.UUID            `gorm:"type:uuid;not null;index" json:"course_id"`
	Course                *catalog.Course      `gorm:"constraint:OnDelete:CASCADE;foreignKey:CourseID;references:ID" json:"course,omitempty"`
	UserID                uuid.UUID            `gorm:"type:uuid;not null;index" json:"user_id"`
	User                  *user.User           `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`

	// IsFinish only ever transitions false -> true.
	IsFinish bool `gorm:"not null;default:false;column:is_finish" json:"is_finish"`
	Time     int  `gorm:"not null;default:0;column:time" json:"time"`

	Lessons []UserCourseLesson `gorm:"foreignKey:UserCourseID;references:ID" json:"lessons,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (UserCourse) TableName() string { return "user_course" }
