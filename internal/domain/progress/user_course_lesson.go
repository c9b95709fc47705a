package progress

import (
	"time"

	"github.com/google/uuid"

	"github.com/Digital-Coach-Women/APP-API/internal/domain/catalog"
	"github.com/Digital-Coach-Women/APP-API/internal/domain/user"
)

// UserCourseLesson exists only for non-basic levels: one row per catalog
// lesson under each enrolled course, referencing the user_course row created
// earlier in the same enrollment transaction.
type UserCourseLesson struct {
	ID             uuid.UUID             `gorm:"type:uuid;primaryKey" json:"id"`
	UserCourseID   uuid.UUID             `gorm:"type:uuid;not null;index" json:"user_course_id"`
	UserCourse     *UserCourse           `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserCourseID;references:ID" json:"user_course,omitempty"`
	CourseLessonID uuid.UUID             `gorm:"type:uuid;not null;index" json:"course_lesson_id"`
	CourseLesson   *catalog.CourseLesson `gorm:"constraint:OnDelete:CASCADE;foreignKey:CourseLessonID;references:ID" json:"course_lesson,omitempty"`
	UserID         uuid.UUID             `gorm:"type:uuid;not null;index" json:"user_id"`
	User           *user.User            `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`

	IsFinish bool `gorm:"not null;default:false;column:is_finish" json:"is_finish"`
	Order    int  `gorm:"not null;column:order" json:"order"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (UserCourseLesson) TableName() string { return "user_course_lesson" }
