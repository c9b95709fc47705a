package catalog

import (
	"time"

	"github.com/google/uuid"
)

type CourseLesson struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CourseID uuid.UUID `gorm:"type:uuid;not null;index" json:"course_id"`
	Course   *Course   `gorm:"constraint:OnDelete:CASCADE;foreignKey:CourseID;references:ID" json:"course,omitempty"`

	Title string `gorm:"not null;column:title" json:"title"`
	Video string `gorm:"column:video" json:"video"`
	Order int    `gorm:"not null;column:order" json:"order"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (CourseLesson) TableName() string { return "course_lesson" }
