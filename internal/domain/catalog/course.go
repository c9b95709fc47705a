package catalog

import (
	"time"

	"github.com/google/uuid"
)

type Course struct {
	ID                uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	SpecialityLevelID uuid.UUID        `gorm:"type:uuid;not null;index" json:"speciality_level_id"`
	SpecialityLevel   *SpecialityLevel `gorm:"constraint:OnDelete:CASCADE;foreignKey:SpecialityLevelID;references:ID" json:"speciality_level,omitempty"`

	Title       string `gorm:"not null;column:title" json:"title"`
	Description string `gorm:"column:description;type:text" json:"description"`
	Video       string `gorm:"column:video" json:"video"`
	Process     string `gorm:"column:process" json:"process"`
	Order       int    `gorm:"not null;column:order" json:"order"`

	Lessons []CourseLesson `gorm:"foreignKey:CourseID;references:ID" json:"lessons,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Course) TableName() string { return "course" }
