package catalog

import (
	"time"

	"github.com/google/uuid"
)

// SpecialityLevel is the enrollable tier. IsBasic controls lesson granularity:
// basic levels carry no per-lesson progress rows for enrolled users.
type SpecialityLevel struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	SpecialityID uuid.UUID   `gorm:"type:uuid;not null;index" json:"speciality_id"`
	Speciality   *Speciality `gorm:"constraint:OnDelete:CASCADE;foreignKey:SpecialityID;references:ID" json:"speciality,omitempty"`

	Name     string `gorm:"not null;column:name" json:"name"`
	CupImage string `gorm:"column:cup_image" json:"cup_image"`
	Order    int    `gorm:"not null;column:order" json:"order"`
	IsBasic  bool   `gorm:"not null;default:false;column:is_basic" json:"is_basic"`

	Courses []Course `gorm:"foreignKey:SpecialityLevelID;references:ID" json:"courses,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (SpecialityLevel) TableName() string { return "speciality_level" }
