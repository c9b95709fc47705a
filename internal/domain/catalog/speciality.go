package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Speciality is the top of the catalog tree. Levels hang off it ordered by
// their own order column, never by insertion order.
type Speciality struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"not null;column:name" json:"name"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	Image       string    `gorm:"column:image" json:"image"`

	Levels []SpecialityLevel `gorm:"foreignKey:SpecialityID;references:ID" json:"levels,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Speciality) TableName() string { return "speciality" }
