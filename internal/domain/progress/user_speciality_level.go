package progress

import (
	"time"

	"github.com/google/uuid"

	"github.com/Digital-Coach-Women/APP-API/internal/domain/catalog"
	"github.com/Digital-Coach-Women/APP-API/internal/domain/user"
)

// UserSpecialityLevel anchors one user's progress cascade for one level.
// The composite unique index rejects double enrollment; the service layer
// additionally pre-checks inside the transaction to return a clean conflict.
type UserSpecialityLevel struct {
	ID                uuid.UUID                `gorm:"type:uuid;primaryKey" json:"id"`
	UserID            uuid.UUID                `gorm:"type:uuid;not null;uniqueIndex:idx_user_level" json:"user_id"`
	User              *user.User               `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	SpecialityLevelID uuid.UUID                `gorm:"type:uuid;not null;uniqueIndex:idx_user_level" json:"speciality_level_id"`
	SpecialityLevel   *catalog.SpecialityLevel `gorm:"constraint:OnDelete:CASCADE;foreignKey:SpecialityLevelID;references:ID" json:"speciality_level,omitempty"`

	IsFinish bool `gorm:"not null;default:false;column:is_finish" json:"is_finish"`

	Courses []UserCourse `gorm:"foreignKey:UserSpecialityLevelID;references:ID" json:"courses,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (UserSpecialityLevel) TableName() string { return "user_speciality_level" }
