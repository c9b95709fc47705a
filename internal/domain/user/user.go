package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email    string    `gorm:"uniqueIndex;not null;column:email" json:"email"`
	Password string    `gorm:"not null;column:password" json:"-"`
	Names    string    `gorm:"not null;column:names" json:"names"`
	LastName string    `gorm:"not null;column:last_name" json:"last_name"`
	Image    string    `gorm:"column:image" json:"image"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (User) TableName() string { return "user" }

func (u *User) FullName() string {
	return u.Names + " " + u.LastName
}
