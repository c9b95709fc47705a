package chat

import (
	"time"

	"github.com/google/uuid"

	"github.com/Digital-Coach-Women/APP-API/internal/domain/user"
)

// Chat pairs two users. The pair is unordered: lookups always match both
// (UserID1, UserID2) permutations.
type Chat struct {
	ID      uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID1 uuid.UUID  `gorm:"type:uuid;not null;index;column:user_id_1" json:"user_id_1"`
	User1   *user.User `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID1;references:ID" json:"user_1,omitempty"`
	UserID2 uuid.UUID  `gorm:"type:uuid;not null;index;column:user_id_2" json:"user_id_2"`
	User2   *user.User `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID2;references:ID" json:"user_2,omitempty"`

	Messages []ChatMessage `gorm:"foreignKey:ChatID;references:ID" json:"messages,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (Chat) TableName() string { return "chat" }
