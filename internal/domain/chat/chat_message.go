package chat

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/Digital-Coach-Women/APP-API/internal/domain/user"
)

// ChatMessage is the relational copy of a message. The authoritative append
// goes to the external sink first; a row is only written after the sink
// acknowledged the message. Metadata carries the sink receipt.
type ChatMessage struct {
	ID     uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	ChatID uuid.UUID  `gorm:"type:uuid;not null;index" json:"chat_id"`
	Chat   *Chat      `gorm:"constraint:OnDelete:CASCADE;foreignKey:ChatID;references:ID" json:"chat,omitempty"`
	UserID uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	User   *user.User `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`

	Message  string         `gorm:"not null;type:text;column:message" json:"message"`
	Metadata datatypes.JSON `gorm:"column:metadata" json:"metadata,omitempty"`

	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
}

func (ChatMessage) TableName() string { return "chat_message" }
