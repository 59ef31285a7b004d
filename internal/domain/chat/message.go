package chat

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one transcript entry. Entries are append-only and ordered
// by Seq within their session.
type ChatMessage struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SessionID uuid.UUID `gorm:"type:uuid;not null;index:idx_chat_message_session_seq,unique,priority:1" json:"sessionId"`
	Seq       int64     `gorm:"column:seq;not null;index:idx_chat_message_session_seq,unique,priority:2" json:"seq"`

	Role    string `gorm:"column:role;not null" json:"role"`
	Content string `gorm:"column:content;type:text;not null" json:"content"`
	// Emotion is set on assistant entries only, classified from the user
	// message they answer.
	Emotion string `gorm:"column:emotion" json:"emotion,omitempty"`

	Timestamp time.Time `gorm:"column:sent_at;not null" json:"timestamp"`
}

func (ChatMessage) TableName() string { return "chat_message" }

func (m *ChatMessage) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
