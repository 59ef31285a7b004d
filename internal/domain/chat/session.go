package chat

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const DefaultSessionTitle = "New Conversation"

type ChatSession struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index:idx_chat_session_user_last,priority:1" json:"userId"`

	Title string `gorm:"column:title;not null" json:"title"`
	Mood  string `gorm:"column:mood" json:"mood,omitempty"`

	// MessageCount doubles as the next message sequence number.
	MessageCount  int64     `gorm:"column:message_count;not null;default:0" json:"messageCount"`
	LastMessageAt time.Time `gorm:"column:last_message_at;not null;index:idx_chat_session_user_last,priority:2" json:"lastMessageAt"`

	Messages []*ChatMessage `gorm:"foreignKey:SessionID" json:"messages,omitempty"`

	CreatedAt time.Time      `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"not null" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ChatSession) TableName() string { return "chat_session" }

func (s *ChatSession) BeforeCreate(*gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// SessionSummary is the history listing projection.
type SessionSummary struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Mood          string    `json:"mood,omitempty"`
	LastMessageAt time.Time `json:"lastMessageAt"`
	MessageCount  int64     `json:"messageCount"`
}
