package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MoodEntry is one row of a user's append-only mood log.
type MoodEntry struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_mood_entry_user_time,priority:1" json:"userId"`
	Mood      string    `gorm:"column:mood;not null" json:"mood"`
	Intensity int       `gorm:"column:intensity;not null" json:"intensity"`
	Note      string    `gorm:"column:note" json:"note,omitempty"`
	Timestamp time.Time `gorm:"column:recorded_at;not null;index:idx_mood_entry_user_time,priority:2" json:"timestamp"`
}

func (MoodEntry) TableName() string { return "mood_entry" }

func (m *MoodEntry) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
