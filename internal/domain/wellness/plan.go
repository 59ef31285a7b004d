package wellness

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Activity is embedded in a plan. Only Completed and CompletedAt change
// after the plan is created.
type Activity struct {
	Type          string     `json:"type"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Duration      int        `json:"duration"`
	PreferredTime string     `json:"preferredTime"`
	Completed     bool       `json:"completed"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
}

type Recommendation struct {
	Category   string `json:"category"`
	Suggestion string `json:"suggestion"`
	Reason     string `json:"reason"`
}

// Progress is derived from Activities and is never set independently.
type Progress struct {
	TotalActivities     int `gorm:"column:total_activities;not null;default:0" json:"totalActivities"`
	CompletedActivities int `gorm:"column:completed_activities;not null;default:0" json:"completedActivities"`
	CompletionRate      int `gorm:"column:completion_rate;not null;default:0" json:"completionRate"`
}

type WellnessPlan struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index:idx_wellness_plan_user_created,priority:1" json:"userId"`

	CurrentMood   string                      `gorm:"column:current_mood;not null" json:"currentMood"`
	MoodIntensity int                         `gorm:"column:mood_intensity;not null" json:"moodIntensity"`
	Goals         datatypes.JSONSlice[string] `gorm:"column:goals" json:"goals"`
	ScheduleTime  string                      `gorm:"column:schedule_time;not null;default:'flexible'" json:"scheduleTime"`
	Duration      int                         `gorm:"column:duration;not null;default:1" json:"duration"`
	IsActive      bool                        `gorm:"column:is_active;not null;default:true" json:"isActive"`

	Activities      datatypes.JSONSlice[Activity]       `gorm:"column:activities" json:"activities"`
	Recommendations datatypes.JSONSlice[Recommendation] `gorm:"column:recommendations" json:"recommendations"`
	Progress        Progress                            `gorm:"embedded;embeddedPrefix:progress_" json:"progress"`

	CreatedAt time.Time      `gorm:"not null;index:idx_wellness_plan_user_created,priority:2" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"not null" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (WellnessPlan) TableName() string { return "wellness_plan" }

func (p *WellnessPlan) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
