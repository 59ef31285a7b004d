package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name     string    `gorm:"not null;column:name" json:"name"`
	Email    string    `gorm:"uniqueIndex;not null;column:email" json:"email"`
	Password string    `gorm:"not null;column:password" json:"-"`
	Age      *int      `gorm:"column:age" json:"age,omitempty"`
	Gender   string    `gorm:"column:gender" json:"gender,omitempty"`
	Avatar   string    `gorm:"column:avatar;not null;default:'default-avatar.png'" json:"avatar"`

	NotificationsEnabled bool   `gorm:"column:notifications_enabled;not null;default:true" json:"notificationsEnabled"`
	PreferredTheme       string `gorm:"column:preferred_theme;not null;default:'light'" json:"preferredTheme"`

	CreatedAt time.Time      `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"not null" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "user" }

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
