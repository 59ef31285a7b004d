package content

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Author struct {
	Name        string `gorm:"column:name" json:"name,omitempty" yaml:"name"`
	Credentials string `gorm:"column:credentials" json:"credentials,omitempty" yaml:"credentials"`
	Avatar      string `gorm:"column:avatar" json:"avatar,omitempty" yaml:"avatar"`
}

type Article struct {
	ID       uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id" yaml:"-"`
	Title    string                      `gorm:"column:title;not null" json:"title" yaml:"title"`
	Slug     string                      `gorm:"column:slug;not null;uniqueIndex" json:"slug" yaml:"-"`
	Author   Author                      `gorm:"embedded;embeddedPrefix:author_" json:"author" yaml:"author"`
	Category string                      `gorm:"column:category;not null;index" json:"category" yaml:"category"`
	Tags     datatypes.JSONSlice[string] `gorm:"column:tags" json:"tags" yaml:"tags"`

	CoverImage string `gorm:"column:cover_image;not null;default:'default-article.jpg'" json:"coverImage" yaml:"coverImage"`
	Excerpt    string `gorm:"column:excerpt;not null" json:"excerpt" yaml:"excerpt"`
	Content    string `gorm:"column:content;type:text;not null" json:"content,omitempty" yaml:"content"`
	ReadTime   int    `gorm:"column:read_time;not null;default:5" json:"readTime" yaml:"readTime"`

	Views     int64 `gorm:"column:views;not null;default:0" json:"views" yaml:"-"`
	Likes     int64 `gorm:"column:likes;not null;default:0" json:"likes" yaml:"-"`
	Published bool  `gorm:"column:published;not null;default:true;index" json:"published" yaml:"published"`
	Featured  bool  `gorm:"column:featured;not null;default:false;index" json:"featured" yaml:"featured"`

	CreatedAt time.Time      `gorm:"not null;index" json:"createdAt" yaml:"-"`
	UpdatedAt time.Time      `gorm:"not null" json:"updatedAt" yaml:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" yaml:"-"`
}

func (Article) TableName() string { return "article" }

func (a *Article) BeforeCreate(*gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// ArticleLike records one user's like. The pair is unique.
type ArticleLike struct {
	ArticleID uuid.UUID `gorm:"type:uuid;primaryKey" json:"articleId"`
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey;index" json:"userId"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
}

func (ArticleLike) TableName() string { return "article_like" }

var Categories = []string{
	"Stress Management",
	"Mindfulness",
	"Emotional Resilience",
	"Self-Care",
	"Anxiety",
	"Depression",
	"Relationships",
	"Sleep",
	"Nutrition & Mental Health",
	"Exercise & Wellness",
	"Meditation",
	"Therapy Tips",
	"General Wellness",
}
