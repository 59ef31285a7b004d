package repos

import (
	"gorm.io/gorm"

	"github.com/mindease/mindease-backend/internal/data/repos/chat"
	"github.com/mindease/mindease-backend/internal/data/repos/content"
	"github.com/mindease/mindease-backend/internal/data/repos/therapist"
	"github.com/mindease/mindease-backend/internal/data/repos/user"
	"github.com/mindease/mindease-backend/internal/data/repos/wellness"
	"github.com/mindease/mindease-backend/internal/platform/logger"
)

type UserRepo = user.UserRepo
type MoodEntryRepo = user.MoodEntryRepo

type PlanRepo = wellness.PlanRepo

type ChatSessionRepo = chat.ChatSessionRepo
type ChatMessageRepo = chat.ChatMessageRepo

type TherapistRepo = therapist.TherapistRepo
type TherapistFilter = therapist.Filter

type ArticleRepo = content.ArticleRepo
type ArticleLikeRepo = content.ArticleLikeRepo
type ArticleFilter = content.ArticleFilter
type TagCount = content.TagCount

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo { return user.NewUserRepo(db, baseLog) }
func NewMoodEntryRepo(db *gorm.DB, baseLog *logger.Logger) MoodEntryRepo {
	return user.NewMoodEntryRepo(db, baseLog)
}

func NewPlanRepo(db *gorm.DB, baseLog *logger.Logger) PlanRepo {
	return wellness.NewPlanRepo(db, baseLog)
}

func NewChatSessionRepo(db *gorm.DB, baseLog *logger.Logger) ChatSessionRepo {
	return chat.NewChatSessionRepo(db, baseLog)
}
func NewChatMessageRepo(db *gorm.DB, baseLog *logger.Logger) ChatMessageRepo {
	return chat.NewChatMessageRepo(db, baseLog)
}

func NewTherapistRepo(db *gorm.DB, baseLog *logger.Logger) TherapistRepo {
	return therapist.NewTherapistRepo(db, baseLog)
}

func NewArticleRepo(db *gorm.DB, baseLog *logger.Logger) ArticleRepo {
	return content.NewArticleRepo(db, baseLog)
}
func NewArticleLikeRepo(db *gorm.DB, baseLog *logger.Logger) ArticleLikeRepo {
	return content.NewArticleLikeRepo(db, baseLog)
}
