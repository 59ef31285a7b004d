package app

import (
	"gorm.io/gorm"

	"github.com/mindease/mindease-backend/internal/data/repos"
	"github.com/mindease/mindease-backend/internal/platform/logger"
)

type Repos struct {
	User        repos.UserRepo
	MoodEntry   repos.MoodEntryRepo
	Plan        repos.PlanRepo
	ChatSession repos.ChatSessionRepo
	ChatMessage repos.ChatMessageRepo
	Therapist   repos.TherapistRepo
	Article     repos.ArticleRepo
	ArticleLike repos.ArticleLikeRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:        repos.NewUserRepo(db, log),
		MoodEntry:   repos.NewMoodEntryRepo(db, log),
		Plan:        repos.NewPlanRepo(db, log),
		ChatSession: repos.NewChatSessionRepo(db, log),
		ChatMessage: repos.NewChatMessageRepo(db, log),
		Therapist:   repos.NewTherapistRepo(db, log),
		Article:     repos.NewArticleRepo(db, log),
		ArticleLike: repos.NewArticleLikeRepo(db, log),
	}
}
