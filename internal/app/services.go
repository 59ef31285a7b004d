package app

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/mindease/mindease-backend/internal/modules/companion"
	"github.com/mindease/mindease-backend/internal/modules/selfcare"
	"github.com/mindease/mindease-backend/internal/observability"
	"github.com/mindease/mindease-backend/internal/platform/logger"
	"github.com/mindease/mindease-backend/internal/services"
)

type Services struct {
	Auth      services.AuthService
	User      services.UserService
	Wellness  services.WellnessService
	Chat      services.ChatService
	Therapist services.TherapistService
	Article   services.ArticleService

	Library *selfcare.Library
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, r Repos, clients Clients, metrics *observability.Metrics) (Services, error) {
	log.Info("Wiring services...")

	library, err := selfcare.Load()
	if err != nil {
		return Services{}, fmt.Errorf("load self-care library: %w", err)
	}

	replierCfg := companion.ReplierConfig{Timeout: cfg.InferenceTimeout}
	if clients.Inference != nil {
		replierCfg.Generator = clients.Inference
	}
	if clients.Limiter != nil {
		replierCfg.Limiter = clients.Limiter
	}
	replier := companion.NewReplier(log, replierCfg)

	return Services{
		Auth:      services.NewAuthService(log, r.User, cfg.JWTSecretKey, cfg.AccessTokenTTL),
		User:      services.NewUserService(log, r.MoodEntry),
		Wellness:  services.NewWellnessService(db, log, r.Plan, metrics),
		Chat:      services.NewChatService(db, log, r.ChatSession, r.ChatMessage, replier, metrics),
		Therapist: services.NewTherapistService(log, r.Therapist),
		Article:   services.NewArticleService(db, log, r.Article, r.ArticleLike),
		Library:   library,
	}, nil
}
