package app

import (
	"github.com/mindease/mindease-backend/internal/http"
	httpH "github.com/mindease/mindease-backend/internal/http/handlers"
	httpMW "github.com/mindease/mindease-backend/internal/http/middleware"
	"github.com/mindease/mindease-backend/internal/observability"
	"github.com/mindease/mindease-backend/internal/platform/logger"
)

type Middleware struct {
	Auth *httpMW.AuthMiddleware
}

type Handlers struct {
	Health    *httpH.HealthHandler
	Auth      *httpH.AuthHandler
	User      *httpH.UserHandler
	Wellness  *httpH.WellnessHandler
	Chat      *httpH.ChatHandler
	Therapist *httpH.TherapistHandler
	Article   *httpH.ArticleHandler
	Activity  *httpH.ActivityHandler
}

func wireHandlers(log *logger.Logger, db httpH.Pinger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:    httpH.NewHealthHandler(db),
		Auth:      httpH.NewAuthHandler(services.Auth),
		User:      httpH.NewUserHandler(services.User),
		Wellness:  httpH.NewWellnessHandler(services.Wellness),
		Chat:      httpH.NewChatHandler(services.Chat),
		Therapist: httpH.NewTherapistHandler(services.Therapist),
		Article:   httpH.NewArticleHandler(services.Article),
		Activity:  httpH.NewActivityHandler(services.Library),
	}
}

func wireMiddleware(log *logger.Logger, services Services) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Auth: httpMW.NewAuthMiddleware(log, services.Auth),
	}
}

func wireServer(log *logger.Logger, cfg Config, metrics *observability.Metrics, handlers Handlers, middleware Middleware) *http.Server {
	return http.NewServer(":"+cfg.Port, http.RouterConfig{
		Log:              log,
		ServiceName:      cfg.OTel.ServiceName,
		TracingEnabled:   cfg.OTel.Enabled,
		CORSOrigins:      cfg.CORSOrigins,
		Metrics:          metrics,
		HealthHandler:    handlers.Health,
		AuthHandler:      handlers.Auth,
		AuthMiddleware:   middleware.Auth,
		UserHandler:      handlers.User,
		WellnessHandler:  handlers.Wellness,
		ChatHandler:      handlers.Chat,
		TherapistHandler: handlers.Therapist,
		ArticleHandler:   handlers.Article,
		ActivityHandler:  handlers.Activity,
	})
}
