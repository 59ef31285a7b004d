package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/mindease/mindease-backend/internal/http/handlers"
	httpMW "github.com/mindease/mindease-backend/internal/http/middleware"
	"github.com/mindease/mindease-backend/internal/observability"
	"github.com/mindease/mindease-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	ServiceName    string
	TracingEnabled bool
	CORSOrigins    []string
	Metrics        *observability.Metrics

	AuthHandler    *httpH.AuthHandler
	AuthMiddleware *httpMW.AuthMiddleware
	UserHandler    *httpH.UserHandler

	WellnessHandler  *httpH.WellnessHandler
	ChatHandler      *httpH.ChatHandler
	TherapistHandler *httpH.TherapistHandler
	ArticleHandler   *httpH.ArticleHandler
	ActivityHandler  *httpH.ActivityHandler

	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.TracingEnabled {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	if cfg.Log != nil {
		r.Use(httpMW.RequestLogger(cfg.Log))
	}
	if cfg.Metrics != nil {
		r.Use(httpMW.Metrics(cfg.Metrics))
	}
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapF(cfg.Metrics.WriteHTTP))
	}

	api := r.Group("/api")
	{
		// Auth (public)
		if cfg.AuthHandler != nil {
			api.POST("/auth/register", cfg.AuthHandler.Register)
			api.POST("/auth/login", cfg.AuthHandler.Login)
		}

		// Directory and content (public)
		if cfg.TherapistHandler != nil {
			api.GET("/therapists", cfg.TherapistHandler.List)
			api.GET("/therapists/search", cfg.TherapistHandler.Search)
			api.GET("/therapists/meta/types", cfg.TherapistHandler.Types)
			api.GET("/therapists/meta/specializations", cfg.TherapistHandler.Specializations)
			api.GET("/therapists/:id", cfg.TherapistHandler.Get)
		}
		if cfg.ArticleHandler != nil {
			api.GET("/articles", cfg.ArticleHandler.List)
			api.GET("/articles/featured", cfg.ArticleHandler.Featured)
			api.GET("/articles/meta/categories", cfg.ArticleHandler.Categories)
			api.GET("/articles/meta/tags", cfg.ArticleHandler.Tags)
			api.GET("/articles/:slug", cfg.ArticleHandler.GetBySlug)
		}
		if cfg.ActivityHandler != nil {
			api.GET("/activities/daily-tip", cfg.ActivityHandler.DailyTip)
			api.GET("/activities/recommendations", cfg.ActivityHandler.Recommendations)
			api.GET("/activities/meditation", cfg.ActivityHandler.Meditations)
			api.GET("/activities/breathing", cfg.ActivityHandler.Breathing)
		}
	}

	protected := api.Group("/")
	{
		if cfg.AuthMiddleware != nil {
			protected.Use(cfg.AuthMiddleware.RequireAuth())
		}

		if cfg.AuthHandler != nil {
			protected.GET("/auth/me", cfg.AuthHandler.Me)
		}

		if cfg.UserHandler != nil {
			protected.POST("/users/me/moods", cfg.UserHandler.RecordMood)
			protected.GET("/users/me/moods", cfg.UserHandler.ListMoods)
		}

		// Wellness plans
		if cfg.WellnessHandler != nil {
			protected.POST("/wellness/generate", cfg.WellnessHandler.Generate)
			protected.GET("/wellness/plans", cfg.WellnessHandler.ListPlans)
			protected.GET("/wellness/plans/:id", cfg.WellnessHandler.GetPlan)
			protected.PATCH("/wellness/plans/:id/activities/:activityIndex", cfg.WellnessHandler.ToggleActivity)
		}

		// Chat companion
		if cfg.ChatHandler != nil {
			protected.POST("/chatbot/session", cfg.ChatHandler.CreateSession)
			protected.POST("/chatbot/chat", cfg.ChatHandler.SendMessage)
			protected.GET("/chatbot/history", cfg.ChatHandler.History)
			protected.GET("/chatbot/session/:id", cfg.ChatHandler.GetSession)
		}

		if cfg.ArticleHandler != nil {
			protected.POST("/articles/:id/like", cfg.ArticleHandler.ToggleLike)
		}
	}

	return r
}
