// Package inference holds the optional text-generation providers used by
// the chat companion. Every provider honours ctx cancellation and makes a
// single attempt per call.
package inference

import (
	"context"
	"fmt"
	"strings"

	"github.com/mindease/mindease-backend/internal/platform/logger"
)

const (
	ProviderNone        = ""
	ProviderHuggingFace = "huggingface"
	ProviderGemini      = "gemini"
)

// Generation parameters shared by providers.
const (
	MaxLength   = 150
	Temperature = 0.7
	TopP        = 0.9
)

type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Config struct {
	Provider string

	HuggingFaceAPIKey string
	HuggingFaceURL    string

	GeminiAPIKey string
	GeminiModel  string
}

// New returns nil, nil when no provider is configured or the chosen
// provider has no credentials; callers treat that as "AI disabled".
func New(ctx context.Context, log *logger.Logger, cfg Config) (Client, error) {
	provider := strings.ToLower(strings.TrimSpace(cfg.Provider))
	switch provider {
	case ProviderNone:
		log.Info("inference disabled, chat uses canned replies")
		return nil, nil
	case ProviderHuggingFace:
		if strings.TrimSpace(cfg.HuggingFaceAPIKey) == "" {
			log.Warn("HUGGINGFACE_API_KEY missing, inference disabled")
			return nil, nil
		}
		return NewHuggingFace(log, cfg.HuggingFaceAPIKey, cfg.HuggingFaceURL, nil), nil
	case ProviderGemini:
		if strings.TrimSpace(cfg.GeminiAPIKey) == "" {
			log.Warn("GEMINI_API_KEY missing, inference disabled")
			return nil, nil
		}
		g, err := NewGemini(ctx, log, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, err
		}
		return g, nil
	default:
		return nil, fmt.Errorf("unknown inference provider %q", cfg.Provider)
	}
}
