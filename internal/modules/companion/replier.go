package companion

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/mindease/mindease-backend/internal/platform/logger"
)

const (
	ReplySourceAI       = "ai"
	ReplySourceFallback = "fallback"

	DefaultReplyTimeout = 10 * time.Second
)

var errEmptyGeneration = errors.New("empty generation")

// Generator produces assistant text for a user message.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Limiter gates outbound generation per key.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type Reply struct {
	Text    string
	Source  string
	Emotion Emotion
}

// Replier answers a user message with generated text when a generator is
// configured and succeeds inside the timeout, and with a canned reply
// otherwise. Generation failures are logged and never returned.
type Replier struct {
	log     *logger.Logger
	gen     Generator
	limiter Limiter
	picker  *Picker
	timeout time.Duration
}

type ReplierConfig struct {
	Generator Generator
	Limiter   Limiter
	Picker    *Picker
	Timeout   time.Duration
}

func NewReplier(log *logger.Logger, cfg ReplierConfig) *Replier {
	picker := cfg.Picker
	if picker == nil {
		picker = NewPicker(nil)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultReplyTimeout
	}
	return &Replier{
		log:     log.With("module", "Replier"),
		gen:     cfg.Generator,
		limiter: cfg.Limiter,
		picker:  picker,
		timeout: timeout,
	}
}

// Reply never fails. Emotion is classified from the user's message.
func (r *Replier) Reply(ctx context.Context, userID uuid.UUID, message, mood string) Reply {
	emotion := Classify(message)
	if text, ok := r.generate(ctx, userID, message); ok {
		return Reply{Text: text, Source: ReplySourceAI, Emotion: emotion}
	}
	return Reply{Text: r.picker.Pick(mood), Source: ReplySourceFallback, Emotion: emotion}
}

func (r *Replier) generate(ctx context.Context, userID uuid.UUID, message string) (string, bool) {
	if r.gen == nil {
		return "", false
	}
	if r.limiter != nil {
		allowed, err := r.limiter.Allow(ctx, userID.String())
		if err != nil {
			r.log.Warn("generation limiter unavailable, using fallback", "error", err)
			return "", false
		}
		if !allowed {
			r.log.Info("generation rate limited, using fallback", "user_id", userID.String())
			return "", false
		}
	}

	ctx, span := otel.Tracer("mindease/companion").Start(ctx, "companion.generate")
	defer span.End()
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	start := time.Now()
	text, err := r.gen.Generate(ctx, message)
	text = strings.TrimSpace(text)
	if err == nil && text == "" {
		err = errEmptyGeneration
	}
	span.SetAttributes(attribute.Int64("duration_ms", time.Since(start).Milliseconds()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "generation failed")
		r.log.Warn("generation failed, using fallback", "error", err, "duration_ms", time.Since(start).Milliseconds())
		return "", false
	}
	return text, true
}
