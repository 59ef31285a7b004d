package inference

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/mindease/mindease-backend/internal/platform/logger"
)

const DefaultGeminiModel = "gemini-2.0-flash"

const companionInstruction = "You are a warm, supportive mental wellness companion. " +
	"Reply in two or three short sentences, validate the user's feelings, and ask one gentle follow-up question. " +
	"Never diagnose; suggest professional help when the user describes a crisis."

type Gemini struct {
	log    *logger.Logger
	client *genai.Client
	model  string
}

func NewGemini(ctx context.Context, log *logger.Logger, apiKey, model string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  strings.TrimSpace(apiKey),
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("init genai client: %w", err)
	}
	if strings.TrimSpace(model) == "" {
		model = DefaultGeminiModel
	}
	return &Gemini{log: log.With("client", "Gemini"), client: client, model: model}, nil
}

func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(companionInstruction, genai.RoleUser),
		Temperature:       genai.Ptr[float32](Temperature),
		TopP:              genai.Ptr[float32](TopP),
		MaxOutputTokens:   MaxLength,
	})
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			b.WriteString(part.Text)
		}
	}
	return strings.TrimSpace(b.String()), nil
}
