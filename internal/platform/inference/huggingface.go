package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/mindease/mindease-backend/internal/platform/logger"
)

const DefaultHuggingFaceURL = "https://api-inference.huggingface.co/models/microsoft/DialoGPT-medium"

type HuggingFace struct {
	log        *logger.Logger
	apiKey     string
	url        string
	httpClient *http.Client
}

// NewHuggingFace builds a client for a hosted text-generation model. The
// request deadline comes from ctx; httpClient may be nil.
func NewHuggingFace(log *logger.Logger, apiKey, url string, httpClient *http.Client) *HuggingFace {
	if strings.TrimSpace(url) == "" {
		url = DefaultHuggingFaceURL
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &HuggingFace{
		log:        log.With("client", "HuggingFace"),
		apiKey:     strings.TrimSpace(apiKey),
		url:        url,
		httpClient: httpClient,
	}
}

type hfParameters struct {
	MaxLength   int     `json:"max_length"`
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
}

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
}

type hfGeneration struct {
	GeneratedText string `json:"generated_text"`
}

func (c *HuggingFace) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(hfRequest{
		Inputs:     prompt,
		Parameters: hfParameters{MaxLength: MaxLength, Temperature: Temperature, TopP: TopP},
	})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("huggingface request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("huggingface read: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("huggingface status %d: %s", resp.StatusCode, truncate(string(raw), 200))
	}

	var out []hfGeneration
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("huggingface decode: %w", err)
	}
	if len(out) == 0 {
		return "", fmt.Errorf("huggingface returned no generations")
	}
	return strings.TrimSpace(out[0].GeneratedText), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
