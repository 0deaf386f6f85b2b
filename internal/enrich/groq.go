// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package enrich

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/pdiddy/arxiv-digest/internal/httputil"
	"github.com/pdiddy/arxiv-digest/pkg/types"
)

const (
	// DefaultBaseURL is the Groq OpenAI-compatible API root.
	DefaultBaseURL = "https://api.groq.com/openai/v1"

	// DefaultModel is used when no model is configured.
	DefaultModel = "llama-3.1-8b-instant"
)

// GroqBackend calls a chat completions endpoint (Groq or any
// OpenAI-compatible API) with the enrichment prompt for one article.
type GroqBackend struct {
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float64
	Client      *http.Client
}

// chatRequest is the request body for the chat completions API.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

// chatMessage is a single message in the conversation.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse is the response body from the chat completions API.
type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Complete sends the article abstract to the completion API and returns the
// first choice's message content unmodified.
func (g *GroqBackend) Complete(ctx context.Context, article types.Article) (string, error) {
	prompt, err := renderPrompt(article)
	if err != nil {
		return "", fmt.Errorf("rendering prompt: %w", err)
	}

	model := g.Model
	if model == "" {
		model = DefaultModel
	}

	bodyBytes, err := json.Marshal(chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: g.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint(), bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.APIKey)

	resp, err := httputil.Do(defaultHTTPClient(g.Client), req, "completion API")
	if err != nil {
		return "", fmt.Errorf("calling completion API: %w", err)
	}
	defer resp.Body.Close()

	var cResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cResp); err != nil {
		return "", fmt.Errorf("decoding completion response: %w", err)
	}

	if len(cResp.Choices) == 0 || strings.TrimSpace(cResp.Choices[0].Message.Content) == "" {
		return "", ErrNoCompletion
	}
	return cResp.Choices[0].Message.Content, nil
}

func (g *GroqBackend) endpoint() string {
	base := g.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	return strings.TrimRight(base, "/") + "/chat/completions"
}
