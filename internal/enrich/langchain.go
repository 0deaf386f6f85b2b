// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package enrich

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"

	"github.com/pdiddy/arxiv-digest/internal/httputil"
	"github.com/pdiddy/arxiv-digest/pkg/types"
)

// LangChainBackend sends the enrichment prompt through langchaingo's
// OpenAI client, pointed at an OpenAI-compatible base URL.
type LangChainBackend struct {
	llm         llms.Model
	temperature float64
}

// NewLangChainBackend builds a LangChainBackend from cfg. A nil client uses
// http.DefaultClient.
func NewLangChainBackend(cfg types.AIConfig, client *http.Client) (*LangChainBackend, error) {
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	opts := []openai.Option{
		openai.WithToken(cfg.APIKey),
		openai.WithModel(model),
		openai.WithBaseURL(strings.TrimRight(baseURL, "/")),
		openai.WithHTTPClient(completionDoer{client: client}),
	}

	llm, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("initializing langchain client: %w", err)
	}
	return &LangChainBackend{llm: llm, temperature: cfg.Temperature}, nil
}

// Complete sends the article abstract and returns the first choice's content.
func (b *LangChainBackend) Complete(ctx context.Context, article types.Article) (string, error) {
	prompt, err := renderPrompt(article)
	if err != nil {
		return "", fmt.Errorf("rendering prompt: %w", err)
	}

	content := []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeSystem, systemPrompt),
		llms.TextParts(schema.ChatMessageTypeHuman, prompt),
	}

	resp, err := b.llm.GenerateContent(ctx, content, llms.WithTemperature(b.temperature))
	if errors.Is(err, ErrNoCompletion) || errors.Is(err, openai.ErrEmptyResponse) {
		return "", ErrNoCompletion
	}
	if err != nil {
		return "", fmt.Errorf("calling completion API: %w", err)
	}

	if resp == nil || len(resp.Choices) == 0 || resp.Choices[0] == nil ||
		strings.TrimSpace(resp.Choices[0].Content) == "" {
		return "", ErrNoCompletion
	}
	return resp.Choices[0].Content, nil
}

// completionDoer sits between langchaingo and the HTTP client so that
// failures surface as the same errors GroqBackend returns: non-2xx responses
// become *httputil.StatusError and a response without choices becomes
// ErrNoCompletion.
type completionDoer struct {
	client *http.Client
}

func (d completionDoer) Do(req *http.Request) (*http.Response, error) {
	resp, err := httputil.Do(d.client, req, "completion API")
	if err != nil {
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("reading completion response: %w", err)
	}

	// Malformed bodies are left for langchaingo to report.
	var peek struct {
		Choices []json.RawMessage `json:"choices"`
	}
	if json.Unmarshal(body, &peek) == nil && len(peek.Choices) == 0 {
		return nil, ErrNoCompletion
	}

	resp.Body = io.NopCloser(bytes.NewReader(body))
	return resp, nil
}
