// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package enrich derives keywords, summary, problem, solution, and topic
// fields for articles by sending their abstracts to a completion API.
package enrich

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/pdiddy/arxiv-digest/internal/httputil"
	"github.com/pdiddy/arxiv-digest/pkg/types"
)

// ErrNoCompletion is returned when the completion API answers successfully
// but carries no completion text.
var ErrNoCompletion = errors.New("completion API returned no completion")

// AIBackend abstracts the completion API so tests can supply a mock.
// Complete sends one article's abstract and returns the raw completion text,
// expected to hold "Label: value" lines.
type AIBackend interface {
	Complete(ctx context.Context, article types.Article) (string, error)
}

// NewBackend returns the backend selected by cfg.Backend.
func NewBackend(cfg types.EnrichConfig) (AIBackend, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("missing completion API key: set groq.api_key, ARXIV_DIGEST_GROQ_API_KEY, or .secrets/groq-api-key")
	}
	client := httputil.NewClient(cfg.Timeout)

	switch cfg.Backend {
	case types.BackendHTTP, "":
		return &GroqBackend{
			APIKey:      cfg.APIKey,
			Model:       cfg.Model,
			BaseURL:     cfg.BaseURL,
			Temperature: cfg.Temperature,
			Client:      client,
		}, nil
	case types.BackendLangChain:
		return NewLangChainBackend(cfg.AIConfig, client)
	default:
		return nil, fmt.Errorf("unsupported backend %q: use %s or %s", cfg.Backend, types.BackendHTTP, types.BackendLangChain)
	}
}

// NewLimiter returns a limiter allowing requestsPerMinute calls, or nil
// when requestsPerMinute is not positive.
func NewLimiter(requestsPerMinute float64) *rate.Limiter {
	if requestsPerMinute <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(requestsPerMinute/60), 1)
}

// Processor enriches articles one at a time through Backend.
type Processor struct {
	Backend AIBackend

	// Limiter, when set, paces successive completion calls.
	Limiter *rate.Limiter

	// OnProgress is called after each article is enriched.
	OnProgress func(done, total int, article types.Article)
}

// Process calls the backend once per article, in order, parses the labeled
// completion text, and writes the fields into the articles in place. The
// same slice is returned. The first failure stops the batch and is returned
// with the article's position and a nil slice. Articles before the failing
// one have already been enriched in the caller's slice, so callers should
// discard it when an error is returned.
func (p *Processor) Process(ctx context.Context, articles []types.Article) ([]types.Article, error) {
	for i := range articles {
		if p.Limiter != nil {
			if err := p.Limiter.Wait(ctx); err != nil {
				return nil, fmt.Errorf("waiting to enrich article %d: %w", i, err)
			}
		}

		text, err := p.Backend.Complete(ctx, articles[i])
		if err != nil {
			return nil, fmt.Errorf("enriching article %d (%q): %w", i, articles[i].Title, err)
		}

		Apply(&articles[i], ParseLabels(text))

		if p.OnProgress != nil {
			p.OnProgress(i+1, len(articles), articles[i])
		}
	}
	return articles, nil
}

// Process enriches articles with backend and no pacing.
func Process(ctx context.Context, backend AIBackend, articles []types.Article) ([]types.Article, error) {
	p := &Processor{Backend: backend}
	return p.Process(ctx, articles)
}

// defaultHTTPClient is used by backends constructed without a client.
func defaultHTTPClient(c *http.Client) *http.Client {
	if c == nil {
		return http.DefaultClient
	}
	return c
}
