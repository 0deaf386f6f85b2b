// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package feed fetches article metadata from the arXiv search API and
// parses the Atom response into Article records.
package feed

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/pdiddy/arxiv-digest/internal/httputil"
	"github.com/pdiddy/arxiv-digest/pkg/types"
)

// DefaultFeedFile is where Fetch keeps the raw response unless configured otherwise.
const DefaultFeedFile = "articles.xml"

// DefaultMaxResults is used when Fetch is called with a non-positive limit.
const DefaultMaxResults = 10

// arxivAPIBase is the arXiv search endpoint used when Client.BaseURL is empty.
var arxivAPIBase = "https://export.arxiv.org/api/query"

// Client queries the arXiv API.
type Client struct {
	HTTP *http.Client

	// BaseURL is the search endpoint. Empty uses the public arXiv API.
	BaseURL string

	// UserAgent is sent with each request when non-empty.
	UserAgent string

	// FeedFile receives the raw response bytes, overwriting any previous
	// content. Empty disables the file.
	FeedFile string
}

// NewClient returns a Client configured from cfg.
func NewClient(cfg types.FetchConfig) *Client {
	return &Client{
		HTTP:      httputil.NewClient(cfg.Timeout),
		BaseURL:   cfg.BaseURL,
		UserAgent: cfg.UserAgent,
		FeedFile:  cfg.FeedFile,
	}
}

// Fetch runs one search against arXiv for term, keeps the raw Atom response
// in c.FeedFile, and returns the parsed entries. Errors are returned without
// retry.
func (c *Client) Fetch(ctx context.Context, term string, maxResults int) ([]types.Article, error) {
	raw, err := c.FetchRaw(ctx, term, maxResults)
	if err != nil {
		return nil, err
	}

	if c.FeedFile != "" {
		if err := os.WriteFile(c.FeedFile, raw, 0o644); err != nil {
			return nil, fmt.Errorf("writing feed file: %w", err)
		}
	}

	return Parse(bytes.NewReader(raw))
}

// FetchRaw runs one search against arXiv and returns the response body.
func (c *Client) FetchRaw(ctx context.Context, term string, maxResults int) ([]byte, error) {
	base := c.BaseURL
	if base == "" {
		base = arxivAPIBase
	}
	u, err := queryURL(base, term, maxResults)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	resp, err := httputil.Do(c.HTTP, req, "arXiv API")
	if err != nil {
		return nil, fmt.Errorf("arXiv API request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading arXiv response: %w", err)
	}
	return raw, nil
}

// queryURL builds the search URL for a free-text term.
func queryURL(base, term string, maxResults int) (string, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return "", fmt.Errorf("empty search term")
	}
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	v := url.Values{}
	v.Set("search_query", "all:"+term)
	v.Set("start", "0")
	v.Set("max_results", strconv.Itoa(maxResults))
	return base + "?" + v.Encode(), nil
}
