package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. Zero leaves the transport default
	// in place; the pipeline adds no deadline of its own.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "arxiv-digest/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FetchConfig holds settings for the fetch stage.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the arXiv search endpoint. Empty uses
	// "https://export.arxiv.org/api/query".
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`

	// MaxResults is the number of entries requested from arXiv (default 10).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// FeedFile is where the raw Atom response is written. Empty disables
	// the file.
	FeedFile string `json:"feed_file" yaml:"feed_file"`
}

// EnrichBackend selects the completion API client.
type EnrichBackend string

const (
	BackendHTTP      EnrichBackend = "http"
	BackendLangChain EnrichBackend = "langchain"
)

// AIConfig holds settings for the stage that calls the completion API.
type AIConfig struct {
	// Model is the completion model identifier (e.g. "llama-3.1-8b-instant").
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the completion API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// BaseURL is the OpenAI-compatible API root (e.g. "https://api.groq.com/openai/v1").
	BaseURL string `json:"base_url" yaml:"base_url"`

	// Temperature is the sampling temperature sent with each request.
	Temperature float64 `json:"temperature" yaml:"temperature"`
}

// EnrichConfig holds settings for the enrichment stage.
type EnrichConfig struct {
	AIConfig   `yaml:",inline"`
	HTTPConfig `yaml:",inline"`

	// Backend selects the completion client: http or langchain.
	Backend EnrichBackend `json:"backend" yaml:"backend"`

	// RequestsPerMinute paces successive completion calls. Zero means no pacing.
	RequestsPerMinute float64 `json:"requests_per_minute" yaml:"requests_per_minute"`
}
