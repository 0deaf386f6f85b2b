// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the arxiv-digest pipeline.
package types

// Article holds the metadata of one feed entry and, after enrichment, the
// fields derived from its abstract by the completion API. Fields that were
// absent from the source are left at their zero value and omitted on output.
type Article struct {
	// ID is the entry identifier, usually the arXiv abstract page URL.
	ID string `json:"id,omitempty" yaml:"id,omitempty"`

	// Title is the article title.
	Title string `json:"title" yaml:"title"`

	// Authors lists the article authors in feed order.
	Authors []string `json:"authors" yaml:"authors"`

	// PublishedDate is the ISO-8601 publication timestamp as it appears in
	// the feed (e.g. "2023-05-10T12:34:56Z").
	PublishedDate string `json:"published_date" yaml:"published_date"`

	// Abstract is the entry summary text.
	Abstract string `json:"abstract" yaml:"abstract"`

	// PDFLink is the href of the entry link titled "pdf".
	PDFLink string `json:"pdf_link,omitempty" yaml:"pdf_link,omitempty"`

	Keywords string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	Summary  string `json:"summary,omitempty" yaml:"summary,omitempty"`
	Problem  string `json:"problem,omitempty" yaml:"problem,omitempty"`
	Solution string `json:"solution,omitempty" yaml:"solution,omitempty"`
	Topic    string `json:"topic,omitempty" yaml:"topic,omitempty"`
}

// Enriched reports whether any enrichment field has been set.
func (a Article) Enriched() bool {
	return a.Keywords != "" || a.Summary != "" || a.Problem != "" ||
		a.Solution != "" || a.Topic != ""
}
