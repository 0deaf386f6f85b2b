// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders articles for the terminal or for other tools.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/arxiv-digest/internal/dates"
	"github.com/pdiddy/arxiv-digest/pkg/types"
)

// Format selects an output rendering.
type Format string

const (
	FormatTable    Format = "table"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
)

// Write renders articles to w in the given format.
func Write(w io.Writer, format Format, articles []types.Article) error {
	switch format {
	case FormatTable, "":
		WriteTable(w, articles)
		return nil
	case FormatJSON:
		return WriteJSON(w, articles)
	case FormatYAML:
		return WriteYAML(w, articles)
	case FormatMarkdown:
		WriteMarkdown(w, articles)
		return nil
	default:
		return fmt.Errorf("unsupported format %q: use table, json, yaml, or markdown", format)
	}
}

// WriteTable writes articles as a human-readable table.
func WriteTable(w io.Writer, articles []types.Article) {
	if len(articles) == 0 {
		fmt.Fprintln(w, "No articles found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-60s  %-20s  %-4s  %s\n", "#", "Title", "Authors", "Year", "Topic")
	fmt.Fprintln(w, strings.Repeat("-", 110))

	for i, a := range articles {
		year, err := dates.Year(a.PublishedDate)
		if err != nil {
			year = ""
		}
		fmt.Fprintf(w, "%-4d  %-60s  %-20s  %-4s  %s\n",
			i+1, truncate(oneLine(a.Title), 60), formatAuthors(a.Authors), year, truncate(oneLine(a.Topic), 30))
	}

	fmt.Fprintf(w, "\n%d articles\n", len(articles))
}

// WriteJSON writes articles as indented JSON.
func WriteJSON(w io.Writer, articles []types.Article) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(articles)
}

// WriteYAML writes articles as a YAML sequence.
func WriteYAML(w io.Writer, articles []types.Article) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(articles); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return enc.Close()
}

// WriteMarkdown writes one section per article with its enrichment fields.
func WriteMarkdown(w io.Writer, articles []types.Article) {
	for i, a := range articles {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "## %s\n\n", oneLine(a.Title))

		if len(a.Authors) > 0 {
			fmt.Fprintf(w, "*%s*\n\n", strings.Join(a.Authors, ", "))
		}
		if a.PublishedDate != "" {
			published, err := dates.FormatDate(a.PublishedDate)
			if err != nil {
				published = a.PublishedDate
			}
			fmt.Fprintf(w, "Published: %s\n\n", published)
		}
		if a.PDFLink != "" {
			fmt.Fprintf(w, "PDF: <%s>\n\n", a.PDFLink)
		}

		fields := []struct{ label, value string }{
			{"Keywords", a.Keywords},
			{"Summary", a.Summary},
			{"Problem", a.Problem},
			{"Solution", a.Solution},
			{"Topic", a.Topic},
		}
		for _, f := range fields {
			if f.value != "" {
				fmt.Fprintf(w, "- **%s:** %s\n", f.label, f.value)
			}
		}
		if !a.Enriched() && a.Abstract != "" {
			fmt.Fprintf(w, "> %s\n", oneLine(a.Abstract))
		}
	}
}

func formatAuthors(authors []string) string {
	switch len(authors) {
	case 0:
		return ""
	case 1:
		return truncate(authors[0], 20)
	default:
		return truncate(authors[0], 14) + " et al."
	}
}

// oneLine collapses internal whitespace, including the line breaks arXiv
// puts in long titles.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// truncate shortens s to at most max bytes, cutting on a rune boundary.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max - 3
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
