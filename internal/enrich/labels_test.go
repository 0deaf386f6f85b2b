// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/arxiv-digest/pkg/types"
)

const fullCompletion = "Keywords: AI, Research\nSummary: Short summary\nProblem: Define problem\nSolution: Provide solution\nTopic: Topic details"

func TestParseLabels(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Labels
	}{
		{
			name: "all labels",
			text: fullCompletion,
			want: Labels{
				LabelKeywords: "AI, Research",
				LabelSummary:  "Short summary",
				LabelProblem:  "Define problem",
				LabelSolution: "Provide solution",
				LabelTopic:    "Topic details",
			},
		},
		{
			name: "reordered labels",
			text: "Topic: NLP\nSolution: Transformers\nKeywords: attention\nProblem: Slow RNNs\nSummary: Attention only",
			want: Labels{
				LabelKeywords: "attention",
				LabelSummary:  "Attention only",
				LabelProblem:  "Slow RNNs",
				LabelSolution: "Transformers",
				LabelTopic:    "NLP",
			},
		},
		{
			name: "missing labels",
			text: "Keywords: graphs\nTopic: Networks",
			want: Labels{
				LabelKeywords: "graphs",
				LabelTopic:    "Networks",
			},
		},
		{
			name: "multi-line value",
			text: "Summary: First line\nsecond line\n\nProblem: P",
			want: Labels{
				LabelSummary: "First line\nsecond line",
				LabelProblem: "P",
			},
		},
		{
			name: "value on following line",
			text: "Summary:\n  The whole summary.\nTopic: T",
			want: Labels{
				LabelSummary: "The whole summary.",
				LabelTopic:   "T",
			},
		},
		{
			name: "first occurrence wins",
			text: "Topic: first\nmore first\nTopic: second\nmore second",
			want: Labels{LabelTopic: "first\nmore first"},
		},
		{
			name: "colons inside value",
			text: "Solution: see https://example.com/code: v2\nKeywords: a: b",
			want: Labels{
				LabelSolution: "see https://example.com/code: v2",
				LabelKeywords: "a: b",
			},
		},
		{
			name: "surrounding whitespace and preamble",
			text: "Here is the analysis:\n\n  Keywords:   ML  \r\nSummary:\tS\t",
			want: Labels{
				LabelKeywords: "ML",
				LabelSummary:  "S",
			},
		},
		{
			name: "markdown markers and case",
			text: "- **Keywords:** x, y\n* **Summary**: s\n## topic: t",
			want: Labels{
				LabelKeywords: "x, y",
				LabelSummary:  "s",
				LabelTopic:    "t",
			},
		},
		{
			name: "label word without colon is not a label",
			text: "Summary: s\nTopics covered: many\nProblem statement follows",
			want: Labels{LabelSummary: "s\nTopics covered: many\nProblem statement follows"},
		},
		{
			name: "empty text",
			text: "",
			want: Labels{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLabels(tt.text))
		})
	}
}

func TestApply(t *testing.T) {
	a := types.Article{Title: "T", Abstract: "A", Topic: "kept"}
	Apply(&a, Labels{LabelKeywords: "k", LabelSummary: "s", LabelProblem: "p", LabelSolution: "so"})

	assert.Equal(t, "k", a.Keywords)
	assert.Equal(t, "s", a.Summary)
	assert.Equal(t, "p", a.Problem)
	assert.Equal(t, "so", a.Solution)
	assert.Equal(t, "kept", a.Topic, "absent label must not overwrite the field")
	assert.Equal(t, "T", a.Title)
	assert.Equal(t, "A", a.Abstract)
}

func TestApply_NoLabels(t *testing.T) {
	a := types.Article{Abstract: "A"}
	Apply(&a, ParseLabels("nothing useful here"))
	assert.False(t, a.Enriched())
}
