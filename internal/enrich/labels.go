// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package enrich

import (
	"strings"

	"github.com/pdiddy/arxiv-digest/pkg/types"
)

// Label names one field of the labeled completion text.
type Label string

const (
	LabelKeywords Label = "Keywords"
	LabelSummary  Label = "Summary"
	LabelProblem  Label = "Problem"
	LabelSolution Label = "Solution"
	LabelTopic    Label = "Topic"
)

// AllLabels lists the recognised labels in prompt order.
var AllLabels = []Label{LabelKeywords, LabelSummary, LabelProblem, LabelSolution, LabelTopic}

// Labels holds the values found in a completion, keyed by label. Only labels
// present in the text have an entry.
type Labels map[Label]string

// ParseLabels extracts "Label: value" fields from completion text.
//
// A line opens a field when, after optional list or emphasis markers
// ("-", "*", "**"), it starts with a known label (case-insensitive) followed
// by a colon. Following lines that do not open a field are appended to the
// open value. Values are whitespace-trimmed and keep any colons after the
// first. When a label occurs more than once the first occurrence wins. Text
// before the first label is ignored.
func ParseLabels(text string) Labels {
	out := Labels{}

	var (
		current Label
		open    bool
		skip    bool
		lines   []string
	)
	flush := func() {
		if open && !skip {
			out[current] = strings.TrimSpace(strings.Join(lines, "\n"))
		}
		lines = nil
	}

	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		label, rest, ok := matchLabel(line)
		if !ok {
			if open {
				lines = append(lines, line)
			}
			continue
		}

		flush()
		_, seen := out[label]
		current, open, skip = label, true, seen
		lines = []string{rest}
	}
	flush()

	return out
}

// matchLabel reports whether line opens a labeled field and returns the
// label and the text after its colon.
func matchLabel(line string) (Label, string, bool) {
	s := strings.TrimLeft(strings.TrimSpace(line), "-*# \t")

	for _, l := range AllLabels {
		if len(s) < len(l) || !strings.EqualFold(s[:len(l)], string(l)) {
			continue
		}
		rest := strings.TrimLeft(s[len(l):], "* \t")
		if !strings.HasPrefix(rest, ":") {
			continue
		}
		rest = strings.TrimLeft(rest[1:], "*")
		return l, rest, true
	}
	return "", "", false
}

// Apply writes the labels present in l into a. Absent labels leave the
// corresponding field untouched.
func Apply(a *types.Article, l Labels) {
	for label, value := range l {
		switch label {
		case LabelKeywords:
			a.Keywords = value
		case LabelSummary:
			a.Summary = value
		case LabelProblem:
			a.Problem = value
		case LabelSolution:
			a.Solution = value
		case LabelTopic:
			a.Topic = value
		}
	}
}
