// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package enrich

import (
	"bytes"
	"text/template"

	"github.com/pdiddy/arxiv-digest/pkg/types"
)

// systemPrompt frames the model as an abstract analyst.
const systemPrompt = "You are a research assistant that analyses scientific article abstracts."

// enrichmentPromptTmpl is sent as the user message for each article. It asks
// for exactly five labeled lines so ParseLabels can split the answer.
var enrichmentPromptTmpl = template.Must(template.New("enrichment").Parse(`Analyse the following abstract of a scientific article and answer with exactly five lines, one per field, in this form:

Keywords: <comma-separated list of 3 to 6 keywords>
Summary: <one or two sentence summary>
Problem: <the problem the article addresses>
Solution: <the solution or method it proposes>
Topic: <the broad research topic>

Do not add any other text.
{{if .Title}}
Title: {{.Title}}
{{end}}
Abstract:
{{.Abstract}}
`))

// renderPrompt executes the enrichment prompt template for one article.
func renderPrompt(a types.Article) (string, error) {
	var buf bytes.Buffer
	if err := enrichmentPromptTmpl.Execute(&buf, a); err != nil {
		return "", err
	}
	return buf.String(), nil
}
