// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/arxiv-digest/internal/enrich"
	"github.com/pdiddy/arxiv-digest/internal/report"
	"github.com/pdiddy/arxiv-digest/pkg/types"
)

var digestCmd = &cobra.Command{
	Use:   "digest [query...]",
	Short: "Search arXiv and enrich each article with the completion API",
	Long: `Digest runs the whole pipeline: it searches arXiv, parses the feed, then
sends each abstract to the completion API one at a time and fills in the
keywords, summary, problem, solution, and topic fields.

The API key is read from --api-key, ARXIV_DIGEST_GROQ_API_KEY, the config
file (groq.api_key), or .secrets/groq-api-key. Any failure aborts the run.`,
	PreRunE: bindFlags(map[string]string{
		"fetch.max_results":          "max-results",
		"fetch.feed_file":            "feed-file",
		"output.format":              "format",
		"groq.model":                 "model",
		"groq.api_key":               "api-key",
		"enrich.backend":             "backend",
		"enrich.requests_per_minute": "rate",
	}),
	RunE: runDigest,
}

func init() {
	addFetchFlags(digestCmd)
	digestCmd.Flags().String("format", "markdown", "output format: table, json, yaml, or markdown")
	digestCmd.Flags().String("model", enrich.DefaultModel, "completion model identifier")
	digestCmd.Flags().String("api-key", "", "completion API key")
	digestCmd.Flags().String("backend", string(types.BackendHTTP), "completion client: http or langchain")
	digestCmd.Flags().Float64("rate", 0, "maximum completion requests per minute (0 = unpaced)")

	rootCmd.AddCommand(digestCmd)
}

func runDigest(cmd *cobra.Command, args []string) error {
	cfg := enrichConfig()
	backend, err := enrich.NewBackend(cfg)
	if err != nil {
		return err
	}

	articles, err := fetchArticles(cmd, args)
	if err != nil {
		return err
	}

	p := &enrich.Processor{
		Backend: backend,
		Limiter: enrich.NewLimiter(cfg.RequestsPerMinute),
	}
	var bar *progressbar.ProgressBar
	if !quiet() && len(articles) > 0 {
		bar = newProgressBar(len(articles), "Enriching")
		p.OnProgress = func(done, total int, a types.Article) {
			bar.Add(1)
		}
	}

	articles, err = p.Process(cmd.Context(), articles)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return err
	}
	success("Enriched %d articles with %s\n", len(articles), cfg.Model)

	return report.Write(cmd.OutOrStdout(), report.Format(viper.GetString("output.format")), articles)
}

func newProgressBar(total int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription(color.BlueString(description)),
		progressbar.OptionSetItsString("articles"),
		progressbar.OptionShowCount(),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetRenderBlankState(true),
	)
}
