// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/arxiv-digest/internal/feed"
	"github.com/pdiddy/arxiv-digest/internal/report"
	"github.com/pdiddy/arxiv-digest/pkg/types"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [query...]",
	Short: "Search arXiv and print the matching articles",
	Long: `Fetch sends one search to the arXiv API, keeps the raw Atom response in
the feed file (articles.xml by default), and prints the parsed articles.
No enrichment is performed.`,
	PreRunE: bindFlags(map[string]string{
		"fetch.max_results": "max-results",
		"fetch.feed_file":   "feed-file",
		"output.format":     "format",
	}),
	RunE: runFetch,
}

func init() {
	addFetchFlags(fetchCmd)
	fetchCmd.Flags().String("format", "table", "output format: table, json, yaml, or markdown")

	rootCmd.AddCommand(fetchCmd)
}

// addFetchFlags registers the flags shared by commands that query arXiv.
func addFetchFlags(cmd *cobra.Command) {
	cmd.Flags().String("query", "", "free-text search term")
	cmd.Flags().Int("max-results", feed.DefaultMaxResults, "maximum number of articles to request")
	cmd.Flags().String("feed-file", feed.DefaultFeedFile, "file receiving the raw Atom response (empty to disable)")
}

// searchTerm returns --query, or the positional arguments joined by spaces.
func searchTerm(cmd *cobra.Command, args []string) (string, error) {
	term, _ := cmd.Flags().GetString("query")
	if term == "" {
		term = strings.Join(args, " ")
	}
	if strings.TrimSpace(term) == "" {
		return "", fmt.Errorf("provide a search term with --query or as arguments")
	}
	return term, nil
}

func fetchArticles(cmd *cobra.Command, args []string) ([]types.Article, error) {
	term, err := searchTerm(cmd, args)
	if err != nil {
		return nil, err
	}

	cfg := fetchConfig()
	status("Searching arXiv for %q (max %d)\n", term, cfg.MaxResults)

	articles, err := feed.NewClient(cfg).Fetch(cmd.Context(), term, cfg.MaxResults)
	if err != nil {
		return nil, err
	}

	success("Fetched %d articles", len(articles))
	if cfg.FeedFile != "" {
		success(" (raw feed in %s)", cfg.FeedFile)
	}
	success("\n")
	return articles, nil
}

func runFetch(cmd *cobra.Command, args []string) error {
	articles, err := fetchArticles(cmd, args)
	if err != nil {
		return err
	}
	return report.Write(cmd.OutOrStdout(), report.Format(viper.GetString("output.format")), articles)
}
