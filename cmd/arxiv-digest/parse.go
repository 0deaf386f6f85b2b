package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/arxiv-digest/internal/feed"
	"github.com/pdiddy/arxiv-digest/internal/report"
)

var parseCmd = &cobra.Command{
	Use:   "parse [feed-file]",
	Short: "Parse a saved Atom feed file",
	Long: `Parse reads an Atom feed previously saved by fetch (articles.xml by
default) and prints its articles without contacting arXiv.`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: bindFlags(map[string]string{
		"output.format": "format",
	}),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := feed.DefaultFeedFile
		if len(args) == 1 {
			path = args[0]
		}

		articles, err := feed.ParseFile(path)
		if err != nil {
			return err
		}
		return report.Write(cmd.OutOrStdout(), report.Format(viper.GetString("output.format")), articles)
	},
}

func init() {
	parseCmd.Flags().String("format", "table", "output format: table, json, yaml, or markdown")

	rootCmd.AddCommand(parseCmd)
}
