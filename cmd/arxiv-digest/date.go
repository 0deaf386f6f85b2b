package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-digest/internal/dates"
)

var dateCmd = &cobra.Command{
	Use:   "date <timestamp>",
	Short: "Format an arXiv timestamp",
	Long: `Date prints a feed timestamp (YYYY-MM-DDTHH:MM:SSZ) as "D Month YYYY"
followed by its year.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		formatted, err := dates.FormatDate(args[0])
		if err != nil {
			return err
		}
		year, err := dates.Year(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", formatted, year)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dateCmd)
}
