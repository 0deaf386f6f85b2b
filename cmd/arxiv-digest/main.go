// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the arxiv-digest CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/arxiv-digest/internal/enrich"
	"github.com/pdiddy/arxiv-digest/internal/feed"
	"github.com/pdiddy/arxiv-digest/internal/secrets"
	"github.com/pdiddy/arxiv-digest/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const defaultUserAgent = "arxiv-digest/0.1"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the arxiv-digest CLI.
var rootCmd = &cobra.Command{
	Use:   "arxiv-digest",
	Short: "Fetch arXiv articles and enrich them with an LLM",
	Long: `arxiv-digest searches the arXiv API, parses the Atom feed into article
records, and asks a completion API (Groq by default) for keywords, a summary,
the problem, the solution, and the topic of each abstract.

Use fetch to search only, parse to read a saved feed file, and digest to run
the whole pipeline.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(secrets.DefaultDir, os.Stderr)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 && !quiet() {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			status("Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./arxiv-digest.yaml or ~/.config/arxiv-digest/config.yaml)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress status output on stderr")
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("arxiv-digest")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "arxiv-digest"))
		}
	}

	viper.SetDefault("http.user_agent", defaultUserAgent)
	viper.SetDefault("http.timeout", time.Duration(0))
	viper.SetDefault("fetch.base_url", "")
	viper.SetDefault("fetch.max_results", feed.DefaultMaxResults)
	viper.SetDefault("fetch.feed_file", feed.DefaultFeedFile)
	viper.SetDefault("groq.model", enrich.DefaultModel)
	viper.SetDefault("groq.base_url", enrich.DefaultBaseURL)
	viper.SetDefault("groq.temperature", 0.2)
	viper.SetDefault("enrich.backend", string(types.BackendHTTP))
	viper.SetDefault("enrich.requests_per_minute", 0)
	viper.SetDefault("output.format", "table")

	viper.SetEnvPrefix("ARXIV_DIGEST")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && !quiet() {
		status("Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// bindFlags binds the named flags of cmd to viper keys. It runs from each
// command's PreRunE so commands sharing a key do not override each other.
func bindFlags(bindings map[string]string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		for key, name := range bindings {
			f := cmd.Flags().Lookup(name)
			if f == nil {
				return fmt.Errorf("unknown flag %q for %s", name, key)
			}
			if err := viper.BindPFlag(key, f); err != nil {
				return err
			}
		}
		return nil
	}
}

func httpConfig() types.HTTPConfig {
	return types.HTTPConfig{
		Timeout:   viper.GetDuration("http.timeout"),
		UserAgent: viper.GetString("http.user_agent"),
	}
}

func fetchConfig() types.FetchConfig {
	return types.FetchConfig{
		HTTPConfig: httpConfig(),
		BaseURL:    viper.GetString("fetch.base_url"),
		MaxResults: viper.GetInt("fetch.max_results"),
		FeedFile:   viper.GetString("fetch.feed_file"),
	}
}

func enrichConfig() types.EnrichConfig {
	return types.EnrichConfig{
		AIConfig: types.AIConfig{
			Model:       viper.GetString("groq.model"),
			APIKey:      secrets.Resolve(loadedSecrets, secrets.GroqAPIKey, viper.GetString("groq.api_key")),
			BaseURL:     viper.GetString("groq.base_url"),
			Temperature: viper.GetFloat64("groq.temperature"),
		},
		HTTPConfig:        httpConfig(),
		Backend:           types.EnrichBackend(viper.GetString("enrich.backend")),
		RequestsPerMinute: viper.GetFloat64("enrich.requests_per_minute"),
	}
}

func quiet() bool {
	return viper.GetBool("quiet")
}

// status writes a progress line to stderr unless --quiet is set.
func status(format string, a ...any) {
	if quiet() {
		return
	}
	color.New(color.FgCyan).Fprintf(os.Stderr, format, a...)
}

// success writes a completion line to stderr unless --quiet is set.
func success(format string, a ...any) {
	if quiet() {
		return
	}
	color.New(color.FgGreen).Fprintf(os.Stderr, format, a...)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
