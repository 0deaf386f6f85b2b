//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Digest builds the CLI and runs the full pipeline for query.
// The completion API key must be available in .secrets/ or the environment.
func Digest(query string) error {
	mg.Deps(Build)
	return sh.RunV("./bin/arxiv-digest", "digest", "--query", query)
}

// Fetch builds the CLI and searches arXiv for query without enrichment.
func Fetch(query string) error {
	mg.Deps(Build)
	return sh.RunV("./bin/arxiv-digest", "fetch", "--query", query)
}
