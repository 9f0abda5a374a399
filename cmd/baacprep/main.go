// Package main provides the baacprep CLI application.
// baacprep turns the raw yearly BAAC road-accident tables into
// enriched, analysis-ready datasets.
package main

import (
	"os"
)

var (
	// Version is set by build flags
	Version = "dev"
)

func main() {
	if err := getRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
