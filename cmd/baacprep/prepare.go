package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/baactools/baacprep/internal/ioprepare"
	"github.com/baactools/baacprep/pkg/config"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getPrepareCmd returns the prepare command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getPrepareCmd() *cobra.Command {
	var (
		datasetDir string
		outputDir  string
		sqlitePath string
		refYear    int
	)

	prepareCmd := &cobra.Command{
		Use:   "prepare",
		Short: "Build the enriched accident datasets",
		Long: `Read the four raw BAAC tables and publish two enriched datasets.

This command:
  1. Reads datasets.yaml to find the four raw CSV files
  2. Loads caractéristiques, lieux, véhicules and usagers
  3. Builds the person-grain detail table (one row per person,
     with accident, road and vehicle context joined in)
  4. Builds the accident-grain synthesis table (casualty rollups,
     severity score and category, road context)
  5. Writes both tables as UTF-8 CSV with BOM, Excel-compatible
  6. Optionally writes both tables into a SQLite database

Examples:
  # Prepare with settings from config.yaml
  baacprep prepare

  # Point at a different release directory
  baacprep prepare --dataset-dir /data/baac/2024

  # Also publish a SQLite database
  baacprep prepare --sqlite /data/baac/out/baac.db`,
		Aliases: []string{"run"},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runPrepare(cmd, datasetDir, outputDir, sqlitePath, refYear)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	prepareCmd.Flags().StringVarP(
		&datasetDir, "dataset-dir", "d", "",
		"directory holding the four raw CSV files",
	)
	prepareCmd.Flags().StringVarP(
		&outputDir, "output", "o", "",
		"directory for the published tables",
	)
	prepareCmd.Flags().StringVarP(
		&sqlitePath, "sqlite", "s", "",
		"also publish both tables into a SQLite database at this path",
	)
	prepareCmd.Flags().IntVarP(
		&refYear, "reference-year", "y", 0,
		"accident year for age computation when datasets.yaml declares none",
	)

	return prepareCmd
}

func runPrepare(
	cmd *cobra.Command,
	datasetDir, outputDir, sqlitePath string,
	refYear int,
) error {
	// Build options from explicitly set flags
	var opts []config.Option

	if cmd.Flags().Changed("dataset-dir") {
		opts = append(opts, config.OptDatasetDir(datasetDir))
	}
	if cmd.Flags().Changed("output") {
		opts = append(opts, config.OptOutputDir(outputDir))
	}
	if cmd.Flags().Changed("sqlite") {
		opts = append(opts, config.OptSQLitePath(sqlitePath))
	}
	if cmd.Flags().Changed("reference-year") {
		opts = append(opts, config.OptReferenceYear(refYear))
	}
	cfg.Update(opts)

	ctx, stop := signal.NotifyContext(
		context.Background(), os.Interrupt)
	defer stop()

	return ioprepare.New(cfg).Prepare(ctx)
}
