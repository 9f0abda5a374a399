package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/baactools/baacprep/internal/iofs"
	"github.com/baactools/baacprep/internal/iologger"
	"github.com/baactools/baacprep/pkg/config"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	cfg     *config.Config
)

func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "baacprep",
		Short: "baacprep prepares BAAC road-accident data for analysis",
		Long: `baacprep is a CLI tool that turns the four raw yearly BAAC tables
(caractéristiques, lieux, véhicules, usagers) into two analysis-ready
datasets: a person-grain detail table and an accident-grain synthesis
table with casualty rollups and severity scoring.

Configuration precedence (highest to lowest):
  1. CLI flags (--dataset-dir, --output, etc.)
  2. Environment variables (BAACPREP_*)
  3. Config file (~/.config/baacprep/config.yaml)
  4. Built-in defaults

The four input file names come from ~/.config/baacprep/datasets.yaml;
edit that manifest to point baacprep at a different yearly release.

Environment Variables:
  Nested fields use underscores (dataset.dir → BAACPREP_DATASET_DIR).

  Examples:
    BAACPREP_DATASET_DIR     Directory with the four raw CSV files
    BAACPREP_OUTPUT_DIR      Directory for published tables
    BAACPREP_LOG_LEVEL       Log level (debug/info/warn/error)
    BAACPREP_JOBS_NUMBER     Number of concurrent workers`,
		Version:           Version,
		PersistentPreRunE: bootstrap,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "baacprep version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V
	rootCmd.Flags().BoolP("version", "V", false, "version for baacprep")

	rootCmd.AddCommand(getPrepareCmd())

	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults.
	// Will be reconfigured later with user's config settings.
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog, false); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDatasetsFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info(
		"Configuration files are available at <em>%s</em>",
		config.ConfigDir(homeDir),
	)

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	cfg.Update(cfgViper.ToOptions())
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Reconfigure logging with user's settings, appending to the log
	// file created during early bootstrap.
	if err = iologger.Init(config.LogDir(homeDir), cfg.Log, true); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir))

	return nil
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables
	// are allowed. These match the fields included in
	// config.ToOptions() - i.e., persistent configuration that can be
	// stored in config.yaml.
	v.SetEnvPrefix("BAACPREP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Dataset configuration
	v.BindEnv("dataset.dir", "DATASET_DIR")
	v.BindEnv("dataset.reference_year", "DATASET_REFERENCE_YEAR")

	// Output configuration
	v.BindEnv("output.dir", "OUTPUT_DIR")
	v.BindEnv("output.detail_file", "OUTPUT_DETAIL_FILE")
	v.BindEnv("output.summary_file", "OUTPUT_SUMMARY_FILE")
	v.BindEnv("output.sqlite_path", "OUTPUT_SQLITE_PATH")

	// Log configuration
	v.BindEnv("log.level", "LOG_LEVEL")
	v.BindEnv("log.format", "LOG_FORMAT")
	v.BindEnv("log.destination", "LOG_DESTINATION")

	// General configuration
	v.BindEnv("jobs_number", "JOBS_NUMBER")

	v.AutomaticEnv()
}
