// Package config provides configuration management for baacprep.
//
// This package has no I/O dependencies (no file operations, no network
// calls). Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Environment Variables
//
// Use BAACPREP_ prefix with underscores for nesting:
//
//	BAACPREP_DATASET_DIR=/data/baac/2024
//	BAACPREP_OUTPUT_DIR=/data/baac/out
//	BAACPREP_LOG_LEVEL=info
//	BAACPREP_JOBS_NUMBER=8
package config

import (
	"runtime"
)

// Config represents the complete baacprep configuration.
type Config struct {
	// Dataset contains settings for locating the raw BAAC tables.
	Dataset DatasetConfig `mapstructure:"dataset" yaml:"dataset"`

	// Output contains settings for the published tables.
	Output OutputConfig `mapstructure:"output" yaml:"output"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers for parallel
	// operations. Default value is set according to the number of
	// available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// DatasetConfig contains settings for the raw BAAC input tables.
// The file names of the four tables come from datasets.yaml; this
// struct holds everything else needed to locate and interpret them.
type DatasetConfig struct {
	// Dir is the directory holding the four raw CSV files.
	Dir string `mapstructure:"dir" yaml:"dir"`

	// ReferenceYear is the accident year used for age computation.
	// Overridden by the year declared in datasets.yaml when present.
	ReferenceYear int `mapstructure:"reference_year" yaml:"reference_year"`
}

// OutputConfig contains settings for the two published tables.
type OutputConfig struct {
	// Dir is the directory where output files are written.
	Dir string `mapstructure:"dir" yaml:"dir"`

	// DetailFile is the person-grain CSV file name.
	DetailFile string `mapstructure:"detail_file" yaml:"detail_file"`

	// SummaryFile is the accident-grain CSV file name.
	SummaryFile string `mapstructure:"summary_file" yaml:"summary_file"`

	// SQLitePath, when non-empty, makes the publisher also write both
	// tables into an embedded SQLite database at this path.
	SQLitePath string `mapstructure:"sqlite_path" yaml:"sqlite_path"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Dataset: DatasetConfig{
			Dir:           "dataset",
			ReferenceYear: 2024,
		},
		Output: OutputConfig{
			Dir:         "dataset",
			DetailFile:  "accidents_complet_detaille.csv",
			SummaryFile: "accidents_complet_synthese.csv",
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}
