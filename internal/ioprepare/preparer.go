// Package ioprepare implements the Preparer interface. It orchestrates
// the whole run: load the yearly release named by datasets.yaml, build
// the person-grain and accident-grain tables, publish them as CSV (and
// optionally SQLite), and print a synthesis report.
// This is an impure I/O package; the table transformations themselves
// live in the pure pkg packages.
package ioprepare

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/baactools/baacprep/internal/iodataset"
	"github.com/baactools/baacprep/internal/iopublish"
	"github.com/baactools/baacprep/internal/ioread"
	"github.com/baactools/baacprep/pkg/baacprep"
	"github.com/baactools/baacprep/pkg/config"
	"github.com/baactools/baacprep/pkg/tables"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/google/uuid"
)

// preparer implements the Preparer interface.
type preparer struct {
	cfg *config.Config
}

// New creates a new Preparer.
func New(cfg *config.Config) baacprep.Preparer {
	return &preparer{cfg: cfg}
}

// Prepare runs the pipeline end to end. Orchestrates all phases:
// manifest load, raw table load, person-grain build, accident-grain
// build, publication, report.
func (p *preparer) Prepare(ctx context.Context) error {
	startTime := time.Now()
	runID := uuid.New().String()
	slog.Info("Starting dataset preparation",
		"run_id", runID,
		"dataset_dir", p.cfg.Dataset.Dir,
	)

	manifest, err := iodataset.New(p.cfg).Load()
	if err != nil {
		return err
	}

	// The year declared in datasets.yaml wins over the configured
	// reference year; ages are computed against the release year.
	refYear := manifest.Dataset.Year
	if refYear == 0 {
		refYear = p.cfg.Dataset.ReferenceYear
	}

	gn.Info("Loading raw tables from <em>%s</em>", p.cfg.Dataset.Dir)
	raw, err := ioread.LoadAll(ctx, p.cfg, manifest.Dataset.Files)
	if err != nil {
		return err
	}
	gn.Info(`Loaded tables
  Caractéristiques: <em>%s</em> accidents
  Lieux: <em>%s</em> records
  Véhicules: <em>%s</em> vehicles
  Usagers: <em>%s</em> persons`,
		humanize.Comma(int64(raw.Caracteristiques.Len())),
		humanize.Comma(int64(raw.Lieux.Len())),
		humanize.Comma(int64(raw.Vehicules.Len())),
		humanize.Comma(int64(raw.Usagers.Len())),
	)

	select {
	case <-ctx.Done():
		return NewCancelledError(ctx.Err())
	default:
	}

	detail := buildDetail(raw, refYear)
	slog.Info("Built person-grain table",
		"rows", detail.Len(),
		"columns", len(detail.Header()),
	)

	summary := buildSummary(raw, refYear)
	slog.Info("Built accident-grain table",
		"rows", summary.Len(),
		"columns", len(summary.Header()),
	)

	select {
	case <-ctx.Done():
		return NewCancelledError(ctx.Err())
	default:
	}

	if err = p.publish(ctx, detail, summary); err != nil {
		return err
	}

	report(raw, summary, startTime)
	return nil
}

// publish writes the two tables. The person-grain CSV goes first so an
// interrupted run never leaves a synthesis file without its detail.
func (p *preparer) publish(
	ctx context.Context,
	detail, summary *tables.Table,
) error {
	if err := os.MkdirAll(p.cfg.Output.Dir, 0755); err != nil {
		return NewOutputDirError(p.cfg.Output.Dir, err)
	}

	detailPath := filepath.Join(p.cfg.Output.Dir, p.cfg.Output.DetailFile)
	if err := iopublish.CSV(detailPath, detail); err != nil {
		return err
	}
	gn.Info("Wrote <em>%s</em>: %s rows",
		p.cfg.Output.DetailFile, humanize.Comma(int64(detail.Len())))

	summaryPath := filepath.Join(p.cfg.Output.Dir, p.cfg.Output.SummaryFile)
	if err := iopublish.CSV(summaryPath, summary); err != nil {
		return err
	}
	gn.Info("Wrote <em>%s</em>: %s rows",
		p.cfg.Output.SummaryFile, humanize.Comma(int64(summary.Len())))

	if p.cfg.Output.SQLitePath == "" {
		return nil
	}

	err := iopublish.SQLite(ctx, p.cfg.Output.SQLitePath,
		map[string]*tables.Table{
			"accidents_detaille": detail,
			"accidents_synthese": summary,
		})
	if err != nil {
		return err
	}
	gn.Info("Wrote SQLite database <em>%s</em>", p.cfg.Output.SQLitePath)
	slog.Info("Published SQLite database",
		"path", p.cfg.Output.SQLitePath)
	return nil
}

// report prints the synthesis totals for the run. The casualty totals
// come from the accident-grain table so the report shows exactly what
// was published.
func report(raw *ioread.RawTables, summary *tables.Table, start time.Time) {
	var fatal, killed, hospitalized, light, unharmed int64
	for i := 0; i < summary.Len(); i++ {
		if v, ok := summary.IntCell(i, "accident_mortel"); ok {
			fatal += int64(v)
		}
		if v, ok := summary.IntCell(i, "nb_tues"); ok {
			killed += int64(v)
		}
		if v, ok := summary.IntCell(i, "nb_blesses_hospitalises"); ok {
			hospitalized += int64(v)
		}
		if v, ok := summary.IntCell(i, "nb_blesses_legers"); ok {
			light += int64(v)
		}
		if v, ok := summary.IntCell(i, "nb_indemnes"); ok {
			unharmed += int64(v)
		}
	}

	duration := time.Since(start)
	slog.Info("Preparation complete",
		"accidents", summary.Len(),
		"fatal_accidents", fatal,
		"killed", killed,
		"duration", gnfmt.TimeString(duration.Seconds()),
	)

	gn.Info(`<title>Synthesis report</title>
Accidents: <em>%s</em>
Persons involved: <em>%s</em>
Vehicles: <em>%s</em>

Fatal accidents: <em>%s</em>
Killed: <em>%s</em>
Hospitalized: <em>%s</em>
Lightly injured: <em>%s</em>
Unharmed: <em>%s</em>

Elapsed time: <em>%s</em>
`,
		humanize.Comma(int64(summary.Len())),
		humanize.Comma(int64(raw.Usagers.Len())),
		humanize.Comma(int64(raw.Vehicules.Len())),
		humanize.Comma(fatal),
		humanize.Comma(killed),
		humanize.Comma(hospitalized),
		humanize.Comma(light),
		humanize.Comma(unharmed),
		gnfmt.TimeString(duration.Seconds()),
	)
}
