// Package ioread loads the four raw BAAC tables from disk. The source
// files are semicolon-separated with a header row; header cells may carry
// incidental surrounding whitespace and a UTF-8 BOM, both stripped before
// use. A missing file or a table without data rows is a structural
// failure that aborts the run; everything below row granularity is
// handled later by sentinels.
package ioread

import (
	"context"
	"encoding/csv"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/baactools/baacprep/pkg/config"
	"github.com/baactools/baacprep/pkg/dataset"
	"github.com/baactools/baacprep/pkg/tables"
	"golang.org/x/sync/errgroup"
)

// RawTables holds one immutable snapshot of the four raw source tables.
type RawTables struct {
	Caracteristiques *tables.Table
	Lieux            *tables.Table
	Vehicules        *tables.Table
	Usagers          *tables.Table
}

// Table reads one semicolon-separated file into a table.
func Table(path string) (*tables.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ReadTableError(path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ';'
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return nil, ReadTableError(path, err)
	}

	t := tables.New(header)
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, ReadTableError(path, err)
		}
		t.Append(row)
	}

	if t.Len() == 0 {
		return nil, EmptyTableError(path)
	}
	return t, nil
}

// LoadAll reads the four tables concurrently. The characteristics table
// gets its locale-formatted latitude/longitude normalized to dot-decimal
// form right after load, so every later stage sees numeric-parseable
// coordinates.
func LoadAll(
	ctx context.Context,
	cfg *config.Config,
	files dataset.Files,
) (*RawTables, error) {
	var res RawTables
	dir := cfg.Dataset.Dir

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(cfg.JobsNumber)

	g.Go(func() error {
		t, err := Table(filepath.Join(dir, files.Caracteristiques))
		if err != nil {
			return err
		}
		t.NormalizeDecimal("lat")
		t.NormalizeDecimal("long")
		res.Caracteristiques = t
		return nil
	})
	g.Go(func() error {
		t, err := Table(filepath.Join(dir, files.Lieux))
		if err != nil {
			return err
		}
		res.Lieux = t
		return nil
	})
	g.Go(func() error {
		t, err := Table(filepath.Join(dir, files.Vehicules))
		if err != nil {
			return err
		}
		res.Vehicules = t
		return nil
	})
	g.Go(func() error {
		t, err := Table(filepath.Join(dir, files.Usagers))
		if err != nil {
			return err
		}
		res.Usagers = t
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slog.Info("Loaded raw tables",
		"accidents", res.Caracteristiques.Len(),
		"locations", res.Lieux.Len(),
		"vehicles", res.Vehicules.Len(),
		"persons", res.Usagers.Len(),
	)
	return &res, nil
}
