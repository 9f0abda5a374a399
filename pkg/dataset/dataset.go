// Package dataset defines the schema for datasets.yaml, the manifest
// that names the four raw BAAC files of one accident year. Users edit
// this manifest to point baacprep at a different yearly release without
// touching the application configuration.
package dataset

import (
	"errors"
	"fmt"
)

// Datasets loads the datasets.yaml manifest.
type Datasets interface {
	Load() (*Manifest, error)
}

// Manifest represents the complete datasets.yaml file.
type Manifest struct {
	Dataset Dataset `yaml:"dataset"`
}

// Dataset describes one yearly BAAC release.
type Dataset struct {
	// Year of the release, also used as the reference year for age
	// computation.
	Year int `yaml:"year"`

	// Files holds the names of the four raw CSV tables, relative to the
	// configured dataset directory.
	Files Files `yaml:"files"`
}

// Files names the four raw tables of a release.
type Files struct {
	Caracteristiques string `yaml:"caracteristiques"`
	Lieux            string `yaml:"lieux"`
	Vehicules        string `yaml:"vehicules"`
	Usagers          string `yaml:"usagers"`
}

// Validate checks that the manifest names all four tables.
func (m *Manifest) Validate() error {
	var missing []string
	f := m.Dataset.Files
	for _, v := range []struct {
		table, name string
	}{
		{"caracteristiques", f.Caracteristiques},
		{"lieux", f.Lieux},
		{"vehicules", f.Vehicules},
		{"usagers", f.Usagers},
	} {
		if v.name == "" {
			missing = append(missing, v.table)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("datasets.yaml misses file names for: %v", missing)
	}
	if m.Dataset.Year < 0 {
		return errors.New("datasets.yaml year cannot be negative")
	}
	return nil
}
