package dataset_test

import (
	"testing"

	"github.com/baactools/baacprep/pkg/dataset"
	"github.com/stretchr/testify/assert"
)

func validManifest() *dataset.Manifest {
	return &dataset.Manifest{
		Dataset: dataset.Dataset{
			Year: 2024,
			Files: dataset.Files{
				Caracteristiques: "caract-2024.csv",
				Lieux:            "lieux-2024.csv",
				Vehicules:        "vehicules-2024.csv",
				Usagers:          "usagers-2024.csv",
			},
		},
	}
}

func TestValidate(t *testing.T) {
	m := validManifest()
	assert.NoError(t, m.Validate())

	m = validManifest()
	m.Dataset.Files.Vehicules = ""
	err := m.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "vehicules")

	m = validManifest()
	m.Dataset.Year = -2
	assert.Error(t, m.Validate())

	m = validManifest()
	m.Dataset.Year = 0
	assert.NoError(t, m.Validate(), "zero year falls back to config")
}
