package ioread_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/baactools/baacprep/internal/ioread"
	"github.com/baactools/baacprep/pkg/config"
	"github.com/baactools/baacprep/pkg/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t,
		os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestTable(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "caract.csv",
		"\uFEFFNum_Acc;an;lat\nA1;2024;48,8566\nA2;2024;43,2965\n")

	tb, err := ioread.Table(filepath.Join(dir, "caract.csv"))
	require.NoError(t, err)

	assert.Equal(t, []string{"Num_Acc", "an", "lat"}, tb.Header(),
		"BOM stripped from first header cell")
	assert.Equal(t, 2, tb.Len())

	cell, _ := tb.Cell(0, "Num_Acc")
	assert.Equal(t, "A1", cell)
}

func TestTablePaddedHeaders(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "vehicules.csv",
		"Num_Acc; id_vehicule ;  senc\nA1;V1;1\n")

	tb, err := ioread.Table(filepath.Join(dir, "vehicules.csv"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Num_Acc", "id_vehicule", "senc"}, tb.Header())
}

func TestTableMissingFile(t *testing.T) {
	_, err := ioread.Table(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestTableEmpty(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "empty.csv", "Num_Acc;an\n")

	_, err := ioread.Table(filepath.Join(dir, "empty.csv"))
	assert.Error(t, err, "header-only file is a structural failure")
}

func testFiles() dataset.Files {
	return dataset.Files{
		Caracteristiques: "caract.csv",
		Lieux:            "lieux.csv",
		Vehicules:        "vehicules.csv",
		Usagers:          "usagers.csv",
	}
}

func TestLoadAll(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "caract.csv",
		"Num_Acc;an;mois;jour;hrmn;lat;long\nA1;2024;7;14;12:30;48,8566;2,3522\n")
	writeFile(t, dir, "lieux.csv", "Num_Acc;vma\nA1;50\n")
	writeFile(t, dir, "vehicules.csv",
		"Num_Acc;id_vehicule;num_veh;catv\nA1;V1;B01;7\n")
	writeFile(t, dir, "usagers.csv",
		"Num_Acc;id_vehicule;num_veh;grav\nA1;V1;B01;1\n")

	cfg := config.New()
	cfg.Update([]config.Option{config.OptDatasetDir(dir)})

	raw, err := ioread.LoadAll(context.Background(), cfg, testFiles())
	require.NoError(t, err)

	assert.Equal(t, 1, raw.Caracteristiques.Len())
	assert.Equal(t, 1, raw.Lieux.Len())
	assert.Equal(t, 1, raw.Vehicules.Len())
	assert.Equal(t, 1, raw.Usagers.Len())

	// coordinates normalized at load
	cell, _ := raw.Caracteristiques.Cell(0, "lat")
	assert.Equal(t, "48.8566", cell)
	cell, _ = raw.Caracteristiques.Cell(0, "long")
	assert.Equal(t, "2.3522", cell)
}

func TestLoadAllMissingInput(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "caract.csv", "Num_Acc\nA1\n")
	writeFile(t, dir, "lieux.csv", "Num_Acc\nA1\n")
	writeFile(t, dir, "vehicules.csv", "Num_Acc\nA1\n")
	// usagers.csv missing

	cfg := config.New()
	cfg.Update([]config.Option{config.OptDatasetDir(dir)})

	_, err := ioread.LoadAll(context.Background(), cfg, testFiles())
	assert.Error(t, err)
}
