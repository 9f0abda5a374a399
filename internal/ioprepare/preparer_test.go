package ioprepare_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/baactools/baacprep/internal/ioprepare"
	"github.com/baactools/baacprep/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const manifestYAML = `dataset:
  year: 2024
  files:
    caracteristiques: caract.csv
    lieux: lieux.csv
    vehicules: vehicules.csv
    usagers: usagers.csv
`

const caractCSV = "\uFEFFNum_Acc;an;mois;jour;hrmn;lum;lat;long\n" +
	"A1;2024;7;14;10:30;1;48,8566;2,3522\n" +
	"A2;2024;1;6;23:15;5;43,2965;5,3698\n"

const lieuxCSV = "Num_Acc;catr;vma;nbv;surf;plan;prof;circ;infra;situ\n" +
	"A1;1;130;2;1;1;1;1;0;1\n" +
	"A1;2;50;1;2;2;2;2;1;2\n" +
	"A2;3;80;2;1;1;1;1;0;1\n"

const vehiculesCSV = "Num_Acc;id_vehicule;num_veh;catv;senc\n" +
	"A1;V1;A01;7;1\n" +
	"A1;V2;A02;33;2\n" +
	"A2;V3;A01;7;1\n"

const usagersCSV = "Num_Acc;id_vehicule;num_veh;id_usager;grav;catu;sexe;an_nais;trajet\n" +
	"A1;V1;A01;U1;2;1;1;1990;1\n" +
	"A1;V2;A02;U2;4;1;2;2000;2\n" +
	"A1;V1;A01;U3;1;2;1;-1;3\n" +
	"A2;V3;A01;U4;3;3;1;1980;4\n"

// fixture writes a small but complete yearly release and returns a
// config pointing at it.
func fixture(t *testing.T) *config.Config {
	t.Helper()
	home := t.TempDir()
	dataDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "out")

	for name, content := range map[string]string{
		"caract.csv":    caractCSV,
		"lieux.csv":     lieuxCSV,
		"vehicules.csv": vehiculesCSV,
		"usagers.csv":   usagersCSV,
	} {
		require.NoError(t,
			os.WriteFile(filepath.Join(dataDir, name), []byte(content), 0644))
	}

	require.NoError(t, os.MkdirAll(config.ConfigDir(home), 0755))
	require.NoError(t, os.WriteFile(
		config.DatasetsFilePath(home), []byte(manifestYAML), 0644))

	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptHomeDir(home),
		config.OptDatasetDir(dataDir),
		config.OptOutputDir(outDir),
	})
	return cfg
}

// readPublished parses a published CSV into a header and a map of rows
// keyed by column name.
func readPublished(t *testing.T, path string) []map[string]string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}),
		"published CSV carries a UTF-8 BOM")

	r := csv.NewReader(bytes.NewReader(data[3:]))
	recs, err := r.ReadAll()
	require.NoError(t, err)
	require.NotEmpty(t, recs)

	header := recs[0]
	var rows []map[string]string
	for _, rec := range recs[1:] {
		row := make(map[string]string, len(header))
		for i, name := range header {
			row[name] = rec[i]
		}
		rows = append(rows, row)
	}
	return rows
}

func TestPrepare(t *testing.T) {
	cfg := fixture(t)
	p := ioprepare.New(cfg)
	require.NoError(t, p.Prepare(context.Background()))

	detail := readPublished(t,
		filepath.Join(cfg.Output.Dir, cfg.Output.DetailFile))
	summary := readPublished(t,
		filepath.Join(cfg.Output.Dir, cfg.Output.SummaryFile))

	// A1 has 2 lieux rows, 2 vehicles, 3 persons; every person row is
	// duplicated per lieux row. A2 is 1x1x1.
	assert.Equal(t, 7, len(detail))
	assert.Equal(t, 2, len(summary))

	var u1 map[string]string
	for _, row := range detail {
		if row["id_usager"] == "U1" {
			u1 = row
			break
		}
	}
	require.NotNil(t, u1)
	assert.Equal(t, "Tué", u1["grav_desc"])
	assert.Equal(t, "2", u1["grav_code"], "raw code kept next to the label")
	assert.Equal(t, "Dimanche", u1["jour_semaine"])
	assert.Equal(t, "1", u1["est_weekend"])
	assert.Equal(t, "Matin", u1["periode_journee"])
	assert.Equal(t, "Juillet", u1["mois_nom"])
	assert.Equal(t, "3", u1["trimestre"])
	assert.Equal(t, "2024-07-14", u1["date"])
	assert.Equal(t, "34", u1["age"])
	assert.Equal(t, "25-34", u1["tranche_age"])
	assert.Equal(t, "48.8566", u1["lat"], "decimal comma normalized")

	rows := map[string]map[string]string{}
	for _, row := range summary {
		rows[row["Num_Acc"]] = row
	}

	a1 := rows["A1"]
	require.NotNil(t, a1)
	assert.Equal(t, "1", a1["nb_tues"])
	assert.Equal(t, "0", a1["nb_blesses_hospitalises"])
	assert.Equal(t, "1", a1["nb_blesses_legers"])
	assert.Equal(t, "1", a1["nb_indemnes"])
	assert.Equal(t, "3", a1["nb_usagers"])
	assert.Equal(t, "2", a1["nb_vehicules"])
	assert.Equal(t, "110", a1["score_gravite"])
	assert.Equal(t, "Mortel", a1["categorie_gravite"])
	assert.Equal(t, "1", a1["accident_mortel"])
	assert.Equal(t, "0.6666666666666666", a1["pct_hommes"])
	assert.Equal(t, "29", a1["age_moyen"])
	assert.Equal(t, "130", a1["vma"], "first lieux row wins")
	assert.Equal(t, "Autoroute", a1["catr_desc"])
	assert.Equal(t, "Plein jour", a1["lum_desc"])

	a2 := rows["A2"]
	require.NotNil(t, a2)
	assert.Equal(t, "30", a2["score_gravite"])
	assert.Equal(t, "Grave", a2["categorie_gravite"])
	assert.Equal(t, "0", a2["accident_mortel"])
	assert.Equal(t, "1", a2["nb_pietons"])
	assert.Equal(t, "Nuit", a2["periode_journee"])
	assert.Equal(t, "1", a2["est_weekend"], "2024-01-06 is a Saturday")
}

func TestPrepareSQLite(t *testing.T) {
	cfg := fixture(t)
	dbPath := filepath.Join(cfg.Output.Dir, "baac.db")
	cfg.Update([]config.Option{config.OptSQLitePath(dbPath)})

	p := ioprepare.New(cfg)
	require.NoError(t, p.Prepare(context.Background()))

	info, err := os.Stat(dbPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestPrepareCancelled(t *testing.T) {
	cfg := fixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := ioprepare.New(cfg)
	err := p.Prepare(ctx)
	require.Error(t, err)

	_, statErr := os.Stat(
		filepath.Join(cfg.Output.Dir, cfg.Output.DetailFile))
	assert.True(t, os.IsNotExist(statErr),
		"no partial output after cancellation")
}

func TestPrepareMissingTable(t *testing.T) {
	cfg := fixture(t)
	require.NoError(t,
		os.Remove(filepath.Join(cfg.Dataset.Dir, "usagers.csv")))

	p := ioprepare.New(cfg)
	assert.Error(t, p.Prepare(context.Background()))
}
