package ioprepare

import (
	"github.com/baactools/baacprep/internal/ioread"
	"github.com/baactools/baacprep/pkg/aggregate"
	"github.com/baactools/baacprep/pkg/codes"
	"github.com/baactools/baacprep/pkg/enrich"
	"github.com/baactools/baacprep/pkg/merge"
	"github.com/baactools/baacprep/pkg/tables"
)

// lieuxSummaryColumns is the road-context subset carried into the
// accident-grain table.
var lieuxSummaryColumns = []string{
	"Num_Acc",
	"vma", "nbv", "catr", "surf", "plan", "prof", "circ", "infra", "situ",
}

// buildDetail assembles the person-grain table: one row per person
// involved in an accident, with the accident, road and vehicle context
// joined in, then enriched.
func buildDetail(raw *ioread.RawTables, refYear int) *tables.Table {
	df := merge.LeftJoin(
		raw.Caracteristiques, raw.Lieux, []string{"Num_Acc"}, "_lieux")
	df = merge.LeftJoin(
		df, raw.Vehicules, []string{"Num_Acc"}, "_veh")
	df = merge.LeftJoin(
		df, raw.Usagers,
		[]string{"Num_Acc", "id_vehicule", "num_veh"}, "_usager")

	enrich.Temporal(df)
	enrich.Demographic(df, refYear)
	enrichCodes(df, "detail ")
	return df
}

// buildSummary assembles the accident-grain table: one row per
// accident with casualty rollups, vehicle counts, severity, the first
// known road context, and the same code and temporal enrichment as the
// person grain.
func buildSummary(raw *ioread.RawTables, refYear int) *tables.Table {
	df := raw.Caracteristiques.Clone()

	stats, _ := aggregate.Stats(raw.Usagers, refYear)
	vehicles := aggregate.VehicleCounts(raw.Vehicules)
	aggregate.Attach(df, stats, vehicles)

	lieux := raw.Lieux.FirstPerKey("Num_Acc").Select(lieuxSummaryColumns...)
	df = merge.LeftJoin(df, lieux, []string{"Num_Acc"}, "_lieux")

	enrichCodes(df, "synthesis ")
	enrich.Temporal(df)
	return df
}

// enrichCodes adds the _code/_desc column pair for every mapped column
// present in the table, with a progress bar over the columns.
func enrichCodes(t *tables.Table, prefix string) {
	cols := codes.Columns()
	bar := newProgressBar(len(cols), prefix)
	defer bar.Finish()

	for _, col := range cols {
		enrich.CodeColumn(t, col)
		bar.Increment()
	}
}
