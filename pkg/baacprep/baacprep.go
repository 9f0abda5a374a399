package baacprep

import (
	"context"
)

// Preparer runs the complete dataset preparation pipeline: load the four
// raw BAAC tables, enrich coded columns with labels, merge tables into
// person-grain and accident-grain views, compute per-accident casualty
// rollups, and publish the resulting tables.
// Configuration is provided during construction.
// A run either completes a full pass or fails; per-row anomalies degrade
// to sentinel values and never abort the run.
type Preparer interface {
	// Prepare executes one pipeline pass over an immutable raw snapshot.
	Prepare(ctx context.Context) error
}
