package merge_test

import (
	"testing"

	"github.com/baactools/baacprep/pkg/merge"
	"github.com/baactools/baacprep/pkg/tables"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func caract() *tables.Table {
	return tables.FromRecords([][]string{
		{"Num_Acc", "an", "lum"},
		{"A1", "2024", "1"},
		{"A2", "2024", "3"},
		{"A3", "2024", "5"},
	})
}

func TestLeftJoinOneToOne(t *testing.T) {
	lieux := tables.FromRecords([][]string{
		{"Num_Acc", "vma"},
		{"A1", "50"},
		{"A2", "80"},
	})

	res := merge.LeftJoin(caract(), lieux, []string{"Num_Acc"}, "_lieux")
	require.Equal(t, 3, res.Len())
	assert.Equal(t, []string{"Num_Acc", "an", "lum", "vma"}, res.Header())

	cell, _ := res.Cell(0, "vma")
	assert.Equal(t, "50", cell)

	// A3 has no lieux row but survives with empty right columns
	cell, _ = res.Cell(2, "Num_Acc")
	assert.Equal(t, "A3", cell)
	cell, _ = res.Cell(2, "vma")
	assert.Empty(t, cell)
}

func TestLeftJoinOneToMany(t *testing.T) {
	vehicules := tables.FromRecords([][]string{
		{"Num_Acc", "id_vehicule", "catv"},
		{"A1", "V1", "7"},
		{"A1", "V2", "1"},
		{"A2", "V3", "33"},
	})

	res := merge.LeftJoin(caract(), vehicules, []string{"Num_Acc"}, "_veh")
	// A1 doubles, A2 matches once, A3 kept unmatched
	require.Equal(t, 4, res.Len())

	cell, _ := res.Cell(0, "id_vehicule")
	assert.Equal(t, "V1", cell)
	cell, _ = res.Cell(1, "id_vehicule")
	assert.Equal(t, "V2", cell)
	cell, _ = res.Cell(3, "Num_Acc")
	assert.Equal(t, "A3", cell)
}

func TestLeftJoinCollisionSuffix(t *testing.T) {
	lieux := tables.FromRecords([][]string{
		{"Num_Acc", "an", "catr"},
		{"A1", "1999", "3"},
	})

	res := merge.LeftJoin(caract(), lieux, []string{"Num_Acc"}, "_lieux")
	assert.Equal(t, []string{"Num_Acc", "an", "lum", "an_lieux", "catr"}, res.Header())

	// the left value keeps the original name
	cell, _ := res.Cell(0, "an")
	assert.Equal(t, "2024", cell)
	cell, _ = res.Cell(0, "an_lieux")
	assert.Equal(t, "1999", cell)
}

func TestLeftJoinCompositeKey(t *testing.T) {
	vehicules := tables.FromRecords([][]string{
		{"Num_Acc", "id_vehicule", "num_veh", "catv"},
		{"A1", "V1", "B01", "7"},
	})
	usagers := tables.FromRecords([][]string{
		{"Num_Acc", "id_vehicule", "num_veh", "grav"},
		{"A1", "V1", "B01", "2"},
		{"A1", "V1", "B01", "4"},
		{"A1", "V9", "B09", "1"},
	})

	res := merge.LeftJoin(
		vehicules, usagers,
		[]string{"Num_Acc", "id_vehicule", "num_veh"}, "_usager",
	)
	require.Equal(t, 2, res.Len(), "only exact composite matches multiply")

	cell, _ := res.Cell(0, "grav")
	assert.Equal(t, "2", cell)
	cell, _ = res.Cell(1, "grav")
	assert.Equal(t, "4", cell)
}

func TestLeftJoinMissingKeyColumn(t *testing.T) {
	noKey := tables.FromRecords([][]string{
		{"foo"},
		{"bar"},
	})

	res := merge.LeftJoin(caract(), noKey, []string{"Num_Acc"}, "_x")
	require.Equal(t, 3, res.Len(), "left rows survive when right has no key")
	cell, _ := res.Cell(0, "foo")
	assert.Empty(t, cell)
}

func TestLeftJoinDeterministic(t *testing.T) {
	lieux := tables.FromRecords([][]string{
		{"Num_Acc", "vma"},
		{"A1", "50"},
		{"A1", "80"},
		{"A2", "30"},
	})

	first := merge.LeftJoin(caract(), lieux, []string{"Num_Acc"}, "_lieux")
	second := merge.LeftJoin(caract(), lieux, []string{"Num_Acc"}, "_lieux")

	require.Equal(t, first.Len(), second.Len())
	for i := 0; i < first.Len(); i++ {
		assert.Equal(t, first.Row(i), second.Row(i), "row %d", i)
	}
}
