// Package merge joins the raw BAAC tables into denormalized views using
// left-outer-join semantics: no left row is ever dropped, unmatched right
// columns stay empty, and every match multiplies the left row.
package merge

import (
	"strings"

	"github.com/baactools/baacprep/pkg/tables"
)

// keySep separates composite key parts. ASCII unit separator, chosen so
// it cannot occur inside CSV cell values.
const keySep = "\x1f"

// LeftJoin joins two tables on the given key columns. Join keys appear
// once, under their left-table position. Non-key right columns whose
// names collide with left columns are renamed by appending suffix.
// Rows of the result preserve left order, then right order within one
// left row, so repeated joins over identical inputs are byte-identical.
func LeftJoin(left, right *tables.Table, on []string, suffix string) *tables.Table {
	rightKey := make([]int, 0, len(on))
	for _, name := range on {
		if j, ok := right.ColumnIndex(name); ok {
			rightKey = append(rightKey, j)
		}
	}

	// positions of the right columns carried into the result
	keySet := make(map[int]bool, len(rightKey))
	for _, j := range rightKey {
		keySet[j] = true
	}
	var carried []int
	header := left.Header()
	for j, name := range right.Header() {
		if keySet[j] {
			continue
		}
		carried = append(carried, j)
		if left.HasColumn(name) {
			name += suffix
		}
		header = append(header, name)
	}

	// index right rows by key when all key columns are present
	byKey := make(map[string][]int)
	if len(rightKey) == len(on) {
		for i := 0; i < right.Len(); i++ {
			k := rowKey(right.Row(i), rightKey)
			byKey[k] = append(byKey[k], i)
		}
	}

	leftKey := make([]int, 0, len(on))
	for _, name := range on {
		if j, ok := left.ColumnIndex(name); ok {
			leftKey = append(leftKey, j)
		}
	}

	res := tables.New(header)
	for i := 0; i < left.Len(); i++ {
		lrow := left.Row(i)
		var matches []int
		if len(leftKey) == len(on) {
			matches = byKey[rowKey(lrow, leftKey)]
		}
		if len(matches) == 0 {
			res.Append(lrow)
			continue
		}
		for _, m := range matches {
			rrow := right.Row(m)
			row := make([]string, 0, len(header))
			row = append(row, lrow...)
			for _, j := range carried {
				row = append(row, rrow[j])
			}
			res.Append(row)
		}
	}
	return res
}

func rowKey(row []string, cols []int) string {
	parts := make([]string, len(cols))
	for i, j := range cols {
		parts[i] = strings.TrimSpace(row[j])
	}
	return strings.Join(parts, keySep)
}
