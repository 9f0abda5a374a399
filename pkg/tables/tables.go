// Package tables provides the in-memory table model the pipeline operates
// on. A Table is an ordered header plus string rows; cells are addressed
// by column name. The raw BAAC files have an open-ended column set that
// varies between years, so column access is name-driven instead of
// struct-field-driven.
package tables

import (
	"strconv"
	"strings"
)

// Table is a header-described row-oriented table. Rows are stored exactly
// as wide as the header; shorter appended rows are padded with empty
// cells, longer ones are truncated.
type Table struct {
	header []string
	index  map[string]int
	rows   [][]string
}

// New creates an empty table with the given header. Every header cell
// is trimmed of surrounding whitespace and of a leading UTF-8 BOM.
func New(header []string) *Table {
	h := make([]string, len(header))
	idx := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimPrefix(name, "\uFEFF")
		name = strings.TrimSpace(name)
		h[i] = name
		if _, ok := idx[name]; !ok {
			idx[name] = i
		}
	}
	return &Table{header: h, index: idx}
}

// FromRecords builds a table from raw CSV records, the first record being
// the header.
func FromRecords(recs [][]string) *Table {
	if len(recs) == 0 {
		return New(nil)
	}
	t := New(recs[0])
	for _, row := range recs[1:] {
		t.Append(row)
	}
	return t
}

// Header returns the column names in order.
func (t *Table) Header() []string {
	res := make([]string, len(t.header))
	copy(res, t.header)
	return res
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Row returns the i-th data row. The slice is shared, not copied.
func (t *Table) Row(i int) []string {
	return t.rows[i]
}

// HasColumn reports whether the table has a column with this name.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// ColumnIndex returns the position of a column in the header.
func (t *Table) ColumnIndex(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// Cell returns the value at row i, column name. The second return value
// is false when the column does not exist.
func (t *Table) Cell(i int, name string) (string, bool) {
	j, ok := t.index[name]
	if !ok {
		return "", false
	}
	return t.rows[i][j], true
}

// IntCell parses the cell at row i, column name as an integer, trimming
// surrounding whitespace. It is false for a missing column, an empty cell
// or a non-numeric value.
func (t *Table) IntCell(i int, name string) (int, bool) {
	s, ok := t.Cell(i, name)
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return v, true
}

// Append adds a data row, padding or truncating it to the header width.
func (t *Table) Append(row []string) {
	r := make([]string, len(t.header))
	copy(r, row)
	t.rows = append(t.rows, r)
}

// AddColumn appends a column with the given values. Values beyond the
// current row count are ignored; missing values become empty cells.
func (t *Table) AddColumn(name string, values []string) {
	name = strings.TrimSpace(name)
	if _, ok := t.index[name]; !ok {
		t.index[name] = len(t.header)
	}
	t.header = append(t.header, name)
	for i := range t.rows {
		var v string
		if i < len(values) {
			v = values[i]
		}
		t.rows[i] = append(t.rows[i], v)
	}
}

// Column returns a copy of the values of a column, nil when the column
// does not exist.
func (t *Table) Column(name string) []string {
	j, ok := t.index[name]
	if !ok {
		return nil
	}
	res := make([]string, len(t.rows))
	for i, row := range t.rows {
		res[i] = row[j]
	}
	return res
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	res := New(t.header)
	res.rows = make([][]string, len(t.rows))
	for i, row := range t.rows {
		r := make([]string, len(row))
		copy(r, row)
		res.rows[i] = r
	}
	return res
}

// Select returns a new table holding the key column plus the listed
// columns, in that order. Columns absent from the table are skipped.
func (t *Table) Select(names ...string) *Table {
	var keep []int
	var header []string
	for _, name := range names {
		if j, ok := t.index[name]; ok {
			keep = append(keep, j)
			header = append(header, name)
		}
	}
	res := New(header)
	for _, row := range t.rows {
		r := make([]string, len(keep))
		for k, j := range keep {
			r[k] = row[j]
		}
		res.rows = append(res.rows, r)
	}
	return res
}

// FirstPerKey returns a new table keeping only the first row for each
// distinct value of the key column, preserving row order. A missing key
// column yields an empty copy of the table.
func (t *Table) FirstPerKey(key string) *Table {
	res := New(t.header)
	j, ok := t.index[key]
	if !ok {
		return res
	}
	seen := make(map[string]bool, len(t.rows))
	for _, row := range t.rows {
		k := row[j]
		if seen[k] {
			continue
		}
		seen[k] = true
		r := make([]string, len(row))
		copy(r, row)
		res.rows = append(res.rows, r)
	}
	return res
}

// NormalizeDecimal rewrites locale-formatted decimal cells of a column
// (comma separator) to dot-decimal form, leaving cells that do not parse
// as numbers untouched. Used for latitude/longitude columns that arrive
// as "48,8566".
func (t *Table) NormalizeDecimal(name string) {
	j, ok := t.index[name]
	if !ok {
		return
	}
	for _, row := range t.rows {
		s := strings.TrimSpace(row[j])
		if !strings.Contains(s, ",") {
			continue
		}
		norm := strings.Replace(s, ",", ".", 1)
		if _, err := strconv.ParseFloat(norm, 64); err == nil {
			row[j] = norm
		}
	}
}
