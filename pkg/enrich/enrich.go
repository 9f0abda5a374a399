// Package enrich applies the code dictionaries and the temporal and
// demographic derivers column-wise to a table, adding derived columns
// without ever mutating the original ones.
package enrich

import (
	"strconv"
	"strings"

	"github.com/baactools/baacprep/pkg/codes"
	"github.com/baactools/baacprep/pkg/derive"
	"github.com/baactools/baacprep/pkg/tables"
)

// Codes adds a <col>_code and a <col>_desc column for every mapped column
// present in the table. The _code column is a verbatim copy of the raw
// values; the _desc column carries the dictionary label, or the
// NotSpecified sentinel for empty, non-numeric or unmapped codes.
func Codes(t *tables.Table) {
	for _, col := range codes.Columns() {
		CodeColumn(t, col)
	}
}

// CodeColumn enriches a single mapped column, reporting whether the
// column was present.
func CodeColumn(t *tables.Table, col string) bool {
	if !codes.Has(col) || !t.HasColumn(col) {
		return false
	}
	raw := t.Column(col)
	desc := make([]string, len(raw))
	for i, v := range raw {
		code, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			desc[i] = codes.NotSpecified
			continue
		}
		desc[i] = codes.Label(col, code)
	}
	t.AddColumn(col+"_code", raw)
	t.AddColumn(col+"_desc", desc)
	return true
}

// Temporal adds the calendar-derived columns (ISO date, weekday name,
// day period, weekend flag, month name, quarter) from the raw an, mois,
// jour and hrmn columns. Rows with malformed components get sentinel or
// empty values; the pipeline never fails over one bad date.
func Temporal(t *tables.Table) {
	n := t.Len()
	date := make([]string, n)
	weekday := make([]string, n)
	period := make([]string, n)
	weekend := make([]string, n)
	monthName := make([]string, n)
	quarter := make([]string, n)

	for i := 0; i < n; i++ {
		an, okY := t.IntCell(i, "an")
		mois, okM := t.IntCell(i, "mois")
		jour, okD := t.IntCell(i, "jour")

		if okY && okM && okD {
			date[i] = derive.Date(an, mois, jour)
			weekday[i] = derive.Weekday(an, mois, jour)
		} else {
			weekday[i] = codes.NotSpecified
		}
		if derive.IsWeekend(weekday[i]) {
			weekend[i] = "1"
		} else {
			weekend[i] = "0"
		}

		if okM {
			monthName[i] = derive.MonthName(mois)
			if q := derive.Quarter(mois); q > 0 {
				quarter[i] = strconv.Itoa(q)
			}
		} else {
			monthName[i] = codes.NotSpecified
		}

		hrmn, _ := t.Cell(i, "hrmn")
		period[i] = derive.DayPeriod(hrmn)
	}

	t.AddColumn("date", date)
	t.AddColumn("jour_semaine", weekday)
	t.AddColumn("periode_journee", period)
	t.AddColumn("est_weekend", weekend)
	t.AddColumn("mois_nom", monthName)
	t.AddColumn("trimestre", quarter)
}

// Demographic adds the age and tranche_age columns derived from the
// an_nais column and the reference year. Missing or sentinel birth years
// leave both cells empty.
func Demographic(t *tables.Table, referenceYear int) {
	n := t.Len()
	age := make([]string, n)
	bracket := make([]string, n)

	for i := 0; i < n; i++ {
		birth, ok := t.IntCell(i, "an_nais")
		if !ok {
			continue
		}
		a, valid := derive.Age(birth, referenceYear)
		if !valid {
			continue
		}
		age[i] = strconv.Itoa(a)
		bracket[i] = derive.AgeBracket(a)
	}

	t.AddColumn("age", age)
	t.AddColumn("tranche_age", bracket)
}

