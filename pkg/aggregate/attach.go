package aggregate

import (
	"github.com/baactools/baacprep/pkg/tables"
)

// Attach merges the per-accident summaries and vehicle counts onto the
// accident-grain table as new columns, left-join style: accidents without
// person rows keep null (empty) aggregates instead of being dropped. The
// severity category and fatal flag are still derived for such rows, which
// classifies them as material-damage-only.
func Attach(accidents *tables.Table, stats map[string]*Summary, vehicles map[string]int) {
	n := accidents.Len()

	cols := map[string][]string{}
	names := []string{
		"nb_pietons", "pct_hommes", "age_moyen", "nb_usagers",
		"nb_tues", "nb_blesses_hospitalises", "nb_blesses_legers",
		"nb_indemnes", "nb_vehicules", "score_gravite",
		"categorie_gravite", "accident_mortel",
	}
	for _, name := range names {
		cols[name] = make([]string, n)
	}

	var empty Summary
	for i := 0; i < n; i++ {
		acc, _ := accidents.Cell(i, "Num_Acc")
		s, known := stats[acc]
		if !known {
			s = &empty
		}

		if known {
			cols["nb_pietons"][i] = formatInt(s.NbPietons)
			cols["pct_hommes"][i] = formatFloat(s.PctHommes)
			if s.AgeMoyenDefined {
				cols["age_moyen"][i] = formatFloat(s.AgeMoyen)
			}
			cols["nb_usagers"][i] = formatInt(s.NbUsagers)
			cols["nb_tues"][i] = formatInt(s.NbTues)
			cols["nb_blesses_hospitalises"][i] = formatInt(s.NbBlessesHospitalises)
			cols["nb_blesses_legers"][i] = formatInt(s.NbBlessesLegers)
			cols["nb_indemnes"][i] = formatInt(s.NbIndemnes)
			cols["score_gravite"][i] = formatInt(s.Score())
		}
		if count, ok := vehicles[acc]; ok {
			cols["nb_vehicules"][i] = formatInt(count)
		}
		cols["categorie_gravite"][i] = s.Category()
		if s.IsFatal() {
			cols["accident_mortel"][i] = "1"
		} else {
			cols["accident_mortel"][i] = "0"
		}
	}

	for _, name := range names {
		accidents.AddColumn(name, cols[name])
	}
}
