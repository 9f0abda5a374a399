// Package aggregate computes the per-accident casualty rollups: counts by
// severity, pedestrian count, demographic summaries and the derived
// severity score and category.
//
// Each accident group is reduced in a single pass into one fixed-shape
// Summary, so all its counts come from the same snapshot of the grouped
// rows. Groups are independent: malformed cells degrade that group's
// fields without touching any other accident.
package aggregate

import (
	"strconv"

	"github.com/baactools/baacprep/pkg/derive"
	"github.com/baactools/baacprep/pkg/tables"
)

// Severity codes of the grav column.
const (
	gravUnharmed     = 1
	gravKilled       = 2
	gravHospitalized = 3
	gravLightInjury  = 4
)

// catuPedestrian is the user-category code for pedestrians.
const catuPedestrian = 3

// sexeMale is the sex code for male persons.
const sexeMale = 1

// Summary holds the rollup of all person rows of one accident.
type Summary struct {
	NbTues                int
	NbBlessesHospitalises int
	NbBlessesLegers       int
	NbIndemnes            int
	NbPietons             int
	NbUsagers             int

	// PctHommes is the proportion of male persons, 0 when the group is
	// empty.
	PctHommes float64

	// AgeMoyen is the mean age over persons with a known birth year.
	// AgeMoyenDefined is false when no birth year in the group is known;
	// the mean is then published as null, not as zero.
	AgeMoyen        float64
	AgeMoyenDefined bool

	males    int
	ageSum   float64
	ageCount int
}

// add folds one person row into the summary.
func (s *Summary) add(grav, catu, sexe int, age int, ageValid bool) {
	s.NbUsagers++

	switch grav {
	case gravKilled:
		s.NbTues++
	case gravHospitalized:
		s.NbBlessesHospitalises++
	case gravLightInjury:
		s.NbBlessesLegers++
	case gravUnharmed:
		s.NbIndemnes++
	}

	if catu == catuPedestrian {
		s.NbPietons++
	}
	if sexe == sexeMale {
		s.males++
	}
	if ageValid {
		s.ageSum += float64(age)
		s.ageCount++
	}
}

func (s *Summary) finalize() {
	if s.NbUsagers > 0 {
		s.PctHommes = float64(s.males) / float64(s.NbUsagers)
	}
	if s.ageCount > 0 {
		s.AgeMoyen = s.ageSum / float64(s.ageCount)
		s.AgeMoyenDefined = true
	}
}

// Stats groups the person table by accident and reduces each group into a
// Summary. Cells that do not parse as integers simply do not contribute
// to their count. The returned slice preserves first-seen accident order
// for deterministic output.
func Stats(usagers *tables.Table, referenceYear int) (map[string]*Summary, []string) {
	res := make(map[string]*Summary)
	var keys []string

	for i := 0; i < usagers.Len(); i++ {
		acc, ok := usagers.Cell(i, "Num_Acc")
		if !ok {
			continue
		}
		s := res[acc]
		if s == nil {
			s = &Summary{}
			res[acc] = s
			keys = append(keys, acc)
		}

		grav, _ := usagers.IntCell(i, "grav")
		catu, _ := usagers.IntCell(i, "catu")
		sexe, _ := usagers.IntCell(i, "sexe")

		var age int
		var ageValid bool
		if birth, ok := usagers.IntCell(i, "an_nais"); ok {
			age, ageValid = derive.Age(birth, referenceYear)
		}

		s.add(grav, catu, sexe, age, ageValid)
	}

	for _, s := range res {
		s.finalize()
	}
	return res, keys
}

// VehicleCounts returns the number of vehicle rows per accident.
func VehicleCounts(vehicules *tables.Table) map[string]int {
	res := make(map[string]int)
	for i := 0; i < vehicules.Len(); i++ {
		if acc, ok := vehicules.Cell(i, "Num_Acc"); ok {
			res[acc]++
		}
	}
	return res
}

// formatFloat renders an aggregate float the way the published CSV
// expects it: shortest representation, no trailing zeros.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatInt(v int) string {
	return strconv.Itoa(v)
}
