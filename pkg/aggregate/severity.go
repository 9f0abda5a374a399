package aggregate

// Severity score weights. Fatalities dominate, severe injuries next,
// light injuries least; this weighted sum is the primary ranking metric
// for risk comparisons downstream and must not change.
const (
	weightKilled       = 100
	weightHospitalized = 30
	weightLightInjury  = 10
)

// Severity category labels.
const (
	CategoryFatal    = "Mortel"
	CategorySevere   = "Grave"
	CategoryLight    = "Léger"
	CategoryMaterial = "Matériel uniquement"
)

// severityRules are evaluated in order, first match wins. The order is
// intentional: one fatality and nine light injuries is a fatal accident,
// not an averaged one.
var severityRules = []struct {
	match func(*Summary) bool
	label string
}{
	{func(s *Summary) bool { return s.NbTues > 0 }, CategoryFatal},
	{func(s *Summary) bool { return s.NbBlessesHospitalises > 0 }, CategorySevere},
	{func(s *Summary) bool { return s.NbBlessesLegers > 0 }, CategoryLight},
}

// Score returns the weighted severity score of the summary.
func (s *Summary) Score() int {
	return s.NbTues*weightKilled +
		s.NbBlessesHospitalises*weightHospitalized +
		s.NbBlessesLegers*weightLightInjury
}

// Category assigns the severity class by strict priority over the
// casualty counts.
func (s *Summary) Category() string {
	for _, r := range severityRules {
		if r.match(s) {
			return r.label
		}
	}
	return CategoryMaterial
}

// IsFatal reports whether the accident has at least one fatality.
func (s *Summary) IsFatal() bool {
	return s.NbTues > 0
}
