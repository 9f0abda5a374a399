package derive

// MissingBirthYear is the sentinel the source tables use for an unknown
// year of birth.
const MissingBirthYear = -1

// ageBrackets are half-open on the left, closed on the right: a bracket
// matches ages in (low, high]. This mirrors how the published dataset has
// always bucketed ages, so an age of exactly 18 still lands in "0-17".
var ageBrackets = []struct {
	low, high int
	label     string
}{
	{0, 18, "0-17"},
	{18, 25, "18-24"},
	{25, 35, "25-34"},
	{35, 45, "35-44"},
	{45, 55, "45-54"},
	{55, 65, "55-64"},
	{65, 100, "65+"},
}

// Age computes the age at the reference year from a year of birth.
// The second return value is false when the birth year carries the
// missing sentinel.
func Age(birthYear, referenceYear int) (int, bool) {
	if birthYear == MissingBirthYear {
		return 0, false
	}
	return referenceYear - birthYear, true
}

// AgeBracket assigns an age to one of the fixed brackets. Ages outside
// (0, 100] have no bracket and yield an empty string.
func AgeBracket(age int) string {
	for _, b := range ageBrackets {
		if age > b.low && age <= b.high {
			return b.label
		}
	}
	return ""
}
