// Package derive computes calendar and demographic fields from the raw
// date, time and birth-year components of accident records.
//
// All functions are total: malformed input resolves to the NotSpecified
// sentinel (or an undefined flag), never to an error. One bad row must not
// abort a pipeline pass.
package derive

import (
	"strconv"
	"strings"
	"time"

	"github.com/baactools/baacprep/pkg/codes"
)

var weekdayNames = [7]string{
	"Lundi", "Mardi", "Mercredi", "Jeudi", "Vendredi", "Samedi", "Dimanche",
}

var monthNames = [12]string{
	"Janvier", "Février", "Mars", "Avril", "Mai", "Juin",
	"Juillet", "Août", "Septembre", "Octobre", "Novembre", "Décembre",
}

// Weekday returns the French day-of-week name for a Gregorian date.
// Invalid combinations (month 13, February 30, ...) resolve to the
// NotSpecified sentinel.
func Weekday(year, month, day int) string {
	t, ok := date(year, month, day)
	if !ok {
		return codes.NotSpecified
	}
	// time.Weekday starts the week on Sunday, ours on Monday.
	return weekdayNames[(int(t.Weekday())+6)%7]
}

// IsWeekend reports whether a weekday name is Saturday or Sunday.
func IsWeekend(weekday string) bool {
	return weekday == "Samedi" || weekday == "Dimanche"
}

// MonthName returns the French month name for months 1-12, the
// NotSpecified sentinel otherwise.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return codes.NotSpecified
	}
	return monthNames[month-1]
}

// Quarter returns the calendar quarter (1-4) for months 1-12, 0 otherwise.
func Quarter(month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	return (month-1)/3 + 1
}

// Date returns the ISO representation of a raw date, empty when the
// combination is not a valid Gregorian date.
func Date(year, month, day int) string {
	t, ok := date(year, month, day)
	if !ok {
		return ""
	}
	return t.Format("2006-01-02")
}

// DayPeriod buckets the hour of an "HH:MM"-like time string into four
// periods of the day. The hour is whatever precedes the first colon; an
// unparseable value resolves to the NotSpecified sentinel.
func DayPeriod(hrmn string) string {
	s := strings.TrimSpace(hrmn)
	if s == "" {
		return codes.NotSpecified
	}
	if i := strings.IndexByte(s, ':'); i >= 0 {
		s = s[:i]
	}
	h, err := strconv.Atoi(s)
	if err != nil {
		return codes.NotSpecified
	}
	switch {
	case h >= 6 && h < 12:
		return "Matin"
	case h >= 12 && h < 18:
		return "Après-midi"
	case h >= 18 && h < 22:
		return "Soirée"
	default:
		return "Nuit"
	}
}

// date builds a time.Time and rejects combinations that time.Date would
// silently normalize (e.g. February 30 becoming March 1).
func date(year, month, day int) (time.Time, bool) {
	if year < 1 || month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}
