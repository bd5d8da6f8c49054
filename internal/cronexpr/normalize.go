// Package cronexpr normalizes six-field cron expressions (seconds through
// day-of-week) into named fields and reports which fields are constrained.
//
// Normalization only counts fields and resolves month and weekday names.
// Ranges, steps and lists are passed through untouched.
package cronexpr

import "strings"

// Wildcard marks an unconstrained field.
const Wildcard = "*"

// FieldCount is the number of fields in an expression.
const FieldCount = 6

// Names lists the field names in expression order.
var Names = [FieldCount]string{"seconds", "minutes", "hours", "daysOfMonth", "month", "dayOfWeek"}

var monthAliases = map[string]string{
	"jan": "1", "feb": "2", "mar": "3", "apr": "4", "may": "5", "jun": "6",
	"jul": "7", "aug": "8", "sep": "9", "oct": "10", "nov": "11", "dec": "12",
}

var weekdayAliases = map[string]string{
	"sun": "0", "mon": "1", "tue": "2", "wed": "3", "thu": "4", "fri": "5", "sat": "6",
}

// Fields holds the normalized token of every field.
type Fields struct {
	Seconds     string `json:"seconds"`
	Minutes     string `json:"minutes"`
	Hours       string `json:"hours"`
	DaysOfMonth string `json:"daysOfMonth"`
	Month       string `json:"month"`
	DayOfWeek   string `json:"dayOfWeek"`
}

// Active reports, per field, whether the field is constrained.
type Active struct {
	Seconds     bool `json:"seconds"`
	Minutes     bool `json:"minutes"`
	Hours       bool `json:"hours"`
	DaysOfMonth bool `json:"daysOfMonth"`
	Month       bool `json:"month"`
	DayOfWeek   bool `json:"dayOfWeek"`
}

// Result is the outcome of one normalization pass.
type Result struct {
	Fields Fields `json:"fields"`
	Active Active `json:"active"`
}

// DefaultFields returns the all-wildcard field set.
func DefaultFields() Fields {
	return Fields{
		Seconds:     Wildcard,
		Minutes:     Wildcard,
		Hours:       Wildcard,
		DaysOfMonth: Wildcard,
		Month:       Wildcard,
		DayOfWeek:   Wildcard,
	}
}

// Slice returns the fields in expression order.
func (f Fields) Slice() [FieldCount]string {
	return [FieldCount]string{f.Seconds, f.Minutes, f.Hours, f.DaysOfMonth, f.Month, f.DayOfWeek}
}

// String joins the fields back into an expression.
func (f Fields) String() string {
	s := f.Slice()
	return strings.Join(s[:], " ")
}

// Slice returns the flags in expression order.
func (a Active) Slice() [FieldCount]bool {
	return [FieldCount]bool{a.Seconds, a.Minutes, a.Hours, a.DaysOfMonth, a.Month, a.DayOfWeek}
}

// Any reports whether at least one field is constrained.
func (a Active) Any() bool {
	for _, v := range a.Slice() {
		if v {
			return true
		}
	}
	return false
}

// Normalize splits expression into its six fields and resolves name aliases.
// An expression that does not have exactly six fields yields the all-wildcard
// set with every flag false; it never fails.
func Normalize(expression string) Result {
	parts := Tokens(expression)
	if len(parts) != FieldCount {
		return Result{Fields: DefaultFields()}
	}

	var n [FieldCount]string
	for i, p := range parts {
		n[i] = ResolveAlias(p)
	}

	return Result{
		Fields: Fields{
			Seconds:     n[0],
			Minutes:     n[1],
			Hours:       n[2],
			DaysOfMonth: n[3],
			Month:       n[4],
			DayOfWeek:   n[5],
		},
		Active: Active{
			Seconds:     n[0] != Wildcard,
			Minutes:     n[1] != Wildcard,
			Hours:       n[2] != Wildcard,
			DaysOfMonth: n[3] != Wildcard,
			Month:       n[4] != Wildcard,
			DayOfWeek:   n[5] != Wildcard,
		},
	}
}

// Tokens splits expression on runs of whitespace. An expression is
// well-formed when it yields exactly FieldCount tokens.
func Tokens(expression string) []string {
	return strings.Fields(expression)
}

// ResolveAlias maps a month name (jan..dec) or weekday name (sun..sat) to
// its number, ignoring case. Both tables apply to every field position.
// Any other token, including "*", is returned unchanged.
func ResolveAlias(token string) string {
	if token == Wildcard {
		return token
	}
	lower := strings.ToLower(token)
	if v, ok := monthAliases[lower]; ok {
		return v
	}
	if v, ok := weekdayAliases[lower]; ok {
		return v
	}
	return token
}
