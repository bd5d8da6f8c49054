// Package recurrence renders daily, weekly and monthly recurrence
// configurations as English sentences.
//
// Describe never fails. Malformed times and days degrade into the sentence
// as literal fragments ("NaN", the raw day text) instead of raising errors.
package recurrence

import (
	"strconv"
	"strings"
)

// Describe returns the sentence for cfg, or "" for an unknown pattern.
func Describe(cfg Config) string {
	at := To24Hour(cfg.Time, cfg.Meridiem)

	switch cfg.Pattern {
	case Daily:
		return "Runs every day at " + at + "."
	case Weekly:
		days := cfg.Days.Selected()
		if len(days) == 0 {
			return "Runs every week at " + at + "."
		}
		for i, d := range days {
			days[i] = capitalize(d)
		}
		return "Runs every week on " + strings.Join(days, ", ") + " at " + at + "."
	case Monthly:
		return "Runs every month on the " + Ordinal(string(cfg.DayOfMonth)) + " day at " + at + "."
	}
	return ""
}

// To24Hour converts an "HH:MM" clock value paired with a meridiem into
// "H:MM". The hour loses its zero padding and the minute is kept verbatim.
// 12 pm stays 12 and 12 am becomes 0.
//
// An empty value yields "". An hour that is not a number renders as "NaN"
// and a missing minute as "undefined".
func To24Hour(value string, m Meridiem) string {
	if value == "" {
		return ""
	}

	parts := strings.Split(value, ":")
	minute := "undefined"
	if len(parts) > 1 {
		minute = parts[1]
	}

	hour, ok := leadingInt(parts[0])
	if !ok {
		return "NaN:" + minute
	}
	switch {
	case m == PM && hour < 12:
		hour += 12
	case m == AM && hour == 12:
		hour = 0
	}
	return strconv.Itoa(hour) + ":" + minute
}

// Ordinal appends the English ordinal suffix to a day number given as text.
// Tokens that do not start with a positive integer are returned unchanged.
func Ordinal(token string) string {
	n, ok := leadingInt(token)
	if !ok || n <= 0 {
		return token
	}
	return OrdinalOf(n)
}

// OrdinalOf formats n with its ordinal suffix: 1st, 2nd, 3rd, 11th, 21st.
func OrdinalOf(n int) string {
	s := strconv.Itoa(n)
	if n <= 0 {
		return s
	}
	if r := n % 100; r >= 11 && r <= 13 {
		return s + "th"
	}
	switch n % 10 {
	case 1:
		return s + "st"
	case 2:
		return s + "nd"
	case 3:
		return s + "rd"
	}
	return s + "th"
}

// leadingInt reads an optionally signed decimal integer from the start of s,
// after any leading whitespace. Trailing text is ignored.
func leadingInt(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
