package recurrence

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Pattern selects how often a recurrence repeats.
type Pattern string

const (
	Daily   Pattern = "daily"
	Weekly  Pattern = "weekly"
	Monthly Pattern = "monthly"
)

// Meridiem is the am/pm half of a twelve-hour clock value.
type Meridiem string

const (
	AM Meridiem = "am"
	PM Meridiem = "pm"
)

var (
	ErrUnknownPattern  = errors.New("unknown recurrence pattern")
	ErrUnknownMeridiem = errors.New("unknown meridiem")
	ErrUnknownWeekday  = errors.New("unknown weekday")
)

// WeekdayNames lists weekdays in the order they appear in descriptions.
var WeekdayNames = [7]string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// Weekdays is the set of days a weekly recurrence runs on.
type Weekdays struct {
	Monday    bool `json:"monday"`
	Tuesday   bool `json:"tuesday"`
	Wednesday bool `json:"wednesday"`
	Thursday  bool `json:"thursday"`
	Friday    bool `json:"friday"`
	Saturday  bool `json:"saturday"`
	Sunday    bool `json:"sunday"`
}

// DayOfMonth is the day a monthly recurrence runs on. It is kept as text so
// out-of-range or malformed values survive until they are described.
// JSON numbers and strings are both accepted.
type DayOfMonth string

// UnmarshalJSON accepts 15 as well as "15".
func (d *DayOfMonth) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*d = DayOfMonth(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("day_of_month: %w", err)
	}
	*d = DayOfMonth(n.String())
	return nil
}

// Config is a structured recurrence. Days and DayOfMonth are kept whatever
// the pattern so switching patterns does not lose earlier selections.
type Config struct {
	Pattern    Pattern    `json:"pattern" validate:"required,oneof=daily weekly monthly"`
	Time       string     `json:"time" validate:"required"`
	Meridiem   Meridiem   `json:"meridiem" validate:"required,oneof=am pm"`
	Days       Weekdays   `json:"days"`
	DayOfMonth DayOfMonth `json:"day_of_month"`
}

// DefaultConfig returns the configuration a new recurrence starts from.
func DefaultConfig() Config {
	return Config{
		Pattern:    Daily,
		Time:       "12:00",
		Meridiem:   PM,
		DayOfMonth: "1",
	}
}

// Patterns returns every supported pattern.
func Patterns() []Pattern {
	return []Pattern{Daily, Weekly, Monthly}
}

// Meridiems returns both meridiem values.
func Meridiems() []Meridiem {
	return []Meridiem{AM, PM}
}

// DaysOfMonth returns the selectable days "1" through "31".
func DaysOfMonth() []string {
	out := make([]string, 0, 31)
	for i := 1; i <= 31; i++ {
		out = append(out, strconv.Itoa(i))
	}
	return out
}

// ParsePattern parses a pattern name, ignoring case and surrounding space.
func ParsePattern(s string) (Pattern, error) {
	p := Pattern(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case Daily, Weekly, Monthly:
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPattern, s)
}

// ParseMeridiem parses "am" or "pm", ignoring case and surrounding space.
func ParseMeridiem(s string) (Meridiem, error) {
	m := Meridiem(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case AM, PM:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMeridiem, s)
}

// ParseWeekday returns the index of a weekday in WeekdayNames. Full names
// and three-letter abbreviations are accepted in any case.
func ParseWeekday(s string) (int, error) {
	lower := strings.ToLower(strings.TrimSpace(s))
	if len(lower) >= 3 {
		for i, name := range WeekdayNames {
			if lower == name || lower == name[:3] {
				return i, nil
			}
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrUnknownWeekday, s)
}

// ParseWeekdays builds a set from a comma-separated list such as
// "monday,fri". Empty items are skipped.
func ParseWeekdays(list string) (Weekdays, error) {
	var w Weekdays
	for _, item := range strings.Split(list, ",") {
		if strings.TrimSpace(item) == "" {
			continue
		}
		if err := w.Set(item, true); err != nil {
			return Weekdays{}, err
		}
	}
	return w, nil
}

func (w *Weekdays) slot(i int) *bool {
	return [...]*bool{&w.Monday, &w.Tuesday, &w.Wednesday, &w.Thursday, &w.Friday, &w.Saturday, &w.Sunday}[i]
}

// Set turns a named day on or off.
func (w *Weekdays) Set(day string, on bool) error {
	i, err := ParseWeekday(day)
	if err != nil {
		return err
	}
	*w.slot(i) = on
	return nil
}

// Toggle flips a named day.
func (w *Weekdays) Toggle(day string) error {
	i, err := ParseWeekday(day)
	if err != nil {
		return err
	}
	p := w.slot(i)
	*p = !*p
	return nil
}

// Selected returns the lower-case names of the chosen days, monday first.
func (w Weekdays) Selected() []string {
	var out []string
	for i, name := range WeekdayNames {
		if *w.slot(i) {
			out = append(out, name)
		}
	}
	return out
}
