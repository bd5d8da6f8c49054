package recurrence

import "testing"

func TestOrdinal(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"1", "1st"},
		{"2", "2nd"},
		{"3", "3rd"},
		{"4", "4th"},
		{"11", "11th"},
		{"12", "12th"},
		{"13", "13th"},
		{"21", "21st"},
		{"22", "22nd"},
		{"23", "23rd"},
		{"31", "31st"},
		{"100", "100th"},
		{"101", "101st"},
		{"111", "111th"},
		{"112", "112th"},
		{"2nd", "2nd"},
		{" 5", "5th"},
		{"0", "0"},
		{"-1", "-1"},
		{"", ""},
		{"abc", "abc"},
	}
	for _, tt := range tests {
		if got := Ordinal(tt.in); got != tt.want {
			t.Errorf("Ordinal(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOrdinalOf(t *testing.T) {
	want := map[int]string{1: "1st", 2: "2nd", 3: "3rd", 11: "11th", 12: "12th", 13: "13th", 21: "21st", 100: "100th", 0: "0"}
	for n, w := range want {
		if got := OrdinalOf(n); got != w {
			t.Errorf("OrdinalOf(%d): got %q, want %q", n, got, w)
		}
	}
}

func TestTo24Hour(t *testing.T) {
	tests := []struct {
		value string
		m     Meridiem
		want  string
	}{
		{"09:30", AM, "9:30"},
		{"09:30", PM, "21:30"},
		{"12:00", AM, "0:00"},
		{"12:00", PM, "12:00"},
		{"12:05", PM, "12:05"},
		{"00:15", AM, "0:15"},
		{"00:15", PM, "12:15"},
		{"13:45", PM, "13:45"},
		{"13:45", AM, "13:45"},
		{"7:5", PM, "19:5"},
		{"09:30", "", "9:30"},
		{"09:30", "PM", "9:30"},
		{"", PM, ""},
		{"ab:30", PM, "NaN:30"},
		{"0930", AM, "930:undefined"},
		{"09:30:15", PM, "21:30"},
	}
	for _, tt := range tests {
		if got := To24Hour(tt.value, tt.m); got != tt.want {
			t.Errorf("To24Hour(%q, %q): got %q, want %q", tt.value, tt.m, got, tt.want)
		}
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{
			name: "daily",
			cfg:  Config{Pattern: Daily, Time: "09:00", Meridiem: AM},
			want: "Runs every day at 9:00.",
		},
		{
			name: "default",
			cfg:  DefaultConfig(),
			want: "Runs every day at 12:00.",
		},
		{
			name: "weekly without days",
			cfg:  Config{Pattern: Weekly, Time: "09:00", Meridiem: AM},
			want: "Runs every week at 9:00.",
		},
		{
			name: "weekly with days",
			cfg:  Config{Pattern: Weekly, Time: "09:00", Meridiem: AM, Days: Weekdays{Monday: true, Friday: true}},
			want: "Runs every week on Monday, Friday at 9:00.",
		},
		{
			name: "weekly keeps calendar order",
			cfg:  Config{Pattern: Weekly, Time: "06:30", Meridiem: PM, Days: Weekdays{Sunday: true, Wednesday: true, Monday: true}},
			want: "Runs every week on Monday, Wednesday, Sunday at 18:30.",
		},
		{
			name: "monthly",
			cfg:  Config{Pattern: Monthly, DayOfMonth: "2", Time: "03:00", Meridiem: PM},
			want: "Runs every month on the 2nd day at 15:00.",
		},
		{
			name: "monthly teens",
			cfg:  Config{Pattern: Monthly, DayOfMonth: "13", Time: "12:00", Meridiem: AM},
			want: "Runs every month on the 13th day at 0:00.",
		},
		{
			name: "monthly unparseable day",
			cfg:  Config{Pattern: Monthly, DayOfMonth: "last", Time: "08:00", Meridiem: AM},
			want: "Runs every month on the last day at 8:00.",
		},
		{
			name: "monthly out of range day",
			cfg:  Config{Pattern: Monthly, DayOfMonth: "42", Time: "08:00", Meridiem: AM},
			want: "Runs every month on the 42nd day at 8:00.",
		},
		{
			name: "empty time",
			cfg:  Config{Pattern: Daily, Meridiem: PM},
			want: "Runs every day at .",
		},
		{
			name: "unparseable time",
			cfg:  Config{Pattern: Daily, Time: "xx:15", Meridiem: PM},
			want: "Runs every day at NaN:15.",
		},
		{
			name: "unknown pattern",
			cfg:  Config{Pattern: "yearly", Time: "09:00", Meridiem: AM},
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Describe(tt.cfg); got != tt.want {
				t.Errorf("Describe: got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDescribe_RetainsSelectionsAcrossPatterns(t *testing.T) {
	cfg := Config{Pattern: Weekly, Time: "10:00", Meridiem: AM, Days: Weekdays{Tuesday: true}, DayOfMonth: "21"}

	cfg.Pattern = Monthly
	if got, want := Describe(cfg), "Runs every month on the 21st day at 10:00."; got != want {
		t.Errorf("monthly: got %q, want %q", got, want)
	}
	cfg.Pattern = Weekly
	if got, want := Describe(cfg), "Runs every week on Tuesday at 10:00."; got != want {
		t.Errorf("weekly: got %q, want %q", got, want)
	}
}
