package calendar

import (
	"testing"
	"time"
)

func TestParseCalendarDate(t *testing.T) {
	tests := []struct {
		name    string
		iso     string
		want    CalendarDate
		wantErr bool
	}{
		{name: "plain date", iso: "2024-01-03", want: CalendarDate{2024, time.January, 3}},
		{name: "leap day", iso: "2024-02-29", want: CalendarDate{2024, time.February, 29}},
		{name: "empty", iso: "", wantErr: true},
		{name: "garbage", iso: "not-a-date", wantErr: true},
		{name: "impossible day", iso: "2023-02-29", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCalendarDate(tt.iso)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCalendarDate(%q) error = %v, wantErr %v", tt.iso, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseCalendarDate(%q) = %+v, want %+v", tt.iso, got, tt.want)
			}
		})
	}
}

func TestParseCalendarDateIgnoresLocalZone(t *testing.T) {
	original := time.Local
	defer func() { time.Local = original }()

	for _, zone := range []string{"Pacific/Kiritimati", "Pacific/Pago_Pago", "America/Los_Angeles"} {
		loc, err := time.LoadLocation(zone)
		if err != nil {
			t.Skipf("zone data unavailable: %v", err)
		}
		time.Local = loc

		d, err := ParseCalendarDate("2024-03-10")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.String() != "2024-03-10" {
			t.Errorf("%s: got %s, want 2024-03-10", zone, d)
		}
		if got := d.Weekday(); got != time.Sunday {
			t.Errorf("%s: weekday = %s, want Sunday", zone, got)
		}
	}
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		name  string
		start string
		n     int
		want  string
	}{
		{name: "same month", start: "2024-01-01", n: 6, want: "2024-01-07"},
		{name: "month rollover", start: "2024-01-29", n: 6, want: "2024-02-04"},
		{name: "leap february", start: "2024-02-26", n: 4, want: "2024-03-01"},
		{name: "year rollover", start: "2023-12-28", n: 6, want: "2024-01-03"},
		{name: "negative", start: "2024-03-01", n: -1, want: "2024-02-29"},
		{name: "zero", start: "2024-05-05", n: 0, want: "2024-05-05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseCalendarDate(tt.start)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := d.AddDays(tt.n).String(); got != tt.want {
				t.Errorf("AddDays(%s, %d) = %s, want %s", tt.start, tt.n, got, tt.want)
			}
		})
	}
}

func TestIsWithinWeek(t *testing.T) {
	tests := []struct {
		name  string
		date  string
		start string
		want  bool
	}{
		{name: "start day", date: "2024-01-01", start: "2024-01-01", want: true},
		{name: "last day", date: "2024-01-07", start: "2024-01-01", want: true},
		{name: "mid week", date: "2024-01-03", start: "2024-01-01", want: true},
		{name: "day before", date: "2023-12-31", start: "2024-01-01", want: false},
		{name: "seven after", date: "2024-01-08", start: "2024-01-01", want: false},
		{name: "far after", date: "2024-02-01", start: "2024-01-01", want: false},
		{name: "across year", date: "2024-01-02", start: "2023-12-27", want: true},
		{name: "empty date", date: "", start: "2024-01-01", want: false},
		{name: "empty start", date: "2024-01-01", start: "", want: false},
		{name: "bad date", date: "soon", start: "2024-01-01", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsWithinWeek(tt.date, tt.start); got != tt.want {
				t.Errorf("IsWithinWeek(%q, %q) = %v, want %v", tt.date, tt.start, got, tt.want)
			}
		})
	}
}

func TestIsWithinWeekMatchesOffsetRange(t *testing.T) {
	start, _ := ParseCalendarDate("2024-02-26")
	for offset := -3; offset <= 10; offset++ {
		date := start.AddDays(offset).String()
		want := offset >= 0 && offset <= 6
		if got := IsWithinWeek(date, start.String()); got != want {
			t.Errorf("offset %d (%s): got %v, want %v", offset, date, got, want)
		}
	}
}

func TestMondayIndexedWeekday(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{"2024-01-01", 0}, // Monday
		{"2024-01-03", 2},
		{"2024-01-06", 5},
		{"2024-01-07", 6}, // Sunday
		{"2024-01-10", 2},
		{"", 0},
		{"nope", 0},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			if got := MondayIndexedWeekday(tt.date); got != tt.want {
				t.Errorf("MondayIndexedWeekday(%q) = %d, want %d", tt.date, got, tt.want)
			}
		})
	}
}

func TestMondayIndexedWeekdayAcrossYear(t *testing.T) {
	d, _ := ParseCalendarDate("2023-01-02") // Monday
	for i := 0; i < 366; i++ {
		day := d.AddDays(i)
		want := i % 7
		if got := MondayIndexedWeekday(day.String()); got != want {
			t.Fatalf("%s: got %d, want %d", day, got, want)
		}
	}
}

func TestMondayOf(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{name: "monday", at: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC), want: "2024-01-01"},
		{name: "wednesday", at: time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC), want: "2024-01-01"},
		{name: "sunday", at: time.Date(2024, 1, 7, 23, 0, 0, 0, time.UTC), want: "2024-01-01"},
		{name: "across month", at: time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC), want: "2024-02-26"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MondayOf(tt.at); got != tt.want {
				t.Errorf("MondayOf(%v) = %s, want %s", tt.at, got, tt.want)
			}
		})
	}
}
