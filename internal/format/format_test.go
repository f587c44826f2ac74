package format

import (
	"testing"
	"time"
)

func TestNumber(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1200, "1.2K"},
		{890000, "890.0K"},
		{1200000, "1.2M"},
		{3200000, "3.2M"},
	}

	for _, tc := range tests {
		if got := Number(tc.in); got != tc.want {
			t.Errorf("Number(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTimeAgoAt(t *testing.T) {
	now := time.Date(2023, time.September, 16, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{name: "seconds", t: now.Add(-45 * time.Second), want: "45s ago"},
		{name: "minutes", t: now.Add(-5 * time.Minute), want: "5m ago"},
		{name: "hours", t: now.Add(-3 * time.Hour), want: "3h ago"},
		{name: "days", t: now.Add(-50 * time.Hour), want: "2d ago"},
		{name: "months", t: now.Add(-40 * 24 * time.Hour), want: "1mo ago"},
		{name: "years", t: now.Add(-800 * 24 * time.Hour), want: "2y ago"},
		{name: "future clamps to zero", t: now.Add(30 * time.Second), want: "0s ago"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := TimeAgoAt(tc.t, now); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}
