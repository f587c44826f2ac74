// Package format renders counters and timestamps the way the feed UI shows
// them: compact counts (1.2M, 3.4K) and coarse relative ages (3d ago).
package format

import (
	"fmt"
	"strconv"
	"time"
)

// Number compacts a count to one decimal with an M or K suffix.
func Number(n int) string {
	if n >= 1000000 {
		return fmt.Sprintf("%.1fM", float64(n)/1000000)
	}
	if n >= 1000 {
		return fmt.Sprintf("%.1fK", float64(n)/1000)
	}
	return strconv.Itoa(n)
}

// TimeAgo renders the age of t relative to now.
func TimeAgo(t time.Time) string {
	return TimeAgoAt(t, time.Now())
}

// TimeAgoAt renders the age of t relative to the provided reference instant.
func TimeAgoAt(t, now time.Time) string {
	seconds := int(now.Sub(t).Seconds())

	steps := []struct {
		unit    string
		seconds int
	}{
		{"y", 31536000},
		{"mo", 2592000},
		{"d", 86400},
		{"h", 3600},
		{"m", 60},
	}

	for _, step := range steps {
		if seconds > step.seconds {
			return fmt.Sprintf("%d%s ago", seconds/step.seconds, step.unit)
		}
	}
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%ds ago", seconds)
}
