package phase

import "time"

// EndTime converts a remaining duration into the absolute instant at
// which the current phase ends.
func EndTime(now time.Time, remaining time.Duration) time.Time {
	return now.Add(remaining)
}

// Remaining reports the time left until end. It never returns a negative
// duration.
func Remaining(end, now time.Time) time.Duration {
	r := end.Sub(now)
	if r < 0 {
		return 0
	}

	return r
}
