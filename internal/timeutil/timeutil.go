// Package timeutil provides utility functions for working with
// time-related operations.
package timeutil

import (
	"fmt"
	"math"
	"time"
)

const secondsInAMinute = 60

// Round rounds a time value in seconds to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// SecsToMinsAndSecs expresses a seconds value in minutes and seconds.
func SecsToMinsAndSecs(seconds float64) (mins, secs int) {
	total := Round(seconds)

	mins = total / secondsInAMinute
	secs = total % secondsInAMinute

	return
}

// FormatDuration renders a duration as "MM:SS", or "H:MM:SS" once it
// reaches an hour.
func FormatDuration(d time.Duration) string {
	total := Round(d.Seconds())

	if total >= 3600 {
		hrs := total / 3600
		mins := (total % 3600) / 60
		secs := total % 60

		return fmt.Sprintf("%d:%02d:%02d", hrs, mins, secs)
	}

	mins, secs := SecsToMinsAndSecs(d.Seconds())

	return fmt.Sprintf("%02d:%02d", mins, secs)
}

// ToKey converts a time value to a database key for Bolt.
func ToKey(t time.Time) []byte {
	return []byte(t.Format(time.RFC3339Nano))
}
