package phase

import "time"

// Metrics holds activity measurements supplied by an external health
// data collaborator. The engine never computes these itself.
type Metrics struct {
	Steps          int      `json:"steps"`
	Distance       float64  `json:"distance"`
	AvgHeartRate   *float64 `json:"avg_heart_rate,omitempty"`
	ActiveCalories float64  `json:"active_calories"`
}

// MetricsSource supplies the metrics for a summary at natural completion,
// when no caller is present to pass them in.
type MetricsSource interface {
	SessionMetrics() Metrics
}

// Summary is the immutable completion record handed to the persistence
// collaborator when a session ends.
type Summary struct {
	StartTime      time.Time     `json:"start_time"`
	EndTime        time.Time     `json:"end_time"`
	TotalDuration  time.Duration `json:"total_duration"`
	BriskIntervals int           `json:"brisk_intervals"`
	EasyIntervals  int           `json:"easy_intervals"`
	Metrics        Metrics       `json:"metrics"`
}

// buildSummary assembles a completion record from final counters and
// externally supplied metrics. It is a pure function of its inputs.
func buildSummary(s *Scheduler, end time.Time, m Metrics) Summary {
	return Summary{
		StartTime:      s.startTime,
		EndTime:        end,
		TotalDuration:  s.elapsed,
		BriskIntervals: s.completedBrisk,
		EasyIntervals:  s.completedEasy,
		Metrics:        m,
	}
}
