package phase

import "time"

// Config describes a session: the duration of each phase, the number of
// brisk/easy intervals, and which of the optional phases are enabled.
// It is immutable once handed to Start.
type Config struct {
	BriskDuration    time.Duration `json:"brisk_duration"`
	EasyDuration     time.Duration `json:"easy_duration"`
	WarmupDuration   time.Duration `json:"warmup_duration"`
	CooldownDuration time.Duration `json:"cooldown_duration"`
	TotalIntervals   int           `json:"total_intervals"`
	EnableWarmup     bool          `json:"enable_warmup"`
	EnableCooldown   bool          `json:"enable_cooldown"`
}

// Validate reports the first violated configuration invariant. Durations
// for disabled phases are not checked.
func (c Config) Validate() error {
	if c.TotalIntervals < 1 {
		return errIntervalCount.Fmt(c.TotalIntervals)
	}

	if c.BriskDuration <= 0 {
		return errDurationNotPositive.Fmt("brisk")
	}

	if c.EasyDuration <= 0 {
		return errDurationNotPositive.Fmt("easy")
	}

	if c.EnableWarmup && c.WarmupDuration <= 0 {
		return errDurationNotPositive.Fmt("warm-up")
	}

	if c.EnableCooldown && c.CooldownDuration <= 0 {
		return errDurationNotPositive.Fmt("cool-down")
	}

	return nil
}

// TimedDuration returns the total wall-clock time a session needs when it
// runs to completion without pauses.
func (c Config) TimedDuration() time.Duration {
	total := time.Duration(c.TotalIntervals) * (c.BriskDuration + c.EasyDuration)

	if c.EnableWarmup {
		total += c.WarmupDuration
	}

	if c.EnableCooldown {
		total += c.CooldownDuration
	}

	return total
}

// PhaseDuration returns the configured duration for a timed phase, or
// zero for phases that carry no countdown.
func (c Config) PhaseDuration(k Kind) time.Duration {
	switch k {
	case Warmup:
		return c.WarmupDuration
	case Brisk:
		return c.BriskDuration
	case Easy:
		return c.EasyDuration
	case Cooldown:
		return c.CooldownDuration
	}

	return 0
}
