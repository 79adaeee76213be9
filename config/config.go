// Package config is responsible for setting the program config from
// the config file and command-line arguments
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/stridewalk/stride/phase"
)

const Version = "v0.3.1"

const (
	minPhaseDuration = 10 * time.Second
	maxPhaseDuration = 2 * time.Hour

	minIntervals = 1
	maxIntervals = 50
)

var (
	configDir      = "stride"
	configFileName = "config.yml"
	dbFileName     = "stride.db"
	statusFileName = "status.json"
	logFileName    = "stride.log"

	configFilePath string
	dbFilePath     string
	statusFilePath string
	logFilePath    string
)

var once sync.Once

// AppConfig represents the program configuration derived from the config
// file and command-line arguments.
type AppConfig struct {
	Session        phase.Config  `json:"session"`
	Sound          string        `json:"sound"`
	PhaseCmd       string        `json:"phase_cmd"`
	MirrorAddr     string        `json:"mirror_addr"`
	Notify         bool          `json:"notify"`
	TwentyFourHour bool          `json:"twenty_four_hour_clock"`
	DarkTheme      bool          `json:"dark_theme"`
	Debug          bool          `json:"debug"`
}

func Dir() string {
	return configDir
}

func ConfigFilePath() string {
	return configFilePath
}

func DBFilePath() string {
	return dbFilePath
}

func StatusFilePath() string {
	return statusFilePath
}

func LogFilePath() string {
	return logFilePath
}

// InitializePaths resolves the XDG locations for the config file, the
// database, the status file, and the log file. STRIDE_ENV suffixes each
// file so that tests and development never touch real data.
func InitializePaths() {
	strideEnv := strings.TrimSpace(os.Getenv("STRIDE_ENV"))
	if strideEnv != "" {
		configFileName = fmt.Sprintf("config_%s.yml", strideEnv)
		dbFileName = fmt.Sprintf("stride_%s.db", strideEnv)
		statusFileName = fmt.Sprintf("status_%s.json", strideEnv)
		logFileName = fmt.Sprintf("stride_%s.log", strideEnv)
	}

	var err error

	relPath := filepath.Join(configDir, configFileName)

	configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dataDir, err := xdg.DataFile(configDir)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dbFilePath = filepath.Join(dataDir, dbFileName)

	statusFilePath = filepath.Join(dataDir, statusFileName)

	logFilePath = filepath.Join(dataDir, "log", logFileName)
}

// validate applies the config-file level bounds. The engine revalidates
// its own invariants on Start.
func (c *AppConfig) validate() error {
	durations := map[string]struct {
		d       time.Duration
		enabled bool
	}{
		"brisk":     {c.Session.BriskDuration, true},
		"easy":      {c.Session.EasyDuration, true},
		"warm-up":   {c.Session.WarmupDuration, c.Session.EnableWarmup},
		"cool-down": {c.Session.CooldownDuration, c.Session.EnableCooldown},
	}

	for name, v := range durations {
		if !v.enabled {
			continue
		}

		if v.d < minPhaseDuration || v.d > maxPhaseDuration {
			return errInvalidDuration.Fmt(name, minPhaseDuration, maxPhaseDuration)
		}
	}

	if c.Session.TotalIntervals < minIntervals ||
		c.Session.TotalIntervals > maxIntervals {
		return errInvalidIntervals.Fmt(minIntervals, maxIntervals)
	}

	return nil
}

// setFromFlags overrides file-sourced values with command-line arguments.
func (c *AppConfig) setFromFlags(ctx *cli.Context) error {
	for _, v := range []struct {
		flag string
		dst  *time.Duration
	}{
		{"brisk", &c.Session.BriskDuration},
		{"easy", &c.Session.EasyDuration},
	} {
		if s := ctx.String(v.flag); s != "" {
			d, err := parseDuration(s)
			if err != nil {
				return err
			}

			*v.dst = d
		}
	}

	if s := ctx.String("warmup"); s != "" {
		if err := setOptionalPhase(s, &c.Session.WarmupDuration, &c.Session.EnableWarmup); err != nil {
			return err
		}
	}

	if s := ctx.String("cooldown"); s != "" {
		if err := setOptionalPhase(s, &c.Session.CooldownDuration, &c.Session.EnableCooldown); err != nil {
			return err
		}
	}

	if ctx.Uint("intervals") > 0 {
		c.Session.TotalIntervals = int(ctx.Uint("intervals"))
	}

	if ctx.Bool("disable-notification") {
		c.Notify = false
	}

	if s := ctx.String("sound"); s != "" {
		if s == "off" {
			c.Sound = ""
		} else {
			c.Sound = s
		}
	}

	if s := ctx.String("phase-cmd"); s != "" {
		c.PhaseCmd = s
	}

	if s := ctx.String("mirror"); s != "" {
		if s == "off" {
			c.MirrorAddr = ""
		} else {
			c.MirrorAddr = s
		}
	}

	if ctx.Bool("debug") {
		c.Debug = true
	}

	return nil
}

// setOptionalPhase interprets a flag value for an optional phase: "off"
// disables the phase, any duration enables it with that length.
func setOptionalPhase(s string, d *time.Duration, enabled *bool) error {
	if s == "off" {
		*enabled = false
		return nil
	}

	dur, err := parseDuration(s)
	if err != nil {
		return err
	}

	*d = dur
	*enabled = true

	return nil
}

// parseDuration parses a duration string, treating a bare number as
// minutes.
func parseDuration(s string) (time.Duration, error) {
	dur, err := time.ParseDuration(s)
	if err == nil {
		return dur, nil
	}

	dur, err = time.ParseDuration(s + "m")
	if err != nil {
		return 0, errInvalidDurationFormat.Fmt(s)
	}

	return dur, nil
}

var appCfg *AppConfig

// Get initializes and returns the application configuration. The
// initialization is done just once no matter how many times it is
// called.
func Get(ctx *cli.Context) (*AppConfig, error) {
	var initErr error

	once.Do(func() {
		appCfg, initErr = initAppConfig(ctx)
	})

	if initErr != nil {
		return nil, fmt.Errorf("%w: %w", errInitFailed, initErr)
	}

	return appCfg, nil
}
