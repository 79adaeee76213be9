package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"
)

// Mapping between config options and their Viper keys.
const (
	keyBriskDuration    = "brisk.duration"
	keyEasyDuration     = "easy.duration"
	keyWarmupDuration   = "warmup.duration"
	keyWarmupEnabled    = "warmup.enabled"
	keyCooldownDuration = "cooldown.duration"
	keyCooldownEnabled  = "cooldown.enabled"
	keyIntervals        = "settings.intervals"
	keyNotify           = "notifications.enabled"
	keySound            = "notifications.sound"
	keyPhaseCmd         = "settings.phase_cmd"
	keyMirrorAddr       = "mirror.listen_addr"
	keyTwentyFourHour   = "settings.24hr_clock"
	keyDarkTheme        = "display.dark_theme"
)

// Defaults follow the common interval-walking protocol: five cycles of
// three brisk minutes and three easy minutes, bracketed by a warm-up and
// a cool-down.
func setDefaults(v *viper.Viper) {
	v.SetDefault(keyBriskDuration, "3m")
	v.SetDefault(keyEasyDuration, "3m")
	v.SetDefault(keyWarmupDuration, "5m")
	v.SetDefault(keyWarmupEnabled, true)
	v.SetDefault(keyCooldownDuration, "5m")
	v.SetDefault(keyCooldownEnabled, true)
	v.SetDefault(keyIntervals, 5)
	v.SetDefault(keyNotify, true)
	v.SetDefault(keySound, "")
	v.SetDefault(keyPhaseCmd, "")
	v.SetDefault(keyMirrorAddr, "")
	v.SetDefault(keyTwentyFourHour, false)
	v.SetDefault(keyDarkTheme, true)
}

// load copies Viper values into the config struct.
func load(v *viper.Viper, c *AppConfig) error {
	var err error

	c.Session.BriskDuration, err = parseDuration(v.GetString(keyBriskDuration))
	if err != nil {
		return err
	}

	c.Session.EasyDuration, err = parseDuration(v.GetString(keyEasyDuration))
	if err != nil {
		return err
	}

	c.Session.WarmupDuration, err = parseDuration(v.GetString(keyWarmupDuration))
	if err != nil {
		return err
	}

	c.Session.CooldownDuration, err = parseDuration(
		v.GetString(keyCooldownDuration),
	)
	if err != nil {
		return err
	}

	c.Session.EnableWarmup = v.GetBool(keyWarmupEnabled)
	c.Session.EnableCooldown = v.GetBool(keyCooldownEnabled)
	c.Session.TotalIntervals = v.GetInt(keyIntervals)

	c.Notify = v.GetBool(keyNotify)
	c.Sound = v.GetString(keySound)
	c.PhaseCmd = v.GetString(keyPhaseCmd)
	c.MirrorAddr = v.GetString(keyMirrorAddr)
	c.TwentyFourHour = v.GetBool(keyTwentyFourHour)
	c.DarkTheme = v.GetBool(keyDarkTheme)

	return nil
}

// initAppConfig reads the config file, creating it from the first-run
// prompt when absent, then layers command-line overrides on top.
func initAppConfig(ctx *cli.Context) (*AppConfig, error) {
	v := viper.New()

	v.SetConfigFile(configFilePath)
	v.SetConfigType("yaml")

	setDefaults(v)

	err := v.ReadInConfig()
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", errReadConfig, err)
		}

		if err = promptFirstRun(v); err != nil {
			return nil, err
		}

		if err = v.WriteConfigAs(configFilePath); err != nil {
			return nil, fmt.Errorf("%w: %w", errWriteConfig, err)
		}
	}

	cfg := &AppConfig{}

	if err = load(v, cfg); err != nil {
		return nil, err
	}

	if err = cfg.setFromFlags(ctx); err != nil {
		return nil, err
	}

	if err = cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
