// Package config resolves runtime configuration from defaults, the config
// file, TILEDECK_* environment variables, and command-line flags, in
// ascending precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config captures runtime configuration for the application.
type Config struct {
	Deck             string
	Router           string
	Shell            string
	Device           string
	HoldThreshold    time.Duration
	WatchdogInterval time.Duration
	ToastTTL         time.Duration
	PollInterval     time.Duration
	ShowFooter       bool
	Verbose          bool
	Logging          Logging
}

type Logging struct {
	FilePath string
	Trace    bool
}

type fileConfig struct {
	Deck       string `mapstructure:"deck"`
	Router     string `mapstructure:"router"`
	Shell      string `mapstructure:"shell"`
	Device     string `mapstructure:"device"`
	HoldMS     int    `mapstructure:"hold_ms"`
	WatchdogMS int    `mapstructure:"watchdog_ms"`
	ToastMS    int    `mapstructure:"toast_ms"`
	PollMS     int    `mapstructure:"poll_ms"`
	Footer     bool   `mapstructure:"footer"`
	Verbose    bool   `mapstructure:"verbose"`
	Trace      bool   `mapstructure:"trace"`
	LogFile    string `mapstructure:"log_file"`
}

const envPrefix = "TILEDECK"

// Defaults for the timing knobs, in milliseconds. The watchdog has to
// outlast the terminal's initial auto-repeat delay (660ms on a stock X
// keymap) or a held accept key reads as a tap, and the hold threshold has
// to outlast the watchdog.
const (
	defaultHoldMS     = 900
	defaultWatchdogMS = 700
	defaultToastMS    = 4000
	defaultPollMS     = 1500
)

// Load resolves configuration. A nil flag set skips flag binding.
func Load(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	v.SetDefault("deck", "")
	v.SetDefault("router", "")
	v.SetDefault("shell", "")
	v.SetDefault("device", "")
	v.SetDefault("hold_ms", defaultHoldMS)
	v.SetDefault("watchdog_ms", defaultWatchdogMS)
	v.SetDefault("toast_ms", defaultToastMS)
	v.SetDefault("poll_ms", defaultPollMS)
	v.SetDefault("footer", false)
	v.SetDefault("verbose", false)
	v.SetDefault("trace", false)
	v.SetDefault("log_file", "")

	v.SetConfigType("toml")
	if cfgPath := os.Getenv(envPrefix + "_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "tiledeck"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Flag names use dashes, config keys use underscores; bind each flag
	// under the folded key so --hold-ms lands on hold_ms.
	if flags != nil {
		var bindErr error
		flags.VisitAll(func(f *pflag.Flag) {
			key := strings.ReplaceAll(f.Name, "-", "_")
			if err := v.BindPFlag(key, f); err != nil && bindErr == nil {
				bindErr = err
			}
		})
		if bindErr != nil {
			return Config{}, fmt.Errorf("bind flags: %w", bindErr)
		}
	}

	// The config file is optional; a missing one is not an error.
	_ = v.ReadInConfig()

	var raw fileConfig
	if err := v.Unmarshal(&raw); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg := Config{
		Deck:             raw.Deck,
		Router:           raw.Router,
		Shell:            raw.Shell,
		Device:           raw.Device,
		HoldThreshold:    time.Duration(raw.HoldMS) * time.Millisecond,
		WatchdogInterval: time.Duration(raw.WatchdogMS) * time.Millisecond,
		ToastTTL:         time.Duration(raw.ToastMS) * time.Millisecond,
		PollInterval:     time.Duration(raw.PollMS) * time.Millisecond,
		ShowFooter:       raw.Footer,
		Verbose:          raw.Verbose,
		Logging: Logging{
			FilePath: raw.LogFile,
			Trace:    raw.Trace,
		},
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// MustLoad returns configuration or exits.
func MustLoad(flags *pflag.FlagSet) Config {
	cfg, err := Load(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures the timing knobs are coherent: every duration positive
// and the release watchdog strictly below the hold threshold, otherwise a
// tap could never be told apart from a hold.
func Validate(cfg Config) error {
	if cfg.HoldThreshold <= 0 {
		return fmt.Errorf("hold threshold must be positive (got %v)", cfg.HoldThreshold)
	}
	if cfg.WatchdogInterval <= 0 {
		return fmt.Errorf("watchdog interval must be positive (got %v)", cfg.WatchdogInterval)
	}
	if cfg.WatchdogInterval >= cfg.HoldThreshold {
		return fmt.Errorf("watchdog interval %v must stay below the hold threshold %v", cfg.WatchdogInterval, cfg.HoldThreshold)
	}
	if cfg.ToastTTL <= 0 {
		return fmt.Errorf("toast duration must be positive (got %v)", cfg.ToastTTL)
	}
	if cfg.PollInterval <= 0 {
		return fmt.Errorf("poll interval must be positive (got %v)", cfg.PollInterval)
	}
	return nil
}

// Flags returns the map logged in the startup trace payload.
func (c Config) Flags() map[string]string {
	return map[string]string{
		"deck":     c.Deck,
		"router":   c.Router,
		"shell":    c.Shell,
		"device":   c.Device,
		"hold":     c.HoldThreshold.String(),
		"watchdog": c.WatchdogInterval.String(),
		"toast":    c.ToastTTL.String(),
		"poll":     c.PollInterval.String(),
		"footer":   fmt.Sprintf("%t", c.ShowFooter),
		"verbose":  fmt.Sprintf("%t", c.Verbose),
		"trace":    fmt.Sprintf("%t", c.Logging.Trace),
		"logFile":  c.Logging.FilePath,
	}
}
