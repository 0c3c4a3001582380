// Package config handles activity configuration using Viper.
//
// Configuration sources (in priority order):
//  1. Environment variables (ACTIVITY_*)
//  2. Config file (~/.config/activity/config.yaml)
//  3. Built-in defaults
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/eliteGoblin/activity/internal/infra"
	"github.com/eliteGoblin/activity/internal/tui"
)

const (
	// DefaultRefreshInterval is the time between snapshots in the monitor.
	DefaultRefreshInterval = 2 * time.Second
	// DefaultInputTimeout bounds one keyboard poll.
	DefaultInputTimeout = 100 * time.Millisecond
	// DefaultTickSleep is the pause at the end of each monitor tick.
	DefaultTickSleep = 10 * time.Millisecond
	// DefaultCleanupThresholdMB is the smallest process suggested for cleanup.
	DefaultCleanupThresholdMB = 50
	// DefaultTopLimit is the row count of the top command.
	DefaultTopLimit = 20
	// DefaultLogFile receives structured logs; the screen belongs to the UI.
	DefaultLogFile = "/var/tmp/activity.log"
	// DefaultLogLevel is the minimum level written to the log file.
	DefaultLogLevel = "info"
)

// Config holds the activity configuration.
type Config struct {
	v *viper.Viper
}

// Load reads configuration from all sources. Under sudo the invoking
// user's config file is used.
func Load() *Config {
	dir := ""
	if home := infra.RealUserHome(); home != "" {
		dir = filepath.Join(home, ".config", "activity")
	}
	return LoadFrom(dir)
}

// LoadFrom reads configuration using dir as the config file location.
// An empty dir skips the config file.
func LoadFrom(dir string) *Config {
	v := viper.New()

	v.SetDefault("monitor.refresh_interval", DefaultRefreshInterval)
	v.SetDefault("monitor.input_timeout", DefaultInputTimeout)
	v.SetDefault("monitor.tick_sleep", DefaultTickSleep)
	v.SetDefault("cleanup.threshold_mb", DefaultCleanupThresholdMB)
	v.SetDefault("top.limit", DefaultTopLimit)
	v.SetDefault("log.file", DefaultLogFile)
	v.SetDefault("log.level", DefaultLogLevel)

	if dir != "" {
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("ACTIVITY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if dir != "" {
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				fmt.Fprintf(os.Stderr, "Warning: error reading config file: %v\n", err)
			}
		}
	}

	return &Config{v: v}
}

// RefreshInterval returns the monitor refresh interval.
func (c *Config) RefreshInterval() time.Duration {
	return c.duration("monitor.refresh_interval", DefaultRefreshInterval)
}

// InputTimeout returns the keyboard poll timeout.
func (c *Config) InputTimeout() time.Duration {
	return c.duration("monitor.input_timeout", DefaultInputTimeout)
}

// TickSleep returns the end-of-tick pause.
func (c *Config) TickSleep() time.Duration {
	return c.duration("monitor.tick_sleep", DefaultTickSleep)
}

// CleanupThresholdMB returns the cleanup threshold in megabytes.
func (c *Config) CleanupThresholdMB() int {
	return c.positiveInt("cleanup.threshold_mb", DefaultCleanupThresholdMB)
}

// TopLimit returns the default number of rows for top.
func (c *Config) TopLimit() int {
	return c.positiveInt("top.limit", DefaultTopLimit)
}

// LogFile returns the log file path as configured (~ not yet expanded).
func (c *Config) LogFile() string {
	if f := c.v.GetString("log.file"); f != "" {
		return f
	}
	return DefaultLogFile
}

// LogLevel returns the configured log level name.
func (c *Config) LogLevel() string {
	if l := c.v.GetString("log.level"); l != "" {
		return strings.ToLower(l)
	}
	return DefaultLogLevel
}

// Monitor converts the settings into the interactive loop's config.
func (c *Config) Monitor() tui.Config {
	return tui.Config{
		RefreshInterval:  c.RefreshInterval(),
		InputTimeout:     c.InputTimeout(),
		TickSleep:        c.TickSleep(),
		CleanupThreshold: uint64(c.CleanupThresholdMB()) * 1024 * 1024,
	}
}

// All returns all configuration as a map.
func (c *Config) All() map[string]interface{} {
	return c.v.AllSettings()
}

// duration reads key, falling back when it is missing, malformed or not positive.
func (c *Config) duration(key string, fallback time.Duration) time.Duration {
	if d := c.v.GetDuration(key); d > 0 {
		return d
	}
	return fallback
}

func (c *Config) positiveInt(key string, fallback int) int {
	if n := c.v.GetInt(key); n > 0 {
		return n
	}
	return fallback
}
