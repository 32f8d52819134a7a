package config

import (
	"math"
	"runtime"
	"time"
)

// EnvPrefix is prepended to every env tag on Config.
const EnvPrefix = "WGVANITY_"

// Config holds the search settings.
type Config struct {
	// Workers is the number of parallel search workers; 0 means one per CPU.
	// Env: WGVANITY_WORKERS
	Workers int `env:"WORKERS"`

	// Calibration is the minimum wall-clock sampling window for the rate
	// estimate. Env: WGVANITY_CALIBRATION
	Calibration time.Duration `env:"CALIBRATION"`

	// MinSamples is the minimum number of attempts in the rate estimate.
	// Env: WGVANITY_MIN_SAMPLES
	MinSamples uint64 `env:"MIN_SAMPLES"`

	// MaxAttempts caps the attempts of each worker; 0 means no practical
	// limit. Env: WGVANITY_MAX_ATTEMPTS
	MaxAttempts uint64 `env:"MAX_ATTEMPTS"`

	// SkipCalibration disables the rate estimate.
	// Env: WGVANITY_SKIP_CALIBRATION
	SkipCalibration bool `env:"SKIP_CALIBRATION"`

	// SkipVerify disables the independent re-derivation of every match.
	// Env: WGVANITY_SKIP_VERIFY
	SkipVerify bool `env:"SKIP_VERIFY"`

	// LogLevel and LogFormat configure the diagnostic channel.
	// Env: WGVANITY_LOG_LEVEL, WGVANITY_LOG_FORMAT
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`
}

// Defaults returns the built-in settings.
func Defaults() Config {
	return Config{
		Calibration: time.Second,
		MinSamples:  64,
		LogLevel:    "info",
		LogFormat:   "console",
	}
}

// Command-line flag names. Load applies a flag value only when set reports
// the flag as given, so explicit zero values still override.
const (
	FlagWorkers         = "workers"
	FlagCalibration     = "calibration"
	FlagMinSamples      = "min-samples"
	FlagMaxAttempts     = "max-attempts"
	FlagSkipCalibration = "skip-calibration"
	FlagSkipVerify      = "skip-verify"
	FlagLogLevel        = "log-level"
	FlagLogFormat       = "log-format"
)

// Load merges defaults, environment and flags, validates the result and
// resolves the "automatic" zero values. set reports whether the named flag
// was given on the command line; a nil set ignores flags entirely.
func Load(flags Config, set func(name string) bool) (*Config, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(flags, set).
		build()
}

func (c *Config) resolve() {
	if c.Workers == 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.MaxAttempts == 0 {
		c.MaxAttempts = math.MaxUint64
	}
}
