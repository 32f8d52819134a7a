package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

type configBuilder struct {
	configs []*Config
	flags   Config
	set     func(name string) bool
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{configs: make([]*Config, 0, 3)}
}

func (b *configBuilder) build() (*Config, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	cfg := new(Config)
	for _, layer := range b.configs {
		if err := mergo.Merge(cfg, layer, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}
	b.applyFlags(cfg)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.resolve()
	return cfg, nil
}

func (b *configBuilder) withDefaults() *configBuilder {
	d := Defaults()
	b.configs = append(b.configs, &d)
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &Config{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(flags Config, set func(name string) bool) *configBuilder {
	b.flags = flags
	b.set = set
	return b
}

// flagFields copies one flag-backed field from src to dst.
var flagFields = map[string]func(dst *Config, src Config){
	FlagWorkers:         func(dst *Config, src Config) { dst.Workers = src.Workers },
	FlagCalibration:     func(dst *Config, src Config) { dst.Calibration = src.Calibration },
	FlagMinSamples:      func(dst *Config, src Config) { dst.MinSamples = src.MinSamples },
	FlagMaxAttempts:     func(dst *Config, src Config) { dst.MaxAttempts = src.MaxAttempts },
	FlagSkipCalibration: func(dst *Config, src Config) { dst.SkipCalibration = src.SkipCalibration },
	FlagSkipVerify:      func(dst *Config, src Config) { dst.SkipVerify = src.SkipVerify },
	FlagLogLevel:        func(dst *Config, src Config) { dst.LogLevel = src.LogLevel },
	FlagLogFormat:       func(dst *Config, src Config) { dst.LogFormat = src.LogFormat },
}

// applyFlags overlays the flags that were given. mergo skips zero values,
// so this layer is applied field by field instead.
func (b *configBuilder) applyFlags(cfg *Config) {
	if b.set == nil {
		return
	}
	for name, apply := range flagFields {
		if b.set(name) {
			apply(cfg, b.flags)
		}
	}
}

// parseEnv populates cfg from WGVANITY_* environment variables.
func parseEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}
	return nil
}
