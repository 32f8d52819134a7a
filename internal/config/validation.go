package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validation errors returned by Load.
var (
	ErrInvalidWorkers     = errors.New("invalid worker count")
	ErrInvalidCalibration = errors.New("invalid calibration window")
	ErrInvalidLogFormat   = errors.New("invalid log format")
)

func (c *Config) validate() error {
	var errs []error
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("%w: %d", ErrInvalidWorkers, c.Workers))
	}
	if c.Calibration < 0 {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidCalibration, c.Calibration))
	}
	switch strings.ToLower(c.LogFormat) {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.LogFormat))
	}
	return errors.Join(errs...)
}
