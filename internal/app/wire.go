package app

import (
	"io"

	"wgvanity/internal/config"
	"wgvanity/internal/logger"
	"wgvanity/internal/pattern"
	"wgvanity/internal/services/vanity"
	"wgvanity/internal/sink"
)

// Wire bundles everything a search needs.
type Wire struct {
	Config  *config.Config
	Log     *logger.Logger
	Pattern *pattern.Pattern
	Search  *vanity.Service
}

// NewWire constructs the dependency graph from cfg. Matches go to stdout,
// diagnostics to stderr. A malformed expr fails here, before any search work.
func NewWire(cfg *config.Config, expr string, stdout, stderr io.Writer) (*Wire, error) {
	log, err := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Writer: stderr,
	})
	if err != nil {
		return nil, err
	}

	p, err := pattern.Compile(expr)
	if err != nil {
		return nil, err
	}

	svc := vanity.New(p, sink.NewLineWriter(stdout), log.Child("search"), vanity.Options{
		Workers:     cfg.Workers,
		MaxAttempts: cfg.MaxAttempts,
		Verify:      !cfg.SkipVerify,
	})

	return &Wire{
		Config:  cfg,
		Log:     log,
		Pattern: p,
		Search:  svc,
	}, nil
}
