package app

import (
	"context"
	"time"

	"wgvanity/internal/rate"
	"wgvanity/internal/services/vanity"
)

// Calibrate measures throughput and logs the one-line rate diagnostic,
// including the expected wait when the pattern allows an estimate.
func (w *Wire) Calibrate() rate.Sample {
	s := w.Search.Calibrate(rate.Options{
		Window:     w.Config.Calibration,
		MinSamples: w.Config.MinSamples,
	})

	ev := w.Log.Info().
		Str("rate", rate.Format(s.Rate)).
		Int("workers", w.Search.Workers())
	if est := w.Pattern.Expected(); est.Known && !est.Never() {
		ev = ev.Float64("expected_attempts", est.Attempts)
		if eta, ok := rate.ETA(est.Attempts, s.Rate*float64(w.Search.Workers())); ok {
			ev = ev.Str("eta", eta.Round(time.Second).String())
		}
	}
	ev.Msg("rate: " + rate.Format(s.Rate))
	return s
}

// Run calibrates (unless disabled) and then searches until ctx is cancelled,
// the attempt budget is spent, or the output fails.
func (w *Wire) Run(ctx context.Context) (vanity.Report, error) {
	est := w.Pattern.Expected()
	switch {
	case est.Never():
		w.Log.Warn().Str("pattern", w.Pattern.String()).
			Msg("pattern contains symbols outside the key alphabet and can never match")
	case !est.Known:
		w.Log.Debug().Str("pattern", w.Pattern.String()).Msg("pattern too general to estimate")
	}

	if !w.Config.SkipCalibration {
		w.Calibrate()
	}

	start := time.Now()
	report, err := w.Search.Run(ctx)
	ev := w.Log.Info()
	if err != nil {
		ev = w.Log.Error().Err(err)
	}
	ev.Uint64("attempts", report.Attempts).
		Uint64("matches", report.Matches).
		Dur("elapsed", time.Since(start)).
		Msg("search stopped")
	return report, err
}
