package rate

import (
	"fmt"
	"math"
	"time"
)

// Options bound the sampling procedure. Sampling stops once both the window
// has elapsed and at least MinSamples steps ran.
type Options struct {
	Window     time.Duration
	MinSamples uint64

	// Now defaults to time.Now.
	Now func() time.Time
}

// Sample is the result of one calibration run.
type Sample struct {
	Attempts uint64
	Elapsed  time.Duration
	Rate     float64 // attempts per second
}

// Measure calls step repeatedly on the calling goroutine and returns the
// observed throughput. At least one step always runs, and an elapsed time
// below the clock resolution is treated as one nanosecond, so Rate is always
// finite and non-negative.
func Measure(step func() bool, opt Options) Sample {
	now := opt.Now
	if now == nil {
		now = time.Now
	}
	minSamples := max(opt.MinSamples, 1)

	start := now()
	var (
		n       uint64
		elapsed time.Duration
	)
	for {
		step()
		n++
		elapsed = now().Sub(start)
		if n >= minSamples && elapsed >= opt.Window {
			break
		}
	}
	if elapsed <= 0 {
		elapsed = time.Nanosecond
	}
	return Sample{
		Attempts: n,
		Elapsed:  elapsed,
		Rate:     float64(n) / elapsed.Seconds(),
	}
}

// Format renders a rate in keys per second with a power-of-thousand suffix.
func Format(rate float64) string {
	switch {
	case rate > 1e9:
		return fmt.Sprintf("%.2fe9 keys/s", rate/1e9)
	case rate > 1e6:
		return fmt.Sprintf("%.2fe6 keys/s", rate/1e6)
	case rate > 1e3:
		return fmt.Sprintf("%.2fe3 keys/s", rate/1e3)
	case rate > 1e0:
		return fmt.Sprintf("%.2f keys/s", rate)
	case rate > 1e-3:
		return fmt.Sprintf("%.2fe-3 keys/s", rate*1e3)
	case rate > 1e-6:
		return fmt.Sprintf("%.2fe-6 keys/s", rate*1e6)
	case rate > 1e-9:
		return fmt.Sprintf("%.2fe-9 keys/s", rate*1e9)
	default:
		return fmt.Sprintf("%.3fe-12 keys/s", rate*1e12)
	}
}

// ETA converts an expected attempt count and a rate into a duration.
// It reports false when the result is not representable: a zero rate, an
// infinite expectation or a duration beyond time.Duration's range.
func ETA(expected, rate float64) (time.Duration, bool) {
	if rate <= 0 || math.IsInf(expected, 0) || math.IsNaN(expected) || expected < 0 {
		return 0, false
	}
	secs := expected / rate
	if secs >= float64(math.MaxInt64)/float64(time.Second) {
		return 0, false
	}
	return time.Duration(secs * float64(time.Second)), true
}
