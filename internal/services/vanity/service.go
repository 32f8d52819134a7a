package vanity

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"golang.org/x/sync/errgroup"

	"wgvanity/internal/crypto"
	"wgvanity/internal/domain"
	"wgvanity/internal/logger"
	"wgvanity/internal/rate"
	"wgvanity/internal/search"
)

// Options configures a Service.
type Options struct {
	// Workers is the pool size; 0 or less means runtime.NumCPU().
	Workers int
	// MaxAttempts is the per-worker attempt budget; 0 means search.Unbounded.
	MaxAttempts uint64
	// Verify re-derives every match through edwards25519 before emitting it.
	Verify bool
	// NewSource returns a fresh random source for one worker.
	// Defaults to crypto.NewSource.
	NewSource func() io.Reader
}

// Report summarizes a finished run.
type Report struct {
	Workers  int
	Attempts uint64
	Matches  uint64
}

type workerStats struct {
	attempts uint64
	matches  uint64
}

// Service fans the search out over a worker pool and fans matches into one sink.
type Service struct {
	matcher domain.Matcher
	sink    domain.Sink
	log     *logger.Logger
	opt     Options
}

// New returns a Service searching with m and reporting to s.
func New(m domain.Matcher, s domain.Sink, log *logger.Logger, opt Options) *Service {
	if opt.Workers <= 0 {
		opt.Workers = runtime.NumCPU()
	}
	if opt.MaxAttempts == 0 {
		opt.MaxAttempts = search.Unbounded
	}
	if opt.NewSource == nil {
		opt.NewSource = func() io.Reader { return crypto.NewSource() }
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Service{matcher: m, sink: s, log: log, opt: opt}
}

// Workers returns the pool size.
func (s *Service) Workers() int { return s.opt.Workers }

// Calibrate measures single-threaded throughput with the real matcher. It
// uses its own random source and runs before any worker starts.
func (s *Service) Calibrate(opt rate.Options) rate.Sample {
	u := search.New(s.opt.NewSource(), s.matcher)
	return rate.Measure(u.Attempt, opt)
}

// Run starts the workers and blocks until the search ends. Cancelling ctx is
// a normal shutdown and yields a nil error.
func (s *Service) Run(ctx context.Context) (Report, error) {
	stats := make([]workerStats, s.opt.Workers)

	g, gctx := errgroup.WithContext(ctx)
	for i := range s.opt.Workers {
		g.Go(func() error { return s.work(gctx, i, &stats[i]) })
	}
	err := g.Wait()

	report := Report{Workers: s.opt.Workers}
	for _, st := range stats {
		report.Attempts += st.attempts
		report.Matches += st.matches
	}
	if err != nil && ctx.Err() != nil && errors.Is(err, ctx.Err()) {
		err = nil
	}
	return report, err
}

func (s *Service) work(ctx context.Context, id int, st *workerStats) error {
	u := search.New(s.opt.NewSource(), s.matcher)
	remaining := s.opt.MaxAttempts
	for {
		kp, n, err := u.Find(ctx, remaining)
		st.attempts += n
		remaining -= n
		if errors.Is(err, search.ErrBudgetExhausted) {
			return nil
		}
		if err != nil {
			return err
		}

		if s.opt.Verify {
			if err := crypto.Verify(kp); err != nil {
				return fmt.Errorf("worker %d: %w", id, err)
			}
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.sink.Emit(domain.Match{KeyPair: kp, Worker: id, Attempts: n}); err != nil {
			return err
		}
		st.matches++
		s.log.Debug().Int("worker", id).Uint64("attempts", n).Msg("match")
	}
}
