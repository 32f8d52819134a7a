package vanity_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wgvanity/internal/crypto"
	"wgvanity/internal/domain"
	"wgvanity/internal/logger"
	"wgvanity/internal/pattern"
	"wgvanity/internal/rate"
	"wgvanity/internal/services/vanity"
)

type matchFunc func([]byte) bool

func (f matchFunc) Match(b []byte) bool { return f(b) }

var matchAll = matchFunc(func([]byte) bool { return true })

// recordingSink collects matches and optionally reacts to each one.
type recordingSink struct {
	mu      sync.Mutex
	matches []domain.Match
	onEmit  func(n int) error
}

func (s *recordingSink) Emit(m domain.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matches = append(s.matches, m)
	if s.onEmit != nil {
		return s.onEmit(len(s.matches))
	}
	return nil
}

func (s *recordingSink) snapshot() []domain.Match {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Match(nil), s.matches...)
}

func TestRun_EveryAttemptMatches(t *testing.T) {
	sink := &recordingSink{}
	svc := vanity.New(matchAll, sink, logger.Nop(), vanity.Options{
		Workers:     4,
		MaxAttempts: 25,
		Verify:      true,
	})

	report, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, report.Workers)
	assert.Equal(t, uint64(100), report.Attempts)
	assert.Equal(t, uint64(100), report.Matches)

	got := sink.snapshot()
	require.Len(t, got, 100)

	privates := make(map[domain.X25519Private]struct{}, len(got))
	perWorker := make(map[int]int)
	for _, m := range got {
		privates[m.Private] = struct{}{}
		perWorker[m.Worker]++
		assert.Equal(t, uint64(1), m.Attempts)
	}
	assert.Len(t, privates, 100)
	assert.Len(t, perWorker, 4)
}

func TestRun_ReportsManyMatchesUntilCancelled(t *testing.T) {
	p, err := pattern.Compile("^A")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sink := &recordingSink{onEmit: func(n int) error {
		if n == 5 {
			cancel()
		}
		return nil
	}}
	svc := vanity.New(p, sink, logger.Nop(), vanity.Options{Workers: 2, Verify: true})

	report, err := svc.Run(ctx)
	require.NoError(t, err)

	got := sink.snapshot()
	require.GreaterOrEqual(t, len(got), 5)
	assert.Equal(t, uint64(len(got)), report.Matches)
	assert.GreaterOrEqual(t, report.Attempts, report.Matches)

	distinct := make(map[domain.X25519Public]struct{})
	for _, m := range got {
		distinct[m.Public] = struct{}{}
		assert.True(t, strings.HasPrefix(crypto.B64(m.Public[:]), "A"))
		require.NoError(t, crypto.Verify(m.KeyPair))
	}
	assert.Greater(t, len(distinct), 1)
}

func TestRun_WriteFailureAborts(t *testing.T) {
	sink := &recordingSink{onEmit: func(int) error {
		return &domain.WriteError{Err: errors.New("broken pipe")}
	}}
	svc := vanity.New(matchAll, sink, logger.Nop(), vanity.Options{Workers: 4})

	done := make(chan error, 1)
	go func() {
		_, err := svc.Run(context.Background())
		done <- err
	}()

	select {
	case err := <-done:
		var werr *domain.WriteError
		require.True(t, errors.As(err, &werr), "got %v", err)
	case <-time.After(30 * time.Second):
		t.Fatal("search did not abort after write failure")
	}
}

func TestRun_NoEmitAfterWriteFailure(t *testing.T) {
	failed := make(chan struct{})
	var first atomic.Bool
	// One worker matches at once; the rest hold their match until the
	// failure has had time to cancel the group.
	m := matchFunc(func([]byte) bool {
		if first.CompareAndSwap(false, true) {
			return true
		}
		<-failed
		time.Sleep(100 * time.Millisecond)
		return true
	})
	sink := &recordingSink{onEmit: func(n int) error {
		if n == 1 {
			close(failed)
		}
		return &domain.WriteError{Err: errors.New("epipe")}
	}}
	svc := vanity.New(m, sink, logger.Nop(), vanity.Options{Workers: 8})

	_, err := svc.Run(context.Background())
	var werr *domain.WriteError
	require.True(t, errors.As(err, &werr), "got %v", err)
	assert.Len(t, sink.snapshot(), 1)
}

func TestRun_DefaultsWorkers(t *testing.T) {
	svc := vanity.New(matchAll, &recordingSink{}, nil, vanity.Options{MaxAttempts: 1})
	assert.Positive(t, svc.Workers())

	report, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(svc.Workers()), report.Matches)
}

func TestCalibrate(t *testing.T) {
	p, err := pattern.Compile("^wg")
	require.NoError(t, err)

	sink := &recordingSink{}
	svc := vanity.New(p, sink, logger.Nop(), vanity.Options{Workers: 1})

	s := svc.Calibrate(rate.Options{MinSamples: 50})
	assert.GreaterOrEqual(t, s.Attempts, uint64(50))
	assert.Greater(t, s.Rate, 0.0)
	assert.Empty(t, sink.snapshot())
}
