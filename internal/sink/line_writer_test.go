package sink_test

import (
	"bufio"
	"bytes"
	"errors"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wgvanity/internal/crypto"
	"wgvanity/internal/domain"
	"wgvanity/internal/sink"
)

var lineRE = regexp.MustCompile(`^public [A-Za-z0-9+/]{43}=  private [A-Za-z0-9+/]{43}=$`)

// chunkyWriter copies each Write one byte at a time, yielding in between, so
// an unserialized writer would interleave.
type chunkyWriter struct {
	mu  sync.Mutex
	out []byte
}

func (w *chunkyWriter) Write(p []byte) (int, error) {
	for _, b := range p {
		w.mu.Lock()
		w.out = append(w.out, b)
		w.mu.Unlock()
	}
	return len(p), nil
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func newMatch(t *testing.T) domain.Match {
	t.Helper()
	priv, pub, err := crypto.GenerateX25519(crypto.NewSource())
	require.NoError(t, err)
	return domain.Match{KeyPair: domain.KeyPair{Private: priv, Public: pub}}
}

func TestEmit_Format(t *testing.T) {
	var buf bytes.Buffer
	m := newMatch(t)

	require.NoError(t, sink.NewLineWriter(&buf).Emit(m))

	want := "public " + crypto.B64(m.Public[:]) + "  private " + crypto.B64(m.Private[:]) + "\n"
	assert.Equal(t, want, buf.String())
	assert.Regexp(t, lineRE, strings.TrimSuffix(buf.String(), "\n"))
}

func TestEmit_ConcurrentLinesAreAtomic(t *testing.T) {
	const workers, perWorker = 16, 40
	w := &chunkyWriter{}
	lw := sink.NewLineWriter(w)

	matches := make([]domain.Match, workers)
	for i := range matches {
		matches[i] = newMatch(t)
	}

	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func(m domain.Match) {
			defer wg.Done()
			for range perWorker {
				assert.NoError(t, lw.Emit(m))
			}
		}(matches[i])
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(string(w.out), "\n"), "\n")
	require.Len(t, lines, workers*perWorker)
	for _, l := range lines {
		assert.Regexp(t, lineRE, l)
	}
}

func TestEmit_WriteError(t *testing.T) {
	err := sink.NewLineWriter(brokenWriter{}).Emit(newMatch(t))
	require.Error(t, err)

	var werr *domain.WriteError
	require.True(t, errors.As(err, &werr))
	assert.Contains(t, err.Error(), "broken pipe")
}

func TestEmit_FlushesBufferedWriter(t *testing.T) {
	var out bytes.Buffer
	bw := bufio.NewWriterSize(&out, 4096)

	require.NoError(t, sink.NewLineWriter(bw).Emit(newMatch(t)))
	assert.Equal(t, 0, bw.Buffered())
	assert.True(t, strings.HasPrefix(out.String(), "public "))
}

func TestEmit_FlushError(t *testing.T) {
	bw := bufio.NewWriterSize(brokenWriter{}, 4096)

	err := sink.NewLineWriter(bw).Emit(newMatch(t))
	var werr *domain.WriteError
	require.True(t, errors.As(err, &werr))
}
