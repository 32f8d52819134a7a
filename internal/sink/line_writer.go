package sink

import (
	"io"
	"sync"

	"wgvanity/internal/crypto"
	"wgvanity/internal/domain"
)

// LineWriter serializes matches onto an io.Writer, one line per match.
type LineWriter struct {
	mu  sync.Mutex
	w   io.Writer
	buf []byte
}

// NewLineWriter returns a LineWriter writing to w.
func NewLineWriter(w io.Writer) *LineWriter {
	return &LineWriter{w: w, buf: make([]byte, 0, lineLen)}
}

const lineLen = len("public ") + crypto.EncodedKeyLen + len("  private ") + crypto.EncodedKeyLen + 1

// AppendLine appends the output line for kp to dst.
func AppendLine(dst []byte, kp domain.KeyPair) []byte {
	dst = append(dst, "public "...)
	dst = crypto.AppendKey(dst, kp.Public)
	dst = append(dst, "  private "...)
	dst = crypto.AppendKey(dst, kp.Private)
	return append(dst, '\n')
}

// Emit writes one match. Any failure is returned as a *domain.WriteError.
func (s *LineWriter) Emit(m domain.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.buf = AppendLine(s.buf[:0], m.KeyPair)
	defer crypto.Wipe(s.buf)

	if _, err := s.w.Write(s.buf); err != nil {
		return &domain.WriteError{Err: err}
	}
	if f, ok := s.w.(interface{ Flush() error }); ok {
		if err := f.Flush(); err != nil {
			return &domain.WriteError{Err: err}
		}
	}
	return nil
}

// Compile-time assertion that LineWriter implements domain.Sink.
var _ domain.Sink = (*LineWriter)(nil)
