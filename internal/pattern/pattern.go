package pattern

import (
	"regexp"

	"wgvanity/internal/domain"
)

// Pattern is a compiled search expression.
type Pattern struct {
	expr string
	re   *regexp.Regexp
	est  Estimate
}

// Compile parses expr. A malformed expression is returned as a
// *domain.PatternError.
func Compile(expr string) (*Pattern, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, &domain.PatternError{Pattern: expr, Err: err}
	}
	return &Pattern{expr: expr, re: re, est: estimate(expr)}, nil
}

// Match reports whether encoded contains a match of the pattern.
func (p *Pattern) Match(encoded []byte) bool { return p.re.Match(encoded) }

// String returns the source expression.
func (p *Pattern) String() string { return p.expr }

// Expected returns the selectivity estimate computed at compile time.
func (p *Pattern) Expected() Estimate { return p.est }

var _ domain.Matcher = (*Pattern)(nil)
