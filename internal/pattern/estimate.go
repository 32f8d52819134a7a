package pattern

import (
	"math"
	"regexp/syntax"
	"strings"
)

const (
	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

	// dataChars is the number of non-padding symbols in an encoded key.
	dataChars = 43
)

// Estimate is the expected number of attempts before a random key matches.
// Known is false when the expression is too general to estimate.
// Attempts is +Inf when the pattern can never match an encoded key.
type Estimate struct {
	Attempts float64
	Known    bool
}

// Never reports whether the pattern cannot match any key.
func (e Estimate) Never() bool { return e.Known && math.IsInf(e.Attempts, 1) }

// estimate handles the shapes that matter in practice: an optional leading
// anchor followed by a single literal. Each literal symbol matches a uniform
// base64 digit with probability 1/64, or 2/64 when case folding lets a letter
// match either case. An unanchored literal may start at any of the
// dataChars-len+1 positions.
func estimate(expr string) Estimate {
	re, err := syntax.Parse(expr, syntax.Perl)
	if err != nil {
		return Estimate{}
	}
	re = re.Simplify()

	subs := []*syntax.Regexp{re}
	if re.Op == syntax.OpConcat {
		subs = re.Sub
	}
	anchored := false
	if len(subs) > 0 && (subs[0].Op == syntax.OpBeginText || subs[0].Op == syntax.OpBeginLine) {
		anchored = true
		subs = subs[1:]
	}

	switch {
	case len(subs) == 0:
		return Estimate{Attempts: 1, Known: true}
	case len(subs) == 1 && subs[0].Op == syntax.OpEmptyMatch:
		return Estimate{Attempts: 1, Known: true}
	case len(subs) == 1 && subs[0].Op == syntax.OpLiteral:
		return literal(subs[0].Rune, subs[0].Flags&syntax.FoldCase != 0, anchored)
	default:
		return Estimate{}
	}
}

func literal(runes []rune, fold, anchored bool) Estimate {
	never := Estimate{Attempts: math.Inf(1), Known: true}
	if len(runes) > dataChars {
		return never
	}
	p := 1.0
	for _, r := range runes {
		if r == '=' {
			// Padding sits at a fixed position; not worth modelling.
			return Estimate{}
		}
		w := weight(r, fold)
		if w == 0 {
			return never
		}
		p *= w / float64(len(alphabet))
	}
	positions := 1.0
	if !anchored {
		positions = float64(dataChars - len(runes) + 1)
	}
	return Estimate{Attempts: math.Max(1, 1/(p*positions)), Known: true}
}

func weight(r rune, fold bool) float64 {
	if r > 0x7f || !strings.ContainsRune(alphabet, r) {
		return 0
	}
	if fold && (('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')) {
		return 2
	}
	return 1
}
