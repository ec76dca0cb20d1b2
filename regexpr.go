// Package regexpr implements a regular-expression engine in the classic
// Emacs/AWK/GREP-dialect tradition (§1): a pattern compiler that lowers
// text into a compact bytecode buffer, and a backtracking virtual
// machine that walks that buffer against a Unicode-aware view of the
// input. It supports configurable syntax dialects, capture groups,
// anchors, character classes, alternation, greedy quantifiers,
// word-boundary assertions and back-references, with a hard bound on
// execution cost so pathological patterns cannot run away.
package regexpr

import (
	"github.com/arrowmatic/regexpr/bytecode"
	"github.com/arrowmatic/regexpr/syntax"
)

// Re-export the syntax profile type and its pre-composed dialects so
// callers don't need to import the syntax package directly for the
// common case.
type Profile = syntax.Profile

const (
	Emacs = syntax.Emacs
	AWK   = syntax.AWK
	Egrep = syntax.Egrep
	Grep  = syntax.Grep
	MOO   = syntax.MOO
)

// Limits bounds the work a single match attempt may do (§6.2).
type Limits = bytecode.Limits

// DefaultLimits returns the §6.2 defaults: unbounded ticks, a 100,000
// entry failure stack.
func DefaultLimits() Limits { return bytecode.DefaultLimits() }

// Captures holds the register values produced by a successful match
// (§6.1). Register 0 is the whole match; 1..99 are user groups.
type Captures struct {
	inner *bytecode.Captures
}

// Get returns the (start, end) code-point bounds of register i.
func (c *Captures) Get(i int) (start, end int, ok bool) {
	if c == nil || c.inner == nil {
		return 0, 0, false
	}
	return c.inner.Get(i)
}

// Len returns one past the highest populated register.
func (c *Captures) Len() int {
	if c == nil || c.inner == nil {
		return 0
	}
	return c.inner.Len()
}

// Pattern is a compiled regular expression (§3's Compiled Pattern). It is
// immutable after Compile returns and safe to share across goroutines.
type Pattern struct {
	prog *bytecode.Program
}

// Compile compiles pattern under the given syntax profile (§4.2). It
// returns a *bytecode.CompileError on malformed input.
func Compile(pattern string, profile Profile) (*Pattern, error) {
	prog, err := bytecode.Compile(pattern, profile)
	if err != nil {
		return nil, err
	}
	return &Pattern{prog: prog}, nil
}

// MustCompile is like Compile but panics on error, for compile-time
// constant patterns.
func MustCompile(pattern string, profile Profile) *Pattern {
	p, err := Compile(pattern, profile)
	if err != nil {
		panic(err)
	}
	return p
}

// IsMatch reports whether text contains a match anywhere (§6.1).
func (p *Pattern) IsMatch(text string, limits Limits) (bool, error) {
	_, _, ok, err := p.Find(text, limits)
	return ok, err
}

// Find returns the code-point (start, end) of the leftmost match in
// text, if any (§6.1).
func (p *Pattern) Find(text string, limits Limits) (start, end int, ok bool, err error) {
	input := []rune(text)
	return bytecode.Search(p.prog, input, 0, len(input), limits)
}

// FindFrom searches text for a match starting at a position between
// from and from+span, both ends included (forward if span >= 0, backward
// otherwise), matching §4.5's Search Driver contract directly.
func (p *Pattern) FindFrom(text string, from, span int, limits Limits) (start, end int, ok bool, err error) {
	input := []rune(text)
	return bytecode.Search(p.prog, input, from, span, limits)
}

// Captures returns the full capture set for the leftmost match in text,
// if any (§6.1).
func (p *Pattern) Captures(text string, limits Limits) (*Captures, error) {
	input := []rune(text)
	start, _, ok, err := bytecode.Search(p.prog, input, 0, len(input), limits)
	if err != nil || !ok {
		return nil, err
	}
	caps, _, _, err := bytecode.SearchCaptures(p.prog, input, start, limits)
	if err != nil {
		return nil, err
	}
	return &Captures{inner: caps}, nil
}
