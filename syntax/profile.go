// Package syntax describes the dialect flags that drive pattern
// compilation: which characters need backslash-quoting, how tightly
// alternation binds, and which GNU extensions are available.
package syntax

// Flag is a bit in a Profile. Values are stable across versions (§6.3).
type Flag uint16

const (
	// NoBkParens says ( and ) are special unquoted; if unset, \( and \)
	// are required to open/close a group.
	NoBkParens Flag = 1 << iota
	// NoBkVBar says | is special unquoted; if unset, \| is required.
	NoBkVBar
	// BkPlusQM says \+ and \? are required; if unset, + and ? are special
	// unquoted.
	BkPlusQM
	// TightVBar says | binds tighter than ^ and $.
	TightVBar
	// NewlineOr treats a literal newline in the pattern as alternation.
	NewlineOr
	// ContextIndepOps makes ^$?*+ special in every context; a
	// context-dependent fallback to a literal character becomes a
	// compile error instead.
	ContextIndepOps
	// AnsiHex enables \a\b\f\n\r\t\v and \xHH escapes, and \vNN
	// two-digit back-references.
	AnsiHex
	// NoGNUExtensions disables \w \W \< \> \b \B \` \'.
	NoGNUExtensions
	// CaseInsensitive folds pattern and input through a translation map.
	CaseInsensitive
)

// Profile is an immutable bit-set of Flags.
type Profile uint16

// Pre-composed dialects (§4.1).
const (
	// Emacs is the empty profile: backslashed parens and vbar, context
	// dependent ops, no ANSI escapes.
	Emacs Profile = 0

	// AWK drops backslash-quoting for ( ) | and makes ^ $ ? * +
	// context-independent.
	AWK = Profile(NoBkParens | NoBkVBar | ContextIndepOps)

	// Egrep is AWK plus treating a literal newline as alternation.
	Egrep = Profile(AWK) | Profile(NewlineOr)

	// Grep requires \+ and \?, and treats newline as alternation.
	Grep = Profile(BkPlusQM | NewlineOr)

	// MOO is Emacs with context-independent operators (LambdaMOO dialect).
	MOO = Profile(ContextIndepOps)
)

// Has reports whether f is set in p.
func (p Profile) Has(f Flag) bool {
	return Flag(p)&f != 0
}

// NeedsBackslashParens reports whether ( and ) must be written \( and \)
// to act as group delimiters.
func (p Profile) NeedsBackslashParens() bool { return !p.Has(NoBkParens) }

// NeedsBackslashVBar reports whether | must be written \| to act as
// alternation.
func (p Profile) NeedsBackslashVBar() bool { return !p.Has(NoBkVBar) }

// NeedsBackslashPlusQM reports whether + and ? must be written \+ and \?
// to act as quantifiers.
func (p Profile) NeedsBackslashPlusQM() bool { return p.Has(BkPlusQM) }

// TightVBar reports whether | binds tighter than ^ and $.
func (p Profile) TightVBar() bool { return p.Has(TightVBar) }

// NewlineIsOr reports whether a literal newline acts as alternation.
func (p Profile) NewlineIsOr() bool { return p.Has(NewlineOr) }

// ContextIndependentOps reports whether ^$?*+ are special in every
// context (illegal placement is a compile error rather than a literal
// fallback).
func (p Profile) ContextIndependentOps() bool { return p.Has(ContextIndepOps) }

// AnsiSequences reports whether \a\b\f\n\r\t\v and \xHH are enabled.
func (p Profile) AnsiSequences() bool { return p.Has(AnsiHex) }

// GNUExtensionsDisabled reports whether \w \W \< \> \b \B \` \' are
// unavailable.
func (p Profile) GNUExtensionsDisabled() bool { return p.Has(NoGNUExtensions) }

// CaseInsensitive reports whether matching folds case via a translation
// map.
func (p Profile) CaseInsensitive() bool { return p.Has(CaseInsensitive) }
