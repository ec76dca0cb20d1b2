package syntax

import "testing"

func assert(t *testing.T, cond bool, format string, args ...any) {
	t.Helper()
	if !cond {
		t.Fatalf(format, args...)
	}
}

func TestEmacsIsEmpty(t *testing.T) {
	assert(t, Emacs == 0, "Emacs must be the empty profile")
	assert(t, Emacs.NeedsBackslashParens(), "Emacs requires \\( \\)")
	assert(t, Emacs.NeedsBackslashVBar(), "Emacs requires \\|")
	assert(t, !Emacs.ContextIndependentOps(), "Emacs ops are context dependent")
}

func TestAWK(t *testing.T) {
	assert(t, !AWK.NeedsBackslashParens(), "AWK parens are unquoted")
	assert(t, !AWK.NeedsBackslashVBar(), "AWK vbar is unquoted")
	assert(t, AWK.ContextIndependentOps(), "AWK ops are context independent")
	assert(t, !AWK.NewlineIsOr(), "AWK does not treat newline as Or")
}

func TestEgrepExtendsAWK(t *testing.T) {
	assert(t, Egrep.Has(NoBkParens), "Egrep inherits AWK's NoBkParens")
	assert(t, Egrep.NewlineIsOr(), "Egrep treats newline as Or")
}

func TestGrep(t *testing.T) {
	assert(t, Grep.NeedsBackslashPlusQM(), "Grep requires \\+ \\?")
	assert(t, Grep.NewlineIsOr(), "Grep treats newline as Or")
	assert(t, Grep.NeedsBackslashParens(), "Grep still requires \\( \\)")
}

func TestMOO(t *testing.T) {
	assert(t, MOO.ContextIndependentOps(), "MOO ops are context independent")
	assert(t, MOO.NeedsBackslashParens(), "MOO still requires \\( \\)")
}

func TestFlagBitValuesAreStable(t *testing.T) {
	cases := []struct {
		f    Flag
		want Flag
	}{
		{NoBkParens, 1},
		{NoBkVBar, 2},
		{BkPlusQM, 4},
		{TightVBar, 8},
		{NewlineOr, 16},
		{ContextIndepOps, 32},
		{AnsiHex, 64},
		{NoGNUExtensions, 128},
		{CaseInsensitive, 256},
	}
	for _, c := range cases {
		assert(t, c.f == c.want, "flag %d should equal %d", c.f, c.want)
	}
}
