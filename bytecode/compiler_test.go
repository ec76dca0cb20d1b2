package bytecode

import (
	"fmt"
	"testing"

	"github.com/renstrom/dedent"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/arrowmatic/regexpr/syntax"
)

func diffBytes(t *testing.T, label string, want, got []byte) {
	t.Helper()
	if bytesEqual(want, got) {
		return
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(fmt.Sprintf("% x", want), fmt.Sprintf("% x", got), false)
	t.Fatalf(dedent.Dedent(`
		%s: bytecode mismatch
		  want: % x
		  got:  % x
		  diff: %s
		`), label, want, got, dmp.DiffPrettyText(diffs))
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestCompileSingleLiteral(t *testing.T) {
	prog, err := Compile("a", syntax.Emacs)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	want := []byte{byte(OpExact), 1, 'a', byte(OpEnd)}
	diffBytes(t, "a", want, prog.Code)
}

func TestCompileTwoLiterals(t *testing.T) {
	prog, err := Compile("ab", syntax.Emacs)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	want := []byte{
		byte(OpExact), 1, 'a',
		byte(OpExact), 1, 'b',
		byte(OpEnd),
	}
	diffBytes(t, "ab", want, prog.Code)
}

func TestCompileStar(t *testing.T) {
	prog, err := Compile("a*", syntax.Emacs)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	want := []byte{
		byte(OpFailureJump), 6, 0,
		byte(OpExact), 1, 'a',
		byte(OpStarJump), 0xF7, 0xFF,
		byte(OpEnd),
	}
	diffBytes(t, "a*", want, prog.Code)
}

func TestCompileAlternation(t *testing.T) {
	prog, err := Compile("a|b", syntax.AWK)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	want := []byte{
		byte(OpFailureJump), 6, 0,
		byte(OpExact), 1, 'a',
		byte(OpJump), 3, 0,
		byte(OpExact), 1, 'b',
		byte(OpEnd),
	}
	diffBytes(t, "a|b", want, prog.Code)
}

func TestCompileUnmatchedCloseParenIsLiteral(t *testing.T) {
	prog, err := Compile(")", syntax.Emacs)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	want := []byte{byte(OpExact), 1, ')', byte(OpEnd)}
	diffBytes(t, ")", want, prog.Code)
}

func TestCompileUnclosedOpenParenTolerated(t *testing.T) {
	// Emacs requires \( \) to delimit groups, so a bare '(' is just a
	// literal and this isn't exercising the tolerance; use AWK, where
	// '(' is unquoted, to leave a group open at end of pattern.
	_, err := Compile("(a", syntax.AWK)
	if err != nil {
		t.Fatalf("unclosed group should compile without error, got: %v", err)
	}
}

func TestCompileBadBackReferenceZero(t *testing.T) {
	_, err := Compile(`\0`, syntax.Emacs)
	if err == nil {
		t.Fatal("expected BadBackReference for \\0")
	}
}

func TestCompileBadHexEscapeOutOfRange(t *testing.T) {
	_, err := Compile(`\xFF`, syntax.Profile(syntax.AnsiHex))
	if err == nil {
		t.Fatal("expected BadHexEscape for \\xFF (> 0x7F)")
	}
}

func TestCompilePrematureEndInClass(t *testing.T) {
	_, err := Compile("[abc", syntax.Emacs)
	if err == nil {
		t.Fatal("expected PrematureEnd for unterminated class")
	}
}
