package charset

import "testing"

func TestRangesMatch(t *testing.T) {
	m := Ranges(Range{'a', 'z'}, Range{'0', '9'})
	for _, r := range []rune{'a', 'm', 'z', '0', '5', '9'} {
		if !m.Match(r) {
			t.Errorf("expected %q to match", r)
		}
	}
	for _, r := range []rune{'A', ' ', '-', ':'} {
		if m.Match(r) {
			t.Errorf("expected %q not to match", r)
		}
	}
}

func TestRangesCoalesceAdjacent(t *testing.T) {
	m := makeRange([]Range{{'a', 'm'}, {'n', 'z'}})
	if len(m.Ranges) != 1 {
		t.Fatalf("expected adjacent ranges to coalesce into one, got %v", m.Ranges)
	}
	if m.Ranges[0] != (Range{'a', 'z'}) {
		t.Fatalf("expected [a-z], got %v", m.Ranges[0])
	}
}

func TestRangesDropNullRanges(t *testing.T) {
	m := makeRange([]Range{{'z', 'a'}})
	if len(m.Ranges) != 0 {
		t.Fatalf("expected null range to be dropped, got %v", m.Ranges)
	}
	if m.Match('a') {
		t.Fatalf("empty range matcher should match nothing")
	}
}

func TestNotComplementDuality(t *testing.T) {
	m := Ranges(Range{'a', 'z'})
	inv := Not(m)
	for _, r := range []rune{'a', 'm', 'z', 'A', '0', ' '} {
		if m.Match(r) == inv.Match(r) {
			t.Errorf("Not(m) should disagree with m on %q", r)
		}
	}
}

func TestNotNotCancels(t *testing.T) {
	m := Ranges(Range{'a', 'z'})
	if Not(Not(m)) != Matcher(m) {
		t.Fatalf("Not(Not(m)) should return m unchanged")
	}
}

func TestAllAndNone(t *testing.T) {
	if !All().Match('x') {
		t.Fatal("All() should match everything")
	}
	if None().Match('x') {
		t.Fatal("None() should match nothing")
	}
}

func TestExactly(t *testing.T) {
	m := Exactly('λ')
	if !m.Match('λ') {
		t.Fatal("Exactly should match its own rune")
	}
	if m.Match('Λ') {
		t.Fatal("Exactly should not match a different rune")
	}
}

func TestUnicodeRange(t *testing.T) {
	// Greek lowercase alpha..omega (seed scenario #10).
	m := Ranges(Range{'α', 'ω'})
	if !m.Match('λ') {
		t.Fatal("λ should be in [α-ω]")
	}
	if m.Match('Α') {
		t.Fatal("capital Α should not be in [α-ω]")
	}
}
