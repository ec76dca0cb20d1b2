package charset

import "sort"

// Range represents an inclusive range of consecutive code points.
//
// If Lo < Hi, this Range represents Lo, Lo+1, ..., Hi-1, Hi.
//
// If Lo == Hi, this Range represents the single code point Lo.
//
// If Lo > Hi, this Range represents the null set.
type Range struct {
	Lo rune
	Hi rune
}

// Ranges returns a Matcher that matches any code point falling in one of
// the given Range entries.
//
// This is the representation the compiler emits for a bracket expression
// (§4.3): a handful of disjoint ranges, coalesced and sorted by Lo so that
// Match can binary-search them.
func Ranges(rs ...Range) Matcher {
	return makeRange(rs)
}

type mRange struct {
	Ranges []Range
}

var _ Matcher = (*mRange)(nil)

func (m *mRange) Match(r rune) bool {
	i := sort.Search(len(m.Ranges), func(i int) bool {
		return m.Ranges[i].Hi >= r
	})
	if i >= len(m.Ranges) {
		return false
	}
	rg := m.Ranges[i]
	return rg.Lo <= r && r <= rg.Hi
}

func (m *mRange) ForEach(f func(r rune)) {
	for _, rg := range m.Ranges {
		for x := rg.Lo; x <= rg.Hi; x++ {
			f(x)
		}
	}
}

func (m *mRange) String() string {
	return genericString(m)
}

func makeRange(rs []Range) *mRange {
	return &mRange{Ranges: coalesceRanges(rs)}
}

// RangesOf returns the coalesced, sorted Range list backing a Matcher
// built by Ranges, for callers (the bytecode compiler's Set instruction)
// that need to serialize the set rather than just query it. It returns
// nil for any Matcher not built by Ranges.
func RangesOf(m Matcher) []Range {
	if r, ok := m.(*mRange); ok {
		return r.Ranges
	}
	return nil
}

// coalesceRanges guarantees that:
//
//   - all Range entries have Lo <= Hi
//   - there are no overlapping Range entries
//   - the Range entries are sorted by Lo
//     (implied: out[i-1].Hi < out[i].Lo)
func coalesceRanges(a []Range) []Range {
	b := make([]Range, 0, len(a))
	for _, r := range a {
		if r.Hi >= r.Lo {
			b = append(b, r)
		}
	}
	sort.Slice(b, func(i, j int) bool { return b[i].Lo < b[j].Lo })

	if len(b) < 2 {
		return b
	}

	c := make([]Range, 0, len(b))
	var lastHi rune
	var have bool
	for _, r := range b {
		switch {
		case have && lastHi >= r.Hi:
			// fully overlapping, discard the smaller range
		case have && lastHi+1 >= r.Lo:
			// adjacent or overlapping, merge
			c[len(c)-1].Hi = r.Hi
			lastHi = r.Hi
		default:
			c = append(c, r)
			lastHi = r.Hi
			have = true
		}
	}
	return c
}
