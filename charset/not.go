package charset

// maxRune is the highest valid Unicode scalar value.
const maxRune = 0x10FFFF

// All returns a Matcher that matches every code point.
func All() Matcher { return singletonAll }

type mAll struct{}

var singletonAll = &mAll{}

var _ Matcher = (*mAll)(nil)

func (m *mAll) Match(r rune) bool      { return true }
func (m *mAll) ForEach(f func(r rune)) { forEachRune(0, maxRune, f) }
func (m *mAll) String() string         { return "." }

// None returns a Matcher that never matches any code point.
func None() Matcher { return singletonNone }

type mNone struct{}

var singletonNone = &mNone{}

var _ Matcher = (*mNone)(nil)

func (m *mNone) Match(r rune) bool      { return false }
func (m *mNone) ForEach(f func(r rune)) {}
func (m *mNone) String() string         { return "!." }

// Not returns a Matcher that inverts the given Matcher. This is how the
// VM applies a leading ^ in a bracket expression (§4.3): the compiler
// records it as the Set instruction's complement byte, and at match time
// the decoded range list is wrapped in Not, instead of every call site
// threading a complement bool through Match.
func Not(m Matcher) Matcher {
	if neg, ok := m.(*mNegation); ok {
		return neg.Inner
	}
	return &mNegation{Inner: m}
}

type mNegation struct {
	Inner Matcher
}

var _ Matcher = (*mNegation)(nil)

func (m *mNegation) Match(r rune) bool      { return !m.Inner.Match(r) }
func (m *mNegation) ForEach(f func(r rune)) { genericForEach(m, f) }
func (m *mNegation) String() string         { return "!" + m.Inner.String() }

func forEachRune(lo, hi rune, f func(r rune)) {
	for x := lo; x <= hi; x++ {
		f(x)
	}
}

func genericForEach(m Matcher, f func(r rune)) {
	for x := rune(0); x <= maxRune; x++ {
		if m.Match(x) {
			f(x)
		}
	}
}

func genericString(m Matcher) string {
	buf := make([]byte, 0, 16)
	buf = append(buf, '[')
	first := true
	m.ForEach(func(r rune) {
		if !first {
			buf = append(buf, ',')
		}
		first = false
		buf = appendRuneLiteral(buf, r)
	})
	buf = append(buf, ']')
	return string(buf)
}

func appendRuneLiteral(buf []byte, r rune) []byte {
	const hex = "0123456789abcdef"
	buf = append(buf, '\\', 'x')
	if r < 0x100 {
		return append(buf, hex[(r>>4)&0xf], hex[r&0xf])
	}
	b := []byte(string(r))
	for _, c := range b {
		buf = append(buf, hex[(c>>4)&0xf], hex[c&0xf])
	}
	return buf
}
