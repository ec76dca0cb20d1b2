// Package charset implements composable code-point set matchers used by
// the compiled character-class instruction (§4.3). It generalizes the
// teacher's byte-alphabet byteset package to the much larger and sparser
// rune alphabet a Unicode-aware engine has to work over.
package charset

// Matcher is a predicate over code points.
//
// For the sake of all that is good and holy, implementations of Matcher
// must not change their state on a call to Match.
type Matcher interface {
	// Match returns true iff r is in the set.
	Match(r rune) bool

	// ForEach calls f exactly once for each code point in the set, in
	// ascending order. Only safe to call on sets known to be small and
	// finite; All and Not(small set) will iterate the whole scalar range.
	ForEach(f func(r rune))

	// String returns a string representation of the set, for error
	// messages and debug output.
	String() string
}
