package bytecode

// NumRegisters is the fixed number of capture registers (§3): register 0
// is the whole match, 1..99 are user groups.
const NumRegisters = 100

// MaxNesting bounds both the compiler's group-nesting depth and its
// pending-alternation queue (§3, §7's TooComplex).
const MaxNesting = 100

// unset marks a register position as absent. Code-point indices are
// always >= 0, so -1 is free to use as a sentinel.
const unset = -1

// CaptureGroup is the start/end code-point offsets of one capture
// register, if it participated in the match.
type CaptureGroup struct {
	Start int
	End   int
	Valid bool
}

// Captures holds every register produced by a single successful match
// (§6.1's Captures value).
type Captures struct {
	groups [NumRegisters]CaptureGroup
}

// Get returns the (start, end) code-point bounds of register i, if set.
func (c *Captures) Get(i int) (start, end int, ok bool) {
	if i < 0 || i >= NumRegisters || !c.groups[i].Valid {
		return 0, 0, false
	}
	return c.groups[i].Start, c.groups[i].End, true
}

// Len returns one past the highest populated register.
func (c *Captures) Len() int {
	n := 0
	for i, g := range c.groups {
		if g.Valid {
			n = i + 1
		}
	}
	return n
}

func (c *Captures) set(i, start, end int) {
	c.groups[i] = CaptureGroup{Start: start, End: end, Valid: true}
}
