package bytecode

// Limits bounds how much work a single match attempt may do (§5, §6.2).
// It is a plain struct, the same shape as the teacher's inline Exec
// defaults — two numbers don't need a configuration-file parser.
type Limits struct {
	// MaxTicks bounds the number of instruction dispatches. Zero means
	// unbounded (§6.2's Option<usize> None).
	MaxTicks int
	// MaxFailures bounds the failure-stack depth.
	MaxFailures int
}

// DefaultLimits returns the §6.2 defaults: unbounded ticks, a 100,000
// entry failure stack.
func DefaultLimits() Limits {
	return Limits{MaxTicks: 0, MaxFailures: 100000}
}
