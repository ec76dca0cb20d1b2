package bytecode

import "errors"

// Search implements §4.5: starting at start, it walks candidate anchor
// positions toward start+span (forward if span >= 0, backward
// otherwise), clamped to [0, len(input)], running a fresh VM at each one
// until a match succeeds or the range is exhausted. It returns the
// winning start and end position, or ok=false if nothing matched.
//
// Two VM runs happen for a successful search: this cheap first pass
// (which the caller may discard) and, via SearchCaptures, a second run
// at the winning position to collect capture registers — mirroring
// original_source's search()/match_at() split so the common case of
// checking whether a match exists at all doesn't pay for capture
// bookkeeping it won't use.
//
// Per §7, a single-position ExecutionError (failure-stack overflow) is
// not fatal to the search: the driver treats it as a non-match at that
// position and keeps walking. Timeout (and any other error) propagates
// to the caller immediately, since it signals the whole search is too
// expensive to continue, not just this one position.
func Search(prog *Program, input []rune, start, span int, limits Limits) (matchStart, matchEnd int, ok bool, err error) {
	lo, hi := start, start+span
	step := 1
	if span < 0 {
		lo, hi = start+span, start
		step = -1
	}
	if lo < 0 {
		lo = 0
	}
	if hi > len(input) {
		hi = len(input)
	}

	if step > 0 {
		for pos := lo; pos <= hi; pos++ {
			end, matched, rerr := NewExecution(prog, input, limits).Run(pos)
			if rerr != nil {
				if errors.Is(rerr, ErrExecutionError) {
					continue
				}
				return 0, 0, false, rerr
			}
			if matched {
				return pos, end, true, nil
			}
		}
		return 0, 0, false, nil
	}

	for pos := hi; pos >= lo; pos-- {
		end, matched, rerr := NewExecution(prog, input, limits).Run(pos)
		if rerr != nil {
			if errors.Is(rerr, ErrExecutionError) {
				continue
			}
			return 0, 0, false, rerr
		}
		if matched {
			return pos, end, true, nil
		}
	}
	return 0, 0, false, nil
}

// SearchCaptures re-runs the VM at a start position already known to
// match, returning the full capture set (§4.5's second phase).
func SearchCaptures(prog *Program, input []rune, start int, limits Limits) (*Captures, int, bool, error) {
	exec := NewExecution(prog, input, limits)
	end, matched, err := exec.Run(start)
	if err != nil || !matched {
		return nil, 0, matched, err
	}
	caps := exec.Captures()
	caps.set(0, start, end)
	return caps, end, true, nil
}
