package bytecode

import "github.com/arrowmatic/regexpr/charset"

// failureEntry is one entry of the VM's failure stack (§3): a resumption
// point to restore on the next mismatch.
type failureEntry struct {
	textPos int
	codePos int
}

// Execution is the transient VM state for a single match attempt (§3's
// "VM State"). It is created per match invocation and discarded on
// return; nothing about it is shared across calls.
type Execution struct {
	prog   *Program
	input  []rune
	limits Limits

	ticks    int
	failures []failureEntry

	regStart [NumRegisters]int
	regEnd   [NumRegisters]int
	regMaybe [NumRegisters]int
}

// NewExecution builds a fresh VM state for one attempt at running prog
// against input (§4.5's "fresh VM state per candidate"); the start
// position is passed to Run.
func NewExecution(prog *Program, input []rune, limits Limits) *Execution {
	e := &Execution{prog: prog, input: input, limits: limits}
	for i := range e.regStart {
		e.regStart[i] = unset
		e.regEnd[i] = unset
		e.regMaybe[i] = unset
	}
	return e
}

func (e *Execution) fold(r rune) rune {
	if e.prog.Translate != nil {
		return e.prog.Translate(r)
	}
	return r
}

// Run interprets the compiled buffer from start, returning the end
// position of a successful match (§4.4's Contract). ok is false, err is
// nil for an ordinary non-match; err is non-nil only for a limit breach
// or malformed bytecode.
func (e *Execution) Run(start int) (end int, ok bool, err error) {
	textPos := start
	codePos := 0
	code := e.prog.Code

	for {
		e.ticks++
		if e.limits.MaxTicks > 0 && e.ticks > e.limits.MaxTicks {
			return 0, false, &ExecError{Err: ErrTimeout, XP: codePos, DP: textPos}
		}
		if len(e.failures) >= e.limits.MaxFailures {
			return 0, false, &ExecError{Err: ErrExecutionError, XP: codePos, DP: textPos}
		}
		if codePos >= len(code) {
			return 0, false, &ExecError{Err: ErrExecutionError, XP: codePos, DP: textPos}
		}

		op := Op(code[codePos])
		codePos++
		fail := false

		switch op {
		case OpEnd:
			return textPos, true, nil

		case OpBol:
			fail = !(textPos == 0 || e.input[textPos-1] == '\n')

		case OpEol:
			fail = !(textPos == len(e.input) || e.input[textPos] == '\n')

		case OpExact:
			want, next, rok := readRune(code, codePos)
			if !rok {
				return 0, false, &ExecError{Err: ErrExecutionError, XP: codePos, DP: textPos}
			}
			codePos = next
			if textPos >= len(e.input) || e.fold(e.input[textPos]) != want {
				fail = true
			} else {
				textPos++
			}

		case OpAnyChar:
			if textPos >= len(e.input) || e.input[textPos] == '\n' {
				fail = true
			} else {
				textPos++
			}

		case OpSet:
			m, next, derr := decodeSet(code, codePos)
			if derr != nil {
				return 0, false, &ExecError{Err: derr, XP: codePos, DP: textPos}
			}
			codePos = next
			if textPos >= len(e.input) || !m.Match(e.fold(e.input[textPos])) {
				fail = true
			} else {
				textPos++
			}

		case OpStartMemory:
			r := int(code[codePos])
			codePos++
			e.regMaybe[r] = textPos

		case OpEndMemory:
			r := int(code[codePos])
			codePos++
			e.regStart[r] = e.regMaybe[r]
			e.regEnd[r] = textPos

		case OpMatchMemory:
			r := int(code[codePos])
			codePos++
			s, en := e.regStart[r], e.regEnd[r]
			if s < 0 || en < 0 {
				fail = true
				break
			}
			n := en - s
			if textPos+n > len(e.input) {
				fail = true
				break
			}
			for i := 0; i < n; i++ {
				if e.fold(e.input[textPos+i]) != e.fold(e.input[s+i]) {
					fail = true
					break
				}
			}
			if !fail {
				textPos += n
			}

		case OpJump, OpDummyFailureJump:
			disp := readDisp(code, codePos)
			codePos = codePos + 2 + disp

		case OpFailureJump:
			disp := readDisp(code, codePos)
			target := codePos + 2 + disp
			codePos += 2
			if len(e.failures) >= e.limits.MaxFailures {
				return 0, false, &ExecError{Err: ErrExecutionError, XP: codePos, DP: textPos}
			}
			e.failures = append(e.failures, failureEntry{textPos: textPos, codePos: target})

		case OpStarJump, OpUpdateFailureJump:
			disp := readDisp(code, codePos)
			target := codePos + 2 + disp
			// On the first pass through a + loop the DummyFailureJump has
			// skipped the loop's FailureJump, so the stack may be empty;
			// then there is nothing to update and only the jump is taken.
			if len(e.failures) > 0 {
				e.failures[len(e.failures)-1].textPos = textPos
			}
			codePos = target

		case OpWordBeg:
			fail = !e.atWordBeg(textPos)
		case OpWordEnd:
			fail = !e.atWordEnd(textPos)
		case OpWordBound:
			fail = !e.atWordBoundary(textPos)
		case OpNotWordBound:
			fail = !e.notAtWordBoundary(textPos)

		case OpSyntaxSpec:
			codePos++ // the syntax-class argument byte, always 1 (word char)
			if textPos >= len(e.input) || !isWordChar(e.input[textPos]) {
				fail = true
			} else {
				textPos++
			}
		case OpNotSyntaxSpec:
			codePos++
			if textPos >= len(e.input) || isWordChar(e.input[textPos]) {
				fail = true
			} else {
				textPos++
			}

		case OpBegBuf:
			fail = textPos != 0
		case OpEndBuf:
			fail = textPos != len(e.input)

		default:
			return 0, false, &ExecError{Err: ErrExecutionError, XP: codePos - 1, DP: textPos}
		}

		if fail {
			if len(e.failures) == 0 {
				return 0, false, nil
			}
			top := e.failures[len(e.failures)-1]
			e.failures = e.failures[:len(e.failures)-1]
			textPos = top.textPos
			codePos = top.codePos
		}
	}
}

// Captures snapshots the register arrays after a successful Run.
func (e *Execution) Captures() *Captures {
	c := &Captures{}
	for i := 0; i < NumRegisters; i++ {
		if e.regStart[i] >= 0 && e.regEnd[i] >= 0 {
			c.set(i, e.regStart[i], e.regEnd[i])
		}
	}
	return c
}

func isWordChar(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_'
}

func (e *Execution) atWordBeg(pos int) bool {
	prev := pos > 0 && isWordChar(e.input[pos-1])
	next := pos < len(e.input) && isWordChar(e.input[pos])
	return !prev && next
}

func (e *Execution) atWordEnd(pos int) bool {
	prev := pos > 0 && isWordChar(e.input[pos-1])
	next := pos < len(e.input) && isWordChar(e.input[pos])
	return prev && !next
}

func (e *Execution) atWordBoundary(pos int) bool {
	switch {
	case pos == 0:
		return pos < len(e.input) && isWordChar(e.input[pos])
	case pos == len(e.input):
		return isWordChar(e.input[pos-1])
	default:
		return isWordChar(e.input[pos-1]) != isWordChar(e.input[pos])
	}
}

// notAtWordBoundary implements NotWordBound, which per §4.4 never
// matches at the text boundaries even though a naive negation of
// atWordBoundary would.
func (e *Execution) notAtWordBoundary(pos int) bool {
	if pos == 0 || pos == len(e.input) {
		return false
	}
	return !e.atWordBoundary(pos)
}

func readDisp(code []byte, pos int) int {
	u := uint16(code[pos]) | uint16(code[pos+1])<<8
	return int(int16(u))
}

func decodeSet(code []byte, pos int) (charset.Matcher, int, error) {
	if pos+2 > len(code) {
		return nil, pos, ErrExecutionError
	}
	complement := code[pos] != 0
	pos++
	n := int(code[pos])
	pos++

	ranges := make([]charset.Range, 0, n)
	for i := 0; i < n; i++ {
		lo, next, ok := readRune(code, pos)
		if !ok {
			return nil, pos, ErrExecutionError
		}
		pos = next
		hi, next2, ok2 := readRune(code, pos)
		if !ok2 {
			return nil, pos, ErrExecutionError
		}
		pos = next2
		ranges = append(ranges, charset.Range{Lo: lo, Hi: hi})
	}

	var m charset.Matcher = charset.Ranges(ranges...)
	if complement {
		m = charset.Not(m)
	}
	return m, pos, nil
}
