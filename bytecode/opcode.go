// Package bytecode implements the compiled instruction set (§3, §6.4),
// the pattern compiler (§4.2-4.3), and the backtracking matcher VM
// (§4.4). The split between "what the compiler emits" and "what the VM
// executes" mirrors the teacher's peggyvm package, which keeps its
// OpCode/Op/Assembler/Execution types in one cohesive package rather
// than scattering them across the module.
package bytecode

import "fmt"

// Op is the compiled-instruction opcode set (§3, §6.4's CompiledOp
// family). Numeric values are stable wire-format values, not just
// internal enumerants.
type Op uint8

const (
	OpEnd Op = iota
	OpBol
	OpEol
	OpSet
	OpExact
	OpAnyChar
	OpStartMemory
	OpEndMemory
	OpMatchMemory
	OpJump
	OpStarJump
	OpFailureJump
	OpUpdateFailureJump
	OpDummyFailureJump
	OpBegBuf
	OpEndBuf
	OpWordBeg
	OpWordEnd
	OpWordBound
	OpNotWordBound
	OpSyntaxSpec
	OpNotSyntaxSpec
)

var opNames = [...]string{
	OpEnd:               "End",
	OpBol:               "Bol",
	OpEol:               "Eol",
	OpSet:               "Set",
	OpExact:             "Exact",
	OpAnyChar:           "AnyChar",
	OpStartMemory:       "StartMemory",
	OpEndMemory:         "EndMemory",
	OpMatchMemory:       "MatchMemory",
	OpJump:              "Jump",
	OpStarJump:          "StarJump",
	OpFailureJump:       "FailureJump",
	OpUpdateFailureJump: "UpdateFailureJump",
	OpDummyFailureJump:  "DummyFailureJump",
	OpBegBuf:            "BegBuf",
	OpEndBuf:            "EndBuf",
	OpWordBeg:           "WordBeg",
	OpWordEnd:           "WordEnd",
	OpWordBound:         "WordBound",
	OpNotWordBound:      "NotWordBound",
	OpSyntaxSpec:        "SyntaxSpec",
	OpNotSyntaxSpec:     "NotSyntaxSpec",
}

// String returns a programmer-friendly name for the opcode, or
// "ILLEGAL#xx" for a value outside the known set — used by runtime error
// messages so a corrupt or hostile bytecode buffer doesn't panic while
// being described.
func (op Op) String() string {
	if int(op) < len(opNames) && opNames[op] != "" {
		return opNames[op]
	}
	return fmt.Sprintf("ILLEGAL#%02x", uint8(op))
}

// SyntaxOp is the parser's per-character operator classification (§4.2's
// plain_ops/quoted_ops tables map characters to one of these).
type SyntaxOp uint8

const (
	SynEnd SyntaxOp = iota
	SynNormal
	SynAnyChar
	SynQuote
	SynBol
	SynEol
	SynOptional
	SynStar
	SynPlus
	SynOr
	SynOpenPar
	SynClosePar
	SynMemory
	SynExtendedMemory
	SynOpenSet
	SynBegBuf
	SynEndBuf
	SynWordChar
	SynNotWordChar
	SynWordBeg
	SynWordEnd
	SynWordBound
	SynNotWordBound
)
