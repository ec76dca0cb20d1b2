package bytecode

import "github.com/arrowmatic/regexpr/syntax"

// Program is the immutable output of Compile (§3's "Compiled Pattern"):
// a byte buffer of instructions, the translation map it was compiled
// with, and the profile that produced it. The Matcher VM and Search
// Driver only ever read a Program; nothing mutates it after Compile
// returns.
type Program struct {
	Code      []byte
	Translate Translator
	Profile   syntax.Profile
	// NumRegs is the highest register number the compiler assigned; it
	// is informational only, the register arrays are always sized
	// NumRegisters.
	NumRegs int
}
