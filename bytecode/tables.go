package bytecode

import "github.com/arrowmatic/regexpr/syntax"

// buildTables constructs the two operator maps §4.2 describes:
// plain_ops for an unquoted character, quoted_ops for a character
// following a backslash. Which of ( ) | + ? land in which table is driven
// entirely by the syntax profile.
func buildTables(p syntax.Profile) (plain, quoted map[rune]SyntaxOp) {
	plain = make(map[rune]SyntaxOp, 16)
	quoted = make(map[rune]SyntaxOp, 16)

	plain['\\'] = SynQuote
	plain['*'] = SynStar
	plain['['] = SynOpenSet
	plain['^'] = SynBol
	plain['$'] = SynEol
	plain['.'] = SynAnyChar

	if p.NeedsBackslashParens() {
		quoted['('] = SynOpenPar
		quoted[')'] = SynClosePar
	} else {
		plain['('] = SynOpenPar
		plain[')'] = SynClosePar
	}

	if p.NeedsBackslashVBar() {
		quoted['|'] = SynOr
	} else {
		plain['|'] = SynOr
	}

	if p.NeedsBackslashPlusQM() {
		quoted['+'] = SynPlus
		quoted['?'] = SynOptional
	} else {
		plain['+'] = SynPlus
		plain['?'] = SynOptional
	}

	if p.NewlineIsOr() {
		plain['\n'] = SynOr
	}

	for d := rune('0'); d <= '9'; d++ {
		quoted[d] = SynMemory
	}

	if !p.GNUExtensionsDisabled() {
		quoted['w'] = SynWordChar
		quoted['W'] = SynNotWordChar
		quoted['<'] = SynWordBeg
		quoted['>'] = SynWordEnd
		quoted['b'] = SynWordBound
		quoted['B'] = SynNotWordBound
		quoted['`'] = SynBegBuf
		quoted['\''] = SynEndBuf
	}

	if p.AnsiSequences() {
		quoted['v'] = SynExtendedMemory
	}

	return plain, quoted
}

// precedenceOf is the 256-entry precedence table of §4.2: default 4,
// with Or, Bol/Eol, ClosePar and End singled out. tight is
// syntax.Profile.TightVBar().
func precedenceOf(op SyntaxOp, tight bool) int {
	switch op {
	case SynOr:
		if tight {
			return 3
		}
		return 2
	case SynBol, SynEol:
		if tight {
			return 2
		}
		return 3
	case SynClosePar:
		return 1
	case SynEnd:
		return 0
	default:
		return 4
	}
}
