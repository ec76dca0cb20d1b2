package bytecode

import "unicode/utf8"

// appendRune writes a code point as a 1-byte UTF-8 length prefix followed
// by that many UTF-8 bytes (§3's Exact/Set argument encoding).
func appendRune(buf []byte, r rune) []byte {
	var tmp [4]byte
	n := utf8.EncodeRune(tmp[:], r)
	buf = append(buf, byte(n))
	return append(buf, tmp[:n]...)
}

// readRune decodes one length-prefixed code point starting at pos,
// returning the rune and the offset of the byte following it.
func readRune(buf []byte, pos int) (r rune, next int, ok bool) {
	if pos >= len(buf) {
		return 0, pos, false
	}
	n := int(buf[pos])
	pos++
	if n == 0 || pos+n > len(buf) {
		return 0, pos, false
	}
	r, _ = utf8.DecodeRune(buf[pos : pos+n])
	return r, pos + n, true
}
