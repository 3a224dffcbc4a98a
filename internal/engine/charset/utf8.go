package charset

import "unicode/utf8"

// lengthByHead maps a head byte to the byte length of the character it
// begins. Continuation bytes and invalid heads map to 1.
var lengthByHead = func() [256]uint8 {
	var t [256]uint8
	for b := 0; b < 256; b++ {
		switch {
		case b < 0x80:
			t[b] = 1
		case b < 0xC0: // continuation byte
			t[b] = 1
		case b < 0xE0:
			t[b] = 2
		case b < 0xF0:
			t[b] = 3
		case b < 0xF8:
			t[b] = 4
		default:
			t[b] = 1
		}
	}
	return t
}()

// UTF8 is the Codec for UTF-8 encoded text.
type UTF8 struct{}

// IsHead reports whether b begins a UTF-8 sequence. Continuation bytes
// have the form 10xxxxxx; every other byte value is a head.
func (UTF8) IsHead(b byte) bool {
	return b&0xC0 != 0x80
}

// LengthByHead returns the sequence length implied by head byte b.
func (UTF8) LengthByHead(b byte) int {
	return int(lengthByHead[b])
}

// Decode decodes one character from p. Malformed input degrades to a
// single-byte read of p[0] rather than producing a replacement rune, so
// callers see the raw byte they are actually positioned on.
func (UTF8) Decode(p []byte) (rune, int) {
	if len(p) == 0 {
		return 0, 0
	}
	r, size := utf8.DecodeRune(p)
	if r == utf8.RuneError && size <= 1 {
		return rune(p[0]), 1
	}
	return r, size
}
