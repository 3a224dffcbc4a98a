package textbuf

import "fmt"

// CharPos is a 1-origin position counting decoded characters from the
// buffer start.
type CharPos int64

// BytePos is a 1-origin position counting raw encoded bytes from the
// buffer start. For any position in a buffer, CharPos <= BytePos.
type BytePos int64

// Buffer positions start at 1; there is no position 0.
const (
	BegChar CharPos = 1
	BegByte BytePos = 1
)

// String returns a human-readable representation of the position.
func (p CharPos) String() string {
	return fmt.Sprintf("c%d", int64(p))
}

// String returns a human-readable representation of the position.
func (p BytePos) String() string {
	return fmt.Sprintf("b%d", int64(p))
}

// GapOffset returns the storage displacement caused by the gap for byte
// position pos: the gap size when pos is at or past the gap start, zero
// otherwise. Every addressing operation composes with this.
func (b *Buffer) GapOffset(pos BytePos) int64 {
	if pos >= b.GapStartByte() {
		return b.store.GapSize()
	}
	return 0
}

// ByteIndex returns the raw storage index for byte position pos without
// gap correction. Valid only when the caller has already resolved gap
// placement (bulk access over a range known to sit on one side of the
// gap, or composed with GapOffset).
func (b *Buffer) ByteIndex(pos BytePos) int64 {
	return int64(pos - BegByte)
}

// RawByteAt returns the byte at byte position pos, gap-corrected. This
// is the canonical read primitive; every other read routes through it
// or CharAt. No range checking.
func (b *Buffer) RawByteAt(pos BytePos) byte {
	return b.store.ReadByte(b.ByteIndex(pos) + b.GapOffset(pos))
}

// CharAt returns the character whose encoding begins at byte position
// pos. In a unibyte buffer this is the single byte widened to a rune.
// In a multibyte buffer the character is decoded in place; if pos does
// not point at a head byte the read degrades to the single byte at pos.
// No range checking.
func (b *Buffer) CharAt(pos BytePos) rune {
	if !b.multibyte {
		return rune(b.RawByteAt(pos))
	}
	idx := b.ByteIndex(pos) + b.GapOffset(pos)
	n := b.codec.LengthByHead(b.store.ReadByte(idx))

	// A character never straddles the gap, so the bytes are contiguous.
	var p [4]byte
	for i := 0; i < n; i++ {
		p[i] = b.store.ReadByte(idx + int64(i))
	}
	r, _ := b.codec.Decode(p[:n])
	return r
}

// BytePosOf converts a character position to the byte position of the
// same location. In a unibyte buffer this is the identity; in a
// multibyte buffer it walks forward from the buffer start. The position
// must lie within [BegChar, EndChar].
func (b *Buffer) BytePosOf(pos CharPos) BytePos {
	if !b.multibyte {
		return BytePos(pos)
	}
	bp := BegByte
	for c := BegChar; c < pos; c++ {
		bp = b.NextBoundary(bp)
	}
	return bp
}

// CharPosOf converts a byte position to the character position of the
// same location. The position must be a character boundary within
// [BegByte, EndByte].
func (b *Buffer) CharPosOf(pos BytePos) CharPos {
	if !b.multibyte {
		return CharPos(pos)
	}
	c := BegChar
	for bp := BegByte; bp < pos; bp = b.NextBoundary(bp) {
		c++
	}
	return c
}
