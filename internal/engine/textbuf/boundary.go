package textbuf

import "github.com/dshills/textcore/internal/engine/charset"

// NextBoundary advances byte position pos to the next character
// boundary: the head byte at pos implies the character's encoded
// length. Relies on the storage guard bytes at the gap start and the
// content end always reading as zero, which bounds the step without a
// range check. No range checking of pos itself.
func (b *Buffer) NextBoundary(pos BytePos) BytePos {
	return pos + BytePos(b.codec.LengthByHead(b.RawByteAt(pos)))
}

// PrevBoundary moves byte position pos back to the previous character
// boundary. It steps back one byte, then scans backward while the byte
// is a continuation byte. Well-formed content bounds the scan to the
// maximum encoded width; when pos-1 is already a head byte the loop
// body runs zero times. No range checking of pos.
func (b *Buffer) PrevBoundary(pos BytePos) BytePos {
	p := pos - 1
	for !b.codec.IsHead(b.RawByteAt(p)) {
		p--
	}
	return p
}

// Grapheme clusters are unbounded in principle (ZWJ sequences), but a
// window this size covers everything that occurs in practice.
const graphemeWindow = 64

// NextGrapheme advances byte position pos past one grapheme cluster.
// Unlike NextBoundary this may step over several characters, e.g. a
// combining accent or an emoji sequence. pos must be a character
// boundary inside the content.
func (b *Buffer) NextGrapheme(pos BytePos) BytePos {
	end := b.EndByte()
	buf := make([]byte, 0, graphemeWindow)
	for p := pos; p < end && len(buf) < graphemeWindow; p++ {
		buf = append(buf, b.RawByteAt(p))
	}
	n := charset.FirstGraphemeLen(string(buf))
	if n == 0 {
		return pos
	}
	return pos + BytePos(n)
}
