package marker

import "github.com/dshills/textcore/internal/engine/textbuf"

// Bias resolves the ambiguity when text is inserted exactly at a
// marker's position.
type Bias uint8

const (
	// BiasBackward keeps the marker before text inserted at its
	// position. This is the default.
	BiasBackward Bias = iota

	// BiasForward moves the marker to the end of text inserted at its
	// position.
	BiasForward
)

// Marker anchors a position in a buffer. Create markers through a
// Registry; a zero Marker is permanently detached.
type Marker struct {
	buf     *textbuf.Buffer
	charPos textbuf.CharPos
	bytePos textbuf.BytePos
	bias    Bias
}

// Buffer returns the buffer the marker points into, or nil if the
// marker is detached.
func (m *Marker) Buffer() *textbuf.Buffer {
	if m == nil {
		return nil
	}
	return m.buf
}

// Position returns the marker's character position. The second return
// is false when the marker is detached.
func (m *Marker) Position() (textbuf.CharPos, bool) {
	if m == nil || m.buf == nil {
		return 0, false
	}
	return m.charPos, true
}

// BytePosition returns the marker's byte position. The second return is
// false when the marker is detached.
func (m *Marker) BytePosition() (textbuf.BytePos, bool) {
	if m == nil || m.buf == nil {
		return 0, false
	}
	return m.bytePos, true
}

// Bias returns the marker's insertion bias.
func (m *Marker) Bias() Bias {
	if m == nil {
		return BiasBackward
	}
	return m.bias
}
