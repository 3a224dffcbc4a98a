package marker

import (
	"github.com/google/uuid"

	"github.com/dshills/textcore/internal/engine/textbuf"
)

// Registry owns every marker in the process and keeps them in sync with
// buffer mutations. It implements textbuf.EditListener and registers
// itself with each buffer the first time a marker is created there.
//
// Like the buffers it tracks, a Registry is single-threaded by
// contract.
type Registry struct {
	byBuffer map[uuid.UUID][]*Marker
	tracked  map[uuid.UUID]bool
}

// NewRegistry creates an empty marker registry.
func NewRegistry() *Registry {
	return &Registry{
		byBuffer: make(map[uuid.UUID][]*Marker),
		tracked:  make(map[uuid.UUID]bool),
	}
}

// Create returns a new marker anchored at character position at in b.
func (r *Registry) Create(b *textbuf.Buffer, at textbuf.CharPos, bias Bias) *Marker {
	m := &Marker{bias: bias}
	r.Move(m, b, at)
	return m
}

// Move re-anchors m at character position at in b, attaching it to b if
// it was detached or pointed elsewhere. The byte position is resolved
// here so later lookups are O(1).
func (r *Registry) Move(m *Marker, b *textbuf.Buffer, at textbuf.CharPos) {
	if m.buf != nil && m.buf != b {
		r.remove(m)
	}
	if m.buf == nil {
		r.byBuffer[b.ID()] = append(r.byBuffer[b.ID()], m)
		if !r.tracked[b.ID()] {
			b.AddEditListener(r)
			r.tracked[b.ID()] = true
		}
	}
	m.buf = b
	m.charPos = at
	m.bytePos = b.BytePosOf(at)
}

// Detach removes m from its buffer. Detaching an already-detached
// marker is a no-op.
func (r *Registry) Detach(m *Marker) {
	if m == nil || m.buf == nil {
		return
	}
	r.remove(m)
	m.buf = nil
}

// Count returns the number of markers attached to b.
func (r *Registry) Count(b *textbuf.Buffer) int {
	return len(r.byBuffer[b.ID()])
}

func (r *Registry) remove(m *Marker) {
	id := m.buf.ID()
	ms := r.byBuffer[id]
	for i, other := range ms {
		if other == m {
			ms[i] = ms[len(ms)-1]
			r.byBuffer[id] = ms[:len(ms)-1]
			return
		}
	}
}

// TextInserted shifts markers of b for an insertion of chars/bytes at
// the given position. Markers exactly at the position move only with
// BiasForward.
func (r *Registry) TextInserted(b *textbuf.Buffer, at textbuf.CharPos, atByte textbuf.BytePos, chars, bytes int64) {
	for _, m := range r.byBuffer[b.ID()] {
		if m.charPos > at || (m.charPos == at && m.bias == BiasForward) {
			m.charPos += textbuf.CharPos(chars)
			m.bytePos += textbuf.BytePos(bytes)
		}
	}
}

// TextDeleted shifts markers of b for a deletion of chars/bytes
// starting at the given position. Markers inside the deleted range
// collapse to its start.
func (r *Registry) TextDeleted(b *textbuf.Buffer, from textbuf.CharPos, fromByte textbuf.BytePos, chars, bytes int64) {
	end := from + textbuf.CharPos(chars)
	for _, m := range r.byBuffer[b.ID()] {
		switch {
		case m.charPos >= end:
			m.charPos -= textbuf.CharPos(chars)
			m.bytePos -= textbuf.BytePos(bytes)
		case m.charPos > from:
			m.charPos = from
			m.bytePos = fromByte
		}
	}
}
