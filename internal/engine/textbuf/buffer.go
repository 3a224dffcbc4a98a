package textbuf

import (
	"errors"

	"github.com/google/uuid"

	"github.com/dshills/textcore/internal/engine/charset"
	"github.com/dshills/textcore/internal/engine/gapstore"
)

// Errors returned by buffer operations.
var (
	ErrReadOnly         = errors.New("buffer is read-only")
	ErrRegionOutOfRange = errors.New("region outside accessible range")
)

// EditListener observes buffer mutations. Positions refer to the buffer
// state before the edit; counts are in characters and bytes.
type EditListener interface {
	TextInserted(b *Buffer, at CharPos, atByte BytePos, chars int64, bytes int64)
	TextDeleted(b *Buffer, from CharPos, fromByte BytePos, chars int64, bytes int64)
}

// Buffer holds the live character content of one document. It is not
// safe for concurrent use; see the package comment.
type Buffer struct {
	id    uuid.UUID
	name  string
	store *gapstore.Storage
	codec charset.Codec

	multibyte bool
	endChar   CharPos // Z: one past the last character

	// Narrowing restricts the accessible range to [begv, zv].
	begvChar CharPos
	begvByte BytePos
	zvChar   CharPos
	zvByte   BytePos

	readOnly    bool
	killed      bool
	modiff      int64
	charsModiff int64
	saveModiff  int64

	// Set when cached layout assumptions may no longer hold, e.g. after
	// removing an overlay with display strings. Consumed by redisplay.
	preventDisplayOpt bool

	listeners []EditListener
}

// New creates an empty buffer.
func New(name string, opts ...Option) *Buffer {
	b := &Buffer{
		id:        uuid.New(),
		name:      name,
		codec:     charset.UTF8{},
		multibyte: true,
		endChar:   BegChar,
		begvChar:  BegChar,
		begvByte:  BegByte,
		zvChar:    BegChar,
		zvByte:    BegByte,
	}
	gap := int64(gapstore.DefaultGapSize)
	for _, opt := range opts {
		opt(b, &gap)
	}
	b.store = gapstore.New(gap)
	return b
}

// NewFromString creates a buffer holding s. The initial content does
// not count as a modification.
func NewFromString(name, s string, opts ...Option) *Buffer {
	b := New(name, opts...)
	if s != "" {
		ro := b.readOnly
		b.readOnly = false
		if _, err := b.Insert(BegChar, s); err != nil {
			panic("textbuf: insert into fresh buffer failed: " + err.Error())
		}
		b.readOnly = ro
		b.RecordSaved()
	}
	return b
}

// ID returns the buffer's stable identity.
func (b *Buffer) ID() uuid.UUID { return b.id }

// Name returns the buffer's name.
func (b *Buffer) Name() string { return b.name }

// EndChar returns one past the last character position (Z).
func (b *Buffer) EndChar() CharPos { return b.endChar }

// EndByte returns one past the last byte position (Z_BYTE).
func (b *Buffer) EndByte() BytePos { return BytePos(b.store.Len()) + BegByte }

// GapStartByte returns the byte position the gap currently sits at.
func (b *Buffer) GapStartByte() BytePos { return BytePos(b.store.GapStart()) + BegByte }

// GapSize returns the gap length in bytes.
func (b *Buffer) GapSize() int64 { return b.store.GapSize() }

// MultibyteEnabled reports whether positions may encode characters
// wider than one byte.
func (b *Buffer) MultibyteEnabled() bool { return b.multibyte }

// BegVChar returns the first accessible character position.
func (b *Buffer) BegVChar() CharPos { return b.begvChar }

// BegVByte returns the first accessible byte position.
func (b *Buffer) BegVByte() BytePos { return b.begvByte }

// ZVChar returns one past the last accessible character position.
func (b *Buffer) ZVChar() CharPos { return b.zvChar }

// ZVByte returns one past the last accessible byte position.
func (b *Buffer) ZVByte() BytePos { return b.zvByte }

// Live reports whether the buffer is still usable. Killed buffers keep
// their identity but drop their content.
func (b *Buffer) Live() bool { return !b.killed }

// Kill marks the buffer dead and releases its content. Callers must
// detach overlays and markers first.
func (b *Buffer) Kill() {
	if b.killed {
		return
	}
	b.Widen()
	b.readOnly = false
	if err := b.Erase(); err != nil {
		panic("textbuf: erase during kill failed: " + err.Error())
	}
	b.killed = true
	b.readOnly = true
}

// ReadOnly reports whether mutations are rejected.
func (b *Buffer) ReadOnly() bool { return b.readOnly }

// SetReadOnly sets the read-only flag.
func (b *Buffer) SetReadOnly(ro bool) { b.readOnly = ro }

// Modifications returns the tick counter incremented on every change.
func (b *Buffer) Modifications() int64 { return b.modiff }

// CharModifications returns the tick counter of the last character
// insertion or deletion.
func (b *Buffer) CharModifications() int64 { return b.charsModiff }

// Modified reports whether the buffer changed since the tick was last
// recorded by RecordSaved.
func (b *Buffer) Modified() bool { return b.modiff > b.saveModiff }

// RecordSaved marks the current content as the saved state.
func (b *Buffer) RecordSaved() { b.saveModiff = b.modiff }

// PreventDisplayOptimizations reports whether redisplay shortcuts are
// currently disabled for this buffer.
func (b *Buffer) PreventDisplayOptimizations() bool { return b.preventDisplayOpt }

// SetPreventDisplayOptimizations disables or re-enables redisplay
// shortcuts for this buffer.
func (b *Buffer) SetPreventDisplayOptimizations(v bool) { b.preventDisplayOpt = v }

// AddEditListener registers l to observe every mutation of b.
func (b *Buffer) AddEditListener(l EditListener) {
	b.listeners = append(b.listeners, l)
}

// Text returns the accessible content as a string. With no narrowing
// in effect that is the whole buffer.
func (b *Buffer) Text() string {
	if b.begvChar == BegChar && b.zvChar == b.endChar {
		return b.store.String()
	}
	return b.TextRange(b.begvChar, b.zvChar)
}

// TextRange returns the content between the character positions start
// (inclusive) and end (exclusive). The range must already be valid.
func (b *Buffer) TextRange(start, end CharPos) string {
	sb := b.BytePosOf(start)
	eb := b.BytePosOf(end)
	out := make([]byte, 0, int64(eb-sb))
	for p := sb; p < eb; p++ {
		out = append(out, b.RawByteAt(p))
	}
	return string(out)
}

// IsEmpty reports whether the buffer holds no content.
func (b *Buffer) IsEmpty() bool { return b.store.Len() == 0 }

// ValidateRegion orders and checks a character range against the
// accessible part of the buffer. On success *start <= *end and both lie
// within [BegV, ZV]; otherwise ErrRegionOutOfRange.
func (b *Buffer) ValidateRegion(start, end *CharPos) error {
	if *start > *end {
		*start, *end = *end, *start
	}
	if *start < b.begvChar || *end > b.zvChar {
		return ErrRegionOutOfRange
	}
	return nil
}
