package textbuf

import "unicode/utf8"

// Insert inserts s at character position at and returns the character
// position just past the inserted text. The position must lie within
// the accessible range. Positions computed before the call are invalid
// afterwards.
func (b *Buffer) Insert(at CharPos, s string) (CharPos, error) {
	if b.readOnly {
		return 0, ErrReadOnly
	}
	end := at
	if err := b.ValidateRegion(&at, &end); err != nil {
		return 0, err
	}
	if s == "" {
		return at, nil
	}

	atByte := b.BytePosOf(at)
	bytes := int64(len(s))
	chars := bytes
	if b.multibyte {
		chars = int64(utf8.RuneCountInString(s))
	}

	b.store.Insert(b.ByteIndex(atByte), []byte(s))
	b.endChar += CharPos(chars)

	// Narrowing bounds shift like backward-bias anchors: the lower bound
	// stays put when text lands exactly on it, the upper bound moves so
	// text inserted at the edge of the accessible range stays accessible.
	if at < b.begvChar {
		b.begvChar += CharPos(chars)
		b.begvByte += BytePos(bytes)
	}
	if at <= b.zvChar {
		b.zvChar += CharPos(chars)
		b.zvByte += BytePos(bytes)
	}

	b.bumpCharTick()
	for _, l := range b.listeners {
		l.TextInserted(b, at, atByte, chars, bytes)
	}
	return at + CharPos(chars), nil
}

// DeleteRange removes the characters in [start, end). The range is
// ordered and validated against the accessible range.
func (b *Buffer) DeleteRange(start, end CharPos) error {
	if b.readOnly {
		return ErrReadOnly
	}
	if err := b.ValidateRegion(&start, &end); err != nil {
		return err
	}
	if start == end {
		return nil
	}

	startByte := b.BytePosOf(start)
	endByte := b.BytePosOf(end)
	chars := int64(end - start)
	bytes := int64(endByte - startByte)

	b.store.Delete(b.ByteIndex(startByte), b.ByteIndex(endByte))
	b.endChar -= CharPos(chars)

	if b.begvChar > start {
		if b.begvChar > end {
			b.begvChar -= CharPos(chars)
			b.begvByte -= BytePos(bytes)
		} else {
			b.begvChar = start
			b.begvByte = startByte
		}
	}
	if b.zvChar > start {
		if b.zvChar > end {
			b.zvChar -= CharPos(chars)
			b.zvByte -= BytePos(bytes)
		} else {
			b.zvChar = start
			b.zvByte = startByte
		}
	}

	b.bumpCharTick()
	for _, l := range b.listeners {
		l.TextDeleted(b, start, startByte, chars, bytes)
	}
	return nil
}

// Erase removes the entire content. Any narrowing restriction is lifted
// first, so the buffer is truly empty afterwards.
func (b *Buffer) Erase() error {
	b.Widen()
	return b.DeleteRange(BegChar, b.endChar)
}

// Narrow restricts the accessible range to [start, end).
func (b *Buffer) Narrow(start, end CharPos) error {
	if start > end {
		start, end = end, start
	}
	if start < BegChar || end > b.endChar {
		return ErrRegionOutOfRange
	}
	b.begvChar = start
	b.begvByte = b.BytePosOf(start)
	b.zvChar = end
	b.zvByte = b.BytePosOf(end)
	return nil
}

// Widen lifts any narrowing restriction.
func (b *Buffer) Widen() {
	b.begvChar = BegChar
	b.begvByte = BegByte
	b.zvChar = b.endChar
	b.zvByte = b.EndByte()
}

func (b *Buffer) bumpCharTick() {
	b.modiff++
	b.charsModiff = b.modiff
}
