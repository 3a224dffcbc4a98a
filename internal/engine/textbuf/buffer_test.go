package textbuf

import (
	"errors"
	"testing"
)

func TestNewBuffer(t *testing.T) {
	b := New("scratch")

	if !b.IsEmpty() {
		t.Error("new buffer should be empty")
	}
	if b.EndChar() != BegChar {
		t.Errorf("expected Z == %v, got %v", BegChar, b.EndChar())
	}
	if b.EndByte() != BegByte {
		t.Errorf("expected Z_BYTE == %v, got %v", BegByte, b.EndByte())
	}
	if !b.MultibyteEnabled() {
		t.Error("multibyte should default to enabled")
	}
}

func TestNewFromString(t *testing.T) {
	b := NewFromString("test", "hello")

	if b.Text() != "hello" {
		t.Errorf("expected %q, got %q", "hello", b.Text())
	}
	if b.EndChar() != 6 {
		t.Errorf("expected Z == 6, got %v", b.EndChar())
	}
	if b.EndByte() != 6 {
		t.Errorf("expected Z_BYTE == 6, got %v", b.EndByte())
	}
	if b.Modified() {
		t.Error("initial content should not count as a modification")
	}
}

func TestMultibyteCounts(t *testing.T) {
	// "a€b": 3 characters, 5 bytes.
	b := NewFromString("test", "a€b")

	if b.EndChar() != 4 {
		t.Errorf("expected Z == 4, got %v", b.EndChar())
	}
	if b.EndByte() != 6 {
		t.Errorf("expected Z_BYTE == 6, got %v", b.EndByte())
	}
}

func TestUnibyteCounts(t *testing.T) {
	b := NewFromString("raw", "a€b", WithMultibyte(false))

	// Every byte is a character in a unibyte buffer.
	if b.EndChar() != 6 {
		t.Errorf("expected Z == 6, got %v", b.EndChar())
	}
	if b.EndByte() != 6 {
		t.Errorf("expected Z_BYTE == 6, got %v", b.EndByte())
	}
}

func TestGapOffset(t *testing.T) {
	b := NewFromString("test", "abcdef")

	// Deleting in the middle parks the gap there.
	if err := b.DeleteRange(4, 5); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	gpt := b.GapStartByte()
	for pos := BegByte; pos < b.EndByte(); pos++ {
		got := b.GapOffset(pos)
		if pos >= gpt && got != b.GapSize() {
			t.Errorf("GapOffset(%v) = %d, want gap size %d", pos, got, b.GapSize())
		}
		if pos < gpt && got != 0 {
			t.Errorf("GapOffset(%v) = %d, want 0", pos, got)
		}
	}
}

func TestRawByteAtAcrossGap(t *testing.T) {
	b := NewFromString("test", "abcdef")
	if err := b.DeleteRange(3, 4); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	// Content is now "abdef"; reads on both sides of the gap must agree.
	want := "abdef"
	for i := 0; i < len(want); i++ {
		if got := b.RawByteAt(BegByte + BytePos(i)); got != want[i] {
			t.Errorf("RawByteAt(%d) = %q, want %q", i+1, got, want[i])
		}
	}
}

func TestByteIndexNoGapCorrection(t *testing.T) {
	b := NewFromString("test", "abc")

	if got := b.ByteIndex(BegByte); got != 0 {
		t.Errorf("ByteIndex(BegByte) = %d, want 0", got)
	}
	if got := b.ByteIndex(3); got != 2 {
		t.Errorf("ByteIndex(3) = %d, want 2", got)
	}
}

func TestCharAtSingleByte(t *testing.T) {
	b := NewFromString("test", "abc")

	if got := b.CharAt(1); got != 'a' {
		t.Errorf("CharAt(1) = %q, want 'a'", got)
	}
	if got := b.CharAt(3); got != 'c' {
		t.Errorf("CharAt(3) = %q, want 'c'", got)
	}
}

func TestCharAtMultibyte(t *testing.T) {
	// Byte layout: a b c d € ...; the euro sign starts at byte position 5
	// and occupies bytes 5, 6 and 7.
	b := NewFromString("test", "abcd€x")

	if got := b.CharAt(5); got != '€' {
		t.Errorf("CharAt(5) = %q, want euro sign", got)
	}
	if got := b.NextBoundary(5); got != 8 {
		t.Errorf("NextBoundary(5) = %v, want 8", got)
	}
	if got := b.CharAt(8); got != 'x' {
		t.Errorf("CharAt(8) = %q, want 'x'", got)
	}
}

func TestCharAtDegradedRead(t *testing.T) {
	b := NewFromString("test", "€")

	// Position 2 is a continuation byte; the read degrades to that byte.
	if got := b.CharAt(2); got != rune(0x82) {
		t.Errorf("CharAt(2) = %#x, want 0x82", got)
	}
}

func TestBoundariesASCII(t *testing.T) {
	// "abc": byte positions 1..4, char positions 1..4.
	b := NewFromString("test", "abc")

	if got := b.NextBoundary(1); got != 2 {
		t.Errorf("NextBoundary(1) = %v, want 2", got)
	}
	if got := b.PrevBoundary(2); got != 1 {
		t.Errorf("PrevBoundary(2) = %v, want 1", got)
	}
}

func TestBoundaryRoundTrip(t *testing.T) {
	// Mixed widths: 1, 2, 3 and 4 byte characters.
	b := NewFromString("test", "aé€\U0001F600z")

	var boundaries []BytePos
	for pos := BegByte; pos < b.EndByte(); pos = b.NextBoundary(pos) {
		boundaries = append(boundaries, pos)
	}
	boundaries = append(boundaries, b.EndByte())

	if len(boundaries) != 6 {
		t.Fatalf("expected 6 boundaries, got %d: %v", len(boundaries), boundaries)
	}

	for _, pos := range boundaries[1:] {
		if got := b.NextBoundary(b.PrevBoundary(pos)); got != pos {
			t.Errorf("NextBoundary(PrevBoundary(%v)) = %v, want %v", pos, got, pos)
		}
	}
}

func TestPrevBoundaryScanIsBounded(t *testing.T) {
	// A 4-byte character forces the longest possible backward scan:
	// max encoded width - 1 = 3 continuation bytes.
	b := NewFromString("test", "\U0001F600")

	if got := b.PrevBoundary(5); got != 1 {
		t.Errorf("PrevBoundary(5) = %v, want 1", got)
	}
}

func TestPositionConversions(t *testing.T) {
	b := NewFromString("test", "a€b")

	tests := []struct {
		char CharPos
		byte BytePos
	}{
		{1, 1},
		{2, 2},
		{3, 5},
		{4, 6},
	}
	for _, tt := range tests {
		if got := b.BytePosOf(tt.char); got != tt.byte {
			t.Errorf("BytePosOf(%v) = %v, want %v", tt.char, got, tt.byte)
		}
		if got := b.CharPosOf(tt.byte); got != tt.char {
			t.Errorf("CharPosOf(%v) = %v, want %v", tt.byte, got, tt.char)
		}
	}
}

func TestInsertUpdatesEnds(t *testing.T) {
	b := NewFromString("test", "ab")

	end, err := b.Insert(2, "€")
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if end != 3 {
		t.Errorf("expected end position 3, got %v", end)
	}
	if b.Text() != "a€b" {
		t.Errorf("expected %q, got %q", "a€b", b.Text())
	}
	if b.EndChar() != 4 || b.EndByte() != 6 {
		t.Errorf("Z/Z_BYTE = %v/%v, want 4/6", b.EndChar(), b.EndByte())
	}
}

func TestInsertOutOfRange(t *testing.T) {
	b := NewFromString("test", "abc")

	if _, err := b.Insert(9, "x"); !errors.Is(err, ErrRegionOutOfRange) {
		t.Errorf("expected ErrRegionOutOfRange, got %v", err)
	}
	if _, err := b.Insert(0, "x"); !errors.Is(err, ErrRegionOutOfRange) {
		t.Errorf("expected ErrRegionOutOfRange for position 0, got %v", err)
	}
}

func TestInsertReadOnly(t *testing.T) {
	b := NewFromString("test", "abc", WithReadOnly())

	if _, err := b.Insert(1, "x"); !errors.Is(err, ErrReadOnly) {
		t.Errorf("expected ErrReadOnly, got %v", err)
	}
	if err := b.DeleteRange(1, 2); !errors.Is(err, ErrReadOnly) {
		t.Errorf("expected ErrReadOnly, got %v", err)
	}
}

func TestDeleteRange(t *testing.T) {
	b := NewFromString("test", "a€b")

	if err := b.DeleteRange(2, 3); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if b.Text() != "ab" {
		t.Errorf("expected %q, got %q", "ab", b.Text())
	}
	if b.EndChar() != 3 || b.EndByte() != 3 {
		t.Errorf("Z/Z_BYTE = %v/%v, want 3/3", b.EndChar(), b.EndByte())
	}
}

func TestValidateRegionOrders(t *testing.T) {
	b := NewFromString("test", "abcdef")

	start, end := CharPos(5), CharPos(2)
	if err := b.ValidateRegion(&start, &end); err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if start != 2 || end != 5 {
		t.Errorf("expected ordered (2,5), got (%v,%v)", start, end)
	}

	start, end = 1, 99
	if err := b.ValidateRegion(&start, &end); !errors.Is(err, ErrRegionOutOfRange) {
		t.Errorf("expected ErrRegionOutOfRange, got %v", err)
	}
}

func TestNarrowRestrictsEdits(t *testing.T) {
	b := NewFromString("test", "abcdef")

	if err := b.Narrow(3, 5); err != nil {
		t.Fatalf("narrow failed: %v", err)
	}
	if b.BegVChar() != 3 || b.ZVChar() != 5 {
		t.Errorf("accessible range = [%v,%v], want [3,5]", b.BegVChar(), b.ZVChar())
	}
	if _, err := b.Insert(1, "x"); !errors.Is(err, ErrRegionOutOfRange) {
		t.Errorf("expected insert before BEGV to fail, got %v", err)
	}

	b.Widen()
	if b.BegVChar() != BegChar || b.ZVChar() != b.EndChar() {
		t.Errorf("widen did not restore full range")
	}
}

func TestErase(t *testing.T) {
	b := NewFromString("test", "abcdef")
	if err := b.Narrow(2, 4); err != nil {
		t.Fatalf("narrow failed: %v", err)
	}

	if err := b.Erase(); err != nil {
		t.Fatalf("erase failed: %v", err)
	}
	if !b.IsEmpty() {
		t.Errorf("expected empty buffer, got %q", b.Text())
	}
	if b.EndChar() != BegChar || b.ZVChar() != BegChar {
		t.Errorf("expected positions reset to beginning")
	}
}

func TestModificationTicks(t *testing.T) {
	b := NewFromString("test", "ab")
	m0 := b.Modifications()

	if _, err := b.Insert(1, "x"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if b.Modifications() <= m0 {
		t.Error("tick should advance on insert")
	}
	if b.CharModifications() != b.Modifications() {
		t.Error("char tick should track text changes")
	}
	if !b.Modified() {
		t.Error("buffer should report modified")
	}

	b.RecordSaved()
	if b.Modified() {
		t.Error("buffer should be unmodified after RecordSaved")
	}
}

func TestTextRange(t *testing.T) {
	b := NewFromString("test", "a€bcd")

	if got := b.TextRange(2, 4); got != "€b" {
		t.Errorf("TextRange(2,4) = %q, want %q", got, "€b")
	}
}

type recordingListener struct {
	inserts int
	deletes int
	lastAt  CharPos
}

func (r *recordingListener) TextInserted(_ *Buffer, at CharPos, _ BytePos, _, _ int64) {
	r.inserts++
	r.lastAt = at
}

func (r *recordingListener) TextDeleted(_ *Buffer, from CharPos, _ BytePos, _, _ int64) {
	r.deletes++
	r.lastAt = from
}

func TestEditListeners(t *testing.T) {
	b := NewFromString("test", "abc")
	rec := &recordingListener{}
	b.AddEditListener(rec)

	if _, err := b.Insert(2, "xy"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if rec.inserts != 1 || rec.lastAt != 2 {
		t.Errorf("insert not observed: %+v", rec)
	}

	if err := b.DeleteRange(1, 3); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if rec.deletes != 1 || rec.lastAt != 1 {
		t.Errorf("delete not observed: %+v", rec)
	}
}

func TestNextGrapheme(t *testing.T) {
	// e + combining acute is one grapheme of two characters.
	b := NewFromString("test", "aéz")

	if got := b.NextGrapheme(1); got != 2 {
		t.Errorf("NextGrapheme(1) = %v, want 2", got)
	}
	if got := b.NextGrapheme(2); got != 5 {
		t.Errorf("NextGrapheme(2) = %v, want 5", got)
	}
	if got := b.NextGrapheme(b.EndByte()); got != b.EndByte() {
		t.Errorf("NextGrapheme at end = %v, want %v", got, b.EndByte())
	}
}

func TestKill(t *testing.T) {
	b := NewFromString("test", "abc")

	b.Kill()
	if b.Live() {
		t.Error("killed buffer reports live")
	}
	if !b.IsEmpty() {
		t.Errorf("killed buffer kept content %q", b.Text())
	}
	if _, err := b.Insert(BegChar, "x"); !errors.Is(err, ErrReadOnly) {
		t.Errorf("expected insert into killed buffer to fail, got %v", err)
	}

	b.Kill() // second kill is a no-op
	if b.Live() {
		t.Error("double kill changed liveness")
	}
}
