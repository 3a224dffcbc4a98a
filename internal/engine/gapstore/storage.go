package gapstore

import "fmt"

const (
	// DefaultGapSize is the gap allocated for a new storage.
	DefaultGapSize = 2000

	// MinGapSize is the smallest gap left after an insertion consumes
	// most of the current gap. The gap never shrinks below 1 so the gap
	// guard byte always exists.
	MinGapSize = 32
)

// Storage is the gap-buffer byte array. The zero value is not usable;
// call New.
type Storage struct {
	data     []byte
	gapStart int64 // content index of the gap
	gapSize  int64
	end      int64 // content length in bytes
}

// New creates an empty storage with the given gap size. Sizes below 1
// fall back to DefaultGapSize.
func New(gapSize int64) *Storage {
	if gapSize < 1 {
		gapSize = DefaultGapSize
	}
	s := &Storage{
		data:    make([]byte, gapSize+1),
		gapSize: gapSize,
	}
	s.setGuards()
	return s
}

// Len returns the content length in bytes, gap excluded.
func (s *Storage) Len() int64 { return s.end }

// GapStart returns the content index the gap currently sits at.
func (s *Storage) GapStart() int64 { return s.gapStart }

// GapSize returns the current gap length in bytes.
func (s *Storage) GapSize() int64 { return s.gapSize }

// ReadByte returns the byte at raw index i. The gap region and both
// guard positions are readable; anything else out of range panics.
func (s *Storage) ReadByte(i int64) byte {
	return s.data[i]
}

// WriteByte stores v at raw index i.
func (s *Storage) WriteByte(i int64, v byte) {
	s.data[i] = v
}

// MoveGapTo moves the gap so that it starts at content index pos.
func (s *Storage) MoveGapTo(pos int64) {
	if pos < 0 || pos > s.end {
		panic(fmt.Sprintf("gapstore: MoveGapTo(%d) outside content [0,%d]", pos, s.end))
	}
	switch {
	case pos < s.gapStart:
		// Shift the bytes between pos and the gap to the far side.
		copy(s.data[pos+s.gapSize:s.gapStart+s.gapSize], s.data[pos:s.gapStart])
	case pos > s.gapStart:
		copy(s.data[s.gapStart:pos], s.data[s.gapStart+s.gapSize:pos+s.gapSize])
	}
	s.gapStart = pos
	s.setGuards()
}

// Insert copies p into the content at content index pos.
func (s *Storage) Insert(pos int64, p []byte) {
	if pos < 0 || pos > s.end {
		panic(fmt.Sprintf("gapstore: Insert(%d) outside content [0,%d]", pos, s.end))
	}
	n := int64(len(p))
	if n == 0 {
		return
	}
	if s.gapSize-n < 1 {
		s.grow(n)
	}
	s.MoveGapTo(pos)
	copy(s.data[s.gapStart:], p)
	s.gapStart += n
	s.gapSize -= n
	s.end += n
	s.setGuards()
}

// Delete removes the content bytes in [from, to).
func (s *Storage) Delete(from, to int64) {
	if from < 0 || from > to || to > s.end {
		panic(fmt.Sprintf("gapstore: Delete(%d,%d) outside content [0,%d]", from, to, s.end))
	}
	if from == to {
		return
	}
	s.MoveGapTo(from)
	s.gapSize += to - from
	s.end -= to - from
	s.setGuards()
}

// Bytes returns a contiguous copy of the content.
func (s *Storage) Bytes() []byte {
	out := make([]byte, s.end)
	copy(out, s.data[:s.gapStart])
	copy(out[s.gapStart:], s.data[s.gapStart+s.gapSize:s.gapStart+s.gapSize+(s.end-s.gapStart)])
	return out
}

// String returns the content as a string.
func (s *Storage) String() string {
	return string(s.Bytes())
}

// grow reallocates the array so the gap can absorb n more bytes and
// still keep MinGapSize spare.
func (s *Storage) grow(n int64) {
	newGap := s.gapSize + n + MinGapSize
	if newGap < DefaultGapSize {
		newGap = DefaultGapSize
	}
	data := make([]byte, s.end+newGap+1)
	copy(data[:s.gapStart], s.data[:s.gapStart])
	copy(data[s.gapStart+newGap:], s.data[s.gapStart+s.gapSize:s.gapStart+s.gapSize+(s.end-s.gapStart)])
	s.data = data
	s.gapSize = newGap
	s.setGuards()
}

// setGuards zeroes the byte at the gap start and the byte one past the
// end of content. Forward boundary scans read these without range
// checks and must see zero.
func (s *Storage) setGuards() {
	s.data[s.gapStart] = 0
	s.data[s.end+s.gapSize] = 0
}
