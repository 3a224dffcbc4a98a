// Package gapstore implements the contiguous byte array with a movable
// gap that backs a text buffer. Insertions land in the gap, so editing
// at one location costs amortized constant time instead of shifting the
// whole tail of the array.
//
// The storage speaks two kinds of indices:
//
//   - content indices: 0-based offsets into the logical content, as if
//     the gap did not exist. Mutation operations (Insert, Delete,
//     MoveGapTo) take content indices.
//   - raw indices: 0-based offsets into the backing array, gap
//     included. ReadByte and WriteByte take raw indices; callers resolve
//     gap placement themselves, which keeps all gap arithmetic in one
//     place higher up.
//
// Two guard bytes always read as zero: the first byte of the gap and
// the byte one past the end of content. Forward character scans rely on
// them to terminate without bounds checks.
//
// Out-of-range indices are caller bugs and panic; they are never
// reported as recoverable errors.
package gapstore
