// Package textbuf implements the addressing model of a text buffer
// stored in a gap buffer. It converts between character positions, byte
// positions and raw storage indices, finds character boundaries in
// variable-width encoded content, and owns the buffer bookkeeping the
// rest of the engine reads (modification ticks, narrowing bounds, the
// multibyte flag).
//
// Positions come in two distinct integer spaces, both 1-origin:
//
//   - CharPos counts decoded characters from the buffer start.
//   - BytePos counts raw encoded bytes from the buffer start.
//
// A character position is never greater than the corresponding byte
// position; the two are equal exactly when all preceding characters are
// single-byte. The types are deliberately distinct so that mixing the
// spaces is a compile error rather than a silent off-by-N.
//
// The read primitives (RawByteAt, CharAt, NextBoundary, PrevBoundary)
// perform no bounds checking. Feeding them a position outside the
// buffer is a caller bug with undefined result; callers validate
// ranges first, normally through ValidateRegion. The storage keeps a
// zero guard byte at the gap start and at the content end, which is
// what bounds the forward scan without a range check.
//
// A buffer is single-threaded by contract. No method locks; concurrent
// mutation of the same buffer is undefined behavior. Any parallelism
// must be arranged by an external scheduler that gives each buffer to
// one goroutine at a time. Addresses and offsets computed before a
// mutation are invalid after it and must be recomputed.
package textbuf
