// Package localvar records which buffer-local variables have a local
// binding in a given buffer. Variable slots are registered once,
// process-wide, in a Table; each buffer carries a Flags vector with one
// bit per registered slot.
//
// Slot indices are assigned at registration time and never reused or
// renumbered, so the bounds check on every flag access is the only
// safety net against a buffer's vector falling out of sync with the
// table: after a registration the vector must be grown (Grow) before
// any buffer uses the new index. An out-of-range slot index is a
// programming error and panics; it is never reported as a recoverable
// error or silently treated as "no local value".
package localvar
