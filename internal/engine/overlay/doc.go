// Package overlay indexes anchored, propertied text ranges over
// buffers. An overlay is a half-open range [start, end) held by two
// markers, so it moves with edits, plus an association list of
// properties used by display code (highlighting, before/after strings).
//
// Overlays live in an arena and are addressed by stable Ref indices
// rather than pointers; unlinking an overlay is an index rewrite, never
// pointer surgery. Each buffer's live overlays are kept in two singly
// linked, insertion-ordered lists split around a movable center
// position: "before center" holds overlays that started at or before
// the center when the lists were last recentered, "after center" holds
// the rest. New overlays go to the after list; Recenter redistributes.
// The engine never recenters on its own - the trigger policy belongs to
// the caller.
//
// Range queries (At, Overlapping) are served by an interval search tree
// rebuilt lazily whenever the buffer's modification tick has moved
// since the last build, since marker motion invalidates stored keys.
//
// Deleting an overlay whose buffer is already gone is a no-op, as is
// deleting all overlays of a buffer that has none. Passing a Ref that
// was never allocated, or one already discarded, is a caller bug and
// panics.
//
// Like the buffers it indexes, an Arena is single-threaded by contract.
package overlay
