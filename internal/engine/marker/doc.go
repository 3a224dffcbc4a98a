// Package marker provides position anchors that track a location in a
// buffer across edits. A marker records both the character and the byte
// position of its location so that resolving it never rescans the
// buffer.
//
// Markers are owned by a Registry, which observes buffer mutations and
// shifts every marker of the edited buffer: anchors after an insertion
// move forward, anchors inside a deleted range collapse to its start.
// When an edit lands exactly on a marker, the marker's bias decides
// whether it stays put (BiasBackward, the default) or follows the
// inserted text (BiasForward).
//
// A detached marker has no buffer and resolves to no position. Code
// holding a marker whose buffer is gone treats that as an expected
// absence, not an error.
package marker
