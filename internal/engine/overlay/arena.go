package overlay

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/google/uuid"

	"github.com/dshills/textcore/internal/engine/marker"
	"github.com/dshills/textcore/internal/engine/textbuf"
)

// record is one arena slot. start == nil or a detached start marker
// means the overlay is not attached to any buffer.
type record struct {
	start *marker.Marker
	end   *marker.Marker
	props PropList
	next  Ref
}

// index holds one buffer's overlay lists.
type index struct {
	buf    *textbuf.Buffer
	before Ref
	after  Ref
	center textbuf.CharPos

	// Lazily built interval tree over the live overlays; see query.go.
	tree       *searchTree
	treeModiff int64
	treeBuilt  bool
}

// Arena owns every overlay record in the process and the per-buffer
// dual lists that index them.
type Arena struct {
	records []record
	live    *bitset.BitSet
	free    []Ref

	markers *marker.Registry
	indexes map[uuid.UUID]*index
}

// NewArena creates an empty overlay arena using reg for the overlays'
// anchor markers.
func NewArena(reg *marker.Registry) *Arena {
	return &Arena{
		live:    bitset.New(64),
		markers: reg,
		indexes: make(map[uuid.UUID]*index),
	}
}

// New allocates a detached overlay carrying props and returns its Ref.
func (a *Arena) New(props ...Property) Ref {
	var ref Ref
	if n := len(a.free); n > 0 {
		ref = a.free[n-1]
		a.free = a.free[:n-1]
		a.records[ref] = record{next: None}
	} else {
		ref = Ref(len(a.records))
		a.records = append(a.records, record{next: None})
	}
	if len(props) > 0 {
		a.records[ref].props = PropList(props).Copy()
	}
	a.live.Set(uint(ref))
	return ref
}

// Attach anchors overlay ref to [start, end) in b and links it into the
// buffer's after-center list. The range is ordered and validated
// against the buffer's accessible range.
func (a *Arena) Attach(ref Ref, b *textbuf.Buffer, start, end textbuf.CharPos) error {
	rec := a.rec(ref)
	if rec.start != nil && rec.start.Buffer() != nil {
		return ErrAlreadyAttached
	}
	if err := b.ValidateRegion(&start, &end); err != nil {
		return err
	}

	if rec.start == nil {
		rec.start = a.markers.Create(b, start, marker.BiasBackward)
		rec.end = a.markers.Create(b, end, marker.BiasBackward)
	} else {
		a.markers.Move(rec.start, b, start)
		a.markers.Move(rec.end, b, end)
	}

	ix := a.indexFor(b)
	rec.next = None
	a.appendAfter(ix, ref)
	ix.treeBuilt = false
	return nil
}

// Delete removes overlay ref from its buffer. If the overlay was never
// attached, or its buffer is already gone, this is a no-op. The record
// stays allocated and may be attached again; use Discard to free it.
func (a *Arena) Delete(ref Ref) {
	rec := a.rec(ref)
	b := rec.start.Buffer()
	if b == nil {
		return
	}

	ix := a.indexes[b.ID()]
	if ix != nil {
		a.unlink(ix, ref)
		ix.treeBuilt = false
	}
	a.markers.Detach(rec.start)
	a.markers.Detach(rec.end)

	// Removing display strings invalidates cached layout assumptions:
	// the strings may have contained newlines. Best effort, after the
	// removal itself already completed.
	if _, ok := rec.props.Get(PropBeforeString); ok {
		b.SetPreventDisplayOptimizations(true)
	} else if _, ok := rec.props.Get(PropAfterString); ok {
		b.SetPreventDisplayOptimizations(true)
	}
}

// Discard deletes overlay ref and returns its slot to the arena. The
// Ref is invalid afterwards.
func (a *Arena) Discard(ref Ref) {
	a.Delete(ref)
	a.records[ref] = record{next: None}
	a.live.Clear(uint(ref))
	a.free = append(a.free, ref)
}

// DeleteAll removes every overlay from b's lists. Idempotent: a buffer
// with no overlays is left unchanged. Both lists are empty afterwards
// with no dangling links.
func (a *Arena) DeleteAll(b *textbuf.Buffer) {
	ix := a.indexes[b.ID()]
	if ix == nil {
		return
	}
	for _, head := range []Ref{ix.before, ix.after} {
		for ref := head; ref != None; {
			rec := &a.records[ref]
			next := rec.next
			rec.next = None
			a.markers.Detach(rec.start)
			a.markers.Detach(rec.end)
			ref = next
		}
	}
	ix.before = None
	ix.after = None
	ix.treeBuilt = false
}

// Recenter redistributes b's overlays around center: overlays starting
// at or before center go to the before list, the rest to the after
// list, each keeping its relative order.
func (a *Arena) Recenter(b *textbuf.Buffer, center textbuf.CharPos) {
	ix := a.indexes[b.ID()]
	if ix == nil {
		return
	}

	refs := a.collect(ix)
	ix.before = None
	ix.after = None
	var beforeTail, afterTail Ref = None, None
	for _, ref := range refs {
		rec := &a.records[ref]
		rec.next = None
		start, _ := rec.start.Position()
		if start <= center {
			beforeTail = a.link(&ix.before, beforeTail, ref)
		} else {
			afterTail = a.link(&ix.after, afterTail, ref)
		}
	}
	ix.center = center
	ix.treeBuilt = false
}

// Center returns the center position of b's overlay lists.
func (a *Arena) Center(b *textbuf.Buffer) textbuf.CharPos {
	if ix := a.indexes[b.ID()]; ix != nil {
		return ix.center
	}
	return textbuf.BegChar
}

// Lists returns fresh forward-order copies of b's before- and
// after-center lists. The slices are new structure; the Refs are the
// live overlay identities, so property changes through them are visible
// in the buffer's real state.
func (a *Arena) Lists(b *textbuf.Buffer) (before, after []Ref) {
	ix := a.indexes[b.ID()]
	if ix == nil {
		return nil, nil
	}
	for ref := ix.before; ref != None; ref = a.records[ref].next {
		before = append(before, ref)
	}
	for ref := ix.after; ref != None; ref = a.records[ref].next {
		after = append(after, ref)
	}
	return before, after
}

// Start returns the overlay's start position; false when detached.
func (a *Arena) Start(ref Ref) (textbuf.CharPos, bool) {
	return a.rec(ref).start.Position()
}

// End returns the overlay's end position; false when detached.
func (a *Arena) End(ref Ref) (textbuf.CharPos, bool) {
	return a.rec(ref).end.Position()
}

// BufferOf returns the buffer the overlay is attached to, or nil.
func (a *Arena) BufferOf(ref Ref) *textbuf.Buffer {
	return a.rec(ref).start.Buffer()
}

// Property returns the value of the overlay's property key.
func (a *Arena) Property(ref Ref, key string) (any, bool) {
	return a.rec(ref).props.Get(key)
}

// SetProperty sets one property on the overlay.
func (a *Arena) SetProperty(ref Ref, key string, value any) {
	rec := a.rec(ref)
	rec.props = rec.props.Put(key, value)
}

// Properties returns a copy of the overlay's property list.
func (a *Arena) Properties(ref Ref) PropList {
	return a.rec(ref).props.Copy()
}

// rec validates ref and returns its record. An unallocated or discarded
// Ref is a programming error.
func (a *Arena) rec(ref Ref) *record {
	if ref < 0 || int(ref) >= len(a.records) || !a.live.Test(uint(ref)) {
		panic(fmt.Sprintf("overlay: invalid ref %d", ref))
	}
	return &a.records[ref]
}

func (a *Arena) indexFor(b *textbuf.Buffer) *index {
	ix := a.indexes[b.ID()]
	if ix == nil {
		ix = &index{buf: b, before: None, after: None, center: textbuf.BegChar}
		a.indexes[b.ID()] = ix
	}
	return ix
}

// appendAfter links ref at the tail of the after list, preserving
// insertion order.
func (a *Arena) appendAfter(ix *index, ref Ref) {
	if ix.after == None {
		ix.after = ref
		return
	}
	tail := ix.after
	for a.records[tail].next != None {
		tail = a.records[tail].next
	}
	a.records[tail].next = ref
}

// link appends ref to the list rooted at *head with known tail; returns
// the new tail.
func (a *Arena) link(head *Ref, tail, ref Ref) Ref {
	if tail == None {
		*head = ref
	} else {
		a.records[tail].next = ref
	}
	return ref
}

// unlink removes ref from whichever of the two lists contains it.
func (a *Arena) unlink(ix *index, ref Ref) {
	for _, head := range []*Ref{&ix.before, &ix.after} {
		if *head == ref {
			*head = a.records[ref].next
			a.records[ref].next = None
			return
		}
		for cur := *head; cur != None; cur = a.records[cur].next {
			if a.records[cur].next == ref {
				a.records[cur].next = a.records[ref].next
				a.records[ref].next = None
				return
			}
		}
	}
}

// collect returns both lists' refs, before list first, in order.
func (a *Arena) collect(ix *index) []Ref {
	var refs []Ref
	for ref := ix.before; ref != None; ref = a.records[ref].next {
		refs = append(refs, ref)
	}
	for ref := ix.after; ref != None; ref = a.records[ref].next {
		refs = append(refs, ref)
	}
	return refs
}
