package overlay

import "github.com/dshills/textcore/internal/engine/textbuf"

// Iter walks one overlay list by following next links from its head.
// Iteration reads the live links, so it is cheap and restartable, but
// must not be interleaved with mutations of the same list.
type Iter struct {
	arena *Arena
	next  Ref
	cur   Ref
}

// Before returns an iterator over b's before-center list.
func (a *Arena) Before(b *textbuf.Buffer) *Iter {
	head := None
	if ix := a.indexes[b.ID()]; ix != nil {
		head = ix.before
	}
	return &Iter{arena: a, next: head, cur: None}
}

// After returns an iterator over b's after-center list.
func (a *Arena) After(b *textbuf.Buffer) *Iter {
	head := None
	if ix := a.indexes[b.ID()]; ix != nil {
		head = ix.after
	}
	return &Iter{arena: a, next: head, cur: None}
}

// Next advances to the next overlay. Returns false when the list is
// exhausted.
func (it *Iter) Next() bool {
	if it.next == None {
		it.cur = None
		return false
	}
	it.cur = it.next
	it.next = it.arena.records[it.cur].next
	return true
}

// Ref returns the overlay the iterator is positioned on. Valid only
// after a Next call that returned true.
func (it *Iter) Ref() Ref {
	return it.cur
}
