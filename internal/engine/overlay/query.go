package overlay

import (
	"github.com/rdleal/intervalst/interval"

	"github.com/dshills/textcore/internal/engine/textbuf"
)

// searchTree is the interval index used to answer range queries without
// walking both lists. Marker motion silently invalidates stored keys,
// so the tree is rebuilt whenever the buffer's modification tick has
// moved since the last build.
type searchTree = interval.MultiValueSearchTree[Ref, textbuf.CharPos]

func cmpCharPos(a, b textbuf.CharPos) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// At returns the overlays of b that cover character position pos, i.e.
// those with start <= pos < end. Empty overlays are never returned.
func (a *Arena) At(b *textbuf.Buffer, pos textbuf.CharPos) []Ref {
	ix := a.indexes[b.ID()]
	if ix == nil {
		return nil
	}
	a.refreshTree(ix)

	candidates, ok := ix.tree.AllIntersections(pos, pos)
	if !ok {
		return nil
	}
	var out []Ref
	for _, ref := range candidates {
		start, _ := a.records[ref].start.Position()
		end, _ := a.records[ref].end.Position()
		if start <= pos && pos < end {
			out = append(out, ref)
		}
	}
	return out
}

// Overlapping returns the overlays of b that overlap the half-open
// range [start, end). Empty overlays positioned inside the range are
// included.
func (a *Arena) Overlapping(b *textbuf.Buffer, start, end textbuf.CharPos) []Ref {
	ix := a.indexes[b.ID()]
	if ix == nil {
		return nil
	}
	a.refreshTree(ix)

	candidates, ok := ix.tree.AllIntersections(start, end)
	if !ok {
		return nil
	}
	var out []Ref
	for _, ref := range candidates {
		s, _ := a.records[ref].start.Position()
		e, _ := a.records[ref].end.Position()
		switch {
		case s == e:
			if start <= s && s < end {
				out = append(out, ref)
			}
		case s < end && e > start:
			out = append(out, ref)
		}
	}
	return out
}

// refreshTree rebuilds the interval tree when it is stale.
func (a *Arena) refreshTree(ix *index) {
	if ix.treeBuilt && ix.treeModiff == ix.buf.Modifications() {
		return
	}
	tree := interval.NewMultiValueSearchTreeWithOptions[Ref, textbuf.CharPos](
		cmpCharPos, interval.TreeWithIntervalPoint())
	for _, ref := range a.collect(ix) {
		start, ok := a.records[ref].start.Position()
		if !ok {
			continue
		}
		end, _ := a.records[ref].end.Position()
		tree.Insert(start, end, ref)
	}
	ix.tree = tree
	ix.treeModiff = ix.buf.Modifications()
	ix.treeBuilt = true
}
