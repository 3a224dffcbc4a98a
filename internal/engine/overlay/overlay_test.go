package overlay

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/textcore/internal/engine/marker"
	"github.com/dshills/textcore/internal/engine/textbuf"
)

func newFixture(t *testing.T, text string) (*Arena, *textbuf.Buffer) {
	t.Helper()
	b := textbuf.NewFromString("test", text)
	return NewArena(marker.NewRegistry()), b
}

func drain(it *Iter) []Ref {
	var refs []Ref
	for it.Next() {
		refs = append(refs, it.Ref())
	}
	return refs
}

func TestAttachDefaultPlacement(t *testing.T) {
	a, b := newFixture(t, "abcdef")

	ovA := a.New()
	ovB := a.New()
	if err := a.Attach(ovA, b, 1, 3); err != nil {
		t.Fatalf("attach A failed: %v", err)
	}
	if err := a.Attach(ovB, b, 2, 4); err != nil {
		t.Fatalf("attach B failed: %v", err)
	}

	before, after := a.Lists(b)
	if len(before) != 0 {
		t.Errorf("before list should be empty, got %v", before)
	}
	if diff := cmp.Diff([]Ref{ovA, ovB}, after); diff != "" {
		t.Errorf("after list mismatch (-want +got):\n%s", diff)
	}
}

func TestDeleteRemovesFromLists(t *testing.T) {
	a, b := newFixture(t, "abcdef")

	// Insert A=[1,3), B=[2,4); both land in the after-center list.
	ovA := a.New()
	ovB := a.New()
	if err := a.Attach(ovA, b, 1, 3); err != nil {
		t.Fatalf("attach A failed: %v", err)
	}
	if err := a.Attach(ovB, b, 2, 4); err != nil {
		t.Fatalf("attach B failed: %v", err)
	}

	a.Delete(ovA)

	if got := drain(a.Before(b)); len(got) != 0 {
		t.Errorf("iterate(before) = %v, want []", got)
	}
	if diff := cmp.Diff([]Ref{ovB}, drain(a.After(b))); diff != "" {
		t.Errorf("iterate(after) mismatch (-want +got):\n%s", diff)
	}
	if a.BufferOf(ovA) != nil {
		t.Error("deleted overlay should have no buffer")
	}
}

func TestDeleteTwiceIsNoop(t *testing.T) {
	a, b := newFixture(t, "abcdef")

	ov := a.New()
	if err := a.Attach(ov, b, 1, 3); err != nil {
		t.Fatalf("attach failed: %v", err)
	}

	a.Delete(ov)
	a.Delete(ov) // must not panic or disturb other state

	if got := drain(a.After(b)); len(got) != 0 {
		t.Errorf("after list = %v, want []", got)
	}
}

func TestDeleteNeverAttached(t *testing.T) {
	a, _ := newFixture(t, "abcdef")

	ov := a.New()
	a.Delete(ov) // expected absence, not an error
}

func TestDeleteAll(t *testing.T) {
	a, b := newFixture(t, "abcdef")

	for i := 0; i < 3; i++ {
		ov := a.New()
		if err := a.Attach(ov, b, textbuf.CharPos(i+1), textbuf.CharPos(i+3)); err != nil {
			t.Fatalf("attach %d failed: %v", i, err)
		}
	}
	a.Recenter(b, 2) // spread refs across both lists first

	a.DeleteAll(b)
	if got := drain(a.Before(b)); len(got) != 0 {
		t.Errorf("before list = %v, want []", got)
	}
	if got := drain(a.After(b)); len(got) != 0 {
		t.Errorf("after list = %v, want []", got)
	}

	// Removing all overlays of an already-empty index is a no-op.
	a.DeleteAll(b)
}

func TestListsShareIdentities(t *testing.T) {
	a, b := newFixture(t, "abcdef")

	ov := a.New(Property{Key: "face", Value: "highlight"})
	if err := a.Attach(ov, b, 1, 4); err != nil {
		t.Fatalf("attach failed: %v", err)
	}

	_, after := a.Lists(b)
	if len(after) != 1 {
		t.Fatalf("after list length %d, want 1", len(after))
	}

	// Mutating the overlay through the snapshot's ref is visible in the
	// buffer's real state.
	a.SetProperty(after[0], "face", "region")
	if v, _ := a.Property(ov, "face"); v != "region" {
		t.Errorf("property through live ref = %v, want region", v)
	}

	// Mutating the returned slice structure has no such effect.
	after[0] = None
	if _, got := a.Lists(b); len(got) != 1 || got[0] != ov {
		t.Error("snapshot slice mutation leaked into the live list")
	}
}

func TestIterIsRestartable(t *testing.T) {
	a, b := newFixture(t, "abcdef")

	ov := a.New()
	if err := a.Attach(ov, b, 2, 5); err != nil {
		t.Fatalf("attach failed: %v", err)
	}

	first := drain(a.After(b))
	second := drain(a.After(b))
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("re-iteration differs (-first +second):\n%s", diff)
	}
}

func TestStartEndTrackEdits(t *testing.T) {
	a, b := newFixture(t, "abcdef")

	ov := a.New()
	if err := a.Attach(ov, b, 3, 5); err != nil {
		t.Fatalf("attach failed: %v", err)
	}

	if _, err := b.Insert(1, "XY"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	start, ok := a.Start(ov)
	if !ok || start != 5 {
		t.Errorf("start = %v, want 5", start)
	}
	end, ok := a.End(ov)
	if !ok || end != 7 {
		t.Errorf("end = %v, want 7", end)
	}
}

func TestDetachedPositionsAbsent(t *testing.T) {
	a, _ := newFixture(t, "abcdef")

	ov := a.New()
	if _, ok := a.Start(ov); ok {
		t.Error("detached overlay should have no start position")
	}
	if _, ok := a.End(ov); ok {
		t.Error("detached overlay should have no end position")
	}
}

func TestDeleteWithDisplayStringFlagsBuffer(t *testing.T) {
	a, b := newFixture(t, "abcdef")

	ov := a.New(Property{Key: PropBeforeString, Value: "** "})
	if err := a.Attach(ov, b, 2, 4); err != nil {
		t.Fatalf("attach failed: %v", err)
	}
	if b.PreventDisplayOptimizations() {
		t.Fatal("fresh buffer should not have display shortcuts disabled")
	}

	a.Delete(ov)
	if !b.PreventDisplayOptimizations() {
		t.Error("removing a before-string overlay must disable display shortcuts")
	}

	// Plain overlays do not flag the buffer.
	b.SetPreventDisplayOptimizations(false)
	plain := a.New()
	if err := a.Attach(plain, b, 2, 4); err != nil {
		t.Fatalf("attach failed: %v", err)
	}
	a.Delete(plain)
	if b.PreventDisplayOptimizations() {
		t.Error("plain overlay removal should not flag the buffer")
	}
}

func TestRecenter(t *testing.T) {
	a, b := newFixture(t, "abcdefgh")

	refs := make([]Ref, 0, 3)
	for _, span := range [][2]textbuf.CharPos{{1, 3}, {4, 6}, {6, 8}} {
		ov := a.New()
		if err := a.Attach(ov, b, span[0], span[1]); err != nil {
			t.Fatalf("attach failed: %v", err)
		}
		refs = append(refs, ov)
	}

	a.Recenter(b, 4)

	before, after := a.Lists(b)
	if diff := cmp.Diff([]Ref{refs[0], refs[1]}, before); diff != "" {
		t.Errorf("before list mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Ref{refs[2]}, after); diff != "" {
		t.Errorf("after list mismatch (-want +got):\n%s", diff)
	}
	if a.Center(b) != 4 {
		t.Errorf("center = %v, want 4", a.Center(b))
	}

	// Deletion still works regardless of which list holds the overlay.
	a.Delete(refs[0])
	before, _ = a.Lists(b)
	if diff := cmp.Diff([]Ref{refs[1]}, before); diff != "" {
		t.Errorf("before list after delete (-want +got):\n%s", diff)
	}
}

func TestReattachAfterDelete(t *testing.T) {
	a, b := newFixture(t, "abcdef")

	ov := a.New()
	if err := a.Attach(ov, b, 1, 3); err != nil {
		t.Fatalf("attach failed: %v", err)
	}
	if err := a.Attach(ov, b, 2, 4); err != ErrAlreadyAttached {
		t.Errorf("expected ErrAlreadyAttached, got %v", err)
	}

	a.Delete(ov)
	if err := a.Attach(ov, b, 2, 4); err != nil {
		t.Fatalf("re-attach failed: %v", err)
	}
	start, _ := a.Start(ov)
	if start != 2 {
		t.Errorf("start = %v, want 2", start)
	}
}

func TestDiscardReusesSlot(t *testing.T) {
	a, b := newFixture(t, "abcdef")

	ov := a.New()
	if err := a.Attach(ov, b, 1, 3); err != nil {
		t.Fatalf("attach failed: %v", err)
	}
	a.Discard(ov)

	if got := a.New(); got != ov {
		t.Errorf("expected freed slot %d to be reused, got %d", ov, got)
	}
}

func TestInvalidRefPanics(t *testing.T) {
	a, _ := newFixture(t, "abcdef")

	defer func() {
		if recover() == nil {
			t.Error("expected panic for unallocated ref")
		}
	}()
	a.Delete(Ref(42))
}

func TestOverlaysAt(t *testing.T) {
	a, b := newFixture(t, "abcdefgh")

	ovA := a.New()
	ovB := a.New()
	empty := a.New()
	if err := a.Attach(ovA, b, 1, 4); err != nil {
		t.Fatalf("attach A failed: %v", err)
	}
	if err := a.Attach(ovB, b, 3, 6); err != nil {
		t.Fatalf("attach B failed: %v", err)
	}
	if err := a.Attach(empty, b, 3, 3); err != nil {
		t.Fatalf("attach empty failed: %v", err)
	}

	got := a.At(b, 3)
	want := map[Ref]bool{ovA: true, ovB: true}
	if len(got) != len(want) {
		t.Fatalf("At(3) = %v, want covers of exactly %v", got, want)
	}
	for _, ref := range got {
		if !want[ref] {
			t.Errorf("At(3) returned unexpected overlay %d", ref)
		}
	}

	// End positions are exclusive.
	for _, ref := range a.At(b, 4) {
		if ref == ovA {
			t.Error("At(4) should not include overlay ending at 4")
		}
	}
	if got := a.At(b, 7); len(got) != 0 {
		t.Errorf("At(7) = %v, want []", got)
	}
}

func TestOverlappingTracksEdits(t *testing.T) {
	a, b := newFixture(t, "abcdefgh")

	ov := a.New()
	if err := a.Attach(ov, b, 5, 7); err != nil {
		t.Fatalf("attach failed: %v", err)
	}

	if got := a.Overlapping(b, 1, 3); len(got) != 0 {
		t.Errorf("Overlapping(1,3) = %v, want []", got)
	}

	// Shift the overlay forward; the stale interval index must not keep
	// answering with the old positions.
	if _, err := b.Insert(1, "XXXX"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if got := a.Overlapping(b, 9, 12); len(got) != 1 || got[0] != ov {
		t.Errorf("Overlapping(9,12) = %v, want [%d]", got, ov)
	}
	if got := a.Overlapping(b, 1, 5); len(got) != 0 {
		t.Errorf("Overlapping(1,5) = %v, want []", got)
	}
}
