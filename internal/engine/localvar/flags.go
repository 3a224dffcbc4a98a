package localvar

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Flags is one buffer's record of which variable slots carry a local
// binding. Only whether a slot's value is nonzero is ever observable,
// so the vector is a bitset rather than a byte array.
type Flags struct {
	bits  *bitset.BitSet
	count int
}

// NewFlags creates a flag vector sized to the table's current slot
// count, with every slot reporting no local value.
func NewFlags(t *Table) *Flags {
	n := t.Count()
	return &Flags{bits: bitset.New(uint(n)), count: n}
}

// HasLocal reports whether the variable at slot has a local binding in
// this buffer. An out-of-range slot panics.
func (f *Flags) HasLocal(slot Slot) bool {
	f.check(slot)
	return f.bits.Test(uint(slot))
}

// SetLocal records value for the variable at slot; zero means no local
// binding. An out-of-range slot panics.
func (f *Flags) SetLocal(slot Slot, value byte) {
	f.check(slot)
	if value != 0 {
		f.bits.Set(uint(slot))
	} else {
		f.bits.Clear(uint(slot))
	}
}

// Grow extends the vector to the table's current slot count after a
// registration. New slots default to no local value. Growing to a
// smaller table is a no-op; slots never disappear.
func (f *Flags) Grow(t *Table) {
	if n := t.Count(); n > f.count {
		f.count = n
	}
}

// Count returns the number of slots this vector covers.
func (f *Flags) Count() int { return f.count }

func (f *Flags) check(slot Slot) {
	if slot < 0 || int(slot) >= f.count {
		panic(fmt.Sprintf("localvar: flag access with invalid slot %d (count %d)", slot, f.count))
	}
}
