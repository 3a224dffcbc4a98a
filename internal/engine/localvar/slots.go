package localvar

import (
	"fmt"
	"sync"
)

// Slot is a process-wide index identifying one registered buffer-local
// variable.
type Slot int

// Table assigns slot indices to buffer-local variable names. The table
// only grows; registered slots are never removed. Registration may
// happen from initialization code on any goroutine, so the table is the
// one piece of the engine that locks.
type Table struct {
	mu     sync.RWMutex
	names  []string
	byName map[string]Slot
}

// NewTable creates an empty slot table.
func NewTable() *Table {
	return &Table{byName: make(map[string]Slot)}
}

// Register assigns the next slot index to name. Registering the same
// name twice is a programming error and panics.
func (t *Table) Register(name string) Slot {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.byName[name]; exists {
		panic(fmt.Sprintf("localvar: variable %q registered twice", name))
	}
	slot := Slot(len(t.names))
	t.names = append(t.names, name)
	t.byName[name] = slot
	return slot
}

// Lookup returns the slot registered for name.
func (t *Table) Lookup(name string) (Slot, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	slot, ok := t.byName[name]
	return slot, ok
}

// Name returns the variable name registered at slot.
func (t *Table) Name(slot Slot) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if slot < 0 || int(slot) >= len(t.names) {
		panic(fmt.Sprintf("localvar: Name called with invalid slot %d", slot))
	}
	return t.names[slot]
}

// Count returns the number of registered slots.
func (t *Table) Count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.names)
}
