package overlay

import "errors"

// Ref is a stable arena index addressing one overlay. A Ref stays valid
// from New until Discard, across attach and delete.
type Ref int32

// None is the null Ref, used to terminate the linked lists.
const None Ref = -1

// Property keys with engine-level meaning. An overlay carrying either
// display-string property disables redisplay shortcuts for its buffer
// when the overlay is removed, because the removed string may contain
// structural characters that cached layout assumed were still there.
const (
	PropBeforeString = "before-string"
	PropAfterString  = "after-string"
)

// Errors returned by overlay operations.
var (
	ErrAlreadyAttached = errors.New("overlay is already attached to a buffer")
)

// Property is one key/value pair of an overlay's property list.
type Property struct {
	Key   string
	Value any
}

// PropList is an association list of properties. Lookup returns the
// first entry with a matching key, mirroring assoc semantics.
type PropList []Property

// Get returns the value for key, or (nil, false).
func (pl PropList) Get(key string) (any, bool) {
	for _, p := range pl {
		if p.Key == key {
			return p.Value, true
		}
	}
	return nil, false
}

// Put sets key to value, replacing the first existing entry or
// appending a new one. It returns the updated list.
func (pl PropList) Put(key string, value any) PropList {
	for i, p := range pl {
		if p.Key == key {
			pl[i].Value = value
			return pl
		}
	}
	return append(pl, Property{Key: key, Value: value})
}

// Copy returns a fresh list sharing the property values. Mutating the
// copy's structure does not affect the original.
func (pl PropList) Copy() PropList {
	if pl == nil {
		return nil
	}
	out := make(PropList, len(pl))
	copy(out, pl)
	return out
}
