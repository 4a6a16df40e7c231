package types

import "time"

// Item is one data row within a collection. Items are created and mutated
// through their owning Collection so that Data is always validated against
// the declared fields.
type Item struct {
	ID        string           // UUID v7, generated on creation, never reused.
	Data      map[string]Value // Values keyed by field name.
	CreatedAt time.Time        // Timestamp of creation.
	UpdatedAt time.Time        // Timestamp of last data mutation; never before CreatedAt.
}

// Get returns the value stored under the given field name.
func (it *Item) Get(field string) (Value, bool) {
	v, ok := it.Data[field]
	return v, ok
}

// Equal reports whether two items carry the same id, data, and timestamps
// (compared by instant).
func (it *Item) Equal(o *Item) bool {
	if it.ID != o.ID {
		return false
	}
	if !it.CreatedAt.Equal(o.CreatedAt) || !it.UpdatedAt.Equal(o.UpdatedAt) {
		return false
	}
	if len(it.Data) != len(o.Data) {
		return false
	}
	for k, v := range it.Data {
		ov, ok := o.Data[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// cloneData copies a data map so that a failed mutation never leaks
// caller-held references into the item.
func cloneData(data map[string]Value) map[string]Value {
	cp := make(map[string]Value, len(data))
	for k, v := range data {
		cp[k] = v
	}
	return cp
}
