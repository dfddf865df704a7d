// internal/app/store/records/collection.go
package records

import (
	"errors"

	"github.com/dalemusser/stemboard/internal/domain/models"
)

// ErrNotFound is returned by Get when no record carries the requested id.
var ErrNotFound = errors.New("record not found")

// Collection is an ordered, in-memory sequence of records of one kind.
// It does no locking; the owner serializes access.
type Collection[T models.Record] struct {
	items []T
}

// New returns a collection holding a copy of seed, in order.
func New[T models.Record](seed []T) *Collection[T] {
	items := make([]T, len(seed))
	copy(items, seed)
	return &Collection[T]{items: items}
}

// Len returns the number of records.
func (c *Collection[T]) Len() int {
	return len(c.items)
}

// All returns a copy of the records in insertion order.
func (c *Collection[T]) All() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// NextID is the id the next created record receives: the current length
// plus one. After a deletion this can repeat an id that is still in use.
func (c *Collection[T]) NextID() int {
	return len(c.items) + 1
}

// Has reports whether any record carries id.
func (c *Collection[T]) Has(id int) bool {
	_, ok := c.Find(id)
	return ok
}

// Find returns the first record with the given id.
func (c *Collection[T]) Find(id int) (T, bool) {
	for _, it := range c.items {
		if it.RecordID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Get is Find with an error result.
func (c *Collection[T]) Get(id int) (T, error) {
	it, ok := c.Find(id)
	if !ok {
		return it, ErrNotFound
	}
	return it, nil
}

// Append adds rec at the end.
func (c *Collection[T]) Append(rec T) {
	c.items = append(c.items, rec)
}

// Replace swaps the first record with rec's id for rec. It reports false
// when no such record exists.
func (c *Collection[T]) Replace(rec T) bool {
	for i, it := range c.items {
		if it.RecordID() == rec.RecordID() {
			c.items[i] = rec
			return true
		}
	}
	return false
}

// Remove deletes every record carrying id and returns how many were removed.
func (c *Collection[T]) Remove(id int) int {
	kept := c.items[:0]
	removed := 0
	for _, it := range c.items {
		if it.RecordID() == id {
			removed++
			continue
		}
		kept = append(kept, it)
	}
	var zero T
	for i := len(kept); i < len(c.items); i++ {
		c.items[i] = zero
	}
	c.items = kept
	return removed
}
