// Package sequence provides the ordered, index-addressable element store that
// the query engine threads through an operator chain.
//
// A Sequence never shares its backing array with the caller: constructors copy
// their input and Items returns a copy, so indices stay contiguous from 0 and
// no aliasing escapes.
package sequence

import (
	"iter"

	"github.com/kbukum/golinq/errors"
)

// Sequence is an ordered, mutable collection of elements of any type.
type Sequence struct {
	items []any
}

// New creates a sequence holding a copy of items.
func New(items ...any) *Sequence {
	return Of(items)
}

// Of creates a sequence holding a copy of items.
func Of(items []any) *Sequence {
	s := &Sequence{items: make([]any, len(items))}
	copy(s.items, items)
	return s
}

// Empty creates a sequence with no elements.
func Empty() *Sequence {
	return &Sequence{items: []any{}}
}

// WithCapacity creates an empty sequence with room for n elements.
func WithCapacity(n int) *Sequence {
	if n < 0 {
		n = 0
	}
	return &Sequence{items: make([]any, 0, n)}
}

// Copy returns a structural copy; mutating either side never affects the other.
func (s *Sequence) Copy() *Sequence {
	return Of(s.items)
}

// Count returns the number of elements.
func (s *Sequence) Count() int {
	return len(s.items)
}

// Get returns the element at index i.
func (s *Sequence) Get(i int) (any, error) {
	if i < 0 || i >= len(s.items) {
		return nil, errors.IndexOutOfRange(i, len(s.items))
	}
	return s.items[i], nil
}

// At returns the element at index i and panics when i is out of range.
// Operators use it inside loops bounded by Count.
func (s *Sequence) At(i int) any {
	return s.items[i]
}

// ReplaceAll swaps the whole contents for a copy of items.
func (s *Sequence) ReplaceAll(items []any) {
	next := make([]any, len(items))
	copy(next, items)
	s.items = next
}

// Append adds item at the end.
func (s *Sequence) Append(item any) {
	s.items = append(s.items, item)
}

// Items returns a copy of the elements in order.
func (s *Sequence) Items() []any {
	out := make([]any, len(s.items))
	copy(out, s.items)
	return out
}

// All iterates over index/element pairs in order.
func (s *Sequence) All() iter.Seq2[int, any] {
	return func(yield func(int, any) bool) {
		for i, v := range s.items {
			if !yield(i, v) {
				return
			}
		}
	}
}
