package collections

import (
	"encoding/json"
	"iter"
	"slices"

	"github.com/kbukum/golinq/compare"
	"github.com/kbukum/golinq/errors"
	"github.com/kbukum/golinq/operator"
)

// List is an ordered, index-addressable collection.
type List struct {
	items []any
}

// NewList creates a list holding a copy of items.
func NewList(items ...any) *List {
	return &List{items: slices.Clone(items)}
}

// Count returns the number of elements.
func (l *List) Count() int { return len(l.items) }

// Items returns a copy of the elements.
func (l *List) Items() []any { return slices.Clone(l.items) }

// All iterates index/element pairs.
func (l *List) All() iter.Seq2[int, any] { return slices.All(l.items) }

// Get returns the element at i.
func (l *List) Get(i int) (any, error) {
	if err := l.checkIndex(i); err != nil {
		return nil, err
	}
	return l.items[i], nil
}

// Set replaces the element at i.
func (l *List) Set(i int, v any) error {
	if err := l.checkIndex(i); err != nil {
		return err
	}
	l.items[i] = v
	return nil
}

// Add appends v.
func (l *List) Add(v any) { l.items = append(l.items, v) }

// AddRange appends items in order.
func (l *List) AddRange(items ...any) { l.items = append(l.items, items...) }

// Insert places v at i, shifting later elements. i may equal Count.
func (l *List) Insert(i int, v any) error {
	return l.InsertRange(i, v)
}

// InsertRange places items starting at i.
func (l *List) InsertRange(i int, items ...any) error {
	if i < 0 || i > len(l.items) {
		return errors.IndexOutOfRange(i, len(l.items)+1)
	}
	l.items = slices.Insert(l.items, i, items...)
	return nil
}

// RemoveAt deletes the element at i.
func (l *List) RemoveAt(i int) error {
	if err := l.checkIndex(i); err != nil {
		return err
	}
	l.items = slices.Delete(l.items, i, i+1)
	return nil
}

// RemoveRange deletes n elements starting at i.
func (l *List) RemoveRange(i, n int) error {
	if err := l.checkRange("removeRange", i, n); err != nil {
		return err
	}
	l.items = slices.Delete(l.items, i, i+n)
	return nil
}

// Remove deletes the first element strictly equal to v and reports whether
// one was found.
func (l *List) Remove(v any) bool {
	i := l.IndexOf(v)
	if i < 0 {
		return false
	}
	l.items = slices.Delete(l.items, i, i+1)
	return true
}

// RemoveAll deletes every element pred matches and returns how many went.
func (l *List) RemoveAll(pred operator.Predicate) int {
	before := len(l.items)
	kept := l.items[:0]
	for i, v := range l.items {
		if !operator.Matches(pred(v, i)) {
			kept = append(kept, v)
		}
	}
	clear(l.items[len(kept):])
	l.items = kept
	return before - len(kept)
}

// GetRange returns a new list with n elements starting at i.
func (l *List) GetRange(i, n int) (*List, error) {
	if err := l.checkRange("getRange", i, n); err != nil {
		return nil, err
	}
	return NewList(l.items[i : i+n]...), nil
}

// IndexOf returns the position of the first element strictly equal to v, or -1.
func (l *List) IndexOf(v any) int {
	return slices.IndexFunc(l.items, func(item any) bool { return compare.Strict.Equal(item, v) })
}

// LastIndexOf returns the position of the last element strictly equal to v, or -1.
func (l *List) LastIndexOf(v any) int {
	for i := len(l.items) - 1; i >= 0; i-- {
		if compare.Strict.Equal(l.items[i], v) {
			return i
		}
	}
	return -1
}

// Contains reports whether some element is strictly equal to v.
func (l *List) Contains(v any) bool { return l.IndexOf(v) >= 0 }

// Find returns the first element pred matches.
func (l *List) Find(pred operator.Predicate) (any, bool) {
	if i := l.FindIndex(pred); i >= 0 {
		return l.items[i], true
	}
	return nil, false
}

// FindIndex returns the position of the first element pred matches, or -1.
func (l *List) FindIndex(pred operator.Predicate) int {
	for i, v := range l.items {
		if operator.Matches(pred(v, i)) {
			return i
		}
	}
	return -1
}

// FindLast returns the last element pred matches.
func (l *List) FindLast(pred operator.Predicate) (any, bool) {
	if i := l.FindLastIndex(pred); i >= 0 {
		return l.items[i], true
	}
	return nil, false
}

// FindLastIndex returns the position of the last element pred matches, or -1.
func (l *List) FindLastIndex(pred operator.Predicate) int {
	for i := len(l.items) - 1; i >= 0; i-- {
		if operator.Matches(pred(l.items[i], i)) {
			return i
		}
	}
	return -1
}

// FindAll returns a new list of every element pred matches.
func (l *List) FindAll(pred operator.Predicate) *List {
	out := &List{}
	for i, v := range l.items {
		if operator.Matches(pred(v, i)) {
			out.items = append(out.items, v)
		}
	}
	return out
}

// Exists reports whether pred matches any element.
func (l *List) Exists(pred operator.Predicate) bool { return l.FindIndex(pred) >= 0 }

// TrueForAll reports whether pred matches every element.
func (l *List) TrueForAll(pred operator.Predicate) bool {
	for i, v := range l.items {
		if !operator.Matches(pred(v, i)) {
			return false
		}
	}
	return true
}

// ForEach calls fn for every element in order.
func (l *List) ForEach(fn func(v any, i int)) {
	for i, v := range l.items {
		fn(v, i)
	}
}

// Reverse reverses the elements in place.
func (l *List) Reverse() { slices.Reverse(l.items) }

// Sort orders the elements in place, keeping equal elements in their
// original order. A nil ord sorts loosely.
func (l *List) Sort(ord compare.Ordering) {
	if ord == nil {
		ord = compare.Loose
	}
	slices.SortStableFunc(l.items, ord.Compare)
}

// Clear removes every element.
func (l *List) Clear() { l.items = nil }

// MarshalJSON encodes the list as a JSON array.
func (l *List) MarshalJSON() ([]byte, error) {
	if l.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.items)
}

func (l *List) checkIndex(i int) error {
	if i < 0 || i >= len(l.items) {
		return errors.IndexOutOfRange(i, len(l.items))
	}
	return nil
}

func (l *List) checkRange(op string, i, n int) error {
	if n < 0 {
		return errors.IllegalArgument(op, "count must not be negative")
	}
	if i < 0 || i > len(l.items) {
		return errors.IndexOutOfRange(i, len(l.items))
	}
	if i+n > len(l.items) {
		return errors.IllegalArgument(op, "index and count do not denote a valid range")
	}
	return nil
}
