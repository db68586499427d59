package collections

import (
	"encoding/json"
	"fmt"
	"iter"
	"reflect"

	"github.com/kbukum/golinq/errors"
)

// KeyValuePair is one dictionary entry.
type KeyValuePair struct {
	Key   any `json:"key"`
	Value any `json:"value"`
}

// String renders the pair as [key, value].
func (p KeyValuePair) String() string {
	return fmt.Sprintf("[%v, %v]", p.Key, p.Value)
}

// Dictionary maps comparable keys to values, remembering insertion order.
type Dictionary struct {
	entries []KeyValuePair
	index   map[any]int
}

// NewDictionary creates an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{index: make(map[any]int)}
}

// Count returns the number of entries.
func (d *Dictionary) Count() int { return len(d.entries) }

// Set stores value under key. An existing key keeps its position and takes
// the new value.
func (d *Dictionary) Set(key, value any) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if i, ok := d.index[key]; ok {
		d.entries[i].Value = value
		return nil
	}
	d.index[key] = len(d.entries)
	d.entries = append(d.entries, KeyValuePair{Key: key, Value: value})
	return nil
}

// Get returns the value stored under key.
func (d *Dictionary) Get(key any) (any, error) {
	v, ok := d.TryGet(key)
	if !ok {
		return nil, errors.NotFound("key", key)
	}
	return v, nil
}

// TryGet returns the value stored under key and whether it was present.
func (d *Dictionary) TryGet(key any) (any, bool) {
	if checkKey(key) != nil {
		return nil, false
	}
	i, ok := d.index[key]
	if !ok {
		return nil, false
	}
	return d.entries[i].Value, true
}

// ContainsKey reports whether key is present.
func (d *Dictionary) ContainsKey(key any) bool {
	_, ok := d.TryGet(key)
	return ok
}

// Remove deletes key and reports whether it was present.
func (d *Dictionary) Remove(key any) bool {
	if checkKey(key) != nil {
		return false
	}
	i, ok := d.index[key]
	if !ok {
		return false
	}
	delete(d.index, key)
	d.entries = append(d.entries[:i], d.entries[i+1:]...)
	for j := i; j < len(d.entries); j++ {
		d.index[d.entries[j].Key] = j
	}
	return true
}

// Keys returns the keys in insertion order.
func (d *Dictionary) Keys() []any {
	out := make([]any, len(d.entries))
	for i, e := range d.entries {
		out[i] = e.Key
	}
	return out
}

// Values returns the values in key insertion order.
func (d *Dictionary) Values() []any {
	out := make([]any, len(d.entries))
	for i, e := range d.entries {
		out[i] = e.Value
	}
	return out
}

// Pairs returns a copy of the entries in insertion order.
func (d *Dictionary) Pairs() []KeyValuePair {
	return append([]KeyValuePair(nil), d.entries...)
}

// All iterates key/value pairs in insertion order.
func (d *Dictionary) All() iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		for _, e := range d.entries {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// MarshalJSON encodes the entries as an ordered array of {key, value}
// objects, so keys of any type survive.
func (d *Dictionary) MarshalJSON() ([]byte, error) {
	if d.entries == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(d.entries)
}

func checkKey(key any) error {
	if key == nil {
		return errors.IllegalArgument("dictionary", "key must not be nil")
	}
	if !reflect.ValueOf(key).Comparable() {
		return errors.IllegalArgument("dictionary", fmt.Sprintf("key of type %T is not comparable", key))
	}
	return nil
}
