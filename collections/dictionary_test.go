package collections

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbukum/golinq/errors"
)

func TestDictionary_SetKeepsPosition(t *testing.T) {
	d := NewDictionary()
	require.NoError(t, d.Set("a", 1))
	require.NoError(t, d.Set("b", 2))
	require.NoError(t, d.Set("a", 3))

	assert.Equal(t, 2, d.Count())
	assert.Equal(t, []any{"a", "b"}, d.Keys())
	assert.Equal(t, []any{3, 2}, d.Values())
	assert.Equal(t, []KeyValuePair{{"a", 3}, {"b", 2}}, d.Pairs())
}

func TestDictionary_Get(t *testing.T) {
	d := NewDictionary()
	require.NoError(t, d.Set(1, "one"))

	v, err := d.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "one", v)

	_, err = d.Get("1")
	assert.True(t, errors.Is(err, errors.ErrCodeNotFound))

	_, ok := d.TryGet([]any{1})
	assert.False(t, ok)
	assert.True(t, d.ContainsKey(1))
}

func TestDictionary_Remove(t *testing.T) {
	d := NewDictionary()
	for i, k := range []string{"a", "b", "c"} {
		require.NoError(t, d.Set(k, i))
	}
	assert.True(t, d.Remove("a"))
	assert.False(t, d.Remove("a"))

	v, err := d.Get("c")
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.Equal(t, []any{"b", "c"}, d.Keys())

	require.NoError(t, d.Set("a", 9))
	assert.Equal(t, []any{"b", "c", "a"}, d.Keys())
}

func TestDictionary_RejectsBadKeys(t *testing.T) {
	d := NewDictionary()
	assert.True(t, errors.Is(d.Set([]any{1}, 1), errors.ErrCodeIllegalArgument))
	assert.True(t, errors.Is(d.Set(map[string]any{}, 1), errors.ErrCodeIllegalArgument))
	assert.True(t, errors.Is(d.Set(nil, 1), errors.ErrCodeIllegalArgument))
	assert.Equal(t, 0, d.Count())
}

func TestDictionary_All(t *testing.T) {
	d := NewDictionary()
	require.NoError(t, d.Set("x", 1))
	require.NoError(t, d.Set("y", 2))

	var keys []any
	for k := range d.All() {
		keys = append(keys, k)
		break
	}
	assert.Equal(t, []any{"x"}, keys)
}

func TestDictionary_MarshalJSON(t *testing.T) {
	d := NewDictionary()
	require.NoError(t, d.Set(2, "b"))
	require.NoError(t, d.Set("k", []any{1}))

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"key":2,"value":"b"},{"key":"k","value":[1]}]`, string(b))
	assert.Equal(t, "[2, b]", d.Pairs()[0].String())
}
