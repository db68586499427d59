package operator

import (
	"github.com/kbukum/golinq/coerce"
	"github.com/kbukum/golinq/errors"
	"github.com/kbukum/golinq/sequence"
)

// AsEnumerable returns a structural copy of src.
func AsEnumerable(src *sequence.Sequence) *sequence.Sequence {
	return src.Copy()
}

// Cast converts every element to typeName. A non-scalar element fails with
// TYPE_MISMATCH; a type name outside the closed set fails with UNSUPPORTED_TYPE.
func Cast(src *sequence.Sequence, typeName string) (*sequence.Sequence, error) {
	return convert(src, typeName, true)
}

// OfType converts every scalar element to typeName and drops the rest.
func OfType(src *sequence.Sequence, typeName string) (*sequence.Sequence, error) {
	return convert(src, typeName, false)
}

func convert(src *sequence.Sequence, typeName string, strict bool) (*sequence.Sequence, error) {
	fn, err := coerce.Lookup(typeName)
	if err != nil {
		return nil, err
	}
	dst := sequence.WithCapacity(src.Count())
	for _, v := range src.All() {
		if !coerce.IsScalar(v) {
			if strict {
				return nil, errors.TypeMismatch("cast", v)
			}
			continue
		}
		out, err := fn(v)
		if err != nil {
			return nil, err
		}
		dst.Append(out)
	}
	return dst, nil
}
