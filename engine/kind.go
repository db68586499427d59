package engine

import (
	"fmt"
	"strings"

	"github.com/kbukum/golinq/errors"
)

// Kind identifies an operator. The set is closed.
type Kind int

const (
	KindInvalid Kind = iota

	// chainable
	KindSkip
	KindSkipWhile
	KindTake
	KindTakeWhile
	KindAsEnumerable
	KindCast
	KindOfType
	KindSelect
	KindDistinct
	KindWhere
	KindExcept
	KindIntersect
	KindUnion
	KindConcat
	KindZip

	// immediate
	KindSum
	KindAverage
	KindMax
	KindMin
	KindCount
	KindAggregate
	KindAll
	KindAny
	KindContains
	KindElementAt
	KindFirst
	KindLast
	KindSingle
	KindSequenceEqual

	kindEnd
)

var kindNames = [...]string{
	KindInvalid:       "invalid",
	KindSkip:          "skip",
	KindSkipWhile:     "skipWhile",
	KindTake:          "take",
	KindTakeWhile:     "takeWhile",
	KindAsEnumerable:  "asEnumerable",
	KindCast:          "cast",
	KindOfType:        "ofType",
	KindSelect:        "select",
	KindDistinct:      "distinct",
	KindWhere:         "where",
	KindExcept:        "except",
	KindIntersect:     "intersect",
	KindUnion:         "union",
	KindConcat:        "concat",
	KindZip:           "zip",
	KindSum:           "sum",
	KindAverage:       "average",
	KindMax:           "max",
	KindMin:           "min",
	KindCount:         "count",
	KindAggregate:     "aggregate",
	KindAll:           "all",
	KindAny:           "any",
	KindContains:      "contains",
	KindElementAt:     "elementAt",
	KindFirst:         "first",
	KindLast:          "last",
	KindSingle:        "single",
	KindSequenceEqual: "sequenceEqual",
}

// aliases maps alternative operator names onto their kind.
var aliases = map[string]Kind{
	"filter": KindWhere,
}

// String returns the operator name.
func (k Kind) String() string {
	if k.Valid() || k == KindInvalid {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Valid reports whether k names an operator.
func (k Kind) Valid() bool {
	return k > KindInvalid && k < kindEnd
}

// Chainable reports whether k produces a sequence rather than a value.
func (k Kind) Chainable() bool {
	return k >= KindSkip && k <= KindZip
}

// Kinds returns every operator kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindEnd-1)
	for k := KindSkip; k < kindEnd; k++ {
		out = append(out, k)
	}
	return out
}

// ParseKind resolves an operator name, ignoring case. "filter" is accepted
// for where.
func ParseKind(name string) (Kind, error) {
	n := strings.TrimSpace(name)
	for k := KindSkip; k < kindEnd; k++ {
		if strings.EqualFold(kindNames[k], n) {
			return k, nil
		}
	}
	if k, ok := aliases[strings.ToLower(n)]; ok {
		return k, nil
	}
	return KindInvalid, errors.InvalidInput("op", fmt.Sprintf("unknown operator %q", name))
}
