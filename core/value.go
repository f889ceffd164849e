package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind represents the type of a dynamic argument value
type Kind uint8

const (
	StringKind Kind = iota
	IntKind
	Float64Kind
	BoolKind
	ListKind
	AnyKind
)

// Value is a tagged union carrying one dynamically-typed log argument.
// Payloads live in fixed fields so that common types like int and bool
// never escape to the heap; AnyVal exists as a fallback for arbitrary
// types but will cause an allocation.
type Value struct {
	Kind    Kind
	Str     string
	Int64   int64
	Float64 float64
	List    []Value
	AnyVal  interface{}
}

// String creates a string value
func String(v string) Value {
	return Value{Kind: StringKind, Str: v}
}

// Int creates an int value
func Int(v int) Value {
	return Value{Kind: IntKind, Int64: int64(v)}
}

// Int64 creates an int64 value
func Int64(v int64) Value {
	return Value{Kind: IntKind, Int64: v}
}

// Float64 creates a float64 value
func Float64(v float64) Value {
	return Value{Kind: Float64Kind, Float64: v}
}

// Bool creates a bool value
func Bool(v bool) Value {
	i := int64(0)
	if v {
		i = 1
	}
	return Value{Kind: BoolKind, Int64: i}
}

// List creates an ordered-collection value
func List(elems ...Value) Value {
	return Value{Kind: ListKind, List: elems}
}

// Any creates a value holding an arbitrary type
func Any(v interface{}) Value {
	return Value{Kind: AnyKind, AnyVal: v}
}

// IsEmptyList reports whether the value is an ordered collection with
// no elements. Such values are dropped by the formatter: they fill no
// placeholder and never reach the extra-args suffix.
func (v Value) IsEmptyList() bool {
	return v.Kind == ListKind && len(v.List) == 0
}

// StringValue returns the default string representation of the value
func (v Value) StringValue() string {
	switch v.Kind {
	case StringKind:
		return v.Str
	case IntKind:
		return strconv.FormatInt(v.Int64, 10)
	case Float64Kind:
		return strconv.FormatFloat(v.Float64, 'f', -1, 64)
	case BoolKind:
		return strconv.FormatBool(v.Int64 == 1)
	case ListKind:
		var b strings.Builder
		b.WriteByte('[')
		for i, e := range v.List {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(e.StringValue())
		}
		b.WriteByte(']')
		return b.String()
	case AnyKind:
		return fmt.Sprintf("%v", v.AnyVal)
	default:
		return ""
	}
}
