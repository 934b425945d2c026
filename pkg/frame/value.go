package frame

import (
	"encoding/binary"
	"math"
	"strconv"
)

// Kind identifies the scalar type stored by a column.
type Kind uint8

const (
	// KindMissing is the kind of an absent cell, never of a column.
	KindMissing Kind = iota
	KindInt
	KindFloat
	KindString
	KindBool
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindMissing:
		return "missing"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Value is a single cell: a scalar of one of the supported kinds, or missing.
// The zero Value is missing.
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
	b    bool
}

// Int returns an integer value.
func Int(v int64) Value { return Value{kind: KindInt, i: v} }

// Float returns a floating-point value.
func Float(v float64) Value { return Value{kind: KindFloat, f: v} }

// String returns a string value.
func String(v string) Value { return Value{kind: KindString, s: v} }

// Bool returns a boolean value.
func Bool(v bool) Value { return Value{kind: KindBool, b: v} }

// Missing returns the missing value.
func Missing() Value { return Value{} }

// Kind returns the kind of the value.
func (v Value) Kind() Kind { return v.kind }

// IsMissing reports whether the value is missing.
func (v Value) IsMissing() bool { return v.kind == KindMissing }

// Int returns the integer scalar. Valid only for KindInt values.
func (v Value) Int() int64 { return v.i }

// Float returns the floating-point scalar. Valid only for KindFloat values.
func (v Value) Float() float64 { return v.f }

// Str returns the string scalar. Valid only for KindString values.
func (v Value) Str() string { return v.s }

// Bool returns the boolean scalar. Valid only for KindBool values.
func (v Value) Bool() bool { return v.b }

// Any returns the scalar as a native Go value, or nil for missing.
func (v Value) Any() any {
	switch v.kind {
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindBool:
		return v.b
	default:
		return nil
	}
}

// String formats the value for display. Missing formats as the empty string.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return v.s
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return ""
	}
}

// numeric returns the value as a float64 if it is numeric.
func (v Value) numeric() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.i), true
	case KindFloat:
		return v.f, true
	default:
		return 0, false
	}
}

// EqualValue reports value-level equality. Numeric values compare across
// kinds, so Int(1) equals Float(1). Missing equals only missing.
func (v Value) EqualValue(o Value) bool {
	if v.kind == KindMissing || o.kind == KindMissing {
		return v.kind == o.kind
	}
	if a, ok := v.numeric(); ok {
		if b, ok := o.numeric(); ok {
			return a == b
		}
		return false
	}
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.s == o.s
	case KindBool:
		return v.b == o.b
	}
	return false
}

// Identical reports representation-level equality: same kind and the same
// scalar bit for bit. Identical implies EqualValue except for numeric values
// of different kinds, which are never identical.
func (v Value) Identical(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindInt:
		return v.i == o.i
	case KindFloat:
		return math.Float64bits(v.f) == math.Float64bits(o.f)
	case KindString:
		return v.s == o.s
	case KindBool:
		return v.b == o.b
	}
	return true
}

// Less defines the sort order over values. Missing sorts before everything
// else, numeric values compare by magnitude across kinds, and otherwise
// values order by kind, then by scalar (false before true for booleans).
func (v Value) Less(o Value) bool {
	if v.kind == KindMissing || o.kind == KindMissing {
		return v.kind == KindMissing && o.kind != KindMissing
	}
	if a, aok := v.numeric(); aok {
		if b, bok := o.numeric(); bok {
			return a < b
		}
	}
	if v.kind != o.kind {
		return v.kind < o.kind
	}
	switch v.kind {
	case KindString:
		return v.s < o.s
	case KindBool:
		return !v.b && o.b
	}
	return false
}

// appendEncoded appends a canonical byte encoding of the value to dst.
// The encoding is injective per kind, so it is safe for hashing and for
// grouping rows by key.
func (v Value) appendEncoded(dst []byte) []byte {
	dst = append(dst, byte(v.kind))
	switch v.kind {
	case KindInt:
		dst = binary.BigEndian.AppendUint64(dst, uint64(v.i))
	case KindFloat:
		dst = binary.BigEndian.AppendUint64(dst, math.Float64bits(v.f))
	case KindString:
		dst = binary.BigEndian.AppendUint64(dst, uint64(len(v.s)))
		dst = append(dst, v.s...)
	case KindBool:
		if v.b {
			dst = append(dst, 1)
		} else {
			dst = append(dst, 0)
		}
	}
	return dst
}
