package lang

//go:generate go tool stringer --linecomment --type Kind,Mode --output value_string.go

import (
	"log/slog"
	"math"
	"strconv"
)

// Kind identifies which payload of a [Value] is active.
//
// Kinds are ordered by rank; [MutualCast] relies on the ordering.
type Kind uint8

const (
	KindNull     Kind = iota // null
	KindBoolean              // bool
	KindInteger              // int
	KindFloating             // float
	KindString               // string
)

// Value is the tagged union holding every runtime datum.
//
// The zero Value is Null. Values are immutable and copied by value; a String
// payload is an ordinary Go string, so copies never alias mutable storage.
type Value struct {
	str  string
	num  int64
	flt  float32
	kind Kind
	bit  bool
}

// Null returns the Null value.
func Null() Value { return Value{} }

// FromBoolean returns a Boolean value.
func FromBoolean(b bool) Value { return Value{kind: KindBoolean, bit: b} }

// FromInteger returns an Integer value.
func FromInteger(n int64) Value { return Value{kind: KindInteger, num: n} }

// FromFloating returns a Floating value.
func FromFloating(f float32) Value { return Value{kind: KindFloating, flt: f} }

// FromString returns a String value.
func FromString(s string) Value { return Value{kind: KindString, str: s} }

// Of converts a Go native value to a Value.
//
// Supported inputs are nil, bool, string, every signed and unsigned integer
// type, float32, float64, and Value itself. Unsigned values above
// [math.MaxInt64] and any other type fail with [ErrTypeMismatch].
func Of(x any) (Value, error) {
	switch v := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return v, nil
	case bool:
		return FromBoolean(v), nil
	case string:
		return FromString(v), nil
	case int:
		return FromInteger(int64(v)), nil
	case int8:
		return FromInteger(int64(v)), nil
	case int16:
		return FromInteger(int64(v)), nil
	case int32:
		return FromInteger(int64(v)), nil
	case int64:
		return FromInteger(v), nil
	case uint8:
		return FromInteger(int64(v)), nil
	case uint16:
		return FromInteger(int64(v)), nil
	case uint32:
		return FromInteger(int64(v)), nil
	case uint:
		return ofUnsigned(uint64(v))
	case uint64:
		return ofUnsigned(v)
	case float32:
		return FromFloating(v), nil
	case float64:
		return FromFloating(float32(v)), nil
	default:
		return Null(), ErrTypeMismatch.
			Wrapf("cannot convert %s to value", typeName(x))
	}
}

func ofUnsigned(u uint64) (Value, error) {
	if u > math.MaxInt64 {
		return Null(), ErrTypeMismatch.
			Wrapf("unsigned integer %d overflows int", u).
			With(slog.Uint64("value", u))
	}

	return FromInteger(int64(u)), nil
}

// Kind returns the active payload kind.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is Null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// ToInteger converts v to an integer.
// Floating values truncate toward zero; strings are parsed by
// [ParseInteger]. Null and Boolean values cannot convert.
func (v Value) ToInteger() (int64, error) {
	switch v.kind {
	case KindInteger:
		return v.num, nil
	case KindFloating:
		return int64(v.flt), nil
	case KindString:
		n, ok := ParseInteger(v.str)
		if !ok {
			return 0, ErrTypeMismatch.
				Wrapf("cannot convert string %q to int", v.str)
		}

		return n, nil
	default:
		return 0, ErrTypeMismatch.Wrapf("cannot convert %s to int", v.kind)
	}
}

// ToFloating converts v to a float.
// Integer values widen; strings are parsed by [ParseFloating]. Null and
// Boolean values cannot convert.
func (v Value) ToFloating() (float32, error) {
	switch v.kind {
	case KindInteger:
		return float32(v.num), nil
	case KindFloating:
		return v.flt, nil
	case KindString:
		f, ok := ParseFloating(v.str)
		if !ok {
			return 0, ErrTypeMismatch.
				Wrapf("cannot convert string %q to float", v.str)
		}

		return f, nil
	default:
		return 0, ErrTypeMismatch.Wrapf("cannot convert %s to float", v.kind)
	}
}

// ToString converts v to its script-visible text. Only Null cannot convert.
func (v Value) ToString() (string, error) {
	switch v.kind {
	case KindBoolean:
		return strconv.FormatBool(v.bit), nil
	case KindInteger:
		return FormatInteger(v.num), nil
	case KindFloating:
		return FormatFloating(v.flt), nil
	case KindString:
		return v.str, nil
	default:
		return "", ErrTypeMismatch.Wrapf("cannot convert %s to string", v.kind)
	}
}

// ToBoolean converts v to a truth value.
// Numbers are true when strictly positive, strings when non-empty. Only
// Null cannot convert.
func (v Value) ToBoolean() (bool, error) {
	switch v.kind {
	case KindBoolean:
		return v.bit, nil
	case KindInteger:
		return v.num > 0, nil
	case KindFloating:
		return v.flt > 0, nil
	case KindString:
		return v.str != "", nil
	default:
		return false, ErrTypeMismatch.Wrapf("cannot convert %s to bool", v.kind)
	}
}

// Native returns the Go payload of v: nil, bool, int64, float32, or string.
func (v Value) Native() any {
	switch v.kind {
	case KindBoolean:
		return v.bit
	case KindInteger:
		return v.num
	case KindFloating:
		return v.flt
	case KindString:
		return v.str
	default:
		return nil
	}
}

// String renders v for humans. Strings are quoted so that "1" and 1 differ.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindString:
		return strconv.Quote(v.str)
	default:
		s, _ := v.ToString()

		return s
	}
}

// Equal reports whether v and w have the same kind and payload.
func (v Value) Equal(w Value) bool {
	return v == w
}

// LogValue implements slog.LogValuer.
func (v Value) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("kind", v.kind.String()),
		slog.Any("value", v.Native()),
	)
}

// MutualCast returns the kind that wins when a and b are combined.
//
// Null dominates everything. Otherwise String wins over every kind, Boolean
// wins over the numeric kinds, and Integer widens to Floating. Arithmetic
// does not consult this ranking; operators dispatch on the left operand.
func MutualCast(a, b Kind) Kind {
	hi, lo := max(a, b), min(a, b)

	switch {
	case lo == KindNull:
		return KindNull
	case hi == KindString:
		return KindString
	case lo == KindBoolean:
		return KindBoolean
	default:
		return hi
	}
}
