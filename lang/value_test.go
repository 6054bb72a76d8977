package lang

import (
	"errors"
	"math"
	"testing"
)

func TestValue_ToBoolean(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   Value
		want    bool
		wantErr bool
	}{
		{name: "null", value: Null(), wantErr: true},
		{name: "true", value: FromBoolean(true), want: true},
		{name: "false", value: FromBoolean(false), want: false},
		{name: "int zero", value: FromInteger(0), want: false},
		{name: "int one", value: FromInteger(1), want: true},
		{name: "int negative", value: FromInteger(-1), want: false},
		{name: "float positive", value: FromFloating(0.5), want: true},
		{name: "float zero", value: FromFloating(0), want: false},
		{name: "float negative", value: FromFloating(-0.5), want: false},
		{name: "empty string", value: FromString(""), want: false},
		{name: "string", value: FromString("0"), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.value.ToBoolean()
			if (err != nil) != tt.wantErr {
				t.Fatalf("ToBoolean() error = %v, wantErr %v", err, tt.wantErr)
			}

			if err != nil && !errors.Is(err, ErrTypeMismatch) {
				t.Errorf("ToBoolean() error = %v, want ErrTypeMismatch", err)
			}

			if got != tt.want {
				t.Errorf("ToBoolean() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValue_ToInteger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   Value
		want    int64
		wantErr bool
	}{
		{name: "null", value: Null(), wantErr: true},
		{name: "bool", value: FromBoolean(true), wantErr: true},
		{name: "int", value: FromInteger(-7), want: -7},
		{name: "float truncates", value: FromFloating(2.9), want: 2},
		{name: "negative float truncates", value: FromFloating(-2.9), want: -2},
		{name: "decimal string", value: FromString(" -42"), want: -42},
		{name: "hex string", value: FromString("0x1F"), want: 31},
		{name: "octal string", value: FromString("017"), want: 15},
		{name: "binary string", value: FromString("0b101"), want: 5},
		{name: "bad string", value: FromString("12a"), wantErr: true},
		{name: "empty string", value: FromString(""), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.value.ToInteger()
			if (err != nil) != tt.wantErr {
				t.Fatalf("ToInteger() error = %v, wantErr %v", err, tt.wantErr)
			}

			if got != tt.want {
				t.Errorf("ToInteger() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestValue_ToFloating(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   Value
		want    float32
		wantErr bool
	}{
		{name: "null", value: Null(), wantErr: true},
		{name: "bool", value: FromBoolean(false), wantErr: true},
		{name: "int widens", value: FromInteger(3), want: 3},
		{name: "float", value: FromFloating(0.25), want: 0.25},
		{name: "string", value: FromString("1.5"), want: 1.5},
		{name: "integral string", value: FromString("-4"), want: -4},
		{name: "exponent string", value: FromString("1e3"), wantErr: true},
		{name: "word", value: FromString("abc"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.value.ToFloating()
			if (err != nil) != tt.wantErr {
				t.Fatalf("ToFloating() error = %v, wantErr %v", err, tt.wantErr)
			}

			if got != tt.want {
				t.Errorf("ToFloating() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValue_ToString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   Value
		want    string
		wantErr bool
	}{
		{name: "null", value: Null(), wantErr: true},
		{name: "true", value: FromBoolean(true), want: "true"},
		{name: "false", value: FromBoolean(false), want: "false"},
		{name: "int", value: FromInteger(-7), want: "-7"},
		{name: "float", value: FromFloating(1.5), want: "1.5"},
		{name: "tenth", value: FromFloating(0.1), want: "0.1"},
		{name: "integral float", value: FromFloating(3), want: "3"},
		{name: "string", value: FromString("a b"), want: "a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.value.ToString()
			if (err != nil) != tt.wantErr {
				t.Fatalf("ToString() error = %v, wantErr %v", err, tt.wantErr)
			}

			if got != tt.want {
				t.Errorf("ToString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValue_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, n := range []int64{0, 1, -1, 42, math.MaxInt64, math.MinInt64} {
		s, err := FromInteger(n).ToString()
		if err != nil {
			t.Fatalf("ToString(%d) error = %v", n, err)
		}

		got, ok := ParseInteger(s)
		if !ok || got != n {
			t.Errorf("ParseInteger(%q) = %d, %v, want %d", s, got, ok, n)
		}
	}

	for _, f := range []float32{0, 1.5, -2.25, 0.1, 1e-7, math.MaxFloat32} {
		s, err := FromFloating(f).ToString()
		if err != nil {
			t.Fatalf("ToString(%v) error = %v", f, err)
		}

		got, ok := ParseFloating(s)
		if !ok || got != f {
			t.Errorf("ParseFloating(%q) = %v, %v, want %v", s, got, ok, f)
		}
	}
}

func TestMutualCast(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b Kind
		want Kind
	}{
		{KindNull, KindString, KindNull},
		{KindInteger, KindNull, KindNull},
		{KindString, KindBoolean, KindString},
		{KindFloating, KindString, KindString},
		{KindBoolean, KindInteger, KindBoolean},
		{KindFloating, KindBoolean, KindBoolean},
		{KindInteger, KindFloating, KindFloating},
		{KindInteger, KindInteger, KindInteger},
		{KindBoolean, KindBoolean, KindBoolean},
	}

	for _, tt := range tests {
		if got := MutualCast(tt.a, tt.b); got != tt.want {
			t.Errorf("MutualCast(%s, %s) = %s, want %s", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      any
		want    Value
		wantErr bool
	}{
		{name: "nil", in: nil, want: Null()},
		{name: "bool", in: true, want: FromBoolean(true)},
		{name: "int8", in: int8(-3), want: FromInteger(-3)},
		{name: "uint32", in: uint32(7), want: FromInteger(7)},
		{name: "uint64 in range", in: uint64(9), want: FromInteger(9)},
		{name: "uint64 overflow", in: uint64(math.MaxUint64), wantErr: true},
		{name: "float64", in: 1.5, want: FromFloating(1.5)},
		{name: "string", in: "x", want: FromString("x")},
		{name: "value", in: FromInteger(2), want: FromInteger(2)},
		{name: "struct", in: struct{}{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Of(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Of(%v) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}

			if err != nil && !errors.Is(err, ErrTypeMismatch) {
				t.Errorf("Of(%v) error = %v, want ErrTypeMismatch", tt.in, err)
			}

			if !got.Equal(tt.want) {
				t.Errorf("Of(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestValue_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value Value
		want  string
	}{
		{Null(), "null"},
		{FromBoolean(false), "false"},
		{FromInteger(5), "5"},
		{FromFloating(-0.5), "-0.5"},
		{FromString("a"), `"a"`},
	}

	for _, tt := range tests {
		if got := tt.value.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}

	if got := KindFloating.String(); got != "float" {
		t.Errorf("KindFloating.String() = %q, want %q", got, "float")
	}

	if got := ModeSet.String(); got != "set" {
		t.Errorf("ModeSet.String() = %q, want %q", got, "set")
	}
}

func TestValue_Native(t *testing.T) {
	t.Parallel()

	if got := Null().Native(); got != nil {
		t.Errorf("Null().Native() = %v, want nil", got)
	}

	if got := FromInteger(3).Native(); got != int64(3) {
		t.Errorf("FromInteger(3).Native() = %v (%T), want int64(3)", got, got)
	}

	if got := FromFloating(1.5).Native(); got != float32(1.5) {
		t.Errorf("FromFloating(1.5).Native() = %v (%T)", got, got)
	}

	if got := FromString("s").Native(); got != "s" {
		t.Errorf("FromString(s).Native() = %v", got)
	}
}
