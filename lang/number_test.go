package lang

import (
	"math"
	"testing"
)

func TestParseInteger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   int64
		wantOK bool
	}{
		{"42", 42, true},
		{"+42", 42, true},
		{"-42", -42, true},
		{" \t\r\n7", 7, true},
		{"0x1f", 31, true},
		{"0X1F", 31, true},
		{"-0x10", -16, true},
		{"0b101", 5, true},
		{"0B11", 3, true},
		{"017", 15, true},
		{"0", 0, true},
		{"-0", 0, true},
		{"9223372036854775807", math.MaxInt64, true},
		{"-9223372036854775808", math.MinInt64, true},
		{"9223372036854775808", 0, false},
		{"-9223372036854775809", 0, false},
		{"", 0, false},
		{"-", 0, false},
		{"0x", 0, false},
		{"0b2", 0, false},
		{"08", 0, false},
		{"12a", 0, false},
		{"1 ", 0, false},
		{"1_000", 0, false},
		{"1.5", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseInteger(tt.in)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ParseInteger(%q) = %d, %v, want %d, %v",
				tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestParseFloating(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   float32
		wantOK bool
	}{
		{"1.5", 1.5, true},
		{"-0.25", -0.25, true},
		{"+3", 3, true},
		{"  2.0", 2, true},
		{"007.5", 7.5, true},
		{"1.", 0, false},
		{".5", 0, false},
		{"1e3", 0, false},
		{"inf", 0, false},
		{"nan", 0, false},
		{"1.2.3", 0, false},
		{"0x1p3", 0, false},
		{"", 0, false},
		{"-", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseFloating(tt.in)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ParseFloating(%q) = %v, %v, want %v, %v",
				tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestFormatFloating(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float32
		want string
	}{
		{0, "0"},
		{1.5, "1.5"},
		{-2.25, "-2.25"},
		{1e-7, "0.0000001"},
		{1e10, "10000000000"},
	}

	for _, tt := range tests {
		if got := FormatFloating(tt.in); got != tt.want {
			t.Errorf("FormatFloating(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
