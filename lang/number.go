package lang

import (
	"math"
	"strconv"
)

// ParseInteger converts text to a signed 64-bit integer.
//
// Leading whitespace and an optional sign are accepted, followed by one of:
//
//	0x1F  0X1F   hexadecimal
//	0b101 0B101  binary
//	017          octal (leading zero)
//	42           decimal
//
// The remainder of s must be digits of the selected base. ParseInteger
// reports false for empty digit runs, trailing text, and values outside the
// range of int64.
func ParseInteger(s string) (int64, bool) {
	s = trimLeadingSpace(s)

	neg := false

	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}

	base := 10

	switch {
	case len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X'):
		base, s = 16, s[2:]
	case len(s) > 1 && s[0] == '0' && (s[1] == 'b' || s[1] == 'B'):
		base, s = 2, s[2:]
	case len(s) > 1 && s[0] == '0':
		base, s = 8, s[1:]
	}

	if s == "" || !allDigits(s, base) {
		return 0, false
	}

	u, err := strconv.ParseUint(s, base, 64)
	if err != nil {
		return 0, false
	}

	if neg {
		if u > 1<<63 {
			return 0, false
		}

		return int64(-u), true //nolint:gosec // -(1<<63) is representable
	}

	if u > math.MaxInt64 {
		return 0, false
	}

	return int64(u), true
}

// ParseFloating converts decimal text to a 32-bit float.
//
// Leading whitespace and an optional sign are accepted, followed by one or
// more decimal digits and an optional fraction ('.' and one or more digits).
// Exponents, hexadecimal mantissas, and the special values inf and nan are
// rejected.
func ParseFloating(s string) (float32, bool) {
	s = trimLeadingSpace(s)

	body := s
	if body != "" && (body[0] == '-' || body[0] == '+') {
		body = body[1:]
	}

	whole, frac, dotted := cutByte(body, '.')
	if whole == "" || !allDigits(whole, 10) {
		return 0, false
	}

	if dotted && (frac == "" || !allDigits(frac, 10)) {
		return 0, false
	}

	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, false
	}

	return float32(f), true
}

// FormatInteger renders an integer the way [Value.ToString] does.
func FormatInteger(n int64) string {
	return strconv.FormatInt(n, 10)
}

// FormatFloating renders a float as the shortest decimal text that
// [ParseFloating] maps back to the same value.
func FormatFloating(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}

func trimLeadingSpace(s string) string {
	for s != "" && isWhitespace(s[0]) {
		s = s[1:]
	}

	return s
}

func cutByte(s string, sep byte) (before, after string, found bool) {
	for i := range len(s) {
		if s[i] == sep {
			return s[:i], s[i+1:], true
		}
	}

	return s, "", false
}

func allDigits(s string, base int) bool {
	for i := range len(s) {
		if !isDigit(s[i], base) {
			return false
		}
	}

	return true
}

func isDigit(c byte, base int) bool {
	switch base {
	case 2:
		return c == '0' || c == '1'
	case 8:
		return c >= '0' && c <= '7'
	case 16:
		return (c >= '0' && c <= '9') ||
			(c >= 'a' && c <= 'f') ||
			(c >= 'A' && c <= 'F')
	default:
		return c >= '0' && c <= '9'
	}
}
