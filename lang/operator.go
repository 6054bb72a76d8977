package lang

import (
	"errors"
	"math"
)

// operator names a binary operator in error messages.
type operator struct {
	noun string
	verb string
}

func operatorOf(op byte) operator {
	switch op {
	case '+':
		return operator{noun: "addition", verb: "add"}
	case '-':
		return operator{noun: "subtraction", verb: "subtract"}
	case '*':
		return operator{noun: "multiplication", verb: "multiply"}
	case '/':
		return operator{noun: "division", verb: "divide"}
	case '%':
		return operator{noun: "remainder", verb: "modulus"}
	default:
		return operator{noun: "arithmetic", verb: "calculate"}
	}
}

// arithmetic applies op to left and right.
//
// The kind of left selects the operation. A String left operand supports
// only '+', which appends the text of right. Integer and Floating left
// operands coerce right to their own kind first.
func arithmetic(op byte, left, right Value) (Value, error) {
	o := operatorOf(op)

	switch left.kind {
	case KindNull:
		return Null(), ErrTypeMismatch.
			Wrapf("invalid null expression in %s", o.noun)

	case KindBoolean:
		return Null(), ErrTypeMismatch.
			Wrapf("cannot %s boolean expressions", o.verb)

	case KindString:
		if op != '+' {
			return Null(), ErrTypeMismatch.
				Wrapf("cannot %s string expressions", o.verb)
		}

		s, err := right.ToString()
		if err != nil {
			return Null(), coercionError(err)
		}

		return FromString(left.str + s), nil

	case KindInteger:
		n, err := right.ToInteger()
		if err != nil {
			return Null(), coercionError(err)
		}

		return integerArithmetic(op, o, left.num, n)

	case KindFloating:
		f, err := right.ToFloating()
		if err != nil {
			return Null(), coercionError(err)
		}

		return FromFloating(floatingArithmetic(op, left.flt, f)), nil

	default:
		return Null(), ErrTypeMismatch.Wrapf("invalid arithmetic type")
	}
}

func integerArithmetic(op byte, o operator, a, b int64) (Value, error) {
	switch op {
	case '+':
		return FromInteger(a + b), nil
	case '-':
		return FromInteger(a - b), nil
	case '*':
		return FromInteger(a * b), nil
	case '/', '%':
		if b == 0 {
			return Null(), ErrDivisionByZero.Wrapf("integer %s by zero", o.noun)
		}

		if op == '/' {
			return FromInteger(a / b), nil
		}

		return FromInteger(a % b), nil
	default:
		return Null(), ErrTypeMismatch.Wrapf("invalid arithmetic type")
	}
}

func floatingArithmetic(op byte, a, b float32) float32 {
	switch op {
	case '+':
		return a + b
	case '-':
		return a - b
	case '*':
		return a * b
	case '/':
		return a / b
	default:
		return float32(math.Mod(float64(a), float64(b)))
	}
}

func coercionError(err error) error {
	var e *Error
	if errors.As(err, &e) {
		return ErrTypeMismatch.Wrapf("cannot perform arithmetic: %s", e.Detail())
	}

	return ErrTypeMismatch.Wrap(err)
}
