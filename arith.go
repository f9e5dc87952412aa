package scad

import "math"

// Arithmetic over values folds literal operands and keeps symbolic ones as
// expressions, so "($w + 5)" survives into the script untouched. Integer
// folds that would overflow int64 fold as Float instead.

// Add returns a + b.
func Add(a, b Value) Value {
	return binary(a, b, "+",
		func(x, y int64) (int64, bool) {
			r := x + y
			return r, (r > x) == (y > 0)
		},
		func(x, y float64) (float64, bool) { return finite(x + y) },
	)
}

// Sub returns a - b.
func Sub(a, b Value) Value {
	return binary(a, b, "-",
		func(x, y int64) (int64, bool) {
			r := x - y
			return r, (r < x) == (y > 0)
		},
		func(x, y float64) (float64, bool) { return finite(x - y) },
	)
}

// Mul returns a * b.
func Mul(a, b Value) Value {
	return binary(a, b, "*",
		func(x, y int64) (int64, bool) {
			if x == 0 || y == 0 {
				return 0, true
			}
			if (x == -1 && y == math.MinInt64) || (y == -1 && x == math.MinInt64) {
				return 0, false
			}
			r := x * y
			return r, r/y == x
		},
		func(x, y float64) (float64, bool) { return finite(x * y) },
	)
}

// Div returns a / b. Integer division folds to Int only when exact and
// division by a literal zero is left to the engine.
func Div(a, b Value) Value {
	return binary(a, b, "/",
		func(x, y int64) (int64, bool) {
			if y == 0 || (x == math.MinInt64 && y == -1) || x%y != 0 {
				return 0, false
			}
			return x / y, true
		},
		func(x, y float64) (float64, bool) {
			if y == 0 {
				return 0, false
			}
			return finite(x / y)
		},
	)
}

// Neg returns the negation of a as an expression, keeping the operand text.
func Neg(a Value) Value {
	return Expression("-" + scadOf(a))
}

// binary folds two numeric literals or builds an expression.
func binary(a, b Value, op string, fi func(x, y int64) (int64, bool), ff func(x, y float64) (float64, bool)) Value {
	a, b = orNull(a), orNull(b)

	if x, ok := a.(Int); ok {
		if y, ok := b.(Int); ok {
			if r, ok := fi(int64(x), int64(y)); ok {
				return Int(r)
			}
			if r, ok := ff(float64(x), float64(y)); ok {
				return Float(r)
			}
			return expression(a, b, op)
		}
	}

	x, okA := numeric(a)
	y, okB := numeric(b)
	if okA && okB {
		if r, ok := ff(x, y); ok {
			return Float(r)
		}
	}

	return expression(a, b, op)
}

// finite reports r unless it is infinite or NaN, which have no literal form.
func finite(r float64) (float64, bool) {
	return r, !math.IsInf(r, 0) && !math.IsNaN(r)
}

// expression joins two operands with op.
func expression(a, b Value, op string) Expression {
	return Expression(a.Scad() + " " + op + " " + b.Scad())
}
