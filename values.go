package scad

import (
	"math"
	"strconv"
	"strings"
)

// Kind represents the variant of a Value.
type Kind int

const (
	// KindNull indicates the undef literal.
	KindNull Kind = iota
	// KindInt indicates an integer literal.
	KindInt
	// KindFloat indicates a floating point literal.
	KindFloat
	// KindBool indicates a boolean literal.
	KindBool
	// KindString indicates a quoted string literal.
	KindString
	// KindVector indicates a generic vector literal.
	KindVector
	// KindPoint indicates a 3D point literal.
	KindPoint
	// KindFace indicates a polyhedron face literal.
	KindFace
	// KindPointVector indicates a vector of points.
	KindPointVector
	// KindFaceVector indicates a vector of faces.
	KindFaceVector
	// KindRange indicates a [start:step:end] range literal.
	KindRange
	// KindAutoscale indicates a resize autoscale triple.
	KindAutoscale
	// KindVariable indicates a named variable reference.
	KindVariable
	// KindExpression indicates a free-text expression reference.
	KindExpression
	// KindPi indicates the engine's PI constant.
	KindPi
)

var kindNames = [...]string{
	KindNull:        "null",
	KindInt:         "int",
	KindFloat:       "float",
	KindBool:        "bool",
	KindString:      "string",
	KindVector:      "vector",
	KindPoint:       "point",
	KindFace:        "face",
	KindPointVector: "point vector",
	KindFaceVector:  "face vector",
	KindRange:       "range",
	KindAutoscale:   "autoscale",
	KindVariable:    "variable",
	KindExpression:  "expression",
	KindPi:          "pi",
}

// String returns the kind name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Value is a literal or symbolic script value.
//
// The set of implementations is closed; use Convert to build values from host types.
type Value interface {
	// Scad returns the script representation of the value.
	Scad() string
	// IsLiteral reports whether the value carries a concrete payload.
	IsLiteral() bool
	// Literal returns the concrete payload, or nil for references.
	Literal() any
	// Kind returns the variant of the value.
	Kind() Kind

	value()
}

// Int is an integer literal.
type Int int64

// Float is a floating point literal.
type Float float64

// Bool is a boolean literal.
type Bool bool

// String is a string literal.
type String string

// Null is the undef literal.
type Null struct{}

// Pi is the engine's PI constant. It folds as math.Pi in arithmetic.
type Pi struct{}

// Vector is an ordered sequence of values.
type Vector []Value

// Variable references a named script variable.
type Variable string

// Expression is a free-text script expression evaluated by the engine.
type Expression string

func (Int) value()        {}
func (Float) value()      {}
func (Bool) value()       {}
func (String) value()     {}
func (Null) value()       {}
func (Pi) value()         {}
func (Vector) value()     {}
func (Variable) value()   {}
func (Expression) value() {}

// Scad implements Value.
func (v Int) Scad() string { return strconv.FormatInt(int64(v), 10) }

// IsLiteral implements Value.
func (Int) IsLiteral() bool { return true }

// Literal implements Value.
func (v Int) Literal() any { return int64(v) }

// Kind implements Value.
func (Int) Kind() Kind { return KindInt }

// Scad implements Value.
func (v Float) Scad() string { return formatNumber(float64(v)) }

// IsLiteral implements Value.
func (Float) IsLiteral() bool { return true }

// Literal implements Value.
func (v Float) Literal() any { return float64(v) }

// Kind implements Value.
func (Float) Kind() Kind { return KindFloat }

// Scad implements Value.
func (Pi) Scad() string { return "PI" }

// IsLiteral implements Value.
func (Pi) IsLiteral() bool { return true }

// Literal implements Value.
func (Pi) Literal() any { return math.Pi }

// Kind implements Value.
func (Pi) Kind() Kind { return KindPi }

// Scad implements Value.
func (v Bool) Scad() string {
	if v {
		return "true"
	}
	return "false"
}

// IsLiteral implements Value.
func (Bool) IsLiteral() bool { return true }

// Literal implements Value.
func (v Bool) Literal() any { return bool(v) }

// Kind implements Value.
func (Bool) Kind() Kind { return KindBool }

// Scad implements Value.
func (v String) Scad() string { return quote(string(v)) }

// IsLiteral implements Value.
func (String) IsLiteral() bool { return true }

// Literal implements Value.
func (v String) Literal() any { return string(v) }

// Kind implements Value.
func (String) Kind() Kind { return KindString }

// Scad implements Value.
func (Null) Scad() string { return "undef" }

// IsLiteral implements Value.
func (Null) IsLiteral() bool { return true }

// Literal implements Value.
func (Null) Literal() any { return nil }

// Kind implements Value.
func (Null) Kind() Kind { return KindNull }

// Scad implements Value.
func (v Vector) Scad() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, item := range v {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(scadOf(item))
	}
	b.WriteByte(']')
	return b.String()
}

// IsLiteral implements Value.
func (Vector) IsLiteral() bool { return true }

// Literal implements Value.
func (v Vector) Literal() any { return []Value(v) }

// Kind implements Value.
func (Vector) Kind() Kind { return KindVector }

// Scad implements Value. Names are prefixed with '$' unless they already are.
func (v Variable) Scad() string {
	if strings.HasPrefix(string(v), "$") {
		return string(v)
	}
	return "$" + string(v)
}

// IsLiteral implements Value.
func (Variable) IsLiteral() bool { return false }

// Literal implements Value.
func (Variable) Literal() any { return nil }

// Kind implements Value.
func (Variable) Kind() Kind { return KindVariable }

// Scad implements Value.
func (v Expression) Scad() string { return "(" + string(v) + ")" }

// IsLiteral implements Value.
func (Expression) IsLiteral() bool { return false }

// Literal implements Value.
func (Expression) Literal() any { return nil }

// Kind implements Value.
func (Expression) Kind() Kind { return KindExpression }

// Range is a [start:step:end] range literal.
type Range struct {
	Start float64 // First value
	Step  float64 // Increment
	End   float64 // Last value
}

// NewRange creates a range with step 1.
func NewRange(start, end float64) Range {
	return Range{Start: start, Step: 1, End: end}
}

func (Range) value() {}

// WithStep returns a copy of the range with a different step.
func (r Range) WithStep(step float64) Range {
	r.Step = step
	return r
}

// Scad implements Value.
func (r Range) Scad() string {
	return "[" + formatNumber(r.Start) + ":" + formatNumber(r.Step) + ":" + formatNumber(r.End) + "]"
}

// IsLiteral implements Value.
func (Range) IsLiteral() bool { return true }

// Literal implements Value.
func (r Range) Literal() any { return []float64{r.Start, r.Step, r.End} }

// Kind implements Value.
func (Range) Kind() Kind { return KindRange }

// Autoscale selects which resize axes are scaled automatically.
type Autoscale struct {
	width, depth, height Value
}

// NewAutoscale creates an autoscale triple from booleans or references.
func NewAutoscale(width, depth, height any) Autoscale {
	return Autoscale{
		width:  MustConvert(width),
		depth:  MustConvert(depth),
		height: MustConvert(height),
	}
}

func (Autoscale) value() {}

// Scad implements Value.
func (a Autoscale) Scad() string {
	return "[" + scadOf(a.width) + ", " + scadOf(a.depth) + ", " + scadOf(a.height) + "]"
}

// IsLiteral implements Value.
func (Autoscale) IsLiteral() bool { return true }

// Literal implements Value.
func (a Autoscale) Literal() any { return []Value{a.width, a.depth, a.height} }

// Kind implements Value.
func (Autoscale) Kind() Kind { return KindAutoscale }

// scadOf renders v, treating a nil Value as undef.
func scadOf(v Value) string {
	if v == nil {
		return "undef"
	}
	return v.Scad()
}

// orNull replaces a nil Value with Null.
func orNull(v Value) Value {
	if v == nil {
		return Null{}
	}
	return v
}

// isNull reports whether v is nil or the undef literal.
func isNull(v Value) bool {
	if v == nil {
		return true
	}
	_, ok := v.(Null)
	return ok
}

// numeric returns the literal numeric payload of v.
func numeric(v Value) (float64, bool) {
	switch t := v.(type) {
	case Int:
		return float64(t), true
	case Float:
		return float64(t), true
	case Pi:
		return math.Pi, true
	default:
		return 0, false
	}
}

// literalEquals reports whether v is a numeric literal equal to want.
func literalEquals(v Value, want float64) bool {
	n, ok := numeric(v)
	return ok && n == want
}

// literalNonPositive reports whether v is known to be zero or negative.
// References are never known; undef counts as zero.
func literalNonPositive(v Value) bool {
	if isNull(v) {
		return true
	}
	if !v.IsLiteral() {
		return false
	}
	n, ok := numeric(v)
	return ok && n <= 0
}

// formatNumber writes a float in its shortest form. Infinities and NaN have
// no literal syntax and are written as the divisions that produce them.
func formatNumber(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "(1 / 0)"
	case math.IsInf(v, -1):
		return "(-1 / 0)"
	case math.IsNaN(v):
		return "(0 / 0)"
	}

	var buf [32]byte
	return string(strconv.AppendFloat(buf[:0], v, 'g', -1, 64))
}

// quote writes a double-quoted script string.
func quote(s string) string {
	if !strings.ContainsAny(s, "\"\\") {
		return "\"" + s + "\""
	}
	r := strings.NewReplacer("\\", "\\\\", "\"", "\\\"")
	return "\"" + r.Replace(s) + "\""
}
