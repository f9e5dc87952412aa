package scad

import (
	"fmt"
	"strings"
)

// CustomizerVariable is a top-level variable shown in the engine's customizer UI.
type CustomizerVariable struct {
	name        string
	value       Value
	description string
	spec        string // Inline UI hint comment, e.g. "// [0:10]"
}

// NewVariable creates a variable from any convertible value.
func NewVariable(name string, value any) (CustomizerVariable, error) {
	v, err := Convert(value, KindVector)
	if err != nil {
		return CustomizerVariable{}, fmt.Errorf("variable %s: %w", name, err)
	}
	return CustomizerVariable{name: name, value: v}, nil
}

// NewIntVariable creates an integer variable.
func NewIntVariable(name string, value int64) CustomizerVariable {
	return CustomizerVariable{name: name, value: Int(value)}
}

// NewFloatVariable creates a float variable.
func NewFloatVariable(name string, value float64) CustomizerVariable {
	return CustomizerVariable{name: name, value: Float(value)}
}

// NewBoolVariable creates a checkbox variable.
func NewBoolVariable(name string, value bool) CustomizerVariable {
	return CustomizerVariable{name: name, value: Bool(value)}
}

// NewStringVariable creates a text variable.
func NewStringVariable(name, value string) CustomizerVariable {
	return CustomizerVariable{name: name, value: String(value)}
}

// NewNullVariable creates a variable set to undef.
func NewNullVariable(name string) CustomizerVariable {
	return CustomizerVariable{name: name, value: Null{}}
}

// Slider bounds a numeric variable. Nil Min and Step are omitted.
type Slider struct {
	Min  *float64
	Step *float64
	Max  float64
}

// spec renders the slider hint.
func (s Slider) spec() string {
	hi := formatNumber(s.Max)
	switch {
	case s.Min == nil && s.Step == nil:
		return "// [" + hi + "]"
	case s.Step == nil:
		return "// [" + formatNumber(*s.Min) + ":" + hi + "]"
	case s.Min == nil:
		return "// [0:" + formatNumber(*s.Step) + ":" + hi + "]"
	default:
		return "// [" + formatNumber(*s.Min) + ":" + formatNumber(*s.Step) + ":" + hi + "]"
	}
}

// NewSliderVariable creates a numeric variable shown as a slider.
func NewSliderVariable(name string, value float64, slider Slider) CustomizerVariable {
	return CustomizerVariable{name: name, value: numberValue(value), spec: slider.spec()}
}

// DropdownOption is one dropdown choice with an optional label.
type DropdownOption[T string | int64 | float64] struct {
	Value T
	Label string
}

// NewDropdownVariable creates a variable chosen from options.
func NewDropdownVariable[T string | int64 | float64](name string, value T, options ...T) (CustomizerVariable, error) {
	labeled := make([]DropdownOption[T], len(options))
	for i, o := range options {
		labeled[i] = DropdownOption[T]{Value: o}
	}
	return NewLabeledDropdownVariable(name, value, labeled...)
}

// NewLabeledDropdownVariable creates a variable chosen from labeled options.
func NewLabeledDropdownVariable[T string | int64 | float64](name string, value T, options ...DropdownOption[T]) (CustomizerVariable, error) {
	if len(options) == 0 {
		return CustomizerVariable{}, fmt.Errorf("%w: %s", ErrEmptyDropdown, name)
	}

	parts := make([]string, len(options))
	for i, o := range options {
		parts[i] = fmt.Sprint(o.Value)
		if o.Label != "" {
			parts[i] += ":" + o.Label
		}
	}

	v, err := Convert(value, KindVector)
	if err != nil {
		return CustomizerVariable{}, err
	}

	return CustomizerVariable{name: name, value: v, spec: "// [" + strings.Join(parts, ", ") + "]"}, nil
}

// WithDescription returns a copy with a description comment.
func (c CustomizerVariable) WithDescription(description string) CustomizerVariable {
	c.description = description
	return c
}

// Name returns the variable name with its '$' prefix.
func (c CustomizerVariable) Name() string {
	return Variable(c.name).Scad()
}

// Value returns the default value.
func (c CustomizerVariable) Value() Value { return orNull(c.value) }

// Description returns the description comment text.
func (c CustomizerVariable) Description() string { return c.description }

// Specification returns the inline UI hint comment.
func (c CustomizerVariable) Specification() string { return c.spec }

// Ref returns a reference to the variable for use as a node argument.
func (c CustomizerVariable) Ref() Variable { return Variable(c.name) }

// declaration renders the variable with its description and hint.
func (c CustomizerVariable) declaration() string {
	var b strings.Builder
	if c.description != "" {
		b.WriteString("// " + c.description + "\n")
	}
	b.WriteString(c.Name() + " = " + defaultText(c.Value()) + ";")
	if c.spec != "" {
		b.WriteString(" " + c.spec)
	}
	b.WriteByte('\n')
	return b.String()
}

// defaultText renders a default value. Lists are separated by ", " as the
// customizer panel writes them back.
func defaultText(v Value) string {
	var items []Value
	switch t := v.(type) {
	case Vector:
		items = t
	case PointVector:
		items = make([]Value, len(t))
		for i, p := range t {
			items[i] = p
		}
	default:
		return v.Scad()
	}

	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = defaultText(orNull(item))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// numberValue returns Int for whole numbers and Float otherwise.
func numberValue(v float64) Value {
	if v == float64(int64(v)) {
		return Int(int64(v))
	}
	return Float(v)
}
