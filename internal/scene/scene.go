// Package scene loads TOML scene descriptions into scad models.
//
// A scene file has an optional [model] table, [[variables]], [[fonts]] and
// [[targets]] lists and at least one [[shapes]] entry. Shapes nest through
// [[shapes.children]]. In numeric fields a string is a reference: "$name" is a
// customizer variable, any other text is an expression.
package scene

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/woozymasta/scad"
)

var (
	// ErrUndecodedKeys indicates keys the scene schema does not know.
	ErrUndecodedKeys = errors.New("unknown keys")

	// ErrUnknownShape indicates an unsupported shape type.
	ErrUnknownShape = errors.New("unknown shape type")

	// ErrInvalidShape indicates a shape with missing or malformed fields.
	ErrInvalidShape = errors.New("invalid shape")

	// ErrInvalidVariable indicates a customizer variable that cannot be built.
	ErrInvalidVariable = errors.New("invalid variable")
)

// Scene is a decoded scene file.
type Scene struct {
	Path      string           `toml:"-"`
	Model     ModelConfig      `toml:"model"`
	Variables []VariableConfig `toml:"variables"`
	Fonts     []FontConfig     `toml:"fonts"`
	Targets   []TargetConfig   `toml:"targets"`
	Shapes    []ShapeConfig    `toml:"shapes"`

	meta toml.MetaData
}

// ModelConfig holds document level settings.
type ModelConfig struct {
	Generator          bool          `toml:"generator"`           // Default true
	ConfigurableFacets bool          `toml:"configurable_facets"` // Facets before variables
	Facets             *FacetsConfig `toml:"facets"`
}

// FacetsConfig maps to scad.Facets.
type FacetsConfig struct {
	Angle     *float64 `toml:"fa"`
	Size      *float64 `toml:"fs"`
	Fragments *float64 `toml:"fn"`
}

// VariableConfig describes a customizer variable. Max makes it a slider and
// Options a dropdown.
type VariableConfig struct {
	Name        string   `toml:"name"`
	Value       any      `toml:"value"`
	Description string   `toml:"description"`
	Min         *float64 `toml:"min"`
	Step        *float64 `toml:"step"`
	Max         *float64 `toml:"max"`
	Options     []any    `toml:"options"`
	Labels      []string `toml:"labels"`
}

// FontConfig describes an imported font.
type FontConfig struct {
	Path string `toml:"path"`
	Name string `toml:"name"`
}

// TargetConfig describes an output file rendered from the scene.
type TargetConfig struct {
	Path   string `toml:"path"`
	Format string `toml:"format"` // Export format, taken from the extension when empty
	Width  int    `toml:"width"`  // PNG width
	Height int    `toml:"height"` // PNG height
}

// Load reads and checks a scene file.
func Load(path string) (*Scene, error) {
	var s Scene
	meta, err := toml.DecodeFile(path, &s)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	s.Path = path
	return s.init(meta, path)
}

// Decode parses a scene from TOML text.
func Decode(data string) (*Scene, error) {
	var s Scene
	meta, err := toml.Decode(data, &s)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	return s.init(meta, "scene")
}

func (s *Scene) init(meta toml.MetaData, name string) (*Scene, error) {
	if keys := meta.Undecoded(); len(keys) > 0 {
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = k.String()
		}
		return nil, fmt.Errorf("%s: %w: %s", name, ErrUndecodedKeys, strings.Join(parts, ", "))
	}
	if !meta.IsDefined("shapes") {
		return nil, fmt.Errorf("%s: missing [[shapes]]", name)
	}
	s.meta = meta
	return s, nil
}

// Build converts the scene into a model.
func (s *Scene) Build() (scad.Model, error) {
	m := scad.NewModel().
		WithGenerator(s.generator()).
		WithConfigurableFacets(s.Model.ConfigurableFacets).
		WithFacets(s.Model.Facets.facets())

	for i, v := range s.Variables {
		cv, err := v.build()
		if err != nil {
			return scad.Model{}, fmt.Errorf("variables[%d]: %w", i, err)
		}
		m = m.WithVariable(cv)
	}

	for _, f := range s.Fonts {
		m = m.WithFont(scad.NewFont(f.Path, f.Name))
	}

	for i, c := range s.Shapes {
		r, err := buildShape(c, fmt.Sprintf("shapes[%d]", i))
		if err != nil {
			return scad.Model{}, err
		}
		m = m.WithRenderable(r)
	}

	return m, nil
}

// TargetPath resolves a target path against the scene file directory.
func (s *Scene) TargetPath(t TargetConfig) string {
	if s.Path == "" || filepath.IsAbs(t.Path) {
		return t.Path
	}
	return filepath.Join(filepath.Dir(s.Path), t.Path)
}

// generator reports whether the generator comment is written; on unless set.
func (s *Scene) generator() bool {
	if !s.meta.IsDefined("model", "generator") {
		return true
	}
	return s.Model.Generator
}

func (f *FacetsConfig) facets() *scad.Facets {
	if f == nil {
		return nil
	}
	return &scad.Facets{Angle: f.Angle, Size: f.Size, Fragments: f.Fragments}
}

// build converts the variable config.
func (v VariableConfig) build() (scad.CustomizerVariable, error) {
	if strings.TrimSpace(v.Name) == "" {
		return scad.CustomizerVariable{}, fmt.Errorf("%w: missing name", ErrInvalidVariable)
	}

	var (
		out scad.CustomizerVariable
		err error
	)
	switch {
	case len(v.Options) > 0:
		switch v.Options[0].(type) {
		case string:
			out, err = dropdown[string](v)
		case int64:
			out, err = dropdown[int64](v)
		case float64:
			out, err = dropdown[float64](v)
		default:
			err = fmt.Errorf("unsupported option type %T", v.Options[0])
		}
	case v.Max != nil:
		n, ok := number(v.Value)
		if !ok {
			err = fmt.Errorf("slider value must be a number, got %T", v.Value)
			break
		}
		out = scad.NewSliderVariable(v.Name, n, scad.Slider{Min: v.Min, Step: v.Step, Max: *v.Max})
	default:
		out, err = scad.NewVariable(v.Name, v.Value)
	}
	if err != nil {
		return scad.CustomizerVariable{}, fmt.Errorf("%w %s: %w", ErrInvalidVariable, v.Name, err)
	}

	return out.WithDescription(v.Description), nil
}

// dropdown builds a dropdown whose options all have type T.
func dropdown[T string | int64 | float64](v VariableConfig) (scad.CustomizerVariable, error) {
	value, ok := v.Value.(T)
	if !ok {
		return scad.CustomizerVariable{}, fmt.Errorf("value %v is not a %T", v.Value, *new(T))
	}

	opts := make([]scad.DropdownOption[T], len(v.Options))
	for i, o := range v.Options {
		t, ok := o.(T)
		if !ok {
			return scad.CustomizerVariable{}, fmt.Errorf("option %d: %v is not a %T", i, o, *new(T))
		}
		opts[i].Value = t
		if i < len(v.Labels) {
			opts[i].Label = v.Labels[i]
		}
	}

	return scad.NewLabeledDropdownVariable(v.Name, value, opts...)
}

// number returns a decoded TOML number as float64.
func number(raw any) (float64, bool) {
	switch t := raw.(type) {
	case int64:
		return float64(t), true
	case float64:
		return t, true
	default:
		return 0, false
	}
}

// Value converts a decoded TOML value into a scad value. Strings become
// references and arrays are converted element by element.
func Value(raw any) (scad.Value, error) {
	switch t := raw.(type) {
	case nil:
		return scad.Null{}, nil
	case string:
		return reference(t), nil
	case []any:
		items := make([]any, len(t))
		for i, item := range t {
			v, err := Value(item)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			items[i] = v
		}
		return scad.Convert(items, scad.KindVector)
	default:
		return scad.Convert(raw, scad.KindVector)
	}
}

// reference returns a Variable for "$name" and an Expression otherwise.
func reference(s string) scad.Value {
	if name, ok := strings.CutPrefix(s, "$"); ok && isIdent(name) {
		return scad.Variable(name)
	}
	return scad.Expression(s)
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
