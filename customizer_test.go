package scad

import (
	"errors"
	"testing"
)

func ptr(v float64) *float64 { return &v }

func TestVariableDeclarations(t *testing.T) {
	drop, err := NewDropdownVariable("size", int64(2), 1, 2, 3)
	if err != nil {
		t.Fatalf("dropdown: %v", err)
	}
	labeled, err := NewLabeledDropdownVariable("part", "a",
		DropdownOption[string]{Value: "a", Label: "Base"},
		DropdownOption[string]{Value: "b"},
	)
	if err != nil {
		t.Fatalf("labeled dropdown: %v", err)
	}
	list, err := NewVariable("offsets", []int{1, 2})
	if err != nil {
		t.Fatalf("variable: %v", err)
	}

	tests := []struct {
		name string
		v    CustomizerVariable
		want string
	}{
		{"int", NewIntVariable("n", 2), "$n = 2;\n"},
		{"float", NewFloatVariable("f", 1.5), "$f = 1.5;\n"},
		{"bool", NewBoolVariable("on", true), "$on = true;\n"},
		{"string", NewStringVariable("label", `say "hi"`), "$label = \"say \\\"hi\\\"\";\n"},
		{"null", NewNullVariable("x"), "$x = undef;\n"},
		{"vector", list, "$offsets = [1, 2];\n"},
		{"described", NewIntVariable("n", 2).WithDescription("Number of holes"), "// Number of holes\n$n = 2;\n"},
		{"slider max", NewSliderVariable("w", 20, Slider{Max: 100}), "$w = 20; // [100]\n"},
		{"slider min", NewSliderVariable("w", 20, Slider{Min: ptr(10), Max: 100}), "$w = 20; // [10:100]\n"},
		{"slider step", NewSliderVariable("w", 2.5, Slider{Step: ptr(0.5), Max: 10}), "$w = 2.5; // [0:0.5:10]\n"},
		{"slider full", NewSliderVariable("w", 20, Slider{Min: ptr(10), Step: ptr(5), Max: 100}), "$w = 20; // [10:5:100]\n"},
		{"dropdown", drop, "$size = 2; // [1, 2, 3]\n"},
		{"labeled dropdown", labeled, "$part = \"a\"; // [a:Base, b]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.declaration(); got != tt.want {
				t.Fatalf("got  %q\nwant %q", got, tt.want)
			}
		})
	}
}

func TestVariableErrors(t *testing.T) {
	if _, err := NewDropdownVariable[string]("empty", "a"); !errors.Is(err, ErrEmptyDropdown) {
		t.Fatalf("expected ErrEmptyDropdown, got %v", err)
	}
	if _, err := NewVariable("bad", struct{}{}); !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
}

func TestVariableRef(t *testing.T) {
	width := NewSliderVariable("width", 20, Slider{Max: 100})
	if width.Name() != "$width" {
		t.Fatalf("name: %q", width.Name())
	}

	box := NewCube(width.Ref(), 10, Div(width.Ref(), Int(2)))
	m := NewModel().WithGenerator(false).WithVariable(width).WithRenderable(box)

	got, err := m.Content(nil)
	if err != nil {
		t.Fatalf("content: %v", err)
	}
	want := "$width = 20; // [100]\n" + customizerEnd + "cube([$width, 10, ($width / 2)], center = false);"
	if got != want {
		t.Fatalf("got  %q\nwant %q", got, want)
	}
}

func TestFont(t *testing.T) {
	f := NewFont("fonts/Roboto.ttf", "Roboto")
	if ref, err := f.Ref(); err != nil || ref.Scad() != `"Roboto"` {
		t.Fatalf("ref: %v %v", ref, err)
	}

	if _, err := NewFont("fonts/Roboto.ttf", "").Name(); !errors.Is(err, ErrFontName) {
		t.Fatalf("expected ErrFontName, got %v", err)
	}
	if _, err := NewFont("", "Roboto").Path(); !errors.Is(err, ErrFontPath) {
		t.Fatalf("expected ErrFontPath, got %v", err)
	}
}
