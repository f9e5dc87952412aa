package scad

import "fmt"

// Font is a custom font file imported into the document.
type Font struct {
	path string
	name string
}

// NewFont creates a font imported from path with an optional logical name.
func NewFont(path, name string) Font {
	return Font{path: path, name: name}
}

// Name returns the logical font name used in text() calls.
func (f Font) Name() (string, error) {
	if f.name == "" {
		return "", fmt.Errorf("%w: %s", ErrFontName, f.path)
	}
	return f.name, nil
}

// Path returns the font file path used in use <...> declarations.
func (f Font) Path() (string, error) {
	if f.path == "" {
		return "", fmt.Errorf("%w: %s", ErrFontPath, f.name)
	}
	return f.path, nil
}

// Ref returns the logical name as a string value.
func (f Font) Ref() (Value, error) {
	name, err := f.Name()
	if err != nil {
		return nil, err
	}
	return String(name), nil
}
