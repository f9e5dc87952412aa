package scad

import (
	"bufio"
	"bytes"
	"io"
	"os"
)

// Generator is the comment written at the top of every document unless disabled.
const Generator = "// generated by github.com/woozymasta/scad\n\n"

// Encode writes a Model to writer.
func Encode(w io.Writer, m *Model, opt *FormatOptions) error {
	fopt := opt.normalize()
	// Buffered writer reduces syscall overhead and short writes.
	bw := bufio.NewWriter(w)
	rc := NewRenderContext(fopt.Logger)
	rc.onIssue = fopt.OnIssue
	wr := &writer{w: bw, rc: rc}
	if err := wr.writeModel(m); err != nil {
		return err
	}

	return bw.Flush()
}

// EncodeFile writes a Model to a file.
func EncodeFile(path string, m *Model, opt *FormatOptions) error {
	b, err := Format(m, opt)
	if err != nil {
		return err
	}

	return os.WriteFile(path, b, 0o600)
}

// Format renders a Model to bytes.
func Format(m *Model, opt *FormatOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, m, opt); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// writer writes a Model to a writer.
type writer struct {
	w  io.Writer      // Writer to write to
	rc *RenderContext // Collects render warnings
}

// writeModel writes the document sections in order.
func (w *writer) writeModel(m *Model) error {
	if m == nil {
		m = &Model{}
	}

	if !m.hideGenerator {
		if err := w.writeString(Generator); err != nil {
			return err
		}
	}

	// Write font imports
	for _, f := range m.fonts {
		path, err := f.Path()
		if err != nil {
			return err
		}
		if err := w.writeString("use <" + path + ">\n"); err != nil {
			return err
		}
	}

	facets := m.facets.statements()
	if m.configurableFacets {
		if err := w.writeString(facets); err != nil {
			return err
		}
	}

	// Write customizer variables
	for _, v := range m.variables {
		if err := w.writeString(v.declaration()); err != nil {
			return err
		}
	}

	// Write modules, the first one ends the customizer section
	for _, mod := range m.collectModules() {
		if err := w.writeString(mod.Definition() + "\n"); err != nil {
			return err
		}
	}

	if !m.configurableFacets {
		if err := w.writeString(facets); err != nil {
			return err
		}
	}

	// Write content
	for _, r := range m.renderables {
		if err := w.writeString(Wrap(r).Render(w.rc)); err != nil {
			return err
		}
	}

	return nil
}

// writeString writes a string to the writer.
func (w *writer) writeString(s string) error {
	if s == "" {
		return nil
	}
	_, err := io.WriteString(w.w, s)
	return err
}
