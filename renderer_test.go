package scad

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// fakeEngine records its arguments and copies the script to the -o target.
const fakeEngine = `#!/bin/sh
all="$*"
out=""
src=""
while [ $# -gt 0 ]; do
  case "$1" in
    -o) out="$2"; shift 2 ;;
    *) src="$1"; shift ;;
  esac
done
echo "$all" > "$out.args"
echo "$src" > "$out.src"
echo "$SCAD_TEST" > "$out.env"
cp "$src" "$out"
`

const failingEngine = `#!/bin/sh
echo boom >&2
exit 3
`

func writeEngine(t *testing.T, name, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not supported on windows")
	}

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(script), 0o700); err != nil {
		t.Fatalf("write engine: %v", err)
	}
	return path
}

func readTrimmed(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return strings.TrimSpace(string(b))
}

func TestExportRenderer(t *testing.T) {
	engine := writeEngine(t, "openscad", fakeEngine)
	out := filepath.Join(t.TempDir(), "model.stl")

	r := NewExportRenderer("", &BinaryOptions{Binary: []string{engine}, Env: []string{"SCAD_TEST=on"}})
	if err := r.Render(context.Background(), out, []byte(unitCube)); err != nil {
		t.Fatalf("render: %v", err)
	}

	if got := readTrimmed(t, out); got != unitCube {
		t.Fatalf("engine saw %q", got)
	}
	if got := readTrimmed(t, out+".env"); got != "on" {
		t.Fatalf("env not passed: %q", got)
	}

	src := readTrimmed(t, out+".src")
	if !strings.HasSuffix(src, ".scad") {
		t.Fatalf("unexpected script path %q", src)
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Fatalf("temporary script not removed: %v", err)
	}

	want := "--export-format stl -o " + out + " " + src
	if got := readTrimmed(t, out+".args"); got != want {
		t.Fatalf("args: got %q want %q", got, want)
	}
}

func TestPNGRenderer(t *testing.T) {
	engine := writeEngine(t, "openscad", fakeEngine)
	out := filepath.Join(t.TempDir(), "preview.png")

	r := NewPNGRenderer(640, 480, &BinaryOptions{Binary: []string{engine}})
	if err := r.Render(context.Background(), out, []byte(unitCube)); err != nil {
		t.Fatalf("render: %v", err)
	}

	src := readTrimmed(t, out+".src")
	want := "-o " + out + " --export-format png --imgsize 640,480 " + src
	if got := readTrimmed(t, out+".args"); got != want {
		t.Fatalf("args: got %q want %q", got, want)
	}
}

func TestBinaryRendererFailure(t *testing.T) {
	engine := writeEngine(t, "openscad", failingEngine)

	r := NewExportRenderer("3mf", &BinaryOptions{Binary: []string{engine}})
	err := r.Render(context.Background(), filepath.Join(t.TempDir(), "x.3mf"), []byte(unitCube))
	if !errors.Is(err, ErrRenderCommand) {
		t.Fatalf("expected ErrRenderCommand, got %v", err)
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Fatalf("engine output missing from %v", err)
	}
}

func TestModelRenderThroughEngine(t *testing.T) {
	engine := writeEngine(t, "openscad", fakeEngine)
	out := filepath.Join(t.TempDir(), "model.stl")

	m := NewModel().
		WithGenerator(false).
		WithRenderable(NewCube(1, 1, 1)).
		WithRenderer(NewExportRenderer("stl", &BinaryOptions{Binary: []string{engine}}))
	if err := m.Render(context.Background(), out, nil); err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := readTrimmed(t, out); got != strings.TrimSpace(customizerEnd+unitCube) {
		t.Fatalf("engine saw %q", got)
	}
}

func TestFindEngine(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not supported on windows")
	}

	empty := t.TempDir()
	t.Setenv("PATH", empty)
	if _, err := FindEngine(); !errors.Is(err, ErrEngineNotFound) {
		t.Fatalf("expected ErrEngineNotFound, got %v", err)
	}

	engine := writeEngine(t, "openscad", fakeEngine)
	t.Setenv("PATH", filepath.Dir(engine))
	got, err := FindEngine()
	if err != nil {
		t.Fatalf("find engine: %v", err)
	}
	if len(got) != 1 || got[0] != engine {
		t.Fatalf("got %v", got)
	}
	if isFlatpak(got) || !isFlatpak(flatpakEngine) {
		t.Fatalf("unexpected flatpak detection")
	}
}
