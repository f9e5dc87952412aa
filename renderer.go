package scad

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// Argument placeholders replaced by BinaryRenderer.
const (
	// TargetFilePlaceholder is replaced with the output path.
	TargetFilePlaceholder = "%targetFile%"
	// ScadFilePlaceholder is replaced with a temporary file holding the script.
	ScadFilePlaceholder = "%scadFile%"
)

// flatpakEngine runs the engine from its flatpak package.
var flatpakEngine = []string{"flatpak", "run", "--file-forwarding", "org.openscad.OpenSCAD"}

// Renderer writes rendered script content to an output path.
type Renderer interface {
	Render(ctx context.Context, outputPath string, content []byte) error
}

// FileRenderer writes the script text as is.
type FileRenderer struct{}

// Render implements Renderer.
func (FileRenderer) Render(_ context.Context, outputPath string, content []byte) error {
	return os.WriteFile(outputPath, content, 0o600)
}

// BinaryRenderer runs the geometry engine to export the script.
type BinaryRenderer struct {
	args []string
	opt  BinaryOptions
}

// NewBinaryRenderer creates a renderer running the engine with args.
// args may contain TargetFilePlaceholder and ScadFilePlaceholder.
func NewBinaryRenderer(args []string, opt *BinaryOptions) *BinaryRenderer {
	return &BinaryRenderer{args: args, opt: opt.normalize()}
}

// NewExportRenderer creates a renderer exporting to format (stl when empty).
func NewExportRenderer(format string, opt *BinaryOptions) *BinaryRenderer {
	if format == "" {
		format = "stl"
	}
	return NewBinaryRenderer([]string{
		"--export-format", format,
		"-o", TargetFilePlaceholder,
		ScadFilePlaceholder,
	}, opt)
}

// NewPNGRenderer creates a renderer writing a preview image. Zero width or
// height keeps the engine default size.
func NewPNGRenderer(width, height int, opt *BinaryOptions) *BinaryRenderer {
	args := []string{"-o", TargetFilePlaceholder, "--export-format", "png"}
	if width > 0 && height > 0 {
		args = append(args, "--imgsize", fmt.Sprintf("%d,%d", width, height))
	}
	return NewBinaryRenderer(append(args, ScadFilePlaceholder), opt)
}

// Render implements Renderer. The temporary script file is removed on return.
func (r *BinaryRenderer) Render(ctx context.Context, outputPath string, content []byte) error {
	engine, err := r.engine()
	if err != nil {
		return err
	}
	flatpak := isFlatpak(engine)

	var scadFile string
	defer func() {
		if scadFile != "" {
			_ = os.Remove(scadFile)
		}
	}()

	args := append([]string(nil), engine[1:]...)
	for _, a := range r.args {
		switch a {
		case TargetFilePlaceholder:
			args = append(args, outputPath)
		case ScadFilePlaceholder:
			if scadFile == "" {
				scadFile, err = writeTemp(content)
				if err != nil {
					return err
				}
			}
			if flatpak {
				args = append(args, "@@", scadFile, "@@")
			} else {
				args = append(args, scadFile)
			}
		default:
			args = append(args, a)
		}
	}

	cmd := exec.CommandContext(ctx, engine[0], args...)
	cmd.Dir = r.opt.WorkDir
	if len(r.opt.Env) > 0 {
		cmd.Env = append(os.Environ(), r.opt.Env...)
	}
	var stderr bytes.Buffer
	cmd.Stdout = &stderr
	cmd.Stderr = &stderr

	r.opt.Logger.Debug("running engine", slog.String("command", cmd.String()))
	if err := cmd.Run(); err != nil {
		out := strings.TrimSpace(stderr.String())
		if out != "" {
			return fmt.Errorf("%w: %s: %w: %s", ErrRenderCommand, cmd.String(), err, out)
		}
		return fmt.Errorf("%w: %s: %w", ErrRenderCommand, cmd.String(), err)
	}

	return nil
}

// engine returns the engine command line prefix.
func (r *BinaryRenderer) engine() ([]string, error) {
	if len(r.opt.Binary) > 0 {
		return r.opt.Binary, nil
	}
	return FindEngine()
}

// FindEngine locates the geometry engine on PATH or as a flatpak package.
func FindEngine() ([]string, error) {
	if p, err := exec.LookPath("openscad"); err == nil {
		return []string{p}, nil
	}
	if _, err := exec.LookPath("flatpak"); err == nil {
		if exec.Command("flatpak", "info", flatpakEngine[3]).Run() == nil {
			return flatpakEngine, nil
		}
	}
	return nil, ErrEngineNotFound
}

// isFlatpak reports whether engine runs through flatpak.
func isFlatpak(engine []string) bool {
	return len(engine) > 0 && engine[0] == "flatpak"
}

// writeTemp writes content to a new temporary .scad file.
func writeTemp(content []byte) (string, error) {
	f, err := os.CreateTemp("", "scad-*.scad")
	if err != nil {
		return "", err
	}
	if _, err := f.Write(content); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}
