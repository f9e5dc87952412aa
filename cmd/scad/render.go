package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/woozymasta/scad"
	"github.com/woozymasta/scad/internal/cache"
	"github.com/woozymasta/scad/internal/scene"
)

// maxCacheEntry is the largest artifact kept in the render cache.
const maxCacheEntry = 64 << 20

type renderOptions struct {
	outputs  []string
	format   string
	width    int
	height   int
	openscad string
	noCache  bool
	cacheDir string
}

// target is one output file of a render run.
type target struct {
	path   string
	format string
	width  int
	height int
}

func newRenderCmd(g *globalOptions) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <scene.toml>",
		Short: "Render a scene to its targets",
		Long: `Render builds the scene, formats it once and writes every target.
Targets come from -o flags or, without them, from the [[targets]] list of the scene.
.scad targets receive the script itself; other formats are exported by openscad.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, g, opts, args[0])
		},
	}

	f := cmd.Flags()
	f.StringArrayVarP(&opts.outputs, "output", "o", nil, "output file, repeatable (default: scene targets)")
	f.StringVar(&opts.format, "format", "", "export format for -o outputs (default: file extension)")
	f.IntVar(&opts.width, "width", 0, "image width for png outputs")
	f.IntVar(&opts.height, "height", 0, "image height for png outputs")
	f.StringVar(&opts.openscad, "openscad", "", "engine command (default: openscad on PATH, then flatpak)")
	f.BoolVar(&opts.noCache, "no-cache", false, "do not read or write the artifact cache")
	f.StringVar(&opts.cacheDir, "cache-dir", "", "artifact cache directory (default: user cache dir)")

	return cmd
}

func runRender(cmd *cobra.Command, g *globalOptions, opts *renderOptions, path string) error {
	p, err := newPrinter(cmd, g)
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), g.verbose)

	s, m, err := loadScene(path)
	if err != nil {
		return err
	}

	targets := opts.targets(s)
	if len(targets) == 0 {
		return fmt.Errorf("%s: nothing to render, add [[targets]] or pass -o", path)
	}

	content, err := scad.Format(&m, formatOptions(p, logger, path, g.verbose))
	if err != nil {
		return err
	}

	c, err := opts.openCache()
	if err != nil {
		return err
	}

	bopt := &scad.BinaryOptions{Logger: logger}
	if opts.openscad != "" {
		bopt.Binary = strings.Fields(opts.openscad)
	}

	jobs := g.jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	eg, ctx := errgroup.WithContext(cmd.Context())
	eg.SetLimit(min(jobs, len(targets)))

	for _, t := range targets {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := os.MkdirAll(filepath.Dir(t.path), 0o755); err != nil {
				return err
			}

			start := time.Now()
			r := newTargetRenderer(t, bopt, c, strings.Join(bopt.Binary, " "))
			if err := r.Render(ctx, t.path, content); err != nil {
				return fmt.Errorf("render %s: %w", t.path, err)
			}

			p.done("%s (%s)", t.path, time.Since(start).Round(time.Millisecond))
			return nil
		})
	}

	return eg.Wait()
}

// loadScene loads the scene file at path and builds its model.
func loadScene(path string) (*scene.Scene, scad.Model, error) {
	s, err := scene.Load(path)
	if err != nil {
		return nil, scad.Model{}, err
	}
	m, err := s.Build()
	if err != nil {
		return nil, scad.Model{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, m, nil
}

// targets returns the outputs from flags, falling back to the scene targets.
func (o *renderOptions) targets(s *scene.Scene) []target {
	var out []target
	if len(o.outputs) > 0 {
		for _, path := range o.outputs {
			out = append(out, target{
				path:   path,
				format: targetFormat(path, o.format),
				width:  o.width,
				height: o.height,
			})
		}
		return out
	}

	for _, t := range s.Targets {
		path := s.TargetPath(t)
		out = append(out, target{
			path:   path,
			format: targetFormat(path, t.Format),
			width:  t.Width,
			height: t.Height,
		})
	}
	return out
}

// targetFormat returns format when set, else the path extension, else stl.
func targetFormat(path, format string) string {
	if format != "" {
		return strings.ToLower(format)
	}
	if ext := strings.TrimPrefix(filepath.Ext(path), "."); ext != "" {
		return strings.ToLower(ext)
	}
	return "stl"
}

func (o *renderOptions) openCache() (*cache.Cache, error) {
	switch {
	case o.noCache:
		return nil, nil
	case o.cacheDir != "":
		return cache.New(o.cacheDir, maxCacheEntry)
	default:
		return cache.Open("scad", maxCacheEntry)
	}
}

// newTargetRenderer picks the renderer for t. Engine exports go through the
// cache when c is not nil.
func newTargetRenderer(t target, bopt *scad.BinaryOptions, c *cache.Cache, engine string) scad.Renderer {
	var r scad.Renderer
	switch t.format {
	case "scad":
		return scad.FileRenderer{}
	case "png":
		r = scad.NewPNGRenderer(t.width, t.height, bopt)
	default:
		r = scad.NewExportRenderer(t.format, bopt)
	}

	if c == nil {
		return r
	}
	return &cachedRenderer{
		next:   r,
		cache:  c,
		format: t.format,
		params: fmt.Sprintf("%s|%dx%d", engine, t.width, t.height),
		logger: bopt.Logger,
	}
}

// cachedRenderer serves engine exports from the artifact cache.
type cachedRenderer struct {
	next   scad.Renderer
	cache  *cache.Cache
	format string
	params string
	logger *slog.Logger
}

// Render implements scad.Renderer.
func (r *cachedRenderer) Render(ctx context.Context, outputPath string, content []byte) error {
	key := cache.Key(content, []byte(r.format), []byte(r.params))

	e, ok, err := r.cache.Get(key)
	switch {
	case err != nil:
		r.logger.Debug("cache read failed", slog.String("key", key.String()), slog.Any("error", err))
	case ok:
		r.logger.Debug("cache hit", slog.String("key", key.String()), slog.String("output", outputPath))
		return os.WriteFile(outputPath, e.Data, 0o644)
	}

	if err := r.next.Render(ctx, outputPath, content); err != nil {
		return err
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		return err
	}
	if err := r.cache.Put(key, &cache.Entry{Format: r.format, Data: data, Created: time.Now()}); err != nil {
		r.logger.Debug("cache write skipped", slog.String("key", key.String()), slog.Any("error", err))
	}

	return nil
}
