// Command sentrender renders a sent presentation to PNG files.
//
// Usage:
//
//	sentrender [flags] talk.sent
//
// Every slide is written to OUT/slide-NNN.png. With -keys only the slide
// reached by replaying the key names from the first slide is written.
// Diagnostics are logged and, if any, rendered to OUT/diagnostics.png.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/sent"
	"github.com/gogpu/sent/layout"
	"github.com/gogpu/sent/load"
	"github.com/gogpu/sent/metrics"
	"github.com/gogpu/sent/nav"
	"github.com/gogpu/sent/render"
)

func main() {
	var (
		width       = flag.Int("width", 0, "viewport width in pixels (default 1280)")
		height      = flag.Int("height", 0, "viewport height in pixels (default 720)")
		out         = flag.String("out", "", "output directory (default .)")
		profilePath = flag.String("profile", "", "YAML render profile")
		keys        = flag.String("keys", "", "comma-separated key names to replay, e.g. Right,Right,End")
		verbose     = flag.Bool("v", false, "debug logging")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] file.sent\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	sent.SetLogger(logger)

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	prof := defaultProfile()
	if *profilePath != "" {
		var err error
		if prof, err = loadProfile(*profilePath); err != nil {
			logger.Error("sentrender: bad profile", "err", err)
			os.Exit(2)
		}
	}
	if *width > 0 {
		prof.Width = *width
	}
	if *height > 0 {
		prof.Height = *height
	}
	if *out != "" {
		prof.Out = *out
	}
	if err := prof.validate(); err != nil {
		logger.Error("sentrender: bad settings", "err", err)
		os.Exit(2)
	}

	if err := run(context.Background(), logger, flag.Arg(0), *keys, prof); err != nil {
		logger.Error("sentrender: failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, path, keys string, prof profile) error {
	p, diags := load.File(path)

	baseDir := filepath.Dir(path)
	if path == load.StdinPath {
		baseDir = "."
	}
	provider := metrics.New(baseDir)
	diags = append(diags, load.CheckImages(p, "", provider)...)

	for _, d := range diags {
		logger.Warn("sentrender: diagnostic", "kind", d.Kind, "line", d.Line, "msg", d.Message)
	}
	if title, ok := p.Title(); ok {
		logger.Info("sentrender: presentation", "title", title, "slides", p.Len())
	}

	if err := os.MkdirAll(prof.Out, 0o750); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	var opts []render.Option
	if prof.LineSpacing > 0 {
		opts = append(opts, render.WithLayoutOptions(layout.WithLineSpacing(prof.LineSpacing)))
	}
	r := render.New(provider, opts...)
	viewport := layout.Size{Width: float64(prof.Width), Height: float64(prof.Height)}
	cfg := p.Config()

	if len(diags) > 0 {
		img, err := r.RenderDiagnostics(diags, viewport, cfg)
		if err == nil {
			err = writePNG(filepath.Join(prof.Out, "diagnostics.png"), img)
		}
		if err != nil {
			return err
		}
	}

	indices := selectSlides(p.Len(), keys)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(prof.Workers)
	for _, i := range indices {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := r.Render(p.Slide(i), viewport, cfg)
			if img == nil {
				return fmt.Errorf("slide %d: %w", i+1, err)
			}
			if err != nil {
				logger.Warn("sentrender: slide rendered as error", "slide", i+1, "err", err)
			}
			name := filepath.Join(prof.Out, fmt.Sprintf("slide-%03d.png", i+1))
			logger.Debug("sentrender: writing", "file", name)
			return writePNG(name, img)
		})
	}
	return g.Wait()
}

// selectSlides returns the slides to render: all of them, or the one the
// cursor reaches after replaying keys. Unknown keys are ignored and a quit
// key stops the replay.
func selectSlides(count int, keys string) []int {
	if keys == "" {
		indices := make([]int, count)
		for i := range count {
			indices[i] = i
		}
		return indices
	}

	c := nav.New(count)
	for _, k := range strings.Split(keys, ",") {
		a := nav.ActionForKey(strings.TrimSpace(k))
		if a == nav.ActionQuit {
			break
		}
		c.Apply(a)
	}
	if i, ok := c.Index(); ok {
		return []int{i}
	}
	return nil
}

func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path) // #nosec G304 -- Output path built from user-chosen directory
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return png.Encode(f, img)
}
