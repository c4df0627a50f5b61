// Package render is a software renderer for sent slides.
//
// It turns a layout.Placement into pixels: the background is filled, text
// lines are rasterized with golang.org/x/image/font and images are scaled
// with golang.org/x/image/draw using the placement's sampling filter.
// Hosts with a GPU surface can ignore this package and consume placements
// directly.
package render

import (
	"errors"
	"image"
	"image/draw"
	"math"
	"strings"

	"github.com/gogpu/sent"
	"github.com/gogpu/sent/layout"
	"github.com/gogpu/sent/metrics"
)

// ErrNilMetrics is returned by Render when the renderer has no metrics
// provider.
var ErrNilMetrics = errors.New("render: metrics provider is nil")

// Renderer draws slides onto RGBA images.
// A Renderer is safe for concurrent use if its metrics provider is.
type Renderer struct {
	metrics    *metrics.Provider
	layoutOpts []layout.Option
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLayoutOptions passes options to layout.Compute for every slide.
func WithLayoutOptions(opts ...layout.Option) Option {
	return func(r *Renderer) {
		r.layoutOpts = append(r.layoutOpts, opts...)
	}
}

// New creates a Renderer measuring and loading content with m.
func New(m *metrics.Provider, opts ...Option) *Renderer {
	r := &Renderer{metrics: m}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render draws slide into a new image of the viewport size.
//
// When the slide cannot be laid out (a missing or undecodable image, an
// exhausted font chain) the returned image shows an error slide describing
// the failure, and the failure is returned as well. The image is nil only
// for an empty viewport or a nil metrics provider.
func (r *Renderer) Render(slide sent.Slide, viewport layout.Size, cfg sent.Config) (*image.RGBA, error) {
	if r.metrics == nil {
		return nil, ErrNilMetrics
	}
	pl, err := layout.Compute(slide, viewport, r.metrics, cfg, r.layoutOpts...)
	if errors.Is(err, layout.ErrEmptyViewport) {
		return nil, err
	}

	dst := newSurface(viewport)
	if err != nil {
		r.drawError(dst, err, viewport, cfg)
		return dst, err
	}

	if err := r.draw(dst, slide, pl, cfg); err != nil {
		r.drawError(dst, err, viewport, cfg)
		return dst, err
	}
	return dst, nil
}

// RenderDiagnostics draws diagnostics as a text slide, one per line.
// No diagnostics render as an empty slide.
func (r *Renderer) RenderDiagnostics(diags []sent.Diagnostic, viewport layout.Size, cfg sent.Config) (*image.RGBA, error) {
	if len(diags) == 0 {
		return r.Render(sent.EmptySlide{}, viewport, cfg)
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = d.String()
	}
	return r.Render(sent.TextSlide{Lines: lines}, viewport, cfg)
}

func (r *Renderer) draw(dst *image.RGBA, slide sent.Slide, pl layout.Placement, cfg sent.Config) error {
	fill(dst, pl.Background)

	switch s := slide.(type) {
	case sent.TextSlide:
		return r.drawText(dst, s, pl, cfg.Fonts)
	case sent.ImageSlide:
		return r.drawImage(dst, s, pl)
	}
	return nil
}

// drawError replaces the surface content with a description of err, set in
// the bundled font if the configured ones are unusable.
func (r *Renderer) drawError(dst *image.RGBA, err error, viewport layout.Size, cfg sent.Config) {
	d := sent.DiagnosticFromError(err)
	slide := sent.TextSlide{Lines: append([]string{d.Kind.String()}, strings.Split(d.Message, "\n")...)}

	sent.Logger().Warn("render: drawing error slide", "err", err)

	for _, fonts := range [][]string{cfg.Fonts, nil} {
		cfg.Fonts = fonts
		pl, lerr := layout.Compute(slide, viewport, r.metrics, cfg, r.layoutOpts...)
		if lerr != nil {
			continue
		}
		fill(dst, pl.Background)
		if r.drawText(dst, slide, pl, fonts) == nil {
			return
		}
	}
	fill(dst, layoutBackground(cfg))
}

func layoutBackground(cfg sent.Config) sent.RGBA {
	_, bg := layout.ResolveColors(cfg)
	return bg
}

func newSurface(viewport layout.Size) *image.RGBA {
	w := int(math.Ceil(viewport.Width))
	h := int(math.Ceil(viewport.Height))
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

// fill paints the whole surface with a linear colour.
func fill(dst *image.RGBA, linear sent.RGBA) {
	draw.Draw(dst, dst.Bounds(), image.NewUniform(linear.SRGB().Color()), image.Point{}, draw.Src)
}
