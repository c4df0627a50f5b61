package layout

import (
	"errors"
	"fmt"

	"github.com/gogpu/sent"
)

// Layout constants.
const (
	// GoldenRatioConjugate is the fraction of each viewport axis that
	// content may occupy.
	GoldenRatioConjugate = 0.6180339887498949

	// ReferenceScale is the font size, in pixels per em, at which text is
	// measured before being scaled to fit.
	ReferenceScale = 1.0 / 16

	// NearestThreshold is the image magnification above which
	// nearest-neighbour sampling is selected.
	NearestThreshold = 4.0

	// WidthEpsilon is the relative tolerance applied when comparing a
	// measured width against the usable width.
	WidthEpsilon = 1e-4
)

var errImageNoArea = errors.New("image has no area")

// Usable returns the part of the viewport that content may occupy.
func Usable(viewport Size) Size {
	return Size{
		Width:  viewport.Width * GoldenRatioConjugate,
		Height: viewport.Height * GoldenRatioConjugate,
	}
}

// Fits reports whether width fits within bound, allowing for the
// floating-point imprecision of measuring text at one scale and drawing it
// at another.
func Fits(width, bound float64) bool {
	return width <= bound*(1+WidthEpsilon)
}

// ResolveColors converts the configured sRGB colours to linear light and
// applies invert. The swap happens after linearization.
func ResolveColors(cfg sent.Config) (fg, bg sent.RGBA) {
	fg, bg = cfg.Foreground.Linear(), cfg.Background.Linear()
	if cfg.Invert {
		fg, bg = bg, fg
	}
	return fg, bg
}

// Compute lays out slide in a viewport of the given size.
//
// Text and image slides are scaled to fill the usable space, keeping their
// aspect ratio, and centred in the viewport. Empty slides, and text without
// any measurable extent, get scale 1 and a zero-sized block at the viewport
// centre.
//
// Measurement errors from metrics are returned unchanged, so callers can
// tell a missing image from an undecodable one.
func Compute(slide sent.Slide, viewport Size, metrics MetricsProvider, cfg sent.Config, opts ...Option) (Placement, error) {
	if !(viewport.Width > 0 && viewport.Height > 0) {
		return Placement{}, ErrEmptyViewport
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	usable := Usable(viewport)
	p := Placement{
		Scale:     1,
		Origin:    centre(viewport, Size{}),
		WrapWidth: usable.Width * (1 + WidthEpsilon),
	}
	p.Foreground, p.Background = ResolveColors(cfg)

	var err error
	switch s := slide.(type) {
	case sent.TextSlide:
		err = placeText(&p, s, viewport, usable, metrics, cfg.Fonts, o)
	case sent.ImageSlide:
		err = placeImage(&p, s, viewport, usable, metrics)
	case sent.EmptySlide, nil:
		// background only
	default:
		err = fmt.Errorf("layout: unsupported slide type %T", slide)
	}
	if err != nil {
		return Placement{}, err
	}

	sent.Logger().Debug("layout: placed slide",
		"type", fmt.Sprintf("%T", slide), "scale", p.Scale, "filter", p.Filter)
	return p, nil
}

func placeText(p *Placement, s sent.TextSlide, viewport, usable Size, metrics MetricsProvider, fonts []string, o options) error {
	if len(s.Lines) == 0 {
		return nil
	}

	measured := make([]Size, len(s.Lines))
	var block Size
	for i, line := range s.Lines {
		w, h, err := metrics.MeasureTextLine(fonts, line, ReferenceScale)
		if err != nil {
			return err
		}
		measured[i] = Size{Width: w, Height: h}
		block.Width = max(block.Width, w)
		block.Height += h
	}
	spacing := o.lineSpacing * ReferenceScale
	block.Height += spacing * float64(len(s.Lines)-1)

	ratio, ok := fitRatio(usable, block)
	if !ok {
		return nil
	}

	p.Scale = ReferenceScale * ratio
	p.Size = Size{Width: block.Width * ratio, Height: block.Height * ratio}
	p.Origin = centre(viewport, p.Size)

	p.Lines = make([]LinePlacement, len(measured))
	y := p.Origin.Y
	for i, m := range measured {
		w, h := m.Width*ratio, m.Height*ratio
		p.Lines[i] = LinePlacement{
			Origin: Point{X: p.Origin.X + (p.Size.Width-w)/2, Y: y},
			Width:  w,
			Height: h,
		}
		y += h + spacing*ratio
	}
	return nil
}

func placeImage(p *Placement, s sent.ImageSlide, viewport, usable Size, metrics MetricsProvider) error {
	w, h, err := metrics.MeasureImage(s.Path)
	if err != nil {
		return err
	}
	if w <= 0 || h <= 0 {
		return &sent.ImageDecodeError{Path: s.Path, Err: errImageNoArea}
	}

	native := Size{Width: float64(w), Height: float64(h)}
	ratio, _ := fitRatio(usable, native)

	p.Scale = ratio
	p.Filter = filterForScale(ratio)
	p.Size = Size{Width: native.Width * ratio, Height: native.Height * ratio}
	p.Origin = centre(viewport, p.Size)
	return nil
}

// fitRatio returns the largest factor that scales content into bounds.
// An axis without extent places no constraint; with neither axis having
// extent there is nothing to scale.
func fitRatio(bounds, content Size) (float64, bool) {
	switch {
	case content.Width > 0 && content.Height > 0:
		return min(bounds.Width/content.Width, bounds.Height/content.Height), true
	case content.Height > 0:
		return bounds.Height / content.Height, true
	case content.Width > 0:
		return bounds.Width / content.Width, true
	default:
		return 0, false
	}
}

// centre returns the top-left corner that centres size in viewport.
func centre(viewport, size Size) Point {
	return Point{
		X: (viewport.Width - size.Width) / 2,
		Y: (viewport.Height - size.Height) / 2,
	}
}
