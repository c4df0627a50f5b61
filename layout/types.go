package layout

import (
	"errors"

	"github.com/gogpu/sent"
)

// ErrEmptyViewport is returned when the viewport has no area.
var ErrEmptyViewport = errors.New("layout: viewport must have positive width and height")

// Size is a width and height in viewport pixels.
type Size struct {
	Width, Height float64
}

// Point is a position in viewport pixels, origin at the top-left corner.
type Point struct {
	X, Y float64
}

// MetricsProvider measures slide content for layout.
//
// Implementations do the glyph and image work; layout only consumes the
// numbers. See package metrics for the default implementation.
type MetricsProvider interface {
	// MeasureTextLine returns the rendered extent of one line of text set in
	// the first available font of fonts at the given scale (pixels per em).
	MeasureTextLine(fonts []string, text string, scale float64) (width, height float64, err error)

	// MeasureImage returns the native pixel dimensions of an image.
	MeasureImage(path string) (width, height int, err error)
}

// LinePlacement positions one line of a text slide.
type LinePlacement struct {
	// Origin is the top-left corner of the line box.
	Origin Point

	// Width and Height are the scaled line extents.
	Width, Height float64
}

// Placement is the layout of one slide in one viewport.
type Placement struct {
	// Scale is the factor applied to the content: pixels per em for text,
	// destination pixels per source pixel for images. Always positive.
	Scale float64

	// Origin is the top-left corner of the content block.
	Origin Point

	// Size is the scaled extent of the content block.
	Size Size

	// Lines holds one entry per text line, empty for other slides.
	Lines []LinePlacement

	// Filter selects the image sampling strategy.
	Filter FilterMode

	// Foreground and Background are linear, with invert already applied.
	Foreground, Background sent.RGBA

	// WrapWidth is the widest line a renderer may lay out without wrapping.
	// It is the usable width plus a small relative tolerance.
	WrapWidth float64
}

// Rect returns the content block as min and max corners.
func (p Placement) Rect() (topLeft, bottomRight Point) {
	return p.Origin, Point{X: p.Origin.X + p.Size.Width, Y: p.Origin.Y + p.Size.Height}
}
