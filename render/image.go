package render

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/sent"
	"github.com/gogpu/sent/layout"
)

// drawImage decodes the slide image and scales it into the placement
// rectangle, composited over the background.
func (r *Renderer) drawImage(dst *image.RGBA, s sent.ImageSlide, pl layout.Placement) error {
	src, err := r.metrics.DecodeImage(s.Path)
	if err != nil {
		return err
	}

	topLeft, bottomRight := pl.Rect()
	rect := image.Rect(
		int(math.Round(topLeft.X)), int(math.Round(topLeft.Y)),
		int(math.Round(bottomRight.X)), int(math.Round(bottomRight.Y)),
	)
	if rect.Empty() {
		return nil
	}

	scalerFor(pl.Filter).Scale(dst, rect, src, src.Bounds(), xdraw.Over, nil)
	return nil
}

// scalerFor maps a sampling filter to an x/image scaler. CatmullRom is the
// closest software match to anisotropic GPU sampling when minifying or
// mildly magnifying.
func scalerFor(f layout.FilterMode) xdraw.Scaler {
	if f == layout.FilterNearest {
		return xdraw.NearestNeighbor
	}
	return xdraw.CatmullRom
}
