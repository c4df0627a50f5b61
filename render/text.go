package render

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/sent"
	"github.com/gogpu/sent/layout"
	"github.com/gogpu/sent/text"
)

// drawText rasterizes every line of s at its placement.
// Runes are drawn with the first font of the chain that has them.
func (r *Renderer) drawText(dst *image.RGBA, s sent.TextSlide, pl layout.Placement, fonts []string) error {
	if len(pl.Lines) == 0 {
		return nil
	}
	chain, err := r.metrics.Chain(fonts)
	if err != nil {
		return err
	}

	mf := chain.Face(pl.Scale)
	ascent := mf.Metrics().Ascent

	faces := make(map[*text.FontSource]font.Face)
	defer func() {
		for _, f := range faces {
			_ = f.Close()
		}
	}()
	drawFace := func(src *text.FontSource) (font.Face, error) {
		if f, ok := faces[src]; ok {
			return f, nil
		}
		f, err := src.DrawFace(pl.Scale)
		if err != nil {
			return nil, err
		}
		faces[src] = f
		return f, nil
	}

	d := &font.Drawer{
		Dst: dst,
		Src: image.NewUniform(pl.Foreground.SRGB().Color()),
	}

	for i, line := range s.Lines {
		if i >= len(pl.Lines) {
			break
		}
		lp := pl.Lines[i]
		d.Dot = fixed.Point26_6{
			X: floatToFixed(lp.Origin.X),
			Y: floatToFixed(lp.Origin.Y + ascent),
		}

		for _, run := range splitRuns(line, mf) {
			f, err := drawFace(run.source)
			if err != nil {
				return err
			}
			d.Face = f
			d.DrawString(run.text)
		}
	}
	return nil
}

// run is a stretch of a line served by one font.
type run struct {
	text   string
	source *text.FontSource
}

// splitRuns cuts line into runs of consecutive runes resolved to the same
// font of mf.
func splitRuns(line string, mf *text.MultiFace) []run {
	var runs []run
	start := 0
	var current *text.FontSource

	for i, r := range line {
		src := mf.FaceFor(r).Source()
		if current != nil && src != current {
			runs = append(runs, run{text: line[start:i], source: current})
			start = i
		}
		current = src
	}
	if current != nil {
		runs = append(runs, run{text: line[start:], source: current})
	}
	return runs
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}
