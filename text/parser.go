package text

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ParsedFont represents a parsed font file.
// This interface abstracts the underlying font representation.
type ParsedFont interface {
	// Name returns the font family name.
	// Returns empty string if not available.
	Name() string

	// FullName returns the full font name.
	// Returns empty string if not available.
	FullName() string

	// GlyphIndex returns the glyph index for a rune.
	// Returns 0 if the glyph is not found.
	GlyphIndex(r rune) uint16

	// GlyphAdvance returns the advance width for a glyph at the given size
	// in pixels per em.
	GlyphAdvance(glyphIndex uint16, size float64) float64

	// Kern returns the kerning adjustment between two glyphs at size.
	Kern(left, right uint16, size float64) float64

	// Metrics returns the font metrics at the given size.
	Metrics(size float64) FontMetrics
}

// FontMetrics holds font-level metrics at a specific size.
type FontMetrics struct {
	// Ascent is the distance from the baseline to the top of the font (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font (negative).
	Descent float64

	// LineGap is the recommended line gap between lines.
	LineGap float64

	// XHeight is the height of lowercase letters (like 'x').
	XHeight float64

	// CapHeight is the height of uppercase letters.
	CapHeight float64
}

// parseFont parses TTF, OTF or collection data. For collections, index
// selects the font.
func parseFont(data []byte, index int) (*sfntFont, error) {
	coll, err := sfnt.ParseCollection(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	if index < 0 || index >= coll.NumFonts() {
		return nil, fmt.Errorf("%w: %d of %d", ErrCollectionIndex, index, coll.NumFonts())
	}
	f, err := coll.Font(index)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return &sfntFont{font: f, unitsPerEm: float64(f.UnitsPerEm())}, nil
}

// sfntFont implements ParsedFont using sfnt.Font.
//
// Every query is made at a ppem equal to the font's units per em, which
// yields exact font units, and scaled in floating point afterwards.
type sfntFont struct {
	font       *sfnt.Font
	unitsPerEm float64
}

// Name implements ParsedFont.Name.
func (f *sfntFont) Name() string {
	if buf, err := f.font.Name(nil, sfnt.NameIDFamily); err == nil && buf != "" {
		return buf
	}
	return ""
}

// FullName implements ParsedFont.FullName.
func (f *sfntFont) FullName() string {
	if buf, err := f.font.Name(nil, sfnt.NameIDFull); err == nil && buf != "" {
		return buf
	}
	return ""
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *sfntFont) GlyphIndex(r rune) uint16 {
	idx, err := f.font.GlyphIndex(nil, r)
	if err != nil {
		return 0
	}
	return uint16(idx)
}

// GlyphAdvance implements ParsedFont.GlyphAdvance.
func (f *sfntFont) GlyphAdvance(glyphIndex uint16, size float64) float64 {
	var buf sfnt.Buffer
	advance, err := f.font.GlyphAdvance(&buf, sfnt.GlyphIndex(glyphIndex), f.emPPEM(), font.HintingNone)
	if err != nil {
		return 0
	}
	return f.scale(advance, size)
}

// Kern implements ParsedFont.Kern. Fonts without a kern table report 0.
func (f *sfntFont) Kern(left, right uint16, size float64) float64 {
	var buf sfnt.Buffer
	k, err := f.font.Kern(&buf, sfnt.GlyphIndex(left), sfnt.GlyphIndex(right), f.emPPEM(), font.HintingNone)
	if err != nil {
		return 0
	}
	return f.scale(k, size)
}

// Metrics implements ParsedFont.Metrics.
func (f *sfntFont) Metrics(size float64) FontMetrics {
	var buf sfnt.Buffer
	m, err := f.font.Metrics(&buf, f.emPPEM(), font.HintingNone)
	if err != nil {
		return FontMetrics{}
	}

	ascent := f.scale(m.Ascent, size)
	descent := f.scale(m.Descent, size)
	return FontMetrics{
		Ascent:    ascent,
		Descent:   -descent,
		LineGap:   max(f.scale(m.Height, size)-ascent-descent, 0),
		XHeight:   f.scale(m.XHeight, size),
		CapHeight: f.scale(m.CapHeight, size),
	}
}

// drawFace returns an x/image face for rasterizing at size.
func (f *sfntFont) drawFace(size float64) (font.Face, error) {
	return opentype.NewFace(f.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
}

func (f *sfntFont) emPPEM() fixed.Int26_6 {
	return fixed.Int26_6(f.unitsPerEm * 64)
}

// scale converts a value measured at emPPEM to pixels at size.
func (f *sfntFont) scale(v fixed.Int26_6, size float64) float64 {
	return float64(v) / 64 * size / f.unitsPerEm
}
