package sent

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxTitleRunes bounds Title, including the trailing ellipsis.
const maxTitleRunes = 64

// Presentation is a parsed presentation: ordered slides plus configuration.
// A Presentation is immutable once created and safe for concurrent reads.
type Presentation struct {
	slides []Slide
	config Config
}

// NewPresentation builds a Presentation from already classified slides.
// The slice and configuration are copied.
func NewPresentation(slides []Slide, cfg Config) *Presentation {
	if cfg.Fonts == nil {
		cfg.Fonts = []string{}
	}
	return &Presentation{
		slides: append([]Slide(nil), slides...),
		config: cfg.Clone(),
	}
}

// Parse parses sent-format text.
//
// Parse never fails: malformed directives are reported as diagnostics and
// the rest of the input is still parsed. Empty input yields a presentation
// without slides and no diagnostics.
func Parse(raw string) (*Presentation, []Diagnostic) {
	paragraphs, directives := Tokenize(raw)

	cfg := DefaultConfig()
	var diags []Diagnostic
	for _, d := range directives {
		if err := cfg.Apply(d); err != nil {
			Logger().Warn("sent: invalid colour directive", "line", d.Line, "err", err)
			diags = append(diags, DiagnosticFromError(err))
		}
	}

	slides := make([]Slide, 0, len(paragraphs))
	for _, p := range paragraphs {
		slides = append(slides, classify(p))
	}

	Logger().Debug("sent: parsed presentation",
		"slides", len(slides), "directives", len(directives), "diagnostics", len(diags))

	return &Presentation{slides: slides, config: cfg}, diags
}

// classify maps a paragraph to its slide variant.
func classify(p RawParagraph) Slide {
	first := p.Lines[0]

	switch {
	case !first.Escaped && first.Text[0] == imageMarker:
		// Lines after the image marker line are accepted and ignored.
		return ImageSlide{Path: strings.TrimRightFunc(first.Text[1:], unicode.IsSpace)}
	case len(p.Lines) == 1 && first.Escaped && first.Text == "":
		return EmptySlide{}
	}

	lines := make([]string, len(p.Lines))
	for i, l := range p.Lines {
		lines[i] = l.Text
	}
	return TextSlide{Lines: lines}
}

// Len returns the number of slides.
func (p *Presentation) Len() int { return len(p.slides) }

// Slide returns the slide at index i. It panics if i is out of range.
func (p *Presentation) Slide(i int) Slide { return p.slides[i] }

// Slides returns a copy of the slide list.
func (p *Presentation) Slides() []Slide {
	return append([]Slide(nil), p.slides...)
}

// Config returns a copy of the presentation configuration.
func (p *Presentation) Config() Config { return p.config.Clone() }

// ImagePaths returns the distinct image paths referenced by image slides,
// in slide order.
func (p *Presentation) ImagePaths() []string {
	seen := make(map[string]struct{})
	var paths []string
	for _, s := range p.slides {
		img, ok := s.(ImageSlide)
		if !ok {
			continue
		}
		if _, dup := seen[img.Path]; dup {
			continue
		}
		seen[img.Path] = struct{}{}
		paths = append(paths, img.Path)
	}
	return paths
}

// Title derives a window title from the first text slide.
//
// The slide's lines are trimmed and joined with single spaces since authors
// wrap slide text by hand. Titles longer than 63 characters are cut and get
// an ellipsis. Reports false when the presentation has no text slide.
func (p *Presentation) Title() (string, bool) {
	for _, s := range p.slides {
		text, ok := s.(TextSlide)
		if !ok {
			continue
		}

		var b strings.Builder
		for _, line := range text.Lines {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(line)
		}
		return truncateRunes(b.String(), maxTitleRunes-1), true
	}
	return "", false
}

// truncateRunes cuts s to n runes on a rune boundary, appending an ellipsis
// when anything was removed.
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for idx := range s {
		if i == n {
			return s[:idx] + "…"
		}
		i++
	}
	return s
}
