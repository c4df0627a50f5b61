package sent

import (
	"strings"
	"unicode"
)

const (
	commentMarker      = '#'
	directiveMarker    = "#."
	directiveSeparator = ":"
	imageMarker        = '@'
	escapeMarker       = '\\'
)

// RawLine is one content line of a paragraph after comment removal.
type RawLine struct {
	// Text is the line content. For escaped lines the leading backslash
	// has already been removed.
	Text string

	// Escaped reports whether the source line started with a backslash,
	// which disables every special-character interpretation.
	Escaped bool

	// Number is the 1-based line number in the source.
	Number int
}

// RawParagraph is a blank-line delimited run of content lines.
// It always holds at least one line.
type RawParagraph struct {
	Line  int // line number of the first content line
	Lines []RawLine
}

// Directive is a "#.key:value" configuration comment.
type Directive struct {
	Key   string
	Value string
	Line  int
	Raw   string // the full source line
}

// Tokenize splits raw presentation text into paragraphs and directives.
//
// Paragraphs are separated by one or more blank lines; a line holding only
// white space counts as blank. Comment lines are dropped, directive lines
// are returned separately in file order, and paragraphs left without any
// content line are discarded.
func Tokenize(raw string) ([]RawParagraph, []Directive) {
	var (
		paragraphs []RawParagraph
		directives []Directive
		current    RawParagraph
	)

	flush := func() {
		if len(current.Lines) > 0 {
			paragraphs = append(paragraphs, current)
		}
		current = RawParagraph{}
	}

	number := 0
	for line := range strings.Lines(raw) {
		number++
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")

		if isBlank(line) {
			flush()
			continue
		}

		switch {
		case line[0] == escapeMarker:
			current.add(RawLine{Text: line[1:], Escaped: true, Number: number})
		case strings.HasPrefix(line, directiveMarker):
			directives = append(directives, parseDirective(line, number))
		case line[0] == commentMarker:
			// plain comment
		default:
			current.add(RawLine{Text: line, Number: number})
		}
	}
	flush()

	return paragraphs, directives
}

func (p *RawParagraph) add(l RawLine) {
	if len(p.Lines) == 0 {
		p.Line = l.Number
	}
	p.Lines = append(p.Lines, l)
}

// parseDirective splits "#.key:value". A directive without a separator has
// an empty value, which is enough for presence-triggered keys.
func parseDirective(line string, number int) Directive {
	body := strings.TrimPrefix(line, directiveMarker)
	key, value, _ := strings.Cut(body, directiveSeparator)
	return Directive{
		Key:   strings.TrimSpace(key),
		Value: value,
		Line:  number,
		Raw:   line,
	}
}

func isBlank(line string) bool {
	return strings.TrimRightFunc(line, unicode.IsSpace) == ""
}
