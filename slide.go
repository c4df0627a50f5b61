package sent

// Slide is one page of a presentation.
//
// Slide is a closed sum type: the only implementations are TextSlide,
// ImageSlide and EmptySlide. Consumers select on the variant with a type
// switch.
type Slide interface {
	// slide prevents external implementation
	slide()
}

// TextSlide holds lines of text shown centred as one block.
// Lines are kept verbatim: no trimming and no wrapping.
type TextSlide struct {
	Lines []string
}

// ImageSlide shows a single image, scaled to fit.
// Path is relative to the presentation file unless absolute.
type ImageSlide struct {
	Path string
}

// EmptySlide shows only the background.
type EmptySlide struct{}

func (TextSlide) slide()  {}
func (ImageSlide) slide() {}
func (EmptySlide) slide() {}

// Text re-encodes the slide lines joined by newlines.
func (s TextSlide) Text() string {
	n := 0
	for _, l := range s.Lines {
		n += len(l) + 1
	}
	buf := make([]byte, 0, n)
	for i, l := range s.Lines {
		if i > 0 {
			buf = append(buf, '\n')
		}
		buf = append(buf, l...)
	}
	return string(buf)
}
