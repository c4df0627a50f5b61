package text

// MultiFace combines multiple faces with fallback.
// Each rune is measured with the first face that has a glyph for it.
// MultiFace is safe for concurrent use.
type MultiFace struct {
	faces []Face
}

// NewMultiFace creates a MultiFace from faces, in priority order.
// Returns ErrEmptyFaces if faces is empty.
func NewMultiFace(faces ...Face) (*MultiFace, error) {
	if len(faces) == 0 {
		return nil, ErrEmptyFaces
	}
	return &MultiFace{faces: append([]Face(nil), faces...)}, nil
}

// Metrics implements Face.Metrics.
// Returns metrics from the first face.
func (m *MultiFace) Metrics() Metrics {
	return m.faces[0].Metrics()
}

// Advance implements Face.Advance.
// Runs of consecutive runes served by the same face are measured together
// so that kerning within the run is kept.
func (m *MultiFace) Advance(text string) float64 {
	total := 0.0
	start := 0
	var current Face

	for i, r := range text {
		face := m.FaceFor(r)
		if current != nil && face != current {
			total += current.Advance(text[start:i])
			start = i
		}
		current = face
	}
	if current != nil {
		total += current.Advance(text[start:])
	}

	return total
}

// HasGlyph implements Face.HasGlyph.
// Returns true if any face has the glyph.
func (m *MultiFace) HasGlyph(r rune) bool {
	for _, face := range m.faces {
		if face.HasGlyph(r) {
			return true
		}
	}
	return false
}

// Source implements Face.Source.
// Returns nil since MultiFace is a composite face.
func (m *MultiFace) Source() *FontSource {
	return nil
}

// Size implements Face.Size.
// Returns the size from the first face.
func (m *MultiFace) Size() float64 {
	return m.faces[0].Size()
}

// Faces returns the faces in priority order.
func (m *MultiFace) Faces() []Face {
	return append([]Face(nil), m.faces...)
}

// private implements the Face interface.
func (m *MultiFace) private() {}

// FaceFor returns the first face that has the glyph for the rune.
// If no face has the glyph, returns the first face so that the missing
// glyph box of the primary font is used.
func (m *MultiFace) FaceFor(r rune) Face {
	for _, face := range m.faces {
		if face.HasGlyph(r) {
			return face
		}
	}
	return m.faces[0]
}
