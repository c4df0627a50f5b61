// Package nav tracks the current slide and maps input to slide changes.
package nav

// Cursor is the navigation state of a presentation with a fixed number of
// slides. The zero value is a cursor over an empty presentation.
//
// Transitions clamp at both ends and never wrap around. Every transition
// reports whether the index changed, so the host can skip redundant
// redraws.
//
// Cursor deliberately has no notion of the viewport: pointer input
// must pass the live viewport width on each call.
type Cursor struct {
	index int
	count int
}

// New returns a cursor at the first slide, or an empty cursor if count is
// not positive.
func New(count int) *Cursor {
	return &Cursor{count: max(count, 0)}
}

// Index returns the current slide index. It reports false when there are
// no slides.
func (c *Cursor) Index() (int, bool) {
	if c.count == 0 {
		return 0, false
	}
	return c.index, true
}

// Len returns the number of slides.
func (c *Cursor) Len() int { return c.count }

// Next advances one slide, stopping at the last.
func (c *Cursor) Next() bool { return c.moveTo(c.index + 1) }

// Previous goes back one slide, stopping at the first.
func (c *Cursor) Previous() bool { return c.moveTo(c.index - 1) }

// First jumps to the first slide.
func (c *Cursor) First() bool { return c.moveTo(0) }

// Last jumps to the last slide.
func (c *Cursor) Last() bool { return c.moveTo(c.count - 1) }

// PointerActivate handles a click or tap at horizontal position x: the left
// half of the viewport goes back, the right half advances.
func (c *Cursor) PointerActivate(x, viewportWidth float64) bool {
	if x < viewportWidth/2 {
		return c.Previous()
	}
	return c.Next()
}

// Apply performs a navigation action. ActionNone and ActionQuit leave the
// cursor unchanged.
func (c *Cursor) Apply(a Action) bool {
	switch a {
	case ActionNext:
		return c.Next()
	case ActionPrevious:
		return c.Previous()
	case ActionFirst:
		return c.First()
	case ActionLast:
		return c.Last()
	default:
		return false
	}
}

func (c *Cursor) moveTo(i int) bool {
	if c.count == 0 {
		return false
	}
	i = min(max(i, 0), c.count-1)
	if i == c.index {
		return false
	}
	c.index = i
	return true
}
