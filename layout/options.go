package layout

// Option configures Compute.
type Option func(*options)

// options holds layout configuration.
type options struct {
	lineSpacing float64 // in em
}

// defaultOptions returns the default layout configuration.
func defaultOptions() options {
	return options{}
}

// WithLineSpacing adds extra space between text lines, in em.
// The spacing scales with the text. The default is 0, which stacks lines at
// the font's own line height.
func WithLineSpacing(em float64) Option {
	return func(o *options) {
		if em > 0 {
			o.lineSpacing = em
		}
	}
}
