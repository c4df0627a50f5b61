package metrics

import "github.com/gogpu/sent/text"

// Option configures a Provider.
type Option func(*options)

type options struct {
	locator    text.Locator
	chainOpts  []text.ChainOption
	chainCache int
	imageCache int
}

func defaultOptions() options {
	return options{
		chainCache: 32,
		imageCache: 16,
	}
}

// WithLocator sets the font locator. The default indexes system fonts with
// text.NewSystemLocator.
func WithLocator(loc text.Locator) Option {
	return func(o *options) {
		o.locator = loc
	}
}

// WithChainOptions passes options to every text.NewChain call.
func WithChainOptions(opts ...text.ChainOption) Option {
	return func(o *options) {
		o.chainOpts = append(o.chainOpts, opts...)
	}
}

// WithImageCache sets how many decoded images are kept for reuse.
func WithImageCache(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.imageCache = n
		}
	}
}
