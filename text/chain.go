package text

import (
	"sync"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/sent"
)

// Chain is a resolved font fallback chain.
// Chain is immutable and safe for concurrent use.
type Chain struct {
	requested []string
	sources   []*FontSource
}

// NewChain resolves font family names, in order, into a Chain.
//
// Names that cannot be located or loaded are skipped silently; only the
// exhausted chain is an error. Unless WithoutBundledFallback is given, the
// bundled Go Regular font is appended as the last resort. loc may be nil,
// in which case only the bundled font is available.
//
// Returns *sent.FontNotFoundError when the chain has no usable font.
func NewChain(names []string, loc Locator, opts ...ChainOption) (*Chain, error) {
	config := defaultChainConfig()
	for _, opt := range opts {
		opt(&config)
	}

	c := &Chain{requested: append([]string(nil), names...)}
	log := sent.Logger()

	for _, name := range names {
		if loc == nil {
			break
		}
		where, ok := loc.Locate(name)
		if !ok {
			log.Debug("text: font not installed", "font", name)
			continue
		}
		src, err := NewFontSourceFromFile(where.Path, WithCollectionIndex(where.Index))
		if err != nil {
			log.Debug("text: font unusable", "font", name, "path", where.Path, "err", err)
			continue
		}
		c.sources = append(c.sources, src)
	}

	if config.bundledFallback {
		src, err := bundledSource()
		if err != nil {
			return nil, err
		}
		c.sources = append(c.sources, src)
	}

	if len(c.sources) == 0 {
		return nil, &sent.FontNotFoundError{Fonts: c.requested}
	}

	log.Debug("text: resolved font chain", "requested", names, "fonts", c.Names())
	return c, nil
}

// Face returns a fallback face over the chain at size.
func (c *Chain) Face(size float64) *MultiFace {
	faces := make([]Face, len(c.sources))
	for i, s := range c.sources {
		faces[i] = s.Face(size)
	}
	// Never empty: NewChain guarantees at least one source.
	m, _ := NewMultiFace(faces...)
	return m
}

// Names returns the resolved font names in priority order.
func (c *Chain) Names() []string {
	names := make([]string, len(c.sources))
	for i, s := range c.sources {
		names[i] = s.Name()
	}
	return names
}

// Requested returns the family names the chain was built from.
func (c *Chain) Requested() []string {
	return append([]string(nil), c.requested...)
}

// Len returns the number of usable fonts in the chain.
func (c *Chain) Len() int { return len(c.sources) }

var bundled struct {
	once sync.Once
	src  *FontSource
	err  error
}

// bundledSource returns the shared Go Regular font source.
func bundledSource() (*FontSource, error) {
	bundled.once.Do(func() {
		bundled.src, bundled.err = NewFontSource(goregular.TTF)
	})
	return bundled.src, bundled.err
}
