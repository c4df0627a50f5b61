package metrics

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"strings"

	// Registered image formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/sent"
	"github.com/gogpu/sent/internal/cache"
	"github.com/gogpu/sent/layout"
	"github.com/gogpu/sent/text"
)

var _ layout.MetricsProvider = (*Provider)(nil)

// Provider measures text with resolved font chains and images with their
// file headers. Relative image paths are resolved against a base directory,
// normally the directory of the presentation file.
//
// Provider is safe for concurrent use.
type Provider struct {
	baseDir string
	opts    options

	chains *cache.LRU[string, chainEntry]
	images *cache.LRU[string, image.Image]
}

type chainEntry struct {
	chain *text.Chain
	err   error
}

// New creates a Provider resolving relative image paths against baseDir.
func New(baseDir string, opts ...Option) *Provider {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.locator == nil {
		o.locator = text.NewSystemLocator("")
	}
	return &Provider{
		baseDir: baseDir,
		opts:    o,
		chains:  cache.New[string, chainEntry](o.chainCache),
		images:  cache.New[string, image.Image](o.imageCache),
	}
}

// BaseDir returns the directory relative image paths are resolved against.
func (p *Provider) BaseDir() string { return p.baseDir }

// Chain returns the font chain for fonts, resolving it on first use.
// The result, including a *sent.FontNotFoundError, is cached per font list.
func (p *Provider) Chain(fonts []string) (*text.Chain, error) {
	key := strings.Join(fonts, "\x00")
	e := p.chains.GetOrCreate(key, func() chainEntry {
		chain, err := text.NewChain(fonts, p.opts.locator, p.opts.chainOpts...)
		return chainEntry{chain: chain, err: err}
	})
	return e.chain, e.err
}

// MeasureTextLine implements layout.MetricsProvider.
func (p *Provider) MeasureTextLine(fonts []string, line string, scale float64) (width, height float64, err error) {
	chain, err := p.Chain(fonts)
	if err != nil {
		return 0, 0, err
	}
	width, height = text.Measure(line, chain.Face(scale))
	return width, height, nil
}

// MeasureImage implements layout.MetricsProvider.
func (p *Provider) MeasureImage(path string) (width, height int, err error) {
	f, err := p.open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, &sent.ImageDecodeError{Path: path, Err: err}
	}
	return cfg.Width, cfg.Height, nil
}

// DecodeImage decodes the full image at path. Successfully decoded images
// are cached by resolved path; callers must not modify them.
// Errors have the same types as MeasureImage.
func (p *Provider) DecodeImage(path string) (image.Image, error) {
	key := p.Resolve(path)
	if img, ok := p.images.Get(key); ok {
		return img, nil
	}

	f, err := p.open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, &sent.ImageDecodeError{Path: path, Err: err}
	}
	p.images.Set(key, img)
	return img, nil
}

// Resolve returns path joined to the base directory unless it is absolute.
func (p *Provider) Resolve(path string) string {
	if filepath.IsAbs(path) || p.baseDir == "" {
		return path
	}
	return filepath.Join(p.baseDir, path)
}

func (p *Provider) open(path string) (*os.File, error) {
	resolved := p.Resolve(path)
	// #nosec G304 -- Image paths come from the presentation being shown
	f, err := os.Open(resolved)
	if err != nil {
		// Unreadable files are reported like missing ones.
		return nil, &sent.ImageNotFoundError{Path: path, Err: err}
	}
	if st, err := f.Stat(); err == nil && st.IsDir() {
		f.Close()
		return nil, &sent.ImageDecodeError{Path: path, Err: errIsDir}
	}
	return f, nil
}

var errIsDir = errors.New("is a directory")
