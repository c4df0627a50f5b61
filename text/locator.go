package text

import (
	"log/slog"
	"sync"

	"github.com/go-text/typesetting/fontscan"

	"github.com/gogpu/sent"
)

// FontLocation identifies a font file on the host.
type FontLocation struct {
	Path string
	// Index selects the font inside a TTC/OTC collection.
	Index int
}

// Locator finds installed fonts by family name.
type Locator interface {
	Locate(family string) (FontLocation, bool)
}

// SystemLocator finds fonts installed on the host using the
// go-text/typesetting font index. The index is built on first use and
// cached on disk.
//
// SystemLocator is safe for concurrent use.
type SystemLocator struct {
	cacheDir string

	once sync.Once
	fm   *fontscan.FontMap
	err  error
}

// NewSystemLocator returns a locator that stores its font index in
// cacheDir. An empty cacheDir selects the user cache directory.
func NewSystemLocator(cacheDir string) *SystemLocator {
	return &SystemLocator{cacheDir: cacheDir}
}

// Locate implements Locator.
func (l *SystemLocator) Locate(family string) (FontLocation, bool) {
	l.once.Do(l.init)
	if l.err != nil {
		return FontLocation{}, false
	}

	loc, ok := l.fm.FindSystemFont(family)
	if !ok {
		return FontLocation{}, false
	}
	return FontLocation{Path: loc.File, Index: int(loc.Index)}, true
}

// Err returns the error encountered while indexing system fonts, if any.
func (l *SystemLocator) Err() error {
	l.once.Do(l.init)
	return l.err
}

func (l *SystemLocator) init() {
	logger := slog.NewLogLogger(sent.Logger().Handler(), slog.LevelDebug)
	l.fm = fontscan.NewFontMap(logger)
	l.err = l.fm.UseSystemFonts(l.cacheDir)
	if l.err != nil {
		sent.Logger().Warn("text: unable to index system fonts", "err", l.err)
	}
}

// MapLocator is a Locator over a fixed family to location table.
type MapLocator map[string]FontLocation

// Locate implements Locator.
func (m MapLocator) Locate(family string) (FontLocation, bool) {
	loc, ok := m[family]
	return loc, ok
}
