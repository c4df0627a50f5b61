// Package load reads presentation files from disk.
//
// The sent package itself never touches the filesystem; this package is the
// thin I/O layer a host puts in front of sent.Parse.
package load

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/gogpu/sent"
	"github.com/gogpu/sent/layout"
)

// StdinPath is the path File reads from standard input.
const StdinPath = "-"

var errNoArea = errors.New("image has no area")

// File reads and parses the presentation at path.
//
// A file that cannot be read yields an empty presentation and a single
// KindIO diagnostic; File never fails outright.
func File(path string) (*sent.Presentation, []sent.Diagnostic) {
	if path == StdinPath {
		return Read(os.Stdin)
	}

	// #nosec G304 -- The presentation path is chosen by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return ioFailure(err)
	}
	return parseBytes(data)
}

// Read parses a presentation from r.
func Read(r io.Reader) (*sent.Presentation, []sent.Diagnostic) {
	data, err := io.ReadAll(r)
	if err != nil {
		return ioFailure(fmt.Errorf("load: read presentation: %w", err))
	}
	return parseBytes(data)
}

// Decode converts raw file bytes to text. A UTF-8 byte order mark is
// stripped and UTF-16 files with a byte order mark are transcoded; anything
// else is taken as UTF-8, with invalid sequences replaced by U+FFFD.
func Decode(data []byte) (string, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(dec, data)
	if err != nil {
		return "", fmt.Errorf("load: decode presentation: %w", err)
	}
	return string(out), nil
}

func parseBytes(data []byte) (*sent.Presentation, []sent.Diagnostic) {
	raw, err := Decode(data)
	if err != nil {
		return ioFailure(err)
	}
	p, diags := sent.Parse(raw)
	sent.Logger().Debug("load: presentation read", "bytes", len(data), "bom", hasBOM(data))
	return p, diags
}

func ioFailure(err error) (*sent.Presentation, []sent.Diagnostic) {
	sent.Logger().Warn("load: unable to read presentation", "err", err)
	return sent.NewPresentation(nil, sent.DefaultConfig()), []sent.Diagnostic{sent.DiagnosticFromError(err)}
}

func hasBOM(data []byte) bool {
	return bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}) ||
		bytes.HasPrefix(data, []byte{0xFE, 0xFF}) ||
		bytes.HasPrefix(data, []byte{0xFF, 0xFE})
}

// ResolveImagePath resolves an image path from a slide against the
// directory of the presentation file. Absolute image paths are returned
// unchanged.
func ResolveImagePath(presentationPath, imagePath string) string {
	if filepath.IsAbs(imagePath) {
		return imagePath
	}
	if presentationPath == StdinPath {
		return imagePath
	}
	return filepath.Join(filepath.Dir(presentationPath), imagePath)
}

// CheckImages measures every image the presentation references and
// returns one diagnostic per image that is missing or cannot be decoded.
// Relative paths are resolved against baseDir. The presentation stays valid
// either way; failed slides render as error slides.
func CheckImages(p *sent.Presentation, baseDir string, metrics layout.MetricsProvider) []sent.Diagnostic {
	var diags []sent.Diagnostic
	for _, path := range p.ImagePaths() {
		target := path
		if baseDir != "" && !filepath.IsAbs(path) {
			target = filepath.Join(baseDir, path)
		}
		w, h, err := metrics.MeasureImage(target)
		if err == nil && (w <= 0 || h <= 0) {
			err = &sent.ImageDecodeError{Path: path, Err: errNoArea}
		}
		if err != nil {
			diags = append(diags, sent.DiagnosticFromError(err))
		}
	}
	return diags
}
