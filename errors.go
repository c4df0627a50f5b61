package sent

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the sent package.
var (
	// ErrHexLength is returned when a colour hex code has an unsupported
	// number of digits.
	ErrHexLength = errors.New("sent: hex colour must have 3, 6 or 8 digits")

	// ErrHexDigit is returned when a colour hex code contains a non-hex character.
	ErrHexDigit = errors.New("sent: invalid hex digit")
)

// ColorParseError is returned when an fg or bg directive carries a value
// that is not a valid hex colour. It is non-fatal: the parser records it as
// a diagnostic and keeps the previous colour.
type ColorParseError struct {
	Line int    // 1-based line number of the directive
	Raw  string // directive line exactly as written
	Err  error
}

func (e *ColorParseError) Error() string {
	return fmt.Sprintf("sent: line %d: invalid colour directive %q: %v", e.Line, e.Raw, e.Err)
}

func (e *ColorParseError) Unwrap() error { return e.Err }

// FontNotFoundError is returned when no font of a fallback chain can be
// loaded on the host.
type FontNotFoundError struct {
	Fonts []string
}

func (e *FontNotFoundError) Error() string {
	if len(e.Fonts) == 0 {
		return "sent: no usable font available"
	}
	return fmt.Sprintf("sent: none of the fonts [%s] is available", strings.Join(e.Fonts, ", "))
}

// ImageNotFoundError is returned when an image slide references a file that
// does not exist.
type ImageNotFoundError struct {
	Path string
	Err  error
}

func (e *ImageNotFoundError) Error() string {
	return fmt.Sprintf("sent: image %q not found", e.Path)
}

func (e *ImageNotFoundError) Unwrap() error { return e.Err }

// ImageDecodeError is returned when an image file exists but cannot be
// decoded, or decodes to an image without area.
type ImageDecodeError struct {
	Path string
	Err  error
}

func (e *ImageDecodeError) Error() string {
	return fmt.Sprintf("sent: unable to decode image %q: %v", e.Path, e.Err)
}

func (e *ImageDecodeError) Unwrap() error { return e.Err }
