package sent

import (
	"errors"
	"fmt"
)

// DiagnosticKind classifies a Diagnostic.
type DiagnosticKind int

const (
	// KindIO reports a presentation file that could not be read.
	KindIO DiagnosticKind = iota
	// KindColorParse reports a malformed fg or bg directive.
	KindColorParse
	// KindImageNotFound reports an image slide whose file is missing.
	KindImageNotFound
	// KindImageDecode reports an image slide whose file cannot be decoded.
	KindImageDecode
	// KindFontNotFound reports an exhausted font fallback chain.
	KindFontNotFound
)

// String returns the string representation of the kind.
func (k DiagnosticKind) String() string {
	switch k {
	case KindIO:
		return "IoError"
	case KindColorParse:
		return "ColorParseError"
	case KindImageNotFound:
		return "ImageNotFoundError"
	case KindImageDecode:
		return "ImageDecodeError"
	case KindFontNotFound:
		return "FontNotFoundError"
	default:
		return "Unknown"
	}
}

// Diagnostic is a user-visible, non-fatal problem found while loading or
// displaying a presentation. The host decides how to show it.
type Diagnostic struct {
	Kind    DiagnosticKind
	Message string
	Line    int // 1-based source line, 0 when not tied to a line
}

// String formats the diagnostic for display.
func (d Diagnostic) String() string {
	if d.Line > 0 {
		return fmt.Sprintf("%s (line %d): %s", d.Kind, d.Line, d.Message)
	}
	return fmt.Sprintf("%s: %s", d.Kind, d.Message)
}

// DiagnosticFromError converts an error into a Diagnostic.
// Errors outside the sent taxonomy are reported as KindIO.
func DiagnosticFromError(err error) Diagnostic {
	var (
		colorErr    *ColorParseError
		notFoundErr *ImageNotFoundError
		decodeErr   *ImageDecodeError
		fontErr     *FontNotFoundError
	)

	switch {
	case errors.As(err, &colorErr):
		return Diagnostic{Kind: KindColorParse, Message: err.Error(), Line: colorErr.Line}
	case errors.As(err, &notFoundErr):
		return Diagnostic{Kind: KindImageNotFound, Message: err.Error()}
	case errors.As(err, &decodeErr):
		return Diagnostic{Kind: KindImageDecode, Message: err.Error()}
	case errors.As(err, &fontErr):
		return Diagnostic{Kind: KindFontNotFound, Message: err.Error()}
	default:
		return Diagnostic{Kind: KindIO, Message: err.Error()}
	}
}
