package sent

import "strings"

// Directive keys understood by Config.Apply.
const (
	DirectiveFont       = "font"
	DirectiveForeground = "fg"
	DirectiveBackground = "bg"
	DirectiveCursor     = "cursor"
	DirectiveInvert     = "invert"
)

// Config holds the presentation-wide settings set by directives.
type Config struct {
	// Fonts is the font fallback chain, first found wins.
	// It may be empty but is never nil.
	Fonts []string

	// Foreground and Background are sRGB encoded.
	Foreground RGBA
	Background RGBA

	ShowCursor bool
	Invert     bool
}

// DefaultConfig returns the configuration used when no directive is present:
// black text on a white background, no fonts, cursor hidden.
func DefaultConfig() Config {
	return Config{
		Fonts:      []string{},
		Foreground: Black,
		Background: White,
	}
}

// Apply merges one directive into the configuration.
//
// font accumulates, fg and bg override, cursor and invert are switched on by
// presence alone. Unknown keys are ignored. A malformed colour leaves c
// unchanged and returns a *ColorParseError.
func (c *Config) Apply(d Directive) error {
	switch d.Key {
	case DirectiveFont:
		c.Fonts = appendFont(c.Fonts, d.Value)
	case DirectiveForeground:
		return mergeColor(&c.Foreground, d)
	case DirectiveBackground:
		return mergeColor(&c.Background, d)
	case DirectiveCursor:
		c.ShowCursor = true
	case DirectiveInvert:
		c.Invert = true
	default:
		Logger().Debug("sent: ignoring unknown directive", "key", d.Key, "line", d.Line)
	}
	return nil
}

// Clone returns a deep copy of c.
func (c Config) Clone() Config {
	c.Fonts = append(make([]string, 0, len(c.Fonts)), c.Fonts...)
	return c
}

func appendFont(fonts []string, value string) []string {
	name := strings.TrimSpace(value)
	if name == "" {
		return fonts
	}
	return append(fonts, name)
}

func mergeColor(dst *RGBA, d Directive) error {
	col, err := ParseHex(d.Value)
	if err != nil {
		return &ColorParseError{Line: d.Line, Raw: d.Raw, Err: err}
	}
	*dst = col
	return nil
}
