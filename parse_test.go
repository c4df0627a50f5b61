package sent

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestParse_EmptyInput(t *testing.T) {
	p, diags := Parse("")
	if p == nil {
		t.Fatal("Parse(\"\") returned nil presentation")
	}
	if p.Len() != 0 {
		t.Errorf("Len() = %d, want 0", p.Len())
	}
	if len(diags) != 0 {
		t.Errorf("diagnostics = %v, want none", diags)
	}
	if cfg := p.Config(); cfg.Fonts == nil {
		t.Error("Config().Fonts is nil, want empty slice")
	}
}

func TestParse_Classification(t *testing.T) {
	in := strings.Join([]string{
		"plain text",
		"  indented line  ",
		"",
		"@image.png  ",
		"ignored caption",
		"",
		"\\@foo",
		"",
		"\\#bar",
		"",
		"\\",
		"",
		"\\",
		"second line makes it text",
	}, "\n")

	p, diags := Parse(in)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	want := []Slide{
		TextSlide{Lines: []string{"plain text", "  indented line  "}},
		ImageSlide{Path: "image.png"},
		TextSlide{Lines: []string{"@foo"}},
		TextSlide{Lines: []string{"#bar"}},
		EmptySlide{},
		TextSlide{Lines: []string{"", "second line makes it text"}},
	}
	if got := p.Slides(); !reflect.DeepEqual(got, want) {
		t.Errorf("Slides() =\n%#v\nwant\n%#v", got, want)
	}
}

func TestParse_ImageAfterComment(t *testing.T) {
	p, _ := Parse("# caption for the next image\n@cat.jpg\n")
	if p.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", p.Len())
	}
	if got, ok := p.Slide(0).(ImageSlide); !ok || got.Path != "cat.jpg" {
		t.Errorf("Slide(0) = %#v, want ImageSlide cat.jpg", p.Slide(0))
	}
}

func TestParse_ImageMarkerNotFirstLine(t *testing.T) {
	p, _ := Parse("text\n@not-an-image.png")
	want := TextSlide{Lines: []string{"text", "@not-an-image.png"}}
	if got := p.Slide(0); !reflect.DeepEqual(got, want) {
		t.Errorf("Slide(0) = %#v, want %#v", got, want)
	}
}

func TestParse_Directives(t *testing.T) {
	in := strings.Join([]string{
		"#.font:Inter",
		"#.fg:#ffffff",
		"first",
		"",
		"#.font: Noto Sans ",
		"#.bg:101010",
		"#.fg:000",
		"#.cursor",
		"#.invert:no",
		"#.unknown:value",
		"#.font:",
		"second",
	}, "\n")

	p, diags := Parse(in)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	cfg := p.Config()
	if want := []string{"Inter", "Noto Sans"}; !reflect.DeepEqual(cfg.Fonts, want) {
		t.Errorf("Fonts = %q, want %q", cfg.Fonts, want)
	}
	if cfg.Foreground != Black {
		t.Errorf("Foreground = %v, want later fg to override", cfg.Foreground)
	}
	if want := MustParseHex("101010"); cfg.Background != want {
		t.Errorf("Background = %v, want %v", cfg.Background, want)
	}
	if !cfg.ShowCursor || !cfg.Invert {
		t.Errorf("ShowCursor=%v Invert=%v, want both true", cfg.ShowCursor, cfg.Invert)
	}
	if p.Len() != 2 {
		t.Errorf("Len() = %d, want 2", p.Len())
	}
}

func TestParse_BadColorIsDiagnostic(t *testing.T) {
	in := "#.fg:#123456\n\nfirst\n\n#.fg:not-a-color\n#.bg:zzzzzz\nsecond\n"
	p, diags := Parse(in)

	if len(diags) != 2 {
		t.Fatalf("got %d diagnostics, want 2: %v", len(diags), diags)
	}
	for i, wantLine := range []int{5, 6} {
		if diags[i].Kind != KindColorParse {
			t.Errorf("diags[%d].Kind = %v, want %v", i, diags[i].Kind, KindColorParse)
		}
		if diags[i].Line != wantLine {
			t.Errorf("diags[%d].Line = %d, want %d", i, diags[i].Line, wantLine)
		}
	}
	if !strings.Contains(diags[0].Message, "not-a-color") {
		t.Errorf("diagnostic %q should quote the offending text", diags[0].Message)
	}

	cfg := p.Config()
	if want := MustParseHex("123456"); cfg.Foreground != want {
		t.Errorf("Foreground = %v, want prior value %v", cfg.Foreground, want)
	}
	if cfg.Background != White {
		t.Errorf("Background = %v, want default", cfg.Background)
	}
	if p.Len() != 2 {
		t.Errorf("Len() = %d, want the rest of the file parsed", p.Len())
	}
}

func TestConfigApply_ColorParseError(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.Apply(Directive{Key: "bg", Value: "12", Line: 7, Raw: "#.bg:12"})

	var cpe *ColorParseError
	if !errors.As(err, &cpe) {
		t.Fatalf("Apply() error = %v, want *ColorParseError", err)
	}
	if cpe.Line != 7 || cpe.Raw != "#.bg:12" {
		t.Errorf("ColorParseError = %+v", cpe)
	}
	if !errors.Is(err, ErrHexLength) {
		t.Errorf("error should wrap ErrHexLength: %v", err)
	}
}

func TestParse_TextVerbatim(t *testing.T) {
	paragraphs := [][]string{
		{"one"},
		{"two lines", "  with   spacing\t"},
		{"unicode → ✓", "a@b", "x#y", "ends with \\"},
	}

	var b strings.Builder
	for i, para := range paragraphs {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(strings.Join(para, "\n"))
	}

	p, _ := Parse(b.String())
	if p.Len() != len(paragraphs) {
		t.Fatalf("Len() = %d, want %d", p.Len(), len(paragraphs))
	}
	for i, para := range paragraphs {
		got, ok := p.Slide(i).(TextSlide)
		if !ok {
			t.Fatalf("Slide(%d) = %T, want TextSlide", i, p.Slide(i))
		}
		if !reflect.DeepEqual(got.Lines, para) {
			t.Errorf("Slide(%d).Lines = %q, want %q", i, got.Lines, para)
		}
	}
}

func TestParse_TextRoundTrip(t *testing.T) {
	p, _ := Parse("hello world\n  second line\nthird")
	original := p.Slide(0).(TextSlide)

	again, _ := Parse(original.Text())
	if again.Len() != 1 {
		t.Fatalf("re-parse produced %d slides", again.Len())
	}
	if got := again.Slide(0); !reflect.DeepEqual(got, original) {
		t.Errorf("round trip = %#v, want %#v", got, original)
	}
}

func TestPresentation_ImagePaths(t *testing.T) {
	p, _ := Parse("@a.png\n\ntext\n\n@b.png\n\n@a.png")
	if got, want := p.ImagePaths(), []string{"a.png", "b.png"}; !reflect.DeepEqual(got, want) {
		t.Errorf("ImagePaths() = %q, want %q", got, want)
	}
}

func TestPresentation_Immutable(t *testing.T) {
	p, _ := Parse("#.font:A\none\n\ntwo")

	slides := p.Slides()
	slides[0] = EmptySlide{}
	if _, ok := p.Slide(0).(TextSlide); !ok {
		t.Error("modifying Slides() result changed the presentation")
	}

	cfg := p.Config()
	cfg.Fonts[0] = "changed"
	if p.Config().Fonts[0] != "A" {
		t.Error("modifying Config() result changed the presentation")
	}
}

func TestPresentation_Title(t *testing.T) {
	long := strings.Repeat("é", 70)

	tests := []struct {
		name   string
		in     string
		want   string
		wantOK bool
	}{
		{"first text slide", "@img.png\n\n  Hello \n   world\n\nlater", "Hello world", true},
		{"no text", "@img.png\n\n\\", "", false},
		{"exact limit", strings.Repeat("a", 63), strings.Repeat("a", 63), true},
		{"truncated", long, strings.Repeat("é", 63) + "…", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := Parse(tt.in)
			got, ok := p.Title()
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Title() = %q, %v; want %q, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestDiagnosticFromError(t *testing.T) {
	tests := []struct {
		err  error
		kind DiagnosticKind
	}{
		{&ColorParseError{Line: 2, Raw: "#.fg:x", Err: ErrHexLength}, KindColorParse},
		{&ImageNotFoundError{Path: "a.png"}, KindImageNotFound},
		{&ImageDecodeError{Path: "a.png", Err: errors.New("bad")}, KindImageDecode},
		{&FontNotFoundError{Fonts: []string{"A"}}, KindFontNotFound},
		{errors.New("permission denied"), KindIO},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			d := DiagnosticFromError(tt.err)
			if d.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", d.Kind, tt.kind)
			}
			if d.Message == "" {
				t.Error("empty message")
			}
		})
	}

	if got := DiagnosticFromError(&ColorParseError{Line: 4, Err: ErrHexDigit}).String(); !strings.Contains(got, "line 4") {
		t.Errorf("String() = %q, want line number", got)
	}
}
