package load

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/encoding/unicode"

	"github.com/gogpu/sent"
	"github.com/gogpu/sent/metrics"
	"github.com/gogpu/sent/text"
)

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "talk.sent")
	writeFile(t, path, []byte("#.fg:#f00\nfirst\n\n@pic.png\n"))

	p, diags := File(path)
	if len(diags) != 0 {
		t.Fatalf("diagnostics = %v, want none", diags)
	}
	if p.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", p.Len())
	}
	if img, ok := p.Slide(1).(sent.ImageSlide); !ok || img.Path != "pic.png" {
		t.Errorf("Slide(1) = %#v, want image pic.png", p.Slide(1))
	}
	if got := p.Config().Foreground; got != sent.MustParseHex("#f00") {
		t.Errorf("Foreground = %v", got)
	}
}

func TestFile_Missing(t *testing.T) {
	p, diags := File(filepath.Join(t.TempDir(), "nope.sent"))
	if p == nil || p.Len() != 0 {
		t.Fatalf("presentation = %v, want empty", p)
	}
	if len(diags) != 1 || diags[0].Kind != sent.KindIO {
		t.Fatalf("diagnostics = %v, want one KindIO", diags)
	}
	if p.Config().Foreground != sent.Black || p.Config().Background != sent.White {
		t.Error("unreadable file should yield default colours")
	}
}

func TestDecode(t *testing.T) {
	utf16le, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().String("héllo\nworld")
	if err != nil {
		t.Fatal(err)
	}
	utf16be, err := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder().String("héllo\nworld")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"plain", []byte("héllo\nworld"), "héllo\nworld"},
		{"utf8 bom", append([]byte{0xEF, 0xBB, 0xBF}, "héllo\nworld"...), "héllo\nworld"},
		{"utf16 le", []byte(utf16le), "héllo\nworld"},
		{"utf16 be", []byte(utf16be), "héllo\nworld"},
		{"invalid utf8", []byte("a\xffb"), "a�b"},
		{"empty", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.in)
			if err != nil {
				t.Fatalf("Decode() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Decode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFile_BOMDirective(t *testing.T) {
	// A BOM must not hide a directive on the first line.
	path := filepath.Join(t.TempDir(), "bom.sent")
	writeFile(t, path, append([]byte{0xEF, 0xBB, 0xBF}, "#.invert\nhi\n"...))

	p, _ := File(path)
	if !p.Config().Invert {
		t.Error("invert directive after BOM was not applied")
	}
	if p.Len() != 1 {
		t.Errorf("Len() = %d, want 1", p.Len())
	}
}

func TestRead(t *testing.T) {
	p, diags := Read(strings.NewReader("a\n\nb\n"))
	if len(diags) != 0 || p.Len() != 2 {
		t.Errorf("Read() = %d slides, %v", p.Len(), diags)
	}
}

func TestResolveImagePath(t *testing.T) {
	tests := []struct {
		pres, img, want string
	}{
		{"/talks/deck.sent", "img/a.png", filepath.Join("/talks", "img/a.png")},
		{"deck.sent", "a.png", "a.png"},
		{"/talks/deck.sent", "/abs/a.png", "/abs/a.png"},
		{StdinPath, "a.png", "a.png"},
	}
	for _, tt := range tests {
		if got := ResolveImagePath(tt.pres, tt.img); got != tt.want {
			t.Errorf("ResolveImagePath(%q, %q) = %q, want %q", tt.pres, tt.img, got, tt.want)
		}
	}
}

func TestCheckImages(t *testing.T) {
	dir := t.TempDir()

	f, err := os.Create(filepath.Join(dir, "ok.png"))
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, image.NewGray(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatal(err)
	}
	f.Close()
	writeFile(t, filepath.Join(dir, "bad.png"), []byte("garbage"))

	p, _ := sent.Parse("@ok.png\n\n@bad.png\n\n@missing.png\n\n@ok.png\n")
	diags := CheckImages(p, dir, metrics.New("", metrics.WithLocator(text.MapLocator{})))

	if len(diags) != 2 {
		t.Fatalf("CheckImages() = %v, want 2 diagnostics", diags)
	}
	if diags[0].Kind != sent.KindImageDecode {
		t.Errorf("diags[0].Kind = %v, want ImageDecodeError", diags[0].Kind)
	}
	if diags[1].Kind != sent.KindImageNotFound {
		t.Errorf("diags[1].Kind = %v, want ImageNotFoundError", diags[1].Kind)
	}
}
