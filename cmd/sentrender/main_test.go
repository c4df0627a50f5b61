package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestSelectSlides(t *testing.T) {
	tests := []struct {
		name  string
		count int
		keys  string
		want  []int
	}{
		{"all", 3, "", []int{0, 1, 2}},
		{"none", 0, "", []int{}},
		{"next", 3, "Right", []int{1}},
		{"clamped", 3, "Right,Right,Right,Right", []int{2}},
		{"end then back", 5, "End, h", []int{3}},
		{"quit stops replay", 5, "l,q,l", []int{1}},
		{"unknown ignored", 3, "F13,n", []int{1}},
		{"empty deck", 0, "Right", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := selectSlides(tt.count, tt.keys); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("selectSlides(%d, %q) = %v, want %v", tt.count, tt.keys, got, tt.want)
			}
		})
	}
}

func TestLoadProfile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "p.yaml")
	if err := os.WriteFile(path, []byte("width: 640\nline_spacing: 0.5\nworkers: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	p, err := loadProfile(path)
	if err != nil {
		t.Fatalf("loadProfile() error: %v", err)
	}
	if p.Width != 640 || p.Height != 720 || p.LineSpacing != 0.5 || p.Workers != 2 || p.Out != "." {
		t.Errorf("loadProfile() = %+v", p)
	}
}

func TestLoadProfile_Invalid(t *testing.T) {
	dir := t.TempDir()
	for name, body := range map[string]string{
		"yaml":    "width: [",
		"size":    "width: -1\n",
		"workers": "workers: 0\n",
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name+".yaml")
			if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
				t.Fatal(err)
			}
			if _, err := loadProfile(path); err == nil {
				t.Error("loadProfile() succeeded")
			}
		})
	}
	if _, err := loadProfile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("loadProfile(missing) succeeded")
	}
}
