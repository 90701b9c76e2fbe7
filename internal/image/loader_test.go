package image

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writePNG(t *testing.T, path string, c color.NRGBA) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := range 4 {
		for x := range 4 {
			img.SetNRGBA(x, y, c)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestFileLoader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "red.png")
	writePNG(t, path, color.NRGBA{R: 255, A: 255})
	garbage := filepath.Join(dir, "garbage.png")
	if err := os.WriteFile(garbage, []byte("not an image"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{name: "valid png", path: path},
		{name: "empty path", path: "", wantErr: "cannot be empty"},
		{name: "missing", path: filepath.Join(dir, "nope.png"), wantErr: "not found"},
		{name: "directory", path: dir, wantErr: "directory"},
		{name: "undecodable", path: garbage, wantErr: "failed to decode"},
	}

	loader := NewFileLoader()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := loader.Load(context.Background(), tt.path)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("Load() error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if got := NewGrid(img).PixelAt(0, 0); got != 0xFFFF0000 {
				t.Errorf("pixel = %08X, want FFFF0000", got)
			}
		})
	}
}

func TestSmartLoaderURL(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "blue.png"), color.NRGBA{B: 255, A: 255})
	srv := httptest.NewServer(http.FileServer(http.Dir(dir)))
	defer srv.Close()

	img, err := NewSmartLoader().Load(context.Background(), srv.URL+"/blue.png")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := NewGrid(img).PixelAt(3, 3); got != 0xFF0000FF {
		t.Errorf("pixel = %08X, want FF0000FF", got)
	}
}

func TestExpandPaths(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "b.png"), color.NRGBA{A: 255})
	writePNG(t, filepath.Join(dir, "a.png"), color.NRGBA{A: 255})
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.png"), 0o700); err != nil {
		t.Fatal(err)
	}
	single := filepath.Join(dir, "a.png")

	got, err := ExpandPaths([]string{dir, "https://example.com/x.png", single})
	if err != nil {
		t.Fatalf("ExpandPaths() error = %v", err)
	}
	want := []string{
		filepath.Join(dir, "a.png"),
		filepath.Join(dir, "b.png"),
		"https://example.com/x.png",
		single,
	}
	if len(got) != len(want) {
		t.Fatalf("ExpandPaths() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ExpandPaths()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if _, err := ExpandPaths([]string{filepath.Join(dir, "missing")}); err == nil {
		t.Error("ExpandPaths() expected error for missing path")
	}
	if _, err := ExpandPaths([]string{t.TempDir()}); err == nil {
		t.Error("ExpandPaths() expected error for directory without images")
	}
}

func TestIsURL(t *testing.T) {
	tests := map[string]bool{
		"http://x/a.png":  true,
		"https://x/a.png": true,
		"ftp://x/a.png":   false,
		"/tmp/a.png":      false,
	}
	for in, want := range tests {
		if got := IsURL(in); got != want {
			t.Errorf("IsURL(%q) = %v, want %v", in, got, want)
		}
	}
}
