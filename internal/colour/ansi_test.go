package colour

import (
	"strings"
	"testing"
)

func TestColourPreview(t *testing.T) {
	got := ColourPreview(RGB{R: 255, G: 128, B: 0}, 4)
	want := "\033[48;2;255;128;0m    \033[0m"
	if got != want {
		t.Errorf("ColourPreview() = %q, want %q", got, want)
	}

	if got := ColourPreview(RGB{}, 0); strings.Count(got, " ") != defaultWidth {
		t.Errorf("zero width should fall back to %d columns: %q", defaultWidth, got)
	}
}

func TestColourPreviewWithText(t *testing.T) {
	tests := []struct {
		name   string
		bg     RGB
		text   string
		wantFg string
		want   string
	}{
		{name: "dark background", bg: RGB{R: 20, G: 6, B: 4}, text: "7", wantFg: "255;255;255", want: "  7   "},
		{name: "light background", bg: RGB{R: 255, G: 255, B: 255}, text: "240", wantFg: "0;0;0", want: " 240  "},
		{name: "truncated", bg: RGB{}, text: "12345678", wantFg: "255;255;255", want: "123456"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ColourPreviewWithText(tt.bg, tt.text, 6)
			if !strings.Contains(got, "\033[38;2;"+tt.wantFg+"m"+tt.want+"\033[0m") {
				t.Errorf("ColourPreviewWithText() = %q, want fg %s and text %q", got, tt.wantFg, tt.want)
			}
		})
	}
}

func TestFormatColourWithPreview(t *testing.T) {
	got := FormatColourWithPreview(RGB{R: 0x12, G: 0x34, B: 0x56}, 2)
	if !strings.HasSuffix(got, " #123456") {
		t.Errorf("FormatColourWithPreview() = %q", got)
	}
}

func TestSupportsANSIColoursNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if SupportsANSIColours() {
		t.Error("SupportsANSIColours() = true with NO_COLOR set")
	}
}
