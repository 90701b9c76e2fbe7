package colour

import (
	"errors"
	"math"
	"testing"
)

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		name    string
		hex     string
		want    uint32
		wantErr bool
	}{
		{name: "upper", hex: "#FF0000", want: 0xFF0000},
		{name: "lower", hex: "#4321ff", want: 0x4321FF},
		{name: "black", hex: "#000000", want: 0},
		{name: "missing hash", hex: "FF0000", wantErr: true},
		{name: "too short", hex: "#FF000", wantErr: true},
		{name: "too long", hex: "#FF00000", wantErr: true},
		{name: "non-hex", hex: "#GG0000", wantErr: true},
		{name: "sign", hex: "#+F0000", wantErr: true},
		{name: "empty", hex: "", wantErr: true},
		{name: "short form", hex: "#F00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HexToRGB(tt.hex)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidColourFormat) {
					t.Fatalf("HexToRGB(%q) error = %v, want ErrInvalidColourFormat", tt.hex, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("HexToRGB(%q) unexpected error: %v", tt.hex, err)
			}
			if got != tt.want {
				t.Errorf("HexToRGB(%q) = %#06x, want %#06x", tt.hex, got, tt.want)
			}
		})
	}
}

func TestRGBToHex(t *testing.T) {
	tests := []struct {
		rgb  uint32
		want string
	}{
		{0xFF0000, "#FF0000"},
		{0x0A0B0C, "#0A0B0C"},
		{0x80FF0000, "#FF0000"},
		{0, "#000000"},
	}
	for _, tt := range tests {
		if got := RGBToHex(tt.rgb); got != tt.want {
			t.Errorf("RGBToHex(%#x) = %s, want %s", tt.rgb, got, tt.want)
		}
	}
}

func TestRGBToOkLabReference(t *testing.T) {
	tests := []struct {
		name string
		rgb  uint32
		want OkLab
	}{
		{name: "white", rgb: 0xFFFFFF, want: OkLab{L: 1, A: 0, B: 0}},
		{name: "black", rgb: 0x000000, want: OkLab{L: 0, A: 0, B: 0}},
		{name: "red", rgb: 0xFF0000, want: OkLab{L: 0.6279554, A: 0.2248631, B: 0.1258463}},
		{name: "blue", rgb: 0x0000FF, want: OkLab{L: 0.4520137, A: -0.0324570, B: -0.3115281}},
	}

	const tol = 1e-3
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RGBToOkLab(tt.rgb)
			if math.Abs(got.L-tt.want.L) > tol || math.Abs(got.A-tt.want.A) > tol || math.Abs(got.B-tt.want.B) > tol {
				t.Errorf("RGBToOkLab(%s) = %+v, want %+v", RGBToHex(tt.rgb), got, tt.want)
			}
		})
	}
}

func TestRGBToOkLabIgnoresAlpha(t *testing.T) {
	if RGBToOkLab(0x00123456) != RGBToOkLab(0xFF123456) {
		t.Error("alpha changed the OkLab conversion")
	}
}

func TestHexRoundTrip(t *testing.T) {
	hexes := append(CuratedHex(), SimplePalette().ToHex()...)
	for _, hex := range hexes {
		rgb, err := HexToRGB(hex)
		if err != nil {
			t.Fatalf("HexToRGB(%s): %v", hex, err)
		}
		got := OkLabToHex(RGBToOkLab(rgb))
		if got != hex {
			t.Errorf("round trip of %s = %s", hex, got)
		}
		back, err := HexToRGB(got)
		if err != nil || back != rgb {
			t.Errorf("HexToRGB(%s) = %#06x, %v; want %#06x", got, back, err, rgb)
		}
	}
}

func TestRandomRoundTrip(t *testing.T) {
	samples := append(RandomSamples(20000, 7), 0x15EF0B, 0x03FC77)
	for _, rgb := range samples {
		if got := OkLabToRGB(RGBToOkLab(rgb)); got != rgb {
			t.Errorf("OkLabToRGB(RGBToOkLab(%s)) = %s", RGBToHex(rgb), RGBToHex(got))
		}
	}
}

func TestOkLabToRGBChannelEdges(t *testing.T) {
	for _, v := range []uint8{0, 1, 127, 128, 254, 255} {
		for _, rgb := range []uint32{Pack(v, 0, 0), Pack(0, v, 0), Pack(0, 0, v), Pack(v, v, v), Pack(v, 255-v, v/2)} {
			if got := OkLabToHex(RGBToOkLab(rgb)); got != RGBToHex(rgb) {
				t.Errorf("OkLabToHex(RGBToOkLab(%s)) = %s", RGBToHex(rgb), got)
			}
		}
	}
}

func TestOkLabToRGBClampsOutOfGamut(t *testing.T) {
	got := OkLabToHex(OkLab{L: 2, A: 0, B: 0})
	if got != "#FFFFFF" {
		t.Errorf("OkLabToHex(L=2) = %s, want #FFFFFF", got)
	}
	got = OkLabToHex(OkLab{L: -1, A: 0, B: 0})
	if got != "#000000" {
		t.Errorf("OkLabToHex(L=-1) = %s, want #000000", got)
	}
}

func TestPackChannels(t *testing.T) {
	r, g, b := Channels(0xFF123456)
	if r != 0x12 || g != 0x34 || b != 0x56 {
		t.Errorf("Channels = %#x %#x %#x", r, g, b)
	}
	if got := Pack(r, g, b); got != 0x123456 {
		t.Errorf("Pack = %#x, want 0x123456", got)
	}
}
