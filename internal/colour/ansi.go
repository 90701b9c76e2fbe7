package colour

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// ColourPreview returns an ANSI-coloured block for a colour.
// Width specifies how many characters wide the block should be.
func ColourPreview(c RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	return bg + strings.Repeat(" ", width) + ansiReset
}

// ColourPreviewWithText returns a colour block with centred text overlaid.
// Text is black on light colours and white on dark ones, judged by OkLab lightness.
func ColourPreviewWithText(c RGB, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	var fg uint8 = 255
	if RGBToOkLab(Pack(c.R, c.G, c.B)).L > 0.6 {
		fg = 0
	}

	display := text
	if len(text) > width {
		display = text[:width]
	} else if len(text) < width {
		padding := (width - len(text)) / 2
		display = strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-len(text)-padding)
	}

	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	fgs := fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, fg, fg, fg, ansiSuffix)
	return bg + fgs + display + ansiReset
}

// FormatColourWithPreview formats a colour with its preview block and hex code.
func FormatColourWithPreview(rgb RGB, width int) string {
	return fmt.Sprintf("%s %s", ColourPreview(rgb, width), rgb.Hex())
}

// SupportsANSIColours reports whether stdout is a terminal that should get
// colour escapes. NO_COLOR and TERM=dumb turn previews off.
func SupportsANSIColours() bool {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd())) // #nosec G115 - file descriptors fit in int
}
