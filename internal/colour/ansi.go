package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// ColourPreview returns an ANSI-coloured preview string for a colour.
// Width specifies how many characters wide the colour block should be.
func ColourPreview(c RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	bgColour := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	return bgColour + strings.Repeat(" ", width) + ansiReset
}

// Swatch returns a preview block for a canonical "H S% L%" value.
// Non-canonical values get a blank block of the same width.
func Swatch(value string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	c, err := ParseCanonical(value)
	if err != nil {
		return strings.Repeat(" ", width)
	}
	return ColourPreview(c.RGB(), width)
}
