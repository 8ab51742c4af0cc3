// Package colour parses CSS colour values and converts them into the canonical
// "H S% L%" triplet used by Tailwind CSS custom properties.
package colour

import (
	"fmt"
	"math"
)

// RGB represents a colour in 8-bit RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// HSLA is a colour in HSL space.
// H is in degrees [0, 360], S, L and A are fractions in [0, 1].
type HSLA struct {
	H float64
	S float64
	L float64
	A float64
}

// Canonical formats the colour as "H S% L%" with every component rounded to
// the nearest integer. A hue of 360 is written as 0. Alpha is discarded.
func (c HSLA) Canonical() string {
	h := clampFloat(math.Round(c.H), 0, 360)
	if h == 360 {
		h = 0
	}
	s := clampFloat(math.Round(c.S*100), 0, 100)
	l := clampFloat(math.Round(c.L*100), 0, 100)
	return fmt.Sprintf("%d %d%% %d%%", int(h), int(s), int(l))
}

// RGB converts the colour to 8-bit RGB.
func (c HSLA) RGB() RGB {
	return HSLToRGB(c.H, c.S, c.L)
}

// rgbToHSL converts normalised RGB channels (0-1) to HSL.
// Returns hue (0-360), saturation (0-1), lightness (0-1).
func rgbToHSL(r, g, b float64) (h, s, l float64) {
	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	// Lightness.
	l = (maxVal + minVal) / 2.0

	// Achromatic.
	if delta == 0 {
		return 0, 0, l
	}

	if l < 0.5 {
		s = delta / (maxVal + minVal)
	} else {
		s = delta / (2.0 - maxVal - minVal)
	}

	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}

	h *= 60
	return h, s, l
}

// HSLToRGB converts HSL to RGB colour space.
// h is hue (0-360), s is saturation (0-1), l is lightness (0-1).
func HSLToRGB(h, s, l float64) RGB {
	if s == 0 {
		v := toByte(l)
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return RGB{
		R: toByte(hueToRGB(p, q, h+120)),
		G: toByte(hueToRGB(p, q, h)),
		B: toByte(hueToRGB(p, q, h-120)),
	}
}

// hueToRGB is a helper for HSL to RGB conversion.
func hueToRGB(p, q, t float64) float64 {
	t = normaliseHue(t)
	if t >= 360 {
		t -= 360
	}

	if t < 60 {
		return p + (q-p)*t/60
	}
	if t < 180 {
		return q
	}
	if t < 240 {
		return p + (q-p)*(240-t)/60
	}
	return p
}

// normaliseHue wraps an angle into [0, 360]. Angles already inside the range,
// including 360 itself, are returned unchanged.
func normaliseHue(h float64) float64 {
	if h >= 0 && h <= 360 {
		return h
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// toByte converts a 0-1 channel into 0-255 with rounding.
func toByte(v float64) uint8 {
	return uint8(clampFloat(math.Round(v*255), 0, 255)) // #nosec G115 -- clamped to 0-255
}

// clampFloat restricts a value to a given range.
func clampFloat(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
