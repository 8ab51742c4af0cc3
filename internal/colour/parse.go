package colour

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrUnparseable is returned when a value is not a recognisable CSS colour.
var ErrUnparseable = errors.New("unparseable colour value")

// Parse converts a CSS colour string into HSLA.
// Supports: hex (#rgb, #rgba, #rrggbb, #rrggbbaa), rgb/rgba, hsl/hsla,
// oklch, oklab, CSS named colours and "transparent".
func Parse(value string) (HSLA, error) {
	s := strings.ToLower(strings.TrimSpace(value))
	if s == "" {
		return HSLA{}, fmt.Errorf("%w: empty value", ErrUnparseable)
	}

	if strings.HasPrefix(s, "#") {
		return parseHex(s)
	}

	if s == "transparent" {
		return HSLA{}, nil
	}

	if name, args, ok := splitFunction(s); ok {
		var (
			c   HSLA
			err error
		)
		switch name {
		case "rgb", "rgba":
			c, err = parseRGBFunction(args)
		case "hsl", "hsla":
			c, err = parseHSLFunction(args)
		case "oklch":
			c, err = parseOKLCHFunction(args)
		case "oklab":
			c, err = parseOKLABFunction(args)
		default:
			return HSLA{}, fmt.Errorf("%w: unsupported function %q", ErrUnparseable, name)
		}
		if err != nil {
			return HSLA{}, fmt.Errorf("%w: %s: %v", ErrUnparseable, name, err)
		}
		return c, nil
	}

	if named, ok := colornames.Map[s]; ok {
		return fromRGB8(named.R, named.G, named.B, float64(named.A)/255), nil
	}

	return HSLA{}, fmt.Errorf("%w: %q", ErrUnparseable, value)
}

// fromRGB8 builds an HSLA colour from 8-bit channels.
func fromRGB8(r, g, b uint8, alpha float64) HSLA {
	return fromRGBFloat(float64(r)/255, float64(g)/255, float64(b)/255, alpha)
}

// fromRGBFloat builds an HSLA colour from normalised (0-1) channels.
func fromRGBFloat(r, g, b, alpha float64) HSLA {
	h, s, l := rgbToHSL(clampFloat(r, 0, 1), clampFloat(g, 0, 1), clampFloat(b, 0, 1))
	return HSLA{H: h, S: s, L: l, A: alpha}
}

// parseHex parses "#rgb", "#rgba", "#rrggbb" and "#rrggbbaa".
func parseHex(s string) (HSLA, error) {
	hex := strings.TrimPrefix(s, "#")

	// Expand shorthand format (RGB -> RRGGBB).
	if len(hex) == 3 || len(hex) == 4 {
		expanded := make([]byte, 0, len(hex)*2)
		for i := 0; i < len(hex); i++ {
			expanded = append(expanded, hex[i], hex[i])
		}
		hex = string(expanded)
	}

	if len(hex) != 6 && len(hex) != 8 {
		return HSLA{}, fmt.Errorf("%w: invalid hex colour length %d", ErrUnparseable, len(strings.TrimPrefix(s, "#")))
	}

	channels := make([]uint8, 0, 4)
	for i := 0; i < len(hex); i += 2 {
		v, err := strconv.ParseUint(hex[i:i+2], 16, 8)
		if err != nil {
			return HSLA{}, fmt.Errorf("%w: invalid hex digits %q", ErrUnparseable, hex[i:i+2])
		}
		channels = append(channels, uint8(v))
	}

	alpha := 1.0
	if len(channels) == 4 {
		alpha = float64(channels[3]) / 255
	}
	return fromRGB8(channels[0], channels[1], channels[2], alpha), nil
}

// splitFunction splits "name(args)" into its name and argument text.
func splitFunction(s string) (name, args string, ok bool) {
	open := strings.IndexByte(s, '(')
	if open <= 0 || !strings.HasSuffix(s, ")") {
		return "", "", false
	}
	name = strings.TrimSpace(s[:open])
	for _, r := range name {
		if r < 'a' || r > 'z' {
			return "", "", false
		}
	}
	return name, strings.TrimSpace(s[open+1 : len(s)-1]), true
}

// splitArguments splits colour function arguments into three channels and an
// optional alpha. Both legacy comma syntax "a, b, c[, alpha]" and modern
// space syntax "a b c[ / alpha]" are accepted.
func splitArguments(args string) (channels []string, alpha string, err error) {
	if strings.Contains(args, ",") {
		if strings.Contains(args, "/") {
			return nil, "", errors.New("cannot mix comma and slash separators")
		}
		parts := strings.Split(args, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		switch len(parts) {
		case 3:
			return parts, "", nil
		case 4:
			return parts[:3], parts[3], nil
		default:
			return nil, "", fmt.Errorf("expected 3 or 4 arguments, got %d", len(parts))
		}
	}

	body := args
	if slash := strings.IndexByte(args, '/'); slash >= 0 {
		body = args[:slash]
		alpha = strings.TrimSpace(args[slash+1:])
		if alpha == "" {
			return nil, "", errors.New("missing alpha after '/'")
		}
	}
	channels = strings.Fields(body)
	if len(channels) != 3 {
		return nil, "", fmt.Errorf("expected 3 channels, got %d", len(channels))
	}
	return channels, alpha, nil
}

// parseAlpha parses an optional alpha component, a number or a percentage.
func parseAlpha(s string) (float64, error) {
	if s == "" {
		return 1, nil
	}
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		v, err := parseNumber(pct)
		if err != nil {
			return 0, err
		}
		return clampFloat(v/100, 0, 1), nil
	}
	v, err := parseNumber(s)
	if err != nil {
		return 0, err
	}
	return clampFloat(v, 0, 1), nil
}

// parseNumber parses a plain CSS number.
func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return v, nil
}

// parseFraction parses a percentage or a bare number scaled by full, and
// returns it as a fraction of full.
func parseFraction(s string, full float64) (float64, error) {
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		v, err := parseNumber(pct)
		if err != nil {
			return 0, err
		}
		return v / 100, nil
	}
	v, err := parseNumber(s)
	if err != nil {
		return 0, err
	}
	return v / full, nil
}

// parseAngle parses a CSS angle in degrees. Units: deg, grad, rad, turn or none.
func parseAngle(s string) (float64, error) {
	units := []struct {
		suffix string
		scale  float64
	}{
		{"grad", 360.0 / 400.0},
		{"turn", 360},
		{"rad", 180 / math.Pi},
		{"deg", 1},
	}
	for _, u := range units {
		if v, ok := strings.CutSuffix(s, u.suffix); ok {
			n, err := parseNumber(v)
			if err != nil {
				return 0, err
			}
			return normaliseHue(n * u.scale), nil
		}
	}
	n, err := parseNumber(s)
	if err != nil {
		return 0, err
	}
	return normaliseHue(n), nil
}

// parseRGBFunction parses the arguments of rgb() and rgba().
func parseRGBFunction(args string) (HSLA, error) {
	channels, alphaStr, err := splitArguments(args)
	if err != nil {
		return HSLA{}, err
	}

	var rgb [3]float64
	for i, ch := range channels {
		v, err := parseFraction(ch, 255)
		if err != nil {
			return HSLA{}, err
		}
		rgb[i] = v
	}

	alpha, err := parseAlpha(alphaStr)
	if err != nil {
		return HSLA{}, err
	}
	return fromRGBFloat(rgb[0], rgb[1], rgb[2], alpha), nil
}

// parseHSLFunction parses the arguments of hsl() and hsla().
// Saturation and lightness may be percentages or bare numbers in 0-100.
func parseHSLFunction(args string) (HSLA, error) {
	channels, alphaStr, err := splitArguments(args)
	if err != nil {
		return HSLA{}, err
	}

	h, err := parseAngle(channels[0])
	if err != nil {
		return HSLA{}, err
	}
	s, err := parseFraction(channels[1], 100)
	if err != nil {
		return HSLA{}, err
	}
	l, err := parseFraction(channels[2], 100)
	if err != nil {
		return HSLA{}, err
	}
	alpha, err := parseAlpha(alphaStr)
	if err != nil {
		return HSLA{}, err
	}

	return HSLA{H: h, S: clampFloat(s, 0, 1), L: clampFloat(l, 0, 1), A: alpha}, nil
}

// parseOKLCHFunction parses oklch(L C H [/ A]).
// L is 0-1 or a percentage, C is 0-0.4 (100% = 0.4), H is an angle.
func parseOKLCHFunction(args string) (HSLA, error) {
	channels, alphaStr, err := splitArguments(args)
	if err != nil {
		return HSLA{}, err
	}

	l, err := parseFraction(channels[0], 1)
	if err != nil {
		return HSLA{}, err
	}
	c, err := parseFraction(channels[1], 1)
	if err != nil {
		return HSLA{}, err
	}
	if strings.HasSuffix(channels[1], "%") {
		c *= 0.4
	}
	h, err := parseAngle(channels[2])
	if err != nil {
		return HSLA{}, err
	}
	alpha, err := parseAlpha(alphaStr)
	if err != nil {
		return HSLA{}, err
	}

	hRad := h * math.Pi / 180.0
	r, g, b := oklabToSRGB(l, c*math.Cos(hRad), c*math.Sin(hRad))
	return fromRGBFloat(r, g, b, alpha), nil
}

// parseOKLABFunction parses oklab(L a b [/ A]).
// L is 0-1 or a percentage, a and b are -0.4 to 0.4 (100% = 0.4).
func parseOKLABFunction(args string) (HSLA, error) {
	channels, alphaStr, err := splitArguments(args)
	if err != nil {
		return HSLA{}, err
	}

	l, err := parseFraction(channels[0], 1)
	if err != nil {
		return HSLA{}, err
	}
	var ab [2]float64
	for i, ch := range channels[1:] {
		v, err := parseFraction(ch, 1)
		if err != nil {
			return HSLA{}, err
		}
		if strings.HasSuffix(ch, "%") {
			v *= 0.4
		}
		ab[i] = v
	}
	alpha, err := parseAlpha(alphaStr)
	if err != nil {
		return HSLA{}, err
	}

	r, g, b := oklabToSRGB(l, ab[0], ab[1])
	return fromRGBFloat(r, g, b, alpha), nil
}

// oklabToSRGB converts OKLAB to gamma-encoded sRGB channels in 0-1.
// Reference: https://bottosson.github.io/posts/oklab/.
func oklabToSRGB(l, a, b float64) (float64, float64, float64) {
	lVal := l + 0.3963377774*a + 0.2158037573*b
	mVal := l - 0.1055613458*a - 0.0638541728*b
	sVal := l - 0.0894841775*a - 1.2914855480*b

	lVal = lVal * lVal * lVal
	mVal = mVal * mVal * mVal
	sVal = sVal * sVal * sVal

	r := +4.0767416621*lVal - 3.3077115913*mVal + 0.2309699292*sVal
	g := -1.2684380046*lVal + 2.6097574011*mVal - 0.3413193965*sVal
	bVal := -0.0041960863*lVal - 0.7034186147*mVal + 1.7076147010*sVal

	return quantise(linearToSRGB(r)), quantise(linearToSRGB(g)), quantise(linearToSRGB(bVal))
}

// quantise drops floating point noise from a converted channel so that
// achromatic colours stay achromatic.
func quantise(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}

// linearToSRGB converts a linear RGB channel to sRGB, clamped to 0-1.
func linearToSRGB(c float64) float64 {
	c = clampFloat(c, 0, 1)
	if c <= 0.0031308 {
		return 12.92 * c
	}
	return 1.055*math.Pow(c, 1.0/2.4) - 0.055
}
