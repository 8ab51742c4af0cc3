package colour

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestIsCanonical(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"0 0% 100%", true},
		{"222.2 47.4% 11.2%", true},
		{"210 40% 98%", true},
		{"400 0% 0%", true}, // shape only, ranges are not checked
		{"0 0 100%", false},
		{"0 0% 100", false},
		{"hsl(0 0% 100%)", false},
		{" 0 0% 100%", false},
		{"-1 0% 0%", false},
		{"#ffffff", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			if got := IsCanonical(tt.value); got != tt.want {
				t.Errorf("IsCanonical(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestNormalise(t *testing.T) {
	tests := []struct {
		name       string
		value      string
		want       string
		wantStatus Status
	}{
		{"canonical passthrough", "222.2 47.4% 11.2%", "222.2 47.4% 11.2%", StatusCanonical},
		{"hex red", "#ff0000", "0 100% 50%", StatusConverted},
		{"short hex red", "#f00", "0 100% 50%", StatusConverted},
		{"hex uppercase padded", "  #FFFFFF  ", "0 0% 100%", StatusConverted},
		{"hex with alpha", "#00ff0080", "120 100% 50%", StatusConverted},
		{"short hex with alpha", "#00f8", "240 100% 50%", StatusConverted},
		{"rgb comma", "rgb(0, 0, 255)", "240 100% 50%", StatusConverted},
		{"rgb space with alpha", "rgb(0 128 0 / 50%)", "120 100% 25%", StatusConverted},
		{"rgba percentages", "rgba(100%, 0%, 0%, 0.5)", "0 100% 50%", StatusConverted},
		{"hsl comma", "hsl(210, 40%, 96.1%)", "210 40% 96%", StatusConverted},
		{"hsl space", "hsl(222.2 47.4% 11.2%)", "222 47% 11%", StatusConverted},
		{"hsl uppercase deg", "HSL(90deg 50% 50%)", "90 50% 50%", StatusConverted},
		{"hsla turn", "hsla(0.5turn, 100%, 50%, 0.3)", "180 100% 50%", StatusConverted},
		{"hsl negative hue", "hsl(-90 100% 50%)", "270 100% 50%", StatusConverted},
		{"named red", "red", "0 100% 50%", StatusConverted},
		{"named white", "white", "0 0% 100%", StatusConverted},
		{"named black", "Black", "0 0% 0%", StatusConverted},
		{"transparent", "transparent", "0 0% 0%", StatusConverted},
		{"oklch black", "oklch(0 0 0)", "0 0% 0%", StatusConverted},
		{"oklch white", "oklch(1 0 0)", "0 0% 100%", StatusConverted},
		{"oklab white percent", "oklab(100% 0 0)", "0 0% 100%", StatusConverted},
		{"padded canonical", " 0 0% 100% ", "0 0% 100%", StatusConverted},
		{"canonical with newline", "210 40% 98%\n", "210 40% 98%", StatusConverted},
		{"hue rounding to 360 wraps", "#ff0001", "0 100% 50%", StatusConverted},
		{"hsl 360 wraps", "hsl(360 100% 50%)", "0 100% 50%", StatusConverted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalise(tt.value)
			if got.Value != tt.want {
				t.Errorf("Normalise(%q).Value = %q, want %q", tt.value, got.Value, tt.want)
			}
			if got.Status != tt.wantStatus {
				t.Errorf("Normalise(%q).Status = %v, want %v", tt.value, got.Status, tt.wantStatus)
			}
			if got.Err != nil {
				t.Errorf("Normalise(%q).Err = %v, want nil", tt.value, got.Err)
			}
			if got.Degraded() {
				t.Errorf("Normalise(%q).Degraded() = true, want false", tt.value)
			}
		})
	}
}

func TestNormaliseFallback(t *testing.T) {
	values := []string{
		"not-a-color",
		"",
		"hsl(var(--primary))",
		"#12",
		"#gggggg",
		"rgb(1, 2)",
		"rgb(1, 2, 3 / 0.5)",
		"rgb(1 2 3 /)",
		"foo(1 2 3)",
		"hsl(red 50% 50%)",
		"0 0% 100% extra",
	}

	for _, value := range values {
		t.Run(value, func(t *testing.T) {
			got := Normalise(value)
			if got.Value != value {
				t.Errorf("Normalise(%q).Value = %q, want original value", value, got.Value)
			}
			if got.Status != StatusFallback {
				t.Errorf("Normalise(%q).Status = %v, want fallback", value, got.Status)
			}
			if !got.Degraded() {
				t.Errorf("Normalise(%q).Degraded() = false, want true", value)
			}
			if !errors.Is(got.Err, ErrUnparseable) {
				t.Errorf("Normalise(%q).Err = %v, want ErrUnparseable", value, got.Err)
			}
		})
	}
}

func TestNormaliseIdempotent(t *testing.T) {
	for h := 0; h <= 360; h += 7 {
		for s := 0; s <= 100; s += 9 {
			for l := 0; l <= 100; l += 11 {
				value := fmt.Sprintf("%d %d%% %d%%", h, s, l)
				got := Normalise(value)
				if got.Value != value || got.Status != StatusCanonical {
					t.Fatalf("Normalise(%q) = %+v, want unchanged canonical value", value, got)
				}

				again := Normalise(got.Value)
				if again.Value != got.Value {
					t.Fatalf("Normalise is not idempotent for %q: %q", value, again.Value)
				}
			}
		}
	}
}

func TestNormaliseHSLRoundTrip(t *testing.T) {
	for h := 0; h <= 360; h += 13 {
		for s := 0; s <= 100; s += 10 {
			for l := 0; l <= 100; l += 10 {
				input := fmt.Sprintf("hsl(%d, %d%%, %d%%)", h, s, l)
				want := fmt.Sprintf("%d %d%% %d%%", h, s, l)
				if got := Normalise(input); got.Value != want {
					t.Fatalf("Normalise(%q) = %q, want %q", input, got.Value, want)
				}
			}
		}
	}
}

func TestParseCanonical(t *testing.T) {
	c, err := ParseCanonical("0 100% 50%")
	if err != nil {
		t.Fatalf("ParseCanonical() error = %v", err)
	}

	rgb := c.RGB()
	if rgb != (RGB{R: 255, G: 0, B: 0}) {
		t.Errorf("ParseCanonical().RGB() = %v, want rgb(255, 0, 0)", rgb)
	}

	if _, err := ParseCanonical("#ff0000"); err == nil {
		t.Error("ParseCanonical() with hex input should return error")
	}
}

func TestHSLToRGB(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float64
		want    RGB
	}{
		{"red", 0, 1, 0.5, RGB{R: 255}},
		{"green", 120, 1, 0.5, RGB{G: 255}},
		{"blue", 240, 1, 0.5, RGB{B: 255}},
		{"white", 0, 0, 1, RGB{R: 255, G: 255, B: 255}},
		{"grey", 0, 0, 0.5, RGB{R: 128, G: 128, B: 128}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HSLToRGB(tt.h, tt.s, tt.l); got != tt.want {
				t.Errorf("HSLToRGB() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRGBHex(t *testing.T) {
	rgb := RGB{R: 26, G: 43, B: 60}
	if got := rgb.Hex(); got != "#1a2b3c" {
		t.Errorf("Hex() = %s, want #1a2b3c", got)
	}
	if got := rgb.String(); got != "rgb(26, 43, 60)" {
		t.Errorf("String() = %s, want rgb(26, 43, 60)", got)
	}
}

func TestSwatch(t *testing.T) {
	got := Swatch("0 100% 50%", 4)
	if !strings.Contains(got, "\033[48;2;255;0;0m") {
		t.Errorf("Swatch() = %q, want red background escape", got)
	}

	if got := Swatch("not-a-color", 4); got != "    " {
		t.Errorf("Swatch() for invalid value = %q, want blank block", got)
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusCanonical, "canonical"},
		{StatusConverted, "converted"},
		{StatusFallback, "fallback"},
		{Status(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %s, want %s", tt.status, got, tt.want)
		}
	}
}
