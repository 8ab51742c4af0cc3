// Package theme resolves the light and dark colour palettes of a
// shadcn/ui-style Tailwind theme and emits the plugin descriptor that exposes
// them as CSS custom properties and semantic colour tokens.
package theme

import (
	"fmt"
	"regexp"
)

// Token is the semantic name of a themeable colour role (e.g., "primary").
// It doubles as the CSS custom property name without the leading "--".
type Token string

// Default colour tokens.
const (
	TokenBackground            Token = "background"
	TokenForeground            Token = "foreground"
	TokenMuted                 Token = "muted"
	TokenMutedForeground       Token = "muted-foreground"
	TokenPopover               Token = "popover"
	TokenPopoverForeground     Token = "popover-foreground"
	TokenBorder                Token = "border"
	TokenInput                 Token = "input"
	TokenCard                  Token = "card"
	TokenCardForeground        Token = "card-foreground"
	TokenPrimary               Token = "primary"
	TokenPrimaryForeground     Token = "primary-foreground"
	TokenSecondary             Token = "secondary"
	TokenSecondaryForeground   Token = "secondary-foreground"
	TokenAccent                Token = "accent"
	TokenAccentForeground      Token = "accent-foreground"
	TokenDestructive           Token = "destructive"
	TokenDestructiveForeground Token = "destructive-foreground"
	TokenRing                  Token = "ring"
)

// String returns the token name.
func (t Token) String() string {
	return string(t)
}

// Var returns the CSS custom property name for the token (e.g., "--primary").
func (t Token) Var() string {
	return "--" + string(t)
}

// Ref returns a colour reference to the token's custom property,
// e.g. "hsl(var(--primary))".
func (t Token) Ref() string {
	return fmt.Sprintf("hsl(var(%s))", t.Var())
}

// Foreground returns the companion foreground token (e.g., "primary-foreground").
func (t Token) Foreground() Token {
	return t + "-foreground"
}

// tokenNamePattern limits token names to characters valid in a custom property
// name without escaping.
var tokenNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidTokenName reports whether name can be emitted as a custom property.
func ValidTokenName(name string) bool {
	return tokenNamePattern.MatchString(name)
}

// Mode selects the light or dark variant of the palette.
type Mode string

const (
	// ModeLight is the default palette, scoped to :root.
	ModeLight Mode = "light"
	// ModeDark is the palette scoped to the .dark class.
	ModeDark Mode = "dark"
)

// String returns the mode name.
func (m Mode) String() string {
	return string(m)
}

// Selector returns the CSS selector the mode's custom properties are declared under.
func (m Mode) Selector() string {
	if m == ModeDark {
		return ".dark"
	}
	return ":root"
}

// ParseMode parses "light" or "dark".
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeLight:
		return ModeLight, nil
	case ModeDark:
		return ModeDark, nil
	default:
		return "", fmt.Errorf("invalid mode: %s (must be 'light' or 'dark')", s)
	}
}

// defaultLightColors is the light palette in declaration order.
var defaultLightColors = NewPalette([]Entry{
	{TokenBackground, "0 0% 100%"},
	{TokenForeground, "222.2 47.4% 11.2%"},
	{TokenMuted, "210 40% 96.1%"},
	{TokenMutedForeground, "215.4 16.3% 46.9%"},
	{TokenPopover, "0 0% 100%"},
	{TokenPopoverForeground, "222.2 47.4% 11.2%"},
	{TokenBorder, "214.3 31.8% 91.4%"},
	{TokenInput, "214.3 31.8% 91.4%"},
	{TokenCard, "0 0% 100%"},
	{TokenCardForeground, "222.2 47.4% 11.2%"},
	{TokenPrimary, "222.2 47.4% 11.2%"},
	{TokenPrimaryForeground, "210 40% 98%"},
	{TokenSecondary, "210 40% 96.1%"},
	{TokenSecondaryForeground, "222.2 47.4% 11.2%"},
	{TokenAccent, "210 40% 96.1%"},
	{TokenAccentForeground, "222.2 47.4% 11.2%"},
	{TokenDestructive, "0 100% 50%"},
	{TokenDestructiveForeground, "210 40% 98%"},
	{TokenRing, "215 20.2% 65.1%"},
})

// defaultDarkColors is the dark palette in declaration order.
var defaultDarkColors = NewPalette([]Entry{
	{TokenBackground, "224 71% 4%"},
	{TokenForeground, "213 31% 91%"},
	{TokenMuted, "223 47% 11%"},
	{TokenMutedForeground, "215.4 16.3% 56.9%"},
	{TokenAccent, "216 34% 17%"},
	{TokenAccentForeground, "210 40% 98%"},
	{TokenPopover, "224 71% 4%"},
	{TokenPopoverForeground, "215 20.2% 65.1%"},
	{TokenBorder, "216 34% 17%"},
	{TokenInput, "216 34% 17%"},
	{TokenCard, "224 71% 4%"},
	{TokenCardForeground, "213 31% 91%"},
	{TokenPrimary, "210 40% 98%"},
	{TokenPrimaryForeground, "222.2 47.4% 1.2%"},
	{TokenSecondary, "222.2 47.4% 11.2%"},
	{TokenSecondaryForeground, "210 40% 98%"},
	{TokenDestructive, "0 63% 31%"},
	{TokenDestructiveForeground, "210 40% 98%"},
	{TokenRing, "216 34% 17%"},
})

// DefaultLightColors returns the default light palette.
func DefaultLightColors() *Palette {
	return defaultLightColors
}

// DefaultDarkColors returns the default dark palette.
func DefaultDarkColors() *Palette {
	return defaultDarkColors
}

// Defaults returns the default palette for a mode.
func Defaults(mode Mode) *Palette {
	if mode == ModeDark {
		return defaultDarkColors
	}
	return defaultLightColors
}
