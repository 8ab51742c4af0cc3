package theme

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/twtheme/internal/colour"
)

// ErrInvalidTokenName is recorded for override keys that cannot be emitted
// as a CSS custom property.
var ErrInvalidTokenName = errors.New("invalid token name")

// Diagnostic records a colour value that could not be normalised and was
// passed through unchanged, or an override that was dropped.
type Diagnostic struct {
	Mode  Mode
	Token Token
	Value string
	Err   error
}

// String returns a human-readable description of the diagnostic.
func (d Diagnostic) String() string {
	if errors.Is(d.Err, ErrInvalidTokenName) {
		return fmt.Sprintf("%s/%s: dropped override %q: %v", d.Mode, d.Token, d.Value, d.Err)
	}
	return fmt.Sprintf("%s/%s: kept raw value %q: %v", d.Mode, d.Token, d.Value, d.Err)
}

// Resolved holds the normalised light and dark palettes.
type Resolved struct {
	Light *Palette
	Dark  *Palette
	// Diagnostics lists every value that fell back to its raw form.
	Diagnostics []Diagnostic
	// Statuses records how each value was produced, keyed by mode then token.
	Statuses map[Mode]map[Token]colour.Status
}

// Palette returns the palette for a mode.
func (r *Resolved) Palette(mode Mode) *Palette {
	if mode == ModeDark {
		return r.Dark
	}
	return r.Light
}

// Status returns how a token's value was produced in the given mode.
func (r *Resolved) Status(mode Mode, token Token) (colour.Status, bool) {
	s, ok := r.Statuses[mode][token]
	return s, ok
}

// Degraded reports whether any value fell back to its raw form.
func (r *Resolved) Degraded() bool {
	return len(r.Diagnostics) > 0
}

// Resolver merges overrides into the default palettes and normalises every value.
// The zero value is ready to use and discards diagnostics logging.
type Resolver struct {
	logger hclog.Logger
}

// NewResolver creates a resolver that logs fallbacks to logger.
// A nil logger discards output.
func NewResolver(logger hclog.Logger) *Resolver {
	return &Resolver{logger: logger}
}

func (r *Resolver) log() hclog.Logger {
	if r.logger == nil {
		return hclog.NewNullLogger()
	}
	return r.logger
}

// Resolve produces the light and dark palettes for opts.
// It never fails: unparseable values are kept verbatim, logged at WARN and
// listed in Resolved.Diagnostics.
func (r *Resolver) Resolve(opts Options) *Resolved {
	resolved := &Resolved{
		Statuses: make(map[Mode]map[Token]colour.Status, 2),
	}

	for _, mode := range []Mode{ModeLight, ModeDark} {
		palette, statuses, diags := r.resolveMode(mode, opts.For(mode))
		if mode == ModeDark {
			resolved.Dark = palette
		} else {
			resolved.Light = palette
		}
		resolved.Statuses[mode] = statuses
		resolved.Diagnostics = append(resolved.Diagnostics, diags...)
	}

	return resolved
}

// resolveMode merges and normalises a single mode.
func (r *Resolver) resolveMode(mode Mode, overrides Overrides) (*Palette, map[Token]colour.Status, []Diagnostic) {
	logger := r.log().With("mode", mode.String())

	var diags []Diagnostic
	for _, key := range InvalidKeys(overrides) {
		logger.Warn("ignoring override with invalid token name", "token", key)
		diags = append(diags, Diagnostic{Mode: mode, Token: Token(key), Value: overrides[key], Err: ErrInvalidTokenName})
	}

	entries := Merge(Defaults(mode), overrides)
	statuses := make(map[Token]colour.Status, len(entries))

	for i, e := range entries {
		result := colour.Normalise(e.Value)
		entries[i].Value = result.Value
		statuses[e.Token] = result.Status

		switch result.Status {
		case colour.StatusFallback:
			logger.Warn("failed to convert colour, keeping raw value",
				"token", e.Token.String(), "value", e.Value, "error", result.Err)
			diags = append(diags, Diagnostic{Mode: mode, Token: e.Token, Value: e.Value, Err: result.Err})
		case colour.StatusConverted:
			logger.Debug("converted colour", "token", e.Token.String(), "from", e.Value, "to", result.Value)
		}
	}

	logger.Debug("resolved palette", "tokens", len(entries), "overrides", len(overrides))
	return NewPalette(entries), statuses, diags
}

// Resolve produces the palettes for opts without logging.
func Resolve(opts Options) *Resolved {
	return NewResolver(nil).Resolve(opts)
}
