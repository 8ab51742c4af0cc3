package theme

import (
	"maps"
	"slices"
)

// Overrides is a partial mapping of token names to colour values for one mode.
// Values may use any supported CSS colour syntax.
type Overrides map[string]string

// Options configures palette resolution. Both override sets are optional.
type Options struct {
	LightColors Overrides `json:"lightColors,omitempty" toml:"lightColors,omitempty"`
	DarkColors  Overrides `json:"darkColors,omitempty" toml:"darkColors,omitempty"`
}

// For returns the overrides for a mode.
func (o Options) For(mode Mode) Overrides {
	if mode == ModeDark {
		return o.DarkColors
	}
	return o.LightColors
}

// Merge applies overrides on top of defaults with a shallow, per-token merge.
// Overridden tokens keep their default position. Tokens that are not part of
// the defaults are appended in lexical order; names that cannot be emitted as
// custom properties are dropped (see InvalidKeys).
func Merge(defaults *Palette, overrides Overrides) []Entry {
	entries := defaults.Entries()
	for i, e := range entries {
		if v, ok := overrides[string(e.Token)]; ok {
			entries[i].Value = v
		}
	}

	for _, key := range slices.Sorted(maps.Keys(overrides)) {
		if defaults.Has(Token(key)) || !ValidTokenName(key) {
			continue
		}
		entries = append(entries, Entry{Token: Token(key), Value: overrides[key]})
	}

	return entries
}

// InvalidKeys returns the override keys Merge drops, sorted.
func InvalidKeys(overrides Overrides) []string {
	var invalid []string
	for _, key := range slices.Sorted(maps.Keys(overrides)) {
		if !ValidTokenName(key) {
			invalid = append(invalid, key)
		}
	}
	return invalid
}
