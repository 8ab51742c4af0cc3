package colour

import (
	"fmt"
	"regexp"
	"strings"
)

// canonicalPattern matches "H S% L%", e.g. "222.2 47.4% 11.2%".
// Only the shape is checked; components are not range-validated.
var canonicalPattern = regexp.MustCompile(`^\d+(?:\.\d+)?\s+\d+(?:\.\d+)?%\s+\d+(?:\.\d+)?%$`)

// IsCanonical reports whether value is already in canonical "H S% L%" form.
func IsCanonical(value string) bool {
	return canonicalPattern.MatchString(value)
}

// ParseCanonical parses a canonical "H S% L%" string into an opaque HSLA colour.
func ParseCanonical(value string) (HSLA, error) {
	if !IsCanonical(value) {
		return HSLA{}, fmt.Errorf("%w: %q is not in canonical form", ErrUnparseable, value)
	}
	fields := strings.Fields(value)

	h, err := parseNumber(fields[0])
	if err != nil {
		return HSLA{}, err
	}
	s, err := parseFraction(fields[1], 100)
	if err != nil {
		return HSLA{}, err
	}
	l, err := parseFraction(fields[2], 100)
	if err != nil {
		return HSLA{}, err
	}
	return HSLA{H: h, S: s, L: l, A: 1}, nil
}

// Status describes how Normalise produced its value.
type Status int

const (
	// StatusCanonical means the input was already canonical and returned unchanged.
	StatusCanonical Status = iota
	// StatusConverted means the input was parsed and reformatted.
	StatusConverted
	// StatusFallback means the input could not be parsed and was returned as-is.
	StatusFallback
)

// String returns the string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusCanonical:
		return "canonical"
	case StatusConverted:
		return "converted"
	case StatusFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// Result is the outcome of normalising a single colour value.
type Result struct {
	// Value is the canonical string, or the raw input on fallback.
	Value  string
	Status Status
	// Err is the parse failure when Status is StatusFallback.
	Err error
}

// Degraded reports whether the value is the raw input passed through after a
// parse failure.
func (r Result) Degraded() bool {
	return r.Status == StatusFallback
}

// Normalise converts a CSS colour value into canonical "H S% L%" form.
// It never fails: unparseable input comes back unchanged with StatusFallback
// and the reason in Err. Reporting the fallback is left to the caller.
func Normalise(value string) Result {
	if IsCanonical(value) {
		return Result{Value: value, Status: StatusCanonical}
	}

	if trimmed := strings.TrimSpace(value); trimmed != value && IsCanonical(trimmed) {
		return Result{Value: trimmed, Status: StatusConverted}
	}

	c, err := Parse(value)
	if err != nil {
		return Result{Value: value, Status: StatusFallback, Err: err}
	}

	return Result{Value: c.Canonical(), Status: StatusConverted}
}
