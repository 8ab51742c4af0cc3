package theme

import "encoding/json"

// Declaration is a single CSS property declaration.
type Declaration struct {
	Property string
	Value    string
}

// Rule is a CSS selector and its declarations, in order.
type Rule struct {
	Selector     string
	Declarations []Declaration
}

// MarshalJSON encodes the rule's declarations as an ordered object.
func (r Rule) MarshalJSON() ([]byte, error) {
	obj := make(object, 0, len(r.Declarations))
	for _, d := range r.Declarations {
		obj = append(obj, member{key: d.Property, value: d.Value})
	}
	return obj.MarshalJSON()
}

// ColourToken is a semantic colour exposed to Tailwind's theme.
// Compound tokens carry a foreground reference alongside the default.
type ColourToken struct {
	Name       Token
	Default    string
	Foreground string
}

// Compound reports whether the token has a DEFAULT/foreground pair.
func (c ColourToken) Compound() bool {
	return c.Foreground != ""
}

// MarshalJSON encodes a simple token as a string and a compound token as
// {"DEFAULT": ..., "foreground": ...}.
func (c ColourToken) MarshalJSON() ([]byte, error) {
	if !c.Compound() {
		return json.Marshal(c.Default)
	}
	return object{
		{key: "DEFAULT", value: c.Default},
		{key: "foreground", value: c.Foreground},
	}.MarshalJSON()
}

// Radius is a named border-radius token.
type Radius struct {
	Name  string
	Value string
}

// Extension is the theme.extend fragment contributed to Tailwind.
type Extension struct {
	Colours      []ColourToken
	BorderRadius []Radius
}

// MarshalJSON encodes the extension as {"colors": {...}, "borderRadius": {...}}.
func (e Extension) MarshalJSON() ([]byte, error) {
	colours := make(object, 0, len(e.Colours))
	for _, c := range e.Colours {
		colours = append(colours, member{key: c.Name.String(), value: c})
	}
	radius := make(object, 0, len(e.BorderRadius))
	for _, r := range e.BorderRadius {
		radius = append(radius, member{key: r.Name, value: r.Value})
	}
	return object{
		{key: "colors", value: colours},
		{key: "borderRadius", value: radius},
	}.MarshalJSON()
}

// Plugin is the descriptor handed to the CSS build: base styles plus a theme extension.
type Plugin struct {
	Base   []Rule
	Extend Extension
}

// MarshalJSON encodes the descriptor as {"base": {selector: {...}}, "theme": {"extend": {...}}}.
func (p *Plugin) MarshalJSON() ([]byte, error) {
	base, err := p.MarshalBase()
	if err != nil {
		return nil, err
	}
	return object{
		{key: "base", value: json.RawMessage(base)},
		{key: "theme", value: object{{key: "extend", value: p.Extend}}},
	}.MarshalJSON()
}

// ColourNames returns the names of the extension's colour tokens in order.
func (p *Plugin) ColourNames() []string {
	names := make([]string, len(p.Extend.Colours))
	for i, c := range p.Extend.Colours {
		names[i] = c.Name.String()
	}
	return names
}

// simpleColours are exposed as a single colour reference.
var simpleColours = []Token{
	TokenBorder,
	TokenInput,
	TokenRing,
	TokenBackground,
	TokenForeground,
}

// compoundColours are exposed as DEFAULT plus foreground.
var compoundColours = []Token{
	TokenPrimary,
	TokenSecondary,
	TokenDestructive,
	TokenMuted,
	TokenAccent,
	TokenPopover,
	TokenCard,
}

// borderRadius is fixed and independent of the palette.
var borderRadius = []Radius{
	{Name: "lg", Value: "0.5rem"},
	{Name: "md", Value: "0.3rem"},
	{Name: "sm", Value: "0.1rem"},
}

// Emit builds the plugin descriptor from resolved palettes.
func Emit(r *Resolved) *Plugin {
	return &Plugin{
		Base:   baseRules(r),
		Extend: extension(),
	}
}

// baseRules declares the custom properties for both modes plus the fixed
// structural rules.
func baseRules(r *Resolved) []Rule {
	rules := make([]Rule, 0, 4)
	for _, mode := range []Mode{ModeLight, ModeDark} {
		palette := r.Palette(mode)
		decls := make([]Declaration, 0, palette.Len())
		for token, value := range palette.All() {
			decls = append(decls, Declaration{Property: token.Var(), Value: value})
		}
		rules = append(rules, Rule{Selector: mode.Selector(), Declarations: decls})
	}

	rules = append(rules,
		Rule{
			Selector: "*",
			Declarations: []Declaration{
				{Property: "border-color", Value: TokenBorder.Ref()},
			},
		},
		Rule{
			Selector: "body",
			Declarations: []Declaration{
				{Property: "background-color", Value: TokenBackground.Ref()},
				{Property: "color", Value: TokenForeground.Ref()},
				{Property: "-webkit-font-smoothing", Value: "antialiased"},
				{Property: "-moz-osx-font-smoothing", Value: "grayscale"},
			},
		},
	)
	return rules
}

// extension builds the closed set of semantic colour tokens. Every value is a
// reference to a custom property, so switching modes needs no re-emission.
func extension() Extension {
	colours := make([]ColourToken, 0, len(simpleColours)+len(compoundColours))
	for _, t := range simpleColours {
		colours = append(colours, ColourToken{Name: t, Default: t.Ref()})
	}
	for _, t := range compoundColours {
		colours = append(colours, ColourToken{Name: t, Default: t.Ref(), Foreground: t.Foreground().Ref()})
	}

	radius := make([]Radius, len(borderRadius))
	copy(radius, borderRadius)

	return Extension{Colours: colours, BorderRadius: radius}
}

// MarshalBase encodes only the base rules, as passed to Tailwind's addBase.
func (p *Plugin) MarshalBase() ([]byte, error) {
	base := make(object, 0, len(p.Base))
	for _, r := range p.Base {
		base = append(base, member{key: r.Selector, value: r})
	}
	return base.MarshalJSON()
}
