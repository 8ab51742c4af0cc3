package theme

// Entry is a single token and its colour value.
type Entry struct {
	Token Token  `json:"token"`
	Value string `json:"value"`
}

// Palette is an immutable, ordered mapping of tokens to colour values for one mode.
type Palette struct {
	entries []Entry
	index   map[Token]int
}

// NewPalette creates a palette from entries, keeping their order.
// A repeated token replaces the earlier value in place.
func NewPalette(entries []Entry) *Palette {
	p := &Palette{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[Token]int, len(entries)),
	}
	for _, e := range entries {
		if i, ok := p.index[e.Token]; ok {
			p.entries[i].Value = e.Value
			continue
		}
		p.index[e.Token] = len(p.entries)
		p.entries = append(p.entries, e)
	}
	return p
}

// Len returns the number of tokens in the palette.
func (p *Palette) Len() int {
	return len(p.entries)
}

// Get returns the value for a token.
func (p *Palette) Get(token Token) (string, bool) {
	i, ok := p.index[token]
	if !ok {
		return "", false
	}
	return p.entries[i].Value, true
}

// Has reports whether the palette contains a token.
func (p *Palette) Has(token Token) bool {
	_, ok := p.index[token]
	return ok
}

// Tokens returns the palette's tokens in order.
func (p *Palette) Tokens() []Token {
	tokens := make([]Token, len(p.entries))
	for i, e := range p.entries {
		tokens[i] = e.Token
	}
	return tokens
}

// Entries returns a copy of the palette's entries in order.
func (p *Palette) Entries() []Entry {
	entries := make([]Entry, len(p.entries))
	copy(entries, p.entries)
	return entries
}

// All returns an iterator over all tokens and values in order.
func (p *Palette) All() func(func(Token, string) bool) {
	return func(yield func(Token, string) bool) {
		for _, e := range p.entries {
			if !yield(e.Token, e.Value) {
				return
			}
		}
	}
}

// Map returns the palette as a plain map.
func (p *Palette) Map() map[string]string {
	m := make(map[string]string, len(p.entries))
	for _, e := range p.entries {
		m[string(e.Token)] = e.Value
	}
	return m
}

// Equal reports whether two palettes hold the same tokens and values in the same order.
func (p *Palette) Equal(other *Palette) bool {
	if p == nil || other == nil {
		return p == other
	}
	if len(p.entries) != len(other.entries) {
		return false
	}
	for i, e := range p.entries {
		if other.entries[i] != e {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the palette as an object keyed by token, in palette order.
func (p *Palette) MarshalJSON() ([]byte, error) {
	obj := make(object, 0, len(p.entries))
	for _, e := range p.entries {
		obj = append(obj, member{key: string(e.Token), value: e.Value})
	}
	return obj.MarshalJSON()
}
