// Package palette reads the colors out of a theme definition.
//
// A theme file is a JSON object. Nested objects are flattened into "/"-joined
// keys, so {"script-editor": {"keyword": "#0000ff"}} yields the entry
// "script-editor/keyword". A color is either a hex string ("#rgb", "#rrggbb",
// "#rrggbbaa") or an object with "r", "g", "b" and optional "a" members in the
// range 0-255. Values that are neither are ignored.
package palette

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// KeySeparator joins nested keys.
const KeySeparator = "/"

// ErrNotObject is returned when a theme definition is not a JSON object.
var ErrNotObject = errors.New("theme definition must be a JSON object")

// Color is an RGBA color.
type Color struct {
	R, G, B, A uint8
}

// Hex returns the color as "#rrggbb", or "#rrggbbaa" when not fully opaque.
func (c Color) Hex() string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// ParseHex parses "#rgb", "#rrggbb" or "#rrggbbaa". The leading '#' is optional.
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")

	switch len(h) {
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]}) + "ff"
	case 6:
		h += "ff"
	case 8:
	default:
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}

	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return Color{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// Entry is one named color of a palette.
type Entry struct {
	Key   string
	Color Color
}

// Palette is the set of colors defined by a theme, sorted by key.
type Palette struct {
	Name    string
	entries []Entry
	index   map[string]int
}

// Entries returns the colors in key order.
func (p *Palette) Entries() []Entry {
	out := make([]Entry, len(p.entries))
	copy(out, p.entries)
	return out
}

// Len returns the number of colors.
func (p *Palette) Len() int {
	return len(p.entries)
}

// Lookup returns the color for key.
func (p *Palette) Lookup(key string) (Color, bool) {
	i, ok := p.index[key]
	if !ok {
		return Color{}, false
	}
	return p.entries[i].Color, true
}

// Sections returns the distinct top-level key prefixes in order.
func (p *Palette) Sections() []string {
	var sections []string
	seen := make(map[string]bool)
	for _, e := range p.entries {
		section, _, found := strings.Cut(e.Key, KeySeparator)
		if !found {
			section = ""
		}
		if !seen[section] {
			seen[section] = true
			sections = append(sections, section)
		}
	}
	return sections
}

// Decode parses a theme definition. name is used when the document has no
// top-level "name" string.
func Decode(name string, data []byte) (*Palette, error) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, ErrNotObject
		}
		if errors.As(err, &syntaxErr) {
			return nil, fmt.Errorf("parse theme %s at offset %d: %w", name, syntaxErr.Offset, err)
		}
		return nil, fmt.Errorf("parse theme %s: %w", name, err)
	}
	if doc == nil {
		return nil, ErrNotObject
	}

	p := &Palette{Name: name, index: make(map[string]int)}
	if n, ok := doc["name"].(string); ok && n != "" {
		p.Name = n
	}

	flatten("", doc, func(key string, c Color) {
		p.entries = append(p.entries, Entry{Key: key, Color: c})
	})

	sort.Slice(p.entries, func(i, j int) bool {
		return p.entries[i].Key < p.entries[j].Key
	})
	for i, e := range p.entries {
		p.index[e.Key] = i
	}
	return p, nil
}

// flatten walks obj and reports every color it finds.
func flatten(prefix string, obj map[string]any, emit func(key string, c Color)) {
	for k, v := range obj {
		key := k
		if prefix != "" {
			key = prefix + KeySeparator + k
		}

		switch val := v.(type) {
		case string:
			if !strings.HasPrefix(val, "#") {
				continue
			}
			if c, err := ParseHex(val); err == nil {
				emit(key, c)
			}
		case map[string]any:
			if c, ok := colorObject(val); ok {
				emit(key, c)
				continue
			}
			flatten(key, val, emit)
		}
	}
}

// colorObject reads {"r":..,"g":..,"b":..,"a":..}. "a" defaults to 255.
func colorObject(obj map[string]any) (Color, bool) {
	channel := func(name string, def uint8) (uint8, bool) {
		raw, ok := obj[name]
		if !ok {
			return def, name == "a"
		}
		f, ok := raw.(float64)
		if !ok || f < 0 || f > 255 || f != float64(int(f)) {
			return 0, false
		}
		return uint8(f), true
	}

	r, okR := channel("r", 0)
	g, okG := channel("g", 0)
	b, okB := channel("b", 0)
	a, okA := channel("a", 0xff)
	if !okR || !okG || !okB || !okA {
		return Color{}, false
	}
	return Color{R: r, G: g, B: b, A: a}, true
}
