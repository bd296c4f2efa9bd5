package flexel

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Style describes how a leaf is painted. The engine never interprets
// these fields; it hands them to the paint backend with the final
// rectangle.
type Style struct {
	Foreground string  `toml:"foreground"`
	Background string  `toml:"background"`
	FontSize   float64 `toml:"font_size"`
	Bold       bool    `toml:"bold"`
}

// PlaceholderStyle is the style name substituted for disabled bound
// widgets so they render visually inert instead of vanishing.
const PlaceholderStyle = "placeholder"

// StyleResolver maps style names to styles. It is an explicitly
// constructed object passed through build calls — its lifecycle is owned
// by the driver, and there is no process-wide registry.
type StyleResolver struct {
	styles   map[string]Style
	fallback Style
}

// NewStyleResolver creates a resolver seeded with a neutral default and
// placeholder style.
func NewStyleResolver() *StyleResolver {
	r := &StyleResolver{
		styles:   make(map[string]Style),
		fallback: Style{Foreground: "#d0d0d0", Background: "#202020", FontSize: 12},
	}
	r.styles["default"] = r.fallback
	r.styles[PlaceholderStyle] = Style{Foreground: "#707070", Background: "#202020", FontSize: 12}
	return r
}

// Define registers or replaces a named style.
func (r *StyleResolver) Define(name string, s Style) {
	r.styles[name] = s
}

// Resolve returns the style for name, falling back to the default style
// for unknown names.
func (r *StyleResolver) Resolve(name string) Style {
	if s, ok := r.styles[name]; ok {
		return s
	}
	return r.fallback
}

// Placeholder returns the style used for disabled bound widgets.
func (r *StyleResolver) Placeholder() Style {
	return r.Resolve(PlaceholderStyle)
}

// themeDoc is the on-disk TOML shape of a theme.
type themeDoc struct {
	Styles map[string]Style `toml:"styles"`
}

// ParseTheme builds a resolver from TOML theme data. Styles named in the
// document extend or override the seeded defaults.
func ParseTheme(data []byte) (*StyleResolver, error) {
	var doc themeDoc
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing theme: %w", err)
	}

	r := NewStyleResolver()
	for name, s := range doc.Styles {
		r.Define(name, s)
	}
	if s, ok := doc.Styles["default"]; ok {
		r.fallback = s
	}
	return r, nil
}

// LoadTheme reads and parses a TOML theme file.
func LoadTheme(path string) (*StyleResolver, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme %s: %w", path, err)
	}
	return ParseTheme(data)
}
