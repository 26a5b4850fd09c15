package brandgen

import (
	"image/color"
	"strings"
)

// Style enumerates the eight visual themes. Each style binds to exactly one
// color scheme and one drawing routine.
type Style string

const (
	StyleModern   Style = "modern"
	StyleClassic  Style = "classic"
	StyleMinimal  Style = "minimal"
	StyleBold     Style = "bold"
	StyleCreative Style = "creative"
	StyleLuxury   Style = "luxury"
	StyleTech     Style = "tech"
	StyleNature   Style = "nature"
)

func (s Style) String() string { return string(s) }

// Styles lists every supported style in a stable order.
func Styles() []Style {
	return []Style{
		StyleModern, StyleClassic, StyleMinimal, StyleBold,
		StyleCreative, StyleLuxury, StyleTech, StyleNature,
	}
}

// ParseStyle normalizes free-form input into a Style. The boolean reports
// whether the input matched one of the eight known values.
func ParseStyle(s string) (Style, bool) {
	switch Style(strings.ToLower(strings.TrimSpace(s))) {
	case StyleModern:
		return StyleModern, true
	case StyleClassic:
		return StyleClassic, true
	case StyleMinimal:
		return StyleMinimal, true
	case StyleBold:
		return StyleBold, true
	case StyleCreative:
		return StyleCreative, true
	case StyleLuxury:
		return StyleLuxury, true
	case StyleTech:
		return StyleTech, true
	case StyleNature:
		return StyleNature, true
	default:
		return "", false
	}
}

// ColorScheme is the fixed five-color palette bound to a style. Schemes are
// immutable at runtime.
type ColorScheme struct {
	Primary    color.RGBA
	Secondary  color.RGBA
	Accent     color.RGBA
	Background color.RGBA
	Text       color.RGBA
}

var colorSchemes = map[Style]ColorScheme{
	StyleModern: {
		Primary:    Hex("#6366f1"),
		Secondary:  Hex("#8b5cf6"),
		Accent:     Hex("#06b6d4"),
		Background: Hex("#f8fafc"),
		Text:       Hex("#1e293b"),
	},
	StyleClassic: {
		Primary:    Hex("#2c3e50"),
		Secondary:  Hex("#34495e"),
		Accent:     Hex("#7f8c8d"),
		Background: Hex("#ffffff"),
		Text:       Hex("#2c3e50"),
	},
	StyleMinimal: {
		Primary:    Hex("#000000"),
		Secondary:  Hex("#6b7280"),
		Accent:     Hex("#f3f4f6"),
		Background: Hex("#ffffff"),
		Text:       Hex("#000000"),
	},
	StyleBold: {
		Primary:    Hex("#e74c3c"),
		Secondary:  Hex("#f39c12"),
		Accent:     Hex("#27ae60"),
		Background: Hex("#ffffff"),
		Text:       Hex("#2c3e50"),
	},
	StyleCreative: {
		Primary:    Hex("#ff6b6b"),
		Secondary:  Hex("#4ecdc4"),
		Accent:     Hex("#45b7d1"),
		Background: Hex("#f8fafc"),
		Text:       Hex("#2d3748"),
	},
	StyleLuxury: {
		Primary:    Hex("#d4af37"),
		Secondary:  Hex("#b8860b"),
		Accent:     Hex("#daa520"),
		Background: Hex("#1a1a1a"),
		Text:       Hex("#ffffff"),
	},
	StyleTech: {
		Primary:    Hex("#00d4ff"),
		Secondary:  Hex("#0099cc"),
		Accent:     Hex("#0066cc"),
		Background: Hex("#0a0a0a"),
		Text:       Hex("#ffffff"),
	},
	StyleNature: {
		Primary:    Hex("#2ecc71"),
		Secondary:  Hex("#27ae60"),
		Accent:     Hex("#16a085"),
		Background: Hex("#f0fff4"),
		Text:       Hex("#2d3748"),
	},
}

// Palette returns the color scheme for a style. Unknown styles fall back to
// the modern scheme so lookups never fail.
func Palette(style Style) ColorScheme {
	if scheme, ok := colorSchemes[style]; ok {
		return scheme
	}
	return colorSchemes[StyleModern]
}

// Hex parses a #rrggbb color. Malformed input yields opaque black, which is
// acceptable because every value in the registry is a compile-time literal.
func Hex(s string) color.RGBA {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return color.RGBA{A: 0xff}
	}
	var v uint32
	for _, c := range []byte(s) {
		var d uint32
		switch {
		case c >= '0' && c <= '9':
			d = uint32(c - '0')
		case c >= 'a' && c <= 'f':
			d = uint32(c-'a') + 10
		case c >= 'A' && c <= 'F':
			d = uint32(c-'A') + 10
		default:
			return color.RGBA{A: 0xff}
		}
		v = v<<4 | d
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

// WithAlpha returns the color with the given alpha.
func WithAlpha(c color.RGBA, alpha uint8) color.RGBA {
	c.A = alpha
	return c
}

// White95 is the near-opaque white used for icon bodies and name text across
// the style renderers.
func White95() color.RGBA {
	return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xf2}
}
