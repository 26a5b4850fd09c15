package brandgen

import (
	"fmt"
	"image/color"
)

// BrandKit bundles everything a business needs to apply its identity
// consistently: logo variants, a grouped color palette, typography and usage
// guidelines.
type BrandKit struct {
	BusinessName string         `json:"businessName"`
	Style        Style          `json:"style"`
	Logos        BrandKitLogos  `json:"logos"`
	Palette      BrandKitColors `json:"colorPalette"`
	Typography   Typography     `json:"typography"`
	Guidelines   string         `json:"brandGuidelines"`
}

// BrandKitLogos holds the three logo variants as PNG data URIs.
type BrandKitLogos struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	IconOnly  string `json:"iconOnly"`
}

// BrandKitColors groups the palette into four usage buckets of hex strings.
type BrandKitColors struct {
	Primary   []string `json:"primary"`
	Secondary []string `json:"secondary"`
	Accent    []string `json:"accent"`
	Neutral   []string `json:"neutral"`
}

// Typography names the brand's two typefaces.
type Typography struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}

// buildBrandKit renders all three logo variants and assembles the kit.
func buildBrandKit(businessName string, style Style) (*BrandKit, error) {
	colors := Palette(style)

	primary, err := renderVariant(logoWidth, logoHeight, colors, businessName, style, drawPrimaryVariant)
	if err != nil {
		return nil, err
	}
	secondary, err := renderVariant(600, 300, colors, businessName, style, drawSecondaryVariant)
	if err != nil {
		return nil, err
	}
	iconOnly, err := renderVariant(400, 400, colors, businessName, style, drawIconVariant)
	if err != nil {
		return nil, err
	}

	return &BrandKit{
		BusinessName: businessName,
		Style:        style,
		Logos: BrandKitLogos{
			Primary:   primary,
			Secondary: secondary,
			IconOnly:  iconOnly,
		},
		Palette: BrandKitColors{
			Primary:   []string{hexString(colors.Primary), hexString(lighten(colors.Primary, 0.2)), hexString(darken(colors.Primary, 0.2))},
			Secondary: []string{hexString(colors.Secondary), hexString(lighten(colors.Secondary, 0.2)), hexString(darken(colors.Secondary, 0.2))},
			Accent:    []string{hexString(colors.Accent), hexString(lighten(colors.Accent, 0.3))},
			Neutral:   []string{hexString(colors.Background), hexString(colors.Text), "#6b7280"},
		},
		Typography: Typography{Primary: FontPrimary, Secondary: FontSecondary},
		Guidelines: guidelines(businessName, style),
	}, nil
}

type variantFn func(s Surface, colors ColorScheme, businessName string, style Style)

func renderVariant(w, h int, colors ColorScheme, businessName string, style Style, draw variantFn) (string, error) {
	surf := NewImageSurface(w, h)
	draw(surf, colors, businessName, style)
	return pngDataURI(surf.Image())
}

// drawPrimaryVariant is the full logo: textured background, mark, nameplate.
func drawPrimaryVariant(s Surface, colors ColorScheme, businessName string, style Style) {
	drawBackground(s, colors)
	renderLogoMark(s, colors, businessName, style)
	drawNameplate(s, colors, businessName)
}

// drawSecondaryVariant is a horizontal lockup: mark on the left, wordmark on
// the right, plain background for letterheads and site headers.
func drawSecondaryVariant(s Surface, colors ColorScheme, businessName string, style Style) {
	w, h := s.Size()

	s.SetColor(colors.Background)
	s.DrawRectangle(0, 0, w, h)
	s.Fill()

	s.Push()
	s.Translate(h/2, h/2)
	s.Scale(0.55, 0.55)
	drawMark(s, colors, businessName, style)
	s.Pop()

	s.SetColor(colors.Text)
	s.FillText(businessName, h+30, h/2, 36, true, AlignLeft)
}

// drawIconVariant is the mark alone on the style gradient, sized for avatars
// and favicons.
func drawIconVariant(s Surface, colors ColorScheme, businessName string, style Style) {
	w, h := s.Size()

	s.SetLinearGradient(0, 0, w, h,
		Stop{0, colors.Background},
		Stop{1, WithAlpha(colors.Accent, 0x15)},
	)
	s.DrawRectangle(0, 0, w, h)
	s.Fill()

	s.Push()
	s.Translate(w/2, h/2)
	s.Scale(0.8, 0.8)
	drawMark(s, colors, businessName, style)
	s.Pop()
}

func guidelines(businessName string, style Style) string {
	return fmt.Sprintf(`%s Brand Guidelines

Style: %s

Logo Usage
- Use the primary logo on marketing material and product packaging.
- Use the horizontal secondary logo where vertical space is limited.
- Use the icon-only mark for avatars, favicons and app icons.
- Keep clear space around the logo equal to the height of the mark.

Color
- Lead with the primary palette; use accents sparingly for emphasis.
- Neutrals carry body text and backgrounds.

Typography
- %s for headings and display text.
- %s for body copy and interface text.`,
		businessName, titleCase(style.String()), FontPrimary, FontSecondary)
}

func hexString(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func lighten(c color.RGBA, f float64) color.RGBA {
	adj := func(v uint8) uint8 { return uint8(float64(v) + (255-float64(v))*f) }
	return color.RGBA{adj(c.R), adj(c.G), adj(c.B), c.A}
}

func darken(c color.RGBA, f float64) color.RGBA {
	adj := func(v uint8) uint8 { return uint8(float64(v) * (1 - f)) }
	return color.RGBA{adj(c.R), adj(c.G), adj(c.B), c.A}
}
