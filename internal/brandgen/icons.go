package brandgen

import "math"

// DrawIcon composites the business-type icon for bt at the current origin.
// Icons are purely geometric and carry no randomness; the minimal flag
// shrinks their visual weight. Callers are expected to have translated the
// surface to the icon center.
func DrawIcon(s Surface, colors ColorScheme, bt Style, minimal bool) {
	size := 40.0
	if minimal {
		size = 30.0
	}
	switch bt {
	case StyleTech:
		drawTechIcon(s, colors, size)
	case StyleNature:
		drawNatureIcon(s, colors, size)
	case StyleLuxury:
		drawLuxuryIcon(s, colors, size)
	case StyleCreative:
		drawCreativeIcon(s, colors, size)
	case StyleBold:
		drawBoldIcon(s, colors, size)
	case StyleClassic:
		drawClassicIcon(s, colors, size)
	case StyleMinimal:
		drawMinimalIcon(s, colors, size)
	default:
		drawModernIcon(s, colors, size)
	}
}

// drawTechIcon draws a computer monitor with a stand and power light.
func drawTechIcon(s Surface, colors ColorScheme, size float64) {
	s.SetColor(White95())
	s.DrawRectangle(-size/2, -size/2, size, size*0.7)
	s.Fill()
	s.DrawRectangle(-size/4, size*0.2, size/2, size/4)
	s.Fill()

	s.SetColor(colors.Accent)
	s.DrawRectangle(-size/2+4, -size/2+4, size-8, size*0.7-8)
	s.Fill()

	s.SetColor(colors.Primary)
	s.DrawCircle(size/2-8, -size/2+8, 3)
	s.Fill()
}

// drawNatureIcon draws a trunk with a three-lobe canopy.
func drawNatureIcon(s Surface, colors ColorScheme, size float64) {
	s.SetColor(White95())
	s.DrawRectangle(-size/8, size/4, size/4, size/2)
	s.Fill()

	s.SetColor(colors.Accent)
	s.DrawCircle(0, -size/4, size/2)
	s.Fill()
	s.DrawCircle(-size/3, -size/6, size/3)
	s.Fill()
	s.DrawCircle(size/3, -size/6, size/3)
	s.Fill()
}

// drawLuxuryIcon draws a faceted diamond with an inner accent diamond.
func drawLuxuryIcon(s Surface, colors ColorScheme, size float64) {
	diamond := func(scale float64) {
		s.MoveTo(0, -size/2*scale)
		s.LineTo(size/3*scale, -size/6*scale)
		s.LineTo(size/3*scale, size/6*scale)
		s.LineTo(0, size/2*scale)
		s.LineTo(-size/3*scale, size/6*scale)
		s.LineTo(-size/3*scale, -size/6*scale)
		s.ClosePath()
		s.Fill()
	}
	s.SetColor(White95())
	diamond(1)
	s.SetColor(colors.Accent)
	diamond(0.5)
}

// drawCreativeIcon draws a paint palette with three wells.
func drawCreativeIcon(s Surface, colors ColorScheme, size float64) {
	s.SetColor(White95())
	s.DrawCircle(0, 0, size/2)
	s.Fill()

	s.SetColor(colors.Primary)
	s.DrawCircle(-size/4, -size/4, size/8)
	s.Fill()
	s.SetColor(colors.Secondary)
	s.DrawCircle(size/4, -size/4, size/8)
	s.Fill()
	s.SetColor(colors.Accent)
	s.DrawCircle(0, size/4, size/8)
	s.Fill()
}

// drawBoldIcon draws a lightning bolt.
func drawBoldIcon(s Surface, colors ColorScheme, size float64) {
	s.SetColor(White95())
	s.MoveTo(-size/4, -size/2)
	s.LineTo(size/6, -size/6)
	s.LineTo(-size/6, 0)
	s.LineTo(size/4, size/2)
	s.LineTo(-size/6, size/6)
	s.LineTo(size/6, 0)
	s.ClosePath()
	s.Fill()
}

// drawClassicIcon draws a building facade with four windows.
func drawClassicIcon(s Surface, colors ColorScheme, size float64) {
	s.SetColor(White95())
	s.DrawRectangle(-size/3, -size/2, size*2/3, size)
	s.Fill()

	s.SetColor(colors.Accent)
	s.DrawRectangle(-size/4, -size/3, size/6, size/6)
	s.Fill()
	s.DrawRectangle(-size/4, 0, size/6, size/6)
	s.Fill()
	s.DrawRectangle(size/12, -size/3, size/6, size/6)
	s.Fill()
	s.DrawRectangle(size/12, 0, size/6, size/6)
	s.Fill()
}

// drawMinimalIcon draws a square with an inset accent square.
func drawMinimalIcon(s Surface, colors ColorScheme, size float64) {
	s.SetColor(White95())
	s.DrawRectangle(-size/3, -size/3, size*2/3, size*2/3)
	s.Fill()

	s.SetColor(colors.Accent)
	s.DrawRectangle(-size/6, -size/6, size/3, size/3)
	s.Fill()
}

// drawModernIcon draws a rounded rectangle with a centered accent dot.
func drawModernIcon(s Surface, colors ColorScheme, size float64) {
	s.SetColor(White95())
	s.DrawRoundedRectangle(-size/2, -size/2, size, size, size/8)
	s.Fill()

	s.SetColor(colors.Accent)
	s.DrawCircle(0, 0, size/4)
	s.Fill()
}

// circlePoint is shared by the gear and spiral drawing in the tech renderer.
func circlePoint(angle, radius float64) (float64, float64) {
	return math.Cos(angle) * radius, math.Sin(angle) * radius
}
