package brandgen

import (
	"image/color"
	"math"
	"strconv"
)

// Logo canvas dimensions, shared with the composite generators.
const (
	logoWidth  = 800
	logoHeight = 600
)

// drawBackground fills the full canvas with the style gradient plus the
// subtle diagonal-line and dot texture every artifact shares.
func drawBackground(s Surface, colors ColorScheme) {
	w, h := s.Size()

	s.SetLinearGradient(0, 0, w, h,
		Stop{0, colors.Background},
		Stop{0.3, WithAlpha(colors.Accent, 0x15)},
		Stop{0.7, WithAlpha(colors.Secondary, 0x10)},
		Stop{1, colors.Background},
	)
	s.DrawRectangle(0, 0, w, h)
	s.Fill()

	s.SetColor(WithAlpha(colors.Primary, 0x08))
	s.SetLineWidth(0.5)
	for x := -w; x < w*2; x += 40 {
		s.MoveTo(x, 0)
		s.LineTo(x+h, h)
		s.Stroke()
	}

	s.SetColor(WithAlpha(colors.Primary, 0x05))
	for x := 0.0; x < w; x += 60 {
		for y := 0.0; y < h; y += 60 {
			s.DrawCircle(x, y, 1)
			s.Fill()
		}
	}
}

// renderLogoMark draws the style-specific mark centered slightly above the
// canvas middle. Every randomized parameter comes from the per-name stream in
// a fixed call order, so re-rendering the same name reproduces the same
// pixels.
func renderLogoMark(s Surface, colors ColorScheme, businessName string, style Style) {
	w, h := s.Size()

	s.Push()
	s.Translate(w/2, h/2-50)
	drawMark(s, colors, businessName, style)
	s.Pop()
}

// drawMark dispatches to the style renderer at the current origin. A fresh
// generator is seeded from the name so the mark is identical wherever it is
// embedded.
func drawMark(s Surface, colors ColorScheme, businessName string, style Style) {
	rng := NewRand(Seed(businessName))

	switch style {
	case StyleClassic:
		drawClassicMark(s, colors, businessName, rng)
	case StyleMinimal:
		drawMinimalMark(s, colors, businessName, rng)
	case StyleBold:
		drawBoldMark(s, colors, businessName, rng)
	case StyleCreative:
		drawCreativeMark(s, colors, businessName, rng)
	case StyleLuxury:
		drawLuxuryMark(s, colors, businessName, rng)
	case StyleTech:
		drawTechMark(s, colors, businessName)
	case StyleNature:
		drawNatureMark(s, colors, businessName, rng)
	default:
		drawModernMark(s, colors, businessName, rng)
	}
}

func drawModernMark(s Surface, colors ColorScheme, businessName string, rng *Rand) {
	businessType := Classify(businessName, "")

	// Gradient direction and stop offsets vary per name.
	angle := rng.Float64() * math.Pi * 2
	gx, gy := math.Cos(angle)*100, math.Sin(angle)*100
	midStop := rng.Float64() * 0.5
	lateStop := 0.7 + rng.Float64()*0.3

	// Asymmetric pentagon with randomized corner offsets. The corner list is
	// captured so the glass overlay can retrace the same outline.
	corners := [][2]float64{
		{-90 + rng.Float64()*30, -60 + rng.Float64()*30},
		{90 - rng.Float64()*30, -90 + rng.Float64()*30},
		{90 - rng.Float64()*30, 60 - rng.Float64()*30},
		{-60 + rng.Float64()*30, 90 - rng.Float64()*30},
		{-90 + rng.Float64()*30, 30 + rng.Float64()*30},
	}
	glassRadius := 100 + rng.Float64()*40

	tracePolygon(s, corners)
	s.SetLinearGradient(gx, gy, -gx, -gy,
		Stop{0, colors.Primary},
		Stop{midStop, colors.Secondary},
		Stop{lateStop, colors.Accent},
		Stop{1, colors.Primary},
	)
	s.Fill()

	tracePolygon(s, corners)
	s.SetRadialGradient(0, 0, glassRadius,
		Stop{0, color.RGBA{0xff, 0xff, 0xff, 0x1a}},
		Stop{0.5, color.RGBA{0xff, 0xff, 0xff, 0x0d}},
		Stop{1, color.RGBA{0xff, 0xff, 0xff, 0x00}},
	)
	s.Fill()

	// Accent lines: count and angles are name-dependent.
	lineCount := 2 + rng.Intn(3)
	for i := 0; i < lineCount; i++ {
		s.Push()
		s.Rotate(rng.Float64() * math.Pi * 2)
		s.SetColor(color.RGBA{0xff, 0xff, 0xff, 0x4d})
		s.SetLineWidth(1.5 + rng.Float64())
		s.MoveTo(-70+rng.Float64()*40, -40+rng.Float64()*40)
		s.LineTo(70-rng.Float64()*40, -70+rng.Float64()*40)
		s.Stroke()
		s.Pop()
	}

	DrawIcon(s, colors, businessType, false)

	s.SetColor(White95())
	s.FillText(businessName, 0, 65+rng.Float64()*10, 24+float64(rng.Intn(6)), true, AlignCenter)

	s.SetColor(colors.Accent)
	s.DrawCircle(60+rng.Float64()*40, -60-rng.Float64()*40, 6+rng.Float64()*6)
	s.Fill()
}

func drawClassicMark(s Surface, colors ColorScheme, businessName string, rng *Rand) {
	businessType := Classify(businessName, "")

	s.SetLinearGradient(-90, -90, 90, 90,
		Stop{0, colors.Primary},
		Stop{0.5, colors.Secondary},
		Stop{1, colors.Accent},
	)
	s.DrawCircle(0, 0, 80)
	s.Fill()

	DrawIcon(s, colors, businessType, false)

	s.SetColor(White95())
	s.FillText(businessName, 0, 70, 20, true, AlignCenter)
}

func drawMinimalMark(s Surface, colors ColorScheme, businessName string, rng *Rand) {
	businessType := Classify(businessName, "")

	s.SetColor(colors.Primary)
	s.DrawRectangle(-80, -80, 160, 160)
	s.Fill()

	DrawIcon(s, colors, businessType, true)

	s.SetColor(White95())
	s.FillText(businessName, 0, 70, 18, true, AlignCenter)
}

func drawBoldMark(s Surface, colors ColorScheme, businessName string, rng *Rand) {
	businessType := Classify(businessName, "")

	s.SetRadialGradient(0, 0, 90,
		Stop{0, colors.Primary},
		Stop{0.4, colors.Secondary},
		Stop{0.8, colors.Accent},
		Stop{1, colors.Primary},
	)
	s.MoveTo(0, -90)
	s.LineTo(80, 70)
	s.LineTo(-80, 70)
	s.ClosePath()
	s.Fill()

	DrawIcon(s, colors, businessType, false)

	s.SetColor(White95())
	s.FillText(businessName, 0, 50, 22, true, AlignCenter)
}

func drawCreativeMark(s Surface, colors ColorScheme, businessName string, rng *Rand) {
	businessType := Classify(businessName, "")

	s.Push()
	s.Translate(-25, -25)
	s.Rotate(math.Pi / 4)
	s.SetRadialGradient(0, 0, 50,
		Stop{0, colors.Primary},
		Stop{1, colors.Secondary},
	)
	s.DrawEllipse(0, 0, 45, 65)
	s.Fill()
	s.Pop()

	s.Push()
	s.Translate(25, 25)
	s.Rotate(-math.Pi / 4)
	s.SetRadialGradient(0, 0, 60,
		Stop{0, colors.Secondary},
		Stop{1, colors.Accent},
	)
	s.DrawEllipse(0, 0, 55, 35)
	s.Fill()
	s.Pop()

	DrawIcon(s, colors, businessType, false)

	s.SetColor(White95())
	s.FillText(businessName, 0, 60, 20, true, AlignCenter)
}

func drawLuxuryMark(s Surface, colors ColorScheme, businessName string, rng *Rand) {
	businessType := Classify(businessName, "")

	s.SetLinearGradient(-90, -90, 90, 90,
		Stop{0, colors.Primary},
		Stop{0.25, colors.Secondary},
		Stop{0.5, colors.Accent},
		Stop{0.75, colors.Secondary},
		Stop{1, colors.Primary},
	)
	s.MoveTo(0, -90)
	s.LineTo(70, -25)
	s.LineTo(70, 25)
	s.LineTo(0, 90)
	s.LineTo(-70, 25)
	s.LineTo(-70, -25)
	s.ClosePath()
	s.Fill()

	DrawIcon(s, colors, businessType, false)

	s.SetColor(White95())
	s.FillText(businessName, 0, 50, 20, true, AlignCenter)
}

func drawNatureMark(s Surface, colors ColorScheme, businessName string, rng *Rand) {
	s.Push()
	s.Rotate(math.Pi / 4)
	s.SetRadialGradient(0, 0, 85,
		Stop{0, colors.Primary},
		Stop{0.4, colors.Secondary},
		Stop{0.8, colors.Accent},
		Stop{1, colors.Primary},
	)
	s.DrawEllipse(0, 0, 70, 45)
	s.Fill()
	s.Pop()

	DrawIcon(s, colors, StyleNature, false)

	s.SetColor(White95())
	s.FillText(businessName, 0, 60, 20, true, AlignCenter)
}

// Tech accent palette. These are fixed across all tech logos; the geometry is
// what varies per name.
var (
	techCyan   = Hex("#00c3ff")
	techGlow   = Hex("#00f0ff")
	techAmber  = Hex("#ffb300")
	techWhite  = Hex("#ffffff")
	techIndigo = Hex("#6366f1")
)

// drawTechMark composes a gear, circuit rays, a spiral swoosh, center spokes
// and per-character colored text. Each element pulls from its own sub-seed
// (name + feature tag) so features vary independently but reproducibly.
func drawTechMark(s Surface, colors ColorScheme, businessName string) {
	// Gear silhouette.
	gearRand := SubRand(businessName, "gear")
	gearRadius := 60 + gearRand.Float64()*10
	teeth := 8 + gearRand.Intn(5)
	innerRadius := gearRadius * (0.7 + gearRand.Float64()*0.1)
	gearAngle := gearRand.Float64() * math.Pi * 2
	gearX := (gearRand.Float64() - 0.5) * 40
	gearY := (gearRand.Float64() - 0.5) * 40

	s.Push()
	s.Translate(gearX, gearY)
	s.Rotate(gearAngle)
	for i := 0; i < teeth*2; i++ {
		angle := math.Pi * 2 / float64(teeth*2) * float64(i)
		r := gearRadius
		if i%2 == 1 {
			r = gearRadius * 0.88
		}
		x, y := circlePoint(angle, r)
		if i == 0 {
			s.MoveTo(x, y)
		} else {
			s.LineTo(x, y)
		}
	}
	s.ClosePath()
	s.SetLinearGradient(-gearRadius, 0, gearRadius, 0,
		Stop{0, techCyan},
		Stop{0.5, techWhite},
		Stop{1, techAmber},
	)
	s.Fill()
	s.Pop()

	// Circuit rays with endpoint dots.
	circuitCount := 6 + int(SubRand(businessName, "circuitCount").Float64()*4)
	for i := 0; i < circuitCount; i++ {
		cRand := SubRand(businessName, "circuit"+strconv.Itoa(i))
		angle := cRand.Float64() * math.Pi * 2
		r1 := innerRadius + cRand.Float64()*(gearRadius-innerRadius-10)
		r2 := gearRadius + 10 + cRand.Float64()*20

		s.Push()
		s.Rotate(angle)
		lineColor := techAmber
		if cRand.Float64() > 0.5 {
			lineColor = techGlow
		}
		s.SetColor(WithAlpha(lineColor, 0xb3))
		s.SetLineWidth(2 + cRand.Float64()*2)
		s.MoveTo(r1, 0)
		s.LineTo(r2, 0)
		s.Stroke()

		s.SetColor(WithAlpha(lineColor, 0xe6))
		s.DrawCircle(r2, 0, 4+cRand.Float64()*3)
		s.Fill()
		s.Pop()
	}

	// Spiral swoosh.
	spiralRand := SubRand(businessName, "spiral")
	s.Push()
	s.Rotate(spiralRand.Float64() * math.Pi * 2)
	sweep := math.Pi * (1.2 + spiralRand.Float64()*0.8)
	step := 0.15 + spiralRand.Float64()*0.05
	started := false
	for t := 0.0; t < sweep; t += step {
		r := innerRadius + 10 + t*10 + spiralRand.Float64()*4
		x, y := circlePoint(t, r)
		if !started {
			s.MoveTo(x, y)
			started = true
		} else {
			s.LineTo(x, y)
		}
	}
	spiralColor := techCyan
	if spiralRand.Float64() > 0.5 {
		spiralColor = techAmber
	}
	s.SetColor(WithAlpha(spiralColor, 0xb3))
	s.SetLineWidth(4 + spiralRand.Float64()*3)
	s.Stroke()
	s.Pop()

	// Center spokes.
	centerCount := 3 + int(SubRand(businessName, "centerCount").Float64()*3)
	for i := 0; i < centerCount; i++ {
		cRand := SubRand(businessName, "center"+strconv.Itoa(i))
		angle := cRand.Float64() * math.Pi * 2
		r := 18 + cRand.Float64()*18

		s.Push()
		s.Rotate(angle)
		spokeColor := techAmber
		if cRand.Float64() > 0.5 {
			spokeColor = techGlow
		}
		s.SetColor(spokeColor)
		s.SetLineWidth(3 + cRand.Float64()*3)
		s.MoveTo(0, 0)
		s.LineTo(r, 0)
		s.Stroke()

		s.SetColor(techWhite)
		s.DrawCircle(r, 0, 5+cRand.Float64()*3)
		s.Fill()
		s.Pop()
	}

	// Name with a per-character color cycle and a seed-chosen layout: below
	// the gear, beside it, or above it.
	nameRand := SubRand(businessName, "name")
	const nameSize = 32.0
	nameX, nameY := 0.0, 80.0
	align := AlignCenter
	switch int(nameRand.Float64() * 3) {
	case 1:
		nameX, nameY = 90, 0
		align = AlignLeft
	case 2:
		nameY = -gearRadius - 30
	}

	x := -s.MeasureText(businessName, nameSize, true) / 2
	if align == AlignLeft {
		x = 0
	}
	for i, ch := range businessName {
		glyph := string(ch)
		w := s.MeasureText(glyph, nameSize, true)
		glyphColor := techAmber
		if nameRand.Float64() > 0.5 {
			glyphColor = techCyan
		}
		if nameRand.Float64() > 0.5 {
			glyphColor = blend(glyphColor, techWhite)
		} else {
			glyphColor = blend(glyphColor, techIndigo)
		}
		s.SetColor(glyphColor)
		wobble := math.Sin(float64(i)+nameRand.Float64()) * 4
		s.FillText(glyph, nameX+x+w/2, nameY+wobble, nameSize, true, AlignCenter)
		x += w
	}
}

// drawNameplate renders the large bottom caption shared by logo artifacts.
func drawNameplate(s Surface, colors ColorScheme, businessName string) {
	w, h := s.Size()
	s.SetColor(colors.Text)
	s.FillText(businessName, w/2, h-80, 42, true, AlignCenter)
}

func tracePolygon(s Surface, corners [][2]float64) {
	for i, c := range corners {
		if i == 0 {
			s.MoveTo(c[0], c[1])
		} else {
			s.LineTo(c[0], c[1])
		}
	}
	s.ClosePath()
}

// blend averages two colors for the tech glyph color cycle.
func blend(a, b color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8((uint16(a.R) + uint16(b.R)) / 2),
		G: uint8((uint16(a.G) + uint16(b.G)) / 2),
		B: uint8((uint16(a.B) + uint16(b.B)) / 2),
		A: 0xff,
	}
}

