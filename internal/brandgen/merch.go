package brandgen

import (
	"image/color"
	"strings"
	"unicode"
)

// Merchandise canvas dimensions.
const (
	tshirtSize   = 800
	bannerWidth  = 1200
	bannerHeight = 630
	cardWidth    = 1050
	cardHeight   = 600
)

// drawTShirt renders a garment mockup with the brand mark printed on the
// chest. Canvas is 800x800.
func drawTShirt(s Surface, colors ColorScheme, businessName string, style Style) {
	w, h := s.Size()

	s.SetColor(color.RGBA{0xf8, 0xfa, 0xfc, 0xff})
	s.DrawRectangle(0, 0, w, h)
	s.Fill()

	// Ground shadow under the garment.
	s.SetColor(color.RGBA{0x00, 0x00, 0x00, 0x14})
	s.DrawEllipse(w/2, h-60, 280, 30)
	s.Fill()

	// Shirt silhouette: shoulders, short sleeves, straight body.
	body := [][2]float64{
		{w/2 - 200, 220}, {w/2 - 90, 180}, {w/2 + 90, 180}, {w/2 + 200, 220},
		{w/2 + 280, 320}, {w/2 + 190, 360}, {w/2 + 170, 310},
		{w/2 + 170, 740}, {w/2 - 170, 740},
		{w/2 - 170, 310}, {w/2 - 190, 360}, {w/2 - 280, 320},
	}
	tracePolygon(s, body)
	s.SetLinearGradient(w/2, 180, w/2, 740,
		Stop{0, color.RGBA{0xff, 0xff, 0xff, 0xff}},
		Stop{0.4, color.RGBA{0xf1, 0xf5, 0xf9, 0xff}},
		Stop{0.8, color.RGBA{0xe2, 0xe8, 0xf0, 0xff}},
		Stop{1, color.RGBA{0xcb, 0xd5, 0xe1, 0xff}},
	)
	s.Fill()

	tracePolygon(s, body)
	s.SetColor(color.RGBA{0x94, 0xa3, 0xb8, 0xff})
	s.SetLineWidth(2)
	s.Stroke()

	// Collar.
	s.SetColor(color.RGBA{0xe2, 0xe8, 0xf0, 0xff})
	s.DrawEllipse(w/2, 195, 90, 35)
	s.Fill()
	s.SetColor(color.RGBA{0xf8, 0xfa, 0xfc, 0xff})
	s.DrawEllipse(w/2, 190, 78, 28)
	s.Fill()

	// Fabric fold lines.
	s.SetColor(color.RGBA{0x94, 0xa3, 0xb8, 0x26})
	s.SetLineWidth(1)
	for y := 380.0; y < 720; y += 18 {
		s.MoveTo(w/2-160, y)
		s.LineTo(w/2+160, y+6)
		s.Stroke()
	}

	// Printed mark on the chest.
	s.Push()
	s.Translate(w/2, h*0.44)
	s.Scale(0.5, 0.5)
	drawMark(s, colors, businessName, style)
	s.Pop()

	s.SetColor(colors.Primary)
	s.FillText(businessName, w/2, h*0.62, 28, true, AlignCenter)
	s.SetColor(color.RGBA{0x64, 0x74, 0x8b, 0xff})
	s.FillText("Professional Quality", w/2, h*0.67, 16, false, AlignCenter)
}

// drawBanner renders a full-bleed social banner. Canvas is 1200x630.
func drawBanner(s Surface, colors ColorScheme, businessName string, style Style) {
	w, h := s.Size()
	rng := NewRand(Seed(businessName + style.String()))

	s.SetLinearGradient(0, 0, w, h,
		Stop{0, colors.Primary},
		Stop{0.4, colors.Secondary},
		Stop{0.8, colors.Accent},
		Stop{1, colors.Primary},
	)
	s.DrawRectangle(0, 0, w, h)
	s.Fill()

	// Repeating triangle texture.
	s.SetColor(color.RGBA{0xff, 0xff, 0xff, 0x0d})
	for x := 0.0; x < w; x += 120 {
		for y := 0.0; y < h; y += 120 {
			s.MoveTo(x, y+60)
			s.LineTo(x+60, y)
			s.LineTo(x+120, y+60)
			s.ClosePath()
			s.Fill()
		}
	}

	// Decorative circles vary per name.
	for i := 0; i < 3; i++ {
		cx := rng.Float64() * w
		cy := rng.Float64() * h
		r := 40 + rng.Float64()*80
		s.SetColor(color.RGBA{0xff, 0xff, 0xff, 0x1a})
		s.DrawCircle(cx, cy, r)
		s.Fill()
	}

	white := color.RGBA{0xff, 0xff, 0xff, 0xff}
	s.SetColor(white)
	s.FillText(businessName, w/2, h*0.42, 72, true, AlignCenter)
	s.SetColor(color.RGBA{0xff, 0xff, 0xff, 0xe6})
	s.FillText("Professional "+titleCase(style.String())+" Design", w/2, h*0.58, 32, false, AlignCenter)
	s.SetColor(color.RGBA{0xff, 0xff, 0xff, 0xb3})
	s.FillText("Premium Quality • Built to Stand Out", w/2, h*0.70, 20, false, AlignCenter)

	// Accent rules flanking the title.
	nameW := s.MeasureText(businessName, 72, true)
	s.SetColor(color.RGBA{0xff, 0xff, 0xff, 0x80})
	s.SetLineWidth(3)
	s.MoveTo(w/2-nameW/2-120, h*0.42)
	s.LineTo(w/2-nameW/2-30, h*0.42)
	s.Stroke()
	s.MoveTo(w/2+nameW/2+30, h*0.42)
	s.LineTo(w/2+nameW/2+120, h*0.42)
	s.Stroke()
}

// drawCard renders a business-card front. Canvas is 1050x600.
func drawCard(s Surface, colors ColorScheme, businessName string, style Style) {
	w, h := s.Size()

	s.SetColor(color.RGBA{0xe2, 0xe8, 0xf0, 0xff})
	s.DrawRectangle(0, 0, w, h)
	s.Fill()

	// Card body with drop shadow.
	s.SetColor(color.RGBA{0x00, 0x00, 0x00, 0x33})
	s.DrawRoundedRectangle(48, 48, w-80, h-80, 16)
	s.Fill()
	s.SetLinearGradient(40, 40, w-40, h-40,
		Stop{0, colors.Background},
		Stop{1, WithAlpha(colors.Accent, 0x12)},
	)
	s.DrawRoundedRectangle(40, 40, w-80, h-80, 16)
	s.Fill()
	s.SetColor(colors.Primary)
	s.SetLineWidth(2)
	s.DrawRoundedRectangle(40, 40, w-80, h-80, 16)
	s.Stroke()

	// Accent bar along the left edge.
	s.SetLinearGradient(40, 40, 40, h-40,
		Stop{0, colors.Primary},
		Stop{1, colors.Accent},
	)
	s.DrawRectangle(40, 40, 14, h-80)
	s.Fill()

	// Brand mark block.
	s.Push()
	s.Translate(190, 200)
	s.Scale(0.4, 0.4)
	drawMark(s, colors, businessName, style)
	s.Pop()

	s.SetColor(colors.Text)
	s.FillText(businessName, 340, 150, 44, true, AlignLeft)
	s.SetColor(WithAlpha(colors.Text, 0xb3))
	s.FillText("Founder & CEO", 340, 200, 24, false, AlignLeft)

	s.SetColor(WithAlpha(colors.Primary, 0x66))
	s.SetLineWidth(1.5)
	s.MoveTo(340, 240)
	s.LineTo(w-120, 240)
	s.Stroke()

	slug := contactSlug(businessName)
	lines := []string{
		"contact@" + slug + ".com",
		"+1 (555) 123-4567",
		"www." + slug + ".com",
		"123 Business Ave, Suite 100",
	}
	for i, line := range lines {
		y := 300 + float64(i)*52
		s.SetColor(colors.Accent)
		s.DrawRectangle(340, y-6, 12, 12)
		s.Fill()
		s.SetColor(colors.Text)
		s.FillText(line, 368, y, 22, false, AlignLeft)
	}
}

// contactSlug lowercases a business name and strips everything but letters and
// digits so it can serve as a placeholder domain.
func contactSlug(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "business"
	}
	return b.String()
}
