package brandgen

import "image/color"

// Video preview canvas dimensions.
const (
	videoWidth  = 1200
	videoHeight = 630
)

// drawVideoPreview renders a still that looks like a paused brand video: a
// textured gradient backdrop, a play control and a duration badge. Canvas is
// 1200x630.
func drawVideoPreview(s Surface, colors ColorScheme, businessName string, style Style) {
	w, h := s.Size()
	rng := NewRand(Seed(businessName + "video"))

	s.SetLinearGradient(0, 0, w, h,
		Stop{0, colors.Primary},
		Stop{0.5, colors.Secondary},
		Stop{1, colors.Accent},
	)
	s.DrawRectangle(0, 0, w, h)
	s.Fill()

	// Diamond lattice texture.
	s.SetColor(color.RGBA{0xff, 0xff, 0xff, 0x0a})
	for x := 0.0; x < w; x += 100 {
		for y := 0.0; y < h; y += 100 {
			s.MoveTo(x+50, y)
			s.LineTo(x+100, y+50)
			s.LineTo(x+50, y+100)
			s.LineTo(x, y+50)
			s.ClosePath()
			s.Fill()
		}
	}

	// Play control: outer ring, inner disc, triangle glyph.
	cx, cy := w/2, h*0.42
	s.SetRadialGradient(cx, cy, 140,
		Stop{0, color.RGBA{0xff, 0xff, 0xff, 0x4d}},
		Stop{1, color.RGBA{0xff, 0xff, 0xff, 0x00}},
	)
	s.DrawCircle(cx, cy, 140)
	s.Fill()
	s.SetColor(color.RGBA{0xff, 0xff, 0xff, 0xe6})
	s.DrawCircle(cx, cy, 120)
	s.Fill()

	s.SetColor(colors.Primary)
	s.MoveTo(cx-35, cy-55)
	s.LineTo(cx+60, cy)
	s.LineTo(cx-35, cy+55)
	s.ClosePath()
	s.Fill()

	// Corner frames and a floating accent vary per name.
	s.SetColor(color.RGBA{0xff, 0xff, 0xff, 0x66})
	s.SetLineWidth(4)
	s.MoveTo(60, 120)
	s.LineTo(60, 60)
	s.LineTo(120, 60)
	s.Stroke()
	s.MoveTo(w-120, 60)
	s.LineTo(w-60, 60)
	s.LineTo(w-60, 120)
	s.Stroke()

	s.SetColor(color.RGBA{0xff, 0xff, 0xff, 0x33})
	s.DrawCircle(w*0.15+rng.Float64()*w*0.1, h*0.75, 20+rng.Float64()*20)
	s.Fill()

	s.SetColor(color.RGBA{0xff, 0xff, 0xff, 0xff})
	s.FillText(businessName, w/2, h*0.72, 56, true, AlignCenter)
	s.SetColor(color.RGBA{0xff, 0xff, 0xff, 0xcc})
	s.FillText(titleCase(style.String())+" Video Preview", w/2, h*0.82, 28, false, AlignCenter)
	s.SetColor(color.RGBA{0xff, 0xff, 0xff, 0x99})
	s.FillText("Click to Play • Professional Quality", w/2, h*0.90, 18, false, AlignCenter)

	// Duration badge.
	s.SetColor(color.RGBA{0x00, 0x00, 0x00, 0x99})
	s.DrawRoundedRectangle(w-150, h-70, 90, 40, 8)
	s.Fill()
	s.SetColor(color.RGBA{0xff, 0xff, 0xff, 0xff})
	s.FillText("2:45", w-105, h-50, 22, true, AlignCenter)
}
