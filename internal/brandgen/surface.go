package brandgen

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// Align positions text relative to its anchor point.
type Align int

const (
	AlignCenter Align = iota
	AlignLeft
	AlignRight
)

// Stop is a single gradient color stop at Pos in [0, 1].
type Stop struct {
	Pos   float64
	Color color.RGBA
}

// Surface is the minimal drawing capability the renderers need. Keeping the
// renderers off a concrete graphics backend lets tests record primitives
// headlessly and keeps the pixel pipeline swappable.
type Surface interface {
	// Size reports the canvas dimensions in pixels.
	Size() (w, h float64)

	Push()
	Pop()
	Translate(dx, dy float64)
	Rotate(radians float64)
	Scale(sx, sy float64)

	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	Fill()
	Stroke()

	SetColor(c color.RGBA)
	SetLineWidth(w float64)
	SetLinearGradient(x0, y0, x1, y1 float64, stops ...Stop)
	SetRadialGradient(cx, cy, r float64, stops ...Stop)

	DrawCircle(cx, cy, r float64)
	DrawEllipse(cx, cy, rx, ry float64)
	DrawRectangle(x, y, w, h float64)
	DrawRoundedRectangle(x, y, w, h, r float64)

	FillText(s string, x, y, size float64, bold bool, align Align)
	MeasureText(s string, size float64, bold bool) float64
}

// ImageSurface renders onto an in-memory raster via fogleman/gg.
//
// Each surface caches its own font faces: opentype faces buffer glyph data on
// every draw and are not safe to share between surfaces rendering in
// parallel. The parsed fonts behind them are immutable and shared.
type ImageSurface struct {
	dc    *gg.Context
	w     float64
	h     float64
	faces map[faceKey]font.Face
}

// NewImageSurface allocates a raster surface of the given pixel dimensions.
func NewImageSurface(width, height int) *ImageSurface {
	return &ImageSurface{
		dc:    gg.NewContext(width, height),
		w:     float64(width),
		h:     float64(height),
		faces: make(map[faceKey]font.Face),
	}
}

func (s *ImageSurface) face(size float64, bold bool) font.Face {
	key := faceKey{size: size, bold: bold}
	if f, ok := s.faces[key]; ok {
		return f
	}
	f := newFontFace(size, bold)
	s.faces[key] = f
	return f
}

// Image exposes the rendered raster for encoding.
func (s *ImageSurface) Image() image.Image { return s.dc.Image() }

func (s *ImageSurface) Size() (float64, float64) { return s.w, s.h }

func (s *ImageSurface) Push() { s.dc.Push() }
func (s *ImageSurface) Pop()  { s.dc.Pop() }

func (s *ImageSurface) Translate(dx, dy float64) { s.dc.Translate(dx, dy) }
func (s *ImageSurface) Rotate(radians float64)   { s.dc.Rotate(radians) }
func (s *ImageSurface) Scale(sx, sy float64)     { s.dc.Scale(sx, sy) }

func (s *ImageSurface) MoveTo(x, y float64) { s.dc.MoveTo(x, y) }
func (s *ImageSurface) LineTo(x, y float64) { s.dc.LineTo(x, y) }
func (s *ImageSurface) ClosePath()          { s.dc.ClosePath() }
func (s *ImageSurface) Fill()               { s.dc.Fill() }
func (s *ImageSurface) Stroke()             { s.dc.Stroke() }

func (s *ImageSurface) SetColor(c color.RGBA)   { s.dc.SetColor(c) }
func (s *ImageSurface) SetLineWidth(w float64)  { s.dc.SetLineWidth(w) }

func (s *ImageSurface) SetLinearGradient(x0, y0, x1, y1 float64, stops ...Stop) {
	grad := gg.NewLinearGradient(x0, y0, x1, y1)
	for _, stop := range stops {
		grad.AddColorStop(stop.Pos, stop.Color)
	}
	s.dc.SetFillStyle(grad)
}

func (s *ImageSurface) SetRadialGradient(cx, cy, r float64, stops ...Stop) {
	grad := gg.NewRadialGradient(cx, cy, 0, cx, cy, r)
	for _, stop := range stops {
		grad.AddColorStop(stop.Pos, stop.Color)
	}
	s.dc.SetFillStyle(grad)
}

func (s *ImageSurface) DrawCircle(cx, cy, r float64)     { s.dc.DrawCircle(cx, cy, r) }
func (s *ImageSurface) DrawEllipse(cx, cy, rx, ry float64) { s.dc.DrawEllipse(cx, cy, rx, ry) }
func (s *ImageSurface) DrawRectangle(x, y, w, h float64) { s.dc.DrawRectangle(x, y, w, h) }

func (s *ImageSurface) DrawRoundedRectangle(x, y, w, h, r float64) {
	s.dc.DrawRoundedRectangle(x, y, w, h, r)
}

func (s *ImageSurface) FillText(text string, x, y, size float64, bold bool, align Align) {
	s.dc.SetFontFace(s.face(size, bold))
	ax := 0.5
	switch align {
	case AlignLeft:
		ax = 0
	case AlignRight:
		ax = 1
	}
	s.dc.DrawStringAnchored(text, x, y, ax, 0.35)
}

func (s *ImageSurface) MeasureText(text string, size float64, bold bool) float64 {
	s.dc.SetFontFace(s.face(size, bold))
	w, _ := s.dc.MeasureString(text)
	return w
}

var _ Surface = (*ImageSurface)(nil)
