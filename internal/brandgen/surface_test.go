package brandgen

import (
	"fmt"
	"image/color"
	"sync"
	"testing"
)

// recordSurface captures drawing primitives as strings so renderer behavior
// can be checked without rasterizing.
type recordSurface struct {
	w, h float64
	ops  []string
}

func newRecordSurface(w, h float64) *recordSurface {
	return &recordSurface{w: w, h: h}
}

func (r *recordSurface) op(format string, args ...any) {
	r.ops = append(r.ops, fmt.Sprintf(format, args...))
}

func (r *recordSurface) Size() (float64, float64) { return r.w, r.h }

func (r *recordSurface) Push()                  { r.op("push") }
func (r *recordSurface) Pop()                   { r.op("pop") }
func (r *recordSurface) Translate(dx, dy float64) { r.op("translate %.3f %.3f", dx, dy) }
func (r *recordSurface) Rotate(rad float64)     { r.op("rotate %.3f", rad) }
func (r *recordSurface) Scale(sx, sy float64)   { r.op("scale %.3f %.3f", sx, sy) }

func (r *recordSurface) MoveTo(x, y float64) { r.op("moveto %.3f %.3f", x, y) }
func (r *recordSurface) LineTo(x, y float64) { r.op("lineto %.3f %.3f", x, y) }
func (r *recordSurface) ClosePath()          { r.op("close") }
func (r *recordSurface) Fill()               { r.op("fill") }
func (r *recordSurface) Stroke()             { r.op("stroke") }

func (r *recordSurface) SetColor(c color.RGBA)  { r.op("color %02x%02x%02x%02x", c.R, c.G, c.B, c.A) }
func (r *recordSurface) SetLineWidth(w float64) { r.op("linewidth %.3f", w) }

func (r *recordSurface) SetLinearGradient(x0, y0, x1, y1 float64, stops ...Stop) {
	r.op("lineargrad %.3f %.3f %.3f %.3f n=%d", x0, y0, x1, y1, len(stops))
}

func (r *recordSurface) SetRadialGradient(cx, cy, rad float64, stops ...Stop) {
	r.op("radialgrad %.3f %.3f %.3f n=%d", cx, cy, rad, len(stops))
}

func (r *recordSurface) DrawCircle(cx, cy, rad float64) { r.op("circle %.3f %.3f %.3f", cx, cy, rad) }
func (r *recordSurface) DrawEllipse(cx, cy, rx, ry float64) {
	r.op("ellipse %.3f %.3f %.3f %.3f", cx, cy, rx, ry)
}
func (r *recordSurface) DrawRectangle(x, y, w, h float64) {
	r.op("rect %.3f %.3f %.3f %.3f", x, y, w, h)
}
func (r *recordSurface) DrawRoundedRectangle(x, y, w, h, rad float64) {
	r.op("roundrect %.3f %.3f %.3f %.3f %.3f", x, y, w, h, rad)
}

func (r *recordSurface) FillText(s string, x, y, size float64, bold bool, align Align) {
	r.op("text %q %.3f %.3f %.3f %v %d", s, x, y, size, bold, align)
}

func (r *recordSurface) MeasureText(s string, size float64, bold bool) float64 {
	// Stable approximation keeps layout code deterministic in tests.
	return float64(len(s)) * size * 0.6
}

var _ Surface = (*recordSurface)(nil)

func logoOps(name string, style Style) []string {
	s := newRecordSurface(logoWidth, logoHeight)
	colors := Palette(style)
	drawBackground(s, colors)
	renderLogoMark(s, colors, name, style)
	drawNameplate(s, colors, name)
	return s.ops
}

func TestLogoRenderDeterministic(t *testing.T) {
	for _, style := range Styles() {
		a := logoOps("Acme Coffee", style)
		b := logoOps("Acme Coffee", style)
		if len(a) != len(b) {
			t.Fatalf("style %s: op counts differ: %d vs %d", style, len(a), len(b))
		}
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("style %s: op %d differs: %q vs %q", style, i, a[i], b[i])
			}
		}
	}
}

func TestLogoRenderVariesByName(t *testing.T) {
	a := logoOps("Acme Coffee", StyleModern)
	b := logoOps("Blue Harbor", StyleModern)
	same := len(a) == len(b)
	if same {
		for i := range a {
			if a[i] != b[i] {
				same = false
				break
			}
		}
	}
	if same {
		t.Fatal("different names produced identical draw sequences")
	}
}

func TestImageSurfaceConcurrentRenders(t *testing.T) {
	// Surfaces rendering in parallel share only the parsed fonts; each owns
	// its font faces, so simultaneous glyph loads must neither race nor
	// change the output.
	render := func() string {
		surf := NewImageSurface(logoWidth, logoHeight)
		colors := Palette(StyleTech)
		drawBackground(surf, colors)
		renderLogoMark(surf, colors, "CloudTech Solutions", StyleTech)
		drawNameplate(surf, colors, "CloudTech Solutions")
		uri, err := pngDataURI(surf.Image())
		if err != nil {
			t.Errorf("encode: %v", err)
		}
		return uri
	}

	want := render()

	results := make([]string, 8)
	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = render()
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		if got != want {
			t.Fatalf("render %d diverged under concurrency", i)
		}
	}
}

func TestMarkEmbeddable(t *testing.T) {
	// The mark must reseed from the name, so an embedded copy (t-shirt chest,
	// card block) matches the standalone one op for op.
	standalone := newRecordSurface(logoWidth, logoHeight)
	drawMark(standalone, Palette(StyleLuxury), "Acme Coffee", StyleLuxury)

	embedded := newRecordSurface(tshirtSize, tshirtSize)
	drawMark(embedded, Palette(StyleLuxury), "Acme Coffee", StyleLuxury)

	if len(standalone.ops) != len(embedded.ops) {
		t.Fatalf("op counts differ: %d vs %d", len(standalone.ops), len(embedded.ops))
	}
	for i := range standalone.ops {
		if standalone.ops[i] != embedded.ops[i] {
			t.Fatalf("op %d differs: %q vs %q", i, standalone.ops[i], embedded.ops[i])
		}
	}
}
