package brandgen

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Font identifiers reported in brand kits. The raster pipeline draws with the
// bundled Go fonts; these names describe the intended brand typography.
const (
	FontPrimary   = "Inter"
	FontSecondary = "Source Sans Pro"
)

// The parsed fonts are immutable and shared across all surfaces. Faces built
// from them carry a mutable glyph buffer and must stay owned by one surface.
var (
	fontOnce    sync.Once
	regularFont *opentype.Font
	boldFont    *opentype.Font
)

type faceKey struct {
	size float64
	bold bool
}

func loadFonts() {
	var err error
	regularFont, err = opentype.Parse(goregular.TTF)
	if err != nil {
		panic(fmt.Sprintf("brandgen: parse regular font: %v", err))
	}
	boldFont, err = opentype.Parse(gobold.TTF)
	if err != nil {
		panic(fmt.Sprintf("brandgen: parse bold font: %v", err))
	}
}

// newFontFace builds a fresh face for the requested size and weight. The
// bundled Go fonts ship with the toolchain module, so face construction can
// only fail on programmer error.
func newFontFace(size float64, bold bool) font.Face {
	fontOnce.Do(loadFonts)

	src := regularFont
	if bold {
		src = boldFont
	}
	face, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		panic(fmt.Sprintf("brandgen: create font face: %v", err))
	}
	return face
}
