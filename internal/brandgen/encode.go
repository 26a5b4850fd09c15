package brandgen

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
)

// pngDataURI encodes img as a base64 data URI, the wire format every image
// artifact uses.
func pngDataURI(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode png: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
