package domain

import (
	"encoding/json"
	"time"
)

// Design is a saved branding package: the logo and slogan every design gets,
// plus the optional pro artifacts. Image fields hold PNG data URIs, matching
// what the generation facade returns.
type Design struct {
	ID           string
	UserID       string
	BusinessName string
	Description  string
	Style        string
	Logo         string
	Slogan       string
	Merchandise  map[string]string
	VideoPreview string
	BrandKit     json.RawMessage
	CreatedAt    time.Time
}

// HasBrandKit reports whether a brand kit was generated for this design.
func (d Design) HasBrandKit() bool {
	return len(d.BrandKit) > 0 && string(d.BrandKit) != "null"
}
