package brandgen

import "strings"

// classifierBuckets are checked in order; the first bucket with a keyword hit
// wins. The order is part of the contract: a name containing both "tech" and
// "eco" classifies as tech.
var classifierBuckets = []struct {
	style    Style
	keywords []string
}{
	{StyleTech, []string{
		"tech", "software", "app", "digital", "ai", "data", "cyber",
		"web", "mobile", "startup", "platform", "system",
	}},
	{StyleNature, []string{
		"nature", "organic", "eco", "green", "natural", "bio",
		"garden", "plant", "farm", "health", "wellness", "yoga",
	}},
	{StyleLuxury, []string{
		"luxury", "premium", "elite", "exclusive", "gold", "diamond",
		"royal", "vip", "boutique", "designer", "high-end", "prestige",
	}},
	{StyleCreative, []string{
		"creative", "art", "design", "studio", "agency", "media",
		"film", "music", "photography", "branding", "marketing", "advertising",
	}},
	{StyleBold, []string{
		"sport", "fitness", "gym", "energy", "power", "strength",
		"action", "adventure", "extreme", "dynamic", "bold", "strong",
	}},
	{StyleClassic, []string{
		"classic", "traditional", "heritage", "legacy", "established", "vintage",
		"antique", "timeless", "elegant", "sophisticated", "refined", "formal",
	}},
	{StyleMinimal, []string{
		"minimal", "simple", "clean", "pure", "essential", "basic",
		"modern", "contemporary", "sleek", "streamlined", "efficient", "smart",
	}},
}

// Classify maps a business name and description to one of the eight styles by
// keyword matching. It is pure, case-insensitive and total; when nothing
// matches it falls back to the modern style.
func Classify(name, description string) Style {
	combined := strings.ToLower(name) + " " + strings.ToLower(description)
	for _, bucket := range classifierBuckets {
		for _, kw := range bucket.keywords {
			if strings.Contains(combined, kw) {
				return bucket.style
			}
		}
	}
	return StyleModern
}
