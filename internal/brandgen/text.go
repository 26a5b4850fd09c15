package brandgen

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// titleCase capitalizes each word the way the English title caser does.
func titleCase(s string) string { return titleCaser.String(s) }

// sloganTemplates is keyed by the classified style; %s receives the business
// name. The general bucket covers the modern fallback.
var sloganTemplates = map[Style][]string{
	StyleTech: {
		"%s — Innovation at Your Fingertips",
		"%s: Building Tomorrow, Today",
		"Smart Solutions. Real Results. %s.",
	},
	StyleNature: {
		"%s — Naturally Better",
		"%s: Rooted in Quality",
		"Grow With %s",
	},
	StyleLuxury: {
		"%s — Where Excellence Lives",
		"%s: Crafted for the Few",
		"Experience %s. Expect More.",
	},
	StyleCreative: {
		"%s — Ideas Made Visible",
		"%s: Create Without Limits",
		"Imagination, Delivered by %s",
	},
	StyleBold: {
		"%s — Push Beyond",
		"%s: Strength in Every Step",
		"Go Further With %s",
	},
	StyleClassic: {
		"%s — A Tradition of Trust",
		"%s: Timeless by Design",
		"Quality Endures at %s",
	},
	StyleMinimal: {
		"%s — Less, but Better",
		"%s: Simply Essential",
		"Clarity Starts With %s",
	},
	StyleModern: {
		"%s — Your Success, Our Mission",
		"%s: Quality You Can Trust",
		"Moving Forward With %s",
	},
}

var descriptionTemplates = map[Style][]string{
	StyleTech: {
		"%s delivers cutting-edge technology solutions that help businesses work smarter. From intuitive software to reliable infrastructure, we turn complex problems into simple tools.",
		"At %s we build digital products with a focus on performance and usability. Our team combines deep technical expertise with a genuine understanding of what customers need.",
	},
	StyleNature: {
		"%s is committed to natural, sustainable products that are good for you and good for the planet. Every item we offer is sourced responsibly and crafted with care.",
		"At %s we believe wellness starts with nature. We bring you honest, organic products backed by a promise of quality you can feel.",
	},
	StyleLuxury: {
		"%s offers an uncompromising standard of quality for those who expect the finest. Every detail is considered, every product refined.",
		"At %s, luxury is not an extra — it is the starting point. We curate exceptional experiences for discerning clients.",
	},
	StyleCreative: {
		"%s is a creative studio where bold ideas become memorable work. We partner with brands to design, build and tell stories that stick.",
		"At %s we turn imagination into impact. From concept to delivery, our work is crafted to stand out and connect.",
	},
	StyleBold: {
		"%s helps you train harder, move faster and achieve more. Our products and programs are built for people who refuse to settle.",
		"At %s, energy is everything. We bring intensity and dedication to every customer we serve.",
	},
	StyleClassic: {
		"%s has built its reputation on consistency, craftsmanship and service. We honor proven methods while delivering for today's customers.",
		"At %s, tradition meets reliability. Generations of experience stand behind everything we do.",
	},
	StyleMinimal: {
		"%s strips away the unnecessary so what remains truly matters. Clean design, honest pricing, dependable service.",
		"At %s we keep things simple on purpose. Fewer distractions, better results.",
	},
	StyleModern: {
		"%s is dedicated to delivering outstanding value to every customer. We combine modern practices with a personal touch to help your goals become reality.",
		"At %s we pride ourselves on quality, service and results. Whatever you need, we are ready to deliver it well.",
	},
}

var marketingTemplates = []string{
	"Discover what makes %s different. Premium quality, fair prices and service that puts you first. Visit us today and see for yourself!",
	"Ready for something better? %s brings you the quality you deserve at prices you'll love. Don't wait — your upgrade starts now!",
	"Join the customers who already trust %s. Exceptional products, dependable service, real results. Get started today!",
}

// GenerateText produces copy for the prompt. The prompt selects the branch:
// descriptions, slogans, marketing copy, or a generic blurb; description
// keywords win when a prompt mentions several. Output is deterministic for a
// given prompt.
func GenerateText(prompt string, style Style) string {
	name := extractBusinessName(prompt)
	if style == "" {
		style = Classify(name, prompt)
	}
	rng := NewRand(Seed(prompt))
	lower := strings.ToLower(prompt)

	switch {
	case strings.Contains(lower, "description") || strings.Contains(lower, "about"):
		return pickTemplate(descriptionTemplates, style, rng, name)
	case strings.Contains(lower, "slogan") || strings.Contains(lower, "tagline"):
		return pickTemplate(sloganTemplates, style, rng, name)
	case strings.Contains(lower, "marketing") || strings.Contains(lower, "ad copy") || strings.Contains(lower, "advertisement"):
		t := marketingTemplates[rng.Intn(len(marketingTemplates))]
		return fmt.Sprintf(t, name)
	default:
		return fmt.Sprintf("%s — professional %s branding, crafted to help your business make a lasting impression.", name, style)
	}
}

func pickTemplate(table map[Style][]string, style Style, rng *Rand, name string) string {
	ts, ok := table[style]
	if !ok {
		ts = table[StyleModern]
	}
	return fmt.Sprintf(ts[rng.Intn(len(ts))], name)
}

// extractBusinessName pulls a plausible business name out of a free-form
// prompt: the segment after the last " for ", otherwise the first two words.
// The result is title-cased.
func extractBusinessName(prompt string) string {
	p := strings.TrimSpace(prompt)
	if p == "" {
		return "Your Business"
	}
	if idx := strings.LastIndex(strings.ToLower(p), " for "); idx >= 0 {
		tail := strings.TrimSpace(p[idx+len(" for "):])
		tail = strings.TrimRight(tail, ".!?,")
		if tail != "" {
			return titleCase(tail)
		}
	}
	words := strings.Fields(p)
	if len(words) > 2 {
		words = words[:2]
	}
	return titleCase(strings.Join(words, " "))
}
