// Command studiogen renders a complete branding asset set for a business
// name into a local directory, without the HTTP service or a database.
//
//	studiogen -name "Acme Coffee" -out ./out
//	studiogen -name "CloudTech" -style tech -kinds logo,kit
package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"ministudio/internal/brandgen"
	"ministudio/internal/storage"
)

func main() {
	var (
		name        = flag.String("name", "", "business name (required)")
		description = flag.String("description", "", "business description, used for style classification")
		style       = flag.String("style", "", "explicit style (modern, classic, minimal, bold, creative, luxury, tech, nature)")
		out         = flag.String("out", "./out", "output directory")
		kinds       = flag.String("kinds", "logo,merch,video,kit,text", "comma-separated asset kinds to render")
	)
	flag.Parse()

	if strings.TrimSpace(*name) == "" {
		flag.Usage()
		os.Exit(2)
	}

	store, err := storage.NewFileStore(*out)
	if err != nil {
		log.Fatalf("init output directory: %v", err)
	}

	studio := brandgen.NewService(zerolog.Nop(), brandgen.WithDelay(0, 0))
	ctx := context.Background()

	wanted := make(map[string]bool)
	for _, k := range strings.Split(*kinds, ",") {
		wanted[strings.TrimSpace(k)] = true
	}

	if wanted["logo"] {
		art := generate(ctx, studio, brandgen.Request{
			Kind: brandgen.KindLogo, BusinessName: *name, Description: *description, Style: *style,
		})
		writePNG(ctx, store, "logo.png", art.Content)
		fmt.Printf("style: %s\n", art.Style)
	}

	if wanted["merch"] {
		for _, merch := range []brandgen.MerchType{brandgen.MerchTShirt, brandgen.MerchBanner, brandgen.MerchCard} {
			art := generate(ctx, studio, brandgen.Request{
				Kind: brandgen.KindMerchandise, BusinessName: *name, Description: *description,
				MerchandiseType: merch, Style: *style,
			})
			writePNG(ctx, store, string(merch)+".png", art.Content)
		}
	}

	if wanted["video"] {
		art := generate(ctx, studio, brandgen.Request{
			Kind: brandgen.KindVideoPreview, BusinessName: *name, Description: *description, Style: *style,
		})
		writePNG(ctx, store, "video-preview.png", art.Content)
	}

	if wanted["kit"] {
		art := generate(ctx, studio, brandgen.Request{
			Kind: brandgen.KindBrandKit, BusinessName: *name, Description: *description, Style: *style,
		})
		kit := art.BrandKit
		writePNG(ctx, store, "kit/logo-primary.png", kit.Logos.Primary)
		writePNG(ctx, store, "kit/logo-secondary.png", kit.Logos.Secondary)
		writePNG(ctx, store, "kit/logo-icon.png", kit.Logos.IconOnly)
		writeText(ctx, store, "kit/guidelines.txt", kit.Guidelines)

		palette, err := json.MarshalIndent(kit.Palette, "", "  ")
		if err != nil {
			log.Fatalf("marshal palette: %v", err)
		}
		writeText(ctx, store, "kit/palette.json", string(palette))
	}

	if wanted["text"] {
		art := generate(ctx, studio, brandgen.Request{
			Kind: brandgen.KindText, Style: *style,
			Prompt: "Write a slogan for " + *name,
		})
		writeText(ctx, store, "slogan.txt", art.Content)
	}

	fmt.Printf("assets written to %s\n", store.BasePath())
}

func generate(ctx context.Context, studio *brandgen.Service, req brandgen.Request) *brandgen.Artifact {
	art, err := studio.Generate(ctx, req)
	if err != nil {
		log.Fatalf("generate %s: %v", req.Kind, err)
	}
	return art
}

func writePNG(ctx context.Context, store *storage.FileStore, key, dataURI string) {
	const prefix = "data:image/png;base64,"
	if !strings.HasPrefix(dataURI, prefix) {
		log.Fatalf("write %s: content is not a png data uri", key)
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURI, prefix))
	if err != nil {
		log.Fatalf("write %s: decode: %v", key, err)
	}
	if _, err := store.Write(ctx, key, raw); err != nil {
		log.Fatalf("write %s: %v", key, err)
	}
}

func writeText(ctx context.Context, store *storage.FileStore, key, content string) {
	if _, err := store.Write(ctx, key, []byte(content)); err != nil {
		log.Fatalf("write %s: %v", key, err)
	}
}
