package brandgen

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func testService(t *testing.T) *Service {
	t.Helper()
	n := 0
	return NewService(zerolog.Nop(),
		WithDelay(0, 0),
		WithClock(func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }),
		WithIDGenerator(func() string { n++; return "artifact-1" }),
	)
}

func decodeDataURI(t *testing.T, uri string) []byte {
	t.Helper()
	const prefix = "data:image/png;base64,"
	if !strings.HasPrefix(uri, prefix) {
		t.Fatalf("content is not a png data uri: %.40q", uri)
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, prefix))
	if err != nil {
		t.Fatalf("decode base64: %v", err)
	}
	return raw
}

func TestGenerateLogo(t *testing.T) {
	svc := testService(t)
	art, err := svc.Generate(context.Background(), Request{
		Kind:         KindLogo,
		BusinessName: "CloudTech Solutions",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if art.ID != "artifact-1" || art.Type != ArtifactImage {
		t.Fatalf("unexpected artifact metadata: %+v", art)
	}
	if art.Style != StyleTech {
		t.Fatalf("style = %s, want tech (classified)", art.Style)
	}
	if art.CreatedAt != time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) {
		t.Fatalf("createdAt = %v", art.CreatedAt)
	}

	raw := decodeDataURI(t, art.Content)
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 800 || b.Dy() != 600 {
		t.Fatalf("logo canvas = %dx%d, want 800x600", b.Dx(), b.Dy())
	}
}

func TestGenerateLogoReproducible(t *testing.T) {
	svc := testService(t)
	req := Request{Kind: KindLogo, BusinessName: "Acme Coffee", Style: "luxury"}

	a, err := svc.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("first generate: %v", err)
	}
	b, err := svc.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("second generate: %v", err)
	}
	if a.Content != b.Content {
		t.Fatal("same name and style produced different pixels")
	}
}

func TestGenerateMerchandiseDimensions(t *testing.T) {
	svc := testService(t)
	cases := []struct {
		merch MerchType
		w, h  int
	}{
		{MerchTShirt, 800, 800},
		{MerchBanner, 1200, 630},
		{MerchCard, 1050, 600},
	}
	for _, tc := range cases {
		art, err := svc.Generate(context.Background(), Request{
			Kind:            KindMerchandise,
			BusinessName:    "Acme Coffee",
			MerchandiseType: tc.merch,
		})
		if err != nil {
			t.Fatalf("%s: %v", tc.merch, err)
		}
		img, err := png.Decode(bytes.NewReader(decodeDataURI(t, art.Content)))
		if err != nil {
			t.Fatalf("%s: decode png: %v", tc.merch, err)
		}
		b := img.Bounds()
		if b.Dx() != tc.w || b.Dy() != tc.h {
			t.Fatalf("%s canvas = %dx%d, want %dx%d", tc.merch, b.Dx(), b.Dy(), tc.w, tc.h)
		}
	}
}

func TestGenerateVideoPreview(t *testing.T) {
	svc := testService(t)
	art, err := svc.Generate(context.Background(), Request{
		Kind:         KindVideoPreview,
		BusinessName: "Acme Coffee",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(decodeDataURI(t, art.Content)))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 1200 || b.Dy() != 630 {
		t.Fatalf("video canvas = %dx%d, want 1200x630", b.Dx(), b.Dy())
	}
}

func TestGenerateText(t *testing.T) {
	svc := testService(t)
	art, err := svc.Generate(context.Background(), Request{
		Kind:   KindText,
		Prompt: "Write a slogan for Acme Coffee",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if art.Type != ArtifactText {
		t.Fatalf("type = %s, want text", art.Type)
	}
	if !strings.Contains(art.Content, "Acme Coffee") {
		t.Fatalf("text missing business name: %q", art.Content)
	}
}

func TestGenerateBrandKit(t *testing.T) {
	svc := testService(t)
	art, err := svc.Generate(context.Background(), Request{
		Kind:         KindBrandKit,
		BusinessName: "Acme Coffee",
		Style:        "creative",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	kit := art.BrandKit
	if kit == nil {
		t.Fatal("brand kit artifact missing kit")
	}
	for name, uri := range map[string]string{
		"primary":   kit.Logos.Primary,
		"secondary": kit.Logos.Secondary,
		"iconOnly":  kit.Logos.IconOnly,
	} {
		decodeDataURI(t, uri)
		_ = name
	}
	if len(kit.Palette.Primary) != 3 || len(kit.Palette.Secondary) != 3 ||
		len(kit.Palette.Accent) != 2 || len(kit.Palette.Neutral) != 3 {
		t.Fatalf("unexpected palette bucket sizes: %+v", kit.Palette)
	}
	if kit.Typography.Primary != FontPrimary || kit.Typography.Secondary != FontSecondary {
		t.Fatalf("unexpected typography: %+v", kit.Typography)
	}
	if !strings.Contains(kit.Guidelines, "Acme Coffee") {
		t.Fatal("guidelines missing business name")
	}
}

func TestGenerateValidation(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	if _, err := svc.Generate(ctx, Request{Kind: "hologram", BusinessName: "Acme"}); !errors.Is(err, ErrInvalidKind) {
		t.Fatalf("unknown kind: %v", err)
	}
	if _, err := svc.Generate(ctx, Request{Kind: KindMerchandise, BusinessName: "Acme"}); !errors.Is(err, ErrMerchTypeRequired) {
		t.Fatalf("missing merch type: %v", err)
	}
	if _, err := svc.Generate(ctx, Request{Kind: KindText}); !errors.Is(err, ErrPromptRequired) {
		t.Fatalf("missing prompt: %v", err)
	}
	if _, err := svc.Generate(ctx, Request{Kind: KindLogo}); !errors.Is(err, ErrBusinessNameMissing) {
		t.Fatalf("missing name: %v", err)
	}
	if _, err := svc.Generate(ctx, Request{Kind: KindLogo, BusinessName: "Acme", Style: "vaporwave"}); err == nil {
		t.Fatal("unknown style should be rejected")
	}
	if _, err := svc.Generate(ctx, Request{
		Kind: KindMerchandise, BusinessName: "Acme", MerchandiseType: "mug",
	}); err == nil {
		t.Fatal("unknown merchandise type should be rejected")
	}
}

func TestGenerateErrorMessages(t *testing.T) {
	// Messages are part of the API contract.
	if ErrInvalidKind.Error() != "Invalid generation type" {
		t.Fatalf("invalid kind message: %q", ErrInvalidKind.Error())
	}
	if ErrMerchTypeRequired.Error() != "Merchandise type required" {
		t.Fatalf("merch type message: %q", ErrMerchTypeRequired.Error())
	}
	if ErrPromptRequired.Error() != "Prompt required for text generation" {
		t.Fatalf("prompt message: %q", ErrPromptRequired.Error())
	}
}

func TestGenerateHonorsCancellation(t *testing.T) {
	svc := NewService(zerolog.Nop(), WithDelay(time.Minute, time.Minute+time.Second))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := svc.Generate(ctx, Request{Kind: KindLogo, BusinessName: "Acme"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}
