package brandgen

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Kind selects what Generate produces.
type Kind string

const (
	KindLogo         Kind = "logo"
	KindMerchandise  Kind = "merchandise"
	KindVideoPreview Kind = "videoPreview"
	KindText         Kind = "text"
	KindBrandKit     Kind = "brandKit"
)

// MerchType selects a merchandise canvas.
type MerchType string

const (
	MerchTShirt MerchType = "tshirt"
	MerchBanner MerchType = "banner"
	MerchCard   MerchType = "card"
)

// ArtifactType distinguishes image artifacts from text artifacts.
type ArtifactType string

const (
	ArtifactImage ArtifactType = "image"
	ArtifactText  ArtifactType = "text"
)

// Validation errors surfaced to API callers.
var (
	ErrInvalidKind         = errors.New("Invalid generation type")
	ErrMerchTypeRequired   = errors.New("Merchandise type required")
	ErrPromptRequired      = errors.New("Prompt required for text generation")
	ErrBusinessNameMissing = errors.New("Business name required")
	ErrUnknownStyle        = errors.New("unknown style")
	ErrUnsupportedMerch    = errors.New("unsupported merchandise type")
)

// Request describes one generation job.
type Request struct {
	Kind            Kind      `json:"type"`
	BusinessName    string    `json:"businessName"`
	Description     string    `json:"description,omitempty"`
	MerchandiseType MerchType `json:"merchandiseType,omitempty"`
	Prompt          string    `json:"prompt,omitempty"`
	Style           string    `json:"style,omitempty"`
}

// Artifact is the result of a generation job. Image content is a PNG data
// URI; text content is plain UTF-8.
type Artifact struct {
	ID        string       `json:"id"`
	Type      ArtifactType `json:"type"`
	Content   string       `json:"content"`
	Prompt    string       `json:"prompt"`
	Style     Style        `json:"style"`
	CreatedAt time.Time    `json:"createdAt"`
	BrandKit  *BrandKit    `json:"brandKit,omitempty"`
}

// Service is the generation facade. The renderers underneath are pure; the
// service only adds validation, style resolution, artifact bookkeeping and a
// configurable processing delay that stands in for a slower model backend.
type Service struct {
	log      zerolog.Logger
	delayMin time.Duration
	delayMax time.Duration
	now      func() time.Time
	newID    func() string
}

// Option customizes a Service.
type Option func(*Service)

// WithDelay bounds the simulated processing latency. A zero max disables the
// delay, which tests rely on.
func WithDelay(min, max time.Duration) Option {
	return func(s *Service) {
		s.delayMin = min
		s.delayMax = max
	}
}

// WithClock overrides artifact timestamping.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDGenerator overrides artifact ID assignment.
func WithIDGenerator(newID func() string) Option {
	return func(s *Service) { s.newID = newID }
}

// NewService builds a generation facade with a 1-3s simulated latency.
func NewService(log zerolog.Logger, opts ...Option) *Service {
	s := &Service{
		log:      log,
		delayMin: time.Second,
		delayMax: 3 * time.Second,
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate validates the request, resolves the style and dispatches to the
// renderer for the requested kind.
func (s *Service) Generate(ctx context.Context, req Request) (*Artifact, error) {
	if req.Kind != KindText && req.BusinessName == "" {
		return nil, ErrBusinessNameMissing
	}

	style, err := s.resolveStyle(req)
	if err != nil {
		return nil, err
	}

	if err := s.simulateProcessing(ctx); err != nil {
		return nil, err
	}

	started := time.Now()
	art := &Artifact{
		ID:        s.newID(),
		Type:      ArtifactImage,
		Prompt:    req.Prompt,
		Style:     style,
		CreatedAt: s.now(),
	}

	switch req.Kind {
	case KindLogo:
		art.Content, err = renderImage(logoWidth, logoHeight, func(surf Surface) {
			colors := Palette(style)
			drawBackground(surf, colors)
			renderLogoMark(surf, colors, req.BusinessName, style)
			drawNameplate(surf, colors, req.BusinessName)
		})
		if art.Prompt == "" {
			art.Prompt = fmt.Sprintf("%s logo for %s", style, req.BusinessName)
		}

	case KindMerchandise:
		art.Content, err = s.renderMerchandise(req, style)
		if art.Prompt == "" {
			art.Prompt = fmt.Sprintf("%s %s design for %s", style, req.MerchandiseType, req.BusinessName)
		}

	case KindVideoPreview:
		art.Content, err = renderImage(videoWidth, videoHeight, func(surf Surface) {
			drawVideoPreview(surf, Palette(style), req.BusinessName, style)
		})
		if art.Prompt == "" {
			art.Prompt = fmt.Sprintf("%s video preview for %s", style, req.BusinessName)
		}

	case KindBrandKit:
		var kit *BrandKit
		kit, err = buildBrandKit(req.BusinessName, style)
		if err == nil {
			art.BrandKit = kit
			art.Content = kit.Logos.Primary
		}
		if art.Prompt == "" {
			art.Prompt = fmt.Sprintf("%s brand kit for %s", style, req.BusinessName)
		}

	case KindText:
		if req.Prompt == "" {
			return nil, ErrPromptRequired
		}
		art.Type = ArtifactText
		art.Content = GenerateText(req.Prompt, style)

	default:
		return nil, ErrInvalidKind
	}
	if err != nil {
		return nil, err
	}

	s.log.Debug().
		Str("kind", string(req.Kind)).
		Str("style", string(style)).
		Dur("render", time.Since(started)).
		Msg("artifact generated")
	return art, nil
}

func (s *Service) renderMerchandise(req Request, style Style) (string, error) {
	if req.MerchandiseType == "" {
		return "", ErrMerchTypeRequired
	}
	colors := Palette(style)
	switch req.MerchandiseType {
	case MerchTShirt:
		return renderImage(tshirtSize, tshirtSize, func(surf Surface) {
			drawTShirt(surf, colors, req.BusinessName, style)
		})
	case MerchBanner:
		return renderImage(bannerWidth, bannerHeight, func(surf Surface) {
			drawBanner(surf, colors, req.BusinessName, style)
		})
	case MerchCard:
		return renderImage(cardWidth, cardHeight, func(surf Surface) {
			drawCard(surf, colors, req.BusinessName, style)
		})
	default:
		return "", fmt.Errorf("%w %q", ErrUnsupportedMerch, req.MerchandiseType)
	}
}

// resolveStyle honors an explicit style and rejects unknown ones; otherwise
// the classifier decides.
func (s *Service) resolveStyle(req Request) (Style, error) {
	if req.Style != "" {
		style, ok := ParseStyle(req.Style)
		if !ok {
			return "", fmt.Errorf("%w %q", ErrUnknownStyle, req.Style)
		}
		return style, nil
	}
	if req.Kind == KindText {
		return Classify(extractBusinessName(req.Prompt), req.Prompt), nil
	}
	return Classify(req.BusinessName, req.Description), nil
}

// simulateProcessing sleeps for a random duration inside the configured
// bounds, honoring cancellation. The jitter is cosmetic and intentionally not
// drawn from the deterministic per-name stream.
func (s *Service) simulateProcessing(ctx context.Context) error {
	if s.delayMax <= 0 {
		return nil
	}
	d := s.delayMin
	if s.delayMax > s.delayMin {
		d += time.Duration(rand.Int63n(int64(s.delayMax - s.delayMin)))
	}
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func renderImage(w, h int, draw func(Surface)) (string, error) {
	surf := NewImageSurface(w, h)
	draw(surf)
	return pngDataURI(surf.Image())
}
