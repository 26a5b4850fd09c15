package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"ministudio/internal/brandgen"
	"ministudio/internal/domain"
	"ministudio/internal/middleware"
)

type createDesignRequest struct {
	BusinessName       string `json:"businessName"`
	Description        string `json:"description"`
	Style              string `json:"style"`
	IncludeMerchandise bool   `json:"includeMerchandise"`
	IncludeVideo       bool   `json:"includeVideo"`
	IncludeBrandKit    bool   `json:"includeBrandKit"`
}

type designResponse struct {
	ID           string            `json:"id"`
	BusinessName string            `json:"businessName"`
	Description  string            `json:"description,omitempty"`
	Style        string            `json:"style"`
	Logo         string            `json:"logo"`
	Slogan       string            `json:"slogan"`
	Merchandise  map[string]string `json:"merchandise,omitempty"`
	VideoPreview string            `json:"videoPreview,omitempty"`
	BrandKit     json.RawMessage   `json:"brandKit,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
}

func toDesignResponse(d domain.Design) designResponse {
	return designResponse{
		ID:           d.ID,
		BusinessName: d.BusinessName,
		Description:  d.Description,
		Style:        d.Style,
		Logo:         d.Logo,
		Slogan:       d.Slogan,
		Merchandise:  d.Merchandise,
		VideoPreview: d.VideoPreview,
		BrandKit:     d.BrandKit,
		CreatedAt:    d.CreatedAt,
	}
}

// DesignsCreate generates a full branding package and persists it. Every
// design gets a logo and slogan; merchandise, video preview and brand kit are
// generated when requested and the plan allows them.
func (a *App) DesignsCreate(w http.ResponseWriter, r *http.Request) {
	var req createDesignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	req.BusinessName = strings.TrimSpace(req.BusinessName)
	if req.BusinessName == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "businessName is required")
		return
	}

	user := middleware.UserFromContext(r.Context())
	if req.IncludeMerchandise && !user.CanGenerateMerchandise() {
		a.error(w, http.StatusForbidden, "upgrade_required", "merchandise mockups require a pro plan")
		return
	}
	if req.IncludeVideo && !user.CanGenerateVideo() {
		a.error(w, http.StatusForbidden, "upgrade_required", "video previews require a pro plan")
		return
	}
	if req.IncludeBrandKit && !user.CanGenerateBrandKit() {
		a.error(w, http.StatusForbidden, "upgrade_required", "brand kits require a pro plan")
		return
	}

	ctx := r.Context()

	logo, err := a.Studio.Generate(ctx, brandgen.Request{
		Kind:         brandgen.KindLogo,
		BusinessName: req.BusinessName,
		Description:  req.Description,
		Style:        req.Style,
	})
	if err != nil {
		a.generateError(w, r, err)
		return
	}

	slogan, err := a.Studio.Generate(ctx, brandgen.Request{
		Kind:   brandgen.KindText,
		Prompt: "Write a slogan for " + req.BusinessName,
		Style:  string(logo.Style),
	})
	if err != nil {
		a.generateError(w, r, err)
		return
	}

	design := &domain.Design{
		ID:           uuid.NewString(),
		UserID:       user.ID,
		BusinessName: req.BusinessName,
		Description:  req.Description,
		Style:        string(logo.Style),
		Logo:         logo.Content,
		Slogan:       slogan.Content,
		CreatedAt:    time.Now().UTC(),
	}

	if req.IncludeMerchandise {
		design.Merchandise = make(map[string]string, 3)
		for _, merch := range []brandgen.MerchType{brandgen.MerchTShirt, brandgen.MerchBanner, brandgen.MerchCard} {
			art, err := a.Studio.Generate(ctx, brandgen.Request{
				Kind:            brandgen.KindMerchandise,
				BusinessName:    req.BusinessName,
				MerchandiseType: merch,
				Style:           string(logo.Style),
			})
			if err != nil {
				a.generateError(w, r, err)
				return
			}
			design.Merchandise[string(merch)] = art.Content
		}
	}

	if req.IncludeVideo {
		art, err := a.Studio.Generate(ctx, brandgen.Request{
			Kind:         brandgen.KindVideoPreview,
			BusinessName: req.BusinessName,
			Style:        string(logo.Style),
		})
		if err != nil {
			a.generateError(w, r, err)
			return
		}
		design.VideoPreview = art.Content
	}

	if req.IncludeBrandKit {
		art, err := a.Studio.Generate(ctx, brandgen.Request{
			Kind:         brandgen.KindBrandKit,
			BusinessName: req.BusinessName,
			Description:  req.Description,
			Style:        string(logo.Style),
		})
		if err != nil {
			a.generateError(w, r, err)
			return
		}
		kit, err := json.Marshal(art.BrandKit)
		if err != nil {
			a.Log.Error().Err(err).Msg("marshal brand kit")
			a.error(w, http.StatusInternalServerError, "internal", "failed to save design")
			return
		}
		design.BrandKit = kit
	}

	if err := a.Designs.Create(ctx, design); err != nil {
		a.Log.Error().Err(err).Str("design_id", design.ID).Msg("persist design")
		a.error(w, http.StatusInternalServerError, "internal", "failed to save design")
		return
	}

	a.json(w, http.StatusCreated, toDesignResponse(*design))
}

// DesignsList returns the caller's saved designs, newest first.
func (a *App) DesignsList(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, _ = strconv.Atoi(v)
	}

	designs, err := a.Designs.ListByUser(r.Context(), user.ID, limit)
	if err != nil {
		a.Log.Error().Err(err).Msg("list designs")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load designs")
		return
	}

	items := make([]designResponse, 0, len(designs))
	for _, d := range designs {
		items = append(items, toDesignResponse(d))
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

// DesignsGet returns one saved design.
func (a *App) DesignsGet(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	id := chi.URLParam(r, "id")

	design, err := a.Designs.GetByID(r.Context(), user.ID, id)
	if errors.Is(err, domain.ErrNotFound) {
		a.error(w, http.StatusNotFound, "not_found", "design not found")
		return
	}
	if err != nil {
		a.Log.Error().Err(err).Str("design_id", id).Msg("load design")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load design")
		return
	}
	a.json(w, http.StatusOK, toDesignResponse(*design))
}

// DesignsDelete removes one saved design.
func (a *App) DesignsDelete(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	id := chi.URLParam(r, "id")

	err := a.Designs.Delete(r.Context(), user.ID, id)
	if errors.Is(err, domain.ErrNotFound) {
		a.error(w, http.StatusNotFound, "not_found", "design not found")
		return
	}
	if err != nil {
		a.Log.Error().Err(err).Str("design_id", id).Msg("delete design")
		a.error(w, http.StatusInternalServerError, "internal", "failed to delete design")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
