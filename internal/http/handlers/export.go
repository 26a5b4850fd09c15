package handlers

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"ministudio/internal/brandgen"
	"ministudio/internal/domain"
	"ministudio/internal/middleware"
	"ministudio/pkg/zip"
)

// DesignsExport streams a zip archive with every asset of a saved design.
func (a *App) DesignsExport(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	id := chi.URLParam(r, "id")

	design, err := a.Designs.GetByID(r.Context(), user.ID, id)
	if errors.Is(err, domain.ErrNotFound) {
		a.error(w, http.StatusNotFound, "not_found", "design not found")
		return
	}
	if err != nil {
		a.Log.Error().Err(err).Str("design_id", id).Msg("load design for export")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load design")
		return
	}

	assets := []zip.Asset{
		{Filename: "logo.png", Data: decodePNGDataURI(design.Logo)},
		{Filename: "slogan.txt", Data: []byte(design.Slogan)},
	}
	for kind, uri := range design.Merchandise {
		assets = append(assets, zip.Asset{
			Filename: fmt.Sprintf("merchandise/%s.png", kind),
			Data:     decodePNGDataURI(uri),
		})
	}
	if design.VideoPreview != "" {
		assets = append(assets, zip.Asset{
			Filename: "video-preview.png",
			Data:     decodePNGDataURI(design.VideoPreview),
		})
	}
	if design.HasBrandKit() {
		var kit brandgen.BrandKit
		if err := json.Unmarshal(design.BrandKit, &kit); err == nil {
			assets = append(assets,
				zip.Asset{Filename: "kit/logo-primary.png", Data: decodePNGDataURI(kit.Logos.Primary)},
				zip.Asset{Filename: "kit/logo-secondary.png", Data: decodePNGDataURI(kit.Logos.Secondary)},
				zip.Asset{Filename: "kit/logo-icon.png", Data: decodePNGDataURI(kit.Logos.IconOnly)},
				zip.Asset{Filename: "kit/guidelines.txt", Data: []byte(kit.Guidelines)},
			)
		}
	}

	bundle, err := zip.Bundle(assets)
	if err != nil {
		a.Log.Error().Err(err).Str("design_id", id).Msg("bundle design")
		a.error(w, http.StatusInternalServerError, "internal", "failed to export design")
		return
	}

	filename := strings.ReplaceAll(strings.ToLower(design.BusinessName), " ", "-")
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename+"-brand.zip"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(bundle)
}

// decodePNGDataURI returns the raw bytes of a png data URI, or nil when the
// content is not one.
func decodePNGDataURI(uri string) []byte {
	const prefix = "data:image/png;base64,"
	if !strings.HasPrefix(uri, prefix) {
		return nil
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, prefix))
	if err != nil {
		return nil
	}
	return raw
}
