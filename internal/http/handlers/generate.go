package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"ministudio/internal/brandgen"
	"ministudio/internal/domain"
	"ministudio/internal/middleware"
)

// Generate runs a single-artifact generation job for the caller.
func (a *App) Generate(w http.ResponseWriter, r *http.Request) {
	var req brandgen.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	user := middleware.UserFromContext(r.Context())
	if err := checkEntitlement(user, req.Kind); err != nil {
		a.error(w, http.StatusForbidden, "upgrade_required", "this generation type requires a pro plan")
		return
	}

	artifact, err := a.Studio.Generate(r.Context(), req)
	if err != nil {
		a.generateError(w, r, err)
		return
	}
	a.json(w, http.StatusOK, artifact)
}

// checkEntitlement gates pro artifact kinds. Logos and text are free.
func checkEntitlement(user domain.User, kind brandgen.Kind) error {
	switch kind {
	case brandgen.KindMerchandise:
		if !user.CanGenerateMerchandise() {
			return domain.ErrPlanRequired
		}
	case brandgen.KindVideoPreview:
		if !user.CanGenerateVideo() {
			return domain.ErrPlanRequired
		}
	case brandgen.KindBrandKit:
		if !user.CanGenerateBrandKit() {
			return domain.ErrPlanRequired
		}
	}
	return nil
}

func (a *App) generateError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, brandgen.ErrInvalidKind),
		errors.Is(err, brandgen.ErrMerchTypeRequired),
		errors.Is(err, brandgen.ErrPromptRequired),
		errors.Is(err, brandgen.ErrBusinessNameMissing),
		errors.Is(err, brandgen.ErrUnknownStyle),
		errors.Is(err, brandgen.ErrUnsupportedMerch):
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		a.error(w, http.StatusRequestTimeout, "timeout", "generation cancelled")
	default:
		a.Log.Error().Err(err).Str("path", r.URL.Path).Msg("generation failed")
		a.error(w, http.StatusInternalServerError, "internal", "generation failed")
	}
}
