package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"ministudio/internal/brandgen"
	"ministudio/internal/domain"
)

// App bundles the dependencies the HTTP handlers need.
type App struct {
	Log     zerolog.Logger
	Studio  *brandgen.Service
	Designs domain.DesignRepository

	// StorageMode is reported by the health endpoint: "postgres" when the
	// repository is database-backed, "archive" on the local fallback.
	StorageMode string
}

// NewApp constructs the handler container.
func NewApp(log zerolog.Logger, studio *brandgen.Service, designs domain.DesignRepository, storageMode string) *App {
	return &App{Log: log, Studio: studio, Designs: designs, StorageMode: storageMode}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, map[string]any{
		"error": map[string]string{"code": code, "message": message},
	})
}
