package handlers

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"net/http"
	"testing"
)

func TestDesignsExport(t *testing.T) {
	repo := newMemDesignRepo()
	router := testRouter(t, repo)

	rr := doJSON(t, router, http.MethodPost, "/v1/designs", map[string]any{
		"businessName":       "Acme Coffee",
		"includeMerchandise": true,
		"includeBrandKit":    true,
	}, proHeaders)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create: status = %d, body %s", rr.Code, rr.Body.String())
	}
	var created designResponse
	if err := json.NewDecoder(rr.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	rr = doJSON(t, router, http.MethodGet, "/v1/designs/"+created.ID+"/export", nil, proHeaders)
	if rr.Code != http.StatusOK {
		t.Fatalf("export: status = %d, body %s", rr.Code, rr.Body.String())
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/zip" {
		t.Fatalf("content type = %q", ct)
	}

	zr, err := zip.NewReader(bytes.NewReader(rr.Body.Bytes()), int64(rr.Body.Len()))
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	found := make(map[string]bool)
	for _, f := range zr.File {
		found[f.Name] = true
	}
	for _, want := range []string{
		"logo.png", "slogan.txt",
		"merchandise/tshirt.png", "merchandise/banner.png", "merchandise/card.png",
		"kit/logo-primary.png", "kit/guidelines.txt",
	} {
		if !found[want] {
			t.Fatalf("archive missing %s; has %v", want, found)
		}
	}
}

func TestDesignsExportNotFound(t *testing.T) {
	router := testRouter(t, newMemDesignRepo())
	rr := doJSON(t, router, http.MethodGet, "/v1/designs/nope/export", nil, proHeaders)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
}
