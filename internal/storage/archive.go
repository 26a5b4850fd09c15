package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"ministudio/internal/domain"
)

// DesignArchive persists designs as JSON documents on a FileStore. It is the
// fallback used when no database is configured: every design still survives a
// restart, just without query capabilities beyond list and get.
type DesignArchive struct {
	store *FileStore
}

// NewDesignArchive wraps a FileStore as a domain.DesignRepository.
func NewDesignArchive(store *FileStore) *DesignArchive {
	return &DesignArchive{store: store}
}

type archiveDoc struct {
	ID           string            `json:"id"`
	UserID       string            `json:"userId"`
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

func archiveKey(userID, id string) string {
	return fmt.Sprintf("designs/%s/%s.json", userID, id)
}

// Create writes the design document.
func (a *DesignArchive) Create(ctx context.Context, d *domain.Design) error {
	data, err := json.MarshalIndent(archiveDoc{
		ID:           d.ID,
		UserID:       d.UserID,
		BusinessName: d.BusinessName,
		Description:  d.Description,
		Style:        d.Style,
		Logo:         d.Logo,
		Slogan:       d.Slogan,
		Merchandise:  d.Merchandise,
		VideoPreview: d.VideoPreview,
		BrandKit:     d.BrandKit,
		CreatedAt:    d.CreatedAt,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("archive: marshal design: %w", err)
	}
	if _, err := a.store.Write(ctx, archiveKey(d.UserID, d.ID), data); err != nil {
		return err
	}
	return nil
}

// GetByID loads one design document.
func (a *DesignArchive) GetByID(ctx context.Context, userID, id string) (*domain.Design, error) {
	data, err := a.store.Read(ctx, archiveKey(userID, id))
	if err != nil {
		return nil, domain.ErrNotFound
	}
	return decodeArchiveDoc(data)
}

// ListByUser loads every design for the user, newest first.
func (a *DesignArchive) ListByUser(ctx context.Context, userID string, limit int) ([]domain.Design, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	entries, err := a.store.listDir("designs/" + userID)
	if err != nil {
		return nil, err
	}

	var designs []domain.Design
	for _, name := range entries {
		if !strings.HasSuffix(name, ".json") {
			continue
		}
		data, err := a.store.Read(ctx, fmt.Sprintf("designs/%s/%s", userID, name))
		if err != nil {
			continue
		}
		d, err := decodeArchiveDoc(data)
		if err != nil {
			continue
		}
		designs = append(designs, *d)
	}
	sort.Slice(designs, func(i, j int) bool {
		return designs[i].CreatedAt.After(designs[j].CreatedAt)
	})
	if len(designs) > limit {
		designs = designs[:limit]
	}
	return designs, nil
}

// Delete removes the design document.
func (a *DesignArchive) Delete(ctx context.Context, userID, id string) error {
	key := archiveKey(userID, id)
	if _, err := a.store.Read(ctx, key); err != nil {
		return domain.ErrNotFound
	}
	return a.store.Remove(ctx, key)
}

func decodeArchiveDoc(data []byte) (*domain.Design, error) {
	var doc archiveDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("archive: unmarshal design: %w", err)
	}
	return &domain.Design{
		ID:           doc.ID,
		UserID:       doc.UserID,
		BusinessName: doc.BusinessName,
		Description:  doc.Description,
		Style:        doc.Style,
		Logo:         doc.Logo,
		Slogan:       doc.Slogan,
		Merchandise:  doc.Merchandise,
		VideoPreview: doc.VideoPreview,
		BrandKit:     doc.BrandKit,
		CreatedAt:    doc.CreatedAt,
	}, nil
}
