package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ministudio/internal/domain"
)

// DesignRepositoryPG implements domain.DesignRepository using PostgreSQL.
type DesignRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewDesignRepository constructs a new design repository instance.
func NewDesignRepository(pool *pgxpool.Pool) *DesignRepositoryPG {
	return &DesignRepositoryPG{pool: pool}
}

// Create persists a design. Merchandise and brand kit are stored as JSONB.
func (r *DesignRepositoryPG) Create(ctx context.Context, d *domain.Design) error {
	merch, err := json.Marshal(d.Merchandise)
	if err != nil {
		return fmt.Errorf("marshal merchandise: %w", err)
	}
	var kit []byte
	if d.HasBrandKit() {
		kit = d.BrandKit
	}

	_, err = r.pool.Exec(ctx, `
INSERT INTO designs (id, user_id, business_name, description, style, logo, slogan, merchandise, video_preview, brand_kit, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
`, d.ID, d.UserID, d.BusinessName, d.Description, d.Style, d.Logo, d.Slogan, merch, d.VideoPreview, kit, d.CreatedAt)
	return err
}

// GetByID returns one design scoped to its owner.
func (r *DesignRepositoryPG) GetByID(ctx context.Context, userID, id string) (*domain.Design, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, user_id, business_name, description, style, logo, slogan, merchandise, video_preview, brand_kit, created_at
FROM designs
WHERE id = $1 AND user_id = $2;
`, id, userID)

	d, err := scanDesign(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

// ListByUser returns the user's designs, newest first.
func (r *DesignRepositoryPG) ListByUser(ctx context.Context, userID string, limit int) ([]domain.Design, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
SELECT id, user_id, business_name, description, style, logo, slogan, merchandise, video_preview, brand_kit, created_at
FROM designs
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2;
`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var designs []domain.Design
	for rows.Next() {
		d, err := scanDesign(rows)
		if err != nil {
			return nil, err
		}
		designs = append(designs, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return designs, nil
}

// Delete removes a design scoped to its owner.
func (r *DesignRepositoryPG) Delete(ctx context.Context, userID, id string) error {
	tag, err := r.pool.Exec(ctx, `
DELETE FROM designs
WHERE id = $1 AND user_id = $2;
`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanDesign(row pgx.Row) (*domain.Design, error) {
	var (
		d     domain.Design
		merch []byte
		kit   []byte
	)
	if err := row.Scan(&d.ID, &d.UserID, &d.BusinessName, &d.Description, &d.Style,
		&d.Logo, &d.Slogan, &merch, &d.VideoPreview, &kit, &d.CreatedAt); err != nil {
		return nil, err
	}
	if len(merch) > 0 {
		if err := json.Unmarshal(merch, &d.Merchandise); err != nil {
			return nil, fmt.Errorf("unmarshal merchandise: %w", err)
		}
	}
	if len(kit) > 0 {
		d.BrandKit = json.RawMessage(kit)
	}
	return &d, nil
}
