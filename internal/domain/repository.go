package domain

import "context"

// DesignRepository defines persistence for saved designs.
type DesignRepository interface {
	Create(ctx context.Context, design *Design) error
	GetByID(ctx context.Context, userID, id string) (*Design, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]Design, error)
	Delete(ctx context.Context, userID, id string) error
}
