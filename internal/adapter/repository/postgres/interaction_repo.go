package postgres

import (
	"context"
	"fmt"

	"github.com/evervow/evervow-backend/internal/domain"
)

// interactionRepository implements domain.InteractionRepository
type interactionRepository struct {
	db *DB
}

// NewInteractionRepository creates a new interaction repository
func NewInteractionRepository(db *DB) domain.InteractionRepository {
	return &interactionRepository{db: db}
}

// Upsert records the swipe keyed by (user, asset, project). A repeat swipe
// overwrites the direction in place. The xmax system column distinguishes a
// fresh insert (xmax = 0) from a conflict-path update.
func (r *interactionRepository) Upsert(ctx context.Context, event *domain.InteractionEvent) (bool, error) {
	query := `
		INSERT INTO interaction_events (user_id, asset_id, project_id, direction, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, asset_id, project_id)
		DO UPDATE SET direction = EXCLUDED.direction, updated_at = now()
		RETURNING (xmax = 0) AS freshly_inserted
	`

	var created bool
	err := r.db.QueryRowContext(ctx, query,
		event.UserID,
		event.AssetID,
		event.ProjectID,
		string(event.Direction),
		event.CreatedAt,
	).Scan(&created)
	if err != nil {
		return false, fmt.Errorf("%w: failed to upsert interaction event: %v", domain.ErrPersistence, err)
	}

	return created, nil
}
