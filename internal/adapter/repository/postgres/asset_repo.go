package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/evervow/evervow-backend/internal/domain"
	"github.com/evervow/evervow-backend/internal/money"
)

// assetRepository implements domain.AssetRepository over the Asset
// collaborator's table (read-only from this subsystem)
type assetRepository struct {
	db *DB
}

// NewAssetRepository creates a new portfolio asset repository
func NewAssetRepository(db *DB) domain.AssetRepository {
	return &assetRepository{db: db}
}

// GetByID retrieves the priced asset snapshot by its ID
func (r *assetRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.PricedAsset, error) {
	query := `
		SELECT id, cost_model, base_cost_low_cents, base_cost_high_cents, min_service_fee_pct, category_tag
		FROM portfolio_assets
		WHERE id = $1
	`

	asset := domain.PricedAsset{}
	var low, high int64
	var feePctStr sql.NullString

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&asset.ID,
		&asset.CostModel,
		&low,
		&high,
		&feePctStr,
		&asset.CategoryTag,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: asset %s", domain.ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: failed to get asset by ID: %v", domain.ErrPersistence, err)
	}

	asset.BaseCostLowCents = money.Cents(low)
	asset.BaseCostHighCents = money.Cents(high)

	if feePctStr.Valid {
		pct, err := decimal.NewFromString(feePctStr.String)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to parse min_service_fee_pct: %v", domain.ErrPersistence, err)
		}
		asset.MinServiceFeePct = &pct
	}

	return &asset, nil
}
