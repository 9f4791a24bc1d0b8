package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/evervow/evervow-backend/internal/domain"
	"github.com/evervow/evervow-backend/internal/money"
)

// candidateRepository implements domain.CandidateRepository
type candidateRepository struct {
	db *DB
}

// NewCandidateRepository creates a new budget candidate repository
func NewCandidateRepository(db *DB) domain.CandidateRepository {
	return &candidateRepository{db: db}
}

// Attach inserts the candidate unless one already exists for the same
// (slot, source asset), then re-reads the surviving row. Replayed pipelines
// and client retries converge on a single candidate.
func (r *candidateRepository) Attach(ctx context.Context, candidate *domain.BudgetCandidate) (*domain.BudgetCandidate, error) {
	insertQuery := `
		INSERT INTO budget_candidates (
			id, slot_id, source_asset_id,
			calculated_cost_pretax_cents, calculated_total_real_cents,
			is_selected, notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (slot_id, source_asset_id) DO NOTHING
	`

	_, err := r.db.ExecContext(ctx, insertQuery,
		candidate.ID,
		candidate.SlotID,
		candidate.SourceAssetID,
		int64(candidate.CalculatedCostPretaxCents),
		int64(candidate.CalculatedTotalRealCents),
		candidate.IsSelected,
		candidate.Notes,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to insert budget candidate: %v", domain.ErrPersistence, err)
	}

	selectQuery := `
		SELECT id, slot_id, source_asset_id,
		       calculated_cost_pretax_cents, calculated_total_real_cents,
		       is_selected, notes
		FROM budget_candidates
		WHERE slot_id = $1 AND source_asset_id = $2
	`

	stored, err := scanCandidate(r.db.QueryRowContext(ctx, selectQuery, candidate.SlotID, candidate.SourceAssetID))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read budget candidate: %v", domain.ErrPersistence, err)
	}

	return stored, nil
}

// ListBySlot retrieves all candidates attached to a slot
func (r *candidateRepository) ListBySlot(ctx context.Context, slotID uuid.UUID) ([]*domain.BudgetCandidate, error) {
	query := `
		SELECT id, slot_id, source_asset_id,
		       calculated_cost_pretax_cents, calculated_total_real_cents,
		       is_selected, notes
		FROM budget_candidates
		WHERE slot_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query, slotID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list budget candidates: %v", domain.ErrPersistence, err)
	}
	defer rows.Close()

	candidates := make([]*domain.BudgetCandidate, 0)
	for rows.Next() {
		candidate, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to scan budget candidate: %v", domain.ErrPersistence, err)
		}
		candidates = append(candidates, candidate)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to iterate budget candidates: %v", domain.ErrPersistence, err)
	}

	return candidates, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCandidate(row rowScanner) (*domain.BudgetCandidate, error) {
	var candidate domain.BudgetCandidate
	var pretax, total int64
	err := row.Scan(
		&candidate.ID,
		&candidate.SlotID,
		&candidate.SourceAssetID,
		&pretax,
		&total,
		&candidate.IsSelected,
		&candidate.Notes,
	)
	if err != nil {
		return nil, err
	}
	candidate.CalculatedCostPretaxCents = money.Cents(pretax)
	candidate.CalculatedTotalRealCents = money.Cents(total)
	return &candidate, nil
}
