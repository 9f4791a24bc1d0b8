package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/evervow/evervow-backend/internal/domain"
	"github.com/evervow/evervow-backend/internal/money"
)

// slotRepository implements domain.SlotRepository
type slotRepository struct {
	db *DB
}

// NewSlotRepository creates a new budget slot repository
func NewSlotRepository(db *DB) domain.SlotRepository {
	return &slotRepository{db: db}
}

// FindOrCreate resolves the one slot for (projectID, category). The insert
// relies on the UNIQUE (project_id, category) constraint: under concurrent
// calls for the same new category exactly one insert wins and the others
// no-op. The row is then re-read unconditionally — the in-process not-found
// branch is never trusted as proof of absence. An existing slot's target
// budget is left untouched.
func (r *slotRepository) FindOrCreate(ctx context.Context, projectID uuid.UUID, category string, seedTargetCents money.Cents) (*domain.BudgetSlot, error) {
	seed := &domain.BudgetSlot{
		ID:                uuid.New(),
		ProjectID:         projectID,
		Category:          category,
		TargetBudgetCents: seedTargetCents,
		Status:            domain.SlotStatusOpen,
	}
	if err := seed.Validate(); err != nil {
		return nil, err
	}

	insertQuery := `
		INSERT INTO budget_slots (id, project_id, category, target_budget_cents, status)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (project_id, category) DO NOTHING
	`

	_, err := r.db.ExecContext(ctx, insertQuery,
		seed.ID,
		seed.ProjectID,
		seed.Category,
		int64(seed.TargetBudgetCents),
		string(seed.Status),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to insert budget slot: %v", domain.ErrPersistence, err)
	}

	selectQuery := `
		SELECT id, project_id, category, target_budget_cents, status
		FROM budget_slots
		WHERE project_id = $1 AND category = $2
	`

	var slot domain.BudgetSlot
	var target int64
	err = r.db.QueryRowContext(ctx, selectQuery, projectID, category).Scan(
		&slot.ID,
		&slot.ProjectID,
		&slot.Category,
		&target,
		&slot.Status,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read budget slot: %v", domain.ErrPersistence, err)
	}
	slot.TargetBudgetCents = money.Cents(target)

	return &slot, nil
}

// ListByProject retrieves all slots for a project ordered by category
func (r *slotRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]*domain.BudgetSlot, error) {
	query := `
		SELECT id, project_id, category, target_budget_cents, status
		FROM budget_slots
		WHERE project_id = $1
		ORDER BY category
	`

	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list budget slots: %v", domain.ErrPersistence, err)
	}
	defer rows.Close()

	slots := make([]*domain.BudgetSlot, 0)
	for rows.Next() {
		var slot domain.BudgetSlot
		var target int64
		if err := rows.Scan(&slot.ID, &slot.ProjectID, &slot.Category, &target, &slot.Status); err != nil {
			return nil, fmt.Errorf("%w: failed to scan budget slot: %v", domain.ErrPersistence, err)
		}
		slot.TargetBudgetCents = money.Cents(target)
		slots = append(slots, &slot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to iterate budget slots: %v", domain.ErrPersistence, err)
	}

	return slots, nil
}
