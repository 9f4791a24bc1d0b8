package domain

import (
	"context"

	"github.com/google/uuid"

	"github.com/evervow/evervow-backend/internal/money"
)

// InteractionRepository defines the interface for interaction persistence operations
type InteractionRepository interface {
	// Upsert records the event keyed by (user, asset, project). On conflict
	// the direction is overwritten; no second row is ever created. The
	// returned bool reports whether the row was freshly inserted.
	Upsert(ctx context.Context, event *InteractionEvent) (created bool, err error)
}

// SlotRepository defines the interface for budget slot persistence operations
type SlotRepository interface {
	// FindOrCreate returns the Open slot for (projectID, category), creating
	// it with targetBudgetCents = seedTargetCents if absent. The operation is
	// atomic: concurrent calls for the same new category converge on one
	// slot, and an existing slot's target is never updated.
	FindOrCreate(ctx context.Context, projectID uuid.UUID, category string, seedTargetCents money.Cents) (*BudgetSlot, error)

	// ListByProject retrieves all slots for a project
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]*BudgetSlot, error)
}

// CandidateRepository defines the interface for budget candidate persistence operations
type CandidateRepository interface {
	// Attach stores the candidate if no candidate for (slot, source asset)
	// exists yet, and returns the stored row either way. Replaying the same
	// swipe therefore converges on a single candidate.
	Attach(ctx context.Context, candidate *BudgetCandidate) (*BudgetCandidate, error)

	// ListBySlot retrieves all candidates attached to a slot
	ListBySlot(ctx context.Context, slotID uuid.UUID) ([]*BudgetCandidate, error)
}

// ProjectRepository reads project snapshots owned by the Project collaborator
type ProjectRepository interface {
	// GetByID retrieves the project context snapshot by its ID
	GetByID(ctx context.Context, id uuid.UUID) (*ProjectContext, error)
}

// AssetRepository reads portfolio asset snapshots owned by the Asset collaborator
type AssetRepository interface {
	// GetByID retrieves the priced asset snapshot by its ID
	GetByID(ctx context.Context, id uuid.UUID) (*PricedAsset, error)
}
