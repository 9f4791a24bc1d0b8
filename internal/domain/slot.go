package domain

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/evervow/evervow-backend/internal/money"
)

// SlotStatus represents the lifecycle state of a budget slot
type SlotStatus string

const (
	SlotStatusOpen   SlotStatus = "OPEN"
	SlotStatusClosed SlotStatus = "CLOSED"
)

// BudgetSlot is a project-scoped bucket aggregating priced candidates for
// one spending category. Exactly one slot exists per (project, category),
// enforced by a storage-level uniqueness constraint. TargetBudgetCents is
// seeded from the first computed base cost and never recalculated here.
type BudgetSlot struct {
	ID                uuid.UUID
	ProjectID         uuid.UUID
	Category          string
	TargetBudgetCents money.Cents
	Status            SlotStatus
}

// Validate ensures the slot adheres to domain rules
func (s *BudgetSlot) Validate() error {
	if s.ProjectID == uuid.Nil {
		return fmt.Errorf("%w: slot projectId is required", ErrValidation)
	}
	if s.Category == "" {
		return fmt.Errorf("%w: slot category cannot be empty", ErrValidation)
	}
	if s.Status != SlotStatusOpen && s.Status != SlotStatusClosed {
		return fmt.Errorf("%w: unknown slot status %q", ErrValidation, s.Status)
	}
	return nil
}

// BudgetCandidate is one priced option attached to a slot, pending later
// selection as the final choice (selection is an external concern).
// Candidates are never updated in place by this subsystem.
type BudgetCandidate struct {
	ID                        uuid.UUID
	SlotID                    uuid.UUID
	SourceAssetID             uuid.UUID
	CalculatedCostPretaxCents money.Cents
	CalculatedTotalRealCents  money.Cents
	IsSelected                bool
	Notes                     string
}
