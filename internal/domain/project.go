package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProjectContext is a read-only snapshot of the wedding project consumed
// from the Project collaborator. GuestCount and TaxRate are nullable at the
// source; defaults are applied explicitly by the estimator policy, never
// silently inside a computation.
type ProjectContext struct {
	ID         uuid.UUID
	GuestCount *int
	TaxRate    *decimal.Decimal
}
