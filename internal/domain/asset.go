package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/evervow/evervow-backend/internal/money"
)

// CostModel represents the pricing shape of a portfolio asset
type CostModel string

const (
	CostModelPerGuest CostModel = "PER_GUEST"
	CostModelPerHour  CostModel = "PER_HOUR"
	CostModelFlatFee  CostModel = "FLAT_FEE"
)

// PricedAsset is a read-only snapshot of a vendor's portfolio item consumed
// from the Asset collaborator. BaseCostLowCents <= BaseCostHighCents is
// treated as a given, not enforced here.
type PricedAsset struct {
	ID                uuid.UUID
	CostModel         CostModel
	BaseCostLowCents  money.Cents
	BaseCostHighCents money.Cents
	MinServiceFeePct  *decimal.Decimal // nil means the policy default applies
	CategoryTag       string           // budget category key
}
