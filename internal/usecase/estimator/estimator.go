package estimator

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/evervow/evervow-backend/internal/domain"
	"github.com/evervow/evervow-backend/internal/money"
)

// Policy holds every business default used by the estimation engine in one
// auditable place. Defaults are applied explicitly via Resolve before
// estimation, never silently inside the computation, so each substitution
// is independently observable and overridable in tests.
type Policy struct {
	DefaultGuestCount    int             // used when the project has no guest count
	DefaultTaxRate       decimal.Decimal // fraction, used when the project has no tax rate
	DefaultServiceFeePct decimal.Decimal // fraction, used when the asset has no fee pct
	DefaultEventHours    int             // fixed duration assumed for PER_HOUR assets
}

// DefaultPolicy returns the platform's standard estimation defaults
func DefaultPolicy() Policy {
	return Policy{
		DefaultGuestCount:    100,
		DefaultTaxRate:       decimal.NewFromFloat(0.08),
		DefaultServiceFeePct: decimal.NewFromFloat(0.20),
		DefaultEventHours:    4,
	}
}

// Inputs is the fully-resolved input to Estimate: no nullable fields remain
type Inputs struct {
	CostModel         domain.CostModel
	BaseCostLowCents  money.Cents
	BaseCostHighCents money.Cents
	GuestCount        int
	ServiceFeePct     decimal.Decimal
	TaxRate           decimal.Decimal
	EventHours        int
}

// Resolve merges the project and asset snapshots with the policy defaults,
// producing concrete estimation inputs
func (p Policy) Resolve(project *domain.ProjectContext, asset *domain.PricedAsset) Inputs {
	in := Inputs{
		CostModel:         asset.CostModel,
		BaseCostLowCents:  asset.BaseCostLowCents,
		BaseCostHighCents: asset.BaseCostHighCents,
		GuestCount:        p.DefaultGuestCount,
		ServiceFeePct:     p.DefaultServiceFeePct,
		TaxRate:           p.DefaultTaxRate,
		EventHours:        p.DefaultEventHours,
	}
	if project.GuestCount != nil {
		in.GuestCount = *project.GuestCount
	}
	if project.TaxRate != nil {
		in.TaxRate = *project.TaxRate
	}
	if asset.MinServiceFeePct != nil {
		in.ServiceFeePct = *asset.MinServiceFeePct
	}
	return in
}

// Estimate translates an abstract pricing model into a concrete monetary
// breakdown for a project context. Pure and deterministic: no I/O, no side
// effects. Every derived quantity is rounded (half away from zero) at the
// point it is produced.
//
// Logic:
//  1. Average the low/high base cost range
//  2. Scale by the cost model (per guest, per hour at the fixed default
//     duration, or flat)
//  3. Service fee on the base, tax on base + fee, total is the sum
func Estimate(in Inputs) (money.Breakdown, error) {
	avgBase := money.Round(in.BaseCostLowCents.Decimal().Add(in.BaseCostHighCents.Decimal()).Div(decimal.NewFromInt(2)))

	var base money.Cents
	switch in.CostModel {
	case domain.CostModelPerGuest:
		base = avgBase * money.Cents(in.GuestCount)
	case domain.CostModelPerHour:
		base = avgBase * money.Cents(in.EventHours)
	case domain.CostModelFlatFee:
		base = avgBase
	default:
		return money.Breakdown{}, fmt.Errorf("unsupported cost model %q", in.CostModel)
	}

	serviceFee := money.Round(base.Decimal().Mul(in.ServiceFeePct))
	tax := money.Round(base.Decimal().Add(serviceFee.Decimal()).Mul(in.TaxRate))

	return money.Breakdown{
		Base:       base,
		ServiceFee: serviceFee,
		Tax:        tax,
		Total:      base + serviceFee + tax,
	}, nil
}
