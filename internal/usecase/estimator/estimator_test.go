package estimator

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/evervow/evervow-backend/internal/domain"
	"github.com/evervow/evervow-backend/internal/money"
)

func fixedInputs() Inputs {
	return Inputs{
		CostModel:         domain.CostModelPerGuest,
		BaseCostLowCents:  1000,
		BaseCostHighCents: 1000,
		GuestCount:        100,
		ServiceFeePct:     decimal.NewFromFloat(0.20),
		TaxRate:           decimal.NewFromFloat(0.08),
		EventHours:        4,
	}
}

func TestEstimate_PerGuest(t *testing.T) {
	// guestCount=100, taxRate=0.08, baseCostLow=baseCostHigh=1000 cents,
	// minServiceFeePct=0.20, costModel=PerGuest
	b, err := Estimate(fixedInputs())

	assert.NoError(t, err)
	assert.Equal(t, money.Cents(100000), b.Base)
	assert.Equal(t, money.Cents(20000), b.ServiceFee)
	assert.Equal(t, money.Cents(9600), b.Tax)
	assert.Equal(t, money.Cents(129600), b.Total)
}

func TestEstimate_PerHour_MultipliesByFourHours(t *testing.T) {
	in := fixedInputs()
	in.CostModel = domain.CostModelPerHour
	in.BaseCostLowCents = 50000
	in.BaseCostHighCents = 50000

	b, err := Estimate(in)

	assert.NoError(t, err)
	assert.Equal(t, money.Cents(200000), b.Base)
}

func TestEstimate_FlatFee(t *testing.T) {
	// baseCostLow=baseCostHigh=150000 cents, minServiceFeePct=0.20, taxRate=0.08
	in := fixedInputs()
	in.CostModel = domain.CostModelFlatFee
	in.BaseCostLowCents = 150000
	in.BaseCostHighCents = 150000

	b, err := Estimate(in)

	assert.NoError(t, err)
	assert.Equal(t, money.Cents(150000), b.Base)
	assert.Equal(t, money.Cents(30000), b.ServiceFee)
	assert.Equal(t, money.Cents(14400), b.Tax)
	assert.Equal(t, money.Cents(194400), b.Total)
}

func TestEstimate_AveragesAndRoundsBaseRange(t *testing.T) {
	// (999 + 1000) / 2 = 999.5, rounded half away from zero -> 1000
	in := fixedInputs()
	in.CostModel = domain.CostModelFlatFee
	in.BaseCostLowCents = 999
	in.BaseCostHighCents = 1000

	b, err := Estimate(in)

	assert.NoError(t, err)
	assert.Equal(t, money.Cents(1000), b.Base)
}

func TestEstimate_RoundsEachDerivedQuantity(t *testing.T) {
	// base=333, fee=round(333*0.20)=round(66.6)=67, tax=round(400*0.08)=32
	in := fixedInputs()
	in.CostModel = domain.CostModelFlatFee
	in.BaseCostLowCents = 333
	in.BaseCostHighCents = 333

	b, err := Estimate(in)

	assert.NoError(t, err)
	assert.Equal(t, money.Cents(333), b.Base)
	assert.Equal(t, money.Cents(67), b.ServiceFee)
	assert.Equal(t, money.Cents(32), b.Tax)
	assert.Equal(t, money.Cents(432), b.Total)
}

func TestEstimate_UnknownCostModel(t *testing.T) {
	in := fixedInputs()
	in.CostModel = "PER_PLATE"

	_, err := Estimate(in)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported cost model")
}

func TestResolve_AppliesAllDefaults(t *testing.T) {
	policy := DefaultPolicy()
	project := &domain.ProjectContext{ID: uuid.New()}
	asset := &domain.PricedAsset{
		ID:                uuid.New(),
		CostModel:         domain.CostModelPerGuest,
		BaseCostLowCents:  1000,
		BaseCostHighCents: 2000,
		CategoryTag:       "florals",
	}

	in := policy.Resolve(project, asset)

	assert.Equal(t, 100, in.GuestCount)
	assert.True(t, in.TaxRate.Equal(decimal.NewFromFloat(0.08)))
	assert.True(t, in.ServiceFeePct.Equal(decimal.NewFromFloat(0.20)))
	assert.Equal(t, 4, in.EventHours)
	assert.Equal(t, domain.CostModelPerGuest, in.CostModel)
	assert.Equal(t, money.Cents(1000), in.BaseCostLowCents)
	assert.Equal(t, money.Cents(2000), in.BaseCostHighCents)
}

func TestResolve_ProjectValuesOverrideDefaults(t *testing.T) {
	policy := DefaultPolicy()
	guests := 250
	taxRate := decimal.NewFromFloat(0.095)
	project := &domain.ProjectContext{
		ID:         uuid.New(),
		GuestCount: &guests,
		TaxRate:    &taxRate,
	}
	asset := &domain.PricedAsset{ID: uuid.New(), CostModel: domain.CostModelPerGuest}

	in := policy.Resolve(project, asset)

	assert.Equal(t, 250, in.GuestCount)
	assert.True(t, in.TaxRate.Equal(taxRate))
	// Fee pct still defaulted: the asset carried none
	assert.True(t, in.ServiceFeePct.Equal(decimal.NewFromFloat(0.20)))
}

func TestResolve_AssetFeeOverridesDefault(t *testing.T) {
	policy := DefaultPolicy()
	feePct := decimal.NewFromFloat(0.25)
	project := &domain.ProjectContext{ID: uuid.New()}
	asset := &domain.PricedAsset{
		ID:               uuid.New(),
		CostModel:        domain.CostModelFlatFee,
		MinServiceFeePct: &feePct,
	}

	in := policy.Resolve(project, asset)

	assert.True(t, in.ServiceFeePct.Equal(feePct))
	// Guest count and tax rate still defaulted
	assert.Equal(t, 100, in.GuestCount)
	assert.True(t, in.TaxRate.Equal(decimal.NewFromFloat(0.08)))
}

func TestResolve_CustomPolicy(t *testing.T) {
	policy := Policy{
		DefaultGuestCount:    50,
		DefaultTaxRate:       decimal.NewFromFloat(0.10),
		DefaultServiceFeePct: decimal.NewFromFloat(0.15),
		DefaultEventHours:    6,
	}
	project := &domain.ProjectContext{ID: uuid.New()}
	asset := &domain.PricedAsset{ID: uuid.New(), CostModel: domain.CostModelPerHour}

	in := policy.Resolve(project, asset)

	assert.Equal(t, 50, in.GuestCount)
	assert.True(t, in.TaxRate.Equal(decimal.NewFromFloat(0.10)))
	assert.True(t, in.ServiceFeePct.Equal(decimal.NewFromFloat(0.15)))
	assert.Equal(t, 6, in.EventHours)
}
