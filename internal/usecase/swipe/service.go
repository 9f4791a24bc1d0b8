package swipe

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/evervow/evervow-backend/internal/domain"
	"github.com/evervow/evervow-backend/internal/money"
	"github.com/evervow/evervow-backend/internal/usecase/estimator"
)

// Input represents one inbound swipe request
type Input struct {
	UserID    uuid.UUID
	AssetID   uuid.UUID
	ProjectID uuid.UUID
	Direction domain.SwipeDirection
}

// BudgetImpact carries the financial outcome of an accepted swipe
type BudgetImpact struct {
	Breakdown   money.Breakdown
	SlotID      uuid.UUID
	CandidateID uuid.UUID
}

// Result is the terminal outcome of a swipe request. Impact is nil on the
// reject path, which returns an acknowledgement only.
type Result struct {
	Direction domain.SwipeDirection
	Impact    *BudgetImpact
}

// Service orchestrates the swipe-to-budget pipeline
type Service struct {
	Interactions domain.InteractionRepository
	Projects     domain.ProjectRepository
	Assets       domain.AssetRepository
	Slots        domain.SlotRepository
	Candidates   domain.CandidateRepository
	Policy       estimator.Policy
	Logger       *zap.Logger
}

// NewService creates a new swipe Service instance
func NewService(
	interactions domain.InteractionRepository,
	projects domain.ProjectRepository,
	assets domain.AssetRepository,
	slots domain.SlotRepository,
	candidates domain.CandidateRepository,
	policy estimator.Policy,
	logger *zap.Logger,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		Interactions: interactions,
		Projects:     projects,
		Assets:       assets,
		Slots:        slots,
		Candidates:   candidates,
		Policy:       policy,
		Logger:       logger,
	}
}

// Swipe runs the full pipeline for one swipe request.
// Logic:
//  1. Validate the four required identifiers (fail fast, nothing persisted)
//  2. Upsert the interaction event (idempotent per user/asset/project)
//  3. Reject: acknowledge and stop without touching project/asset context
//  4. Accept/StrongAccept: fetch project and asset snapshots, resolve
//     policy defaults, estimate the cost breakdown
//  5. Find-or-create the budget slot for the asset's category, seeded with
//     the computed base cost
//  6. Attach the candidate (insert-if-absent on slot + source asset)
//
// Steps are sequential: the category comes from the asset read and the slot
// id from slot resolution. There is no rollback: if a later step fails the
// committed interaction row remains, and because every write is keyed for
// idempotency a client retry converges instead of duplicating state.
func (s *Service) Swipe(ctx context.Context, input Input) (*Result, error) {
	event := &domain.InteractionEvent{
		UserID:    input.UserID,
		AssetID:   input.AssetID,
		ProjectID: input.ProjectID,
		Direction: input.Direction,
		CreatedAt: time.Now().UTC(),
	}
	if err := event.Validate(); err != nil {
		return nil, err
	}

	created, err := s.Interactions.Upsert(ctx, event)
	if err != nil {
		return nil, err
	}

	if !input.Direction.IsPositive() {
		s.Logger.Info("swipe recorded",
			zap.String("direction", string(input.Direction)),
			zap.String("project_id", input.ProjectID.String()),
			zap.Bool("new_interaction", created),
		)
		return &Result{Direction: input.Direction}, nil
	}

	project, err := s.Projects.GetByID(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}
	asset, err := s.Assets.GetByID(ctx, input.AssetID)
	if err != nil {
		return nil, err
	}

	in := s.Policy.Resolve(project, asset)
	breakdown, err := estimator.Estimate(in)
	if err != nil {
		return nil, err
	}

	slot, err := s.Slots.FindOrCreate(ctx, input.ProjectID, asset.CategoryTag, breakdown.Base)
	if err != nil {
		return nil, err
	}

	candidate := &domain.BudgetCandidate{
		ID:                        uuid.New(),
		SlotID:                    slot.ID,
		SourceAssetID:             input.AssetID,
		CalculatedCostPretaxCents: breakdown.Base,
		CalculatedTotalRealCents:  breakdown.Total,
		Notes:                     buildNotes(breakdown, in),
	}
	stored, err := s.Candidates.Attach(ctx, candidate)
	if err != nil {
		return nil, err
	}

	s.Logger.Info("swipe budgeted",
		zap.String("direction", string(input.Direction)),
		zap.String("project_id", input.ProjectID.String()),
		zap.String("category", asset.CategoryTag),
		zap.String("slot_id", slot.ID.String()),
		zap.String("candidate_id", stored.ID.String()),
		zap.Int64("total_cents", int64(breakdown.Total)),
		zap.Bool("new_interaction", created),
	)

	return &Result{
		Direction: input.Direction,
		Impact: &BudgetImpact{
			Breakdown:   breakdown,
			SlotID:      slot.ID,
			CandidateID: stored.ID,
		},
	}, nil
}

// buildNotes produces the audit summary stored on the candidate: the base
// cost and the exact fee and tax percentages the computation used.
func buildNotes(b money.Breakdown, in estimator.Inputs) string {
	hundred := decimal.NewFromInt(100)
	return fmt.Sprintf("Estimated from swiped asset: base %s, service fee %s%%, tax %s%%",
		b.Base.Format(),
		in.ServiceFeePct.Mul(hundred).String(),
		in.TaxRate.Mul(hundred).String(),
	)
}
