package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/evervow/evervow-backend/internal/domain"
	"github.com/evervow/evervow-backend/internal/usecase/swipe"
)

// Pinger reports storage liveness
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handler serves the swipe-to-budget HTTP API
type Handler struct {
	Swipes     *swipe.Service
	Slots      domain.SlotRepository
	Candidates domain.CandidateRepository
	DB         Pinger
	Logger     *zap.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(swipes *swipe.Service, slots domain.SlotRepository, candidates domain.CandidateRepository, db Pinger, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		Swipes:     swipes,
		Slots:      slots,
		Candidates: candidates,
		DB:         db,
		Logger:     logger,
	}
}

// Router builds the chi router for the API
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Post("/api/v1/swipes", h.handleSwipe)
	r.Get("/api/v1/projects/{projectID}/slots", h.handleListSlots)
	r.Get("/healthz", h.handleHealth)
	return r
}

type swipeRequest struct {
	UserID    string `json:"userId"`
	AssetID   string `json:"assetId"`
	ProjectID string `json:"projectId"`
	Direction string `json:"direction"`
}

type budgetImpactResponse struct {
	Base       string `json:"base"`
	ServiceFee string `json:"serviceFee"`
	Tax        string `json:"tax"`
	Total      string `json:"total"`
	Breakdown  string `json:"breakdown"`
}

type swipeResponse struct {
	Status       string                `json:"status"`
	Message      string                `json:"message,omitempty"`
	BudgetImpact *budgetImpactResponse `json:"budgetImpact,omitempty"`
}

func (h *Handler) handleSwipe(w http.ResponseWriter, r *http.Request) {
	var req swipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	input, err := parseSwipeInput(req)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.Swipes.Swipe(r.Context(), input)
	if err != nil {
		h.writeError(w, statusForError(err), err.Error())
		return
	}

	if result.Impact == nil {
		h.writeJSON(w, http.StatusOK, swipeResponse{
			Status:  "success",
			Message: "Swipe recorded",
		})
		return
	}

	b := result.Impact.Breakdown
	h.writeJSON(w, http.StatusOK, swipeResponse{
		Status: "success",
		BudgetImpact: &budgetImpactResponse{
			Base:       b.Base.Format(),
			ServiceFee: b.ServiceFee.Format(),
			Tax:        b.Tax.Format(),
			Total:      b.Total.Format(),
			Breakdown:  b.Summary(),
		},
	})
}

// parseSwipeInput validates the wire payload. Missing identifiers are
// rejected here, before any persistence is attempted; empty strings map to
// uuid.Nil so the domain validation catches them with a descriptive message.
func parseSwipeInput(req swipeRequest) (swipe.Input, error) {
	direction, err := domain.ParseDirection(req.Direction)
	if err != nil {
		return swipe.Input{}, err
	}

	input := swipe.Input{Direction: direction}
	if input.UserID, err = parseOptionalID(req.UserID, "userId"); err != nil {
		return swipe.Input{}, err
	}
	if input.AssetID, err = parseOptionalID(req.AssetID, "assetId"); err != nil {
		return swipe.Input{}, err
	}
	if input.ProjectID, err = parseOptionalID(req.ProjectID, "projectId"); err != nil {
		return swipe.Input{}, err
	}
	return input, nil
}

func parseOptionalID(raw, field string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.New("invalid " + field + " format")
	}
	return id, nil
}

type candidateResponse struct {
	ID                        string `json:"id"`
	SourceAssetID             string `json:"sourceAssetId"`
	CalculatedCostPretaxCents int64  `json:"calculatedCostPretaxCents"`
	CalculatedTotalRealCents  int64  `json:"calculatedTotalRealCents"`
	IsSelected                bool   `json:"isSelected"`
	Notes                     string `json:"notes"`
}

type slotResponse struct {
	ID                string              `json:"id"`
	Category          string              `json:"category"`
	TargetBudgetCents int64               `json:"targetBudgetCents"`
	TargetBudget      string              `json:"targetBudget"`
	Status            string              `json:"status"`
	Candidates        []candidateResponse `json:"candidates"`
}

func (h *Handler) handleListSlots(w http.ResponseWriter, r *http.Request) {
	projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid projectID format")
		return
	}

	slots, err := h.Slots.ListByProject(r.Context(), projectID)
	if err != nil {
		h.writeError(w, statusForError(err), err.Error())
		return
	}

	resp := make([]slotResponse, 0, len(slots))
	for _, slot := range slots {
		candidates, err := h.Candidates.ListBySlot(r.Context(), slot.ID)
		if err != nil {
			h.writeError(w, statusForError(err), err.Error())
			return
		}

		candidateList := make([]candidateResponse, 0, len(candidates))
		for _, c := range candidates {
			candidateList = append(candidateList, candidateResponse{
				ID:                        c.ID.String(),
				SourceAssetID:             c.SourceAssetID.String(),
				CalculatedCostPretaxCents: int64(c.CalculatedCostPretaxCents),
				CalculatedTotalRealCents:  int64(c.CalculatedTotalRealCents),
				IsSelected:                c.IsSelected,
				Notes:                     c.Notes,
			})
		}

		resp = append(resp, slotResponse{
			ID:                slot.ID.String(),
			Category:          slot.Category,
			TargetBudgetCents: int64(slot.TargetBudgetCents),
			TargetBudget:      slot.TargetBudgetCents.Format(),
			Status:            string(slot.Status),
			Candidates:        candidateList,
		})
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{"slots": resp})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := h.DB.PingContext(r.Context()); err != nil {
		h.writeError(w, http.StatusServiceUnavailable, "database unreachable")
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// statusForError maps the domain error taxonomy to HTTP status codes.
// Validation failures are client errors; a missing project or asset is
// distinguishable from a generic internal failure.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.Logger.Error("failed to encode response", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
