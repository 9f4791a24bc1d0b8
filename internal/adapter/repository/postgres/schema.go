package postgres

import (
	"context"
	"fmt"
)

// Tables owned by this subsystem. The projects and portfolio_assets tables
// belong to the Project and Asset collaborators and are read-only here.
//
// The two UNIQUE constraints are load-bearing: (project_id, category) closes
// the concurrent slot-creation race, and (slot_id, source_asset_id) makes
// candidate attachment idempotent across replayed swipes.

const createInteractionEventsSQL = `
CREATE TABLE IF NOT EXISTS interaction_events (
  user_id uuid NOT NULL,
  asset_id uuid NOT NULL,
  project_id uuid NOT NULL,
  direction text NOT NULL,
  created_at timestamptz NOT NULL,
  updated_at timestamptz NOT NULL DEFAULT now(),
  PRIMARY KEY (user_id, asset_id, project_id)
)`

const createBudgetSlotsSQL = `
CREATE TABLE IF NOT EXISTS budget_slots (
  id uuid PRIMARY KEY,
  project_id uuid NOT NULL,
  category text NOT NULL,
  target_budget_cents bigint NOT NULL,
  status text NOT NULL,
  created_at timestamptz NOT NULL DEFAULT now(),
  UNIQUE (project_id, category)
)`

const createBudgetCandidatesSQL = `
CREATE TABLE IF NOT EXISTS budget_candidates (
  id uuid PRIMARY KEY,
  slot_id uuid NOT NULL REFERENCES budget_slots (id),
  source_asset_id uuid NOT NULL,
  calculated_cost_pretax_cents bigint NOT NULL,
  calculated_total_real_cents bigint NOT NULL,
  is_selected boolean NOT NULL DEFAULT false,
  notes text NOT NULL DEFAULT '',
  created_at timestamptz NOT NULL DEFAULT now(),
  UNIQUE (slot_id, source_asset_id)
)`

// EnsureSchema creates the subsystem's tables if they do not exist yet
func EnsureSchema(ctx context.Context, db *DB) error {
	statements := []string{
		createInteractionEventsSQL,
		createBudgetSlotsSQL,
		createBudgetCandidatesSQL,
	}
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}
