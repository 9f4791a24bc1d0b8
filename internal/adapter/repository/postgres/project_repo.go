package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/evervow/evervow-backend/internal/domain"
)

// projectRepository implements domain.ProjectRepository over the Project
// collaborator's table (read-only from this subsystem)
type projectRepository struct {
	db *DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *DB) domain.ProjectRepository {
	return &projectRepository{db: db}
}

// GetByID retrieves the project context snapshot by its ID
func (r *projectRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ProjectContext, error) {
	query := `
		SELECT id, guest_count, tax_rate
		FROM projects
		WHERE id = $1
	`

	project := domain.ProjectContext{}
	var guestCount sql.NullInt64
	var taxRateStr sql.NullString

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&project.ID,
		&guestCount,
		&taxRateStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: project %s", domain.ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: failed to get project by ID: %v", domain.ErrPersistence, err)
	}

	if guestCount.Valid {
		count := int(guestCount.Int64)
		project.GuestCount = &count
	}

	if taxRateStr.Valid {
		rate, err := decimal.NewFromString(taxRateStr.String)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to parse tax_rate: %v", domain.ErrPersistence, err)
		}
		project.TaxRate = &rate
	}

	return &project, nil
}
