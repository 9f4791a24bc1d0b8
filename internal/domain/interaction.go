package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SwipeDirection represents a user's directional response to a priced asset
type SwipeDirection string

const (
	DirectionReject       SwipeDirection = "REJECT"
	DirectionAccept       SwipeDirection = "ACCEPT"
	DirectionStrongAccept SwipeDirection = "STRONG_ACCEPT"
)

// ParseDirection converts a wire-format direction string into a SwipeDirection
func ParseDirection(s string) (SwipeDirection, error) {
	switch s {
	case "reject":
		return DirectionReject, nil
	case "accept":
		return DirectionAccept, nil
	case "strong_accept":
		return DirectionStrongAccept, nil
	default:
		return "", fmt.Errorf("%w: direction must be one of reject, accept, strong_accept", ErrValidation)
	}
}

// IsPositive reports whether the direction expresses interest.
// StrongAccept is deliberately treated the same as Accept: the stronger
// signal is stored but carries no budget-seeding weight.
func (d SwipeDirection) IsPositive() bool {
	return d == DirectionAccept || d == DirectionStrongAccept
}

// InteractionEvent represents one user's expressed preference on one asset
// within one project. At most one event exists per (user, asset, project);
// a repeat swipe overwrites the direction instead of creating a second row.
type InteractionEvent struct {
	UserID    uuid.UUID
	AssetID   uuid.UUID
	ProjectID uuid.UUID
	Direction SwipeDirection
	CreatedAt time.Time
}

// Validate ensures the event adheres to domain rules
// Returns an error wrapping ErrValidation if any required field is missing
func (e *InteractionEvent) Validate() error {
	if e.UserID == uuid.Nil {
		return fmt.Errorf("%w: userId is required", ErrValidation)
	}
	if e.AssetID == uuid.Nil {
		return fmt.Errorf("%w: assetId is required", ErrValidation)
	}
	if e.ProjectID == uuid.Nil {
		return fmt.Errorf("%w: projectId is required", ErrValidation)
	}
	switch e.Direction {
	case DirectionReject, DirectionAccept, DirectionStrongAccept:
		return nil
	default:
		return fmt.Errorf("%w: unknown direction %q", ErrValidation, e.Direction)
	}
}
