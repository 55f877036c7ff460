package medication

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("medication not found")

type Repository interface {
	// ListByUserID returns the user's medications, newest course first.
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]Medication, error)
	GetByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (Medication, error)
	Create(ctx context.Context, m Medication) error
	// Update replaces the mutable field set of the row matching id and
	// owner; ErrNotFound if no such row.
	Update(ctx context.Context, m Medication) error
	Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error

	// ListActive returns every medication whose course covers the given
	// day, across all users. Used by the reminder scheduler.
	ListActive(ctx context.Context, day time.Time) ([]Medication, error)
}
