package profile

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound covers both a missing row and, for public lookups, a row
// that exists but is not published. Callers must not distinguish the
// two.
var ErrNotFound = errors.New("medical profile not found")

type Repository interface {
	// GetByUserID returns the owner's profile, ErrNotFound if none.
	GetByUserID(ctx context.Context, userID uuid.UUID) (MedicalProfile, error)

	// GetPublicByID returns the profile only when it is published.
	// Absent and unpublished rows are both ErrNotFound.
	GetPublicByID(ctx context.Context, id uuid.UUID) (MedicalProfile, error)

	// Upsert inserts or fully replaces the profile keyed by owner and
	// returns the stored row.
	Upsert(ctx context.Context, p MedicalProfile) (MedicalProfile, error)

	// SetVisibility flips the public flag without touching content.
	SetVisibility(ctx context.Context, userID uuid.UUID, public bool) (MedicalProfile, error)
}
