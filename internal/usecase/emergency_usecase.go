package usecase

import (
	"context"
	"errors"
	"time"

	"qrupay/internal/domain/profile"

	"github.com/google/uuid"
)

// ErrEmergencyNotFound is the single outcome for a missing id, a
// malformed id, and an unpublished profile. The public view must not
// reveal which case occurred.
var ErrEmergencyNotFound = errors.New("medical profile not found or not public")

const emergencyCacheTTL = 60 * time.Second

type EmergencyUsecase interface {
	Lookup(ctx context.Context, rawID string) (profile.MedicalProfile, error)
}

type Emergency struct {
	profiles profile.Repository
	cache    ProfileCache
}

func NewEmergencyUsecase(profiles profile.Repository, cache ProfileCache) *Emergency {
	return &Emergency{profiles: profiles, cache: cache}
}

func (u *Emergency) Lookup(ctx context.Context, rawID string) (profile.MedicalProfile, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return profile.MedicalProfile{}, ErrEmergencyNotFound
	}

	key := emergencyCacheKey(id.String())
	if u.cache != nil {
		var cached profile.MedicalProfile
		if ok, _ := u.cache.GetJSON(ctx, key, &cached); ok {
			return cached, nil
		}
	}

	p, err := u.profiles.GetPublicByID(ctx, id)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return profile.MedicalProfile{}, ErrEmergencyNotFound
		}
		return profile.MedicalProfile{}, err
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, p, emergencyCacheTTL)
	}
	return p, nil
}

func emergencyCacheKey(id string) string {
	return "emergency:profile:" + id
}
