package usecase

import (
	"context"
	"errors"
	"testing"

	"qrupay/internal/domain/profile"

	"github.com/google/uuid"
)

func storedProfile(repo *mockProfileRepo, public bool) profile.MedicalProfile {
	p := profile.MedicalProfile{
		ID:                    uuid.New(),
		UserID:                uuid.New(),
		BloodGroup:            "AB-",
		Allergies:             "latex",
		EmergencyContactName:  "Sam Rivera",
		EmergencyContactPhone: "+15550123",
		IsPublic:              public,
	}
	repo.byUser[p.UserID] = p
	return p
}

func TestEmergencyUsecase_Lookup_PublicProfile(t *testing.T) {
	repo := newMockProfileRepo()
	p := storedProfile(repo, true)
	uc := NewEmergencyUsecase(repo, nil)

	got, err := uc.Lookup(context.Background(), p.ID.String())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.ID != p.ID || got.BloodGroup != p.BloodGroup || got.Allergies != p.Allergies {
		t.Fatalf("lookup must return the stored record unmodified, got %+v", got)
	}
}

func TestEmergencyUsecase_Lookup_UniformNotFound(t *testing.T) {
	repo := newMockProfileRepo()
	private := storedProfile(repo, false)
	uc := NewEmergencyUsecase(repo, nil)

	cases := map[string]string{
		"missing":   uuid.NewString(),
		"private":   private.ID.String(),
		"malformed": "not-a-uuid",
	}
	for name, rawID := range cases {
		if _, err := uc.Lookup(context.Background(), rawID); !errors.Is(err, ErrEmergencyNotFound) {
			t.Fatalf("%s id must yield ErrEmergencyNotFound, got %v", name, err)
		}
	}
}

func TestEmergencyUsecase_Lookup_PopulatesCache(t *testing.T) {
	repo := newMockProfileRepo()
	p := storedProfile(repo, true)
	c := newMockCache()
	uc := NewEmergencyUsecase(repo, c)

	if _, err := uc.Lookup(context.Background(), p.ID.String()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, ok := c.store[emergencyCacheKey(p.ID.String())]; !ok {
		t.Fatalf("successful lookup must populate the cache")
	}
}

func TestEmergencyUsecase_Lookup_ServesFromCache(t *testing.T) {
	repo := newMockProfileRepo()
	p := storedProfile(repo, true)
	c := newMockCache()
	uc := NewEmergencyUsecase(repo, c)

	if _, err := uc.Lookup(context.Background(), p.ID.String()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	repo.err = errors.New("database down")
	got, err := uc.Lookup(context.Background(), p.ID.String())
	if err != nil {
		t.Fatalf("cached lookup must not hit the store, got err: %v", err)
	}
	if got.ID != p.ID {
		t.Fatalf("cached lookup returned wrong record: %+v", got)
	}
}

func TestEmergencyUsecase_Lookup_NotFoundIsNotCached(t *testing.T) {
	repo := newMockProfileRepo()
	c := newMockCache()
	uc := NewEmergencyUsecase(repo, c)

	if _, err := uc.Lookup(context.Background(), uuid.NewString()); !errors.Is(err, ErrEmergencyNotFound) {
		t.Fatalf("expected ErrEmergencyNotFound, got %v", err)
	}
	if len(c.store) != 0 {
		t.Fatalf("a miss must not populate the cache, got %d entries", len(c.store))
	}
}
