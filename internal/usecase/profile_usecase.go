package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"qrupay/internal/domain/profile"

	"github.com/google/uuid"
)

var (
	ErrEmergencyContactRequired = errors.New("emergency contact name and phone are required")
	ErrInvalidProfileInput      = errors.New("invalid profile input")
	ErrProfileNotFound          = errors.New("medical profile not found")
)

// ProfileCache is the slice of the Redis cache the profile flows use.
// A nil cache disables caching without changing behavior.
type ProfileCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// SaveProfileInput carries the editor's field set. Age and Weight
// arrive as raw text; empty means "not provided" and persists as NULL,
// never as zero.
type SaveProfileInput struct {
	BloodGroup               string
	Allergies                string
	ChronicConditions        string
	Medications              string
	EmergencyContactName     string
	EmergencyContactPhone    string
	EmergencyContactRelation string
	AdditionalNotes          string
	Gender                   string
	Age                      string
	Weight                   string
	Address                  string
}

type ProfileUsecase interface {
	// Get returns the owner's profile, or (nil, nil) when none exists
	// yet so the editor can start from an empty form.
	Get(ctx context.Context, userID uuid.UUID) (*profile.MedicalProfile, error)
	Save(ctx context.Context, userID uuid.UUID, in SaveProfileInput) (profile.MedicalProfile, error)
	SetVisibility(ctx context.Context, userID uuid.UUID, public bool) (profile.MedicalProfile, error)
}

type Profile struct {
	profiles profile.Repository
	cache    ProfileCache
}

func NewProfileUsecase(profiles profile.Repository, cache ProfileCache) *Profile {
	return &Profile{profiles: profiles, cache: cache}
}

func (u *Profile) Get(ctx context.Context, userID uuid.UUID) (*profile.MedicalProfile, error) {
	p, err := u.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (u *Profile) Save(ctx context.Context, userID uuid.UUID, in SaveProfileInput) (profile.MedicalProfile, error) {
	p, err := buildProfile(userID, in)
	if err != nil {
		return profile.MedicalProfile{}, err
	}

	saved, err := u.profiles.Upsert(ctx, p)
	if err != nil {
		return profile.MedicalProfile{}, err
	}

	u.invalidateEmergency(ctx, saved.ID)
	return saved, nil
}

func (u *Profile) SetVisibility(ctx context.Context, userID uuid.UUID, public bool) (profile.MedicalProfile, error) {
	p, err := u.profiles.SetVisibility(ctx, userID, public)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return profile.MedicalProfile{}, ErrProfileNotFound
		}
		return profile.MedicalProfile{}, err
	}

	u.invalidateEmergency(ctx, p.ID)
	return p, nil
}

func (u *Profile) invalidateEmergency(ctx context.Context, id uuid.UUID) {
	if u.cache == nil {
		return
	}
	_ = u.cache.Delete(ctx, emergencyCacheKey(id.String()))
}

// buildProfile validates and coerces editor input before any store
// call. Validation failures never reach Postgres.
func buildProfile(userID uuid.UUID, in SaveProfileInput) (profile.MedicalProfile, error) {
	name := strings.TrimSpace(in.EmergencyContactName)
	phone := strings.TrimSpace(in.EmergencyContactPhone)
	if name == "" || phone == "" {
		return profile.MedicalProfile{}, ErrEmergencyContactRequired
	}

	if !profile.ValidBloodGroup(in.BloodGroup) || !profile.ValidGender(in.Gender) {
		return profile.MedicalProfile{}, ErrInvalidProfileInput
	}

	age, err := parseOptionalInt(in.Age)
	if err != nil {
		return profile.MedicalProfile{}, ErrInvalidProfileInput
	}
	weight, err := parseOptionalDecimal(in.Weight)
	if err != nil {
		return profile.MedicalProfile{}, ErrInvalidProfileInput
	}

	return profile.MedicalProfile{
		ID:                       uuid.New(),
		UserID:                   userID,
		BloodGroup:               strings.TrimSpace(in.BloodGroup),
		Allergies:                strings.TrimSpace(in.Allergies),
		ChronicConditions:        strings.TrimSpace(in.ChronicConditions),
		Medications:              strings.TrimSpace(in.Medications),
		EmergencyContactName:     name,
		EmergencyContactPhone:    phone,
		EmergencyContactRelation: strings.TrimSpace(in.EmergencyContactRelation),
		AdditionalNotes:          strings.TrimSpace(in.AdditionalNotes),
		Gender:                   strings.TrimSpace(in.Gender),
		Age:                      age,
		Weight:                   weight,
		Address:                  strings.TrimSpace(in.Address),
	}, nil
}

func parseOptionalInt(raw string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return nil, ErrInvalidProfileInput
	}
	return &v, nil
}

func parseOptionalDecimal(raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return nil, ErrInvalidProfileInput
	}
	return &v, nil
}
