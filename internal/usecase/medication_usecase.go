package usecase

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"qrupay/internal/domain/medication"

	"github.com/google/uuid"
)

var (
	ErrInvalidMedicationInput = errors.New("invalid medication input")
	ErrMedicationNotFound     = errors.New("medication not found")
	ErrDateRangeInverted      = errors.New("end date precedes start date")
)

var timeOfDayRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

const dateLayout = "2006-01-02"

// MedicationInput is the full mutable field set; edits replace it
// wholesale. Dates arrive as "YYYY-MM-DD", times as "HH:MM".
type MedicationInput struct {
	Name      string
	Dosage    string
	Frequency string
	Times     []string
	StartDate string
	EndDate   string
	Notes     string
}

// Every mutation returns the re-fetched list, mirroring the tracker's
// fetch-after-write behavior instead of a local optimistic merge.
type MedicationUsecase interface {
	List(ctx context.Context, userID uuid.UUID) ([]medication.Medication, error)
	Get(ctx context.Context, userID uuid.UUID, id uuid.UUID) (medication.Medication, error)
	Add(ctx context.Context, userID uuid.UUID, in MedicationInput) ([]medication.Medication, error)
	Update(ctx context.Context, userID uuid.UUID, id uuid.UUID, in MedicationInput) ([]medication.Medication, error)
	Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) ([]medication.Medication, error)
}

type Medications struct {
	meds medication.Repository
	now  func() time.Time
}

func NewMedicationUsecase(meds medication.Repository) *Medications {
	return &Medications{meds: meds, now: time.Now}
}

func (u *Medications) List(ctx context.Context, userID uuid.UUID) ([]medication.Medication, error) {
	return u.meds.ListByUserID(ctx, userID)
}

func (u *Medications) Get(ctx context.Context, userID uuid.UUID, id uuid.UUID) (medication.Medication, error) {
	m, err := u.meds.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, medication.ErrNotFound) {
			return medication.Medication{}, ErrMedicationNotFound
		}
		return medication.Medication{}, err
	}
	return m, nil
}

func (u *Medications) Add(ctx context.Context, userID uuid.UUID, in MedicationInput) ([]medication.Medication, error) {
	m, err := buildMedication(userID, in)
	if err != nil {
		return nil, err
	}
	m.ID = uuid.New()
	m.CreatedAt = u.now().UTC()

	if err := u.meds.Create(ctx, m); err != nil {
		return nil, err
	}
	return u.meds.ListByUserID(ctx, userID)
}

func (u *Medications) Update(ctx context.Context, userID uuid.UUID, id uuid.UUID, in MedicationInput) ([]medication.Medication, error) {
	m, err := buildMedication(userID, in)
	if err != nil {
		return nil, err
	}
	m.ID = id

	if err := u.meds.Update(ctx, m); err != nil {
		if errors.Is(err, medication.ErrNotFound) {
			return nil, ErrMedicationNotFound
		}
		return nil, err
	}
	return u.meds.ListByUserID(ctx, userID)
}

func (u *Medications) Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) ([]medication.Medication, error) {
	if err := u.meds.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, medication.ErrNotFound) {
			return nil, ErrMedicationNotFound
		}
		return nil, err
	}
	return u.meds.ListByUserID(ctx, userID)
}

func buildMedication(userID uuid.UUID, in MedicationInput) (medication.Medication, error) {
	name := strings.TrimSpace(in.Name)
	freq := strings.TrimSpace(in.Frequency)
	if name == "" || freq == "" {
		return medication.Medication{}, ErrInvalidMedicationInput
	}

	times := make([]string, 0, len(in.Times))
	for _, t := range in.Times {
		t = strings.TrimSpace(t)
		if !timeOfDayRe.MatchString(t) {
			return medication.Medication{}, ErrInvalidMedicationInput
		}
		times = append(times, t)
	}
	if len(times) == 0 {
		return medication.Medication{}, ErrInvalidMedicationInput
	}

	start, err := time.Parse(dateLayout, strings.TrimSpace(in.StartDate))
	if err != nil {
		return medication.Medication{}, ErrInvalidMedicationInput
	}

	var end *time.Time
	if raw := strings.TrimSpace(in.EndDate); raw != "" {
		e, err := time.Parse(dateLayout, raw)
		if err != nil {
			return medication.Medication{}, ErrInvalidMedicationInput
		}
		if e.Before(start) {
			return medication.Medication{}, ErrDateRangeInverted
		}
		end = &e
	}

	return medication.Medication{
		UserID:    userID,
		Name:      name,
		Dosage:    strings.TrimSpace(in.Dosage),
		Frequency: freq,
		Times:     times,
		StartDate: start,
		EndDate:   end,
		Notes:     strings.TrimSpace(in.Notes),
	}, nil
}
