package usecase

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"qrupay/internal/domain/medication"

	"github.com/google/uuid"
)

type mockMedicationRepo struct {
	items map[uuid.UUID]medication.Medication
	err   error
}

func newMockMedicationRepo() *mockMedicationRepo {
	return &mockMedicationRepo{items: map[uuid.UUID]medication.Medication{}}
}

func (m *mockMedicationRepo) ListByUserID(_ context.Context, userID uuid.UUID) ([]medication.Medication, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]medication.Medication, 0)
	for _, it := range m.items {
		if it.UserID == userID {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.After(out[j].StartDate) })
	return out, nil
}

func (m *mockMedicationRepo) GetByID(_ context.Context, id, userID uuid.UUID) (medication.Medication, error) {
	if m.err != nil {
		return medication.Medication{}, m.err
	}
	it, ok := m.items[id]
	if !ok || it.UserID != userID {
		return medication.Medication{}, medication.ErrNotFound
	}
	return it, nil
}

func (m *mockMedicationRepo) Create(_ context.Context, it medication.Medication) error {
	if m.err != nil {
		return m.err
	}
	m.items[it.ID] = it
	return nil
}

func (m *mockMedicationRepo) Update(_ context.Context, it medication.Medication) error {
	if m.err != nil {
		return m.err
	}
	existing, ok := m.items[it.ID]
	if !ok || existing.UserID != it.UserID {
		return medication.ErrNotFound
	}
	it.CreatedAt = existing.CreatedAt
	m.items[it.ID] = it
	return nil
}

func (m *mockMedicationRepo) Delete(_ context.Context, id, userID uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	it, ok := m.items[id]
	if !ok || it.UserID != userID {
		return medication.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *mockMedicationRepo) ListActive(_ context.Context, day time.Time) ([]medication.Medication, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]medication.Medication, 0)
	for _, it := range m.items {
		if it.ActiveOn(day) {
			out = append(out, it)
		}
	}
	return out, nil
}

func validMedicationInput() MedicationInput {
	return MedicationInput{
		Name:      "Metformin",
		Dosage:    "500mg",
		Frequency: "twice daily",
		Times:     []string{"08:00", "20:00"},
		StartDate: "2026-01-01",
	}
}

func TestMedicationUsecase_Add_ReturnsRefetchedList(t *testing.T) {
	repo := newMockMedicationRepo()
	uc := NewMedicationUsecase(repo)
	userID := uuid.New()

	list, err := uc.Add(context.Background(), userID, validMedicationInput())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected refetched list of 1, got %d", len(list))
	}
	if list[0].ID == uuid.Nil {
		t.Fatalf("server must assign the id")
	}
	if list[0].CreatedAt.IsZero() {
		t.Fatalf("server must assign created_at")
	}
}

func TestMedicationUsecase_Add_Validation(t *testing.T) {
	uc := NewMedicationUsecase(newMockMedicationRepo())
	userID := uuid.New()

	cases := []struct {
		name   string
		mutate func(*MedicationInput)
		want   error
	}{
		{"empty name", func(in *MedicationInput) { in.Name = "  " }, ErrInvalidMedicationInput},
		{"empty frequency", func(in *MedicationInput) { in.Frequency = "" }, ErrInvalidMedicationInput},
		{"no times", func(in *MedicationInput) { in.Times = nil }, ErrInvalidMedicationInput},
		{"bad time", func(in *MedicationInput) { in.Times = []string{"25:00"} }, ErrInvalidMedicationInput},
		{"bad start date", func(in *MedicationInput) { in.StartDate = "01/01/2026" }, ErrInvalidMedicationInput},
		{"bad end date", func(in *MedicationInput) { in.EndDate = "soon" }, ErrInvalidMedicationInput},
		{"inverted range", func(in *MedicationInput) { in.EndDate = "2025-12-31" }, ErrDateRangeInverted},
	}
	for _, tc := range cases {
		in := validMedicationInput()
		tc.mutate(&in)
		if _, err := uc.Add(context.Background(), userID, in); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestMedicationUsecase_Add_EqualDatesAllowed(t *testing.T) {
	uc := NewMedicationUsecase(newMockMedicationRepo())

	in := validMedicationInput()
	in.EndDate = in.StartDate
	if _, err := uc.Add(context.Background(), uuid.New(), in); err != nil {
		t.Fatalf("single-day course must be valid, got %v", err)
	}
}

func TestMedicationUsecase_Update_ReplacesFields(t *testing.T) {
	repo := newMockMedicationRepo()
	uc := NewMedicationUsecase(repo)
	userID := uuid.New()

	list, err := uc.Add(context.Background(), userID, validMedicationInput())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	id := list[0].ID

	in := validMedicationInput()
	in.Dosage = "1000mg"
	in.Times = []string{"09:30"}
	updated, err := uc.Update(context.Background(), userID, id, in)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(updated) != 1 || updated[0].Dosage != "1000mg" || len(updated[0].Times) != 1 {
		t.Fatalf("edit must replace the field set, got %+v", updated)
	}
}

func TestMedicationUsecase_Update_NotFound(t *testing.T) {
	uc := NewMedicationUsecase(newMockMedicationRepo())

	_, err := uc.Update(context.Background(), uuid.New(), uuid.New(), validMedicationInput())
	if !errors.Is(err, ErrMedicationNotFound) {
		t.Fatalf("expected ErrMedicationNotFound, got %v", err)
	}
}

func TestMedicationUsecase_Delete_RemovesFromList(t *testing.T) {
	repo := newMockMedicationRepo()
	uc := NewMedicationUsecase(repo)
	userID := uuid.New()

	list, err := uc.Add(context.Background(), userID, validMedicationInput())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	after, err := uc.Delete(context.Background(), userID, list[0].ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(after) != 0 {
		t.Fatalf("expected empty list after delete, got %d", len(after))
	}
}

func TestMedicationUsecase_Delete_OtherUsersRecord(t *testing.T) {
	repo := newMockMedicationRepo()
	uc := NewMedicationUsecase(repo)

	owner := uuid.New()
	list, err := uc.Add(context.Background(), owner, validMedicationInput())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if _, err := uc.Delete(context.Background(), uuid.New(), list[0].ID); !errors.Is(err, ErrMedicationNotFound) {
		t.Fatalf("another user's record must look absent, got %v", err)
	}
	if len(repo.items) != 1 {
		t.Fatalf("record must survive a foreign delete attempt")
	}
}
