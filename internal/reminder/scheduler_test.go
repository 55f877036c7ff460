package reminder

import (
	"context"
	"errors"
	"testing"
	"time"

	"qrupay/internal/domain/medication"

	"github.com/google/uuid"
)

type fakeNotifier struct {
	events []string
}

func (f *fakeNotifier) NotifyMedicationDue(_ uuid.UUID, _ uuid.UUID, name, _ string, timeOfDay string) {
	f.events = append(f.events, name+"@"+timeOfDay)
}

type fakeMedRepo struct {
	active []medication.Medication
	err    error
}

func (f *fakeMedRepo) ListByUserID(context.Context, uuid.UUID) ([]medication.Medication, error) {
	return nil, nil
}

func (f *fakeMedRepo) GetByID(context.Context, uuid.UUID, uuid.UUID) (medication.Medication, error) {
	return medication.Medication{}, medication.ErrNotFound
}

func (f *fakeMedRepo) Create(context.Context, medication.Medication) error { return nil }
func (f *fakeMedRepo) Update(context.Context, medication.Medication) error { return nil }
func (f *fakeMedRepo) Delete(context.Context, uuid.UUID, uuid.UUID) error  { return nil }

func (f *fakeMedRepo) ListActive(context.Context, time.Time) ([]medication.Medication, error) {
	return f.active, f.err
}

func med(name string, times ...string) medication.Medication {
	return medication.Medication{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Name:   name,
		Times:  times,
	}
}

func TestScheduler_Scan_NotifiesMatchingMinute(t *testing.T) {
	repo := &fakeMedRepo{active: []medication.Medication{
		med("Metformin", "08:00", "20:00"),
		med("Lisinopril", "09:30"),
	}}
	n := &fakeNotifier{}
	s := NewScheduler(repo, n, time.Minute, nil)
	s.now = func() time.Time {
		return time.Date(2026, 8, 28, 8, 0, 12, 0, time.UTC)
	}

	s.scan(context.Background())

	if len(n.events) != 1 || n.events[0] != "Metformin@08:00" {
		t.Fatalf("expected one due event for Metformin@08:00, got %v", n.events)
	}
}

func TestScheduler_Scan_NoMatches(t *testing.T) {
	repo := &fakeMedRepo{active: []medication.Medication{med("Metformin", "08:00")}}
	n := &fakeNotifier{}
	s := NewScheduler(repo, n, time.Minute, nil)
	s.now = func() time.Time {
		return time.Date(2026, 8, 28, 8, 1, 0, 0, time.UTC)
	}

	s.scan(context.Background())

	if len(n.events) != 0 {
		t.Fatalf("expected no events, got %v", n.events)
	}
}

func TestScheduler_Scan_RepoErrorIsSwallowed(t *testing.T) {
	repo := &fakeMedRepo{err: errors.New("database down")}
	n := &fakeNotifier{}
	s := NewScheduler(repo, n, time.Minute, nil)

	s.scan(context.Background())

	if len(n.events) != 0 {
		t.Fatalf("expected no events on repo error, got %v", n.events)
	}
}

func TestScheduler_Run_StopsOnContextCancel(t *testing.T) {
	repo := &fakeMedRepo{}
	s := NewScheduler(repo, &fakeNotifier{}, 5*time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Run did not stop after cancel")
	}
}
