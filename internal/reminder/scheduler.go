package reminder

import (
	"context"
	"log"
	"time"

	"qrupay/internal/domain/medication"

	"github.com/google/uuid"
)

// Notifier is satisfied by the ws hub.
type Notifier interface {
	NotifyMedicationDue(userID uuid.UUID, medicationID uuid.UUID, name, dosage, timeOfDay string)
}

// Scheduler scans active medications and pushes a due-dose event when
// one of a medication's times of day matches the current minute. One
// scan per interval, one event per matching dose; missed minutes are
// not replayed.
type Scheduler struct {
	meds     medication.Repository
	hub      Notifier
	interval time.Duration
	logger   *log.Logger

	now func() time.Time
}

func NewScheduler(meds medication.Repository, hub Notifier, interval time.Duration, logger *log.Logger) *Scheduler {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Scheduler{meds: meds, hub: hub, interval: interval, logger: logger, now: time.Now}
}

func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.scan(ctx)
		}
	}
}

func (s *Scheduler) scan(ctx context.Context) {
	now := s.now()
	minute := now.Format("15:04")

	items, err := s.meds.ListActive(ctx, now)
	if err != nil {
		if s.logger != nil {
			s.logger.Printf("reminder scan failed | error=%v", err)
		}
		return
	}

	due := 0
	for _, m := range items {
		for _, t := range m.Times {
			if t == minute {
				s.hub.NotifyMedicationDue(m.UserID, m.ID, m.Name, m.Dosage, t)
				due++
			}
		}
	}

	if due > 0 && s.logger != nil {
		s.logger.Printf("reminder scan | minute=%s active=%d due=%d", minute, len(items), due)
	}
}
