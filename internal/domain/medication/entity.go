package medication

import (
	"time"

	"github.com/google/uuid"
)

// Medication is one reminder entry owned by a user. Times holds
// "HH:MM" wall-clock values in the order the user entered them. A nil
// EndDate means the course is ongoing.
type Medication struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Dosage    string
	Frequency string
	Times     []string
	StartDate time.Time
	EndDate   *time.Time
	Notes     string
	CreatedAt time.Time
}

// ActiveOn reports whether the medication course covers the given day.
func (m Medication) ActiveOn(day time.Time) bool {
	d := day.Truncate(24 * time.Hour)
	if d.Before(m.StartDate.Truncate(24 * time.Hour)) {
		return false
	}
	if m.EndDate == nil {
		return true
	}
	return !d.After(m.EndDate.Truncate(24 * time.Hour))
}
