package dto

import (
	"time"

	"qrupay/internal/domain/medication"

	"github.com/google/uuid"
)

type MedicationResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Dosage    string    `json:"dosage"`
	Frequency string    `json:"frequency"`
	Times     []string  `json:"times"`
	StartDate string    `json:"start_date"`
	EndDate   *string   `json:"end_date"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

func NewMedicationResponse(m medication.Medication) MedicationResponse {
	var end *string
	if m.EndDate != nil {
		s := m.EndDate.Format("2006-01-02")
		end = &s
	}
	return MedicationResponse{
		ID:        m.ID,
		Name:      m.Name,
		Dosage:    m.Dosage,
		Frequency: m.Frequency,
		Times:     m.Times,
		StartDate: m.StartDate.Format("2006-01-02"),
		EndDate:   end,
		Notes:     m.Notes,
		CreatedAt: m.CreatedAt,
	}
}

func NewMedicationListResponse(items []medication.Medication) []MedicationResponse {
	out := make([]MedicationResponse, 0, len(items))
	for _, m := range items {
		out = append(out, NewMedicationResponse(m))
	}
	return out
}
