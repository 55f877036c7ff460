package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type MedicationDueEvent struct {
	Type         string `json:"type"`
	MedicationID string `json:"medication_id"`
	Name         string `json:"name"`
	Dosage       string `json:"dosage,omitempty"`
	Time         string `json:"time"`
	Timestamp    string `json:"timestamp"`
}

// NotifyMedicationDue pushes a due-dose event to the owner's
// connected clients. Best effort; a miss is not an error.
func (h *Hub) NotifyMedicationDue(userID uuid.UUID, medicationID uuid.UUID, name, dosage, timeOfDay string) {
	if h == nil {
		return
	}

	evt := MedicationDueEvent{
		Type:         "medication_due",
		MedicationID: medicationID.String(),
		Name:         name,
		Dosage:       dosage,
		Time:         timeOfDay,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.SendToUser(userID, b)
}
