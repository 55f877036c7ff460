package profile

import (
	"time"

	"github.com/google/uuid"
)

// MedicalProfile is the emergency medical record tied to exactly one
// user. The profile id, not the user id, is the public lookup key so
// the emergency link never exposes the owning account.
type MedicalProfile struct {
	ID     uuid.UUID
	UserID uuid.UUID

	BloodGroup               string
	Allergies                string
	ChronicConditions        string
	Medications              string
	EmergencyContactName     string
	EmergencyContactPhone    string
	EmergencyContactRelation string
	AdditionalNotes          string
	Gender                   string
	Age                      *int
	Weight                   *float64
	Address                  string

	// IsPublic gates the unauthenticated emergency view. Profiles are
	// private until the owner explicitly publishes them.
	IsPublic bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BloodGroups is the set of values the editor accepts for BloodGroup.
var BloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

// Genders is the set of values the editor accepts for Gender.
var Genders = []string{"Male", "Female", "Other"}

func ValidBloodGroup(v string) bool {
	if v == "" {
		return true
	}
	for _, g := range BloodGroups {
		if v == g {
			return true
		}
	}
	return false
}

func ValidGender(v string) bool {
	if v == "" {
		return true
	}
	for _, g := range Genders {
		if v == g {
			return true
		}
	}
	return false
}
