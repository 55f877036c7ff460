package dto

import (
	"qrupay/internal/domain/profile"

	"github.com/google/uuid"
)

// EmergencyProfileResponse is the public read-only rendering. It
// deliberately omits the owning user id and the visibility flag; the
// profile id is the only identifier the emergency link carries.
type EmergencyProfileResponse struct {
	ID                       uuid.UUID `json:"id"`
	BloodGroup               string    `json:"blood_group"`
	Allergies                string    `json:"allergies"`
	ChronicConditions        string    `json:"chronic_conditions"`
	Medications              string    `json:"medications"`
	EmergencyContactName     string    `json:"emergency_contact_name"`
	EmergencyContactPhone    string    `json:"emergency_contact_phone"`
	EmergencyContactRelation string    `json:"emergency_contact_relation"`
	AdditionalNotes          string    `json:"additional_notes"`
	Gender                   string    `json:"gender"`
	Age                      *int      `json:"age"`
	Weight                   *float64  `json:"weight"`
	Address                  string    `json:"address"`

	// CallHref is a ready-made tel: link for the one-tap call action.
	CallHref string `json:"call_href"`
}

func NewEmergencyProfileResponse(p profile.MedicalProfile) EmergencyProfileResponse {
	return EmergencyProfileResponse{
		ID:                       p.ID,
		BloodGroup:               p.BloodGroup,
		Allergies:                p.Allergies,
		ChronicConditions:        p.ChronicConditions,
		Medications:              p.Medications,
		EmergencyContactName:     p.EmergencyContactName,
		EmergencyContactPhone:    p.EmergencyContactPhone,
		EmergencyContactRelation: p.EmergencyContactRelation,
		AdditionalNotes:          p.AdditionalNotes,
		Gender:                   p.Gender,
		Age:                      p.Age,
		Weight:                   p.Weight,
		Address:                  p.Address,
		CallHref:                 "tel:" + p.EmergencyContactPhone,
	}
}
