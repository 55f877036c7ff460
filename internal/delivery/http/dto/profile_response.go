package dto

import (
	"time"

	"qrupay/internal/domain/profile"

	"github.com/google/uuid"
)

type ProfileResponse struct {
	ID                       uuid.UUID `json:"id"`
	UserID                   uuid.UUID `json:"user_id"`
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
	IsPublic                 bool      `json:"is_public"`
	CreatedAt                time.Time `json:"created_at"`
	UpdatedAt                time.Time `json:"updated_at"`
}

func NewProfileResponse(p profile.MedicalProfile) ProfileResponse {
	return ProfileResponse{
		ID:                       p.ID,
		UserID:                   p.UserID,
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
		IsPublic:                 p.IsPublic,
		CreatedAt:                p.CreatedAt,
		UpdatedAt:                p.UpdatedAt,
	}
}
