package handler

import (
	"errors"

	"qrupay/internal/delivery/http/dto"
	"qrupay/internal/delivery/http/middleware"
	"qrupay/internal/pkg/response"
	"qrupay/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

// saveProfileRequest mirrors the editor form: everything arrives as
// text, age and weight included, so an empty input stays distinguishable
// from zero.
type saveProfileRequest struct {
	BloodGroup               string `json:"blood_group"`
	Allergies                string `json:"allergies"`
	ChronicConditions        string `json:"chronic_conditions"`
	Medications              string `json:"medications"`
	EmergencyContactName     string `json:"emergency_contact_name"`
	EmergencyContactPhone    string `json:"emergency_contact_phone"`
	EmergencyContactRelation string `json:"emergency_contact_relation"`
	AdditionalNotes          string `json:"additional_notes"`
	Gender                   string `json:"gender"`
	Age                      string `json:"age"`
	Weight                   string `json:"weight"`
	Address                  string `json:"address"`
}

type setVisibilityRequest struct {
	IsPublic bool `json:"is_public"`
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.Get)
	r.Put("/", h.Save)
	r.Patch("/visibility", h.SetVisibility)
}

func (h *ProfileHandler) Get(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	p, err := h.uc.Get(c.Context(), userID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	// No profile yet: the editor starts from an empty form.
	if p == nil {
		return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{"profile": nil})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{"profile": dto.NewProfileResponse(*p)})
}

func (h *ProfileHandler) Save(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req saveProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	saved, err := h.uc.Save(c.Context(), userID, usecase.SaveProfileInput{
		BloodGroup:               req.BloodGroup,
		Allergies:                req.Allergies,
		ChronicConditions:        req.ChronicConditions,
		Medications:              req.Medications,
		EmergencyContactName:     req.EmergencyContactName,
		EmergencyContactPhone:    req.EmergencyContactPhone,
		EmergencyContactRelation: req.EmergencyContactRelation,
		AdditionalNotes:          req.AdditionalNotes,
		Gender:                   req.Gender,
		Age:                      req.Age,
		Weight:                   req.Weight,
		Address:                  req.Address,
	})
	if err != nil {
		return mapProfileUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{"profile": dto.NewProfileResponse(saved)})
}

func (h *ProfileHandler) SetVisibility(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req setVisibilityRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	updated, err := h.uc.SetVisibility(c.Context(), userID, req.IsPublic)
	if err != nil {
		return mapProfileUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{"profile": dto.NewProfileResponse(updated)})
}

func mapProfileUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrEmergencyContactRequired):
		return middleware.NewAppError(fiber.StatusBadRequest, "Emergency contact name and phone are required", nil, err)
	case errors.Is(err, usecase.ErrInvalidProfileInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrProfileNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Medical profile not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
