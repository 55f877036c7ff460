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

type MedicationHandler struct {
	uc usecase.MedicationUsecase
}

type medicationRequest struct {
	Name      string   `json:"name"`
	Dosage    string   `json:"dosage"`
	Frequency string   `json:"frequency"`
	Times     []string `json:"times"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	Notes     string   `json:"notes"`
}

func NewMedicationHandler(uc usecase.MedicationUsecase) *MedicationHandler {
	return &MedicationHandler{uc: uc}
}

func (h *MedicationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Post("/", h.Add)
	r.Get("/:id", h.Preview)
	r.Put("/:id", h.Update)
	r.Delete("/:id", h.Delete)
}

func (h *MedicationHandler) List(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	items, err := h.uc.List(c.Context(), userID)
	if err != nil {
		return mapMedicationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMedicationListResponse(items))
}

func (h *MedicationHandler) Preview(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	m, err := h.uc.Get(c.Context(), userID, id)
	if err != nil {
		return mapMedicationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMedicationResponse(m))
}

func (h *MedicationHandler) Add(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req medicationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	items, err := h.uc.Add(c.Context(), userID, medicationInputFromRequest(req))
	if err != nil {
		return mapMedicationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMedicationListResponse(items))
}

func (h *MedicationHandler) Update(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req medicationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	items, err := h.uc.Update(c.Context(), userID, id, medicationInputFromRequest(req))
	if err != nil {
		return mapMedicationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMedicationListResponse(items))
}

func (h *MedicationHandler) Delete(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	items, err := h.uc.Delete(c.Context(), userID, id)
	if err != nil {
		return mapMedicationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMedicationListResponse(items))
}

func medicationInputFromRequest(req medicationRequest) usecase.MedicationInput {
	return usecase.MedicationInput{
		Name:      req.Name,
		Dosage:    req.Dosage,
		Frequency: req.Frequency,
		Times:     req.Times,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Notes:     req.Notes,
	}
}

func mapMedicationUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidMedicationInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Name, frequency, at least one time of day, and a start date are required", nil, err)
	case errors.Is(err, usecase.ErrDateRangeInverted):
		return middleware.NewAppError(fiber.StatusBadRequest, "End date must not precede start date", nil, err)
	case errors.Is(err, usecase.ErrMedicationNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Medication not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
