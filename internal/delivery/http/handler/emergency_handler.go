package handler

import (
	"errors"

	"qrupay/internal/delivery/http/dto"
	"qrupay/internal/delivery/http/middleware"
	"qrupay/internal/pkg/response"
	"qrupay/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// EmergencyNotFoundMessage is the single user-facing message for a
// missing, malformed, or unpublished profile id. Keeping it to one
// string guarantees the two causes stay indistinguishable.
const EmergencyNotFoundMessage = "Medical profile not found or not public"

type EmergencyHandler struct {
	uc usecase.EmergencyUsecase
}

func NewEmergencyHandler(uc usecase.EmergencyUsecase) *EmergencyHandler {
	return &EmergencyHandler{uc: uc}
}

func (h *EmergencyHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/emergency/:profileId", h.View)
}

func (h *EmergencyHandler) View(c fiber.Ctx) error {
	p, err := h.uc.Lookup(c.Context(), c.Params("profileId"))
	if err != nil {
		if errors.Is(err, usecase.ErrEmergencyNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, EmergencyNotFoundMessage, nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewEmergencyProfileResponse(p))
}
