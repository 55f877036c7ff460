package handler

import (
	"errors"

	"qrupay/internal/delivery/http/middleware"
	"qrupay/internal/pkg/response"
	"qrupay/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ContactHandler struct {
	uc usecase.ContactUsecase
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func NewContactHandler(uc usecase.ContactUsecase) *ContactHandler {
	return &ContactHandler{uc: uc}
}

func (h *ContactHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/contact", h.Send)
}

func (h *ContactHandler) Send(c fiber.Ctx) error {
	var req contactRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	err := h.uc.Send(c.Context(), usecase.ContactInput{Name: req.Name, Email: req.Email, Message: req.Message})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidContactInput):
			return middleware.NewAppError(fiber.StatusBadRequest, "Name, email, and message are required", nil, err)
		case errors.Is(err, usecase.ErrContactDisabled):
			return middleware.NewAppError(fiber.StatusNotFound, "Contact form is not available", nil, err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
		}
	}

	return response.Success(c, fiber.StatusOK, "Message sent", nil)
}
