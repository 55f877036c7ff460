package handler

import (
	"errors"

	"qrupay/internal/delivery/http/middleware"
	"qrupay/internal/pkg/response"
	"qrupay/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type QRCodeHandler struct {
	uc usecase.QRCodeUsecase
}

func NewQRCodeHandler(uc usecase.QRCodeUsecase) *QRCodeHandler {
	return &QRCodeHandler{uc: uc}
}

func (h *QRCodeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/qr")
	grp.Get("/link", h.Link)
	grp.Get("/", h.Image)
	grp.Get("/print", h.Print)
}

// Link returns the emergency URL for share and clipboard actions.
func (h *QRCodeHandler) Link(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	link, err := h.uc.Link(c.Context(), userID)
	if err != nil {
		return mapQRCodeUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]string{"emergency_url": link})
}

// Image serves the QR PNG; the attachment disposition makes the
// browser's default action a download.
func (h *QRCodeHandler) Image(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	png, err := h.uc.PNG(c.Context(), userID)
	if err != nil {
		return mapQRCodeUsecaseError(err)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="qrupay-qr.png"`)
	return c.Send(png)
}

func (h *QRCodeHandler) Print(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	page, err := h.uc.PrintPage(c.Context(), userID)
	if err != nil {
		return mapQRCodeUsecaseError(err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(page)
}

func mapQRCodeUsecaseError(err error) error {
	if errors.Is(err, usecase.ErrProfileNotFound) {
		return middleware.NewAppError(fiber.StatusNotFound, "Save your medical profile before generating a QR code", nil, err)
	}
	return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
}
