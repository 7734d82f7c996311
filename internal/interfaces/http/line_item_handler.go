package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invoice-generator/internal/application/document"
	"github.com/jhoicas/invoice-generator/internal/application/dto"
	"github.com/jhoicas/invoice-generator/internal/domain"
)

// LineItemHandler maneja las peticiones HTTP de líneas de factura.
type LineItemHandler struct {
	uc *document.DocumentUseCase
}

// NewLineItemHandler construye el handler.
func NewLineItemHandler(uc *document.DocumentUseCase) *LineItemHandler {
	return &LineItemHandler{uc: uc}
}

// Normalize devuelve las líneas en forma canónica.
// POST /api/line-items/normalize
func (h *LineItemHandler) Normalize(c *fiber.Ctx) error {
	var in dto.LineItemDocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido: " + err.Error()})
	}
	resp, err := h.uc.Normalize(c.UserContext(), in)
	if err != nil {
		return writeUseCaseError(c, err)
	}
	return c.JSON(resp)
}

// PDF genera la representación gráfica de las líneas.
// POST /api/line-items/pdf
func (h *LineItemHandler) PDF(c *fiber.Ctx) error {
	var in dto.LineItemDocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido: " + err.Error()})
	}
	pdfBytes, filename, err := h.uc.RenderPDF(c.UserContext(), in)
	if err != nil {
		return writeUseCaseError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdfBytes)
}

func writeUseCaseError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
