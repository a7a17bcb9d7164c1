package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/flowi-app/flowi-api/internal/application/dto"
	"github.com/flowi-app/flowi-api/internal/application/receivables"
	"github.com/flowi-app/flowi-api/internal/domain"
)

// ReceivableHandler maneja las cuentas por cobrar/pagar (protegido).
type ReceivableHandler struct {
	uc *receivables.UseCase
}

// NewReceivableHandler construye el handler.
func NewReceivableHandler(uc *receivables.UseCase) *ReceivableHandler {
	return &ReceivableHandler{uc: uc}
}

// Create POST /api/receivables
func (h *ReceivableHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReceivableRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invoice_number, entity_type, entity_name, amount > 0 y currency son requeridos"})
		}
		if errors.Is(err, domain.ErrDuplicateInvoiceNumber) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_INVOICE", Message: "ya existe una factura con ese número"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/receivables?entity_type=customer&status=pending&limit=20&offset=0
//
// Los estados devueltos ya vienen refrescados: una cuenta pending vencida
// aparece (y queda persistida) como overdue.
func (h *ReceivableHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.uc.List(c.Context(), c.Query("entity_type"), c.Query("status"), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// MarkPaid POST /api/receivables/:id/pay
func (h *ReceivableHandler) MarkPaid(c *fiber.Ctx) error {
	out, err := h.uc.MarkPaid(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cuenta no encontrada"})
		}
		if errors.Is(err, domain.ErrAlreadyPaid) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_PAID", Message: "la cuenta ya está pagada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Outstanding GET /api/receivables/outstanding?entity_name=X&currency=USD
//
// Devuelve el saldo pendiente agrupado por moneda; nunca se suman USD con VES.
func (h *ReceivableHandler) Outstanding(c *fiber.Ctx) error {
	out, err := h.uc.Outstanding(c.Context(), c.Query("entity_name"), c.Query("currency"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
