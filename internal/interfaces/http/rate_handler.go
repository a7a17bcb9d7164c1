package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/flowi-app/flowi-api/internal/application/dto"
	"github.com/flowi-app/flowi-api/internal/application/rates"
	"github.com/flowi-app/flowi-api/internal/domain"
	"github.com/flowi-app/flowi-api/pkg/money"
)

// RateHandler maneja la tasa de cambio USD→VES (protegido; POST solo admin).
type RateHandler struct {
	uc *rates.UseCase
}

// NewRateHandler construye el handler.
func NewRateHandler(uc *rates.UseCase) *RateHandler {
	return &RateHandler{uc: uc}
}

// SetRate POST /api/exchange-rate — activa una nueva tasa y desactiva la anterior.
func (h *RateHandler) SetRate(c *fiber.Ctx) error {
	var in dto.SetRateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SetRate(c.Context(), in)
	if err != nil {
		if errors.Is(err, money.ErrInvalidRate) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_RATE", Message: "usd_to_ves debe ser mayor a cero"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetActive GET /api/exchange-rate
func (h *RateHandler) GetActive(c *fiber.Ctx) error {
	out, err := h.uc.GetActive(c.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNoActiveRate) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_ACTIVE_RATE", Message: "no hay tasa de cambio activa"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// History GET /api/exchange-rate/history?limit=20&offset=0
func (h *RateHandler) History(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.uc.History(c.Context(), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}
