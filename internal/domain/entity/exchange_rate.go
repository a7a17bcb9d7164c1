package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate tasa de cambio USD→VES.
// Exactamente una tasa está activa a la vez; las anteriores se conservan
// desactivadas como historial de auditoría.
type ExchangeRate struct {
	ID        string
	USDToVES  decimal.Decimal // > 0
	Source    string          // ej: "BCV", "manual"
	IsActive  bool
	CreatedAt time.Time
}
