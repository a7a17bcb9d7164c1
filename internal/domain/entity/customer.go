package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Niveles de lealtad derivados de los puntos acumulados.
const (
	LevelBronze = "bronze"
	LevelSilver = "silver"
	LevelGold   = "gold"
)

// Customer representa un cliente del negocio.
// TotalPoints acumula 1 punto por cada USD entero gastado; CustomerLevel se
// deriva de los puntos y nunca baja automáticamente.
type Customer struct {
	ID            string
	Name          string
	TaxID         string // RIF o cédula
	Email         string
	Phone         string
	TotalPoints   int
	CustomerLevel string          // bronze | silver | gold
	CreditLimit   decimal.Decimal // tope USD de cuentas por cobrar pendientes
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
