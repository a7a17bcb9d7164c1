// Package loyalty implementa la acumulación de puntos y la derivación del
// nivel de cliente: 1 punto por cada USD entero gastado, niveles por umbral
// fijo. El nivel nunca baja automáticamente.
package loyalty

import (
	"github.com/shopspring/decimal"

	"github.com/flowi-app/flowi-api/internal/domain/entity"
)

// Umbrales de puntos por nivel.
const (
	SilverThreshold = 500
	GoldThreshold   = 1500
)

// PointsFor devuelve los puntos que gana una venta: floor(monto USD).
// Montos negativos no restan puntos.
func PointsFor(amountUSD decimal.Decimal) int {
	if amountUSD.LessThan(decimal.Zero) {
		return 0
	}
	return int(amountUSD.IntPart())
}

// LevelFor deriva el nivel a partir de los puntos acumulados.
func LevelFor(totalPoints int) string {
	switch {
	case totalPoints >= GoldThreshold:
		return entity.LevelGold
	case totalPoints >= SilverThreshold:
		return entity.LevelSilver
	default:
		return entity.LevelBronze
	}
}

// rank orden de los niveles para impedir descensos.
func rank(level string) int {
	switch level {
	case entity.LevelGold:
		return 2
	case entity.LevelSilver:
		return 1
	default:
		return 0
	}
}

// Accrue suma los puntos de la venta al cliente y sube el nivel si corresponde.
// Si el nivel derivado es menor al actual (ej. ajuste manual previo), se conserva
// el actual: el nivel es monótono.
func Accrue(c *entity.Customer, saleAmountUSD decimal.Decimal) {
	c.TotalPoints += PointsFor(saleAmountUSD)
	derived := LevelFor(c.TotalPoints)
	if rank(derived) > rank(c.CustomerLevel) {
		c.CustomerLevel = derived
	}
}
