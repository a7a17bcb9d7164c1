// Package money centraliza la conversión USD↔VES y el formato de montos.
//
// Toda conversión recibe la tasa explícita como parámetro: no hay tasa global
// ambiente. El redondeo a 2 decimales (mitad hacia arriba) se aplica en cada
// frontera donde un total se calcula o persiste, para evitar deriva por
// acumulación de flotantes.
package money

import (
	"errors"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ErrInvalidRate tasa de cambio inválida (debe ser > 0).
var ErrInvalidRate = errors.New("tasa de cambio inválida: debe ser mayor que cero")

var (
	printerUSD = message.NewPrinter(language.English)
	printerVES = message.NewPrinter(language.Spanish)
)

// Round redondea un monto a 2 decimales (mitad hacia arriba).
func Round(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}

// ToVES convierte un monto USD a VES con la tasa dada (VES = USD × tasa).
func ToVES(amountUSD, rate decimal.Decimal) (decimal.Decimal, error) {
	if !rate.GreaterThan(decimal.Zero) {
		return decimal.Zero, ErrInvalidRate
	}
	return Round(amountUSD.Mul(rate)), nil
}

// ToUSD convierte un monto VES a USD con la tasa dada (USD = VES ÷ tasa).
func ToUSD(amountVES, rate decimal.Decimal) (decimal.Decimal, error) {
	if !rate.GreaterThan(decimal.Zero) {
		return decimal.Zero, ErrInvalidRate
	}
	return Round(amountVES.Div(rate)), nil
}

// FormatUSD formatea un monto en dólares para mostrar, ej: "$1,234.50".
func FormatUSD(amount decimal.Decimal) string {
	f, _ := Round(amount).Float64()
	return printerUSD.Sprintf("$%.2f", f)
}

// FormatVES formatea un monto en bolívares para mostrar, ej: "Bs. 45.059,25".
func FormatVES(amount decimal.Decimal) string {
	f, _ := Round(amount).Float64()
	return printerVES.Sprintf("Bs. %.2f", f)
}
