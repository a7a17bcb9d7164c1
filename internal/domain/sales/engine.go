// Package sales implementa el motor de cálculo de ventas bimoneda (USD/VES).
//
// Compute es una función pura: mismos ítems, método, tasa y detalle de pago
// producen siempre la misma venta. El id y el timestamp los estampa el caso de
// uso; la persistencia es responsabilidad del caller.
package sales

import (
	"github.com/shopspring/decimal"

	"github.com/flowi-app/flowi-api/internal/domain"
	"github.com/flowi-app/flowi-api/internal/domain/entity"
	"github.com/flowi-app/flowi-api/pkg/money"
)

// paymentEpsilon tolerancia de 1 centavo USD al validar pagos mixtos, para
// absorber el redondeo de la conversión VES→USD.
var paymentEpsilon = decimal.NewFromFloat(0.01)

// CartItem línea del carrito tal como la entrega la UI.
type CartItem struct {
	ProductID   string
	ProductName string
	Quantity    int
	PriceUSD    decimal.Decimal
}

// Compute valida el carrito y construye la venta con totales en ambas monedas.
//
// Reglas:
//   - carrito no vacío (domain.ErrEmptyCart), cantidades > 0 (domain.ErrInvalidQuantity),
//     precios ≥ 0 (domain.ErrInvalidInput), tasa > 0 (money.ErrInvalidRate).
//   - cada ítem congela PriceVES = round(PriceUSD × tasa); los totales son la
//     suma redondeada de precio × cantidad por moneda.
//   - método mixed: requiere details (domain.ErrMissingPaymentDetails); el
//     equivalente USD de lo pagado debe cubrir el total menos 1 centavo de
//     tolerancia o falla con domain.ErrInsufficientPayment. El excedente es
//     vuelto en USD.
func Compute(items []CartItem, method string, rate decimal.Decimal, details *entity.MixedPaymentDetails) (*entity.Sale, error) {
	if len(items) == 0 {
		return nil, domain.ErrEmptyCart
	}
	if method != entity.PaymentMethodUSD && method != entity.PaymentMethodVES && method != entity.PaymentMethodMixed {
		return nil, domain.ErrInvalidInput
	}
	if !rate.GreaterThan(decimal.Zero) {
		return nil, money.ErrInvalidRate
	}

	saleItems := make([]entity.SaleItem, 0, len(items))
	totalUSD := decimal.Zero
	totalVES := decimal.Zero
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, domain.ErrInvalidQuantity
		}
		if item.PriceUSD.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		priceVES, err := money.ToVES(item.PriceUSD, rate)
		if err != nil {
			return nil, err
		}
		qty := decimal.NewFromInt(int64(item.Quantity))
		totalUSD = totalUSD.Add(item.PriceUSD.Mul(qty))
		totalVES = totalVES.Add(priceVES.Mul(qty))
		saleItems = append(saleItems, entity.SaleItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			PriceUSD:    money.Round(item.PriceUSD),
			PriceVES:    priceVES,
		})
	}
	totalUSD = money.Round(totalUSD)
	totalVES = money.Round(totalVES)

	sale := &entity.Sale{
		PaymentMethod: method,
		TotalUSD:      totalUSD,
		TotalVES:      totalVES,
		RateUsed:      rate,
		Items:         saleItems,
	}

	if method == entity.PaymentMethodMixed {
		if details == nil {
			return nil, domain.ErrMissingPaymentDetails
		}
		if details.PaidUSD.LessThan(decimal.Zero) || details.PaidVES.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		vesAsUSD, err := money.ToUSD(details.PaidVES, rate)
		if err != nil {
			return nil, err
		}
		paidEquivalentUSD := details.PaidUSD.Add(vesAsUSD)
		if paidEquivalentUSD.LessThan(totalUSD.Sub(paymentEpsilon)) {
			return nil, domain.ErrInsufficientPayment
		}
		change := money.Round(paidEquivalentUSD.Sub(totalUSD))
		if change.LessThan(decimal.Zero) {
			// Faltante dentro de la tolerancia: no hay vuelto
			change = decimal.Zero
		}
		sale.PaidUSD = money.Round(details.PaidUSD)
		sale.PaidVES = money.Round(details.PaidVES)
		sale.ChangeUSD = change
		sale.LastFourDigits = details.LastFourDigits
	}

	return sale, nil
}
