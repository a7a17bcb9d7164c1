package sales

import (
	"context"

	"github.com/flowi-app/flowi-api/internal/domain/entity"
	"github.com/flowi-app/flowi-api/internal/domain/repository"
)

// SalesTxRunner ejecuta una función dentro de una transacción que incluye los
// repos de venta, cuentas por cobrar y clientes (para ventas a crédito y
// acumulación de puntos en la misma transacción).
type SalesTxRunner interface {
	RunSale(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		receivableRepo repository.ReceivableRepository,
		customerRepo repository.CustomerRepository,
	) error) error
}

// ReceiptPDFGenerator genera el PDF del recibo de una venta.
// customer puede ser nil (consumidor final).
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, sale *entity.Sale, customer *entity.Customer) ([]byte, error)
}
