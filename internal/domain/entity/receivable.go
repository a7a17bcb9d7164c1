package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una cuenta por cobrar/pagar.
// Transiciones: pending → overdue (por fecha), pending/overdue → paid (acción explícita).
// paid es terminal: ninguna transición sale de él.
const (
	ReceivableStatusPending = "pending"
	ReceivableStatusPaid    = "paid"
	ReceivableStatusOverdue = "overdue"
)

// Tipos de entidad a la que pertenece la cuenta.
const (
	EntityTypeCustomer = "customer" // cuenta por cobrar (cliente nos debe)
	EntityTypeSupplier = "supplier" // cuenta por pagar (debemos al proveedor)
)

// Monedas admitidas en cuentas por cobrar. Nunca se agregan montos cruzando monedas.
const (
	CurrencyUSD = "USD"
	CurrencyVES = "VES"
)

// Receivable representa una factura pendiente por cobrar o pagar.
// Referencia a la entidad por nombre/id (referencia débil, sin borrado en cascada).
type Receivable struct {
	ID            string
	InvoiceNumber string // único
	EntityType    string // customer | supplier
	EntityName    string
	Amount        decimal.Decimal // > 0, en la moneda indicada
	Currency      string          // USD | VES
	DueDate       time.Time
	Status        string // pending | paid | overdue
	PaymentTerms  int    // días de plazo
	Description   string
	SaleID        string // opcional: venta a crédito que la originó
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
