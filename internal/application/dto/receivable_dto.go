package dto

import "github.com/shopspring/decimal"

// CreateReceivableRequest body para POST /api/receivables.
// DueDate en formato 2006-01-02; si va vacío se calcula con PaymentTerms.
type CreateReceivableRequest struct {
	InvoiceNumber string          `json:"invoice_number"`
	EntityType    string          `json:"entity_type"` // customer | supplier
	EntityName    string          `json:"entity_name"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"` // USD | VES
	DueDate       string          `json:"due_date,omitempty"`
	PaymentTerms  int             `json:"payment_terms"`
	Description   string          `json:"description,omitempty"`
}

// ReceivableResponse cuenta por cobrar/pagar en respuestas.
type ReceivableResponse struct {
	ID            string          `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	EntityType    string          `json:"entity_type"`
	EntityName    string          `json:"entity_name"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	DueDate       string          `json:"due_date"`
	Status        string          `json:"status"`
	PaymentTerms  int             `json:"payment_terms"`
	Description   string          `json:"description,omitempty"`
	SaleID        string          `json:"sale_id,omitempty"`
}

// OutstandingResponse desglose de saldos pendientes por moneda.
// Nunca se combina un total cruzando monedas.
type OutstandingResponse struct {
	EntityName string                     `json:"entity_name,omitempty"`
	Totals     map[string]decimal.Decimal `json:"totals"` // moneda → suma
}
