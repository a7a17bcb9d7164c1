package entity

import "time"

// Supplier representa un proveedor del negocio.
type Supplier struct {
	ID        string
	Name      string
	TaxID     string // RIF
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
