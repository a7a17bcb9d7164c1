package dto

import "github.com/shopspring/decimal"

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	PriceUSD    decimal.Decimal `json:"price_usd"`
	Category    string          `json:"category,omitempty"`
	Stock       int             `json:"stock,omitempty"`
}

// UpdateProductRequest body para PUT /api/products/:id (campos opcionales).
type UpdateProductRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	PriceUSD    *decimal.Decimal `json:"price_usd,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Stock       *int             `json:"stock,omitempty"`
}

// ProductResponse producto en respuestas. PriceVES se calcula a la tasa activa
// solo para mostrar; el precio congelado por venta vive en cada SaleItem.
type ProductResponse struct {
	ID          string          `json:"id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	PriceUSD    decimal.Decimal `json:"price_usd"`
	PriceVES    decimal.Decimal `json:"price_ves,omitempty"`
	Category    string          `json:"category,omitempty"`
	Stock       int             `json:"stock"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
