package repository

import "github.com/flowi-app/flowi-api/internal/domain/entity"

// SaleRepository define el puerto de persistencia para Sale y sus ítems.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateItem(item *entity.SaleItem) error
	GetByID(id string) (*entity.Sale, error)
	GetItemsBySaleID(saleID string) ([]entity.SaleItem, error)
	List(limit, offset int) ([]*entity.Sale, error)
}
