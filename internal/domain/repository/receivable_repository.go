package repository

import "github.com/flowi-app/flowi-api/internal/domain/entity"

// ReceivableRepository define el puerto de persistencia para Receivable.
// Create retorna domain.ErrDuplicateInvoiceNumber si el número de factura ya existe.
type ReceivableRepository interface {
	Create(r *entity.Receivable) error
	GetByID(id string) (*entity.Receivable, error)
	// List filtra por tipo de entidad y/o estado si no están vacíos.
	List(entityType, status string, limit, offset int) ([]*entity.Receivable, error)
	// ListOutstanding devuelve todas las cuentas pending u overdue, opcionalmente
	// filtradas por nombre de entidad.
	ListOutstanding(entityName string) ([]*entity.Receivable, error)
	// UpdateStatus persiste solo estado y updated_at (transiciones de aging y pago).
	UpdateStatus(r *entity.Receivable) error
}
