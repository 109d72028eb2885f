package repository

import "github.com/jhoicas/Tienda-api/internal/domain/entity"

// PurchaseLogRepository define el puerto para el historial de compras (append-only).
type PurchaseLogRepository interface {
	Append(r *entity.PurchaseRecord) error
	// Get devuelve nil si no existe un registro con esa secuencia.
	Get(seq uint64) (*entity.PurchaseRecord, error)
	List(offset, limit uint64) ([]entity.PurchaseRecord, error)
	Len() (uint64, error)
}
