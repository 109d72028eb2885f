package repository

import "github.com/jhoicas/Tienda-api/internal/domain/entity"

// StockRepository define el puerto para consultar/sobrescribir el stock por producto.
// Put es una sobrescritura absoluta (no delta); crea la entrada si no existe.
type StockRepository interface {
	Put(e entity.StockEntry) error
	// Get devuelve nil si no hay entrada de stock para el producto.
	Get(id entity.ProductID) (*entity.StockEntry, error)
	List(offset, limit uint64) ([]entity.StockEntry, error)
	Len() (uint64, error)
}
