package kvstore

import (
	"context"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre el sustrato KV
// (usable con el almacén base o con una transacción).
type StockRepo struct {
	s Store
}

// NewStockRepository construye el adaptador. Pasar almacén base o tx (Store).
func NewStockRepository(s Store) *StockRepo {
	return &StockRepo{s: s}
}

// Put sobrescribe la cantidad del producto; crea la entrada si no existe.
func (r *StockRepo) Put(e entity.StockEntry) error {
	return r.s.Put(context.Background(), NSStock, EncodeProductID(e.Product), EncodeQuantity(e.Quantity))
}

// Get devuelve la entrada de stock, o nil si el producto no tiene entrada.
func (r *StockRepo) Get(id entity.ProductID) (*entity.StockEntry, error) {
	b, err := r.s.Get(context.Background(), NSStock, EncodeProductID(id))
	if err != nil || b == nil {
		return nil, err
	}
	q, err := DecodeQuantity(b)
	if err != nil {
		return nil, err
	}
	return &entity.StockEntry{Product: id, Quantity: q}, nil
}

// List devuelve las entradas de stock en orden de inserción.
func (r *StockRepo) List(offset, limit uint64) ([]entity.StockEntry, error) {
	entries, err := r.s.List(context.Background(), NSStock, offset, limit)
	if err != nil {
		return nil, err
	}
	out := make([]entity.StockEntry, 0, len(entries))
	for _, e := range entries {
		id, err := DecodeProductID(e.Key)
		if err != nil {
			return nil, err
		}
		q, err := DecodeQuantity(e.Value)
		if err != nil {
			return nil, err
		}
		out = append(out, entity.StockEntry{Product: id, Quantity: q})
	}
	return out, nil
}

// Len devuelve la cantidad de productos con entrada de stock.
func (r *StockRepo) Len() (uint64, error) {
	return r.s.Len(context.Background(), NSStock)
}
