package kvstore

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

var _ repository.PriceRepository = (*PriceRepo)(nil)

// PriceRepo implementación de PriceRepository sobre el sustrato KV.
type PriceRepo struct {
	s Store
}

// NewPriceRepository construye el adaptador. Pasar almacén base o tx (Store).
func NewPriceRepository(s Store) *PriceRepo {
	return &PriceRepo{s: s}
}

// Put registra el precio del producto (solo inicialización).
func (r *PriceRepo) Put(e entity.PriceEntry) error {
	b, err := EncodePrice(e.Price)
	if err != nil {
		return err
	}
	return r.s.Put(context.Background(), NSPrices, EncodeProductID(e.Product), b)
}

// Get devuelve el precio exacto almacenado, o nil si no existe.
func (r *PriceRepo) Get(id entity.ProductID) (*decimal.Decimal, error) {
	b, err := r.s.Get(context.Background(), NSPrices, EncodeProductID(id))
	if err != nil || b == nil {
		return nil, err
	}
	d, err := DecodePrice(b)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
