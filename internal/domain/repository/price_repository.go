package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// PriceRepository define el puerto para la tabla de precios.
// Los precios se escriben una sola vez en la inicialización.
type PriceRepository interface {
	Put(e entity.PriceEntry) error
	// Get devuelve nil si el producto no tiene precio registrado.
	Get(id entity.ProductID) (*decimal.Decimal, error)
}
