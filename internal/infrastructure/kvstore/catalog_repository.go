package kvstore

import (
	"context"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo implementación de CatalogRepository sobre el sustrato KV
// (usable con el almacén base o con una transacción).
type CatalogRepo struct {
	s Store
}

// NewCatalogRepository construye el adaptador. Pasar almacén base o tx (Store).
func NewCatalogRepository(s Store) *CatalogRepo {
	return &CatalogRepo{s: s}
}

// Put registra una entrada del catálogo (solo inicialización).
func (r *CatalogRepo) Put(e entity.CatalogEntry) error {
	return r.s.Put(context.Background(), NSCatalog, EncodeProductID(e.ID), EncodeProduct(e.Product))
}

// Get devuelve el descriptor del producto, o nil si no está en el catálogo.
func (r *CatalogRepo) Get(id entity.ProductID) (*entity.Product, error) {
	b, err := r.s.Get(context.Background(), NSCatalog, EncodeProductID(id))
	if err != nil || b == nil {
		return nil, err
	}
	p, err := DecodeProduct(b)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List devuelve las entradas del catálogo en orden de inserción.
func (r *CatalogRepo) List(offset, limit uint64) ([]entity.CatalogEntry, error) {
	entries, err := r.s.List(context.Background(), NSCatalog, offset, limit)
	if err != nil {
		return nil, err
	}
	out := make([]entity.CatalogEntry, 0, len(entries))
	for _, e := range entries {
		id, err := DecodeProductID(e.Key)
		if err != nil {
			return nil, err
		}
		p, err := DecodeProduct(e.Value)
		if err != nil {
			return nil, err
		}
		out = append(out, entity.CatalogEntry{ID: id, Product: p})
	}
	return out, nil
}

// Len devuelve el tamaño del catálogo.
func (r *CatalogRepo) Len() (uint64, error) {
	return r.s.Len(context.Background(), NSCatalog)
}
