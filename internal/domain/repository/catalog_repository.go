package repository

import "github.com/jhoicas/Tienda-api/internal/domain/entity"

// CatalogRepository define el puerto para el catálogo de productos.
// Put solo se usa durante la inicialización; después el catálogo es de solo lectura.
type CatalogRepository interface {
	Put(e entity.CatalogEntry) error
	// Get devuelve nil si el producto no existe en el catálogo.
	Get(id entity.ProductID) (*entity.Product, error)
	// List devuelve las entradas en orden de inserción, recortadas al tamaño del almacén.
	List(offset, limit uint64) ([]entity.CatalogEntry, error)
	Len() (uint64, error)
}
