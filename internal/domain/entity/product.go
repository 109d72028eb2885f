package entity

// ProductID identificador estable de producto (0-255). Es la clave que une
// catálogo, stock y precios; una vez asignado nunca se reutiliza para otro producto.
type ProductID uint8

// Product descriptor de producto del catálogo. Enumeración cerrada: el catálogo
// se puebla una sola vez en la inicialización y es de solo lectura después.
type Product string

// Variantes del catálogo.
const (
	ProductSmallSnack Product = "SmallSnack"
	ProductLargeSnack Product = "LargeSnack"
	ProductSoda       Product = "Soda"
	ProductIceCream   Product = "IceCream"
)

// Valid indica si el descriptor pertenece a la enumeración.
func (p Product) Valid() bool {
	switch p {
	case ProductSmallSnack, ProductLargeSnack, ProductSoda, ProductIceCream:
		return true
	}
	return false
}

// CatalogEntry par (id, descriptor) tal como se lista en el catálogo.
type CatalogEntry struct {
	ID      ProductID
	Product Product
}
