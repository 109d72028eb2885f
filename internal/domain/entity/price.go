package entity

import "github.com/shopspring/decimal"

// OneToken una unidad de pago expresada en la denominación mínima (10^24).
// Los precios y depósitos se manejan siempre como enteros exactos sobre esa
// denominación; nunca con punto flotante.
var OneToken = decimal.New(1, 24)

// PriceEntry precio unitario exacto de un producto. Inmutable tras la inicialización.
type PriceEntry struct {
	Product ProductID
	Price   decimal.Decimal
}
