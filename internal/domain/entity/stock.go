package entity

// StockEntry cantidad restante de un producto en la máquina.
// Invariante: la cantidad nunca baja de cero; una compra que la dejaría
// negativa se rechaza antes de mutar el almacén.
type StockEntry struct {
	Product  ProductID
	Quantity uint8
}
