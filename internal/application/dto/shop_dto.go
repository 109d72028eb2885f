package dto

// BuyRequest compra de una unidad de un producto. AttachedDeposit es el valor
// adjunto a la llamada, en la denominación mínima, como entero decimal en string.
type BuyRequest struct {
	ProductID       uint8  `json:"product_id"`
	AttachedDeposit string `json:"attached_deposit"`
}

// BuyResponse acuse de la compra.
type BuyResponse struct {
	Message string `json:"message"`
}

// SetAvailabilityRequest sobrescritura administrativa de stock.
type SetAvailabilityRequest struct {
	ProductID uint8 `json:"product_id"`
	Amount    uint8 `json:"amount"`
}

// SetAvailabilityResponse par aplicado (producto, cantidad).
type SetAvailabilityResponse struct {
	ProductID uint8 `json:"product_id"`
	Amount    uint8 `json:"amount"`
}

// CatalogEntryResponse entrada del catálogo.
type CatalogEntryResponse struct {
	ProductID uint8  `json:"product_id"`
	Product   string `json:"product"`
}

// CatalogListResponse página del catálogo.
type CatalogListResponse struct {
	Items []CatalogEntryResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}

// StockEntryResponse entrada de stock.
type StockEntryResponse struct {
	ProductID uint8 `json:"product_id"`
	Quantity  uint8 `json:"quantity"`
}

// StockListResponse página del stock.
type StockListResponse struct {
	Items []StockEntryResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}

// PriceResponse precio exacto en la denominación mínima (entero en string).
type PriceResponse struct {
	ProductID uint8  `json:"product_id"`
	Price     string `json:"price"`
}

// PurchaseResponse registro del historial de compras.
type PurchaseResponse struct {
	Seq       uint64 `json:"seq"`
	Buyer     string `json:"buyer"`
	ProductID uint8  `json:"product_id"`
}

// PurchaseListResponse página del historial.
type PurchaseListResponse struct {
	Items []PurchaseResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
