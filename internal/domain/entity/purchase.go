package entity

// PurchaseRecord registro del historial de compras. El historial es append-only:
// los registros nunca se modifican ni se eliminan y Seq refleja el orden de llegada.
type PurchaseRecord struct {
	Seq     uint64
	Buyer   string
	Product ProductID
}
