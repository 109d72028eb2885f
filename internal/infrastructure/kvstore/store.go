package kvstore

import "context"

// Espacios de nombres de los almacenes dentro del sustrato clave-valor.
// Cada región es independiente; las claves son secuencias de bytes.
const (
	NSCatalog   = "catalog"
	NSStock     = "stock"
	NSPrices    = "prices"
	NSPurchases = "purchases"
	NSAccounts  = "accounts"
)

// Entry par clave-valor tal como lo devuelve la iteración (orden de inserción).
type Entry struct {
	Key   []byte
	Value []byte
}

// Store sustrato clave-valor con get/insert/iterate y espacios de nombres.
// La iteración es determinista y estable entre llamadas mientras no haya
// mutaciones: sobrescribir una clave conserva su posición original.
type Store interface {
	// Get devuelve nil (sin error) si la clave no existe.
	Get(ctx context.Context, ns string, key []byte) ([]byte, error)
	// Put inserta o sobrescribe el valor de la clave.
	Put(ctx context.Context, ns string, key, value []byte) error
	Len(ctx context.Context, ns string) (uint64, error)
	// List devuelve las entradas [offset, offset+limit) en orden de inserción,
	// recortadas al tamaño del espacio. Offset fuera de rango = resultado vacío.
	List(ctx context.Context, ns string, offset, limit uint64) ([]Entry, error)
}

// TxStore sustrato que además abre transacciones con confirmación atómica.
type TxStore interface {
	Store
	Begin(ctx context.Context) (Tx, error)
}

// Tx transacción: las escrituras quedan pendientes hasta Commit y se descartan
// por completo con Rollback. Las lecturas ven las escrituras propias.
type Tx interface {
	Store
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
