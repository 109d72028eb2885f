package kvstore

import (
	"context"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

var _ repository.PurchaseLogRepository = (*PurchaseLogRepo)(nil)

// PurchaseLogRepo implementación de PurchaseLogRepository sobre el sustrato KV.
// La clave es la secuencia big-endian: el orden de inserción y el orden de
// secuencia coinciden.
type PurchaseLogRepo struct {
	s Store
}

// NewPurchaseLogRepository construye el adaptador. Pasar almacén base o tx (Store).
func NewPurchaseLogRepository(s Store) *PurchaseLogRepo {
	return &PurchaseLogRepo{s: s}
}

// Append agrega un registro al final del historial.
func (r *PurchaseLogRepo) Append(rec *entity.PurchaseRecord) error {
	return r.s.Put(context.Background(), NSPurchases, EncodeSeq(rec.Seq), EncodePurchaseRecord(rec))
}

// Get devuelve el registro con esa secuencia, o nil si no existe.
func (r *PurchaseLogRepo) Get(seq uint64) (*entity.PurchaseRecord, error) {
	b, err := r.s.Get(context.Background(), NSPurchases, EncodeSeq(seq))
	if err != nil || b == nil {
		return nil, err
	}
	return DecodePurchaseRecord(b)
}

// List devuelve los registros [offset, offset+limit) en orden de llegada.
func (r *PurchaseLogRepo) List(offset, limit uint64) ([]entity.PurchaseRecord, error) {
	entries, err := r.s.List(context.Background(), NSPurchases, offset, limit)
	if err != nil {
		return nil, err
	}
	out := make([]entity.PurchaseRecord, 0, len(entries))
	for _, e := range entries {
		rec, err := DecodePurchaseRecord(e.Value)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, nil
}

// Len devuelve el largo del historial.
func (r *PurchaseLogRepo) Len() (uint64, error) {
	return r.s.Len(context.Background(), NSPurchases)
}
