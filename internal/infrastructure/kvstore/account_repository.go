package kvstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo implementación de AccountRepository sobre el sustrato KV.
// Las cuentas no forman parte del estado del contrato de la tienda, así que
// se serializan en JSON en vez de la codificación binaria de los almacenes.
type AccountRepo struct {
	s Store
}

// NewAccountRepository construye el adaptador.
func NewAccountRepository(s Store) *AccountRepo {
	return &AccountRepo{s: s}
}

type accountRecord struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

// Create persiste una cuenta nueva. Devuelve ErrAccountExists si el username ya está tomado.
func (r *AccountRepo) Create(a *entity.Account) error {
	ctx := context.Background()
	key := []byte(a.Username)
	existing, err := r.s.Get(ctx, NSAccounts, key)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrAccountExists
	}
	b, err := json.Marshal(accountRecord{
		ID:           a.ID,
		Username:     a.Username,
		PasswordHash: a.PasswordHash,
		CreatedAt:    a.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("serializar cuenta: %w", err)
	}
	return r.s.Put(ctx, NSAccounts, key, b)
}

// FindByUsername devuelve la cuenta, o nil si no existe.
func (r *AccountRepo) FindByUsername(username string) (*entity.Account, error) {
	b, err := r.s.Get(context.Background(), NSAccounts, []byte(username))
	if err != nil || b == nil {
		return nil, err
	}
	var rec accountRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return nil, fmt.Errorf("deserializar cuenta: %w", err)
	}
	return &entity.Account{
		ID:           rec.ID,
		Username:     rec.Username,
		PasswordHash: rec.PasswordHash,
		CreatedAt:    rec.CreatedAt,
	}, nil
}
