package repository

import "github.com/jhoicas/Tienda-api/internal/domain/entity"

// AccountRepository define el puerto para las cuentas registradas.
type AccountRepository interface {
	Create(a *entity.Account) error
	// FindByUsername devuelve nil si la cuenta no existe.
	FindByUsername(username string) (*entity.Account, error)
}
