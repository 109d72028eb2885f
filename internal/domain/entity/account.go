package entity

import "time"

// Account cuenta registrada que puede invocar la tienda. El Username es la
// identidad que viaja en el token y contra la que se compara el dueño.
type Account struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	CreatedAt    time.Time
}
