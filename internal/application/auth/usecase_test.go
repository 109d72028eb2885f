package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/internal/application/auth"
	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/infrastructure/kvstore"
	pkgjwt "github.com/jhoicas/Tienda-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func newAuthUC(t *testing.T) *auth.UseCase {
	t.Helper()
	return auth.NewUseCase(kvstore.NewAccountRepository(kvstore.NewMemoryStore()), auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "tienda-api-test",
	})
}

func TestRegister_CreaLaCuenta(t *testing.T) {
	uc := newAuthUC(t)

	account, err := uc.Register(dto.RegisterRequest{Username: "alice", Password: "s3cret!"})
	require.NoError(t, err)
	assert.NotEmpty(t, account.ID)
	assert.Equal(t, "alice", account.Username)
	assert.False(t, account.CreatedAt.IsZero())
}

func TestRegister_ValidaEntrada(t *testing.T) {
	uc := newAuthUC(t)

	_, err := uc.Register(dto.RegisterRequest{Username: "", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Register(dto.RegisterRequest{Username: "alice", Password: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_UsernameDuplicado(t *testing.T) {
	uc := newAuthUC(t)

	_, err := uc.Register(dto.RegisterRequest{Username: "alice", Password: "s3cret!"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Username: "alice", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrAccountExists)
}

func TestLogin_EmiteTokenConElUsername(t *testing.T) {
	uc := newAuthUC(t)
	_, err := uc.Register(dto.RegisterRequest{Username: "alice", Password: "s3cret!"})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Username: "alice", Password: "s3cret!"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, "alice", out.Account.Username)

	// El username del token es la identidad de invocador de la tienda.
	accountID, username, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.Account.ID, accountID)
	assert.Equal(t, "alice", username)
}

func TestLogin_Rechazos(t *testing.T) {
	uc := newAuthUC(t)
	_, err := uc.Register(dto.RegisterRequest{Username: "alice", Password: "s3cret!"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Username: "alice", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Username: "nadie", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}
