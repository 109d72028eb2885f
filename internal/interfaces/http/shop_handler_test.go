package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/internal/application/auth"
	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/application/shop"
	"github.com/jhoicas/Tienda-api/internal/infrastructure/kvstore"
	"github.com/jhoicas/Tienda-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/Tienda-api/internal/interfaces/http"
	"github.com/jhoicas/Tienda-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "tienda-api-test"
	testOwner     = "shop.local"
	oneToken      = "1000000000000000000000000" // 10^24, denominación mínima
	twoTokens     = "2000000000000000000000000"
)

// buildTestApp levanta la aplicación completa contra el almacén en memoria,
// con la tienda ya inicializada.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()

	store := kvstore.NewMemoryStore()
	shopUC := shop.NewUseCase(
		kvstore.NewTxRunner(store),
		kvstore.NewCatalogRepository(store),
		kvstore.NewStockRepository(store),
		kvstore.NewPriceRepository(store),
		kvstore.NewPurchaseLogRepository(store),
		shop.Config{Account: testOwner},
		logger.NewNop(),
	)
	authUC := auth.NewUseCase(kvstore.NewAccountRepository(store), auth.JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: 60,
		Issuer:     testIssuer,
	})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ShopUC:    shopUC,
		AuthUC:    authUC,
		Receipts:  pdf.NewReceiptGenerator("Tienda Test"),
		JWTSecret: testJWTSecret,
	})

	resp := doJSON(t, app, http.MethodPost, "/api/shop/initialize", nil, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return app
}

// registerAndLogin da de alta la cuenta y devuelve "Bearer <token>".
func registerAndLogin(t *testing.T, app *fiber.App, username string) string {
	t.Helper()

	body := dto.RegisterRequest{Username: username, Password: "s3cret!"}
	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", body, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/auth/login", dto.LoginRequest{
		Username: username, Password: "s3cret!",
	}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.LoginResponse
	decodeBody(t, resp, &out)
	require.NotEmpty(t, out.Token)
	return "Bearer " + out.Token
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any, authHeader string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}

func errorCode(t *testing.T, resp *http.Response) string {
	t.Helper()
	var e dto.ErrorResponse
	decodeBody(t, resp, &e)
	return e.Code
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestInitialize_SegundaVezDevuelve409(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/shop/initialize", nil, "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "ALREADY_INITIALIZED", errorCode(t, resp))
}

func TestViewCatalog_DevuelveLaSemilla(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/shop/catalog", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.CatalogListResponse
	decodeBody(t, resp, &out)
	require.Len(t, out.Items, 4)
	assert.Equal(t, "SmallSnack", out.Items[0].Product)
	assert.Equal(t, "IceCream", out.Items[3].Product)
}

func TestGetPrice_ProductoConocidoYDesconocido(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/shop/products/2/price", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.PriceResponse
	decodeBody(t, resp, &out)
	assert.Equal(t, "3000000000000000000000000", out.Price)

	resp = doJSON(t, app, http.MethodGet, "/api/shop/products/99/price", nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestBuy_SinTokenDevuelve401(t *testing.T) {
	app := buildTestApp(t)
	body := dto.BuyRequest{ProductID: 0, AttachedDeposit: oneToken}
	resp := doJSON(t, app, http.MethodPost, "/api/shop/buy", body, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestBuy_FlujoCompleto(t *testing.T) {
	app := buildTestApp(t)
	token := registerAndLogin(t, app, "alice")

	body := dto.BuyRequest{ProductID: 0, AttachedDeposit: oneToken}
	resp := doJSON(t, app, http.MethodPost, "/api/shop/buy", body, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.BuyResponse
	decodeBody(t, resp, &out)
	assert.Equal(t, shop.AckPurchase, out.Message)

	// El historial registra la compra con el username del token.
	resp = doJSON(t, app, http.MethodGet, "/api/purchases/", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list dto.PurchaseListResponse
	decodeBody(t, resp, &list)
	require.Len(t, list.Items, 1)
	assert.Equal(t, uint64(0), list.Items[0].Seq)
	assert.Equal(t, "alice", list.Items[0].Buyer)
}

func TestBuy_ConPropina(t *testing.T) {
	app := buildTestApp(t)
	token := registerAndLogin(t, app, "alice")

	body := dto.BuyRequest{ProductID: 0, AttachedDeposit: twoTokens}
	resp := doJSON(t, app, http.MethodPost, "/api/shop/buy", body, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.BuyResponse
	decodeBody(t, resp, &out)
	assert.Equal(t, shop.AckTips, out.Message)
}

func TestBuy_ErroresDeNegocio(t *testing.T) {
	app := buildTestApp(t)
	token := registerAndLogin(t, app, "alice")

	// Producto fuera del catálogo.
	resp := doJSON(t, app, http.MethodPost, "/api/shop/buy",
		dto.BuyRequest{ProductID: 255, AttachedDeposit: oneToken}, token)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "PRODUCT_NOT_FOUND", errorCode(t, resp))

	// El producto 3 se siembra sin stock.
	resp = doJSON(t, app, http.MethodPost, "/api/shop/buy",
		dto.BuyRequest{ProductID: 3, AttachedDeposit: twoTokens}, token)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "OUT_OF_STOCK", errorCode(t, resp))

	// Depósito por debajo del precio.
	resp = doJSON(t, app, http.MethodPost, "/api/shop/buy",
		dto.BuyRequest{ProductID: 2, AttachedDeposit: oneToken}, token)
	assert.Equal(t, http.StatusPaymentRequired, resp.StatusCode)
	assert.Equal(t, "INSUFFICIENT_DEPOSIT", errorCode(t, resp))

	// Depósito mal formado.
	resp = doJSON(t, app, http.MethodPost, "/api/shop/buy",
		dto.BuyRequest{ProductID: 0, AttachedDeposit: "-5"}, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSetAvailability_SoloElDueno(t *testing.T) {
	app := buildTestApp(t)
	aliceToken := registerAndLogin(t, app, "alice")
	ownerToken := registerAndLogin(t, app, testOwner)

	body := dto.SetAvailabilityRequest{ProductID: 3, Amount: 25}

	resp := doJSON(t, app, http.MethodPut, "/api/shop/stock", body, aliceToken)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPut, "/api/shop/stock", body, ownerToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.SetAvailabilityResponse
	decodeBody(t, resp, &out)
	assert.Equal(t, uint8(25), out.Amount)

	// La sobrescritura queda visible en la vista de stock.
	resp = doJSON(t, app, http.MethodGet, "/api/shop/stock", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var stock dto.StockListResponse
	decodeBody(t, resp, &stock)
	require.Len(t, stock.Items, 4)
	assert.Equal(t, uint8(25), stock.Items[3].Quantity)
}

func TestReceipt_GeneraPDFYDevuelve404SiNoExiste(t *testing.T) {
	app := buildTestApp(t)
	token := registerAndLogin(t, app, "alice")

	resp := doJSON(t, app, http.MethodGet, "/api/purchases/0/receipt", nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	buy := dto.BuyRequest{ProductID: 1, AttachedDeposit: twoTokens}
	resp = doJSON(t, app, http.MethodPost, "/api/shop/buy", buy, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/purchases/0/receipt", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
}

func TestRegister_UsernameDuplicadoDevuelve409(t *testing.T) {
	app := buildTestApp(t)
	registerAndLogin(t, app, "alice")

	resp := doJSON(t, app, http.MethodPost, "/api/auth/register",
		dto.RegisterRequest{Username: "alice", Password: "otra"}, "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "ACCOUNT_EXISTS", errorCode(t, resp))
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	app := buildTestApp(t)
	registerAndLogin(t, app, "alice")

	resp := doJSON(t, app, http.MethodPost, "/api/auth/login",
		dto.LoginRequest{Username: "alice", Password: "incorrecta"}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/auth/login",
		dto.LoginRequest{Username: "nadie", Password: "x"}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
