// Package http expone los casos de uso de la tienda sobre Fiber.
package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tienda-api/internal/application/auth"
	"github.com/jhoicas/Tienda-api/internal/application/shop"
	"github.com/jhoicas/Tienda-api/internal/infrastructure/pdf"
)

// RouterDeps dependencias del router.
type RouterDeps struct {
	ShopUC    *shop.UseCase
	AuthUC    *auth.UseCase
	Receipts  *pdf.ReceiptGenerator
	JWTSecret string
}

// Router registra todas las rutas de la API.
//
// Las vistas (catálogo, stock, precios, historial) son públicas, igual que
// initialize. Comprar y sobrescribir stock exigen token: el username del
// token es la identidad de invocador que reciben las operaciones.
func Router(app *fiber.App, deps RouterDeps) {
	shopHandler := NewShopHandler(deps.ShopUC, deps.Receipts)
	authHandler := NewAuthHandler(deps.AuthUC)
	protected := AuthMiddleware(deps.JWTSecret)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	shopGroup := api.Group("/shop")
	shopGroup.Post("/initialize", shopHandler.Initialize)
	shopGroup.Get("/catalog", shopHandler.ViewCatalog)
	shopGroup.Get("/stock", shopHandler.ViewStock)
	shopGroup.Get("/products/:id/price", shopHandler.GetPrice)
	shopGroup.Post("/buy", protected, shopHandler.Buy)
	shopGroup.Put("/stock", protected, shopHandler.SetAvailability)

	purchases := api.Group("/purchases")
	purchases.Get("/", shopHandler.ViewPurchases)
	purchases.Get("/:seq/receipt", shopHandler.Receipt)
}
