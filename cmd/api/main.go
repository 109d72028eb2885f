package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Tienda-api/internal/application/auth"
	"github.com/jhoicas/Tienda-api/internal/application/shop"
	"github.com/jhoicas/Tienda-api/internal/infrastructure/kvstore"
	infrapdf "github.com/jhoicas/Tienda-api/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/Tienda-api/internal/interfaces/http"
	"github.com/jhoicas/Tienda-api/pkg/config"
	"github.com/jhoicas/Tienda-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Shop.StorageDriver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Sustrato de almacenamiento: memoria por defecto, PostgreSQL si se configura.
	var store kvstore.TxStore
	switch cfg.Shop.StorageDriver {
	case "postgres":
		pool, err := kvstore.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()

		pgStore := kvstore.NewPostgresStore(pool)
		if err := pgStore.Migrate(ctx); err != nil {
			log.Fatal().Err(err).Msg("migración del sustrato KV")
		}
		store = pgStore
	case "memory", "":
		store = kvstore.NewMemoryStore()
	default:
		log.Fatal().Str("driver", cfg.Shop.StorageDriver).Msg("driver de almacenamiento desconocido")
	}

	catalogRepo := kvstore.NewCatalogRepository(store)
	stockRepo := kvstore.NewStockRepository(store)
	priceRepo := kvstore.NewPriceRepository(store)
	logRepo := kvstore.NewPurchaseLogRepository(store)
	accountRepo := kvstore.NewAccountRepository(store)
	txRunner := kvstore.NewTxRunner(store)

	shopUC := shop.NewUseCase(txRunner, catalogRepo, stockRepo, priceRepo, logRepo, shop.Config{
		Account:     cfg.Shop.Account,
		StrictStock: cfg.Shop.StrictStock,
	}, log)
	authUC := auth.NewUseCase(accountRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	receipts := infrapdf.NewReceiptGenerator(cfg.App.Name)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Tienda API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ShopUC:    shopUC,
		AuthUC:    authUC,
		Receipts:  receipts,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
