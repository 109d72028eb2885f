// Comando de inicialización: puebla catálogo, stock y precios con la semilla
// del despliegue contra el almacenamiento configurado y termina. Falla si la
// tienda ya fue inicializada.
package main

import (
	"context"
	"errors"

	"github.com/jhoicas/Tienda-api/internal/application/shop"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/infrastructure/kvstore"
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

	ctx := context.Background()

	if cfg.Shop.StorageDriver != "postgres" {
		// Con el driver en memoria el estado muere con el proceso: sembrar
		// desde un comando aparte no tiene sentido.
		log.Fatal().Msg("la semilla por comando requiere SHOP_STORAGE_DRIVER=postgres")
	}

	pool, err := kvstore.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	store := kvstore.NewPostgresStore(pool)
	if err := store.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("migración del sustrato KV")
	}

	uc := shop.NewUseCase(
		kvstore.NewTxRunner(store),
		kvstore.NewCatalogRepository(store),
		kvstore.NewStockRepository(store),
		kvstore.NewPriceRepository(store),
		kvstore.NewPurchaseLogRepository(store),
		shop.Config{Account: cfg.Shop.Account, StrictStock: cfg.Shop.StrictStock},
		log,
	)

	if err := uc.Initialize(ctx); err != nil {
		if errors.Is(err, domain.ErrAlreadyInitialized) {
			log.Fatal().Msg("la tienda ya fue inicializada, no se vuelve a sembrar")
		}
		log.Fatal().Err(err).Msg("sembrar la tienda")
	}

	log.Info().Msg("tienda inicializada con la semilla del despliegue")
}
