package shop

import (
	"context"

	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// TxRunner ejecuta callbacks con repos atados a una transacción del sustrato.
// Commit solo si fn retorna nil; cualquier error descarta todas las escrituras
// pendientes, sin efectos parciales.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockRepository,
		logRepo repository.PurchaseLogRepository,
	) error) error
	RunSeed(ctx context.Context, fn func(
		catalogRepo repository.CatalogRepository,
		stockRepo repository.StockRepository,
		priceRepo repository.PriceRepository,
		logRepo repository.PurchaseLogRepository,
	) error) error
}
