package kvstore

import (
	"context"
	"fmt"

	"github.com/jhoicas/Tienda-api/internal/application/shop"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// Ensure TxRunner implements shop.TxRunner.
var _ shop.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción del sustrato KV.
type TxRunner struct {
	s TxStore
}

// NewTxRunner construye el runner sobre el almacén transaccional.
func NewTxRunner(s TxStore) *TxRunner {
	return &TxRunner{s: s}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	stockRepo repository.StockRepository,
	logRepo repository.PurchaseLogRepository,
) error) error {
	tx, err := r.s.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	stockRepo := NewStockRepository(tx)
	logRepo := NewPurchaseLogRepository(tx)

	if err := fn(stockRepo, logRepo); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// RunSeed inicia una transacción con los cuatro almacenes de la tienda (para la inicialización).
func (r *TxRunner) RunSeed(ctx context.Context, fn func(
	catalogRepo repository.CatalogRepository,
	stockRepo repository.StockRepository,
	priceRepo repository.PriceRepository,
	logRepo repository.PurchaseLogRepository,
) error) error {
	tx, err := r.s.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	catalogRepo := NewCatalogRepository(tx)
	stockRepo := NewStockRepository(tx)
	priceRepo := NewPriceRepository(tx)
	logRepo := NewPurchaseLogRepository(tx)

	if err := fn(catalogRepo, stockRepo, priceRepo, logRepo); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
