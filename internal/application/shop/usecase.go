package shop

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
	"github.com/jhoicas/Tienda-api/pkg/logger"
)

// Respuestas de la operación de compra. Todo el depósito adjunto se retiene:
// no hay vueltos ni reembolsos.
const (
	AckPurchase = "Thank you for purchase"
	AckTips     = "Thank you for tips!"
)

// Config parámetros de la tienda.
type Config struct {
	// Account es la cuenta dueña de la tienda; solo ella puede sobrescribir stock.
	Account string
	// StrictStock exige que el producto exista en el catálogo al sobrescribir
	// stock. Apagado por defecto: la sobrescritura administrativa es incondicional.
	StrictStock bool
}

// UseCase orquesta las operaciones de la tienda sobre los cuatro almacenes.
// Hay una sola instancia por despliegue y es la única que muta su estado.
//
// Las llamadas se serializan con el mutex: la secuencia verificar-stock /
// decrementar de Buy es segura solo porque ninguna otra llamada puede
// observar o mutar el stock entre la lectura y la escritura.
type UseCase struct {
	mu          sync.Mutex
	txRunner    TxRunner
	catalogRepo repository.CatalogRepository
	stockRepo   repository.StockRepository
	priceRepo   repository.PriceRepository
	logRepo     repository.PurchaseLogRepository
	cfg         Config
	log         *logger.Logger
}

// NewUseCase construye el caso de uso de la tienda.
func NewUseCase(
	txRunner TxRunner,
	catalogRepo repository.CatalogRepository,
	stockRepo repository.StockRepository,
	priceRepo repository.PriceRepository,
	logRepo repository.PurchaseLogRepository,
	cfg Config,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		txRunner:    txRunner,
		catalogRepo: catalogRepo,
		stockRepo:   stockRepo,
		priceRepo:   priceRepo,
		logRepo:     logRepo,
		cfg:         cfg,
		log:         log,
	}
}

// Semilla fija del despliegue: ids 0..3 con descriptor, stock inicial y precio.
var seed = []struct {
	id       entity.ProductID
	product  entity.Product
	quantity uint8
	price    decimal.Decimal
}{
	{0, entity.ProductSmallSnack, 200, entity.OneToken},
	{1, entity.ProductLargeSnack, 150, entity.OneToken.Mul(decimal.NewFromInt(2))},
	{2, entity.ProductSoda, 150, entity.OneToken.Mul(decimal.NewFromInt(3))},
	{3, entity.ProductIceCream, 0, entity.OneToken.Mul(decimal.NewFromInt(2))},
}

// Initialize puebla catálogo, stock y precios con la semilla y deja el
// historial vacío. Ejecutable una sola vez por despliegue: si ya hay estado
// persistente devuelve ErrAlreadyInitialized. No emite líneas de auditoría.
func (uc *UseCase) Initialize(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	n, err := uc.catalogRepo.Len()
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrAlreadyInitialized
	}

	return uc.txRunner.RunSeed(ctx, func(
		catalogRepo repository.CatalogRepository,
		stockRepo repository.StockRepository,
		priceRepo repository.PriceRepository,
		_ repository.PurchaseLogRepository,
	) error {
		for _, s := range seed {
			if err := catalogRepo.Put(entity.CatalogEntry{ID: s.id, Product: s.product}); err != nil {
				return err
			}
			if err := stockRepo.Put(entity.StockEntry{Product: s.id, Quantity: s.quantity}); err != nil {
				return err
			}
			if err := priceRepo.Put(entity.PriceEntry{Product: s.id, Price: s.price}); err != nil {
				return err
			}
		}
		return nil
	})
}

// Buy ejecuta la transacción de compra. La validación es estrictamente
// ordenada y el primer fallo aborta la llamada sin mutar nada:
//
//  1. el producto existe en el catálogo        -> ErrProductNotFound
//  2. hay entrada de stock y es mayor a cero   -> ErrOutOfStock
//  3. el producto tiene precio registrado      -> ErrPriceNotFound
//  4. el depósito adjunto cubre el precio      -> ErrInsufficientPayment
//
// Recién con las cuatro validaciones aprobadas se escribe: stock -1 y un
// registro nuevo al final del historial, confirmados atómicamente.
func (uc *UseCase) Buy(ctx context.Context, call CallContext, product entity.ProductID) (string, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	p, err := uc.catalogRepo.Get(product)
	if err != nil {
		return "", err
	}
	if p == nil {
		return "", domain.ErrProductNotFound
	}

	st, err := uc.stockRepo.Get(product)
	if err != nil {
		return "", err
	}
	if st == nil || st.Quantity == 0 {
		return "", domain.ErrOutOfStock
	}

	price, err := uc.priceRepo.Get(product)
	if err != nil {
		return "", err
	}
	if price == nil {
		return "", domain.ErrPriceNotFound
	}

	if call.AttachedDeposit.Cmp(*price) < 0 {
		return "", domain.ErrInsufficientPayment
	}

	uc.log.Info().
		Str("buyer", call.Caller).
		Uint8("product", uint8(product)).
		Msg("compra aceptada")

	err = uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		logRepo repository.PurchaseLogRepository,
	) error {
		if err := stockRepo.Put(entity.StockEntry{Product: product, Quantity: st.Quantity - 1}); err != nil {
			return err
		}
		seq, err := logRepo.Len()
		if err != nil {
			return err
		}
		return logRepo.Append(&entity.PurchaseRecord{
			Seq:     seq,
			Buyer:   call.Caller,
			Product: product,
		})
	})
	if err != nil {
		return "", err
	}

	uc.log.Info().
		Str("buyer", call.Caller).
		Uint8("product", uint8(product)).
		Msg("producto entregado")

	if call.AttachedDeposit.Cmp(*price) > 0 {
		return AckTips, nil
	}
	return AckPurchase, nil
}

// SetProductAvailability sobrescribe (no suma) la cantidad en stock del
// producto, creando la entrada si no existe. Solo la cuenta dueña de la
// tienda puede invocarla. Con StrictStock apagado no se valida que el
// producto esté en el catálogo.
func (uc *UseCase) SetProductAvailability(_ context.Context, call CallContext, product entity.ProductID, amount uint8) (entity.StockEntry, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if call.Caller != uc.cfg.Account {
		return entity.StockEntry{}, domain.ErrUnauthorized
	}
	if uc.cfg.StrictStock {
		p, err := uc.catalogRepo.Get(product)
		if err != nil {
			return entity.StockEntry{}, err
		}
		if p == nil {
			return entity.StockEntry{}, domain.ErrProductNotFound
		}
	}

	e := entity.StockEntry{Product: product, Quantity: amount}
	if err := uc.stockRepo.Put(e); err != nil {
		return entity.StockEntry{}, err
	}
	uc.log.Info().
		Uint8("product", uint8(product)).
		Uint8("amount", amount).
		Msg("stock sobrescrito por el dueño")
	return e, nil
}

// ViewCatalog devuelve la página [offset, offset+limit) del catálogo en orden
// de inserción. Offset fuera de rango devuelve vacío, nunca error.
func (uc *UseCase) ViewCatalog(_ context.Context, offset, limit uint64) ([]entity.CatalogEntry, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.catalogRepo.List(offset, limit)
}

// ViewStock devuelve la página [offset, offset+limit) del stock en orden de inserción.
func (uc *UseCase) ViewStock(_ context.Context, offset, limit uint64) ([]entity.StockEntry, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.stockRepo.List(offset, limit)
}

// ViewPurchases devuelve la página [offset, offset+limit) del historial en orden de llegada.
func (uc *UseCase) ViewPurchases(_ context.Context, offset, limit uint64) ([]entity.PurchaseRecord, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.logRepo.List(offset, limit)
}

// GetProductPrice devuelve el precio exacto almacenado, sin modificar.
// ErrProductNotFound si el producto no tiene entrada de precio.
func (uc *UseCase) GetProductPrice(_ context.Context, product entity.ProductID) (decimal.Decimal, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	price, err := uc.priceRepo.Get(product)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if price == nil {
		return decimal.Decimal{}, domain.ErrProductNotFound
	}
	return *price, nil
}

// GetCatalogProduct devuelve el descriptor del producto del catálogo.
// ErrProductNotFound si el producto no está catalogado.
func (uc *UseCase) GetCatalogProduct(_ context.Context, id entity.ProductID) (entity.Product, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	p, err := uc.catalogRepo.Get(id)
	if err != nil {
		return "", err
	}
	if p == nil {
		return "", domain.ErrProductNotFound
	}
	return *p, nil
}

// GetPurchase devuelve un registro puntual del historial.
// ErrPurchaseNotFound si la secuencia no existe.
func (uc *UseCase) GetPurchase(_ context.Context, seq uint64) (*entity.PurchaseRecord, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	rec, err := uc.logRepo.Get(seq)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrPurchaseNotFound
	}
	return rec, nil
}
