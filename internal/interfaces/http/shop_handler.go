package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/application/shop"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/infrastructure/pdf"
)

// ShopHandler maneja las peticiones HTTP de la tienda.
type ShopHandler struct {
	uc       *shop.UseCase
	receipts *pdf.ReceiptGenerator
}

// NewShopHandler construye el handler.
func NewShopHandler(uc *shop.UseCase, receipts *pdf.ReceiptGenerator) *ShopHandler {
	return &ShopHandler{uc: uc, receipts: receipts}
}

// Initialize godoc
// @Summary      Inicializar la tienda (una sola vez por despliegue)
// @Tags         shop
// @Produce      json
// @Success      201  {object}  map[string]string
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/shop/initialize [post]
func (h *ShopHandler) Initialize(c *fiber.Ctx) error {
	if err := h.uc.Initialize(c.Context()); err != nil {
		if err == domain.ErrAlreadyInitialized {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_INITIALIZED", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "tienda inicializada"})
}

// Buy godoc
// @Summary      Comprar una unidad de un producto
// @Tags         shop
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BuyRequest  true  "product_id y depósito adjunto (entero, denominación mínima)"
// @Success      200   {object}  dto.BuyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      402   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/shop/buy [post]
func (h *ShopHandler) Buy(c *fiber.Ctx) error {
	caller := GetUsername(c)
	if caller == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.BuyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	deposit, err := parseDeposit(in.AttachedDeposit)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "attached_deposit debe ser un entero no negativo"})
	}

	call := shop.CallContext{Caller: caller, AttachedDeposit: deposit}
	ack, err := h.uc.Buy(c.Context(), call, entity.ProductID(in.ProductID))
	if err != nil {
		switch err {
		case domain.ErrProductNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PRODUCT_NOT_FOUND", Message: err.Error()})
		case domain.ErrOutOfStock:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "OUT_OF_STOCK", Message: err.Error()})
		case domain.ErrPriceNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PRICE_NOT_FOUND", Message: err.Error()})
		case domain.ErrInsufficientPayment:
			return c.Status(fiber.StatusPaymentRequired).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_DEPOSIT", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.BuyResponse{Message: ack})
}

// SetAvailability godoc
// @Summary      Sobrescribir el stock de un producto (solo dueño)
// @Tags         shop
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetAvailabilityRequest  true  "product_id y cantidad absoluta"
// @Success      200   {object}  dto.SetAvailabilityResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/shop/stock [put]
func (h *ShopHandler) SetAvailability(c *fiber.Ctx) error {
	caller := GetUsername(c)
	if caller == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.SetAvailabilityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	call := shop.CallContext{Caller: caller, AttachedDeposit: decimal.Zero}
	applied, err := h.uc.SetProductAvailability(c.Context(), call, entity.ProductID(in.ProductID), in.Amount)
	if err != nil {
		switch err {
		case domain.ErrUnauthorized:
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})
		case domain.ErrProductNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PRODUCT_NOT_FOUND", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.SetAvailabilityResponse{ProductID: uint8(applied.Product), Amount: applied.Quantity})
}

// ViewCatalog godoc
// @Summary      Listar el catálogo (paginado, orden de inserción)
// @Tags         shop
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.CatalogListResponse
// @Router       /api/shop/catalog [get]
func (h *ShopHandler) ViewCatalog(c *fiber.Ctx) error {
	offset, limit := pageParams(c)
	list, err := h.uc.ViewCatalog(c.Context(), offset, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	items := make([]dto.CatalogEntryResponse, 0, len(list))
	for _, e := range list {
		items = append(items, dto.CatalogEntryResponse{ProductID: uint8(e.ID), Product: string(e.Product)})
	}
	return c.JSON(dto.CatalogListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: int(limit), Offset: int(offset)},
	})
}

// ViewStock godoc
// @Summary      Listar el stock (paginado, orden de inserción)
// @Tags         shop
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.StockListResponse
// @Router       /api/shop/stock [get]
func (h *ShopHandler) ViewStock(c *fiber.Ctx) error {
	offset, limit := pageParams(c)
	list, err := h.uc.ViewStock(c.Context(), offset, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	items := make([]dto.StockEntryResponse, 0, len(list))
	for _, e := range list {
		items = append(items, dto.StockEntryResponse{ProductID: uint8(e.Product), Quantity: e.Quantity})
	}
	return c.JSON(dto.StockListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: int(limit), Offset: int(offset)},
	})
}

// GetPrice godoc
// @Summary      Consultar el precio exacto de un producto
// @Tags         shop
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.PriceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/shop/products/{id}/price [get]
func (h *ShopHandler) GetPrice(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 0 || id > 255 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id debe ser un entero entre 0 y 255"})
	}
	price, err := h.uc.GetProductPrice(c.Context(), entity.ProductID(id))
	if err != nil {
		if err == domain.ErrProductNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PRODUCT_NOT_FOUND", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.PriceResponse{ProductID: uint8(id), Price: price.String()})
}

// ViewPurchases godoc
// @Summary      Listar el historial de compras (paginado, orden de llegada)
// @Tags         purchases
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.PurchaseListResponse
// @Router       /api/purchases [get]
func (h *ShopHandler) ViewPurchases(c *fiber.Ctx) error {
	offset, limit := pageParams(c)
	list, err := h.uc.ViewPurchases(c.Context(), offset, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	items := make([]dto.PurchaseResponse, 0, len(list))
	for _, r := range list {
		items = append(items, dto.PurchaseResponse{Seq: r.Seq, Buyer: r.Buyer, ProductID: uint8(r.Product)})
	}
	return c.JSON(dto.PurchaseListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: int(limit), Offset: int(offset)},
	})
}

// Receipt godoc
// @Summary      Descargar el recibo PDF de una compra
// @Tags         purchases
// @Produce      application/pdf
// @Param        seq  path  int  true  "Secuencia de la compra"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchases/{seq}/receipt [get]
func (h *ShopHandler) Receipt(c *fiber.Ctx) error {
	seq, err := c.ParamsInt("seq")
	if err != nil || seq < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "seq debe ser un entero no negativo"})
	}
	rec, err := h.uc.GetPurchase(c.Context(), uint64(seq))
	if err != nil {
		if err == domain.ErrPurchaseNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PURCHASE_NOT_FOUND", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	product, err := h.uc.GetCatalogProduct(c.Context(), rec.Product)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	price, err := h.uc.GetProductPrice(c.Context(), rec.Product)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	pdfBytes, err := h.receipts.GenerateReceipt(rec, product, price)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(pdfBytes)
}

// pageParams lee offset/limit de la query con los defaults del listado.
// Offsets fuera de rango no son error: el caso de uso degrada a vacío.
func pageParams(c *fiber.Ctx) (offset, limit uint64) {
	o := c.QueryInt("offset", 0)
	l := c.QueryInt("limit", 20)
	if o < 0 {
		o = 0
	}
	if l <= 0 {
		l = 20
	}
	if l > 100 {
		l = 100
	}
	return uint64(o), uint64(l)
}

// parseDeposit interpreta el depósito adjunto como entero exacto no negativo.
func parseDeposit(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if d.IsNegative() || !d.IsInteger() {
		return decimal.Decimal{}, domain.ErrInvalidInput
	}
	return d, nil
}
