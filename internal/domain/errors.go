package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrAlreadyInitialized  = errors.New("la tienda ya fue inicializada")
	ErrProductNotFound     = errors.New("producto no encontrado")
	ErrOutOfStock          = errors.New("producto agotado")
	ErrPriceNotFound       = errors.New("precio del producto no encontrado")
	ErrInsufficientPayment = errors.New("el depósito adjunto no es suficiente")
	ErrUnauthorized        = errors.New("solo el dueño puede modificar la disponibilidad")
	ErrPurchaseNotFound    = errors.New("compra no encontrada")
	ErrAccountNotFound     = errors.New("cuenta no encontrada")
	ErrAccountExists       = errors.New("el nombre de cuenta ya está registrado")
	ErrInvalidInput        = errors.New("entrada inválida")
)
