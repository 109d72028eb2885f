package shop

import "github.com/shopspring/decimal"

// CallContext contexto ambiental de una llamada: identidad del invocador y
// depósito adjunto, provistos por la capa de interfaz en cada invocación.
// Se pasa explícito a cada operación; nunca se lee de estado global.
type CallContext struct {
	Caller          string
	AttachedDeposit decimal.Decimal
}
