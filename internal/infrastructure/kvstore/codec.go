package kvstore

import (
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// Codificación binaria de los valores persistidos: estable, sin versión y sin
// esquema de migración. Claves de producto de 1 byte, secuencias de 8 bytes
// big-endian, precios como enteros sin signo de 16 bytes big-endian.

// EncodeProductID codifica la clave de producto (1 byte).
func EncodeProductID(id entity.ProductID) []byte {
	return []byte{byte(id)}
}

// DecodeProductID decodifica la clave de producto.
func DecodeProductID(b []byte) (entity.ProductID, error) {
	if len(b) != 1 {
		return 0, fmt.Errorf("codec: clave de producto de %d bytes", len(b))
	}
	return entity.ProductID(b[0]), nil
}

// EncodeProduct codifica el descriptor del catálogo.
func EncodeProduct(p entity.Product) []byte {
	return []byte(p)
}

// DecodeProduct decodifica y valida el descriptor.
func DecodeProduct(b []byte) (entity.Product, error) {
	p := entity.Product(b)
	if !p.Valid() {
		return "", fmt.Errorf("codec: descriptor de producto desconocido %q", string(b))
	}
	return p, nil
}

// EncodeQuantity codifica la cantidad en stock (1 byte).
func EncodeQuantity(q uint8) []byte {
	return []byte{q}
}

// DecodeQuantity decodifica la cantidad en stock.
func DecodeQuantity(b []byte) (uint8, error) {
	if len(b) != 1 {
		return 0, fmt.Errorf("codec: cantidad de %d bytes", len(b))
	}
	return b[0], nil
}

// EncodeSeq codifica una secuencia del historial (8 bytes big-endian).
func EncodeSeq(seq uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seq)
	return b
}

// DecodeSeq decodifica una secuencia del historial.
func DecodeSeq(b []byte) (uint64, error) {
	if len(b) != 8 {
		return 0, fmt.Errorf("codec: secuencia de %d bytes", len(b))
	}
	return binary.BigEndian.Uint64(b), nil
}

// EncodePrice codifica un precio como entero sin signo de 128 bits big-endian.
// Rechaza valores negativos, no enteros o que no caben en 16 bytes.
func EncodePrice(d decimal.Decimal) ([]byte, error) {
	if d.IsNegative() {
		return nil, fmt.Errorf("codec: precio negativo %s", d)
	}
	if !d.IsInteger() {
		return nil, fmt.Errorf("codec: precio no entero %s", d)
	}
	n := d.BigInt()
	if n.BitLen() > 128 {
		return nil, fmt.Errorf("codec: precio fuera de rango de 128 bits: %s", d)
	}
	b := make([]byte, 16)
	n.FillBytes(b)
	return b, nil
}

// DecodePrice decodifica un precio de 16 bytes big-endian.
func DecodePrice(b []byte) (decimal.Decimal, error) {
	if len(b) != 16 {
		return decimal.Decimal{}, fmt.Errorf("codec: precio de %d bytes", len(b))
	}
	n := new(big.Int).SetBytes(b)
	return decimal.NewFromBigInt(n, 0), nil
}

// EncodePurchaseRecord codifica un registro de compra:
// seq(8) | product(1) | buyer(resto, UTF-8).
func EncodePurchaseRecord(r *entity.PurchaseRecord) []byte {
	b := make([]byte, 0, 9+len(r.Buyer))
	b = append(b, EncodeSeq(r.Seq)...)
	b = append(b, byte(r.Product))
	b = append(b, r.Buyer...)
	return b
}

// DecodePurchaseRecord decodifica un registro de compra.
func DecodePurchaseRecord(b []byte) (*entity.PurchaseRecord, error) {
	if len(b) < 9 {
		return nil, fmt.Errorf("codec: registro de compra de %d bytes", len(b))
	}
	seq, err := DecodeSeq(b[:8])
	if err != nil {
		return nil, err
	}
	return &entity.PurchaseRecord{
		Seq:     seq,
		Product: entity.ProductID(b[8]),
		Buyer:   string(b[9:]),
	}, nil
}
