// Package pdf implementa la representación gráfica del recibo de compra.
//
// Layout de la página A5:
//
//	┌───────────────────────────────────────────────┐
//	│  HEADER: Nombre de la tienda │ N° de compra   │
//	│  ─────────────────────────────────────────    │
//	│  COMPRADOR: cuenta                            │
//	│  DETALLE: producto + precio unitario          │
//	│  ─────────────────────────────────────────    │
//	│  FOOTER: leyenda                              │
//	└───────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ReceiptGenerator genera el PDF de un registro de compra usando Maroto v2.
type ReceiptGenerator struct {
	shopName string
}

// NewReceiptGenerator construye el generador.
func NewReceiptGenerator(shopName string) *ReceiptGenerator {
	return &ReceiptGenerator{shopName: shopName}
}

// GenerateReceipt genera el PDF del recibo y devuelve sus bytes.
func (g *ReceiptGenerator) GenerateReceipt(rec *entity.PurchaseRecord, product entity.Product, price decimal.Decimal) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de compra", true).
		WithAuthor(g.shopName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.shopName, rec))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(buyerRow(rec))
	m.AddRows(detailRow(rec, product, price))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre de la tienda (izq) y número de compra (der).
func headerRow(shopName string, rec *entity.PurchaseRecord) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(shopName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("RECIBO DE COMPRA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("N° %d", rec.Seq), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
		),
	)
}

// buyerRow: cuenta del comprador.
func buyerRow(rec *entity.PurchaseRecord) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("COMPRADOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(rec.Buyer, props.Text{Size: 10, Top: 7}),
		),
	)
}

// detailRow: producto comprado y precio unitario en la denominación mínima.
func detailRow(rec *entity.PurchaseRecord, product entity.Product, price decimal.Decimal) core.Row {
	return row.New(14).Add(
		col.New(2).Add(
			text.New(fmt.Sprintf("#%d", rec.Product), props.Text{
				Size: 9, Align: align.Center, Top: 4,
			}),
		),
		col.New(6).Add(
			text.New(string(product), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 4,
			}),
		),
		col.New(4).Add(
			text.New(price.String(), props.Text{
				Size: 9, Align: align.Right, Top: 4,
			}),
		),
	)
}

// footerRow: leyenda del recibo.
func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Este recibo corresponde a un registro del historial de compras de la tienda. "+
				"Los registros son definitivos y no admiten devolución.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}
