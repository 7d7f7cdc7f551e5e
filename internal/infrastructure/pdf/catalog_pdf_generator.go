// Package pdf genera el listado imprimible del catálogo.
//
// Layout de la página A4:
//
//	┌───────────────────────────────────────────────────────────┐
//	│  HEADER: Catálogo de productos  │  Fecha + cantidad        │
//	│  ───────────────────────────────────────────────────────  │
//	│  TABLA: Título | Código | Categoría | Stock | Estado | $   │
//	└───────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

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
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/jhoicas/Catalogo-api/internal/application/ports"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

var _ ports.CatalogPDFGenerator = (*CatalogPDFGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// CatalogPDFGenerator implementa ports.CatalogPDFGenerator usando Maroto v2.
type CatalogPDFGenerator struct {
	printer *message.Printer
}

// NewCatalogPDFGenerator construye el generador. Los precios se formatean en español latinoamericano.
func NewCatalogPDFGenerator() *CatalogPDFGenerator {
	return &CatalogPDFGenerator{printer: message.NewPrinter(language.LatinAmericanSpanish)}
}

// GenerateCatalogPDF genera el PDF y devuelve sus bytes.
func (g *CatalogPDFGenerator) GenerateCatalogPDF(_ context.Context, products []entity.Product, generatedAt time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Catálogo de productos", true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(headerRow(len(products), generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	if len(products) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Sin productos", props.Text{Size: 9, Align: align.Center, Top: 2, Color: colorGray}),
		)))
	}
	for i := range products {
		m.AddRows(g.productRow(&products[i]))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(count int, generatedAt time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("Catálogo de productos", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Fecha: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New("Productos: "+strconv.Itoa(count), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Título", 4, align.Left),
		h("Código", 2, align.Left),
		h("Categoría", 2, align.Left),
		h("Stock", 1, align.Right),
		h("Estado", 1, align.Center),
		h("Precio", 2, align.Right),
	)
}

func (g *CatalogPDFGenerator) productRow(p *entity.Product) core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1}))
	}
	status := "inactivo"
	if p.Status {
		status = "activo"
	}
	return row.New(7).Add(
		cell(p.Title, 4, align.Left),
		cell(p.Code, 2, align.Left),
		cell(p.Category, 2, align.Left),
		cell(p.Stock.String(), 1, align.Right),
		cell(status, 1, align.Center),
		cell(g.formatPrice(p), 2, align.Right),
	)
}

// formatPrice separadores de miles y dos decimales según el locale del printer.
func (g *CatalogPDFGenerator) formatPrice(p *entity.Product) string {
	return "$" + g.printer.Sprint(number.Decimal(p.Price.InexactFloat64(),
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
