// Package feed genera el feed XML del catálogo para integraciones externas.
package feed

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/beevik/etree"

	"github.com/jhoicas/Catalogo-api/internal/application/ports"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

var _ ports.CatalogFeedBuilder = (*XMLFeedBuilder)(nil)

// XMLFeedBuilder implementa ports.CatalogFeedBuilder con etree.
//
//	<catalog generated="..." count="N">
//	  <product id="...">
//	    <title/> <description/> <code/> <price/> <status/> <stock/> <category/>
//	    <thumbnails><thumbnail/>...</thumbnails>
//	  </product>
//	</catalog>
type XMLFeedBuilder struct{}

// NewXMLFeedBuilder construye el builder.
func NewXMLFeedBuilder() *XMLFeedBuilder { return &XMLFeedBuilder{} }

// BuildFeed serializa los productos en el orden almacenado.
func (b *XMLFeedBuilder) BuildFeed(_ context.Context, products []entity.Product, generatedAt time.Time) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("catalog")
	root.CreateAttr("generated", generatedAt.UTC().Format(time.RFC3339))
	root.CreateAttr("count", strconv.Itoa(len(products)))

	for i := range products {
		p := &products[i]
		el := root.CreateElement("product")
		el.CreateAttr("id", p.ID)
		el.CreateElement("title").SetText(p.Title)
		el.CreateElement("description").SetText(p.Description)
		el.CreateElement("code").SetText(p.Code)
		el.CreateElement("price").SetText(p.Price.String())
		el.CreateElement("status").SetText(strconv.FormatBool(p.Status))
		el.CreateElement("stock").SetText(p.Stock.String())
		el.CreateElement("category").SetText(p.Category)
		thumbs := el.CreateElement("thumbnails")
		for _, t := range p.Thumbnails {
			thumbs.CreateElement("thumbnail").SetText(t)
		}
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("feed: serializar XML: %w", err)
	}
	return out, nil
}
