package ports

import (
	"context"
	"time"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// CatalogPDFGenerator genera el listado imprimible del catálogo.
type CatalogPDFGenerator interface {
	GenerateCatalogPDF(ctx context.Context, products []entity.Product, generatedAt time.Time) ([]byte, error)
}

// CatalogFeedBuilder genera el feed XML del catálogo.
type CatalogFeedBuilder interface {
	BuildFeed(ctx context.Context, products []entity.Product, generatedAt time.Time) ([]byte, error)
}
