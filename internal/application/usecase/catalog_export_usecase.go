package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Catalogo-api/internal/application/ports"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// CatalogExportUseCase exporta el catálogo completo (PDF imprimible y feed XML).
type CatalogExportUseCase struct {
	repo repository.ProductRepository
	pdf  ports.CatalogPDFGenerator
	feed ports.CatalogFeedBuilder
	now  func() time.Time
}

// NewCatalogExportUseCase construye el caso de uso.
func NewCatalogExportUseCase(repo repository.ProductRepository, pdf ports.CatalogPDFGenerator, feed ports.CatalogFeedBuilder) *CatalogExportUseCase {
	return &CatalogExportUseCase{repo: repo, pdf: pdf, feed: feed, now: time.Now}
}

// PDF genera el listado del catálogo en PDF.
func (uc *CatalogExportUseCase) PDF(ctx context.Context) ([]byte, error) {
	products, err := uc.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateCatalogPDF(ctx, products, uc.now())
}

// Feed genera el feed XML del catálogo.
func (uc *CatalogExportUseCase) Feed(ctx context.Context) ([]byte, error) {
	products, err := uc.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	return uc.feed.BuildFeed(ctx, products, uc.now())
}
