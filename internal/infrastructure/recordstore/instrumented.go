package recordstore

import (
	"context"
	"errors"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/metrics"
)

var _ repository.DocumentStore = (*Instrumented)(nil)

// Instrumented cuenta cada lectura y escritura del store envuelto.
type Instrumented struct {
	next    repository.DocumentStore
	metrics *metrics.Metrics
}

// NewInstrumented envuelve next.
func NewInstrumented(next repository.DocumentStore, m *metrics.Metrics) *Instrumented {
	return &Instrumented{next: next, metrics: m}
}

func (s *Instrumented) Read(ctx context.Context, name string) ([]byte, error) {
	data, err := s.next.Read(ctx, name)
	s.metrics.StoreOp("read", name, result(err))
	return data, err
}

func (s *Instrumented) Write(ctx context.Context, name string, data []byte) error {
	err := s.next.Write(ctx, name, data)
	s.metrics.StoreOp("write", name, result(err))
	return err
}

func result(err error) string {
	switch {
	case err == nil:
		return metrics.ResultOK
	case errors.Is(err, domain.ErrResourceMissing):
		return metrics.ResultMissing
	default:
		return metrics.ResultError
	}
}
