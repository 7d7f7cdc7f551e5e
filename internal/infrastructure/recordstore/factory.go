package recordstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/metrics"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Catalogo-api/pkg/config"
)

// Open selecciona el driver según cfg.Storage.Driver y lo envuelve con métricas.
// El closer devuelto libera conexiones del driver (no-op para file y memory).
//
//	file:     un archivo por recurso bajo STORAGE_DIR
//	memory:   mapa en memoria, se pierde al reiniciar
//	sqlite:   tabla resources en SQLITE_PATH
//	postgres: tabla resources en la base de DATABASE_URL / DB_*
//	s3:       un objeto por recurso en S3_BUCKET
func Open(ctx context.Context, cfg *config.Config, m *metrics.Metrics) (repository.DocumentStore, func() error, error) {
	noop := func() error { return nil }
	var (
		store  repository.DocumentStore
		closer = noop
	)
	switch cfg.Storage.Driver {
	case config.DriverFile, "":
		fs, err := NewFileStore(cfg.Storage.Dir)
		if err != nil {
			return nil, nil, err
		}
		store = fs
	case config.DriverMemory:
		store = NewMemoryStore()
	case config.DriverSQLite:
		s, err := NewSQLiteStore(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		store, closer = s, s.Close
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		s := NewPostgresStore(pool)
		if err := s.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		store = s
		closer = func() error {
			pool.Close()
			return nil
		}
	case config.DriverS3:
		s, err := NewS3Store(ctx, cfg.S3)
		if err != nil {
			return nil, nil, err
		}
		store = s
	default:
		return nil, nil, fmt.Errorf("driver de almacenamiento desconocido %q", cfg.Storage.Driver)
	}
	return NewInstrumented(store, m), closer, nil
}

// Bootstrap escribe un arreglo vacío en cada recurso que no exista. Los existentes no se tocan.
func Bootstrap(ctx context.Context, store repository.DocumentStore, names ...string) (created []string, err error) {
	for _, name := range names {
		_, err := store.Read(ctx, name)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrResourceMissing) {
			return created, err
		}
		if err := store.Write(ctx, name, []byte("[]")); err != nil {
			return created, err
		}
		created = append(created, name)
	}
	return created, nil
}
