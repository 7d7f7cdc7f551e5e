package recordstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

var _ repository.DocumentStore = (*PostgresStore)(nil)

// Querier abstrae pgxpool.Pool / pgx.Tx (mismo contrato que usan los repos del pool).
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresStore guarda cada recurso como una fila de la tabla resources.
// El payload se guarda como TEXT para conservar el formato indentado; catalog_value (NUMERIC)
// acumula price*stock de los registros que traen ambos campos, para consultas SQL directas.
type PostgresStore struct {
	q Querier
}

// NewPostgresStore construye el store. Pasar pool o tx (Querier).
func NewPostgresStore(q Querier) *PostgresStore {
	return &PostgresStore{q: q}
}

// EnsureSchema crea la tabla resources si no existe.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.q.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS resources (
			name TEXT PRIMARY KEY,
			payload TEXT NOT NULL,
			catalog_value NUMERIC NOT NULL DEFAULT 0,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("crear tabla resources: %w", err)
	}
	_, err = s.q.Exec(ctx, `ALTER TABLE resources ADD COLUMN IF NOT EXISTS catalog_value NUMERIC NOT NULL DEFAULT 0`)
	if err != nil {
		return fmt.Errorf("migrar tabla resources: %w", err)
	}
	return nil
}

// Read lee el payload del recurso.
func (s *PostgresStore) Read(ctx context.Context, name string) ([]byte, error) {
	var payload string
	err := s.q.QueryRow(ctx, `SELECT payload FROM resources WHERE name = $1`, name).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, missing(name)
	}
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", name, err)
	}
	return []byte(payload), nil
}

// Write reemplaza el payload del recurso (upsert).
func (s *PostgresStore) Write(ctx context.Context, name string, data []byte) error {
	_, err := s.q.Exec(ctx, `
		INSERT INTO resources (name, payload, catalog_value, updated_at) VALUES ($1, $2, $3, now())
		ON CONFLICT (name) DO UPDATE
		SET payload = EXCLUDED.payload, catalog_value = EXCLUDED.catalog_value, updated_at = EXCLUDED.updated_at`,
		name, string(data), CatalogValue(data),
	)
	if err != nil {
		return fmt.Errorf("escribir %s: %w", name, err)
	}
	return nil
}

// CatalogValue suma price*stock de los registros del arreglo que traen ambos campos.
// Un payload que no es un arreglo de objetos vale cero (p. ej. el recurso de carritos).
func CatalogValue(data []byte) decimal.Decimal {
	var records []struct {
		Price *decimal.Decimal `json:"price"`
		Stock *decimal.Decimal `json:"stock"`
	}
	if err := json.Unmarshal(data, &records); err != nil {
		return decimal.Zero
	}
	total := decimal.Zero
	for _, r := range records {
		if r.Price == nil || r.Stock == nil {
			continue
		}
		total = total.Add(r.Price.Mul(*r.Stock))
	}
	return total
}
