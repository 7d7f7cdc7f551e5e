package recordstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // driver sqlite en Go puro

	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

var _ repository.DocumentStore = (*SQLiteStore)(nil)

// SQLiteStore guarda cada recurso como una fila de la tabla resources.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore abre (o crea) la base en path y asegura el esquema.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if path == "" {
		path = "catalogo.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("crear directorios: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	// Una sola conexión: sqlite serializa las escrituras de todos modos.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS resources (
		name TEXT PRIMARY KEY,
		payload BLOB NOT NULL,
		updated_at TEXT NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("crear tabla resources: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Read lee el payload del recurso.
func (s *SQLiteStore) Read(ctx context.Context, name string) ([]byte, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM resources WHERE name = ?`, name).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, missing(name)
	}
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", name, err)
	}
	return payload, nil
}

// Write reemplaza el payload del recurso (upsert).
func (s *SQLiteStore) Write(ctx context.Context, name string, data []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO resources (name, payload, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		name, data, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("escribir %s: %w", name, err)
	}
	return nil
}

// Close cierra la base.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
