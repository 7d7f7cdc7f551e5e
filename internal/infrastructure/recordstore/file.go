package recordstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

var _ repository.DocumentStore = (*FileStore)(nil)

// FileStore guarda cada recurso como un archivo bajo root.
// Write escribe a un temporal del mismo directorio y lo renombra, así un crash no deja el recurso truncado.
type FileStore struct {
	root string
}

// NewFileStore devuelve un FileStore en root, creándolo si hace falta.
func NewFileStore(root string) (*FileStore, error) {
	if root == "" {
		root = "."
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio %s: %w", root, err)
	}
	return &FileStore{root: root}, nil
}

// sanitizeName impide nombres vacíos, absolutos o que escapen de root.
func sanitizeName(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("nombre de recurso vacío")
	}
	if strings.Contains(name, "..") {
		return "", fmt.Errorf("nombre de recurso inválido %q", name)
	}
	if filepath.IsAbs(name) || strings.HasPrefix(name, "/") {
		return "", fmt.Errorf("nombre de recurso absoluto %q", name)
	}
	return filepath.Clean(name), nil
}

func (s *FileStore) pathFor(name string) (string, error) {
	clean, err := sanitizeName(name)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.root, clean), nil
}

// Read lee el recurso completo.
func (s *FileStore) Read(_ context.Context, name string) ([]byte, error) {
	path, err := s.pathFor(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, missing(name)
	}
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", name, err)
	}
	return data, nil
}

// Write reemplaza el recurso completo (temporal + rename).
func (s *FileStore) Write(_ context.Context, name string, data []byte) error {
	path, err := s.pathFor(name)
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("crear directorio %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("crear temporal para %s: %w", name, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("escribir %s: %w", name, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync %s: %w", name, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cerrar temporal de %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("renombrar %s: %w", name, err)
	}
	return nil
}
