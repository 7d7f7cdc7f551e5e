package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrResourceMissing = errors.New("recurso persistente inexistente")
	ErrResourceCorrupt = errors.New("recurso persistente corrupto")
)
