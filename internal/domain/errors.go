package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// ErrInvalidInput cubre los fallos de validación del caller (company_id malformado);
// los fallos de infraestructura llegan envueltos con fmt.Errorf("...: %w", err)
// desde los adaptadores de persistencia.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
)
