package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrInvalidLogo  = errors.New("el logo debe ser un archivo de imagen")
	ErrLogoTooLarge = errors.New("el logo supera el tamaño máximo permitido")
)
