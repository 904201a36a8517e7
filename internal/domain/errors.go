package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrUserNotFound        = errors.New("usuario no encontrado")
	ErrShopNotFound        = errors.New("tienda no encontrada")
	ErrEmailAlreadyExists  = errors.New("el email ya está registrado")
	ErrShopNameTaken       = errors.New("el nombre de la tienda ya existe")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrForbidden           = errors.New("acceso denegado")
	ErrConflict            = errors.New("conflicto con el estado actual")
)
