package domain

import "errors"

// Errores de dominio (sin dependencias externas). Se comparan con errors.Is
// y se traducen a códigos HTTP en la capa de interfaces.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrOverReceipt        = errors.New("cantidad recibida supera la cantidad ordenada")
	ErrInvalidTransition  = errors.New("transición de estado no permitida")
	ErrSequenceCollision  = errors.New("colisión de numeración de documento")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)
