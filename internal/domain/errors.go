package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")

	// Reglas de negocio de inventario, recetas y pedidos.
	ErrInvalidAdjustment = errors.New("el ajuste dejaría el stock en negativo")
	ErrInvalidRecipe     = errors.New("la receta debe tener al menos un ingrediente")
	ErrUnknownIngredient = errors.New("ingrediente no encontrado")
	ErrUnitInUse         = errors.New("la unidad de medida está en uso por ingredientes")
	ErrInvalidTransition = errors.New("transición de estado del pedido inválida")
)
