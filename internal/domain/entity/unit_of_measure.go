package entity

import "time"

// UnitOfMeasure unidad de medida asociada a ingredientes (ej. kilogramo/kg).
// No puede eliminarse mientras algún ingrediente la referencie.
type UnitOfMeasure struct {
	ID           string
	Name         string
	Abbreviation string // máx. 10 caracteres
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
