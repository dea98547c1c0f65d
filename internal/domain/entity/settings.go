package entity

import "time"

// Settings configuración del negocio (fila única). La moneda es informativa:
// los cálculos de costo asumen una sola moneda y no convierten.
type Settings struct {
	ID           string
	BusinessName string
	Currency     string // código ISO 4217, ej. "ARS"
	Address      string
	Phone        string
	UpdatedAt    time.Time
}
