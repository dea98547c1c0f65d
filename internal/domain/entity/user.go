package entity

import "time"

// Roles de usuario de la aplicación.
const (
	RoleAdmin    = "admin"
	RoleCajero   = "cajero"
	RoleCocinero = "cocinero"
)

// User usuario de la aplicación con rol para RBAC.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // "admin" | "cajero" | "cocinero"
	Status       string // "active" | "inactive"
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
