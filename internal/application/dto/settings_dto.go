package dto

import "time"

// UpdateSettingsRequest entrada para actualizar la configuración del negocio.
type UpdateSettingsRequest struct {
	BusinessName *string `json:"business_name" validate:"omitempty,min=1,max=200"`
	Currency     *string `json:"currency" validate:"omitempty,len=3,alpha"`
	Address      *string `json:"address" validate:"omitempty,max=300"`
	Phone        *string `json:"phone" validate:"omitempty,max=50"`
}

// SettingsResponse configuración vigente del negocio.
type SettingsResponse struct {
	BusinessName string    `json:"business_name"`
	Currency     string    `json:"currency"`
	Address      string    `json:"address,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	UpdatedAt    time.Time `json:"updated_at"`
}
