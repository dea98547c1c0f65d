package repository

import "github.com/never130/isidro-gourmet/internal/domain/entity"

// SettingsRepository puerto de persistencia para la configuración del
// negocio (fila única).
type SettingsRepository interface {
	Get() (*entity.Settings, error)
	Upsert(settings *entity.Settings) error
}
