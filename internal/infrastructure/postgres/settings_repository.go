package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/never130/isidro-gourmet/internal/domain/entity"
	"github.com/never130/isidro-gourmet/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implementación del puerto SettingsRepository. La tabla
// settings tiene una sola fila, identificada por un ID fijo.
type SettingsRepo struct {
	q Querier
}

func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

func (r *SettingsRepo) Get() (*entity.Settings, error) {
	var s entity.Settings
	err := r.q.QueryRow(context.Background(),
		`SELECT id, business_name, currency, address, phone, updated_at FROM settings LIMIT 1`).
		Scan(&s.ID, &s.BusinessName, &s.Currency, &s.Address, &s.Phone, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &s, nil
}

func (r *SettingsRepo) Upsert(settings *entity.Settings) error {
	query := `
		INSERT INTO settings (id, business_name, currency, address, phone, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET business_name = EXCLUDED.business_name,
		    currency = EXCLUDED.currency,
		    address = EXCLUDED.address,
		    phone = EXCLUDED.phone,
		    updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		settings.ID, settings.BusinessName, settings.Currency,
		settings.Address, settings.Phone, settings.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}
