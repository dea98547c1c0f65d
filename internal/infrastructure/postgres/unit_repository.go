package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/never130/isidro-gourmet/internal/domain"
	"github.com/never130/isidro-gourmet/internal/domain/entity"
	"github.com/never130/isidro-gourmet/internal/domain/repository"
)

var _ repository.UnitRepository = (*UnitRepo)(nil)

// UnitRepo implementación del puerto UnitRepository sobre PostgreSQL.
type UnitRepo struct {
	q Querier
}

func NewUnitRepository(q Querier) *UnitRepo {
	return &UnitRepo{q: q}
}

func (r *UnitRepo) Create(unit *entity.UnitOfMeasure) error {
	query := `
		INSERT INTO units_of_measure (id, name, abbreviation, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		unit.ID, unit.Name, unit.Abbreviation, unit.CreatedAt, unit.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert unit: %w", err)
	}
	return nil
}

func (r *UnitRepo) GetByID(id string) (*entity.UnitOfMeasure, error) {
	var unit entity.UnitOfMeasure
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, abbreviation, created_at, updated_at FROM units_of_measure WHERE id = $1`,
		id).Scan(&unit.ID, &unit.Name, &unit.Abbreviation, &unit.CreatedAt, &unit.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get unit: %w", err)
	}
	return &unit, nil
}

func (r *UnitRepo) List() ([]*entity.UnitOfMeasure, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, abbreviation, created_at, updated_at FROM units_of_measure ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	defer rows.Close()

	var list []*entity.UnitOfMeasure
	for rows.Next() {
		var unit entity.UnitOfMeasure
		if err := rows.Scan(&unit.ID, &unit.Name, &unit.Abbreviation, &unit.CreatedAt, &unit.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan unit: %w", err)
		}
		list = append(list, &unit)
	}
	return list, rows.Err()
}

func (r *UnitRepo) Update(unit *entity.UnitOfMeasure) error {
	query := `
		UPDATE units_of_measure
		SET name = $2, abbreviation = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		unit.ID, unit.Name, unit.Abbreviation, unit.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update unit: %w", err)
	}
	return nil
}

func (r *UnitRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM units_of_measure WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrUnitInUse
		}
		return fmt.Errorf("delete unit: %w", err)
	}
	return nil
}
