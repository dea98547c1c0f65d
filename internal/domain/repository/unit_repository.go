package repository

import "github.com/never130/isidro-gourmet/internal/domain/entity"

// UnitRepository puerto de persistencia para UnitOfMeasure.
type UnitRepository interface {
	Create(unit *entity.UnitOfMeasure) error
	GetByID(id string) (*entity.UnitOfMeasure, error)
	List() ([]*entity.UnitOfMeasure, error)
	Update(unit *entity.UnitOfMeasure) error
	Delete(id string) error
}
