package usecase

import (
	"strings"
	"time"

	"github.com/never130/isidro-gourmet/internal/application/dto"
	"github.com/never130/isidro-gourmet/internal/domain/entity"
	"github.com/never130/isidro-gourmet/internal/domain/repository"
)

// SettingsUseCase lectura y actualización de la configuración del negocio.
type SettingsUseCase struct {
	repo repository.SettingsRepository
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(repo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// Get devuelve la configuración vigente, con defaults si nunca se guardó.
func (uc *SettingsUseCase) Get() (*dto.SettingsResponse, error) {
	settings, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = &entity.Settings{BusinessName: "Isidro Gourmet", Currency: "ARS"}
	}
	return toSettingsResponse(settings), nil
}

// Update actualiza la configuración (fila única, upsert).
func (uc *SettingsUseCase) Update(in dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	settings, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = &entity.Settings{ID: "default", BusinessName: "Isidro Gourmet", Currency: "ARS"}
	}
	if in.BusinessName != nil {
		settings.BusinessName = *in.BusinessName
	}
	if in.Currency != nil {
		settings.Currency = strings.ToUpper(*in.Currency)
	}
	if in.Address != nil {
		settings.Address = *in.Address
	}
	if in.Phone != nil {
		settings.Phone = *in.Phone
	}
	settings.UpdatedAt = time.Now()
	if err := uc.repo.Upsert(settings); err != nil {
		return nil, err
	}
	return toSettingsResponse(settings), nil
}

func toSettingsResponse(s *entity.Settings) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		BusinessName: s.BusinessName,
		Currency:     s.Currency,
		Address:      s.Address,
		Phone:        s.Phone,
		UpdatedAt:    s.UpdatedAt,
	}
}
