package usecase

import (
	"context"
	"time"

	"github.com/tu-usuario/tienda-pro/internal/application/dto"
	"github.com/tu-usuario/tienda-pro/internal/domain"
	"github.com/tu-usuario/tienda-pro/internal/domain/entity"
	"github.com/tu-usuario/tienda-pro/internal/domain/repository"
)

// ProfileUseCase casos de uso del perfil de la tienda (fila única).
type ProfileUseCase struct {
	profileRepo repository.ProfileRepository
}

// NewProfileUseCase construye el caso de uso.
func NewProfileUseCase(profileRepo repository.ProfileRepository) *ProfileUseCase {
	return &ProfileUseCase{profileRepo: profileRepo}
}

// Get devuelve el perfil de la tienda.
func (uc *ProfileUseCase) Get(ctx context.Context) (*dto.ProfileResponse, error) {
	profile, err := uc.profileRepo.Get()
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrNotFound
	}
	return toProfileResponse(profile), nil
}

// Update edita el perfil, incluida la configuración del consecutivo.
// NextInvoiceNumber es editable a propósito (el operador puede bajarlo);
// la posible colisión se detecta y rechaza al confirmar la siguiente factura,
// no aquí. Un consecutivo menor a 1 sí se rechaza de entrada.
func (uc *ProfileUseCase) Update(ctx context.Context, in dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	if in.Name == "" || in.ShopName == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.NextInvoiceNumber < 0 || in.InvoicePadding < 0 {
		return nil, domain.ErrInvalidInput
	}
	profile, err := uc.profileRepo.Get()
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrNotFound
	}
	profile.Name = in.Name
	profile.ShopName = in.ShopName
	profile.Phone = in.Phone
	profile.Address = in.Address
	if in.InvoicePrefix != "" {
		profile.InvoicePrefix = in.InvoicePrefix
	}
	if in.NextInvoiceNumber > 0 {
		profile.NextInvoiceNumber = in.NextInvoiceNumber
	}
	if in.InvoicePadding > 0 {
		profile.InvoicePadding = in.InvoicePadding
	}
	profile.UpdatedAt = time.Now()
	if err := uc.profileRepo.Update(profile); err != nil {
		return nil, err
	}
	return toProfileResponse(profile), nil
}

func toProfileResponse(p *entity.ShopProfile) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		ID:                p.ID,
		Name:              p.Name,
		ShopName:          p.ShopName,
		Email:             p.Email,
		Phone:             p.Phone,
		Address:           p.Address,
		InvoicePrefix:     p.InvoicePrefix,
		NextInvoiceNumber: p.NextInvoiceNumber,
		InvoicePadding:    p.InvoicePadding,
	}
}
