package auth

import (
	"strings"

	"github.com/tu-usuario/tienda-pro/internal/application/dto"
	"github.com/tu-usuario/tienda-pro/internal/domain"
	"github.com/tu-usuario/tienda-pro/internal/domain/entity"
	"github.com/tu-usuario/tienda-pro/internal/domain/repository"
	"github.com/tu-usuario/tienda-pro/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación. Sistema mono-tienda: el login se
// valida contra el perfil único; no hay registro de usuarios adicionales.
type AuthUseCase struct {
	profileRepo repository.ProfileRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(profileRepo repository.ProfileRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{profileRepo: profileRepo, jwtCfg: jwtCfg}
}

// Login verifica email/password contra el perfil, genera JWT y retorna token + perfil.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	profile, err := uc.profileRepo.Get()
	if err != nil {
		return nil, err
	}
	if profile == nil || !strings.EqualFold(profile.Email, in.Email) {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, profile.ID, entity.RoleAdmin, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:   token,
		Profile: *toProfileResponse(profile),
	}, nil
}

// ChangePassword valida la contraseña actual y guarda el hash de la nueva.
func (uc *AuthUseCase) ChangePassword(current, next string) error {
	if len(next) < 6 {
		return domain.ErrInvalidInput
	}
	profile, err := uc.profileRepo.Get()
	if err != nil {
		return err
	}
	if profile == nil {
		return domain.ErrNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(current)); err != nil {
		return domain.ErrUnauthorized
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	profile.PasswordHash = string(hash)
	return uc.profileRepo.Update(profile)
}

func toProfileResponse(p *entity.ShopProfile) *dto.ProfileResponse {
	if p == nil {
		return nil
	}
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
