package auth

import (
	"github.com/tu-usuario/caja-rapida/internal/application/dto"
	"github.com/tu-usuario/caja-rapida/internal/domain"
	"github.com/tu-usuario/caja-rapida/internal/domain/entity"
	"github.com/tu-usuario/caja-rapida/internal/domain/repository"
	"github.com/tu-usuario/caja-rapida/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase autenticación del panel de administración. El login de empleados
// por PIN no pasa por aquí: lo maneja el gestor de sesión (StartShift).
type AuthUseCase struct {
	adminRepo repository.AdminRepository
	jwtCfg    JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(adminRepo repository.AdminRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{adminRepo: adminRepo, jwtCfg: jwtCfg}
}

// Login verifica email/password contra el hash bcrypt y genera un JWT con
// role "admin". La presencia de esta identidad otorga acceso total a pantallas.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	admin, err := uc.adminRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, admin.ID, admin.Email, "admin", uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		Admin: *toAdminResponse(admin),
	}, nil
}

// Me devuelve la identidad asociada a un ID de admin (para el endpoint /me).
func (uc *AuthUseCase) Me(adminID string) (*dto.AdminResponse, error) {
	admin, err := uc.adminRepo.GetByID(adminID)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, domain.ErrUserNotFound
	}
	return toAdminResponse(admin), nil
}

func toAdminResponse(a *entity.Admin) *dto.AdminResponse {
	if a == nil {
		return nil
	}
	return &dto.AdminResponse{
		ID:        a.ID,
		Email:     a.Email,
		Name:      a.Name,
		CreatedAt: a.CreatedAt,
	}
}
