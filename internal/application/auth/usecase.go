package auth

import (
	"time"

	"github.com/jhoicas/Tiendas-api/internal/application/dto"
	"github.com/jhoicas/Tiendas-api/internal/domain"
	"github.com/jhoicas/Tiendas-api/internal/domain/entity"
	"github.com/jhoicas/Tiendas-api/internal/domain/repository"
	"github.com/jhoicas/Tiendas-api/pkg/jwt"
	"github.com/jhoicas/Tiendas-api/pkg/password"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login y perfil de sesión.
type AuthUseCase struct {
	userRepo repository.UserRepository
	shopRepo repository.ShopRepository
	hasher   *password.Hasher
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, shopRepo repository.ShopRepository, hasher *password.Hasher, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, shopRepo: shopRepo, hasher: hasher, jwtCfg: jwtCfg}
}

// Login verifica email/password, registra lastLoginAt, genera JWT y retorna token + usuario.
// Email inexistente y password incorrecto devuelven el MISMO error genérico
// (domain.ErrUnauthorized): la respuesta nunca revela cuál de los dos falló.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if !uc.hasher.Verify(in.Password, user.PasswordHash) {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != entity.StatusActive {
		return nil, domain.ErrForbidden
	}

	now := time.Now()
	if err := uc.userRepo.UpdateLastLogin(user.ID, now); err != nil {
		return nil, err
	}
	user.LastLoginAt = &now

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken: token,
		User:        *toUserResponse(user, uc.loadShop(user)),
	}, nil
}

// Profile devuelve el usuario del token ya verificado por el middleware.
// Si el usuario ya no existe la sesión se considera terminada (ErrUnauthorized).
func (uc *AuthUseCase) Profile(userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	return toUserResponse(user, uc.loadShop(user)), nil
}

// loadShop carga la tienda asociada para la respuesta; un fallo de lectura
// aquí no tumba el login, solo omite la referencia.
func (uc *AuthUseCase) loadShop(user *entity.User) *entity.Shop {
	if user.ShopID == nil {
		return nil
	}
	shop, err := uc.shopRepo.GetByID(*user.ShopID)
	if err != nil {
		return nil
	}
	return shop
}

func toUserResponse(u *entity.User, shop *entity.Shop) *dto.UserResponse {
	if u == nil {
		return nil
	}
	resp := &dto.UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		PhoneNumber: u.PhoneNumber,
		Role:        u.Role,
		Status:      u.Status,
		ShopID:      u.ShopID,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
		LastLoginAt: u.LastLoginAt,
	}
	if shop != nil {
		resp.Shop = &dto.ShopSummary{ID: shop.ID, Name: shop.Name, Status: shop.Status}
	}
	return resp
}
