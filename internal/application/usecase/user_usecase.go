package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Tiendas-api/internal/application/dto"
	"github.com/jhoicas/Tiendas-api/internal/domain"
	"github.com/jhoicas/Tiendas-api/internal/domain/entity"
	"github.com/jhoicas/Tiendas-api/internal/domain/repository"
	"github.com/jhoicas/Tiendas-api/pkg/password"
)

// UserUseCase aplica reglas de negocio para usuarios: alta con hash de
// password, merge-update y validación de la asociación débil a Shop.
type UserUseCase struct {
	repo     repository.UserRepository
	shopRepo repository.ShopRepository
	hasher   *password.Hasher
}

// NewUserUseCase construye el caso de uso con los puertos de persistencia y el hasher.
func NewUserUseCase(repo repository.UserRepository, shopRepo repository.ShopRepository, hasher *password.Hasher) *UserUseCase {
	return &UserUseCase{repo: repo, shopRepo: shopRepo, hasher: hasher}
}

// Create crea un usuario. Valida primero la tienda (si viene shopId) para no
// persistir nada cuando la referencia no existe; luego hashea y persiste.
// Devuelve domain.ErrEmailAlreadyExists si el email ya está registrado y
// domain.ErrShopNotFound si shopId no apunta a una tienda existente.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	existing, _ := uc.repo.GetByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	var shop *entity.Shop
	if in.ShopID != nil && *in.ShopID != "" {
		s, err := uc.shopRepo.GetByID(*in.ShopID)
		if err != nil {
			return nil, err
		}
		if s == nil {
			return nil, domain.ErrShopNotFound
		}
		shop = s
	}

	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	status := in.Status
	if status == "" {
		status = entity.StatusActive
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: hash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		PhoneNumber:  in.PhoneNumber,
		Role:         in.Role,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if shop != nil {
		user.ShopID = &shop.ID
	}
	// El constraint UNIQUE de email decide bajo concurrencia; el pre-chequeo
	// de arriba solo mejora el mensaje.
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return entityToUserResponse(user, shop), nil
}

// GetByID obtiene un usuario por ID con su tienda asociada (si tiene).
// Devuelve domain.ErrUserNotFound si no existe.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	shop, err := uc.shopOf(user)
	if err != nil {
		return nil, err
	}
	return entityToUserResponse(user, shop), nil
}

// List lista usuarios con paginación (sin hashes en la salida).
func (uc *UserUseCase) List(limit, offset int) (*dto.UserListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *entityToUserResponse(u, nil))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update aplica merge: solo los campos presentes cambian. Si viene password se
// re-hashea; si viene shopId se re-valida la existencia de la tienda ANTES de
// tocar el registro, de modo que la asociación previa queda intacta en fallo.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	var shop *entity.Shop
	if in.ShopID != nil && *in.ShopID != "" {
		s, err := uc.shopRepo.GetByID(*in.ShopID)
		if err != nil {
			return nil, err
		}
		if s == nil {
			return nil, domain.ErrShopNotFound
		}
		shop = s
		user.ShopID = &s.ID
	}

	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Password != nil {
		hash, err := uc.hasher.Hash(*in.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.PhoneNumber != nil {
		user.PhoneNumber = *in.PhoneNumber
	}
	if in.Role != nil {
		user.Role = *in.Role
	}
	if in.Status != nil {
		user.Status = *in.Status
	}
	user.UpdatedAt = time.Now()

	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	if shop == nil {
		if shop, err = uc.shopOf(user); err != nil {
			return nil, err
		}
	}
	return entityToUserResponse(user, shop), nil
}

// Delete elimina un usuario (hard delete). Devuelve domain.ErrUserNotFound si no existía.
func (uc *UserUseCase) Delete(id string) error {
	deleted, err := uc.repo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrUserNotFound
	}
	return nil
}

func (uc *UserUseCase) shopOf(user *entity.User) (*entity.Shop, error) {
	if user.ShopID == nil {
		return nil, nil
	}
	return uc.shopRepo.GetByID(*user.ShopID)
}

// entityToUserResponse mapea la entidad a su DTO de salida. PasswordHash se
// queda fuera por construcción: el DTO no tiene el campo.
func entityToUserResponse(u *entity.User, shop *entity.Shop) *dto.UserResponse {
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
