package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Tiendas-api/internal/application/dto"
	"github.com/jhoicas/Tiendas-api/internal/domain"
	"github.com/jhoicas/Tiendas-api/internal/domain/entity"
	"github.com/jhoicas/Tiendas-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con repos atados a una misma transacción.
// Lo implementa postgres.TxRunner; la interfaz evita el import circular.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		shopRepo repository.ShopRepository,
		userRepo repository.UserRepository,
	) error) error
}

// ShopUseCase aplica reglas de negocio para tiendas (casos de uso).
type ShopUseCase struct {
	repo     repository.ShopRepository
	userRepo repository.UserRepository
	tx       TxRunner
}

// NewShopUseCase construye el caso de uso con los puertos de persistencia y el tx runner.
func NewShopUseCase(repo repository.ShopRepository, userRepo repository.UserRepository, tx TxRunner) *ShopUseCase {
	return &ShopUseCase{repo: repo, userRepo: userRepo, tx: tx}
}

// Create crea una nueva tienda. Genera ID y estado inicial. Devuelve
// domain.ErrShopNameTaken si el nombre ya existe (pre-chequeo + constraint).
func (uc *ShopUseCase) Create(in dto.CreateShopRequest) (*dto.ShopResponse, error) {
	existing, _ := uc.repo.GetByName(in.Name)
	if existing != nil {
		return nil, domain.ErrShopNameTaken
	}
	now := time.Now()
	status := in.Status
	if status == "" {
		status = entity.StatusActive
	}
	shop := &entity.Shop{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Address:     in.Address,
		PhoneNumber: in.PhoneNumber,
		Email:       in.Email,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(shop); err != nil {
		return nil, err
	}
	return uc.toResponse(shop, nil), nil
}

// GetByID obtiene una tienda por ID con sus usuarios asociados.
// Devuelve domain.ErrShopNotFound si no existe.
func (uc *ShopUseCase) GetByID(id string) (*dto.ShopResponse, error) {
	shop, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, domain.ErrShopNotFound
	}
	users, err := uc.userRepo.ListByShop(shop.ID)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(shop, users), nil
}

// List lista tiendas con paginación, cada una con sus usuarios asociados.
func (uc *ShopUseCase) List(limit, offset int) (*dto.ShopListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ShopResponse, 0, len(list))
	for _, s := range list {
		users, err := uc.userRepo.ListByShop(s.ID)
		if err != nil {
			return nil, err
		}
		items = append(items, *uc.toResponse(s, users))
	}
	return &dto.ShopListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update aplica merge: solo los campos presentes cambian.
// Devuelve domain.ErrShopNotFound si el ID no existe.
func (uc *ShopUseCase) Update(id string, in dto.UpdateShopRequest) (*dto.ShopResponse, error) {
	shop, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, domain.ErrShopNotFound
	}
	if in.Name != nil {
		shop.Name = *in.Name
	}
	if in.Description != nil {
		shop.Description = *in.Description
	}
	if in.Address != nil {
		shop.Address = *in.Address
	}
	if in.PhoneNumber != nil {
		shop.PhoneNumber = *in.PhoneNumber
	}
	if in.Email != nil {
		shop.Email = *in.Email
	}
	if in.Status != nil {
		shop.Status = *in.Status
	}
	shop.UpdatedAt = time.Now()

	if err := uc.repo.Update(shop); err != nil {
		return nil, err
	}
	users, err := uc.userRepo.ListByShop(shop.ID)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(shop, users), nil
}

// Delete elimina una tienda (hard delete). Política ante usuarios asociados:
// detach — se les pone shop_id = NULL en la misma transacción que el borrado,
// nunca se borran en cascada (la relación User→Shop es débil).
func (uc *ShopUseCase) Delete(ctx context.Context, id string) error {
	return uc.tx.Run(ctx, func(shopRepo repository.ShopRepository, _ repository.UserRepository) error {
		if err := shopRepo.DetachUsers(id); err != nil {
			return err
		}
		deleted, err := shopRepo.Delete(id)
		if err != nil {
			return err
		}
		if !deleted {
			return domain.ErrShopNotFound
		}
		return nil
	})
}

func (uc *ShopUseCase) toResponse(s *entity.Shop, users []*entity.User) *dto.ShopResponse {
	if s == nil {
		return nil
	}
	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, *entityToUserResponse(u, nil))
	}
	return &dto.ShopResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Address:     s.Address,
		PhoneNumber: s.PhoneNumber,
		Email:       s.Email,
		Status:      s.Status,
		Users:       items,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
