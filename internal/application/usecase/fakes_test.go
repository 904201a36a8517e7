package usecase_test

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/Tiendas-api/internal/domain"
	"github.com/jhoicas/Tiendas-api/internal/domain/entity"
	"github.com/jhoicas/Tiendas-api/internal/domain/repository"
)

// Fakes en memoria de los puertos de persistencia. Reproducen el contrato de
// los adaptadores postgres: (nil, nil) cuando no hay fila y error de dominio
// ante violación de unicidad.

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entity.User{}}
}

func (r *memUserRepo) Create(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) List(limit, offset int) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.User
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memUserRepo) ListByShop(shopID string) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.User
	for _, u := range r.users {
		if u.ShopID != nil && *u.ShopID == shopID {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memUserRepo) Update(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, u := range r.users {
		if id != user.ID && u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *memUserRepo) UpdateLastLogin(id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		u.LastLoginAt = &at
	}
	return nil
}

func (r *memUserRepo) Delete(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	return true, nil
}

type memShopRepo struct {
	mu    sync.Mutex
	shops map[string]*entity.Shop
	users *memUserRepo // para DetachUsers
}

func newMemShopRepo(users *memUserRepo) *memShopRepo {
	return &memShopRepo{shops: map[string]*entity.Shop{}, users: users}
}

func (r *memShopRepo) Create(shop *entity.Shop) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.shops {
		if s.Name == shop.Name {
			return domain.ErrShopNameTaken
		}
	}
	cp := *shop
	r.shops[shop.ID] = &cp
	return nil
}

func (r *memShopRepo) GetByID(id string) (*entity.Shop, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.shops[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *memShopRepo) GetByName(name string) (*entity.Shop, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.shops {
		if s.Name == name {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memShopRepo) List(limit, offset int) ([]*entity.Shop, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Shop
	for _, s := range r.shops {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memShopRepo) Update(shop *entity.Shop) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, s := range r.shops {
		if id != shop.ID && s.Name == shop.Name {
			return domain.ErrShopNameTaken
		}
	}
	cp := *shop
	r.shops[shop.ID] = &cp
	return nil
}

func (r *memShopRepo) Delete(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.shops[id]; !ok {
		return false, nil
	}
	delete(r.shops, id)
	return true, nil
}

func (r *memShopRepo) DetachUsers(shopID string) error {
	r.users.mu.Lock()
	defer r.users.mu.Unlock()
	for _, u := range r.users.users {
		if u.ShopID != nil && *u.ShopID == shopID {
			u.ShopID = nil
		}
	}
	return nil
}

// memTxRunner ejecuta el callback directamente: los fakes no transaccionan.
type memTxRunner struct {
	shops *memShopRepo
	users *memUserRepo
}

func (r *memTxRunner) Run(ctx context.Context, fn func(repository.ShopRepository, repository.UserRepository) error) error {
	return fn(r.shops, r.users)
}
