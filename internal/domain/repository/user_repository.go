package repository

import (
	"time"

	"github.com/jhoicas/Tiendas-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los Get* devuelven (nil, nil) cuando no hay fila; la unicidad del email
// la garantiza el constraint UNIQUE de la tabla, no el pre-chequeo.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	List(limit, offset int) ([]*entity.User, error)
	ListByShop(shopID string) ([]*entity.User, error)
	Update(user *entity.User) error
	UpdateLastLogin(id string, at time.Time) error
	Delete(id string) (bool, error)
}
