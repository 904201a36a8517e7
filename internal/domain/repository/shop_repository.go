package repository

import "github.com/jhoicas/Tiendas-api/internal/domain/entity"

// ShopRepository define el puerto de persistencia para Shop (DIP).
// La implementación vive en infrastructure.
type ShopRepository interface {
	Create(shop *entity.Shop) error
	GetByID(id string) (*entity.Shop, error)
	GetByName(name string) (*entity.Shop, error)
	List(limit, offset int) ([]*entity.Shop, error)
	Update(shop *entity.Shop) error
	Delete(id string) (bool, error)
	// DetachUsers pone shop_id = NULL en los usuarios asociados; se usa
	// dentro de la transacción de borrado de tienda.
	DetachUsers(shopID string) error
}
