package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Tiendas-api/internal/domain"
	"github.com/jhoicas/Tiendas-api/internal/domain/entity"
	"github.com/jhoicas/Tiendas-api/internal/domain/repository"
)

// Asegura que ShopRepo implementa repository.ShopRepository.
var _ repository.ShopRepository = (*ShopRepo)(nil)

// ShopRepo implementación del puerto ShopRepository sobre PostgreSQL.
type ShopRepo struct {
	q Querier
}

// NewShopRepository construye el adaptador de persistencia para tiendas. Pasar pool o tx (Querier).
func NewShopRepository(q Querier) *ShopRepo {
	return &ShopRepo{q: q}
}

// Create persiste una nueva tienda. Devuelve domain.ErrShopNameTaken si el
// constraint único de name la rechaza (también bajo concurrencia).
func (r *ShopRepo) Create(shop *entity.Shop) error {
	query := `
		INSERT INTO shops (id, name, description, address, phone_number, email, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		shop.ID, shop.Name, shop.Description, shop.Address,
		shop.PhoneNumber, shop.Email, shop.Status,
		shop.CreatedAt, shop.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrShopNameTaken
		}
		return fmt.Errorf("insert shop: %w", err)
	}
	return nil
}

// GetByID obtiene una tienda por ID. Devuelve (nil, nil) si no existe.
func (r *ShopRepo) GetByID(id string) (*entity.Shop, error) {
	query := `
		SELECT id, name, description, address, phone_number, email, status, created_at, updated_at
		FROM shops WHERE id = $1`
	var s entity.Shop
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Name, &s.Description, &s.Address, &s.PhoneNumber, &s.Email, &s.Status,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shop: %w", err)
	}
	return &s, nil
}

// GetByName obtiene una tienda por nombre (unicidad global).
func (r *ShopRepo) GetByName(name string) (*entity.Shop, error) {
	query := `
		SELECT id, name, description, address, phone_number, email, status, created_at, updated_at
		FROM shops WHERE name = $1`
	var s entity.Shop
	err := r.q.QueryRow(context.Background(), query, name).Scan(
		&s.ID, &s.Name, &s.Description, &s.Address, &s.PhoneNumber, &s.Email, &s.Status,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shop by name: %w", err)
	}
	return &s, nil
}

// List devuelve tiendas con paginación.
func (r *ShopRepo) List(limit, offset int) ([]*entity.Shop, error) {
	query := `
		SELECT id, name, description, address, phone_number, email, status, created_at, updated_at
		FROM shops ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list shops: %w", err)
	}
	defer rows.Close()

	var list []*entity.Shop
	for rows.Next() {
		var s entity.Shop
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.Address, &s.PhoneNumber, &s.Email, &s.Status, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan shop: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update persiste la tienda completa (el merge de campos se resuelve en el use case).
func (r *ShopRepo) Update(shop *entity.Shop) error {
	query := `
		UPDATE shops SET name = $2, description = $3, address = $4, phone_number = $5, email = $6, status = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		shop.ID, shop.Name, shop.Description, shop.Address,
		shop.PhoneNumber, shop.Email, shop.Status, shop.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrShopNameTaken
		}
		return fmt.Errorf("update shop: %w", err)
	}
	return nil
}

// Delete elimina una tienda por ID. Devuelve false si no existía.
func (r *ShopRepo) Delete(id string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM shops WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete shop: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// DetachUsers desasocia los usuarios de la tienda (shop_id = NULL).
// La relación User→Shop es débil: borrar la tienda nunca borra usuarios.
func (r *ShopRepo) DetachUsers(shopID string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE users SET shop_id = NULL, updated_at = now() WHERE shop_id = $1`, shopID)
	if err != nil {
		return fmt.Errorf("detach users from shop: %w", err)
	}
	return nil
}
