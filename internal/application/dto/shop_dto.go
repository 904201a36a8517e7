package dto

import "time"

// CreateShopRequest entrada para crear una tienda. Solo name es obligatorio;
// email se valida sintácticamente si viene no vacío.
type CreateShopRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	Address     string `json:"address" validate:"omitempty,max=500"`
	PhoneNumber string `json:"phoneNumber" validate:"omitempty,max=50"`
	Email       string `json:"email" validate:"omitempty,email"`
	Status      string `json:"status" validate:"omitempty,oneof=active inactive suspended"`
}

// UpdateShopRequest actualización parcial (merge): punteros nil = campo no enviado.
type UpdateShopRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	Address     *string `json:"address" validate:"omitempty,max=500"`
	PhoneNumber *string `json:"phoneNumber" validate:"omitempty,max=50"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Status      *string `json:"status" validate:"omitempty,oneof=active inactive suspended"`
}

// ShopResponse salida de una tienda con sus usuarios asociados (sin hashes).
type ShopResponse struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Address     string         `json:"address,omitempty"`
	PhoneNumber string         `json:"phoneNumber,omitempty"`
	Email       string         `json:"email,omitempty"`
	Status      string         `json:"status"`
	Users       []UserResponse `json:"users"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// ShopListResponse listado de tiendas con metadatos de página.
type ShopListResponse struct {
	Items []ShopResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
