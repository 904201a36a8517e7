package dto

import "time"

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en use case).
// Los nombres JSON son camelCase: es el contrato que consume el frontend.
type CreateUserRequest struct {
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"password" validate:"required,min=6"`
	FirstName   string  `json:"firstName" validate:"required,min=1,max=200"`
	LastName    string  `json:"lastName" validate:"required,min=1,max=200"`
	PhoneNumber string  `json:"phoneNumber" validate:"omitempty,max=50"`
	Role        string  `json:"role" validate:"required,oneof=super_admin shop_owner manager staff"`
	Status      string  `json:"status" validate:"omitempty,oneof=active inactive suspended"`
	ShopID      *string `json:"shopId" validate:"omitempty,uuid"`
}

// UpdateUserRequest entrada para actualización parcial (merge): solo los campos
// presentes en el JSON se aplican; punteros nil = campo no enviado.
type UpdateUserRequest struct {
	Email       *string `json:"email" validate:"omitempty,email"`
	Password    *string `json:"password" validate:"omitempty,min=6"`
	FirstName   *string `json:"firstName" validate:"omitempty,min=1,max=200"`
	LastName    *string `json:"lastName" validate:"omitempty,min=1,max=200"`
	PhoneNumber *string `json:"phoneNumber" validate:"omitempty,max=50"`
	Role        *string `json:"role" validate:"omitempty,oneof=super_admin shop_owner manager staff"`
	Status      *string `json:"status" validate:"omitempty,oneof=active inactive suspended"`
	ShopID      *string `json:"shopId" validate:"omitempty,uuid"`
}

// ShopSummary referencia mínima a la tienda asociada dentro de UserResponse.
type ShopSummary struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// UserResponse salida de un usuario. El hash de password nunca se serializa:
// el campo ni siquiera existe en el DTO.
type UserResponse struct {
	ID          string       `json:"id"`
	Email       string       `json:"email"`
	FirstName   string       `json:"firstName"`
	LastName    string       `json:"lastName"`
	PhoneNumber string       `json:"phoneNumber,omitempty"`
	Role        string       `json:"role"`
	Status      string       `json:"status"`
	ShopID      *string      `json:"shopId,omitempty"`
	Shop        *ShopSummary `json:"shop,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
	LastLoginAt *time.Time   `json:"lastLoginAt,omitempty"`
}

// UserListResponse listado de usuarios con metadatos de página.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// RegisterRequest entrada para registro público (mismo use case que CreateUserRequest).
type RegisterRequest = CreateUserRequest

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT; access_token es el nombre que espera el frontend.
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}
