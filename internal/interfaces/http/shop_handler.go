package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Tiendas-api/internal/application/dto"
	"github.com/jhoicas/Tiendas-api/internal/application/usecase"
	"github.com/jhoicas/Tiendas-api/internal/domain"
)

// ShopHandler maneja las peticiones HTTP para el recurso Shop.
type ShopHandler struct {
	uc *usecase.ShopUseCase
}

// NewShopHandler construye el handler inyectando el caso de uso.
func NewShopHandler(uc *usecase.ShopUseCase) *ShopHandler {
	return &ShopHandler{uc: uc}
}

// Create godoc
// @Summary      Crear tienda
// @Tags         shops
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateShopRequest  true  "Datos de la tienda"
// @Success      201   {object}  dto.ShopResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/shops [post]
func (h *ShopHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateShopRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if fields := validateStruct(in); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "payload inválido", Fields: fields})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return mapShopError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar tiendas (con usuarios asociados)
// @Tags         shops
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.ShopListResponse
// @Router       /api/shops [get]
func (h *ShopHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener tienda por ID (con usuarios asociados)
// @Tags         shops
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la tienda"
// @Success      200  {object}  dto.ShopResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/shops/{id} [get]
func (h *ShopHandler) GetByID(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return mapShopError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar tienda (merge parcial)
// @Tags         shops
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "ID de la tienda"
// @Param        body  body  dto.UpdateShopRequest  true  "Campos a cambiar"
// @Success      200   {object}  dto.ShopResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/shops/{id} [patch]
func (h *ShopHandler) Update(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return invalidID(c)
	}
	var in dto.UpdateShopRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if fields := validateStruct(in); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "payload inválido", Fields: fields})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return mapShopError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar tienda (los usuarios asociados quedan sin tienda)
// @Tags         shops
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la tienda"
// @Success      204  "sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/shops/{id} [delete]
func (h *ShopHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return invalidID(c)
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return mapShopError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// mapShopError traduce cada error de dominio a su categoría HTTP fija.
func mapShopError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrShopNameTaken:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NAME_TAKEN", Message: "ya existe una tienda con ese nombre"})
	case domain.ErrShopNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tienda no encontrada"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}
