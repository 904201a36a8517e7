package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Tiendas-api/internal/application/auth"
	"github.com/jhoicas/Tiendas-api/internal/application/usecase"
	"github.com/jhoicas/Tiendas-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ShopUC    *usecase.ShopUseCase
	UserUC    *usecase.UserUseCase
	AuthUC    *auth.AuthUseCase
	JWTSecret string
}

// Router registra las rutas de la API. Todo cuelga de /api; login y register
// son públicos, el resto exige Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.UserUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/profile", AuthMiddleware(deps.JWTSecret), authHandler.Profile)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Shops (protegido)
	shops := protected.Group("/shops")
	shopHandler := NewShopHandler(deps.ShopUC)
	shops.Post("/", shopHandler.Create)
	shops.Get("/", shopHandler.List)
	shops.Get("/:id", shopHandler.GetByID)
	shops.Patch("/:id", shopHandler.Update)
	shops.Delete("/:id", RequireRole(entity.RoleSuperAdmin, entity.RoleShopOwner), shopHandler.Delete)

	// Users (protegido)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Patch("/:id", userHandler.Update)
	users.Delete("/:id", RequireRole(entity.RoleSuperAdmin, entity.RoleShopOwner), userHandler.Delete)
}
