package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/warehouse-service/internal/api/http/handlers"
	"github.com/spec-kit/warehouse-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Suppliers      *handlers.SuppliersHandler
	Warehouses     *handlers.WarehousesHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Reads on the entity collections are
// open; writes require a verified bearer token.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Get("/me", cfg.AuthMiddleware.Handle, cfg.Auth.Me)
	authGroup.Post("/logout", cfg.AuthMiddleware.Handle, cfg.Auth.Logout)

	suppliers := api.Group("/suppliers")
	suppliers.Get("/", cfg.Suppliers.List)
	suppliers.Get("/:id", cfg.Suppliers.Get)
	suppliers.Post("/", cfg.AuthMiddleware.Handle, cfg.Suppliers.Create)
	suppliers.Put("/:id", cfg.AuthMiddleware.Handle, cfg.Suppliers.Update)
	suppliers.Delete("/:id", cfg.AuthMiddleware.Handle, cfg.Suppliers.Delete)

	warehouses := api.Group("/warehouses")
	warehouses.Get("/", cfg.Warehouses.List)
	warehouses.Get("/:id", cfg.Warehouses.Get)
	warehouses.Post("/", cfg.AuthMiddleware.Handle, cfg.Warehouses.Create)
	warehouses.Put("/:id", cfg.AuthMiddleware.Handle, cfg.Warehouses.Update)
	warehouses.Delete("/:id", cfg.AuthMiddleware.Handle, cfg.Warehouses.Delete)
}
