package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invoice-generator/internal/application/document"
	"github.com/jhoicas/invoice-generator/pkg/jwt"
	"github.com/jhoicas/invoice-generator/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName   string
	Document  *document.DocumentUseCase
	Logger    *logger.Logger
	JWTSecret string // vacío = rutas públicas
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Logger != nil {
		app.Use(RequestLogger(deps.Logger))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	api := app.Group("/api")
	h := NewLineItemHandler(deps.Document)

	if deps.JWTSecret == "" {
		items := api.Group("/line-items")
		items.Post("/normalize", h.Normalize)
		items.Post("/pdf", h.PDF)
		return
	}

	// Rutas protegidas (requieren Bearer Token)
	items := api.Group("/line-items", AuthMiddleware(deps.JWTSecret))
	items.Post("/normalize", h.Normalize)
	items.Post("/pdf", RequireRole(jwt.RoleAdmin, jwt.RoleBilling), h.PDF)
}
