package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"github.com/foodiesbnb/foodiesbnb-api/internal/application/auth"
	"github.com/foodiesbnb/foodiesbnb-api/internal/application/dto"
	"github.com/foodiesbnb/foodiesbnb-api/internal/application/foodie"
	"github.com/foodiesbnb/foodiesbnb-api/internal/application/visita"
	"github.com/foodiesbnb/foodiesbnb-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.UseCase
	VisitaUC  *visita.UseCase
	PDFUC     *visita.PDFUseCase
	FoodieUC  *foodie.UseCase
	JWTSecret string

	// Redis es opcional: si es nil las rutas de auth quedan sin rate limit.
	Redis             *redis.Client
	AuthRatePerMinute int
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público, con rate limit por IP si hay Redis)
	authGroup := api.Group("/auth")
	if deps.Redis != nil {
		authGroup.Use(RateLimitMiddleware(deps.Redis, deps.AuthRatePerMinute))
	}
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/registro", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/verificar", AuthMiddleware(deps.JWTSecret), authHandler.Verify)
	authGroup.Put("/actualizar-rol", AuthMiddleware(deps.JWTSecret), authHandler.UpdateRol)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Visitas (protegido)
	visitas := protected.Group("/visitas")
	visitaHandler := NewVisitaHandler(deps.VisitaUC, deps.PDFUC)
	visitas.Post("/", visitaHandler.Create)
	visitas.Get("/", visitaHandler.List)
	visitas.Get("/:id", visitaHandler.Get)
	visitas.Put("/:id", visitaHandler.Update)
	visitas.Put("/:id/cancelar", visitaHandler.Cancel)
	visitas.Put("/:id/completar", RequireRole(entity.RolRestaurante), visitaHandler.Complete)
	visitas.Post("/:id/evidencia", RequireRole(entity.RolFoodie), visitaHandler.SubmitEvidence)
	visitas.Get("/:id/pdf", visitaHandler.DownloadPDF)

	// Programa foodie (protegido)
	foodieGroup := protected.Group("/foodie")
	foodieHandler := NewFoodieHandler(deps.FoodieUC)
	foodieGroup.Post("/solicitudes", foodieHandler.Apply)
	foodieGroup.Get("/solicitudes", foodieHandler.List)

	// Fallback 404 con el mismo sobre de error del resto de la API.
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Success: false,
			Message: "Ruta no encontrada",
		})
	})
}
