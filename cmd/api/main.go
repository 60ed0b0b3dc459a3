package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/foodiesbnb/foodiesbnb-api/internal/application/auth"
	"github.com/foodiesbnb/foodiesbnb-api/internal/application/foodie"
	"github.com/foodiesbnb/foodiesbnb-api/internal/application/visita"
	infrapdf "github.com/foodiesbnb/foodiesbnb-api/internal/infrastructure/pdf"
	"github.com/foodiesbnb/foodiesbnb-api/internal/infrastructure/postgres"
	httpRouter "github.com/foodiesbnb/foodiesbnb-api/internal/interfaces/http"
	"github.com/foodiesbnb/foodiesbnb-api/pkg/config"
	"github.com/foodiesbnb/foodiesbnb-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migración del esquema")
	}

	userRepo := postgres.NewUserRepository(pool)
	visitRepo := postgres.NewVisitRepository(pool)
	solicitudRepo := postgres.NewSolicitudRepository(pool)
	evidenceTx := postgres.NewEvidenceTxRunner(pool)

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:   cfg.JWT.Secret,
		ExpHours: cfg.JWT.ExpHours,
		Issuer:   cfg.JWT.Issuer,
	})
	visitaUC := visita.NewUseCase(visitRepo, evidenceTx)
	pdfUC := visita.NewPDFUseCase(visitRepo, infrapdf.NewMarotoReservationPDF())
	foodieUC := foodie.NewUseCase(solicitudRepo, authUC)

	// Redis es opcional: sin REDIS_ADDR las rutas de auth corren sin límite.
	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Msg("Redis no responde; rate limiting en modo fail-open")
		}
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "FoodiesBNB API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:            authUC,
		VisitaUC:          visitaUC,
		PDFUC:             pdfUC,
		FoodieUC:          foodieUC,
		JWTSecret:         cfg.JWT.Secret,
		Redis:             rdb,
		AuthRatePerMinute: cfg.Redis.AuthRatePerMinute,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
