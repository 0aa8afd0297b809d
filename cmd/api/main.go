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
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/inventario-lite/internal/application/analytics"
	"github.com/tu-usuario/inventario-lite/internal/application/auth"
	"github.com/tu-usuario/inventario-lite/internal/application/reports"
	"github.com/tu-usuario/inventario-lite/internal/application/usecase"
	"github.com/tu-usuario/inventario-lite/internal/domain/entity"
	"github.com/tu-usuario/inventario-lite/internal/domain/repository"
	"github.com/tu-usuario/inventario-lite/internal/infrastructure/memory"
	infrapdf "github.com/tu-usuario/inventario-lite/internal/infrastructure/pdf"
	"github.com/tu-usuario/inventario-lite/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/inventario-lite/internal/interfaces/http"
	"github.com/tu-usuario/inventario-lite/pkg/config"
	"github.com/tu-usuario/inventario-lite/pkg/logger"
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
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Record Store: el handle se construye aquí y se inyecta explícitamente;
	// su ciclo de vida (abrir/cerrar) es del proceso, no del import.
	var productStore repository.ProductStore
	var userStore repository.UserStore

	switch cfg.Store.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		productStore = postgres.NewProductStore(pool)
		userStore = postgres.NewUserStore(pool)
	case config.DriverMemory:
		productStore = memory.NewProductStore()
		memUsers := memory.NewUserStore()
		if err := seedMemoryOperator(ctx, memUsers, cfg.Seed); err != nil {
			log.Fatal().Err(err).Msg("sembrar operador en memoria")
		}
		userStore = memUsers
		log.Warn().Msg("modo memory: los datos no sobreviven al proceso")
	}

	productUC := usecase.NewProductUseCase(productStore)
	dashboardUC := analytics.NewDashboardUseCase(productStore)
	reportUC := reports.NewPDFUseCase(productStore, infrapdf.NewMarotoReportGenerator())
	authUC := auth.NewAuthUseCase(userStore, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

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
		Title:    "Inventario Lite API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		DashboardUC: dashboardUC,
		ReportUC:    reportUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
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

// seedMemoryOperator crea el operador inicial en el store en memoria.
// En modo postgres la siembra es responsabilidad de cmd/seed.
func seedMemoryOperator(ctx context.Context, users repository.UserStore, seed config.SeedConfig) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(seed.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return users.Create(ctx, &entity.User{
		ID:           uuid.New().String(),
		Username:     seed.AdminUsername,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		CreatedAt:    time.Now(),
	})
}
