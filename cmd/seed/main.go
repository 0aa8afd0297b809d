// seed crea el operador inicial del inventario en PostgreSQL si no existe.
// Idempotente: ejecutarlo de nuevo no duplica el usuario.
//
// Uso: go run ./cmd/seed
// Credenciales: ADMIN_USERNAME / ADMIN_PASSWORD (default admin / admin123).
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/inventario-lite/internal/domain/entity"
	"github.com/tu-usuario/inventario-lite/internal/infrastructure/postgres"
	"github.com/tu-usuario/inventario-lite/pkg/config"
	"github.com/tu-usuario/inventario-lite/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"}).Component("seed")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	users := postgres.NewUserStore(pool)

	existing, err := users.FindByUsername(ctx, cfg.Seed.AdminUsername)
	if err != nil {
		log.Fatal().Err(err).Msg("consultar operador")
	}
	if existing != nil {
		log.Info().Str("username", existing.Username).Msg("el operador ya existe")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Seed.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hashear password")
	}

	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     cfg.Seed.AdminUsername,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		CreatedAt:    time.Now(),
	}
	if err := users.Create(ctx, user); err != nil {
		log.Fatal().Err(err).Msg("crear operador")
	}

	log.Info().Str("username", user.Username).Msg("operador creado")
}
