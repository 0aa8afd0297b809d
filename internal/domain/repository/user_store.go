package repository

import (
	"context"

	"github.com/tu-usuario/inventario-lite/internal/domain/entity"
)

// UserStore define el puerto de persistencia para User.
// FindByUsername devuelve nil (sin error) cuando el usuario no existe.
type UserStore interface {
	Create(ctx context.Context, user *entity.User) error
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
}
