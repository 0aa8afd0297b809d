package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/inventario-lite/internal/domain/entity"
)

// ProductStore define el puerto de persistencia para Product (DIP).
// El store es dueño de la identidad: Insert asigna un ID estrictamente
// mayor que cualquier ID asignado antes, incluso después de borrados.
// List devuelve un snapshot ascendente por ID que refleja toda escritura
// completada antes de la llamada; el caller es dueño del slice devuelto.
type ProductStore interface {
	List(ctx context.Context) ([]*entity.Product, error)
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	Insert(ctx context.Context, name string, stock int64, price decimal.Decimal) (*entity.Product, error)
	Replace(ctx context.Context, id int64, name string, stock int64, price decimal.Decimal) (*entity.Product, error)
	Remove(ctx context.Context, id int64) error
}
