package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/inventario-lite/internal/domain"
	"github.com/tu-usuario/inventario-lite/internal/domain/entity"
	"github.com/tu-usuario/inventario-lite/internal/domain/repository"
)

var _ repository.ProductStore = (*ProductStore)(nil)

// ProductStore implementación del puerto ProductStore sobre PostgreSQL.
// La identidad la asigna la secuencia de la columna BIGSERIAL: monótona y
// nunca reutilizada, incluso después de DELETE.
type ProductStore struct {
	pool *pgxpool.Pool
}

// NewProductStore construye el adaptador de persistencia para productos.
func NewProductStore(pool *pgxpool.Pool) *ProductStore {
	return &ProductStore{pool: pool}
}

// List devuelve todos los productos ascendente por ID.
func (s *ProductStore) List(ctx context.Context) ([]*entity.Product, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, stock, price FROM products ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Stock, &p.Price); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// GetByID obtiene un producto por ID. Devuelve nil si no existe.
func (s *ProductStore) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	var p entity.Product
	err := s.pool.QueryRow(ctx,
		`SELECT id, name, stock, price FROM products WHERE id = $1`, id).
		Scan(&p.ID, &p.Name, &p.Stock, &p.Price)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Insert persiste un producto nuevo; la DB asigna el ID (RETURNING).
func (s *ProductStore) Insert(ctx context.Context, name string, stock int64, price decimal.Decimal) (*entity.Product, error) {
	p := entity.Product{Name: name, Stock: stock, Price: price}
	err := s.pool.QueryRow(ctx,
		`INSERT INTO products (name, stock, price) VALUES ($1, $2, $3) RETURNING id`,
		name, stock, price).
		Scan(&p.ID)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}
	return &p, nil
}

// Replace sobrescribe los tres campos en un único UPDATE (atómico por fila).
func (s *ProductStore) Replace(ctx context.Context, id int64, name string, stock int64, price decimal.Decimal) (*entity.Product, error) {
	cmd, err := s.pool.Exec(ctx,
		`UPDATE products SET name = $2, stock = $3, price = $4 WHERE id = $1`,
		id, name, stock, price)
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return nil, domain.ErrNotFound
	}
	return &entity.Product{ID: id, Name: name, Stock: stock, Price: price}, nil
}

// Remove elimina el producto por ID.
func (s *ProductStore) Remove(ctx context.Context, id int64) error {
	cmd, err := s.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
