// Package memory implementa los stores sobre estructuras en memoria protegidas
// con mutex. Es el backend de desarrollo y de los tests: mismas garantías de
// snapshot y de identidad monótona que el adaptador PostgreSQL, sin durabilidad.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/inventario-lite/internal/domain"
	"github.com/tu-usuario/inventario-lite/internal/domain/entity"
	"github.com/tu-usuario/inventario-lite/internal/domain/repository"
)

var _ repository.ProductStore = (*ProductStore)(nil)

// ProductStore guarda los productos en un map protegido con RWMutex.
// nextID solo crece: un ID borrado jamás se reasigna.
type ProductStore struct {
	mu     sync.RWMutex
	m      map[int64]entity.Product
	nextID int64
}

// NewProductStore construye el store vacío.
func NewProductStore() *ProductStore {
	return &ProductStore{m: make(map[int64]entity.Product)}
}

// List devuelve un snapshot ascendente por ID. El slice y sus elementos son
// copias: el caller puede retenerlos sin observar escrituras posteriores.
func (s *ProductStore) List(ctx context.Context) ([]*entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]*entity.Product, 0, len(s.m))
	for _, p := range s.m {
		cp := p
		list = append(list, &cp)
	}
	sortByID(list)
	return list, nil
}

// GetByID devuelve una copia del producto o nil si no existe.
func (s *ProductStore) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.m[id]
	if !ok {
		return nil, nil
	}
	cp := p
	return &cp, nil
}

// Insert asigna el siguiente ID y persiste el producto.
func (s *ProductStore) Insert(ctx context.Context, name string, stock int64, price decimal.Decimal) (*entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	p := entity.Product{ID: s.nextID, Name: name, Stock: stock, Price: price}
	s.m[p.ID] = p
	cp := p
	return &cp, nil
}

// Replace sobrescribe los tres campos mutables de forma atómica.
func (s *ProductStore) Replace(ctx context.Context, id int64, name string, stock int64, price decimal.Decimal) (*entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.m[id]; !ok {
		return nil, domain.ErrNotFound
	}
	p := entity.Product{ID: id, Name: name, Stock: stock, Price: price}
	s.m[id] = p
	cp := p
	return &cp, nil
}

// Remove elimina el registro; el contador de IDs no retrocede.
func (s *ProductStore) Remove(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.m[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.m, id)
	return nil
}

func sortByID(list []*entity.Product) {
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
}
