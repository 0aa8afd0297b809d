package memory

import (
	"context"
	"sync"

	"github.com/tu-usuario/inventario-lite/internal/domain/entity"
	"github.com/tu-usuario/inventario-lite/internal/domain/repository"
)

var _ repository.UserStore = (*UserStore)(nil)

// UserStore guarda usuarios en memoria, indexados por username.
// En modo memory el operador se siembra al arrancar (ver cmd/api).
type UserStore struct {
	mu sync.RWMutex
	m  map[string]entity.User
}

// NewUserStore construye el store vacío.
func NewUserStore() *UserStore {
	return &UserStore{m: make(map[string]entity.User)}
}

// Create persiste el usuario. Sobrescribe si el username ya existe.
func (s *UserStore) Create(ctx context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[user.Username] = *user
	return nil
}

// FindByUsername devuelve una copia del usuario o nil si no existe.
func (s *UserStore) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.m[username]
	if !ok {
		return nil, nil
	}
	cp := u
	return &cp, nil
}
