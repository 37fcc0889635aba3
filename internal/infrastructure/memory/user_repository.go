package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo usuarios en memoria.
type UserRepo struct {
	s *Store
}

// NewUserRepository construye el repositorio.
func NewUserRepository(s *Store) *UserRepo {
	return &UserRepo{s: s}
}

// Create inserta un usuario; username es único sin distinguir mayúsculas.
func (r *UserRepo) Create(_ context.Context, u *entity.User) error {
	return r.s.write(false, func() error {
		for _, o := range r.s.users {
			if strings.EqualFold(o.Username, u.Username) {
				return fmt.Errorf("usuario %s: %w", u.Username, domain.ErrDuplicate)
			}
		}
		c := *u
		r.s.users[u.ID] = &c
		return nil
	})
}

// GetByID devuelve una copia del usuario o nil.
func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	var out *entity.User
	r.s.read(false, func() {
		if u, ok := r.s.users[id]; ok {
			c := *u
			out = &c
		}
	})
	return out, nil
}

// GetByUsername busca sin distinguir mayúsculas.
func (r *UserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	var out *entity.User
	r.s.read(false, func() {
		for _, u := range r.s.users {
			if strings.EqualFold(u.Username, username) {
				c := *u
				out = &c
				return
			}
		}
	})
	return out, nil
}

// List ordena por username.
func (r *UserRepo) List(_ context.Context, limit, offset int) ([]*entity.User, error) {
	var list []*entity.User
	r.s.read(false, func() {
		for _, u := range r.s.users {
			c := *u
			list = append(list, &c)
		}
	})
	sort.Slice(list, func(i, j int) bool { return list[i].Username < list[j].Username })
	return paginate(list, limit, offset), nil
}

// SetActive activa o desactiva un usuario.
func (r *UserRepo) SetActive(_ context.Context, id string, active bool, at time.Time) error {
	return r.s.write(false, func() error {
		u, ok := r.s.users[id]
		if !ok {
			return fmt.Errorf("usuario %s: %w", id, domain.ErrNotFound)
		}
		u.Active = active
		u.UpdatedAt = at
		return nil
	})
}

// SetRole cambia el rol de un usuario.
func (r *UserRepo) SetRole(_ context.Context, id, role string, at time.Time) error {
	return r.s.write(false, func() error {
		u, ok := r.s.users[id]
		if !ok {
			return fmt.Errorf("usuario %s: %w", id, domain.ErrNotFound)
		}
		u.Role = role
		u.UpdatedAt = at
		return nil
	})
}

// TouchLogin registra el último ingreso.
func (r *UserRepo) TouchLogin(_ context.Context, id string, at time.Time) error {
	return r.s.write(false, func() error {
		if u, ok := r.s.users[id]; ok {
			t := at
			u.LastLoginAt = &t
		}
		return nil
	})
}
