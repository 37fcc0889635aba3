package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/application/validation"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// UserUseCase consulta y administración de operadores (el alta está en auth).
type UserUseCase struct {
	repo repository.UserRepository
}

func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// GetByID devuelve nil, nil si no existe.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil || user == nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

func (uc *UserUseCase) List(ctx context.Context, limit, offset int) ([]dto.UserResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, *ToUserResponse(u))
	}
	return out, nil
}

// SetActive activa o desactiva un operador. Un usuario desactivado no puede iniciar sesión;
// sus ajustes conservan created_by/applied_by. Nadie puede desactivarse a sí mismo.
func (uc *UserUseCase) SetActive(ctx context.Context, callerID, id string, in dto.UpdateUserStatusRequest) (*dto.UserResponse, error) {
	if verr := validation.Struct(in); verr != nil {
		return nil, verr
	}
	if id == callerID && !*in.Active {
		return nil, domain.NewValidationError("active", "no puede desactivar su propio usuario")
	}
	if err := uc.repo.SetActive(ctx, id, *in.Active, time.Now()); err != nil {
		return nil, err
	}
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// SetRole cambia el rol de un operador. El token vigente conserva el rol anterior hasta expirar.
// Un admin no puede quitarse su propio rol.
func (uc *UserUseCase) SetRole(ctx context.Context, callerID, id string, in dto.UpdateUserRoleRequest) (*dto.UserResponse, error) {
	if verr := validation.Struct(in); verr != nil {
		return nil, verr
	}
	if id == callerID && in.Role != entity.RoleAdmin {
		return nil, domain.NewValidationError("role", "no puede quitarse el rol admin a sí mismo")
	}
	if err := uc.repo.SetRole(ctx, id, in.Role, time.Now()); err != nil {
		return nil, err
	}
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// ToUserResponse proyecta la entidad sin el hash de password.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		Role:        u.Role,
		Active:      u.Active,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
