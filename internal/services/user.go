package services

import (
	"context"

	"go.uber.org/zap"

	"climate-repair-system/internal/authz"
	"climate-repair-system/internal/dto"
	"climate-repair-system/internal/repositories"
)

type UserServiceInterface interface {
	GetAll(ctx context.Context, actor authz.Actor) ([]dto.UserDTO, error)
	GetSpecialists(ctx context.Context, actor authz.Actor) ([]dto.SpecialistDTO, error)
}

type UserService struct {
	userRepo repositories.UserRepositoryInterface
	logger   *zap.Logger
}

func NewUserService(userRepo repositories.UserRepositoryInterface, logger *zap.Logger) *UserService {
	return &UserService{userRepo: userRepo, logger: logger}
}

// GetAll — полный реестр пользователей, только для менеджера.
func (s *UserService) GetAll(ctx context.Context, actor authz.Actor) ([]dto.UserDTO, error) {
	if err := authz.Decide(actor, authz.UsersList, nil); err != nil {
		return nil, err
	}

	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, dto.NewUserDTO(u))
	}
	return out, nil
}

// GetSpecialists — урезанный список специалистов для назначения
// ответственного; доступен оператору и менеджеру.
func (s *UserService) GetSpecialists(ctx context.Context, actor authz.Actor) ([]dto.SpecialistDTO, error) {
	if err := authz.Decide(actor, authz.SpecialistsList, nil); err != nil {
		return nil, err
	}

	users, err := s.userRepo.GetByRole(ctx, authz.RoleSpecialist)
	if err != nil {
		return nil, err
	}

	out := make([]dto.SpecialistDTO, 0, len(users))
	for _, u := range users {
		out = append(out, dto.NewSpecialistDTO(u))
	}
	return out, nil
}
