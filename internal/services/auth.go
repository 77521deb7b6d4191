package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"climate-repair-system/internal/authz"
	"climate-repair-system/internal/dto"
	"climate-repair-system/internal/entities"
	"climate-repair-system/internal/repositories"
	apperrors "climate-repair-system/pkg/errors"
	"climate-repair-system/pkg/service"
)

type AuthServiceInterface interface {
	Register(ctx context.Context, payload dto.RegisterDTO) (*dto.UserDTO, error)
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.TokenDTO, error)
	Me(ctx context.Context, actor authz.Actor) (*dto.ProfileDTO, error)
}

type AuthService struct {
	userRepo repositories.UserRepositoryInterface
	jwtSvc   service.JWTService
	logger   *zap.Logger
}

func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	jwtSvc service.JWTService,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		jwtSvc:   jwtSvc,
		logger:   logger,
	}
}

func (s *AuthService) Register(ctx context.Context, payload dto.RegisterDTO) (*dto.UserDTO, error) {
	role, err := authz.ParseRole(payload.Role)
	if err != nil {
		return nil, apperrors.NewInvalidInputError("недопустимая роль: %s", payload.Role)
	}

	taken, err := s.userRepo.IsLoginTaken(ctx, payload.Login)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.ErrLoginTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("хеширование пароля: %w", err)
	}

	user := &entities.User{
		Fio:      payload.Fio,
		Phone:    payload.Phone,
		Login:    payload.Login,
		Password: string(hash),
		Role:     role,
	}

	id, err := s.userRepo.Insert(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id

	s.logger.Info("Зарегистрирован новый пользователь",
		zap.Int("userID", id),
		zap.String("role", string(role)))

	result := dto.NewUserDTO(*user)
	return &result, nil
}

func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.TokenDTO, error) {
	user, err := s.userRepo.FindByLogin(ctx, payload.Login)
	if err != nil {
		// Несуществующий логин и неверный пароль наружу неразличимы.
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(payload.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtSvc.GenerateToken(user.ID, string(user.Role), user.Fio)
	if err != nil {
		return nil, fmt.Errorf("выпуск токена: %w", err)
	}

	return &dto.TokenDTO{
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}

func (s *AuthService) Me(ctx context.Context, actor authz.Actor) (*dto.ProfileDTO, error) {
	user, err := s.userRepo.FindByID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	return &dto.ProfileDTO{
		UserID: user.ID,
		Fio:    user.Fio,
		Phone:  user.Phone,
		Login:  user.Login,
		Role:   string(user.Role),
	}, nil
}
