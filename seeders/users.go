package seeders

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"climate-repair-system/internal/authz"
	"climate-repair-system/internal/entities"
	"climate-repair-system/internal/repositories"
	apperrors "climate-repair-system/pkg/errors"
)

type demoUser struct {
	fio      string
	phone    string
	login    string
	password string
	role     authz.Role
}

// Демонстрационный набор: по одному пользователю на каждую роль.
var demoUsers = []demoUser{
	{"Иванов Иван Иванович", "+7 900 111-22-33", "client", "client123", authz.RoleCustomer},
	{"Петров Петр Петрович", "+7 900 222-33-44", "master", "master123", authz.RoleSpecialist},
	{"Сидорова Анна Сергеевна", "+7 900 333-44-55", "operator", "operator123", authz.RoleOperator},
	{"Кузнецов Олег Викторович", "+7 900 444-55-66", "manager", "manager123", authz.RoleManager},
}

// SeedUsers создает демонстрационных пользователей, пропуская уже
// существующие логины. Повторный запуск безопасен.
func SeedUsers(ctx context.Context, userRepo repositories.UserRepositoryInterface) error {
	for _, du := range demoUsers {
		_, err := userRepo.FindByLogin(ctx, du.login)
		if err == nil {
			continue
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("проверка пользователя %s: %w", du.login, err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(du.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("хеширование пароля для %s: %w", du.login, err)
		}

		user := &entities.User{
			Fio:      du.fio,
			Phone:    du.phone,
			Login:    du.login,
			Password: string(hash),
			Role:     du.role,
		}
		if _, err := userRepo.Insert(ctx, user); err != nil {
			return fmt.Errorf("создание пользователя %s: %w", du.login, err)
		}
	}
	return nil
}
