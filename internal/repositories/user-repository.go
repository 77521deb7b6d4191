package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"climate-repair-system/internal/authz"
	"climate-repair-system/internal/entities"
	apperrors "climate-repair-system/pkg/errors"
)

type UserRepositoryInterface interface {
	FindByID(ctx context.Context, id int) (*entities.User, error)
	FindByLogin(ctx context.Context, login string) (*entities.User, error)
	IsLoginTaken(ctx context.Context, login string) (bool, error)
	Insert(ctx context.Context, user *entities.User) (int, error)
	GetAll(ctx context.Context) ([]entities.User, error)
	GetByRole(ctx context.Context, role authz.Role) ([]entities.User, error)
}

type UserRepository struct {
	db Querier
	qb sq.StatementBuilderType
}

func NewUserRepository(db Querier) *UserRepository {
	return &UserRepository{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *UserRepository) baseSelect() sq.SelectBuilder {
	return r.qb.
		Select("id", "fio", "phone", "login", "password", "role").
		From("users")
}

func (r *UserRepository) scanUser(row pgx.Row) (*entities.User, error) {
	var u entities.User
	err := row.Scan(&u.ID, &u.Fio, &u.Phone, &u.Login, &u.Password, &u.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("чтение пользователя: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int) (*entities.User, error) {
	query, args, err := r.baseSelect().Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return r.scanUser(r.db.QueryRow(ctx, query, args...))
}

func (r *UserRepository) FindByLogin(ctx context.Context, login string) (*entities.User, error) {
	query, args, err := r.baseSelect().Where(sq.Eq{"login": login}).ToSql()
	if err != nil {
		return nil, err
	}
	return r.scanUser(r.db.QueryRow(ctx, query, args...))
}

func (r *UserRepository) IsLoginTaken(ctx context.Context, login string) (bool, error) {
	query, args, err := r.qb.
		Select("1").
		From("users").
		Where(sq.Eq{"login": login}).
		ToSql()
	if err != nil {
		return false, err
	}

	var one int
	err = r.db.QueryRow(ctx, query, args...).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("проверка занятости логина: %w", err)
	}
	return true, nil
}

func (r *UserRepository) Insert(ctx context.Context, user *entities.User) (int, error) {
	query, args, err := r.qb.
		Insert("users").
		Columns("fio", "phone", "login", "password", "role").
		Values(user.Fio, user.Phone, user.Login, user.Password, user.Role).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("создание пользователя: %w", err)
	}
	return id, nil
}

func (r *UserRepository) collect(ctx context.Context, builder sq.SelectBuilder) ([]entities.User, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("выборка пользователей: %w", err)
	}
	defer rows.Close()

	users := make([]entities.User, 0)
	for rows.Next() {
		var u entities.User
		if err := rows.Scan(&u.ID, &u.Fio, &u.Phone, &u.Login, &u.Password, &u.Role); err != nil {
			return nil, fmt.Errorf("чтение пользователя: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepository) GetAll(ctx context.Context) ([]entities.User, error) {
	return r.collect(ctx, r.baseSelect().OrderBy("role", "fio"))
}

func (r *UserRepository) GetByRole(ctx context.Context, role authz.Role) ([]entities.User, error) {
	return r.collect(ctx, r.baseSelect().Where(sq.Eq{"role": role}).OrderBy("fio"))
}
