package repositories

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"climate-repair-system/internal/authz"
	"climate-repair-system/internal/entities"
	"climate-repair-system/pkg/constants"
)

type StatsRepositoryInterface interface {
	CountCompleted(ctx context.Context) (int, error)
	AverageCompletionDays(ctx context.Context, scope authz.ScopeFilter) (*float64, error)
	GroupCountByProblem(ctx context.Context) ([]entities.ProblemStat, error)
	CountByStatus(ctx context.Context, scope authz.ScopeFilter) (map[string]int, error)
	CountByScope(ctx context.Context, scope authz.ScopeFilter) (total int, completed int, err error)
}

type StatsRepository struct {
	db Querier
	qb sq.StatementBuilderType
}

func NewStatsRepository(db Querier) *StatsRepository {
	return &StatsRepository{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func applyScope(builder sq.SelectBuilder, scope authz.ScopeFilter) sq.SelectBuilder {
	if scope.ClientID != nil {
		builder = builder.Where(sq.Eq{"client_id": *scope.ClientID})
	}
	if scope.MasterID != nil {
		builder = builder.Where(sq.Eq{"master_id": *scope.MasterID})
	}
	return builder
}

func (r *StatsRepository) CountCompleted(ctx context.Context) (int, error) {
	query, args, err := r.qb.
		Select("COUNT(*)").
		From("requests").
		Where(sq.Eq{"request_status": constants.CompletedStatuses}).
		ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("подсчёт завершённых заявок: %w", err)
	}
	return count, nil
}

// AverageCompletionDays считает среднее время выполнения в днях по
// заявкам с проставленной датой завершения в пределах scope. nil —
// данных нет. Разность двух DATE в Postgres уже выражена в днях.
func (r *StatsRepository) AverageCompletionDays(ctx context.Context, scope authz.ScopeFilter) (*float64, error) {
	builder := r.qb.
		Select("AVG((completion_date - start_date)::float8)").
		From("requests").
		Where(sq.NotEq{"completion_date": nil})

	query, args, err := applyScope(builder, scope).ToSql()
	if err != nil {
		return nil, err
	}

	var avg *float64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&avg); err != nil {
		return nil, fmt.Errorf("расчёт среднего времени выполнения: %w", err)
	}
	return avg, nil
}

// GroupCountByProblem группирует по дословному тексту описания
// неисправности, без нормализации.
func (r *StatsRepository) GroupCountByProblem(ctx context.Context) ([]entities.ProblemStat, error) {
	query, args, err := r.qb.
		Select("problem_description", "COUNT(*) AS cnt").
		From("requests").
		GroupBy("problem_description").
		OrderBy("cnt DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("группировка по типам неисправностей: %w", err)
	}
	defer rows.Close()

	stats := make([]entities.ProblemStat, 0)
	for rows.Next() {
		var s entities.ProblemStat
		if err := rows.Scan(&s.ProblemType, &s.Count); err != nil {
			return nil, fmt.Errorf("чтение статистики неисправностей: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

// CountByStatus отдаёт распределение заявок по статусам в пределах
// scope.
func (r *StatsRepository) CountByStatus(ctx context.Context, scope authz.ScopeFilter) (map[string]int, error) {
	builder := r.qb.
		Select("request_status", "COUNT(*)").
		From("requests").
		GroupBy("request_status")

	query, args, err := applyScope(builder, scope).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("распределение по статусам: %w", err)
	}
	defer rows.Close()

	byStatus := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("чтение распределения по статусам: %w", err)
		}
		byStatus[status] = count
	}
	return byStatus, rows.Err()
}

// CountByScope возвращает всего заявок и из них завершённых в
// пределах scope.
func (r *StatsRepository) CountByScope(ctx context.Context, scope authz.ScopeFilter) (int, int, error) {
	builder := r.qb.
		Select("COUNT(*)").
		Column(sq.Expr("COUNT(*) FILTER (WHERE request_status = ANY(?))", constants.CompletedStatuses)).
		From("requests")

	query, args, err := applyScope(builder, scope).ToSql()
	if err != nil {
		return 0, 0, err
	}

	var total, completed int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total, &completed); err != nil {
		return 0, 0, fmt.Errorf("статистика по заявкам пользователя: %w", err)
	}
	return total, completed, nil
}
