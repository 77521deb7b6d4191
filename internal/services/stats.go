package services

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"climate-repair-system/internal/authz"
	"climate-repair-system/internal/entities"
	"climate-repair-system/internal/repositories"
)

const statsGlobalCacheKey = "stats:global"

type StatsServiceInterface interface {
	Global(ctx context.Context, actor authz.Actor) (*entities.GlobalStats, error)
	My(ctx context.Context, actor authz.Actor) (*entities.UserStats, error)
	ByUser(ctx context.Context, actor authz.Actor, userID int) (*entities.UserStats, error)
	InvalidateGlobal(ctx context.Context)
}

type StatsService struct {
	statsRepo repositories.StatsRepositoryInterface
	userRepo  repositories.UserRepositoryInterface
	cache     repositories.CacheRepositoryInterface
	cacheTTL  time.Duration
	logger    *zap.Logger
}

func NewStatsService(
	statsRepo repositories.StatsRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	cache repositories.CacheRepositoryInterface,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *StatsService {
	return &StatsService{
		statsRepo: statsRepo,
		userRepo:  userRepo,
		cache:     cache,
		cacheTTL:  cacheTTL,
		logger:    logger,
	}
}

// Global — сводка по всем заявкам для менеджера. Результат кэшируется
// на короткий TTL; недоступность кэша не мешает отдать живые данные.
func (s *StatsService) Global(ctx context.Context, actor authz.Actor) (*entities.GlobalStats, error) {
	if err := authz.Decide(actor, authz.StatsGlobal, nil); err != nil {
		return nil, err
	}

	if cached, err := s.cache.Get(ctx, statsGlobalCacheKey); err != nil {
		s.logger.Warn("Кэш статистики недоступен", zap.Error(err))
	} else if cached != nil {
		var stats entities.GlobalStats
		if err := json.Unmarshal(cached, &stats); err == nil {
			return &stats, nil
		}
	}

	stats, err := s.computeGlobal(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(stats); err == nil {
		if err := s.cache.Set(ctx, statsGlobalCacheKey, payload, s.cacheTTL); err != nil {
			s.logger.Warn("Не удалось записать статистику в кэш", zap.Error(err))
		}
	}

	return stats, nil
}

func (s *StatsService) computeGlobal(ctx context.Context) (*entities.GlobalStats, error) {
	completed, err := s.statsRepo.CountCompleted(ctx)
	if err != nil {
		return nil, err
	}

	avg, err := s.statsRepo.AverageCompletionDays(ctx, authz.ScopeFilter{})
	if err != nil {
		return nil, err
	}

	problems, err := s.statsRepo.GroupCountByProblem(ctx)
	if err != nil {
		return nil, err
	}

	byStatus, err := s.statsRepo.CountByStatus(ctx, authz.ScopeFilter{})
	if err != nil {
		return nil, err
	}

	return &entities.GlobalStats{
		CompletedCount: completed,
		AverageDays:    avg,
		Problems:       problems,
		ByStatus:       byStatus,
	}, nil
}

// My — личная статистика специалиста по назначенным ему заявкам.
func (s *StatsService) My(ctx context.Context, actor authz.Actor) (*entities.UserStats, error) {
	if err := authz.Decide(actor, authz.StatsOwn, nil); err != nil {
		return nil, err
	}
	return s.computeUser(ctx, authz.ScopeFilter{MasterID: &actor.ID})
}

// ByUser — срез по конкретному пользователю для менеджера.
// Несуществующий пользователь дает 404. Поле владения выбирается по
// роли цели: заявки заказчика считаются по client_id, специалиста —
// по master_id, для остальных ролей срез берется по всем заявкам.
func (s *StatsService) ByUser(ctx context.Context, actor authz.Actor, userID int) (*entities.UserStats, error) {
	if err := authz.Decide(actor, authz.StatsGlobal, nil); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var scope authz.ScopeFilter
	switch user.Role {
	case authz.RoleCustomer:
		scope.ClientID = &user.ID
	case authz.RoleSpecialist:
		scope.MasterID = &user.ID
	}

	return s.computeUser(ctx, scope)
}

func (s *StatsService) computeUser(ctx context.Context, scope authz.ScopeFilter) (*entities.UserStats, error) {
	total, completed, err := s.statsRepo.CountByScope(ctx, scope)
	if err != nil {
		return nil, err
	}

	avg, err := s.statsRepo.AverageCompletionDays(ctx, scope)
	if err != nil {
		return nil, err
	}

	byStatus, err := s.statsRepo.CountByStatus(ctx, scope)
	if err != nil {
		return nil, err
	}

	// При нуле заявок эффективность равна 0%, деления на ноль нет.
	var efficiency float64
	if total > 0 {
		efficiency = float64(completed) / float64(total) * 100
	}

	return &entities.UserStats{
		Total:       total,
		Completed:   completed,
		Efficiency:  efficiency,
		AverageDays: avg,
		ByStatus:    byStatus,
	}, nil
}

// InvalidateGlobal сбрасывает кэш сводки; вызывается после мутаций
// заявок. Ошибка кэша только логируется.
func (s *StatsService) InvalidateGlobal(ctx context.Context) {
	if err := s.cache.Delete(ctx, statsGlobalCacheKey); err != nil {
		s.logger.Warn("Не удалось сбросить кэш статистики", zap.Error(err))
	}
}
