package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"climate-repair-system/internal/authz"
	"climate-repair-system/internal/dto"
	"climate-repair-system/internal/entities"
	"climate-repair-system/internal/repositories"
	"climate-repair-system/pkg/constants"
	apperrors "climate-repair-system/pkg/errors"
)

type RequestServiceInterface interface {
	List(ctx context.Context, actor authz.Actor) ([]dto.RequestDTO, error)
	GetByID(ctx context.Context, actor authz.Actor, id int) (*dto.RequestDTO, error)
	Create(ctx context.Context, actor authz.Actor, payload dto.CreateRequestDTO) (*dto.RequestDTO, error)
	Update(ctx context.Context, actor authz.Actor, id int, payload dto.UpdateRequestDTO) (*dto.RequestDTO, error)
	Delete(ctx context.Context, actor authz.Actor, id int) error
}

type RequestService struct {
	requestRepo repositories.RequestRepositoryInterface
	userRepo    repositories.UserRepositoryInterface
	statsCache  StatsCacheInvalidator
	logger      *zap.Logger
}

// StatsCacheInvalidator сбрасывает кэш сводной статистики после любой
// мутации заявок.
type StatsCacheInvalidator interface {
	InvalidateGlobal(ctx context.Context)
}

func NewRequestService(
	requestRepo repositories.RequestRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	statsCache StatsCacheInvalidator,
	logger *zap.Logger,
) *RequestService {
	return &RequestService{
		requestRepo: requestRepo,
		userRepo:    userRepo,
		statsCache:  statsCache,
		logger:      logger,
	}
}

func targetOf(req *entities.RepairRequest) *authz.Target {
	return &authz.Target{ClientID: req.ClientID, MasterID: req.MasterID}
}

// nonEmpty отбрасывает пустые строки в текстовых полях обновления:
// непустое значение заменяет старое, пустое не трогает его.
func nonEmpty(s *string) *string {
	if s != nil && *s == "" {
		return nil
	}
	return s
}

func (s *RequestService) List(ctx context.Context, actor authz.Actor) ([]dto.RequestDTO, error) {
	if err := authz.Decide(actor, authz.RequestsList, nil); err != nil {
		return nil, err
	}

	requests, err := s.requestRepo.List(ctx, authz.ListScope(actor))
	if err != nil {
		return nil, err
	}
	return dto.NewRequestDTOs(requests), nil
}

// GetByID сначала проверяет существование заявки и только потом права:
// чужая несуществующая заявка дает 404, а не 403.
func (s *RequestService) GetByID(ctx context.Context, actor authz.Actor, id int) (*dto.RequestDTO, error) {
	req, err := s.requestRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := authz.Decide(actor, authz.RequestsView, targetOf(req)); err != nil {
		return nil, err
	}

	result := dto.NewRequestDTO(*req)
	return &result, nil
}

func (s *RequestService) Create(ctx context.Context, actor authz.Actor, payload dto.CreateRequestDTO) (*dto.RequestDTO, error) {
	if err := authz.Decide(actor, authz.RequestsCreate, nil); err != nil {
		return nil, err
	}

	status := payload.Status
	if status == "" {
		status = constants.StatusNew
	}
	if !constants.IsKnownStatus(status) {
		return nil, apperrors.NewInvalidInputError("неизвестный статус заявки: %s", status)
	}

	startDate := time.Now()
	if payload.StartDate != "" {
		parsed, err := dto.ParseDate(payload.StartDate)
		if err != nil {
			return nil, apperrors.NewInvalidInputError("неверный формат даты начала: %s", payload.StartDate)
		}
		startDate = parsed
	}

	req := &entities.RepairRequest{
		StartDate:          startDate,
		EquipmentType:      payload.EquipmentType,
		EquipmentModel:     payload.EquipmentModel,
		ProblemDescription: payload.ProblemDescription,
		Status:             status,
		MasterID:           payload.MasterID,
		ClientID:           payload.ClientID,
	}

	// Заказчик всегда создает заявку на себя; переданные client_id и
	// master_id игнорируются. Указанный оператором или менеджером
	// клиент должен существовать, иначе это ошибка валидации.
	if actor.Role == authz.RoleCustomer {
		req.ClientID = actor.ID
		req.MasterID = nil
	} else {
		if req.ClientID == 0 {
			return nil, apperrors.NewInvalidInputError("не указан клиент заявки")
		}
		if _, err := s.userRepo.FindByID(ctx, req.ClientID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewInvalidInputError("клиент с id %d не найден", req.ClientID)
			}
			return nil, err
		}
	}

	id, err := s.requestRepo.Insert(ctx, req)
	if err != nil {
		return nil, err
	}
	req.ID = id

	s.statsCache.InvalidateGlobal(ctx)
	s.logger.Info("Создана заявка",
		zap.Int("requestID", id),
		zap.Int("clientID", req.ClientID),
		zap.String("actorRole", string(actor.Role)))

	result := dto.NewRequestDTO(*req)
	return &result, nil
}

func (s *RequestService) Update(ctx context.Context, actor authz.Actor, id int, payload dto.UpdateRequestDTO) (*dto.RequestDTO, error) {
	req, err := s.requestRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := authz.Decide(actor, authz.RequestsUpdate, targetOf(req)); err != nil {
		return nil, err
	}

	if !payload.HasChanges() {
		return nil, apperrors.ErrEmptyUpdate
	}

	changes := repositories.RequestUpdate{
		Status:             payload.Status,
		ProblemDescription: nonEmpty(payload.ProblemDescription),
		MasterID:           payload.MasterID,
		RepairParts:        nonEmpty(payload.RepairParts),
	}

	if payload.Status != nil && !constants.IsKnownStatus(*payload.Status) {
		return nil, apperrors.NewInvalidInputError("неизвестный статус заявки: %s", *payload.Status)
	}

	if payload.CompletionDate != nil {
		parsed, err := dto.ParseDate(*payload.CompletionDate)
		if err != nil {
			return nil, apperrors.NewInvalidInputError("неверный формат даты завершения: %s", *payload.CompletionDate)
		}
		changes.CompletionDate = &parsed
	}

	// Оператор не распоряжается назначением специалиста: поле
	// отбрасывается молча, остальные изменения применяются.
	if actor.Role == authz.RoleOperator {
		changes.MasterID = nil
	}

	if changes.IsEmpty() {
		result := dto.NewRequestDTO(*req)
		return &result, nil
	}

	updated, err := s.requestRepo.Update(ctx, id, changes)
	if err != nil {
		return nil, err
	}

	s.statsCache.InvalidateGlobal(ctx)
	s.logger.Info("Обновлена заявка",
		zap.Int("requestID", id),
		zap.Int("actorID", actor.ID),
		zap.String("actorRole", string(actor.Role)))

	result := dto.NewRequestDTO(*updated)
	return &result, nil
}

func (s *RequestService) Delete(ctx context.Context, actor authz.Actor, id int) error {
	if _, err := s.requestRepo.FindByID(ctx, id); err != nil {
		return err
	}

	if err := authz.Decide(actor, authz.RequestsDelete, nil); err != nil {
		return err
	}

	if err := s.requestRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.statsCache.InvalidateGlobal(ctx)
	s.logger.Info("Удалена заявка",
		zap.Int("requestID", id),
		zap.Int("actorID", actor.ID))
	return nil
}
