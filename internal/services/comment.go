package services

import (
	"context"

	"go.uber.org/zap"

	"climate-repair-system/internal/authz"
	"climate-repair-system/internal/dto"
	"climate-repair-system/internal/entities"
	"climate-repair-system/internal/repositories"
)

type CommentServiceInterface interface {
	ListByRequest(ctx context.Context, actor authz.Actor, requestID int) ([]dto.CommentDTO, error)
	Create(ctx context.Context, actor authz.Actor, requestID int, payload dto.CreateCommentDTO) (*dto.CommentDTO, error)
}

type CommentService struct {
	commentRepo repositories.CommentRepositoryInterface
	requestRepo repositories.RequestRepositoryInterface
	logger      *zap.Logger
}

func NewCommentService(
	commentRepo repositories.CommentRepositoryInterface,
	requestRepo repositories.RequestRepositoryInterface,
	logger *zap.Logger,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		requestRepo: requestRepo,
		logger:      logger,
	}
}

func (s *CommentService) ListByRequest(ctx context.Context, actor authz.Actor, requestID int) ([]dto.CommentDTO, error) {
	req, err := s.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if err := authz.Decide(actor, authz.CommentsView, targetOf(req)); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	return dto.NewCommentDTOs(comments), nil
}

// Create добавляет комментарий от имени актора; автором всегда
// записывается сам актор, что бы ни пришло в теле запроса.
func (s *CommentService) Create(ctx context.Context, actor authz.Actor, requestID int, payload dto.CreateCommentDTO) (*dto.CommentDTO, error) {
	req, err := s.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if err := authz.Decide(actor, authz.CommentsCreate, targetOf(req)); err != nil {
		return nil, err
	}

	comment := &entities.Comment{
		Message:    payload.Message,
		MasterID:   actor.ID,
		MasterName: actor.Fio,
		RequestID:  requestID,
	}

	if err := s.commentRepo.Insert(ctx, comment); err != nil {
		return nil, err
	}

	s.logger.Info("Добавлен комментарий",
		zap.Int("commentID", comment.ID),
		zap.Int("requestID", requestID),
		zap.Int("authorID", actor.ID))

	result := dto.NewCommentDTO(*comment)
	return &result, nil
}
