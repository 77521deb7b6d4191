package repositories

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"climate-repair-system/internal/entities"
)

type CommentRepositoryInterface interface {
	ListByRequest(ctx context.Context, requestID int) ([]entities.Comment, error)
	Insert(ctx context.Context, comment *entities.Comment) error
}

type CommentRepository struct {
	db Querier
	qb sq.StatementBuilderType
}

func NewCommentRepository(db Querier) *CommentRepository {
	return &CommentRepository{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// ListByRequest отдаёт комментарии заявки от новых к старым,
// подтягивая ФИО автора из users.
func (r *CommentRepository) ListByRequest(ctx context.Context, requestID int) ([]entities.Comment, error) {
	query, args, err := r.qb.
		Select("c.id", "c.message", "c.master_id", "u.fio", "c.request_id", "c.created_at").
		From("comments c").
		Join("users u ON u.id = c.master_id").
		Where(sq.Eq{"c.request_id": requestID}).
		OrderBy("c.created_at DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("выборка комментариев: %w", err)
	}
	defer rows.Close()

	comments := make([]entities.Comment, 0)
	for rows.Next() {
		var c entities.Comment
		if err := rows.Scan(&c.ID, &c.Message, &c.MasterID, &c.MasterName, &c.RequestID, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("чтение комментария: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// Insert создает комментарий; момент создания проставляет БД.
// Заполняет у переданной сущности ID и CreatedAt.
func (r *CommentRepository) Insert(ctx context.Context, comment *entities.Comment) error {
	query, args, err := r.qb.
		Insert("comments").
		Columns("message", "master_id", "request_id", "created_at").
		Values(comment.Message, comment.MasterID, comment.RequestID, sq.Expr("NOW()")).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return err
	}

	if err := r.db.QueryRow(ctx, query, args...).Scan(&comment.ID, &comment.CreatedAt); err != nil {
		return fmt.Errorf("создание комментария: %w", err)
	}
	return nil
}
