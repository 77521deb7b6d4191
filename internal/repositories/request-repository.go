package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"

	"climate-repair-system/internal/authz"
	"climate-repair-system/internal/entities"
	apperrors "climate-repair-system/pkg/errors"
)

// RequestUpdate — частичное обновление заявки. nil-поле означает
// "не трогать". MasterID несёт три состояния: nil — не менять,
// невалидный null.Int — снять мастера, валидный — назначить.
type RequestUpdate struct {
	Status             *string
	ProblemDescription *string
	MasterID           *null.Int
	CompletionDate     *time.Time
	RepairParts        *string
}

func (u RequestUpdate) IsEmpty() bool {
	return u.Status == nil &&
		u.ProblemDescription == nil &&
		u.MasterID == nil &&
		u.CompletionDate == nil &&
		u.RepairParts == nil
}

type RequestRepositoryInterface interface {
	List(ctx context.Context, scope authz.ScopeFilter) ([]entities.RepairRequest, error)
	FindByID(ctx context.Context, id int) (*entities.RepairRequest, error)
	Insert(ctx context.Context, req *entities.RepairRequest) (int, error)
	Update(ctx context.Context, id int, changes RequestUpdate) (*entities.RepairRequest, error)
	Delete(ctx context.Context, id int) error
}

type RequestRepository struct {
	db Querier
	qb sq.StatementBuilderType
}

func NewRequestRepository(db Querier) *RequestRepository {
	return &RequestRepository{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

const requestColumns = "id, start_date, equipment_type, equipment_model, problem_description, request_status, completion_date, repair_parts, master_id, client_id"

func (r *RequestRepository) baseSelect() sq.SelectBuilder {
	return r.qb.
		Select("id", "start_date", "equipment_type", "equipment_model",
			"problem_description", "request_status", "completion_date",
			"repair_parts", "master_id", "client_id").
		From("requests")
}

func scanRequest(row pgx.Row) (*entities.RepairRequest, error) {
	var req entities.RepairRequest
	err := row.Scan(&req.ID, &req.StartDate, &req.EquipmentType, &req.EquipmentModel,
		&req.ProblemDescription, &req.Status, &req.CompletionDate,
		&req.RepairParts, &req.MasterID, &req.ClientID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("чтение заявки: %w", err)
	}
	return &req, nil
}

func (r *RequestRepository) List(ctx context.Context, scope authz.ScopeFilter) ([]entities.RepairRequest, error) {
	builder := r.baseSelect().OrderBy("id")
	if scope.ClientID != nil {
		builder = builder.Where(sq.Eq{"client_id": *scope.ClientID})
	}
	if scope.MasterID != nil {
		builder = builder.Where(sq.Eq{"master_id": *scope.MasterID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("выборка заявок: %w", err)
	}
	defer rows.Close()

	requests := make([]entities.RepairRequest, 0)
	for rows.Next() {
		var req entities.RepairRequest
		if err := rows.Scan(&req.ID, &req.StartDate, &req.EquipmentType, &req.EquipmentModel,
			&req.ProblemDescription, &req.Status, &req.CompletionDate,
			&req.RepairParts, &req.MasterID, &req.ClientID); err != nil {
			return nil, fmt.Errorf("чтение заявки: %w", err)
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (r *RequestRepository) FindByID(ctx context.Context, id int) (*entities.RepairRequest, error) {
	query, args, err := r.baseSelect().Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanRequest(r.db.QueryRow(ctx, query, args...))
}

func (r *RequestRepository) Insert(ctx context.Context, req *entities.RepairRequest) (int, error) {
	query, args, err := r.qb.
		Insert("requests").
		Columns("start_date", "equipment_type", "equipment_model",
			"problem_description", "request_status", "completion_date",
			"repair_parts", "master_id", "client_id").
		Values(req.StartDate, req.EquipmentType, req.EquipmentModel,
			req.ProblemDescription, req.Status, req.CompletionDate,
			req.RepairParts, req.MasterID, req.ClientID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("создание заявки: %w", err)
	}
	return id, nil
}

func (r *RequestRepository) Update(ctx context.Context, id int, changes RequestUpdate) (*entities.RepairRequest, error) {
	if changes.IsEmpty() {
		return nil, apperrors.ErrEmptyUpdate
	}

	builder := r.qb.Update("requests").Where(sq.Eq{"id": id})

	if changes.Status != nil {
		builder = builder.Set("request_status", *changes.Status)
	}
	if changes.ProblemDescription != nil {
		builder = builder.Set("problem_description", *changes.ProblemDescription)
	}
	if changes.MasterID != nil {
		if changes.MasterID.Valid {
			builder = builder.Set("master_id", changes.MasterID.Int)
		} else {
			builder = builder.Set("master_id", nil)
		}
	}
	if changes.CompletionDate != nil {
		builder = builder.Set("completion_date", *changes.CompletionDate)
	}
	if changes.RepairParts != nil {
		builder = builder.Set("repair_parts", *changes.RepairParts)
	}

	query, args, err := builder.Suffix("RETURNING " + requestColumns).ToSql()
	if err != nil {
		return nil, err
	}

	return scanRequest(r.db.QueryRow(ctx, query, args...))
}

func (r *RequestRepository) Delete(ctx context.Context, id int) error {
	query, args, err := r.qb.Delete("requests").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("удаление заявки: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
