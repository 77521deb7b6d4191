package services

import (
	"context"
	"sort"
	"time"

	"climate-repair-system/internal/authz"
	"climate-repair-system/internal/entities"
	"climate-repair-system/internal/repositories"
	apperrors "climate-repair-system/pkg/errors"
)

// Фейковые репозитории в памяти для тестов сервисного слоя.

type fakeRequestRepo struct {
	nextID   int
	requests map[int]entities.RepairRequest
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{nextID: 1, requests: make(map[int]entities.RepairRequest)}
}

func (f *fakeRequestRepo) seed(req entities.RepairRequest) entities.RepairRequest {
	req.ID = f.nextID
	f.nextID++
	f.requests[req.ID] = req
	return req
}

func (f *fakeRequestRepo) List(_ context.Context, scope authz.ScopeFilter) ([]entities.RepairRequest, error) {
	out := make([]entities.RepairRequest, 0)
	for _, req := range f.requests {
		if scope.ClientID != nil && req.ClientID != *scope.ClientID {
			continue
		}
		if scope.MasterID != nil && (req.MasterID == nil || *req.MasterID != *scope.MasterID) {
			continue
		}
		out = append(out, req)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeRequestRepo) FindByID(_ context.Context, id int) (*entities.RepairRequest, error) {
	req, ok := f.requests[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &req, nil
}

func (f *fakeRequestRepo) Insert(_ context.Context, req *entities.RepairRequest) (int, error) {
	stored := *req
	stored.ID = f.nextID
	f.nextID++
	f.requests[stored.ID] = stored
	return stored.ID, nil
}

func (f *fakeRequestRepo) Update(_ context.Context, id int, changes repositories.RequestUpdate) (*entities.RepairRequest, error) {
	if changes.IsEmpty() {
		return nil, apperrors.ErrEmptyUpdate
	}
	req, ok := f.requests[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}

	if changes.Status != nil {
		req.Status = *changes.Status
	}
	if changes.ProblemDescription != nil {
		req.ProblemDescription = *changes.ProblemDescription
	}
	if changes.MasterID != nil {
		if changes.MasterID.Valid {
			v := changes.MasterID.Int
			req.MasterID = &v
		} else {
			req.MasterID = nil
		}
	}
	if changes.CompletionDate != nil {
		v := *changes.CompletionDate
		req.CompletionDate = &v
	}
	if changes.RepairParts != nil {
		v := *changes.RepairParts
		req.RepairParts = &v
	}

	f.requests[id] = req
	return &req, nil
}

func (f *fakeRequestRepo) Delete(_ context.Context, id int) error {
	if _, ok := f.requests[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(f.requests, id)
	return nil
}

type fakeUserRepo struct {
	nextID int
	users  map[int]entities.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: make(map[int]entities.User)}
}

func (f *fakeUserRepo) seed(u entities.User) entities.User {
	u.ID = f.nextID
	f.nextID++
	f.users[u.ID] = u
	return u
}

func (f *fakeUserRepo) FindByID(_ context.Context, id int) (*entities.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &u, nil
}

func (f *fakeUserRepo) FindByLogin(_ context.Context, login string) (*entities.User, error) {
	for _, u := range f.users {
		if u.Login == login {
			return &u, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeUserRepo) IsLoginTaken(ctx context.Context, login string) (bool, error) {
	_, err := f.FindByLogin(ctx, login)
	return err == nil, nil
}

func (f *fakeUserRepo) Insert(_ context.Context, user *entities.User) (int, error) {
	stored := *user
	stored.ID = f.nextID
	f.nextID++
	f.users[stored.ID] = stored
	return stored.ID, nil
}

func (f *fakeUserRepo) GetAll(_ context.Context) ([]entities.User, error) {
	out := make([]entities.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeUserRepo) GetByRole(_ context.Context, role authz.Role) ([]entities.User, error) {
	out := make([]entities.User, 0)
	for _, u := range f.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeCommentRepo struct {
	nextID   int
	comments []entities.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{nextID: 1}
}

func (f *fakeCommentRepo) ListByRequest(_ context.Context, requestID int) ([]entities.Comment, error) {
	out := make([]entities.Comment, 0)
	for _, c := range f.comments {
		if c.RequestID == requestID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeCommentRepo) Insert(_ context.Context, comment *entities.Comment) error {
	comment.ID = f.nextID
	f.nextID++
	comment.CreatedAt = time.Now()
	f.comments = append(f.comments, *comment)
	return nil
}

type fakeStatsRepo struct {
	completed     int
	avgDays       *float64
	avgByMaster   map[int]*float64
	avgByClient   map[int]*float64
	problems      []entities.ProblemStat
	byStatus      map[string]int
	totalByMaster map[int]int
	doneByMaster  map[int]int
	totalByClient map[int]int
	doneByClient  map[int]int
	totalAll      int
	doneAll       int
	calls         int
}

func (f *fakeStatsRepo) CountCompleted(_ context.Context) (int, error) {
	f.calls++
	return f.completed, nil
}

func (f *fakeStatsRepo) AverageCompletionDays(_ context.Context, scope authz.ScopeFilter) (*float64, error) {
	switch {
	case scope.MasterID != nil:
		return f.avgByMaster[*scope.MasterID], nil
	case scope.ClientID != nil:
		return f.avgByClient[*scope.ClientID], nil
	}
	return f.avgDays, nil
}

func (f *fakeStatsRepo) GroupCountByProblem(_ context.Context) ([]entities.ProblemStat, error) {
	return f.problems, nil
}

func (f *fakeStatsRepo) CountByStatus(_ context.Context, _ authz.ScopeFilter) (map[string]int, error) {
	return f.byStatus, nil
}

func (f *fakeStatsRepo) CountByScope(_ context.Context, scope authz.ScopeFilter) (int, int, error) {
	switch {
	case scope.MasterID != nil:
		return f.totalByMaster[*scope.MasterID], f.doneByMaster[*scope.MasterID], nil
	case scope.ClientID != nil:
		return f.totalByClient[*scope.ClientID], f.doneByClient[*scope.ClientID], nil
	}
	return f.totalAll, f.doneAll, nil
}

type fakeCache struct {
	store   map[string][]byte
	deletes int
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: make(map[string][]byte)}
}

func (f *fakeCache) Get(_ context.Context, key string) ([]byte, error) {
	return f.store[key], nil
}

func (f *fakeCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	f.store[key] = value
	return nil
}

func (f *fakeCache) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.store, key)
	}
	f.deletes++
	return nil
}

// noopInvalidator считает вызовы сброса кэша статистики.
type noopInvalidator struct {
	calls int
}

func (n *noopInvalidator) InvalidateGlobal(_ context.Context) { n.calls++ }
