package repositories

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"climate-repair-system/internal/authz"
)

// recordingQuerier запоминает отправленный SQL, ничего не выполняя.
type recordingQuerier struct {
	sql  string
	args []any
}

type noopRow struct{}

func (noopRow) Scan(...any) error { return nil }

func (q *recordingQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	q.sql, q.args = sql, args
	return pgconn.CommandTag{}, nil
}

func (q *recordingQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.sql, q.args = sql, args
	return nil, pgx.ErrNoRows
}

func (q *recordingQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	q.sql, q.args = sql, args
	return noopRow{}
}

func intPtr(v int) *int { return &v }

// Обе колонки дат имеют тип DATE, их разность в Postgres — уже целое
// число дней. EXTRACT(EPOCH ...) для integer не определен и валит
// запрос на этапе планирования.
func TestAverageCompletionDaysQuery(t *testing.T) {
	q := &recordingQuerier{}
	repo := NewStatsRepository(q)

	_, err := repo.AverageCompletionDays(context.Background(), authz.ScopeFilter{})
	require.NoError(t, err)

	assert.Contains(t, q.sql, "AVG((completion_date - start_date)::float8)")
	assert.NotContains(t, q.sql, "EXTRACT")
	assert.Contains(t, q.sql, "completion_date IS NOT NULL")
}

func TestAverageCompletionDaysScoped(t *testing.T) {
	q := &recordingQuerier{}
	repo := NewStatsRepository(q)

	_, err := repo.AverageCompletionDays(context.Background(), authz.ScopeFilter{ClientID: intPtr(3)})
	require.NoError(t, err)
	assert.Contains(t, q.sql, "client_id = $1")
	assert.Equal(t, []any{3}, q.args)

	_, err = repo.AverageCompletionDays(context.Background(), authz.ScopeFilter{MasterID: intPtr(7)})
	require.NoError(t, err)
	assert.Contains(t, q.sql, "master_id = $1")
	assert.Equal(t, []any{7}, q.args)
}

func TestCountByScopeQuery(t *testing.T) {
	q := &recordingQuerier{}
	repo := NewStatsRepository(q)

	_, _, err := repo.CountByScope(context.Background(), authz.ScopeFilter{MasterID: intPtr(7)})
	require.NoError(t, err)

	// Аргумент фильтра статусов идет первым: он стоит в списке колонок,
	// раньше условия WHERE.
	assert.Contains(t, q.sql, "FILTER (WHERE request_status = ANY($1))")
	assert.Contains(t, q.sql, "master_id = $2")
	require.Len(t, q.args, 2)
	assert.Equal(t, 7, q.args[1])
}
