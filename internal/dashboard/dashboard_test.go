package dashboard

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skufu/healthguide/migrations"
)

type fakeRows struct {
	data    [][]any
	idx     int
	scanErr error
	err     error
	closed  bool
}

func (r *fakeRows) Close()                                       { r.closed = true }
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return r.data[r.idx-1], nil }

func (r *fakeRows) Next() bool {
	if r.idx >= len(r.data) {
		return false
	}
	r.idx++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	row := r.data[r.idx-1]
	*dest[0].(*time.Time) = row[0].(time.Time)
	*dest[1].(*string) = row[1].(string)
	*dest[2].(*int) = row[2].(int)
	*dest[3].(*string) = row[3].(string)
	*dest[4].(*int) = row[4].(int)
	return nil
}

type fakeQuerier struct {
	rows     *fakeRows
	queryErr error
	execErr  error
	args     []any
	executed []string
}

func (q *fakeQuerier) Query(_ context.Context, _ string, args ...any) (pgx.Rows, error) {
	q.args = args
	if q.queryErr != nil {
		return nil, q.queryErr
	}
	return q.rows, nil
}

func (q *fakeQuerier) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	if q.execErr != nil {
		return pgconn.CommandTag{}, q.execErr
	}
	q.executed = append(q.executed, sql)
	return pgconn.CommandTag{}, nil
}

func TestStaticSource(t *testing.T) {
	d, err := StaticSource{}.Dashboard(context.Background(), "user-42")
	require.NoError(t, err)

	assert.Equal(t, "user-42", d.UserID)
	assert.Equal(t, 78, d.HealthScore)
	require.Len(t, d.SymptomTrends, 3)
	assert.Equal(t, "2025-01-15", d.SymptomTrends[0].Date)
	assert.Len(t, d.RiskFactors, 4)
	assert.Len(t, d.ImprovementAreas, 4)
	assert.Len(t, d.AIRecommendations, 5)
}

func TestPostgresSourceReadsTrends(t *testing.T) {
	day := time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC)
	rows := &fakeRows{data: [][]any{
		{day, "nausea", 4, "improving", 80},
		{day.AddDate(0, 0, -1), "nausea", 6, "stable", 60},
	}}
	q := &fakeQuerier{rows: rows}

	d, err := NewPostgresSource(q).Dashboard(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, []any{"u1", MaxTrends}, q.args)
	assert.True(t, rows.closed)
	require.Len(t, d.SymptomTrends, 2)
	assert.Equal(t, Trend{Date: "2025-02-03", Symptom: "nausea", Severity: 4, AIPrediction: "improving", DietaryCompliance: 80}, d.SymptomTrends[0])
	assert.Equal(t, "2025-02-02", d.SymptomTrends[1].Date)
	assert.Equal(t, 78, d.HealthScore)
	assert.Equal(t, "u1", d.UserID)
}

func TestPostgresSourceEmptyHistory(t *testing.T) {
	d, err := NewPostgresSource(&fakeQuerier{rows: &fakeRows{}}).Dashboard(context.Background(), "new-user")
	require.NoError(t, err)
	assert.NotNil(t, d.SymptomTrends)
	assert.Empty(t, d.SymptomTrends)
}

func TestPostgresSourceErrors(t *testing.T) {
	boom := errors.New("boom")
	tests := []struct {
		name string
		q    *fakeQuerier
		want string
	}{
		{"query", &fakeQuerier{queryErr: boom}, "query symptom trends"},
		{"scan", &fakeQuerier{rows: &fakeRows{data: [][]any{{}}, scanErr: boom}}, "scan symptom trend"},
		{"rows", &fakeQuerier{rows: &fakeRows{err: boom}}, "read symptom trends"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPostgresSource(tt.q).Dashboard(context.Background(), "u1")
			require.Error(t, err)
			assert.ErrorIs(t, err, boom)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestMigrateAppliesFilesInOrder(t *testing.T) {
	files := fstest.MapFS{
		"002_b.sql":  {Data: []byte("SELECT 2")},
		"001_a.sql":  {Data: []byte("SELECT 1")},
		"README.txt": {Data: []byte("ignored")},
	}
	q := &fakeQuerier{}

	require.NoError(t, Migrate(context.Background(), q, files))
	assert.Equal(t, []string{"SELECT 1", "SELECT 2"}, q.executed)
}

func TestMigrateEmbeddedSchema(t *testing.T) {
	q := &fakeQuerier{}
	require.NoError(t, Migrate(context.Background(), q, migrations.Files))
	require.Len(t, q.executed, 1)
	assert.Contains(t, q.executed[0], "CREATE TABLE IF NOT EXISTS symptom_trends")
}

func TestMigrateWrapsExecError(t *testing.T) {
	q := &fakeQuerier{execErr: errors.New("syntax error")}
	err := Migrate(context.Background(), q, fstest.MapFS{"001.sql": {Data: []byte("x")}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "apply migration 001.sql")
}
