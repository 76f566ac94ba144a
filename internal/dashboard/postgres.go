package dashboard

import (
	"context"
	"fmt"
	"io/fs"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// MaxTrends bounds how many history rows a dashboard shows.
const MaxTrends = 30

const trendsQuery = `
SELECT recorded_on, symptom, severity, ai_prediction, dietary_compliance
FROM symptom_trends
WHERE user_id = $1
ORDER BY recorded_on DESC, id DESC
LIMIT $2`

// Querier is the subset of *pgxpool.Pool the dashboard store needs.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PostgresSource reads symptom trends from PostgreSQL. Summary fields are
// the same fixed content StaticSource serves.
type PostgresSource struct {
	db Querier
}

// NewPostgresSource wraps db.
func NewPostgresSource(db Querier) *PostgresSource {
	return &PostgresSource{db: db}
}

// Dashboard implements Source.
func (s *PostgresSource) Dashboard(ctx context.Context, userID string) (Dashboard, error) {
	rows, err := s.db.Query(ctx, trendsQuery, userID, MaxTrends)
	if err != nil {
		return Dashboard{}, fmt.Errorf("query symptom trends: %w", err)
	}
	defer rows.Close()

	trends := []Trend{}
	for rows.Next() {
		var (
			recorded time.Time
			t        Trend
		)
		if err := rows.Scan(&recorded, &t.Symptom, &t.Severity, &t.AIPrediction, &t.DietaryCompliance); err != nil {
			return Dashboard{}, fmt.Errorf("scan symptom trend: %w", err)
		}
		t.Date = recorded.Format("2006-01-02")
		trends = append(trends, t)
	}
	if err := rows.Err(); err != nil {
		return Dashboard{}, fmt.Errorf("read symptom trends: %w", err)
	}

	d := staticSummary(userID)
	d.SymptomTrends = trends
	return d, nil
}

// Migrate applies every *.sql file in files in lexical order. Statements
// must be idempotent.
func Migrate(ctx context.Context, db Querier, files fs.FS) error {
	names, err := fs.Glob(files, "*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(names)

	for _, name := range names {
		body, err := fs.ReadFile(files, name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		if _, err := db.Exec(ctx, string(body)); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
	}
	return nil
}
