package sink

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	_ "github.com/lib/pq"

	"github.com/couchcryptid/weathervault/internal/observability"
	"github.com/couchcryptid/weathervault/pkg/weather"
)

const observationColumns = 10

const createTableSQL = `
CREATE TABLE IF NOT EXISTS weather_observations (
	station_id  TEXT        NOT NULL,
	observed_at TIMESTAMPTZ NOT NULL,
	temp        DOUBLE PRECISION,
	dew_point   DOUBLE PRECISION,
	rh          DOUBLE PRECISION,
	wd          INTEGER,
	ws          DOUBLE PRECISION,
	atmos_pres  DOUBLE PRECISION,
	ceil_hgt    INTEGER,
	visibility  INTEGER,
	PRIMARY KEY (station_id, observed_at)
)`

// PostgresLoader writes observations into the weather_observations table
// with chunked multi-row inserts. Conflicting rows (same station and
// timestamp) are skipped, so re-running a backfill is idempotent.
type PostgresLoader struct {
	db        *sql.DB
	batchSize int
	logger    *slog.Logger
	metrics   *observability.Metrics
}

// NewPostgresLoader opens a connection pool for the given DSN and verifies
// connectivity.
func NewPostgresLoader(ctx context.Context, dsn string, batchSize int, logger *slog.Logger, metrics *observability.Metrics) (*PostgresLoader, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return &PostgresLoader{db: db, batchSize: batchSize, logger: logger, metrics: metrics}, nil
}

// EnsureSchema creates the observations table if it does not exist.
func (l *PostgresLoader) EnsureSchema(ctx context.Context) error {
	if _, err := l.db.ExecContext(ctx, createTableSQL); err != nil {
		return fmt.Errorf("create weather_observations: %w", err)
	}
	return nil
}

// Load inserts a batch of observations, chunked to keep each statement
// within the Postgres parameter limit.
func (l *PostgresLoader) Load(ctx context.Context, observations []weather.Observation) error {
	for start := 0; start < len(observations); start += l.batchSize {
		end := start + l.batchSize
		if end > len(observations) {
			end = len(observations)
		}
		if err := l.insertChunk(ctx, observations[start:end]); err != nil {
			l.metrics.SinkLoads.WithLabelValues("postgres", "error").Inc()
			return err
		}
		l.metrics.SinkBatchSize.Observe(float64(end - start))
		l.metrics.SinkLoads.WithLabelValues("postgres", "success").Inc()
	}
	return nil
}

func (l *PostgresLoader) insertChunk(ctx context.Context, chunk []weather.Observation) error {
	query, args := buildInsert(chunk)
	if _, err := l.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert observations: %w", err)
	}
	l.logger.Debug("observations inserted", "count", len(chunk))
	return nil
}

func (l *PostgresLoader) Close() error {
	return l.db.Close()
}

// buildInsert renders a multi-row INSERT with numbered placeholders.
func buildInsert(chunk []weather.Observation) (string, []any) {
	var b strings.Builder
	b.WriteString("INSERT INTO weather_observations (station_id, observed_at, temp, dew_point, rh, wd, ws, atmos_pres, ceil_hgt, visibility) VALUES ")

	args := make([]any, 0, len(chunk)*observationColumns)
	for i, o := range chunk {
		if i > 0 {
			b.WriteString(", ")
		}
		base := i * observationColumns
		b.WriteByte('(')
		for j := 1; j <= observationColumns; j++ {
			if j > 1 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "$%d", base+j)
		}
		b.WriteByte(')')

		args = append(args, o.ID, o.Time, o.Temp, o.DewPoint, o.RH, o.WD, o.WS, o.AtmosPres, o.CeilHgt, o.Visibility)
	}

	b.WriteString(" ON CONFLICT (station_id, observed_at) DO NOTHING")
	return b.String(), args
}
