package record

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/katalvlaran/pathviz/logger"
)

type pgxIConn interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, optionsAndArgs ...any) (pgx.Rows, error)
}

const (
	schemaSQL = `CREATE TABLE IF NOT EXISTS graphs (
	id         TEXT PRIMARY KEY,
	body       JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`
	loadSQL   = `SELECT body FROM graphs ORDER BY created_at, id`
	upsertSQL = `INSERT INTO graphs (id, body) VALUES ($1, $2)
ON CONFLICT (id) DO UPDATE SET body = EXCLUDED.body, updated_at = now()`
	deleteSQL = `DELETE FROM graphs WHERE id = $1`
)

// PostgresStore keeps each record as a JSONB row in the graphs table.
type PostgresStore struct {
	conn pgxIConn
}

// NewPostgresStore wraps an existing connection or pool.
func NewPostgresStore(conn pgxIConn) *PostgresStore {
	return &PostgresStore{conn: conn}
}

// OpenPostgres connects a pool to url, pings it and ensures the schema.
// The returned close function releases the pool.
func OpenPostgres(ctx context.Context, url string) (*PostgresStore, func(), error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, nil, fmt.Errorf("record: connect: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("record: ping: %w", err)
	}

	s := NewPostgresStore(pool)
	if err := s.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}
	logger.Info("connected to graph database")

	return s, pool.Close, nil
}

// EnsureSchema creates the graphs table when missing.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.conn.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("record: ensure schema: %w", err)
	}

	return nil
}

func (s *PostgresStore) Load(ctx context.Context) ([]Record, error) {
	rows, err := s.conn.Query(ctx, loadSQL)
	if err != nil {
		return nil, fmt.Errorf("record: load: %w", err)
	}
	bodies, err := pgx.CollectRows(rows, pgx.RowTo[[]byte])
	if err != nil {
		return nil, fmt.Errorf("record: load: %w", err)
	}

	out := make([]Record, 0, len(bodies))
	for _, b := range bodies {
		var r Record
		if err := json.Unmarshal(b, &r); err != nil {
			return nil, fmt.Errorf("record: decode row: %w", err)
		}
		out = append(out, r)
	}

	return out, nil
}

func (s *PostgresStore) Save(ctx context.Context, r Record) error {
	body, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("record: encode %s: %w", r.ID, err)
	}
	if _, err := s.conn.Exec(ctx, upsertSQL, r.ID, body); err != nil {
		return fmt.Errorf("record: save %s: %w", r.ID, err)
	}
	logger.Debug("graph saved", "id", r.ID)

	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	tag, err := s.conn.Exec(ctx, deleteSQL, id)
	if err != nil {
		return fmt.Errorf("record: delete %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	logger.Debug("graph deleted", "id", id)

	return nil
}
