package kvstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ TxStore = (*PostgresStore)(nil)

// Querier abstrae pool o tx de pgx para reutilizar las mismas consultas.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresStore implementación del sustrato KV sobre PostgreSQL. Una sola tabla
// kv_entries con (namespace, key, value, position); position conserva el orden
// de inserción y no cambia al sobrescribir.
type PostgresStore struct {
	pgQueries
	pool *pgxpool.Pool
}

// NewPostgresStore construye el almacén sobre el pool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pgQueries: pgQueries{q: pool}, pool: pool}
}

// Migrate crea la tabla del sustrato si no existe.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS kv_entries (
			namespace text NOT NULL,
			key bytea NOT NULL,
			value bytea NOT NULL,
			position bigserial,
			PRIMARY KEY (namespace, key)
		)`
	if _, err := s.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("migrar kv_entries: %w", err)
	}
	return nil
}

// Begin abre una transacción; Commit/Rollback delegan en pgx.
func (s *PostgresStore) Begin(ctx context.Context) (Tx, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return &postgresTx{pgQueries: pgQueries{q: tx}, tx: tx}, nil
}

type postgresTx struct {
	pgQueries
	tx pgx.Tx
}

func (t *postgresTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (t *postgresTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// pgQueries implementa las operaciones del sustrato sobre un Querier (pool o tx).
type pgQueries struct {
	q Querier
}

func (s pgQueries) Get(ctx context.Context, ns string, key []byte) ([]byte, error) {
	query := `SELECT value FROM kv_entries WHERE namespace = $1 AND key = $2`
	var value []byte
	err := s.q.QueryRow(ctx, query, ns, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", ns, err)
	}
	return value, nil
}

func (s pgQueries) Put(ctx context.Context, ns string, key, value []byte) error {
	// position no se toca en el UPDATE: sobrescribir conserva el orden de inserción.
	query := `
		INSERT INTO kv_entries (namespace, key, value)
		VALUES ($1, $2, $3)
		ON CONFLICT (namespace, key)
		DO UPDATE SET value = EXCLUDED.value`
	if _, err := s.q.Exec(ctx, query, ns, key, value); err != nil {
		return fmt.Errorf("put %s: %w", ns, err)
	}
	return nil
}

func (s pgQueries) Len(ctx context.Context, ns string) (uint64, error) {
	query := `SELECT count(*) FROM kv_entries WHERE namespace = $1`
	var n uint64
	if err := s.q.QueryRow(ctx, query, ns).Scan(&n); err != nil {
		return 0, fmt.Errorf("len %s: %w", ns, err)
	}
	return n, nil
}

func (s pgQueries) List(ctx context.Context, ns string, offset, limit uint64) ([]Entry, error) {
	query := `
		SELECT key, value FROM kv_entries
		WHERE namespace = $1
		ORDER BY position
		OFFSET $2 LIMIT $3`
	rows, err := s.q.Query(ctx, query, ns, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", ns, err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Key, &e.Value); err != nil {
			return nil, fmt.Errorf("scan %s: %w", ns, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list %s: %w", ns, err)
	}
	return entries, nil
}
