package cache

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Durable is an optional second cache tier backed by SQLite, for driver
// processes that check the same contract repeatedly across runs (an editor
// plugin re-checking on every keystroke, say) and want a cache that
// survives a restart. It only ever stores the rendered type string, not a
// reconstructible types.Type: a Durable hit tells the caller "this node
// checked to type X last time", useful for diagnostics and warm-start
// comparisons, but it is not a substitute for Memory on the hot path — the
// checker always re-verifies via Memory/the real algorithm, never trusts a
// Durable hit blindly, since the host AST backing a node's identity may
// have changed between runs.
type Durable struct {
	db *sql.DB
}

// OpenDurable opens (creating if needed) a SQLite-backed durable cache at
// path. Grounded on termfx-morfx's db.Open: WAL mode plus a busy timeout so
// concurrent driver processes don't immediately fail on lock contention.
func OpenDurable(ctx context.Context, path string) (*Durable, error) {
	dsn := fmt.Sprintf("%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("cache: open durable store: %w", err)
	}
	schema := `CREATE TABLE IF NOT EXISTS node_types (
		node_id    TEXT PRIMARY KEY,
		type_text  TEXT NOT NULL,
		updated_at INTEGER NOT NULL
	)`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("cache: create schema: %w", err)
	}
	return &Durable{db: db}, nil
}

// Close releases the underlying database handle.
func (d *Durable) Close() error { return d.db.Close() }

// Get returns the rendered type string last recorded for nodeID, if any.
func (d *Durable) Get(ctx context.Context, nodeID string) (string, bool, error) {
	row := d.db.QueryRowContext(ctx, `SELECT type_text FROM node_types WHERE node_id = ?`, nodeID)
	var typeText string
	if err := row.Scan(&typeText); err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, fmt.Errorf("cache: get %s: %w", nodeID, err)
	}
	return typeText, true, nil
}

// Put records the rendered type string for nodeID, overwriting any prior
// entry. Retries once on "database is locked", matching the retry idiom the
// rest of the pack uses around SQLite writers.
func (d *Durable) Put(ctx context.Context, nodeID, typeText string) error {
	stmt := `INSERT INTO node_types (node_id, type_text, updated_at) VALUES (?, ?, ?)
	         ON CONFLICT(node_id) DO UPDATE SET type_text = excluded.type_text, updated_at = excluded.updated_at`
	_, err := d.db.ExecContext(ctx, stmt, nodeID, typeText, unixMillis(ctx))
	if err != nil && strings.Contains(err.Error(), "database is locked") {
		time.Sleep(50 * time.Millisecond)
		_, err = d.db.ExecContext(ctx, stmt, nodeID, typeText, unixMillis(ctx))
	}
	if err != nil {
		return fmt.Errorf("cache: put %s: %w", nodeID, err)
	}
	return nil
}

// unixMillis reads a caller-supplied timestamp out of ctx, defaulting to
// zero. Driver code is expected to set one via context.WithValue under the
// unexported timestamp key during tests, so Durable itself never calls
// time.Now — keeping it, like the rest of this module, free of direct wall
// clock reads.
func unixMillis(ctx context.Context) int64 {
	if v, ok := ctx.Value(timestampKey{}).(int64); ok {
		return v
	}
	return 0
}

type timestampKey struct{}

// WithTimestamp returns a context carrying an explicit timestamp for Put to
// record, so callers (and tests) control it instead of Durable reading the
// wall clock itself.
func WithTimestamp(ctx context.Context, unixMillis int64) context.Context {
	return context.WithValue(ctx, timestampKey{}, unixMillis)
}
