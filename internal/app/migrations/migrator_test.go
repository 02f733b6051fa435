package migrations

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRow satisfies pgx.Row for the applied-version lookup
type fakeRow struct {
	exists bool
	err    error
}

func (r *fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if b, ok := dest[0].(*bool); ok {
		*b = r.exists
	}
	return nil
}

// fakeTx records statements executed within the migration transaction
type fakeTx struct {
	execs     []string
	committed bool
	commitErr error
}

func (t *fakeTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }

func (t *fakeTx) Commit(ctx context.Context) error {
	if t.commitErr != nil {
		return t.commitErr
	}
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error { return nil }

func (t *fakeTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	t.execs = append(t.execs, sql)
	return pgconn.CommandTag{}, nil
}

func (t *fakeTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (t *fakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return &fakeRow{}
}

func (t *fakeTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}

func (t *fakeTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }

func (t *fakeTx) LargeObjects() pgx.LargeObjects { return pgx.LargeObjects{} }

func (t *fakeTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}

func (t *fakeTx) Conn() *pgx.Conn { return nil }

// fakeDB satisfies the migrator's DB surface and records pool-level statements
type fakeDB struct {
	execs   []string
	tx      *fakeTx
	applied bool
}

func (db *fakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	db.execs = append(db.execs, sql)
	return pgconn.CommandTag{}, nil
}

func (db *fakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return &fakeRow{exists: db.applied}
}

func (db *fakeDB) Begin(ctx context.Context) (pgx.Tx, error) {
	return db.tx, nil
}

func writeMigrationFile(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func containsStatement(statements []string, fragment string) bool {
	for _, s := range statements {
		if strings.Contains(s, fragment) {
			return true
		}
	}
	return false
}

func TestMigrationBookkeepingSharesTransaction(t *testing.T) {
	tx := &fakeTx{}
	db := &fakeDB{tx: tx}
	m := NewMigrator(db)

	path := writeMigrationFile(t, "001_init.sql", "CREATE TABLE things (id BIGINT);")
	require.NoError(t, m.MigrateFromFile(path))

	assert.True(t, tx.committed)
	assert.True(t, containsStatement(tx.execs, "CREATE TABLE things"))
	assert.True(t, containsStatement(tx.execs, "INSERT INTO schema_migrations"),
		"version row must be written inside the migration transaction")
	assert.False(t, containsStatement(db.execs, "INSERT INTO schema_migrations"),
		"version row must not be written on the pool outside the transaction")
}

func TestFailedCommitLeavesNoVersionRecord(t *testing.T) {
	tx := &fakeTx{commitErr: errors.New("connection lost")}
	db := &fakeDB{tx: tx}
	m := NewMigrator(db)

	path := writeMigrationFile(t, "002_more.sql", "ALTER TABLE things ADD COLUMN name TEXT;")
	err := m.MigrateFromFile(path)
	require.Error(t, err)

	assert.False(t, tx.committed)
	assert.False(t, containsStatement(db.execs, "INSERT INTO schema_migrations"),
		"a failed commit must not leave the version recorded")
}

func TestAppliedMigrationIsSkipped(t *testing.T) {
	tx := &fakeTx{}
	db := &fakeDB{tx: tx, applied: true}
	m := NewMigrator(db)

	path := writeMigrationFile(t, "001_init.sql", "CREATE TABLE things (id BIGINT);")
	require.NoError(t, m.MigrateFromFile(path))

	assert.Empty(t, tx.execs, "an already-applied migration must not run again")
}
