package database

import (
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeDatabaseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "welfare.db")

	db, err := InitializeDatabase(path)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = InitializeDatabase(path)
	require.NoError(t, err)
	defer db.Close()

	applied, err := getAppliedMigrations(db)
	require.NoError(t, err)

	migrations, err := loadMigrations(migrationFiles)
	require.NoError(t, err)
	assert.Len(t, applied, len(migrations))
}

func TestAuditLogRejectsUpdatesAndDeletes(t *testing.T) {
	db, err := InitializeDatabase(filepath.Join(t.TempDir(), "welfare.db"))
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`INSERT INTO audit_log (severity, event, actor, timestamp_ns, message) VALUES ('info', 'loan.create', 'u1', 1, 'created')`)
	require.NoError(t, err)

	_, err = db.Exec(`UPDATE audit_log SET message = 'edited'`)
	assert.ErrorContains(t, err, "append-only")

	_, err = db.Exec(`DELETE FROM audit_log`)
	assert.ErrorContains(t, err, "append-only")

	_, err = db.Exec(`INSERT INTO audit_log (severity, event, timestamp_ns, message) VALUES ('fatal', 'x', 1, 'y')`)
	assert.Error(t, err, "unknown severity must be rejected by the schema")
}

func TestRunMigrationsDetectsDrift(t *testing.T) {
	db, err := OpenDB(filepath.Join(t.TempDir(), "drift.db"))
	require.NoError(t, err)
	defer db.Close()

	original := fstest.MapFS{
		"migrations/001_init.sql": {Data: []byte("CREATE TABLE things (id TEXT PRIMARY KEY);")},
	}
	require.NoError(t, runMigrations(db, original))
	require.NoError(t, runMigrations(db, original))

	edited := fstest.MapFS{
		"migrations/001_init.sql": {Data: []byte("CREATE TABLE things (id TEXT PRIMARY KEY, name TEXT);")},
	}
	assert.ErrorIs(t, runMigrations(db, edited), ErrMigrationDrift)
}

func TestRunMigrationsAppliesInVersionOrder(t *testing.T) {
	db, err := OpenDB(filepath.Join(t.TempDir(), "order.db"))
	require.NoError(t, err)
	defer db.Close()

	fsys := fstest.MapFS{
		"migrations/002_index.sql": {Data: []byte("CREATE INDEX idx_things_name ON things (name);")},
		"migrations/001_init.sql":  {Data: []byte("CREATE TABLE things (id TEXT PRIMARY KEY, name TEXT);")},
	}
	require.NoError(t, runMigrations(db, fsys))

	applied, err := getAppliedMigrations(db)
	require.NoError(t, err)
	assert.Contains(t, applied, "001_init")
	assert.Contains(t, applied, "002_index")
}
