package postgres

import (
	"fmt"
	"io"
	"log/slog"
	"testing"

	"personbench/config"
	"personbench/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// openSQLite returns a migrated in-memory database private to the test. maxOpenConns bounds the
// pool so session pinning and exhaustion can be observed.
func openSQLite(t *testing.T, maxOpenConns int) *gorm.DB {
	t.Helper()

	db, _ := openSQLiteDSN(t, maxOpenConns)

	return db
}

// openSQLiteWithReplica registers the same database as a dbresolver replica, the way
// registerReplicas wires PG_REPLICAS_*. Both pools are capped at maxOpenConns.
func openSQLiteWithReplica(t *testing.T, maxOpenConns int) *gorm.DB {
	t.Helper()

	db, dsn := openSQLiteDSN(t, maxOpenConns)
	pgCfg := &config.PostgresConfig{MaxOpenConns: maxOpenConns, MaxIdleConns: maxOpenConns}
	require.NoError(t, useReplicas(db, []gorm.Dialector{sqlite.Open(dsn)}, pgCfg))
	require.True(t, hasReplicas(db))

	return db
}

func openSQLiteDSN(t *testing.T, maxOpenConns int) (*gorm.DB, string) {
	t.Helper()

	cfg := &config.Config{
		PG: &config.PostgresConfig{MaxOpenConns: maxOpenConns, MaxIdleConns: maxOpenConns},
	}
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000", uuid.NewString())

	db, err := Open(sqlite.Open(dsn), cfg, discardLogger())
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.PersonModel{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db, dsn
}
