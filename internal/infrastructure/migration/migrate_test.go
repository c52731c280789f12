package migration

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// openTestDB opens an in-memory sqlite database through GORM's driver so
// the tests share the driver registration with the rest of the codebase
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	db, err := gormDB.DB()
	require.NoError(t, err)
	return db
}

func countSeeds(t *testing.T, db *sql.DB) int {
	t.Helper()

	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM scoreboard_entries").Scan(&count)
	require.NoError(t, err)
	return count
}

func TestNew(t *testing.T) {
	t.Run("creates migrator for sqlite", func(t *testing.T) {
		db := openTestDB(t)

		m, err := New(db, "sqlite", zap.NewNop())

		require.NoError(t, err)
		assert.NotNil(t, m)
	})

	t.Run("rejects unknown driver", func(t *testing.T) {
		db := openTestDB(t)

		m, err := New(db, "oracle", zap.NewNop())

		assert.Error(t, err)
		assert.Nil(t, m)
		assert.Contains(t, err.Error(), "unknown database driver")
	})
}

func TestMigratorUp(t *testing.T) {
	t.Run("creates and seeds the scoreboard", func(t *testing.T) {
		db := openTestDB(t)
		m, err := New(db, "sqlite", zap.NewNop())
		require.NoError(t, err)

		require.NoError(t, m.Up())

		assert.Equal(t, 3, countSeeds(t, db))

		version, dirty, err := m.Version()
		require.NoError(t, err)
		assert.Equal(t, uint(2), version)
		assert.False(t, dirty)
	})

	t.Run("is a no-op when already migrated", func(t *testing.T) {
		db := openTestDB(t)
		m, err := New(db, "sqlite", zap.NewNop())
		require.NoError(t, err)

		require.NoError(t, m.Up())
		require.NoError(t, m.Up())

		assert.Equal(t, 3, countSeeds(t, db))
	})

	t.Run("seed does not duplicate after step down and up", func(t *testing.T) {
		db := openTestDB(t)
		m, err := New(db, "sqlite", zap.NewNop())
		require.NoError(t, err)

		require.NoError(t, m.Up())
		require.NoError(t, m.Steps(-1))
		assert.Equal(t, 0, countSeeds(t, db))

		require.NoError(t, m.Steps(1))
		assert.Equal(t, 3, countSeeds(t, db))
	})
}

func TestMigratorDown(t *testing.T) {
	db := openTestDB(t)
	m, err := New(db, "sqlite", zap.NewNop())
	require.NoError(t, err)

	require.NoError(t, m.Up())
	require.NoError(t, m.Down())

	var name string
	err = db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'scoreboard_entries'",
	).Scan(&name)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestMigratorVersionOnFreshDatabase(t *testing.T) {
	db := openTestDB(t)
	m, err := New(db, "sqlite", zap.NewNop())
	require.NoError(t, err)

	version, dirty, err := m.Version()

	require.NoError(t, err)
	assert.Equal(t, uint(0), version)
	assert.False(t, dirty)
}
