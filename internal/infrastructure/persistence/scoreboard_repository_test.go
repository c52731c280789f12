package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/angmar3019/space-defenders/internal/domain/scoreboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newSqliteRepository creates a repository over an in-memory sqlite database
func newSqliteRepository(t *testing.T) *GormScoreboardRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&scoreboard.Entry{}))

	return NewGormScoreboardRepository(db)
}

// newMockRepository creates a repository with a mocked SQL connection for
// error-path tests
func newMockRepository(t *testing.T) (*GormScoreboardRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormScoreboardRepository(gormDB), mock, mockDB
}

func saveEntry(t *testing.T, repo *GormScoreboardRepository, points int64, achievedAt time.Time) *scoreboard.Entry {
	t.Helper()

	entry, err := scoreboard.NewEntry(points)
	require.NoError(t, err)
	entry.AchievedAt = achievedAt

	require.NoError(t, repo.Save(context.Background(), entry))
	return entry
}

func TestGormScoreboardRepository_Save(t *testing.T) {
	repo := newSqliteRepository(t)

	entry, err := scoreboard.NewEntry(150)
	require.NoError(t, err)

	err = repo.Save(context.Background(), entry)
	require.NoError(t, err)

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestGormScoreboardRepository_Top(t *testing.T) {
	t.Run("orders by points descending", func(t *testing.T) {
		repo := newSqliteRepository(t)
		now := time.Now()

		saveEntry(t, repo, 100, now)
		saveEntry(t, repo, 900, now)
		saveEntry(t, repo, 400, now)
		saveEntry(t, repo, 0, now)

		entries, err := repo.Top(context.Background(), 3)

		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, int64(900), entries[0].Points)
		assert.Equal(t, int64(400), entries[1].Points)
		assert.Equal(t, int64(100), entries[2].Points)
	})

	t.Run("breaks ties by recency", func(t *testing.T) {
		repo := newSqliteRepository(t)
		now := time.Now()

		older := saveEntry(t, repo, 500, now.Add(-time.Hour))
		newer := saveEntry(t, repo, 500, now)

		entries, err := repo.Top(context.Background(), 2)

		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, newer.ID, entries[0].ID)
		assert.Equal(t, older.ID, entries[1].ID)
	})

	t.Run("returns fewer entries than asked when table is short", func(t *testing.T) {
		repo := newSqliteRepository(t)
		saveEntry(t, repo, 10, time.Now())

		entries, err := repo.Top(context.Background(), 3)

		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("returns empty slice on empty table", func(t *testing.T) {
		repo := newSqliteRepository(t)

		entries, err := repo.Top(context.Background(), 3)

		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestGormScoreboardRepository_QueryErrors(t *testing.T) {
	t.Run("Top propagates database errors", func(t *testing.T) {
		repo, mock, mockDB := newMockRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "scoreboard_entries"`).
			WillReturnError(sql.ErrConnDone)

		entries, err := repo.Top(context.Background(), 3)

		assert.Error(t, err)
		assert.Nil(t, entries)
	})

	t.Run("Count propagates database errors", func(t *testing.T) {
		repo, mock, mockDB := newMockRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "scoreboard_entries"`).
			WillReturnError(sql.ErrConnDone)

		count, err := repo.Count(context.Background())

		assert.Error(t, err)
		assert.Zero(t, count)
	})

	t.Run("Save propagates database errors", func(t *testing.T) {
		repo, mock, mockDB := newMockRepository(t)
		defer mockDB.Close()

		mock.ExpectExec(`INSERT INTO "scoreboard_entries"`).
			WillReturnError(sql.ErrConnDone)

		entry, err := scoreboard.NewEntry(10)
		require.NoError(t, err)

		err = repo.Save(context.Background(), entry)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to save scoreboard entry")
	})
}

func TestGormScoreboardRepository_RespectsContext(t *testing.T) {
	repo := newSqliteRepository(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Top(ctx, 3)
	assert.Error(t, err)
}
