package scoreboard

import (
	"context"
	"errors"
	"testing"

	"github.com/angmar3019/space-defenders/internal/domain/scoreboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockScoreboardRepository is a mock implementation of scoreboard.Repository
type MockScoreboardRepository struct {
	mock.Mock
}

func (m *MockScoreboardRepository) Save(ctx context.Context, entry *scoreboard.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockScoreboardRepository) Top(ctx context.Context, n int) ([]scoreboard.Entry, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]scoreboard.Entry), args.Error(1)
}

func (m *MockScoreboardRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func mustEntry(t *testing.T, points int64) scoreboard.Entry {
	t.Helper()
	entry, err := scoreboard.NewEntry(points)
	require.NoError(t, err)
	return *entry
}

func TestServiceTopPlaces(t *testing.T) {
	t.Run("returns top entries in repository order", func(t *testing.T) {
		repo := new(MockScoreboardRepository)
		svc := NewService(repo, zap.NewNop())

		entries := []scoreboard.Entry{
			mustEntry(t, 900),
			mustEntry(t, 400),
			mustEntry(t, 0),
		}
		repo.On("Top", mock.Anything, scoreboard.TopPlaces).Return(entries, nil)

		got, err := svc.TopPlaces(context.Background())

		require.NoError(t, err)
		require.Len(t, got, scoreboard.TopPlaces)
		assert.Equal(t, int64(900), got[0].Points)
		assert.Equal(t, int64(400), got[1].Points)
		assert.Equal(t, int64(0), got[2].Points)
		repo.AssertExpectations(t)
	})

	t.Run("pads short result with zero entries", func(t *testing.T) {
		repo := new(MockScoreboardRepository)
		svc := NewService(repo, zap.NewNop())

		repo.On("Top", mock.Anything, scoreboard.TopPlaces).
			Return([]scoreboard.Entry{mustEntry(t, 50)}, nil)

		got, err := svc.TopPlaces(context.Background())

		require.NoError(t, err)
		require.Len(t, got, scoreboard.TopPlaces)
		assert.Equal(t, int64(50), got[0].Points)
		assert.Equal(t, int64(0), got[1].Points)
		assert.Equal(t, int64(0), got[2].Points)
	})

	t.Run("wraps repository failure", func(t *testing.T) {
		repo := new(MockScoreboardRepository)
		svc := NewService(repo, zap.NewNop())

		repo.On("Top", mock.Anything, scoreboard.TopPlaces).
			Return(nil, errors.New("database gone"))

		got, err := svc.TopPlaces(context.Background())

		assert.Error(t, err)
		assert.Nil(t, got)
		assert.Contains(t, err.Error(), "failed to query top scores")
	})
}

func TestServiceCount(t *testing.T) {
	repo := new(MockScoreboardRepository)
	svc := NewService(repo, zap.NewNop())

	repo.On("Count", mock.Anything).Return(int64(12), nil)

	count, err := svc.Count(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(12), count)
}
