//go:build !integration

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pinecut/quote-service/internal/domain/model"
	"github.com/pinecut/quote-service/internal/repository"
)

type MockLogsRepository struct {
	mock.Mock
}

func (m *MockLogsRepository) Create(ctx context.Context, entry *repository.LogEntryDocument) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLogsRepository) CreateMany(ctx context.Context, entries []*repository.LogEntryDocument) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockLogsRepository) Query(ctx context.Context, opts repository.LogQueryOptions) ([]*repository.LogEntryDocument, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	docs, _ := args.Get(0).([]*repository.LogEntryDocument)
	return docs, args.Error(1)
}

func (m *MockLogsRepository) Count(ctx context.Context, opts repository.LogQueryOptions) (int64, error) {
	args := m.Called(ctx, opts)
	count, _ := args.Get(0).(int64)
	return count, args.Error(1)
}

func TestNewLoggingService(t *testing.T) {
	mockRepo := new(MockLogsRepository)
	svc := NewLoggingService(mockRepo)

	assert.NotNil(t, svc)
	assert.IsType(t, &LoggingServiceImpl{}, svc)
}

func TestLoggingService_CreateLog(t *testing.T) {
	t.Run("successful create", func(t *testing.T) {
		mockRepo := new(MockLogsRepository)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*repository.LogEntryDocument")).Return(nil)

		svc := NewLoggingService(mockRepo)
		entry := &model.LogEntry{Level: "info", Message: "Instant quote generated"}

		err := svc.CreateLog(context.Background(), entry)

		assert.NoError(t, err)
		assert.False(t, entry.ID.IsZero())
		assert.False(t, entry.Timestamp.IsZero())
		mockRepo.AssertExpectations(t)
	})

	t.Run("quote audit fields carried to document", func(t *testing.T) {
		mockRepo := new(MockLogsRepository)
		var captured *repository.LogEntryDocument
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*repository.LogEntryDocument")).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).(*repository.LogEntryDocument)
			}).Return(nil)

		svc := NewLoggingService(mockRepo)
		entry := &model.LogEntry{
			Level:   "info",
			Message: "Instant quote generated",
			CartID:  "cart_8841",
			Source:  "live",
		}

		err := svc.CreateLog(context.Background(), entry)

		require.NoError(t, err)
		require.NotNil(t, captured)
		assert.Equal(t, "cart_8841", captured.CartID)
		assert.Equal(t, "live", captured.Source)
	})

	t.Run("repository error propagates", func(t *testing.T) {
		mockRepo := new(MockLogsRepository)
		mockRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("insert failed"))

		svc := NewLoggingService(mockRepo)
		err := svc.CreateLog(context.Background(), &model.LogEntry{Level: "error", Message: "boom"})

		assert.Error(t, err)
	})
}

func TestLoggingService_CreateLogs(t *testing.T) {
	t.Run("bulk create", func(t *testing.T) {
		mockRepo := new(MockLogsRepository)
		mockRepo.On("CreateMany", mock.Anything, mock.AnythingOfType("[]*repository.LogEntryDocument")).Return(nil)

		svc := NewLoggingService(mockRepo)
		entries := []*model.LogEntry{
			{Level: "info", Message: "Entry 1"},
			{Level: "warn", Message: "Entry 2"},
		}

		err := svc.CreateLogs(context.Background(), entries)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("empty slice is a no-op", func(t *testing.T) {
		mockRepo := new(MockLogsRepository)

		svc := NewLoggingService(mockRepo)
		err := svc.CreateLogs(context.Background(), nil)

		assert.NoError(t, err)
		mockRepo.AssertNotCalled(t, "CreateMany")
	})
}

func TestLoggingService_QueryLogs(t *testing.T) {
	t.Run("maps documents to model entries", func(t *testing.T) {
		now := time.Now()
		mockRepo := new(MockLogsRepository)
		mockRepo.On("Query", mock.Anything, mock.AnythingOfType("repository.LogQueryOptions")).Return(
			[]*repository.LogEntryDocument{
				{
					ID:         primitive.NewObjectID(),
					Timestamp:  now,
					Level:      "info",
					Message:    "Instant quote generated",
					RequestID:  "req-1",
					Method:     "POST",
					Path:       "/api/instant-quote",
					StatusCode: 200,
					CartID:     "cart_8841",
					Source:     "static",
				},
			}, nil)

		svc := NewLoggingService(mockRepo)
		entries, err := svc.QueryLogs(context.Background(), model.LogQueryOptions{CartID: "cart_8841"})

		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "cart_8841", entries[0].CartID)
		assert.Equal(t, "static", entries[0].Source)
		assert.Equal(t, "/api/instant-quote", entries[0].Path)
	})

	t.Run("query options pass through", func(t *testing.T) {
		mockRepo := new(MockLogsRepository)
		mockRepo.On("Query", mock.Anything, mock.MatchedBy(func(opts repository.LogQueryOptions) bool {
			return opts.CartID == "cart-9" && opts.Level == "error" && opts.Limit == 50
		})).Return([]*repository.LogEntryDocument{}, nil)

		svc := NewLoggingService(mockRepo)
		_, err := svc.QueryLogs(context.Background(), model.LogQueryOptions{
			CartID: "cart-9",
			Level:  "error",
			Limit:  50,
		})

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("repository error propagates", func(t *testing.T) {
		mockRepo := new(MockLogsRepository)
		mockRepo.On("Query", mock.Anything, mock.Anything).Return(nil, errors.New("query failed"))

		svc := NewLoggingService(mockRepo)
		_, err := svc.QueryLogs(context.Background(), model.LogQueryOptions{})

		assert.Error(t, err)
	})
}

func TestLoggingService_CountLogs(t *testing.T) {
	mockRepo := new(MockLogsRepository)
	mockRepo.On("Count", mock.Anything, mock.AnythingOfType("repository.LogQueryOptions")).Return(int64(7), nil)

	svc := NewLoggingService(mockRepo)
	count, err := svc.CountLogs(context.Background(), model.LogQueryOptions{Level: "info"})

	assert.NoError(t, err)
	assert.Equal(t, int64(7), count)
}
