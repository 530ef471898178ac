package crm

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Pratul75/report360/internal/domain/crm"
	"github.com/Pratul75/report360/internal/domain/shared"
	"github.com/Pratul75/report360/internal/infrastructure/cache"
)

// MockClientRepository is a mock implementation of ClientRepository
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*crm.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crm.Client), args.Error(1)
}

func (m *MockClientRepository) FindAll(ctx context.Context, filter shared.Filter) ([]crm.Client, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]crm.Client), args.Error(1)
}

func (m *MockClientRepository) Save(ctx context.Context, client *crm.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockClientRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockClientRepository) DeletionPreview(ctx context.Context, clientID uuid.UUID) (*crm.CascadeCounts, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crm.CascadeCounts), args.Error(1)
}

func (m *MockClientRepository) CascadeDeactivate(ctx context.Context, clientID uuid.UUID) (*crm.CascadeCounts, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crm.CascadeCounts), args.Error(1)
}

func TestClientService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates client with contact fields", func(t *testing.T) {
		repo := new(MockClientRepository)
		svc := NewClientService(repo, cache.NewInMemoryReportCache())

		repo.On("Save", ctx, mock.AnythingOfType("*crm.Client")).Return(nil)

		resp, err := svc.Create(ctx, CreateClientRequest{
			Name:          "Acme Agro",
			Company:       "Acme Agro Pvt Ltd",
			Email:         "OPS@Acme.in",
			ContactPerson: "S. Patil",
		})
		require.NoError(t, err)
		assert.Equal(t, "Acme Agro", resp.Name)
		assert.Equal(t, "ops@acme.in", resp.Email)
		assert.Equal(t, "S. Patil", resp.ContactPerson)
		repo.AssertExpectations(t)
	})

	t.Run("rejects blank name", func(t *testing.T) {
		repo := new(MockClientRepository)
		svc := NewClientService(repo, cache.NewInMemoryReportCache())

		_, err := svc.Create(ctx, CreateClientRequest{Name: "   "})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_INPUT", domainErr.Code)
		repo.AssertNotCalled(t, "Save")
	})
}

func TestClientService_DeletionPreview(t *testing.T) {
	ctx := context.Background()

	t.Run("returns counts and total", func(t *testing.T) {
		repo := new(MockClientRepository)
		svc := NewClientService(repo, cache.NewInMemoryReportCache())

		client, err := crm.NewClient("Acme", "", "", "")
		require.NoError(t, err)

		counts := &crm.CascadeCounts{Projects: 2, Campaigns: 3, Expenses: 5}
		repo.On("FindByID", ctx, client.ID).Return(client, nil)
		repo.On("DeletionPreview", ctx, client.ID).Return(counts, nil)

		resp, err := svc.DeletionPreview(ctx, client.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(10), resp.Total)
		assert.Equal(t, int64(3), resp.Counts.Campaigns)
	})

	t.Run("unknown client is NOT_FOUND", func(t *testing.T) {
		repo := new(MockClientRepository)
		svc := NewClientService(repo, cache.NewInMemoryReportCache())

		id := uuid.New()
		repo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		_, err := svc.DeletionPreview(ctx, id)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		repo.AssertNotCalled(t, "DeletionPreview")
	})
}

func TestClientService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("cascade drops cached dashboards", func(t *testing.T) {
		repo := new(MockClientRepository)
		reportCache := cache.NewInMemoryReportCache()
		svc := NewClientService(repo, reportCache)

		require.NoError(t, reportCache.Set(ctx, cache.KeyPrefixDashboard+"admin", map[string]int{"clients": 3}, time.Minute))

		clientID := uuid.New()
		counts := &crm.CascadeCounts{Projects: 1}
		repo.On("CascadeDeactivate", ctx, clientID).Return(counts, nil)

		resp, err := svc.Delete(ctx, clientID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.Counts.Projects)

		var out map[string]int
		hit, err := reportCache.Get(ctx, cache.KeyPrefixDashboard+"admin", &out)
		require.NoError(t, err)
		assert.False(t, hit)
	})

	t.Run("propagates repository error", func(t *testing.T) {
		repo := new(MockClientRepository)
		svc := NewClientService(repo, cache.NewInMemoryReportCache())

		clientID := uuid.New()
		repo.On("CascadeDeactivate", ctx, clientID).Return(nil, shared.ErrNotFound)

		_, err := svc.Delete(ctx, clientID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
