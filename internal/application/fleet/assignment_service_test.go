package fleet

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Pratul75/report360/internal/domain/crm"
	"github.com/Pratul75/report360/internal/domain/fleet"
	"github.com/Pratul75/report360/internal/domain/shared"
)

// MockAssignmentRepository is a mock implementation of AssignmentRepository
type MockAssignmentRepository struct {
	mock.Mock
}

func (m *MockAssignmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*fleet.DriverAssignment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fleet.DriverAssignment), args.Error(1)
}

func (m *MockAssignmentRepository) FindAll(ctx context.Context, filter shared.Filter) ([]fleet.DriverAssignment, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]fleet.DriverAssignment), args.Error(1)
}

func (m *MockAssignmentRepository) Save(ctx context.Context, assignment *fleet.DriverAssignment) error {
	args := m.Called(ctx, assignment)
	return args.Error(0)
}

func (m *MockAssignmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAssignmentRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAssignmentRepository) FindByDriver(ctx context.Context, driverID uuid.UUID, filter shared.Filter) ([]fleet.DriverAssignment, error) {
	args := m.Called(ctx, driverID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]fleet.DriverAssignment), args.Error(1)
}

func (m *MockAssignmentRepository) FindByCampaign(ctx context.Context, campaignID uuid.UUID, filter shared.Filter) ([]fleet.DriverAssignment, error) {
	args := m.Called(ctx, campaignID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]fleet.DriverAssignment), args.Error(1)
}

func (m *MockAssignmentRepository) CountByStatus(ctx context.Context, status fleet.AssignmentStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

// MockDriverRepository is a mock implementation of DriverRepository
type MockDriverRepository struct {
	mock.Mock
}

func (m *MockDriverRepository) FindByID(ctx context.Context, id uuid.UUID) (*fleet.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fleet.Driver), args.Error(1)
}

func (m *MockDriverRepository) FindAll(ctx context.Context, filter shared.Filter) ([]fleet.Driver, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]fleet.Driver), args.Error(1)
}

func (m *MockDriverRepository) Save(ctx context.Context, driver *fleet.Driver) error {
	args := m.Called(ctx, driver)
	return args.Error(0)
}

func (m *MockDriverRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDriverRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDriverRepository) FindByVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]fleet.Driver, error) {
	args := m.Called(ctx, vendorID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]fleet.Driver), args.Error(1)
}

func (m *MockDriverRepository) FindProfile(ctx context.Context, driverID uuid.UUID) (*fleet.DriverProfile, error) {
	args := m.Called(ctx, driverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fleet.DriverProfile), args.Error(1)
}

func (m *MockDriverRepository) SaveProfile(ctx context.Context, profile *fleet.DriverProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

// MockCampaignRepository is a mock implementation of crm.CampaignRepository
type MockCampaignRepository struct {
	mock.Mock
}

func (m *MockCampaignRepository) FindByID(ctx context.Context, id uuid.UUID) (*crm.Campaign, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crm.Campaign), args.Error(1)
}

func (m *MockCampaignRepository) FindAll(ctx context.Context, filter shared.Filter) ([]crm.Campaign, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]crm.Campaign), args.Error(1)
}

func (m *MockCampaignRepository) Save(ctx context.Context, campaign *crm.Campaign) error {
	args := m.Called(ctx, campaign)
	return args.Error(0)
}

func (m *MockCampaignRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCampaignRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCampaignRepository) FindByProject(ctx context.Context, projectID uuid.UUID, filter shared.Filter) ([]crm.Campaign, error) {
	args := m.Called(ctx, projectID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]crm.Campaign), args.Error(1)
}

func (m *MockCampaignRepository) FindByStatus(ctx context.Context, status crm.CampaignStatus, filter shared.Filter) ([]crm.Campaign, error) {
	args := m.Called(ctx, status, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]crm.Campaign), args.Error(1)
}

func testDriver(t *testing.T) *fleet.Driver {
	t.Helper()
	driver, err := fleet.NewDriver("Ramesh Kale", "9822001122")
	require.NoError(t, err)
	return driver
}

func testCampaign(t *testing.T) *crm.Campaign {
	t.Helper()
	campaign, err := crm.NewCampaign(uuid.New(), "Kharif Roadshow", crm.CampaignTypeRoadshow, decimal.NewFromInt(50000))
	require.NoError(t, err)
	return campaign
}

func newAssignmentService() (*AssignmentService, *MockAssignmentRepository, *MockDriverRepository, *MockCampaignRepository) {
	assignmentRepo := new(MockAssignmentRepository)
	driverRepo := new(MockDriverRepository)
	campaignRepo := new(MockCampaignRepository)
	return NewAssignmentService(assignmentRepo, driverRepo, campaignRepo), assignmentRepo, driverRepo, campaignRepo
}

func TestAssignmentService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("books a driver pending approval", func(t *testing.T) {
		svc, assignmentRepo, driverRepo, campaignRepo := newAssignmentService()

		driver := testDriver(t)
		campaign := testCampaign(t)
		assignedBy := uuid.New()

		driverRepo.On("FindByID", ctx, driver.ID).Return(driver, nil)
		campaignRepo.On("FindByID", ctx, campaign.ID).Return(campaign, nil)
		assignmentRepo.On("Save", ctx, mock.AnythingOfType("*fleet.DriverAssignment")).Return(nil)

		resp, err := svc.Create(ctx, CreateAssignmentRequest{
			DriverID:       driver.ID,
			CampaignID:     campaign.ID,
			AssignmentDate: time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
			WorkTitle:      "Village coverage, day 1",
			Village:        "Shirur",
			AssignedBy:     &assignedBy,
		})
		require.NoError(t, err)
		assert.Equal(t, string(fleet.AssignmentStatusAssigned), resp.Status)
		assert.Equal(t, string(fleet.ApprovalStatusPending), resp.ApprovalStatus)
		assert.Equal(t, &assignedBy, resp.AssignedBy)
		assignmentRepo.AssertExpectations(t)
	})

	t.Run("rejects deactivated driver", func(t *testing.T) {
		svc, assignmentRepo, driverRepo, _ := newAssignmentService()

		driver := testDriver(t)
		driver.DeactivateWithReason("left the vendor")
		driverRepo.On("FindByID", ctx, driver.ID).Return(driver, nil)

		_, err := svc.Create(ctx, CreateAssignmentRequest{
			DriverID:       driver.ID,
			CampaignID:     uuid.New(),
			AssignmentDate: time.Now(),
			WorkTitle:      "anything",
		})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_STATE", domainErr.Code)
		assignmentRepo.AssertNotCalled(t, "Save")
	})

	t.Run("rejects deactivated campaign", func(t *testing.T) {
		svc, assignmentRepo, driverRepo, campaignRepo := newAssignmentService()

		driver := testDriver(t)
		campaign := testCampaign(t)
		campaign.Deactivate()
		driverRepo.On("FindByID", ctx, driver.ID).Return(driver, nil)
		campaignRepo.On("FindByID", ctx, campaign.ID).Return(campaign, nil)

		_, err := svc.Create(ctx, CreateAssignmentRequest{
			DriverID:       driver.ID,
			CampaignID:     campaign.ID,
			AssignmentDate: time.Now(),
			WorkTitle:      "anything",
		})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_STATE", domainErr.Code)
		assignmentRepo.AssertNotCalled(t, "Save")
	})
}

func TestAssignmentService_Lifecycle(t *testing.T) {
	ctx := context.Background()

	newAssignment := func(t *testing.T) *fleet.DriverAssignment {
		t.Helper()
		assignment, err := fleet.NewDriverAssignment(uuid.New(), uuid.New(), time.Now(), "Sampling run")
		require.NoError(t, err)
		return assignment
	}

	t.Run("approve then start then complete", func(t *testing.T) {
		svc, assignmentRepo, _, _ := newAssignmentService()

		assignment := newAssignment(t)
		assignmentRepo.On("FindByID", ctx, assignment.ID).Return(assignment, nil)
		assignmentRepo.On("Save", ctx, assignment).Return(nil)

		resp, err := svc.Approve(ctx, assignment.ID)
		require.NoError(t, err)
		assert.Equal(t, string(fleet.ApprovalStatusApproved), resp.ApprovalStatus)
		assert.NotNil(t, resp.ApprovedAt)

		resp, err = svc.Start(ctx, assignment.ID)
		require.NoError(t, err)
		assert.Equal(t, string(fleet.AssignmentStatusInProgress), resp.Status)
		assert.NotNil(t, resp.ActualStart)

		resp, err = svc.Complete(ctx, assignment.ID)
		require.NoError(t, err)
		assert.Equal(t, string(fleet.AssignmentStatusCompleted), resp.Status)
		assert.NotNil(t, resp.ActualEnd)
	})

	t.Run("cannot start before driver approval", func(t *testing.T) {
		svc, assignmentRepo, _, _ := newAssignmentService()

		assignment := newAssignment(t)
		assignmentRepo.On("FindByID", ctx, assignment.ID).Return(assignment, nil)

		_, err := svc.Start(ctx, assignment.ID)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_STATE", domainErr.Code)
		assignmentRepo.AssertNotCalled(t, "Save")
	})

	t.Run("reject requires a reason and cancels the work", func(t *testing.T) {
		svc, assignmentRepo, _, _ := newAssignmentService()

		assignment := newAssignment(t)
		assignmentRepo.On("FindByID", ctx, assignment.ID).Return(assignment, nil)
		assignmentRepo.On("Save", ctx, assignment).Return(nil)

		_, err := svc.Reject(ctx, assignment.ID, RejectAssignmentRequest{Reason: "   "})
		require.Error(t, err)

		resp, err := svc.Reject(ctx, assignment.ID, RejectAssignmentRequest{Reason: "Vehicle in the workshop"})
		require.NoError(t, err)
		assert.Equal(t, string(fleet.ApprovalStatusRejected), resp.ApprovalStatus)
		assert.Equal(t, string(fleet.AssignmentStatusCancelled), resp.Status)
		assert.Equal(t, "Vehicle in the workshop", resp.RejectionReason)
	})

	t.Run("completed assignment cannot be cancelled", func(t *testing.T) {
		svc, assignmentRepo, _, _ := newAssignmentService()

		assignment := newAssignment(t)
		require.NoError(t, assignment.Approve())
		require.NoError(t, assignment.Start())
		require.NoError(t, assignment.Complete())
		assignmentRepo.On("FindByID", ctx, assignment.ID).Return(assignment, nil)

		_, err := svc.Cancel(ctx, assignment.ID)
		assert.ErrorIs(t, err, shared.ErrInvalidState)
	})
}
