package crm

import (
	"context"

	"github.com/google/uuid"

	"github.com/Pratul75/report360/internal/domain/crm"
	"github.com/Pratul75/report360/internal/infrastructure/cache"
)

// ClientService handles client CRUD and the cascade deactivation
type ClientService struct {
	clientRepo  crm.ClientRepository
	reportCache cache.ReportCache
}

// NewClientService creates a new ClientService
func NewClientService(clientRepo crm.ClientRepository, reportCache cache.ReportCache) *ClientService {
	return &ClientService{
		clientRepo:  clientRepo,
		reportCache: reportCache,
	}
}

// Create creates a client
func (s *ClientService) Create(ctx context.Context, req CreateClientRequest) (*ClientResponse, error) {
	client, err := crm.NewClient(req.Name, req.Company, req.Email, req.Phone)
	if err != nil {
		return nil, err
	}
	if req.Address != "" || req.ContactPerson != "" {
		if err := client.Update(client.Name, client.Company, client.Email, client.Phone, req.Address, req.ContactPerson); err != nil {
			return nil, err
		}
	}

	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

// GetByID retrieves a client by ID
func (s *ClientService) GetByID(ctx context.Context, clientID uuid.UUID) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	response := ToClientResponse(client)
	return &response, nil
}

// List retrieves clients with filtering and pagination
func (s *ClientService) List(ctx context.Context, filter ListFilter) ([]ClientResponse, int64, error) {
	domainFilter := filter.toDomainFilter()

	clients, err := s.clientRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.clientRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToClientResponses(clients), total, nil
}

// Update updates a client's editable fields
func (s *ClientService) Update(ctx context.Context, clientID uuid.UUID, req UpdateClientRequest) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	name := client.Name
	company := client.Company
	email := client.Email
	phone := client.Phone
	address := client.Address
	contactPerson := client.ContactPerson
	if req.Name != nil {
		name = *req.Name
	}
	if req.Company != nil {
		company = *req.Company
	}
	if req.Email != nil {
		email = *req.Email
	}
	if req.Phone != nil {
		phone = *req.Phone
	}
	if req.Address != nil {
		address = *req.Address
	}
	if req.ContactPerson != nil {
		contactPerson = *req.ContactPerson
	}

	if err := client.Update(name, company, email, phone, address, contactPerson); err != nil {
		return nil, err
	}
	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

// DeletionPreview reports what a cascade delete would deactivate,
// without mutating anything.
func (s *ClientService) DeletionPreview(ctx context.Context, clientID uuid.UUID) (*DeletionPreviewResponse, error) {
	// Surface NOT_FOUND for unknown clients before counting.
	if _, err := s.clientRepo.FindByID(ctx, clientID); err != nil {
		return nil, err
	}

	counts, err := s.clientRepo.DeletionPreview(ctx, clientID)
	if err != nil {
		return nil, err
	}

	return &DeletionPreviewResponse{
		ClientID: clientID,
		Counts:   *counts,
		Total:    counts.Total(),
	}, nil
}

// Delete deactivates the client and everything underneath it, then
// drops the cached dashboards that counted those rows.
func (s *ClientService) Delete(ctx context.Context, clientID uuid.UUID) (*DeletionPreviewResponse, error) {
	counts, err := s.clientRepo.CascadeDeactivate(ctx, clientID)
	if err != nil {
		return nil, err
	}

	if err := s.reportCache.InvalidatePrefix(ctx, cache.KeyPrefixDashboard); err != nil {
		return nil, err
	}
	if err := s.reportCache.InvalidatePrefix(ctx, cache.KeyPrefixAnalytics); err != nil {
		return nil, err
	}

	return &DeletionPreviewResponse{
		ClientID: clientID,
		Counts:   *counts,
		Total:    counts.Total(),
	}, nil
}
