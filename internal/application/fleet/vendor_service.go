package fleet

import (
	"context"

	"github.com/google/uuid"

	"github.com/Pratul75/report360/internal/domain/fleet"
)

// VendorService handles vendor CRUD
type VendorService struct {
	vendorRepo fleet.VendorRepository
}

// NewVendorService creates a new VendorService
func NewVendorService(vendorRepo fleet.VendorRepository) *VendorService {
	return &VendorService{vendorRepo: vendorRepo}
}

// Create registers a vendor
func (s *VendorService) Create(ctx context.Context, req CreateVendorRequest) (*VendorResponse, error) {
	vendor, err := fleet.NewVendor(req.Name, req.City, req.Category)
	if err != nil {
		return nil, err
	}
	vendor.ContactPerson = req.ContactPerson
	vendor.Phone = req.Phone
	vendor.Email = req.Email
	vendor.Specifications = req.Specifications
	vendor.Remarks = req.Remarks

	if err := s.vendorRepo.Save(ctx, vendor); err != nil {
		return nil, err
	}

	response := ToVendorResponse(vendor)
	return &response, nil
}

// GetByID retrieves a vendor by ID
func (s *VendorService) GetByID(ctx context.Context, vendorID uuid.UUID) (*VendorResponse, error) {
	vendor, err := s.vendorRepo.FindByID(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	response := ToVendorResponse(vendor)
	return &response, nil
}

// List retrieves vendors with filtering and pagination
func (s *VendorService) List(ctx context.Context, filter ListFilter) ([]VendorResponse, int64, error) {
	domainFilter := filter.toDomainFilter()

	vendors, err := s.vendorRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.vendorRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToVendorResponses(vendors), total, nil
}

// Update updates a vendor
func (s *VendorService) Update(ctx context.Context, vendorID uuid.UUID, req UpdateVendorRequest) (*VendorResponse, error) {
	vendor, err := s.vendorRepo.FindByID(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		vendor.Name = *req.Name
	}
	if req.ContactPerson != nil {
		vendor.ContactPerson = *req.ContactPerson
	}
	if req.Phone != nil {
		vendor.Phone = *req.Phone
	}
	if req.Email != nil {
		vendor.Email = *req.Email
	}
	if req.City != nil {
		vendor.City = *req.City
	}
	if req.Category != nil {
		vendor.Category = *req.Category
	}
	if req.Specifications != nil {
		vendor.Specifications = *req.Specifications
	}
	if req.Remarks != nil {
		vendor.Remarks = *req.Remarks
	}
	if req.Status != nil {
		if err := vendor.ChangeStatus(fleet.VendorStatus(*req.Status)); err != nil {
			return nil, err
		}
	}
	vendor.Touch()

	if err := s.vendorRepo.Save(ctx, vendor); err != nil {
		return nil, err
	}

	response := ToVendorResponse(vendor)
	return &response, nil
}

// Delete soft-deletes a vendor
func (s *VendorService) Delete(ctx context.Context, vendorID uuid.UUID) error {
	return s.vendorRepo.Delete(ctx, vendorID)
}
