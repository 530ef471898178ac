package fleet

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Pratul75/report360/internal/domain/fleet"
	"github.com/Pratul75/report360/internal/domain/shared"
)

// DriverService handles drivers and their onboarding profiles
type DriverService struct {
	driverRepo fleet.DriverRepository
	vendorRepo fleet.VendorRepository
}

// NewDriverService creates a new DriverService
func NewDriverService(driverRepo fleet.DriverRepository, vendorRepo fleet.VendorRepository) *DriverService {
	return &DriverService{
		driverRepo: driverRepo,
		vendorRepo: vendorRepo,
	}
}

// Create registers a driver
func (s *DriverService) Create(ctx context.Context, req CreateDriverRequest) (*DriverResponse, error) {
	driver, err := fleet.NewDriver(req.Name, req.Phone)
	if err != nil {
		return nil, err
	}

	if req.VendorID != nil {
		if _, err := s.vendorRepo.FindByID(ctx, *req.VendorID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("NOT_FOUND", "Vendor not found")
			}
			return nil, err
		}
		driver.VendorID = req.VendorID
	}
	if req.VehicleID != nil {
		driver.AssignVehicle(*req.VehicleID)
	}
	driver.Email = req.Email
	driver.LicenseNumber = req.LicenseNumber
	driver.LicenseValidity = req.LicenseValidity
	driver.LicenseImage = req.LicenseImage

	if err := s.driverRepo.Save(ctx, driver); err != nil {
		return nil, err
	}

	response := ToDriverResponse(driver)
	return &response, nil
}

// GetByID retrieves a driver by ID
func (s *DriverService) GetByID(ctx context.Context, driverID uuid.UUID) (*DriverResponse, error) {
	driver, err := s.driverRepo.FindByID(ctx, driverID)
	if err != nil {
		return nil, err
	}
	response := ToDriverResponse(driver)
	return &response, nil
}

// List retrieves drivers with filtering and pagination
func (s *DriverService) List(ctx context.Context, filter ListFilter) ([]DriverResponse, int64, error) {
	domainFilter := filter.toDomainFilter()

	drivers, err := s.driverRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.driverRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToDriverResponses(drivers), total, nil
}

// ListByVendor retrieves a vendor's drivers
func (s *DriverService) ListByVendor(ctx context.Context, vendorID uuid.UUID, filter ListFilter) ([]DriverResponse, error) {
	drivers, err := s.driverRepo.FindByVendor(ctx, vendorID, filter.toDomainFilter())
	if err != nil {
		return nil, err
	}
	return ToDriverResponses(drivers), nil
}

// Update updates a driver
func (s *DriverService) Update(ctx context.Context, driverID uuid.UUID, req UpdateDriverRequest) (*DriverResponse, error) {
	driver, err := s.driverRepo.FindByID(ctx, driverID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		driver.Name = *req.Name
	}
	if req.Phone != nil {
		driver.Phone = *req.Phone
	}
	if req.Email != nil {
		driver.Email = *req.Email
	}
	if req.VendorID != nil {
		if _, err := s.vendorRepo.FindByID(ctx, *req.VendorID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("NOT_FOUND", "Vendor not found")
			}
			return nil, err
		}
		driver.VendorID = req.VendorID
	}
	if req.VehicleID != nil {
		driver.AssignVehicle(*req.VehicleID)
	}
	if req.LicenseNumber != nil {
		driver.LicenseNumber = *req.LicenseNumber
	}
	if req.LicenseValidity != nil {
		driver.LicenseValidity = req.LicenseValidity
	}
	if req.LicenseImage != nil {
		driver.LicenseImage = *req.LicenseImage
	}
	driver.Touch()

	if err := s.driverRepo.Save(ctx, driver); err != nil {
		return nil, err
	}

	response := ToDriverResponse(driver)
	return &response, nil
}

// Deactivate soft-deletes a driver, recording the reason
func (s *DriverService) Deactivate(ctx context.Context, driverID uuid.UUID, req DeactivateDriverRequest) error {
	driver, err := s.driverRepo.FindByID(ctx, driverID)
	if err != nil {
		return err
	}
	driver.DeactivateWithReason(req.Reason)
	return s.driverRepo.Save(ctx, driver)
}

// GetProfile retrieves a driver's onboarding profile
func (s *DriverService) GetProfile(ctx context.Context, driverID uuid.UUID) (*DriverProfileResponse, error) {
	profile, err := s.driverRepo.FindProfile(ctx, driverID)
	if err != nil {
		return nil, err
	}
	response := ToDriverProfileResponse(profile)
	return &response, nil
}

// UpsertProfile creates or updates a driver's onboarding profile
func (s *DriverService) UpsertProfile(ctx context.Context, driverID uuid.UUID, req UpsertDriverProfileRequest) (*DriverProfileResponse, error) {
	if _, err := s.driverRepo.FindByID(ctx, driverID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Driver not found")
		}
		return nil, err
	}

	profile, err := s.driverRepo.FindProfile(ctx, driverID)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		profile, err = fleet.NewDriverProfile(driverID)
		if err != nil {
			return nil, err
		}
	}

	if req.Address != nil {
		profile.Address = *req.Address
	}
	if req.EmergencyContact != nil {
		profile.EmergencyContact = *req.EmergencyContact
	}
	if req.BloodGroup != nil {
		profile.BloodGroup = *req.BloodGroup
	}
	if req.PhotoURL != nil {
		profile.PhotoURL = *req.PhotoURL
	}
	if req.IDProofNumber != nil {
		profile.IDProofNumber = *req.IDProofNumber
	}
	if req.IDProofImage != nil {
		profile.IDProofImage = *req.IDProofImage
	}
	profile.Touch()

	if err := s.driverRepo.SaveProfile(ctx, profile); err != nil {
		return nil, err
	}

	response := ToDriverProfileResponse(profile)
	return &response, nil
}
