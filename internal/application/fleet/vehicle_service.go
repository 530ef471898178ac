package fleet

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Pratul75/report360/internal/domain/fleet"
	"github.com/Pratul75/report360/internal/domain/shared"
)

// VehicleService handles vehicles and their compliance documents
type VehicleService struct {
	vehicleRepo fleet.VehicleRepository
	vendorRepo  fleet.VendorRepository
}

// NewVehicleService creates a new VehicleService
func NewVehicleService(vehicleRepo fleet.VehicleRepository, vendorRepo fleet.VendorRepository) *VehicleService {
	return &VehicleService{
		vehicleRepo: vehicleRepo,
		vendorRepo:  vendorRepo,
	}
}

// Create registers a vehicle under a vendor. The registration number
// must be unique across the fleet.
func (s *VehicleService) Create(ctx context.Context, req CreateVehicleRequest) (*VehicleResponse, error) {
	vendor, err := s.vendorRepo.FindByID(ctx, req.VendorID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Vendor not found")
		}
		return nil, err
	}
	if !vendor.IsActive {
		return nil, shared.NewDomainError("INVALID_STATE", "Cannot register a vehicle under a deactivated vendor")
	}

	vehicle, err := fleet.NewVehicle(req.VendorID, req.VehicleNumber, req.Type)
	if err != nil {
		return nil, err
	}

	exists, err := s.vehicleRepo.ExistsByNumber(ctx, vehicle.VehicleNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A vehicle with this number is already registered")
	}

	vehicle.Capacity = req.Capacity
	vehicle.RCValidity = req.RCValidity
	vehicle.InsuranceValidity = req.InsuranceValidity
	vehicle.PermitValidity = req.PermitValidity
	vehicle.RCImage = req.RCImage
	vehicle.InsuranceImage = req.InsuranceImage
	vehicle.PermitImage = req.PermitImage
	vehicle.Remarks = req.Remarks

	if err := s.vehicleRepo.Save(ctx, vehicle); err != nil {
		return nil, err
	}

	response := ToVehicleResponse(vehicle)
	return &response, nil
}

// GetByID retrieves a vehicle by ID
func (s *VehicleService) GetByID(ctx context.Context, vehicleID uuid.UUID) (*VehicleResponse, error) {
	vehicle, err := s.vehicleRepo.FindByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	response := ToVehicleResponse(vehicle)
	return &response, nil
}

// List retrieves vehicles with filtering and pagination
func (s *VehicleService) List(ctx context.Context, filter ListFilter) ([]VehicleResponse, int64, error) {
	domainFilter := filter.toDomainFilter()

	vehicles, err := s.vehicleRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.vehicleRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToVehicleResponses(vehicles), total, nil
}

// ListByVendor retrieves a vendor's vehicles
func (s *VehicleService) ListByVendor(ctx context.Context, vendorID uuid.UUID, filter ListFilter) ([]VehicleResponse, error) {
	vehicles, err := s.vehicleRepo.FindByVendor(ctx, vendorID, filter.toDomainFilter())
	if err != nil {
		return nil, err
	}
	return ToVehicleResponses(vehicles), nil
}

// Update updates a vehicle's details and document records
func (s *VehicleService) Update(ctx context.Context, vehicleID uuid.UUID, req UpdateVehicleRequest) (*VehicleResponse, error) {
	vehicle, err := s.vehicleRepo.FindByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		vehicle.Type = *req.Type
	}
	if req.Capacity != nil {
		vehicle.Capacity = *req.Capacity
	}
	if req.RCValidity != nil {
		vehicle.RCValidity = req.RCValidity
	}
	if req.InsuranceValidity != nil {
		vehicle.InsuranceValidity = req.InsuranceValidity
	}
	if req.PermitValidity != nil {
		vehicle.PermitValidity = req.PermitValidity
	}
	if req.RCImage != nil {
		vehicle.RCImage = *req.RCImage
	}
	if req.InsuranceImage != nil {
		vehicle.InsuranceImage = *req.InsuranceImage
	}
	if req.PermitImage != nil {
		vehicle.PermitImage = *req.PermitImage
	}
	if req.Remarks != nil {
		vehicle.Remarks = *req.Remarks
	}
	vehicle.Touch()

	if err := s.vehicleRepo.Save(ctx, vehicle); err != nil {
		return nil, err
	}

	response := ToVehicleResponse(vehicle)
	return &response, nil
}

// Delete soft-deletes a vehicle
func (s *VehicleService) Delete(ctx context.Context, vehicleID uuid.UUID) error {
	return s.vehicleRepo.Delete(ctx, vehicleID)
}
