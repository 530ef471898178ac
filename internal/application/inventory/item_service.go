package inventory

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Pratul75/report360/internal/domain/inventory"
	"github.com/Pratul75/report360/internal/domain/shared"
)

// ItemService handles godown stock lines
type ItemService struct {
	itemRepo   inventory.ItemRepository
	godownRepo inventory.GodownRepository
}

// NewItemService creates a new ItemService
func NewItemService(itemRepo inventory.ItemRepository, godownRepo inventory.GodownRepository) *ItemService {
	return &ItemService{
		itemRepo:   itemRepo,
		godownRepo: godownRepo,
	}
}

// Create adds a stock line to a godown. Item codes are unique.
func (s *ItemService) Create(ctx context.Context, req CreateItemRequest) (*ItemResponse, error) {
	godown, err := s.godownRepo.FindByID(ctx, req.GodownID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Godown not found")
		}
		return nil, err
	}
	if !godown.IsActive {
		return nil, shared.NewDomainError("INVALID_STATE", "Cannot add stock to a deactivated godown")
	}

	item, err := inventory.NewItem(req.GodownID, req.ItemName, req.ItemCode, req.Quantity)
	if err != nil {
		return nil, err
	}

	exists, err := s.itemRepo.ExistsByCode(ctx, item.ItemCode)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "An item with this code already exists")
	}

	item.Category = req.Category
	item.Unit = req.Unit
	item.MinStockLevel = req.MinStockLevel
	item.Remarks = req.Remarks

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	response := ToItemResponse(item)
	return &response, nil
}

// GetByID retrieves an item by ID
func (s *ItemService) GetByID(ctx context.Context, itemID uuid.UUID) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	response := ToItemResponse(item)
	return &response, nil
}

// List retrieves items with filtering and pagination
func (s *ItemService) List(ctx context.Context, filter ListFilter) ([]ItemResponse, int64, error) {
	domainFilter := filter.toDomainFilter()

	items, err := s.itemRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.itemRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToItemResponses(items), total, nil
}

// ListByGodown retrieves a godown's stock lines
func (s *ItemService) ListByGodown(ctx context.Context, godownID uuid.UUID, filter ListFilter) ([]ItemResponse, error) {
	items, err := s.itemRepo.FindByGodown(ctx, godownID, filter.toDomainFilter())
	if err != nil {
		return nil, err
	}
	return ToItemResponses(items), nil
}

// Update updates a stock line's descriptive fields. Quantity moves
// only through AdjustStock.
func (s *ItemService) Update(ctx context.Context, itemID uuid.UUID, req UpdateItemRequest) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if req.ItemName != nil {
		item.ItemName = *req.ItemName
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Unit != nil {
		item.Unit = *req.Unit
	}
	if req.MinStockLevel != nil {
		item.MinStockLevel = *req.MinStockLevel
	}
	if req.Remarks != nil {
		item.Remarks = *req.Remarks
	}
	item.Touch()

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	response := ToItemResponse(item)
	return &response, nil
}

// AdjustStock moves an item's quantity by a signed delta
func (s *ItemService) AdjustStock(ctx context.Context, itemID uuid.UUID, req AdjustStockRequest) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if err := item.Adjust(req.Delta); err != nil {
		return nil, err
	}
	if req.Remarks != "" {
		item.Remarks = req.Remarks
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	response := ToItemResponse(item)
	return &response, nil
}

// Delete soft-deletes a stock line
func (s *ItemService) Delete(ctx context.Context, itemID uuid.UUID) error {
	return s.itemRepo.Delete(ctx, itemID)
}
