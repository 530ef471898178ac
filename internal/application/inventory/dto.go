package inventory

import (
	"time"

	"github.com/google/uuid"

	"github.com/Pratul75/report360/internal/domain/inventory"
	"github.com/Pratul75/report360/internal/domain/shared"
)

// ListFilter is the query-string filter shared by the inventory lists
type ListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir"`
	Search   string `form:"search"`
}

func (f ListFilter) toDomainFilter() shared.Filter {
	filter := shared.DefaultFilter()
	if f.Page > 0 {
		filter.Page = f.Page
	}
	if f.PageSize > 0 {
		filter.PageSize = f.PageSize
	}
	if f.OrderBy != "" {
		filter.OrderBy = f.OrderBy
	}
	if f.OrderDir != "" {
		filter.OrderDir = f.OrderDir
	}
	filter.Search = f.Search
	return filter
}

// =============================================================================
// Godown DTOs
// =============================================================================

// CreateGodownRequest registers a warehouse
type CreateGodownRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=200"`
	Location string `json:"location" binding:"max=200"`
	Manager  string `json:"manager" binding:"max=200"`
	Contact  string `json:"contact" binding:"max=100"`
	Remarks  string `json:"remarks"`
}

// UpdateGodownRequest updates a warehouse
type UpdateGodownRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=200"`
	Location *string `json:"location" binding:"omitempty,max=200"`
	Manager  *string `json:"manager" binding:"omitempty,max=200"`
	Contact  *string `json:"contact" binding:"omitempty,max=100"`
	Remarks  *string `json:"remarks"`
}

// GodownResponse represents a godown in API responses
type GodownResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Manager   string    `json:"manager"`
	Contact   string    `json:"contact"`
	Remarks   string    `json:"remarks"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// =============================================================================
// Item DTOs
// =============================================================================

// CreateItemRequest adds a stock line to a godown
type CreateItemRequest struct {
	GodownID      uuid.UUID `json:"godown_id" binding:"required"`
	ItemName      string    `json:"item_name" binding:"required,min=1,max=200"`
	ItemCode      string    `json:"item_code" binding:"required,min=1,max=100"`
	Category      string    `json:"category" binding:"max=100"`
	Quantity      int       `json:"quantity" binding:"min=0"`
	Unit          string    `json:"unit" binding:"max=50"`
	MinStockLevel int       `json:"min_stock_level" binding:"min=0"`
	Remarks       string    `json:"remarks"`
}

// UpdateItemRequest updates a stock line
type UpdateItemRequest struct {
	ItemName      *string `json:"item_name" binding:"omitempty,min=1,max=200"`
	Category      *string `json:"category" binding:"omitempty,max=100"`
	Unit          *string `json:"unit" binding:"omitempty,max=50"`
	MinStockLevel *int    `json:"min_stock_level" binding:"omitempty,min=0"`
	Remarks       *string `json:"remarks"`
}

// AdjustStockRequest moves an item's quantity by a signed delta
type AdjustStockRequest struct {
	Delta   int    `json:"delta" binding:"required"`
	Remarks string `json:"remarks" binding:"max=500"`
}

// ItemResponse represents a stock item in API responses
type ItemResponse struct {
	ID            uuid.UUID `json:"id"`
	GodownID      uuid.UUID `json:"godown_id"`
	ItemName      string    `json:"item_name"`
	ItemCode      string    `json:"item_code"`
	Category      string    `json:"category"`
	Quantity      int       `json:"quantity"`
	Unit          string    `json:"unit"`
	MinStockLevel int       `json:"min_stock_level"`
	BelowMinStock bool      `json:"below_min_stock"`
	Remarks       string    `json:"remarks"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// =============================================================================
// Converters
// =============================================================================

// ToGodownResponse converts a domain godown
func ToGodownResponse(godown *inventory.Godown) GodownResponse {
	return GodownResponse{
		ID:        godown.ID,
		Name:      godown.Name,
		Location:  godown.Location,
		Manager:   godown.Manager,
		Contact:   godown.Contact,
		Remarks:   godown.Remarks,
		IsActive:  godown.IsActive,
		CreatedAt: godown.CreatedAt,
		UpdatedAt: godown.UpdatedAt,
	}
}

// ToGodownResponses converts a slice of domain godowns
func ToGodownResponses(godowns []inventory.Godown) []GodownResponse {
	responses := make([]GodownResponse, len(godowns))
	for i := range godowns {
		responses[i] = ToGodownResponse(&godowns[i])
	}
	return responses
}

// ToItemResponse converts a domain item
func ToItemResponse(item *inventory.Item) ItemResponse {
	return ItemResponse{
		ID:            item.ID,
		GodownID:      item.GodownID,
		ItemName:      item.ItemName,
		ItemCode:      item.ItemCode,
		Category:      item.Category,
		Quantity:      item.Quantity,
		Unit:          item.Unit,
		MinStockLevel: item.MinStockLevel,
		BelowMinStock: item.BelowMinStock(),
		Remarks:       item.Remarks,
		IsActive:      item.IsActive,
		CreatedAt:     item.CreatedAt,
		UpdatedAt:     item.UpdatedAt,
	}
}

// ToItemResponses converts a slice of domain items
func ToItemResponses(items []inventory.Item) []ItemResponse {
	responses := make([]ItemResponse, len(items))
	for i := range items {
		responses[i] = ToItemResponse(&items[i])
	}
	return responses
}
