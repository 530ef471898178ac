package inventory

import (
	"strings"

	"github.com/Pratul75/report360/internal/domain/shared"
	"github.com/google/uuid"
)

// Item is a stock line in a godown
type Item struct {
	shared.BaseEntity
	GodownID      uuid.UUID
	ItemName      string
	ItemCode      string
	Category      string
	Quantity      int
	Unit          string
	MinStockLevel int
	Remarks       string
}

// NewItem creates a stock item with a normalized item code
func NewItem(godownID uuid.UUID, itemName, itemCode string, quantity int) (*Item, error) {
	itemName = strings.TrimSpace(itemName)
	itemCode = strings.ToUpper(strings.TrimSpace(itemCode))
	if godownID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Item requires a godown")
	}
	if itemName == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Item name is required")
	}
	if itemCode == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Item code is required")
	}
	if quantity < 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Quantity cannot be negative")
	}
	return &Item{
		BaseEntity: shared.NewBaseEntity(),
		GodownID:   godownID,
		ItemName:   itemName,
		ItemCode:   itemCode,
		Quantity:   quantity,
	}, nil
}

// Adjust moves the quantity by delta, refusing to go below zero
func (i *Item) Adjust(delta int) error {
	next := i.Quantity + delta
	if next < 0 {
		return shared.NewDomainError("INVALID_STATE", "Stock cannot go below zero")
	}
	i.Quantity = next
	i.Touch()
	return nil
}

// BelowMinStock reports whether the item needs replenishment
func (i *Item) BelowMinStock() bool {
	return i.MinStockLevel > 0 && i.Quantity < i.MinStockLevel
}
