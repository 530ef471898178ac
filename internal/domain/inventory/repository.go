package inventory

import (
	"context"

	"github.com/Pratul75/report360/internal/domain/shared"
	"github.com/google/uuid"
)

// GodownRepository persists godowns
type GodownRepository interface {
	shared.Repository[Godown]
}

// ItemRepository persists stock items
type ItemRepository interface {
	shared.Repository[Item]
	FindByGodown(ctx context.Context, godownID uuid.UUID, filter shared.Filter) ([]Item, error)
	FindByCode(ctx context.Context, itemCode string) (*Item, error)
	ExistsByCode(ctx context.Context, itemCode string) (bool, error)
}
