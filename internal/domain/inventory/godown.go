package inventory

import (
	"strings"

	"github.com/Pratul75/report360/internal/domain/shared"
)

// Godown is a warehouse holding campaign material
type Godown struct {
	shared.BaseEntity
	Name     string
	Location string
	Manager  string
	Contact  string
	Remarks  string
}

// NewGodown creates a godown after validating the required fields
func NewGodown(name, location string) (*Godown, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Godown name is required")
	}
	return &Godown{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Location:   strings.TrimSpace(location),
	}, nil
}
