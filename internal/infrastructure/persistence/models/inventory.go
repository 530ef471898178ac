package models

import (
	"github.com/google/uuid"

	"github.com/Pratul75/report360/internal/domain/inventory"
)

// GodownModel is the persistence model for the Godown domain entity.
type GodownModel struct {
	BaseModel
	Name     string `gorm:"type:varchar(200);not null"`
	Location string `gorm:"type:varchar(200)"`
	Manager  string `gorm:"type:varchar(200)"`
	Contact  string `gorm:"type:varchar(50)"`
	Remarks  string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (GodownModel) TableName() string {
	return "godowns"
}

// ToDomain converts the persistence model to a domain Godown entity.
func (m *GodownModel) ToDomain() *inventory.Godown {
	return &inventory.Godown{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		Location:   m.Location,
		Manager:    m.Manager,
		Contact:    m.Contact,
		Remarks:    m.Remarks,
	}
}

// FromDomain populates the persistence model from a domain Godown entity.
func (m *GodownModel) FromDomain(g *inventory.Godown) {
	m.FromDomainBaseEntity(g.BaseEntity)
	m.Name = g.Name
	m.Location = g.Location
	m.Manager = g.Manager
	m.Contact = g.Contact
	m.Remarks = g.Remarks
}

// GodownModelFromDomain creates a new persistence model from a domain Godown entity.
func GodownModelFromDomain(g *inventory.Godown) *GodownModel {
	m := &GodownModel{}
	m.FromDomain(g)
	return m
}

// ItemModel is the persistence model for the Item domain entity.
type ItemModel struct {
	BaseModel
	GodownID      uuid.UUID `gorm:"type:uuid;not null;index"`
	ItemName      string    `gorm:"type:varchar(200);not null"`
	ItemCode      string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	Category      string    `gorm:"type:varchar(100)"`
	Quantity      int       `gorm:"not null;default:0"`
	Unit          string    `gorm:"type:varchar(50)"`
	MinStockLevel int       `gorm:"not null;default:0"`
	Remarks       string    `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (ItemModel) TableName() string {
	return "inventory_items"
}

// ToDomain converts the persistence model to a domain Item entity.
func (m *ItemModel) ToDomain() *inventory.Item {
	return &inventory.Item{
		BaseEntity:    m.BaseModel.ToDomain(),
		GodownID:      m.GodownID,
		ItemName:      m.ItemName,
		ItemCode:      m.ItemCode,
		Category:      m.Category,
		Quantity:      m.Quantity,
		Unit:          m.Unit,
		MinStockLevel: m.MinStockLevel,
		Remarks:       m.Remarks,
	}
}

// FromDomain populates the persistence model from a domain Item entity.
func (m *ItemModel) FromDomain(i *inventory.Item) {
	m.FromDomainBaseEntity(i.BaseEntity)
	m.GodownID = i.GodownID
	m.ItemName = i.ItemName
	m.ItemCode = i.ItemCode
	m.Category = i.Category
	m.Quantity = i.Quantity
	m.Unit = i.Unit
	m.MinStockLevel = i.MinStockLevel
	m.Remarks = i.Remarks
}

// ItemModelFromDomain creates a new persistence model from a domain Item entity.
func ItemModelFromDomain(i *inventory.Item) *ItemModel {
	m := &ItemModel{}
	m.FromDomain(i)
	return m
}
