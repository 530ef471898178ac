package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Pratul75/report360/internal/domain/finance"
)

// ExpenseModel is the persistence model for the Expense domain entity.
type ExpenseModel struct {
	BaseModel
	CampaignID    uuid.UUID             `gorm:"type:uuid;not null;index"`
	DriverID      *uuid.UUID            `gorm:"type:uuid;index"`
	SubmittedBy   *uuid.UUID            `gorm:"type:uuid;index"`
	ExpenseType   string                `gorm:"type:varchar(100);not null"`
	Amount        decimal.Decimal       `gorm:"type:decimal(18,2);not null"`
	Description   string                `gorm:"type:text"`
	BillImageURL  string                `gorm:"type:text"`
	Status        finance.ExpenseStatus `gorm:"type:varchar(20);not null;default:'pending';index"`
	SubmittedDate time.Time             `gorm:"not null"`
	ApprovedDate  *time.Time            ``
}

// TableName returns the table name for GORM
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToDomain converts the persistence model to a domain Expense entity.
func (m *ExpenseModel) ToDomain() *finance.Expense {
	return &finance.Expense{
		BaseEntity:    m.BaseModel.ToDomain(),
		CampaignID:    m.CampaignID,
		DriverID:      m.DriverID,
		SubmittedBy:   m.SubmittedBy,
		ExpenseType:   m.ExpenseType,
		Amount:        m.Amount,
		Description:   m.Description,
		BillImageURL:  m.BillImageURL,
		Status:        m.Status,
		SubmittedDate: m.SubmittedDate,
		ApprovedDate:  m.ApprovedDate,
	}
}

// FromDomain populates the persistence model from a domain Expense entity.
func (m *ExpenseModel) FromDomain(e *finance.Expense) {
	m.FromDomainBaseEntity(e.BaseEntity)
	m.CampaignID = e.CampaignID
	m.DriverID = e.DriverID
	m.SubmittedBy = e.SubmittedBy
	m.ExpenseType = e.ExpenseType
	m.Amount = e.Amount
	m.Description = e.Description
	m.BillImageURL = e.BillImageURL
	m.Status = e.Status
	m.SubmittedDate = e.SubmittedDate
	m.ApprovedDate = e.ApprovedDate
}

// ExpenseModelFromDomain creates a new persistence model from a domain Expense entity.
func ExpenseModelFromDomain(e *finance.Expense) *ExpenseModel {
	m := &ExpenseModel{}
	m.FromDomain(e)
	return m
}

// InvoiceModel is the persistence model for the Invoice domain entity.
type InvoiceModel struct {
	BaseModel
	VendorID      uuid.UUID             `gorm:"type:uuid;not null;index"`
	CampaignID    *uuid.UUID            `gorm:"type:uuid;index"`
	InvoiceNumber string                `gorm:"type:varchar(100);not null;uniqueIndex"`
	FileURL       string                `gorm:"type:text"`
	Amount        decimal.Decimal       `gorm:"type:decimal(18,2);not null"`
	InvoiceDate   time.Time             `gorm:"type:date;not null"`
	Status        finance.InvoiceStatus `gorm:"type:varchar(20);not null;default:'pending';index"`
}

// TableName returns the table name for GORM
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToDomain converts the persistence model to a domain Invoice entity.
func (m *InvoiceModel) ToDomain() *finance.Invoice {
	return &finance.Invoice{
		BaseEntity:    m.BaseModel.ToDomain(),
		VendorID:      m.VendorID,
		CampaignID:    m.CampaignID,
		InvoiceNumber: m.InvoiceNumber,
		FileURL:       m.FileURL,
		Amount:        m.Amount,
		InvoiceDate:   m.InvoiceDate,
		Status:        m.Status,
	}
}

// FromDomain populates the persistence model from a domain Invoice entity.
func (m *InvoiceModel) FromDomain(i *finance.Invoice) {
	m.FromDomainBaseEntity(i.BaseEntity)
	m.VendorID = i.VendorID
	m.CampaignID = i.CampaignID
	m.InvoiceNumber = i.InvoiceNumber
	m.FileURL = i.FileURL
	m.Amount = i.Amount
	m.InvoiceDate = i.InvoiceDate
	m.Status = i.Status
}

// InvoiceModelFromDomain creates a new persistence model from a domain Invoice entity.
func InvoiceModelFromDomain(i *finance.Invoice) *InvoiceModel {
	m := &InvoiceModel{}
	m.FromDomain(i)
	return m
}

// PaymentModel is the persistence model for the Payment domain entity.
type PaymentModel struct {
	BaseModel
	InvoiceID            uuid.UUID             `gorm:"type:uuid;not null;uniqueIndex"`
	VendorID             uuid.UUID             `gorm:"type:uuid;not null;index"`
	Amount               decimal.Decimal       `gorm:"type:decimal(18,2);not null"`
	PaymentDate          *time.Time            ``
	Status               finance.PaymentStatus `gorm:"type:varchar(20);not null;default:'pending';index"`
	Method               finance.PaymentMethod `gorm:"type:varchar(20);not null;default:'bank_transfer'"`
	TransactionReference string                `gorm:"type:varchar(200)"`
	Remarks              string                `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (PaymentModel) TableName() string {
	return "payments"
}

// ToDomain converts the persistence model to a domain Payment entity.
func (m *PaymentModel) ToDomain() *finance.Payment {
	return &finance.Payment{
		BaseEntity:           m.BaseModel.ToDomain(),
		InvoiceID:            m.InvoiceID,
		VendorID:             m.VendorID,
		Amount:               m.Amount,
		PaymentDate:          m.PaymentDate,
		Status:               m.Status,
		Method:               m.Method,
		TransactionReference: m.TransactionReference,
		Remarks:              m.Remarks,
	}
}

// FromDomain populates the persistence model from a domain Payment entity.
func (m *PaymentModel) FromDomain(p *finance.Payment) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.InvoiceID = p.InvoiceID
	m.VendorID = p.VendorID
	m.Amount = p.Amount
	m.PaymentDate = p.PaymentDate
	m.Status = p.Status
	m.Method = p.Method
	m.TransactionReference = p.TransactionReference
	m.Remarks = p.Remarks
}

// PaymentModelFromDomain creates a new persistence model from a domain Payment entity.
func PaymentModelFromDomain(p *finance.Payment) *PaymentModel {
	m := &PaymentModel{}
	m.FromDomain(p)
	return m
}
