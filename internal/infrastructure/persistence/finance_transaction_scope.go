package persistence

import (
	"context"

	"gorm.io/gorm"

	appfinance "github.com/Pratul75/report360/internal/application/finance"
	"github.com/Pratul75/report360/internal/domain/finance"
)

// GormFinanceTransactionScope implements the finance TransactionScope
// using GORM transactions.
type GormFinanceTransactionScope struct {
	db *gorm.DB
}

// NewGormFinanceTransactionScope creates a new GormFinanceTransactionScope
func NewGormFinanceTransactionScope(db *gorm.DB) *GormFinanceTransactionScope {
	return &GormFinanceTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormFinanceTransactionScope) Execute(ctx context.Context, fn func(repos appfinance.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormFinanceRepositories{tx: tx})
	})
}

type gormFinanceRepositories struct {
	tx *gorm.DB
}

// InvoiceRepo returns the invoice repository scoped to the current transaction
func (r *gormFinanceRepositories) InvoiceRepo() finance.InvoiceRepository {
	return NewGormInvoiceRepository(r.tx)
}

// PaymentRepo returns the payment repository scoped to the current transaction
func (r *gormFinanceRepositories) PaymentRepo() finance.PaymentRepository {
	return NewGormPaymentRepository(r.tx)
}

// Ensure the scope implements the application interfaces
var _ appfinance.TransactionScope = (*GormFinanceTransactionScope)(nil)
var _ appfinance.TransactionalRepositories = (*gormFinanceRepositories)(nil)
