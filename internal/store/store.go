// Package store provides persistence for categories, extracts and
// transactions, plus loading of user supplied classification rules.
package store

import (
	"context"
	"errors"

	"fjacquet/fincontrol/internal/models"
)

var (
	// ErrNotFound is returned when a lookup matches nothing.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a write violates a uniqueness constraint.
	ErrDuplicate = errors.New("duplicate")
)

// CategoryStore persists categories. Names are unique ignoring case.
type CategoryStore interface {
	FindCategoryByName(ctx context.Context, name string) (models.Category, error)
	FindCategoryByID(ctx context.Context, id string) (models.Category, error)
	// CreateCategory assigns an ID and returns ErrDuplicate when the name is taken.
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)
	// ListCategories returns every category ordered by name.
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListRootCategories(ctx context.Context) ([]models.Category, error)
	ListSubcategories(ctx context.Context, parentID string) ([]models.Category, error)
}

// ExtractStore persists extracts together with their transactions.
type ExtractStore interface {
	FindExtract(ctx context.Context, bank models.Bank, month, year int) (models.Extract, error)
	FindExtractByID(ctx context.Context, id string) (models.Extract, error)
	// SaveExtract assigns IDs to the extract and its transactions and returns
	// ErrDuplicate when the (bank, month, year) period already exists.
	SaveExtract(ctx context.Context, extract models.Extract) (models.Extract, error)
	// FindExtractsForPeriod returns the extracts of a month in insertion order.
	FindExtractsForPeriod(ctx context.Context, year, month int) ([]models.Extract, error)
	// ListExtracts returns extracts matching every non-zero filter field,
	// most recent period first.
	ListExtracts(ctx context.Context, filter models.ExtractFilter) ([]models.Extract, error)
}

// TransactionStore persists individual transactions.
type TransactionStore interface {
	FindTransactionByID(ctx context.Context, id string) (models.Transaction, error)
	// SaveTransaction updates an existing transaction.
	SaveTransaction(ctx context.Context, tx models.Transaction) (models.Transaction, error)
}

// Store combines every persistence capability.
type Store interface {
	CategoryStore
	ExtractStore
	TransactionStore
	Close() error
}

// matches reports whether e satisfies every non-zero field of f.
func matches(f models.ExtractFilter, e models.Extract) bool {
	if f.Bank != "" && f.Bank != e.Bank {
		return false
	}
	if f.Year != 0 && f.Year != e.ReferenceYear {
		return false
	}
	if f.Month != 0 && f.Month != e.ReferenceMonth {
		return false
	}
	return true
}
