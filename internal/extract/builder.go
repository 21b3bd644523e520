// Package extract assembles classified transactions into an Extract with its
// income and expense totals.
package extract

import (
	"time"

	"fjacquet/fincontrol/internal/models"

	"github.com/shopspring/decimal"
)

// Builder creates extracts. The zero value is not usable; use NewBuilder.
type Builder struct {
	now   func() time.Time
	newID func() string
}

// Option configures a Builder.
type Option func(*Builder)

// WithClock sets the clock used for ProcessedAt.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) { b.now = now }
}

// WithIDFunc makes the builder assign extract IDs itself instead of leaving
// that to the store.
func WithIDFunc(newID func() string) Option {
	return func(b *Builder) { b.newID = newID }
}

// NewBuilder creates a Builder using the wall clock.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{now: time.Now}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build wraps transactions into an extract for the given period.
//
// Negative amounts count as income, everything else (zero included) as
// expense. Both totals are sums of absolute values. Period uniqueness is not
// checked here.
func (b *Builder) Build(transactions []models.Transaction, bank models.Bank, month, year int) models.Extract {
	e := models.Extract{
		Bank:           bank,
		ReferenceMonth: month,
		ReferenceYear:  year,
		TotalIncome:    decimal.Zero,
		TotalExpenses:  decimal.Zero,
		ProcessedAt:    b.now().UTC(),
		Transactions:   make([]models.Transaction, len(transactions)),
	}
	if b.newID != nil {
		e.ID = b.newID()
	}

	for i, tx := range transactions {
		if tx.Amount.IsNegative() {
			e.TotalIncome = e.TotalIncome.Add(tx.Amount.Abs())
		} else {
			e.TotalExpenses = e.TotalExpenses.Add(tx.Amount.Abs())
		}
		if e.ID != "" {
			tx.ExtractID = e.ID
		}
		e.Transactions[i] = tx
	}
	e.TransactionCount = len(e.Transactions)

	return e
}
