package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionBuilder provides a fluent API for constructing transactions
type TransactionBuilder struct {
	tx  Transaction
	err error
}

// NewTransactionBuilder creates a new TransactionBuilder with default values
func NewTransactionBuilder() *TransactionBuilder {
	return &TransactionBuilder{
		tx: Transaction{
			Amount:     decimal.Zero,
			Kind:       KindDebit,
			Confidence: ConfidenceNone,
		},
	}
}

// WithID sets the transaction ID
func (b *TransactionBuilder) WithID(id string) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	b.tx.ID = id
	return b
}

// WithExtractID sets the owning extract ID
func (b *TransactionBuilder) WithExtractID(id string) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	b.tx.ExtractID = id
	return b
}

// WithDate sets the transaction date from a string in YYYY-MM-DD format
func (b *TransactionBuilder) WithDate(dateStr string) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	if strings.TrimSpace(dateStr) == "" {
		b.err = errors.New("date cannot be empty")
		return b
	}
	date, err := time.Parse(DateLayout, strings.TrimSpace(dateStr))
	if err != nil {
		b.err = fmt.Errorf("invalid date %q: %w", dateStr, err)
		return b
	}
	b.tx.Date = date
	return b
}

// WithDateFromTime sets the transaction date from a time.Time
func (b *TransactionBuilder) WithDateFromTime(date time.Time) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	if date.IsZero() {
		b.err = errors.New("date cannot be zero")
		return b
	}
	b.tx.Date = CalendarDate(date)
	return b
}

// WithTitle sets the title and, when still empty, the original description
func (b *TransactionBuilder) WithTitle(title string) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	b.tx.Title = title
	if b.tx.OriginalDescription == "" {
		b.tx.OriginalDescription = title
	}
	return b
}

// WithOriginalDescription sets the raw description kept from the source file
func (b *TransactionBuilder) WithOriginalDescription(description string) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	b.tx.OriginalDescription = description
	return b
}

// WithAmount sets the signed transaction amount
func (b *TransactionBuilder) WithAmount(amount decimal.Decimal) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	b.tx.Amount = amount
	return b
}

// WithAmountFromString sets the signed transaction amount from a string
func (b *TransactionBuilder) WithAmountFromString(amountStr string) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(amountStr))
	if err != nil {
		b.err = fmt.Errorf("invalid amount %q: %w", amountStr, err)
		return b
	}
	b.tx.Amount = amount
	return b
}

// WithKind sets the transaction kind
func (b *TransactionBuilder) WithKind(kind TransactionKind) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	b.tx.Kind = kind
	return b
}

// WithCategory sets the category and its confidence
func (b *TransactionBuilder) WithCategory(category Category, confidence decimal.Decimal) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	b.tx.AssignCategory(category, confidence)
	return b
}

// AsIncome forces a negative amount
func (b *TransactionBuilder) AsIncome() *TransactionBuilder {
	if b.err != nil {
		return b
	}
	b.tx.Amount = b.tx.Amount.Abs().Neg()
	return b
}

// AsExpense forces a positive amount
func (b *TransactionBuilder) AsExpense() *TransactionBuilder {
	if b.err != nil {
		return b
	}
	b.tx.Amount = b.tx.Amount.Abs()
	return b
}

// Build validates and returns the constructed transaction
func (b *TransactionBuilder) Build() (Transaction, error) {
	if b.err != nil {
		return Transaction{}, b.err
	}
	if b.tx.Date.IsZero() {
		return Transaction{}, errors.New("transaction date is required")
	}
	if strings.TrimSpace(b.tx.Title) == "" {
		return Transaction{}, errors.New("transaction title is required")
	}
	return b.tx, nil
}

// MustBuild is like Build but panics on error. Intended for fixtures.
func (b *TransactionBuilder) MustBuild() Transaction {
	tx, err := b.Build()
	if err != nil {
		panic(err)
	}
	return tx
}
