package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind describes how money moved.
type TransactionKind string

const (
	KindDebit    TransactionKind = "DEBIT"
	KindCredit   TransactionKind = "CREDIT"
	KindPix      TransactionKind = "PIX"
	KindTED      TransactionKind = "TED"
	KindDOC      TransactionKind = "DOC"
	KindBoleto   TransactionKind = "BOLETO"
	KindTransfer TransactionKind = "TRANSFER"
	KindPayment  TransactionKind = "PAYMENT"
)

var kindDisplayNames = map[TransactionKind]string{
	KindDebit:    "Débito",
	KindCredit:   "Crédito",
	KindPix:      "PIX",
	KindTED:      "TED",
	KindDOC:      "DOC",
	KindBoleto:   "Boleto",
	KindTransfer: "Transferência",
	KindPayment:  "Pagamento",
}

// DisplayName returns the localized label of the kind.
func (k TransactionKind) DisplayName() string {
	if name, ok := kindDisplayNames[k]; ok {
		return name
	}
	return string(k)
}

// Transaction is one line-item money movement of an extract.
//
// Amount follows the source bank convention: negative values are income,
// positive values are expenses. Date holds a calendar date at UTC midnight.
type Transaction struct {
	ID                  string          `json:"id,omitempty" yaml:"id,omitempty" xml:"id,attr,omitempty"`
	ExtractID           string          `json:"extractId,omitempty" yaml:"extract_id,omitempty" xml:"extractId,attr,omitempty"`
	Date                time.Time       `json:"date" yaml:"date" xml:"date"`
	Title               string          `json:"title" yaml:"title" xml:"title"`
	Amount              decimal.Decimal `json:"amount" yaml:"amount" xml:"amount"`
	OriginalDescription string          `json:"originalDescription" yaml:"original_description" xml:"originalDescription"`
	Kind                TransactionKind `json:"transactionType" yaml:"transaction_type" xml:"transactionType"`
	Category            *Category       `json:"category,omitempty" yaml:"category,omitempty" xml:"category,omitempty"`
	Confidence          decimal.Decimal `json:"confidence" yaml:"confidence" xml:"confidence"`
}

// NewTransaction creates an unclassified transaction. The date is truncated to
// its calendar day in UTC.
func NewTransaction(date time.Time, title string, amount decimal.Decimal, kind TransactionKind) Transaction {
	return Transaction{
		Date:                CalendarDate(date),
		Title:               title,
		Amount:              amount,
		OriginalDescription: title,
		Kind:                kind,
		Confidence:          ConfidenceNone,
	}
}

// IsIncome reports whether the amount is negative.
func (t Transaction) IsIncome() bool {
	return t.Amount.IsNegative()
}

// IsExpense reports whether the amount is strictly positive.
func (t Transaction) IsExpense() bool {
	return t.Amount.IsPositive()
}

// AbsoluteAmount returns |Amount|.
func (t Transaction) AbsoluteAmount() decimal.Decimal {
	return t.Amount.Abs()
}

// AssignCategory sets the category together with the confidence that produced it.
func (t *Transaction) AssignCategory(category Category, confidence decimal.Decimal) {
	c := category
	t.Category = &c
	t.Confidence = confidence
}

// ClearCategory removes the category and resets the confidence to none.
func (t *Transaction) ClearCategory() {
	t.Category = nil
	t.Confidence = ConfidenceNone
}

// CalendarDate normalizes t to midnight UTC of the same calendar day as
// observed in t's own location.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// RawTransactionRecord is one data line of a statement file before typing.
type RawTransactionRecord struct {
	LineNumber int
	DateText   string
	TitleText  string
	AmountText string
}
