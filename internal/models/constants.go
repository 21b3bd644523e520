package models

import "github.com/shopspring/decimal"

// Classification confidence levels.
var (
	ConfidenceNone   = decimal.Zero
	ConfidenceAuto   = decimal.RequireFromString("0.85")
	ConfidenceManual = decimal.NewFromInt(1)
)

// Category names produced by the default rule set.
const (
	CategoryFood          = "Alimentação"
	CategoryTransport     = "Transporte"
	CategoryShopping      = "Compras"
	CategoryHealthcare    = "Saúde"
	CategoryEntertainment = "Entretenimento"
	CategoryBills         = "Contas"
	CategoryOther         = "Outros"
)

// Layouts used for calendar dates and reference periods.
const (
	DateLayout   = "2006-01-02"
	PeriodLayout = "2006-01"
)

// DefaultTopExpensesLimit caps the top-expenses list of a monthly report.
const DefaultTopExpensesLimit = 10

// File permissions
const (
	PermissionDirectory  = 0750
	PermissionReportFile = 0644
)
