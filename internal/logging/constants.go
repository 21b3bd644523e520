package logging

// Standardized field names for structured logging.
const (
	FieldFile          = "file"
	FieldLine          = "line"
	FieldBank          = "bank"
	FieldMonth         = "month"
	FieldYear          = "year"
	FieldExtractID     = "extract_id"
	FieldTransactionID = "transaction_id"
	FieldCategory      = "category"
	FieldCategoryID    = "category_id"
	FieldTitle         = "title"
	FieldReason        = "reason"
	FieldOperation     = "operation"
	FieldCount         = "count"
	FieldSkipped       = "skipped"
	FieldDuration      = "duration_ms"
	FieldFormat        = "format"
)
