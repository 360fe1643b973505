package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldRunID       = "run_id"
	FieldError       = "error"
	FieldOperation   = "operation"
	FieldBackend     = "backend"
	FieldPath        = "path"
	FieldRowsRead    = "rows_read"
	FieldRowsDropped = "rows_dropped"
	FieldRecords     = "records"
	FieldCardID      = "card_id"
	FieldCategory    = "category"
	FieldCurrency    = "currency"
	FieldSymbol      = "symbol"
	FieldMatches     = "matches"
	FieldAmountCents = "amount_cents"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentCLI     = "cli"
	ComponentSource  = "source"
	ComponentStore   = "store"
	ComponentQuotes  = "quotes"
	ComponentReport  = "report"
	ComponentSearch  = "search"
	ComponentPublish = "publish"
	ComponentCache   = "cache"
)

// Operations defines standard operation names
const (
	OpReport   = "report"
	OpSearch   = "search"
	OpFilter   = "filter"
	OpIngest   = "ingest"
	OpValidate = "validate"
	OpParse    = "parse"
	OpPublish  = "publish"
)
