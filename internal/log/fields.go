package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldRequestID   = "request_id"
	FieldClientIP    = "client_ip"
	FieldMethod      = "method"
	FieldPath        = "path"
	FieldStatusCode  = "status_code"
	FieldDuration    = "duration_ms"
	FieldUserAgent   = "user_agent"
	FieldError       = "error"
	FieldOperation   = "operation"
	FieldFilter      = "filter"
	FieldProductID   = "product_id"
	FieldProductName = "product_name"
	FieldSaleID      = "sale_id"
	FieldQuantity    = "quantity"
	FieldAmountCents = "amount_cents"
	FieldStock       = "stock"
)

// Components defines standard component names
const (
	ComponentApp      = "app"
	ComponentHTTP     = "http"
	ComponentCatalog  = "catalog"
	ComponentLedger   = "ledger"
	ComponentSettings = "settings"
	ComponentStorage  = "storage"
	ComponentCache    = "cache"
	ComponentBackend  = "backend"
)

// Operations defines standard operation names
const (
	OpCreate    = "create"
	OpRead      = "read"
	OpUpdate    = "update"
	OpDelete    = "delete"
	OpList      = "list"
	OpAggregate = "aggregate"
	OpClear     = "clear"
	OpStartup   = "startup"
	OpShutdown  = "shutdown"
)
