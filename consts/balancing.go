package consts

const (
	// Date range presets
	PresetDaily   = "daily"
	PresetWeekly  = "weekly"
	PresetMonthly = "monthly"
	PresetCustom  = "custom"

	// Finance transaction statuses
	TransactionStatusPending   = "pending"
	TransactionStatusConfirmed = "confirmed"

	// Default config
	DefaultChunkSize = 50
	DefaultPageSize  = 25
	ErrorLogCap      = 50

	DateLayout = "2006-01-02"
)

// Transaction types counted as purchase payments. Anything else in the
// cash ledger (savings, loans, fees) is ignored by the balancing report.
var PurchasePaymentTypes = []string{
	"coffee_purchase_payment",
	"purchase_payment",
	"supplier_payment",
}

// Selectable page sizes for the report view.
var PageSizeOptions = []int{10, 25, 50, 100}
