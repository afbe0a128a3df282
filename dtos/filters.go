package dtos

// Stock bucket values accepted by the inventory filter.
const (
	StockFilterAll  = "all"
	StockFilterGood = "good"
	StockFilterLow  = "low"
	StockFilterOut  = "out"
)

// InventoryFilter narrows an in-memory product slice. Empty fields and the
// "all" sentinels match everything.
type InventoryFilter struct {
	Search     string
	StockLevel string
	Category   string
}

// PriceListFilter narrows the price-list mirror before export.
// Status is "all"|"active"|"inactive"; Availability is
// "all"|"available"|"unavailable".
type PriceListFilter struct {
	Search       string
	Category     string
	Status       string
	Availability string
}
