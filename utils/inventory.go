package utils

import (
	"strings"

	"kirana-admin-backend/dtos"
	"kirana-admin-backend/models"
)

// StockStatus buckets a stock count. The three buckets partition the whole
// domain: 0 is out of stock, 1..5 is low, anything above 5 is in stock.
type StockStatus string

const (
	StockOut StockStatus = "out_of_stock"
	StockLow StockStatus = "low_stock"
	StockIn  StockStatus = "in_stock"
)

// LowStockThreshold is inclusive: a stock of exactly 5 still counts as low.
const LowStockThreshold = 5

func ClassifyStock(stock int) StockStatus {
	if stock == 0 {
		return StockOut
	}
	if stock <= LowStockThreshold {
		return StockLow
	}
	return StockIn
}

// InventoryStats aggregates a product slice. TotalValue counts every product
// regardless of isActive/isAvailable; the inventory page reports what is on
// the shelf, not what is purchasable.
type InventoryStats struct {
	TotalProducts int     `json:"totalProducts"`
	LowStock      int     `json:"lowStock"`
	OutOfStock    int     `json:"outOfStock"`
	TotalValue    float64 `json:"totalValue"`
}

func AggregateInventory(products []models.Product) InventoryStats {
	stats := InventoryStats{TotalProducts: len(products)}
	for _, p := range products {
		switch ClassifyStock(p.Stock) {
		case StockOut:
			stats.OutOfStock++
		case StockLow:
			stats.LowStock++
		}
		stats.TotalValue += p.MRP * float64(p.Stock)
	}
	return stats
}

// FilterInventory intersects the search term (case-insensitive substring on
// name or category), the stock bucket and the exact category filter,
// preserving input order. Pure: the input slice is never mutated.
func FilterInventory(products []models.Product, f dtos.InventoryFilter) []models.Product {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	filtered := make([]models.Product, 0, len(products))

	for _, p := range products {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Category), search) {
			continue
		}
		if !matchStockLevel(p.Stock, f.StockLevel) {
			continue
		}
		if f.Category != "" && f.Category != dtos.StockFilterAll && p.Category != f.Category {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

func matchStockLevel(stock int, level string) bool {
	switch level {
	case dtos.StockFilterGood:
		return ClassifyStock(stock) == StockIn
	case dtos.StockFilterLow:
		return ClassifyStock(stock) == StockLow
	case dtos.StockFilterOut:
		return ClassifyStock(stock) == StockOut
	default:
		return true
	}
}
