package entity

import "time"

// StockStatus describes item availability at a store.
type StockStatus string

const (
	StockInStock  StockStatus = "in_stock"
	StockLowStock StockStatus = "low_stock"
	// StockOutOfStock is filtered on by the downstream search tools but is
	// never emitted by the generator, so an out-of-stock filter is a no-op
	// against generated data.
	StockOutOfStock StockStatus = "out_of_stock"
)

// InventoryRecord ties one item to one store with a tier-adjusted price and
// current stock state. When OnSale is set, SalePrice is strictly below
// CurrentPrice and SaleEndDate is in the future.
type InventoryRecord struct {
	InventoryID          string      `json:"inventory_id"` // INV_######## identity, unique per run
	StoreID              string      `json:"store_id"`
	ItemID               string      `json:"item_id"`
	CurrentPrice         float64     `json:"current_price"` // base price x store tier multiplier
	OnSale               bool        `json:"on_sale"`
	SalePrice            *float64    `json:"sale_price"`
	SaleEndDate          *time.Time  `json:"sale_end_date"`
	StockLevel           int         `json:"stock_level"`
	StockStatus          StockStatus `json:"stock_status"`
	SeasonalAvailability bool        `json:"seasonal_availability"`
	LastRestocked        time.Time   `json:"last_restocked"`
	LastUpdated          time.Time   `json:"last_updated"`
	PriceLastUpdated     time.Time   `json:"price_last_updated"`
}
