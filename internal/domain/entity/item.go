package entity

import "time"

// Item is a catalog grocery item. Dietary flags are biased by category at
// generation time; the organic flag is derived from the generated name so
// that labels and flags never disagree.
type Item struct {
	ItemID      string    `json:"item_id"` // ITEM_###### identity, unique per run
	Name        string    `json:"name"`
	Brand       string    `json:"brand"`
	Category    string    `json:"category"`
	SubCategory string    `json:"sub_category"`
	Description string    `json:"description"`
	BasePrice   float64   `json:"base_price"` // Never negative
	UnitSize    string    `json:"unit_size"`
	UnitType    string    `json:"unit_type"`
	Barcode     string    `json:"barcode"`
	Organic     bool      `json:"organic"`
	GlutenFree  bool      `json:"gluten_free"`
	Vegan       bool      `json:"vegan"`
	Vegetarian  bool      `json:"vegetarian"`
	DairyFree   bool      `json:"dairy_free"`
	NutFree     bool      `json:"nut_free"`
	Tags        []string  `json:"tags"`
	CreatedDate time.Time `json:"created_date"`
}
