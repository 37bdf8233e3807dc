// Package entity contains the value records emitted by the catalog generator.
// Field names match the document fields of the Elasticsearch indices the
// dataset is loaded into; every record is immutable once generated.
package entity

// ChainTier classifies a store chain's price positioning. The tier drives
// the multiplier applied to an item's base price in store inventory.
type ChainTier string

const (
	TierPremium   ChainTier = "Premium"
	TierMidTier   ChainTier = "Mid-tier"
	TierDiscount  ChainTier = "Discount"
	TierWarehouse ChainTier = "Warehouse"
)

// Coordinates is a geographic point in degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Address is a store's postal address with coordinates.
type Address struct {
	Street      string      `json:"street"`
	City        string      `json:"city"`
	State       string      `json:"state"`
	ZipCode     string      `json:"zip_code"`
	Coordinates Coordinates `json:"coordinates"`
}

// StoreHours lists opening hours per weekday as display strings.
type StoreHours struct {
	Monday    string `json:"monday"`
	Tuesday   string `json:"tuesday"`
	Wednesday string `json:"wednesday"`
	Thursday  string `json:"thursday"`
	Friday    string `json:"friday"`
	Saturday  string `json:"saturday"`
	Sunday    string `json:"sunday"`
}

// Store is a single physical grocery store location.
type Store struct {
	StoreID     string     `json:"store_id"`   // STORE_### identity, unique per run
	StoreName   string     `json:"store_name"` // Display name
	ChainName   string     `json:"chain_name"` // Parent chain
	ChainTier   ChainTier  `json:"chain_tier"` // Price-tier classification
	Address     Address    `json:"address"`
	Phone       string     `json:"phone"`
	Hours       StoreHours `json:"hours"`
	Specialties []string   `json:"specialties"` // 2-4 departments the store is known for
}
