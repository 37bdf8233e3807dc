package entity

import "time"

// OfferType enumerates the supported promotion mechanics.
type OfferType string

const (
	OfferPercentageDiscount OfferType = "percentage_discount"
	OfferFixedDiscount      OfferType = "fixed_discount"
	OfferBuyOneGetOne       OfferType = "buy_one_get_one"
	OfferBulkDiscount       OfferType = "bulk_discount"
)

// PromotionalOffer is a store-scoped promotion on a single item.
//
// DiscountPercent and FixedDiscount are populated independently at random
// rather than being mutually exclusive by offer type; the downstream query
// tools tolerate either or both being set.
type PromotionalOffer struct {
	OfferID         string    `json:"offer_id"` // PROMO_###### identity, unique per run
	ItemID          string    `json:"item_id"`
	StoreID         string    `json:"store_id"`
	OfferType       OfferType `json:"offer_type"`
	DiscountPercent *int      `json:"discount_percent"`
	FixedDiscount   *float64  `json:"fixed_discount"`
	MinQuantity     int       `json:"min_quantity"`
	Description     string    `json:"description"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	Conditions      string    `json:"conditions"`
	Active          bool      `json:"active"`
}
