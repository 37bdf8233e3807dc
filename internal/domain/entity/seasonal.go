package entity

// Season enumerates the four seasons used for availability scoring.
type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonFall   Season = "fall"
	SeasonWinter Season = "winter"
)

// SeasonalAvailability scores how available a perishable item is in a given
// season. Only Fresh Produce items carry seasonal records.
type SeasonalAvailability struct {
	ItemID            string   `json:"item_id"`
	Season            Season   `json:"season"`
	AvailabilityScore float64  `json:"availability_score"` // in [0,1]
	PriceMultiplier   float64  `json:"price_multiplier"`
	PeakMonths        []string `json:"peak_months"` // 2-4 month abbreviations
	Description       string   `json:"description"`
}
