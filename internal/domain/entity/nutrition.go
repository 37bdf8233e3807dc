package entity

// NutritionFacts holds per-serving nutrition data for a food item. The
// dietary flags are copied verbatim from the source Item rather than
// re-derived, so the two records can never disagree.
type NutritionFacts struct {
	ItemID       string   `json:"item_id"`
	ServingSize  string   `json:"serving_size"`
	Calories     int      `json:"calories"`
	TotalFat     float64  `json:"total_fat"`
	SaturatedFat float64  `json:"saturated_fat"`
	Cholesterol  int      `json:"cholesterol"`
	Sodium       int      `json:"sodium"`
	TotalCarbs   float64  `json:"total_carbs"`
	DietaryFiber float64  `json:"dietary_fiber"`
	TotalSugars  float64  `json:"total_sugars"`
	Protein      float64  `json:"protein"`
	Ingredients  string   `json:"ingredients"`
	Allergens    []string `json:"allergens"` // 0-3 entries from a fixed vocabulary
	Organic      bool     `json:"organic"`
	GlutenFree   bool     `json:"gluten_free"`
	Vegan        bool     `json:"vegan"`
	Vegetarian   bool     `json:"vegetarian"`
	DairyFree    bool     `json:"dairy_free"`
	NutFree      bool     `json:"nut_free"`
}
