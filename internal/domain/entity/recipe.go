package entity

// RecipeCombination links a set of catalog items that work together as a
// recipe. A combination is only valid with at least 3 distinct ingredient
// items; at most 6 are stored. All time fields are in minutes.
type RecipeCombination struct {
	RecipeID      string   `json:"recipe_id"` // RECIPE_###### identity, unique per run
	RecipeName    string   `json:"recipe_name"`
	PrimaryItemID string   `json:"primary_item_id"`
	IngredientIDs []string `json:"ingredient_ids"`
	Difficulty    string   `json:"difficulty"`
	PrepTime      int      `json:"prep_time"`
	CookTime      int      `json:"cook_time"`
	TotalTime     int      `json:"total_time"`
	Servings      int      `json:"servings"`
	CuisineType   string   `json:"cuisine_type"`
	MealType      string   `json:"meal_type"`
	Description   string   `json:"description"`
	Instructions  string   `json:"instructions"`
	Tags          []string `json:"tags"`
}
