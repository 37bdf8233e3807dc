// Package dataset aggregates the generated record collections and handles
// their serialization to per-collection JSON artifacts.
package dataset

import "elasticart/internal/domain/entity"

// Collection names double as Elasticsearch index names and artifact file
// basenames (<name>.json).
const (
	CollectionStores     = "store_locations"
	CollectionItems      = "grocery_items"
	CollectionInventory  = "store_inventory"
	CollectionNutrition  = "nutrition_facts"
	CollectionPromotions = "promotional_offers"
	CollectionSeasonal   = "seasonal_availability"
	CollectionRecipes    = "recipe_combinations"
)

// Names lists all collection names in load order.
func Names() []string {
	return []string{
		CollectionStores,
		CollectionItems,
		CollectionInventory,
		CollectionNutrition,
		CollectionPromotions,
		CollectionSeasonal,
		CollectionRecipes,
	}
}

// Dataset holds one generation run's output.
type Dataset struct {
	Stores     []entity.Store
	Items      []entity.Item
	Inventory  []entity.InventoryRecord
	Nutrition  []entity.NutritionFacts
	Promotions []entity.PromotionalOffer
	Seasonal   []entity.SeasonalAvailability
	Recipes    []entity.RecipeCombination
}

// Collection is a uniform view over one record slice, used by the writer
// and the bulk loader.
type Collection struct {
	Name string
	Docs []any
}

// Collections returns every collection in load order.
func (d *Dataset) Collections() []Collection {
	return []Collection{
		{CollectionStores, toDocs(d.Stores)},
		{CollectionItems, toDocs(d.Items)},
		{CollectionInventory, toDocs(d.Inventory)},
		{CollectionNutrition, toDocs(d.Nutrition)},
		{CollectionPromotions, toDocs(d.Promotions)},
		{CollectionSeasonal, toDocs(d.Seasonal)},
		{CollectionRecipes, toDocs(d.Recipes)},
	}
}

// TotalRecords counts records across all collections.
func (d *Dataset) TotalRecords() int {
	return len(d.Stores) + len(d.Items) + len(d.Inventory) + len(d.Nutrition) +
		len(d.Promotions) + len(d.Seasonal) + len(d.Recipes)
}

func toDocs[T any](records []T) []any {
	docs := make([]any, len(records))
	for i := range records {
		docs[i] = records[i]
	}

	return docs
}
