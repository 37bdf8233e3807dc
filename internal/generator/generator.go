// Package generator synthesizes the Elasti-Cart grocery dataset: stores,
// items, inventory, promotions, seasonal availability, recipes and
// nutrition facts. All randomness flows through an explicit *rand.Rand so
// a fixed seed reproduces a run exactly.
package generator

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"elasticart/internal/dataset"
	"elasticart/internal/domain/entity"

	"github.com/pkg/errors"
)

// Caps applied regardless of catalog size, matching the shipped dataset
// profile: at most 5000 promoted items and 1000 seasonal records.
const (
	maxPromotedItems   = 5000
	maxSeasonalRecords = 1000
	maxRecipeItems     = 6
	minRecipeItems     = 3
)

// Params sizes a full generation run.
type Params struct {
	ItemCount         int
	StoreCount        int
	InventoryPerStore int
	RecipeCount       int
	SeasonalItems     bool
	Promotions        bool
}

// Generator produces the synthetic catalog. It is stateful only in its
// per-entity identity counters and is not safe for concurrent use.
type Generator struct {
	rng  *rand.Rand
	tmpl Templates
	now  time.Time

	storeIDs  *idGen
	itemIDs   *idGen
	invIDs    *idGen
	promoIDs  *idGen
	recipeIDs *idGen

	// foodCategories gates nutrition facts generation.
	foodCategories map[string]bool
}

// New builds a Generator over the given template set. An empty template
// collection is an unrecoverable input error: the run aborts rather than
// producing partial or malformed output.
func New(rng *rand.Rand, tmpl Templates) (*Generator, error) {
	if rng == nil {
		return nil, errors.New("generator requires an explicit random source")
	}
	if len(tmpl.Categories) == 0 {
		return nil, errors.New("generator requires at least one category template")
	}
	for _, cat := range tmpl.Categories {
		if len(cat.Items) == 0 {
			return nil, errors.Errorf("category template %q has no items", cat.Name)
		}
		if len(cat.Subcategories) == 0 {
			return nil, errors.Errorf("category template %q has no subcategories", cat.Name)
		}
	}
	if len(tmpl.Stores) == 0 {
		return nil, errors.New("generator requires at least one store template")
	}
	if len(tmpl.Recipes) == 0 {
		return nil, errors.New("generator requires at least one recipe template")
	}

	food := make(map[string]bool, len(tmpl.Categories))
	for _, cat := range tmpl.Categories {
		food[cat.Name] = true
	}

	return &Generator{
		rng:            rng,
		tmpl:           tmpl,
		now:            time.Now().UTC(),
		storeIDs:       newIDGen("STORE", 3),
		itemIDs:        newIDGen("ITEM", 6),
		invIDs:         newIDGen("INV", 8),
		promoIDs:       newIDGen("PROMO", 6),
		recipeIDs:      newIDGen("RECIPE", 6),
		foodCategories: food,
	}, nil
}

// GenerateAll runs every generator in dependency order and returns the
// complete dataset.
func (g *Generator) GenerateAll(p Params) (*dataset.Dataset, error) {
	stores := g.GenerateStores(p.StoreCount)
	items := g.GenerateItems(p.ItemCount)

	ds := &dataset.Dataset{
		Stores:    stores,
		Items:     items,
		Inventory: g.GenerateInventory(stores, items, p.InventoryPerStore),
		Nutrition: g.GenerateNutrition(items),
		Recipes:   g.GenerateRecipes(items, p.RecipeCount),
	}
	if p.Promotions {
		ds.Promotions = g.GeneratePromotions(items, stores)
	}
	if p.SeasonalItems {
		ds.Seasonal = g.GenerateSeasonal(items)
	}

	return ds, nil
}

// GenerateStores materializes stores from the template list, jittering
// coordinates by up to ±0.01 degrees and sampling 2-4 specialties each.
// count is capped at the template list length; zero means all templates.
func (g *Generator) GenerateStores(count int) []entity.Store {
	n := len(g.tmpl.Stores)
	if count > 0 && count < n {
		n = count
	}

	stores := make([]entity.Store, 0, n)
	for _, t := range g.tmpl.Stores[:n] {
		stores = append(stores, entity.Store{
			StoreID:   g.storeIDs.Next(),
			StoreName: t.Name,
			ChainName: t.Chain,
			ChainTier: t.Tier,
			Address: entity.Address{
				Street:  t.Street,
				City:    g.tmpl.City,
				State:   g.tmpl.State,
				ZipCode: t.ZipCode,
				Coordinates: entity.Coordinates{
					Lat: t.Location.Lat() + g.uniform(-0.01, 0.01),
					Lon: t.Location.Lon() + g.uniform(-0.01, 0.01),
				},
			},
			Phone:       fmt.Sprintf("702-%d-%d", g.intBetween(200, 999), g.intBetween(1000, 9999)),
			Hours:       defaultHours,
			Specialties: g.sampleStrings(storeSpecialties, g.intBetween(2, 4)),
		})
	}

	return stores
}

// GenerateItems partitions total evenly across categories and samples each
// item from its category's base templates with a name-prefix variation and
// a price jitter in [0.8, 1.3). The organic flag follows from the generated
// name rather than an independent draw, keeping labels and flags aligned.
func (g *Generator) GenerateItems(total int) []entity.Item {
	perCategory := total / len(g.tmpl.Categories)
	items := make([]entity.Item, 0, perCategory*len(g.tmpl.Categories))

	for _, cat := range g.tmpl.Categories {
		for i := 0; i < perCategory; i++ {
			base := cat.Items[g.rng.Intn(len(cat.Items))]
			sub := cat.Subcategories[g.rng.Intn(len(cat.Subcategories))]

			name := strings.TrimSpace(namePrefixes[g.rng.Intn(len(namePrefixes))] + " " + base.Name)
			price := round2(base.Price * g.uniform(0.8, 1.3))

			items = append(items, entity.Item{
				ItemID:      g.itemIDs.Next(),
				Name:        name,
				Brand:       base.Brand,
				Category:    cat.Name,
				SubCategory: sub,
				Description: fmt.Sprintf("High-quality %s from %s", strings.ToLower(name), base.Brand),
				BasePrice:   price,
				UnitSize:    base.UnitSize,
				UnitType:    "package",
				Barcode:     fmt.Sprintf("%d", 100000000000+g.rng.Int63n(900000000000)),
				Organic:     strings.Contains(name, "Organic"),
				GlutenFree:  g.coin(),
				Vegan:       cat.Name == seasonalCategory || g.coin(),
				Vegetarian:  cat.Name != "Meat & Seafood" || g.coin(),
				DairyFree:   cat.Name != "Dairy & Eggs" || g.coin(),
				NutFree:     g.coin(),
				Tags:        []string{slug(cat.Name), strings.ToLower(sub)},
				CreatedDate: g.now.AddDate(0, 0, -g.intBetween(1, 365)),
			})
		}
	}

	return items
}

// GenerateInventory samples min(perStore, |items|) items without
// replacement for each store and prices them by the store's tier
// multiplier. Roughly 30% of records carry a sale with a price strictly
// below the current price and an end date 1-14 days out.
func (g *Generator) GenerateInventory(stores []entity.Store, items []entity.Item, perStore int) []entity.InventoryRecord {
	k := perStore
	if k > len(items) {
		k = len(items)
	}

	records := make([]entity.InventoryRecord, 0, k*len(stores))
	for _, store := range stores {
		for _, idx := range g.rng.Perm(len(items))[:k] {
			records = append(records, g.inventoryRecord(&store, &items[idx]))
		}
	}

	return records
}

func (g *Generator) inventoryRecord(store *entity.Store, item *entity.Item) entity.InventoryRecord {
	lo, hi := tierMultiplierRange(store.ChainTier)
	current := round2(item.BasePrice * g.uniform(lo, hi))

	rec := entity.InventoryRecord{
		InventoryID:          g.invIDs.Next(),
		StoreID:              store.StoreID,
		ItemID:               item.ItemID,
		CurrentPrice:         current,
		OnSale:               g.rng.Float64() < 0.3,
		StockLevel:           g.intBetween(5, 100),
		StockStatus:          g.stockStatus(),
		SeasonalAvailability: g.coin(),
		LastRestocked:        g.now.AddDate(0, 0, -g.intBetween(1, 7)),
		LastUpdated:          g.now,
		PriceLastUpdated:     g.now,
	}

	if rec.OnSale {
		sale := round2(current * g.uniform(0.7, 0.9))
		if sale >= current {
			// Rounding can collapse tiny prices onto the current price.
			sale = round2(current - 0.01)
		}
		end := g.now.AddDate(0, 0, g.intBetween(1, 14))
		rec.SalePrice = &sale
		rec.SaleEndDate = &end
	}

	return rec
}

// tierMultiplierRange is the core pricing policy: the store tier bounds the
// factor applied to an item's base price.
func tierMultiplierRange(tier entity.ChainTier) (lo, hi float64) {
	switch tier {
	case entity.TierPremium:
		return 1.1, 1.3
	case entity.TierDiscount:
		return 0.7, 0.9
	case entity.TierWarehouse:
		return 0.6, 0.8
	default: // Mid-tier
		return 0.9, 1.1
	}
}

// stockStatus never emits out_of_stock; the generator models stocked
// stores only.
func (g *Generator) stockStatus() entity.StockStatus {
	if g.coin() {
		return entity.StockInStock
	}

	return entity.StockLowStock
}

// GeneratePromotions promotes about a fifth of the catalog (capped at
// 5000 items), spreading each promotion across 1-5 stores. Discount fields
// are drawn independently of the offer type to match the shipped dataset's
// looseness.
func (g *Generator) GeneratePromotions(items []entity.Item, stores []entity.Store) []entity.PromotionalOffer {
	promoCount := len(items) / 5
	if promoCount > maxPromotedItems {
		promoCount = maxPromotedItems
	}

	offerTypes := []entity.OfferType{
		entity.OfferPercentageDiscount,
		entity.OfferFixedDiscount,
		entity.OfferBuyOneGetOne,
		entity.OfferBulkDiscount,
	}

	var offers []entity.PromotionalOffer
	for _, idx := range g.rng.Perm(len(items))[:promoCount] {
		item := &items[idx]

		storeCount := g.intBetween(1, 5)
		if storeCount > len(stores) {
			storeCount = len(stores)
		}

		for _, sIdx := range g.rng.Perm(len(stores))[:storeCount] {
			store := &stores[sIdx]

			offer := entity.PromotionalOffer{
				OfferID:     g.promoIDs.Next(),
				ItemID:      item.ItemID,
				StoreID:     store.StoreID,
				OfferType:   offerTypes[g.rng.Intn(len(offerTypes))],
				MinQuantity: 1,
				Description: fmt.Sprintf("Special offer on %s", item.Name),
				StartDate:   g.now.AddDate(0, 0, -g.intBetween(1, 30)),
				EndDate:     g.now.AddDate(0, 0, g.intBetween(7, 60)),
				Conditions:  fmt.Sprintf("Valid at %s only", store.StoreName),
				Active:      g.rng.Float64() < 0.75,
			}
			if g.coin() {
				pct := g.intBetween(10, 50)
				offer.DiscountPercent = &pct
			}
			if g.coin() {
				fixed := round2(g.uniform(0.50, 3.00))
				offer.FixedDiscount = &fixed
			}
			if g.coin() {
				offer.MinQuantity = g.intBetween(1, 3)
			}

			offers = append(offers, offer)
		}
	}

	return offers
}

// GenerateSeasonal assigns a season, availability score and price
// multiplier to up to 1000 produce items.
func (g *Generator) GenerateSeasonal(items []entity.Item) []entity.SeasonalAvailability {
	var produce []*entity.Item
	for i := range items {
		if items[i].Category == seasonalCategory {
			produce = append(produce, &items[i])
		}
	}

	count := len(produce)
	if count > maxSeasonalRecords {
		count = maxSeasonalRecords
	}

	records := make([]entity.SeasonalAvailability, 0, count)
	for _, idx := range g.rng.Perm(len(produce))[:count] {
		item := produce[idx]
		season := seasons[g.rng.Intn(len(seasons))]

		records = append(records, entity.SeasonalAvailability{
			ItemID:            item.ItemID,
			Season:            season,
			AvailabilityScore: round2(g.uniform(0.3, 1.0)),
			PriceMultiplier:   round2(g.uniform(0.8, 1.5)),
			PeakMonths:        g.sampleStrings(monthAbbrevs, g.intBetween(2, 4)),
			Description:       fmt.Sprintf("%s seasonal availability for %s", item.Name, season),
		})
	}

	return records
}

// GenerateRecipes draws the requested number of recipe attempts from the
// templates, sampling up to 2 items per required category. A draw only
// yields a recipe when it collects at least 3 distinct ingredients; at
// most 6 are stored.
func (g *Generator) GenerateRecipes(items []entity.Item, draws int) []entity.RecipeCombination {
	byCategory := make(map[string][]*entity.Item)
	for i := range items {
		byCategory[items[i].Category] = append(byCategory[items[i].Category], &items[i])
	}

	var recipes []entity.RecipeCombination
	for n := 0; n < draws; n++ {
		tmpl := g.tmpl.Recipes[g.rng.Intn(len(g.tmpl.Recipes))]

		var pool []*entity.Item
		for _, cat := range tmpl.Categories {
			candidates := byCategory[cat]
			if len(candidates) == 0 {
				continue
			}
			take := 2
			if take > len(candidates) {
				take = len(candidates)
			}
			for _, idx := range g.rng.Perm(len(candidates))[:take] {
				pool = append(pool, candidates[idx])
			}
		}

		ids := distinctIDs(pool)
		if len(ids) < minRecipeItems {
			continue
		}
		if len(ids) > maxRecipeItems {
			ids = ids[:maxRecipeItems]
		}

		recipes = append(recipes, entity.RecipeCombination{
			RecipeID:      g.recipeIDs.Next(),
			RecipeName:    tmpl.Name,
			PrimaryItemID: ids[0],
			IngredientIDs: ids,
			Difficulty:    tmpl.Difficulty,
			PrepTime:      g.intBetween(5, 30),
			CookTime:      tmpl.CookTime + g.intBetween(-10, 10),
			TotalTime:     tmpl.CookTime + g.intBetween(5, 40),
			Servings:      tmpl.Servings,
			CuisineType:   cuisineTypes[g.rng.Intn(len(cuisineTypes))],
			MealType:      mealTypes[g.rng.Intn(len(mealTypes))],
			Description:   fmt.Sprintf("Delicious %s made with fresh ingredients", strings.ToLower(tmpl.Name)),
			Instructions:  fmt.Sprintf("Prepare %s using the listed ingredients", strings.ToLower(tmpl.Name)),
			Tags:          []string{tmpl.Difficulty, slug(tmpl.Name)},
		})
	}

	return recipes
}

// GenerateNutrition emits one nutrition record per food-category item with
// macros drawn from fixed plausible ranges. Dietary flags are copied from
// the item, never re-derived.
func (g *Generator) GenerateNutrition(items []entity.Item) []entity.NutritionFacts {
	var records []entity.NutritionFacts
	for i := range items {
		item := &items[i]
		if !g.foodCategories[item.Category] {
			continue
		}

		records = append(records, entity.NutritionFacts{
			ItemID:       item.ItemID,
			ServingSize:  "1 serving",
			Calories:     g.intBetween(50, 500),
			TotalFat:     round1(g.uniform(0, 25)),
			SaturatedFat: round1(g.uniform(0, 10)),
			Cholesterol:  g.intBetween(0, 100),
			Sodium:       g.intBetween(0, 1000),
			TotalCarbs:   round1(g.uniform(0, 50)),
			DietaryFiber: round1(g.uniform(0, 15)),
			TotalSugars:  round1(g.uniform(0, 30)),
			Protein:      round1(g.uniform(0, 30)),
			Ingredients:  fmt.Sprintf("Main ingredients for %s", strings.ToLower(item.Name)),
			Allergens:    g.sampleStrings(allergenVocabulary, g.intBetween(0, 3)),
			Organic:      item.Organic,
			GlutenFree:   item.GlutenFree,
			Vegan:        item.Vegan,
			Vegetarian:   item.Vegetarian,
			DairyFree:    item.DairyFree,
			NutFree:      item.NutFree,
		})
	}

	return records
}

func distinctIDs(pool []*entity.Item) []string {
	seen := make(map[string]bool, len(pool))
	ids := make([]string, 0, len(pool))
	for _, item := range pool {
		if seen[item.ItemID] {
			continue
		}
		seen[item.ItemID] = true
		ids = append(ids, item.ItemID)
	}

	return ids
}

// uniform returns a float in [lo, hi).
func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

// intBetween returns an int in [lo, hi] inclusive.
func (g *Generator) intBetween(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}

func (g *Generator) coin() bool {
	return g.rng.Intn(2) == 0
}

// sampleStrings samples k elements without replacement.
func (g *Generator) sampleStrings(vocab []string, k int) []string {
	if k > len(vocab) {
		k = len(vocab)
	}

	out := make([]string, 0, k)
	for _, idx := range g.rng.Perm(len(vocab))[:k] {
		out = append(out, vocab[idx])
	}

	return out
}

func slug(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " & ", "_")

	return strings.ReplaceAll(s, " ", "_")
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
