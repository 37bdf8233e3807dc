package generator

import (
	"elasticart/internal/domain/entity"

	"github.com/paulmach/orb"
)

// ItemTemplate is a base product that catalog items are sampled from.
type ItemTemplate struct {
	Name     string
	Brand    string
	Price    float64
	UnitSize string
}

// CategoryTemplate groups base products under a category with its
// subcategory vocabulary.
type CategoryTemplate struct {
	Name          string
	Subcategories []string
	Items         []ItemTemplate
}

// StoreTemplate is a real-world-like store seed. Location is lon/lat.
type StoreTemplate struct {
	Name     string
	Chain    string
	Tier     entity.ChainTier
	Street   string
	ZipCode  string
	Location orb.Point
}

// RecipeTemplate names a recipe and the categories its ingredients are
// drawn from.
type RecipeTemplate struct {
	Name       string
	Categories []string
	Difficulty string
	CookTime   int
	Servings   int
}

// Templates is the full static input of a generation run.
type Templates struct {
	Categories []CategoryTemplate
	Stores     []StoreTemplate
	Recipes    []RecipeTemplate
	City       string
	State      string
}

// DefaultTemplates returns the built-in Las Vegas template set.
func DefaultTemplates() Templates {
	return Templates{
		Categories: defaultCategories(),
		Stores:     lasVegasStores(),
		Recipes:    defaultRecipes(),
		City:       "Las Vegas",
		State:      "NV",
	}
}

func defaultCategories() []CategoryTemplate {
	return []CategoryTemplate{
		{
			Name:          "Fresh Produce",
			Subcategories: []string{"Fruits", "Vegetables", "Herbs", "Organic"},
			Items: []ItemTemplate{
				{"Organic Bananas", "Dole", 1.99, "lb"},
				{"Hass Avocados", "Nature's Pride", 2.49, "each"},
				{"Baby Spinach", "Earthbound Farm", 4.99, "5 oz"},
				{"Roma Tomatoes", "Fresh Select", 2.99, "lb"},
				{"Red Bell Peppers", "Premium", 3.99, "lb"},
				{"Broccoli Crowns", "Green Giant", 2.49, "each"},
				{"Organic Carrots", "Cal-Organic", 1.99, "2 lb bag"},
				{"Strawberries", "Driscoll's", 4.99, "16 oz"},
				{"Gala Apples", "Washington", 2.99, "3 lb bag"},
				{"Green Onions", "Fresh", 1.49, "bunch"},
			},
		},
		{
			Name:          "Meat & Seafood",
			Subcategories: []string{"Beef", "Poultry", "Pork", "Seafood"},
			Items: []ItemTemplate{
				{"Ground Beef 80/20", "Premium", 6.99, "lb"},
				{"Chicken Breast", "Foster Farms", 8.99, "lb"},
				{"Salmon Fillets", "Fresh Atlantic", 12.99, "lb"},
				{"Ground Turkey", "Jennie-O", 5.99, "lb"},
				{"Pork Chops", "Smithfield", 7.99, "lb"},
				{"Shrimp", "Wild Caught", 15.99, "lb"},
				{"Ribeye Steak", "Choice Grade", 18.99, "lb"},
				{"Chicken Thighs", "Foster Farms", 4.99, "lb"},
				{"Ground Pork", "Premium", 5.49, "lb"},
				{"Tilapia Fillets", "Fresh", 8.99, "lb"},
			},
		},
		{
			Name:          "Dairy & Eggs",
			Subcategories: []string{"Milk", "Cheese", "Eggs", "Yogurt"},
			Items: []ItemTemplate{
				{"Whole Milk", "Horizon Organic", 4.99, "64 oz"},
				{"Large Eggs", "Farm Fresh", 3.99, "dozen"},
				{"Cheddar Cheese", "Tillamook", 5.49, "8 oz"},
				{"Greek Yogurt", "Chobani", 1.99, "5.3 oz"},
				{"Butter", "Land O'Lakes", 4.49, "16 oz"},
				{"Cream Cheese", "Philadelphia", 2.99, "8 oz"},
				{"Mozzarella Cheese", "Kraft", 4.99, "16 oz"},
				{"Almond Milk", "Silk", 3.99, "64 oz"},
				{"Cottage Cheese", "Daisy", 3.49, "16 oz"},
				{"Heavy Cream", "Organic Valley", 3.99, "16 oz"},
			},
		},
		{
			Name:          "Pantry Staples",
			Subcategories: []string{"Pasta", "Rice", "Canned Goods", "Condiments"},
			Items: []ItemTemplate{
				{"Spaghetti", "Barilla", 1.99, "16 oz"},
				{"White Rice", "Minute", 2.99, "2 lb"},
				{"Olive Oil", "Bertolli", 7.99, "25.3 oz"},
				{"Tomato Sauce", "Hunt's", 1.49, "15 oz"},
				{"Black Beans", "Bush's", 1.99, "15 oz"},
				{"Peanut Butter", "Jif", 4.99, "40 oz"},
				{"Honey", "Nature Nate's", 6.99, "32 oz"},
				{"Quinoa", "Ancient Harvest", 7.99, "16 oz"},
				{"Coconut Oil", "Spectrum", 8.99, "14 oz"},
				{"Balsamic Vinegar", "Pompeian", 3.99, "16 oz"},
			},
		},
		{
			Name:          "Bakery",
			Subcategories: []string{"Bread", "Pastries", "Bagels", "Rolls"},
			Items: []ItemTemplate{
				{"Whole Wheat Bread", "Dave's Killer", 4.99, "27 oz"},
				{"Sourdough Bread", "Boudin", 3.99, "24 oz"},
				{"Bagels", "Thomas'", 3.49, "6 pack"},
				{"Croissants", "La Brea", 4.99, "4 pack"},
				{"Dinner Rolls", "King's Hawaiian", 3.99, "12 pack"},
				{"English Muffins", "Thomas'", 2.99, "6 pack"},
				{"Tortillas", "Mission", 2.99, "10 count"},
				{"Pita Bread", "Joseph's", 2.49, "6 pack"},
				{"Hamburger Buns", "Wonder", 2.49, "8 pack"},
				{"Muffins", "Costco", 5.99, "12 pack"},
			},
		},
	}
}

func lasVegasStores() []StoreTemplate {
	return []StoreTemplate{
		{"Smith's Food & Drug", "Kroger", entity.TierPremium, "4350 E Tropicana Ave", "89121", orb.Point{-115.0892, 36.1002}},
		{"Albertsons", "Albertsons", entity.TierPremium, "2885 E Desert Inn Rd", "89169", orb.Point{-115.1089, 36.1291}},
		{"Walmart Supercenter", "Walmart", entity.TierDiscount, "4505 W Charleston Blvd", "89102", orb.Point{-115.2087, 36.1580}},
		{"Whole Foods Market", "Amazon", entity.TierPremium, "8855 W Charleston Blvd", "89117", orb.Point{-115.2950, 36.1580}},
		{"Vons", "Albertsons", entity.TierPremium, "9120 W Sahara Ave", "89117", orb.Point{-115.2989, 36.1447}},
		{"Smith's Food & Drug", "Kroger", entity.TierPremium, "2211 N Rainbow Blvd", "89108", orb.Point{-115.2428, 36.1845}},
		{"WinCo Foods", "WinCo", entity.TierDiscount, "7231 Arroyo Crossing Pkwy", "89113", orb.Point{-115.1654, 36.0394}},
		{"Fresh Market", "Independent", entity.TierPremium, "9620 S Eastern Ave", "89123", orb.Point{-115.1183, 36.0394}},
		{"Lee's Sandwiches", "Lee's", entity.TierDiscount, "2620 S Decatur Blvd", "89102", orb.Point{-115.2087, 36.1291}},
		{"Sprouts Farmers Market", "Sprouts", entity.TierPremium, "7530 W Lake Mead Blvd", "89128", orb.Point{-115.2654, 36.2108}},
		{"Target", "Target", entity.TierMidTier, "8725 W Charleston Blvd", "89117", orb.Point{-115.2850, 36.1580}},
		{"Costco Wholesale", "Costco", entity.TierWarehouse, "801 S Pavilion Center Dr", "89144", orb.Point{-115.2989, 36.1447}},
		{"Sam's Club", "Walmart", entity.TierWarehouse, "4815 Boulder Hwy", "89121", orb.Point{-115.0654, 36.1002}},
		{"Trader Joe's", "Trader Joe's", entity.TierPremium, "2716 N Green Valley Pkwy", "89014", orb.Point{-115.0321, 36.1845}},
		{"Food 4 Less", "Kroger", entity.TierDiscount, "4855 Boulder Hwy", "89121", orb.Point{-115.0587, 36.1002}},
		{"Ranch Market", "Independent", entity.TierMidTier, "2901 Las Vegas Blvd S", "89109", orb.Point{-115.1654, 36.1291}},
		{"International Marketplace", "Independent", entity.TierPremium, "5000 Spring Mountain Rd", "89146", orb.Point{-115.2321, 36.1291}},
		{"99 Ranch Market", "99 Ranch", entity.TierPremium, "4275 Spring Mountain Rd", "89102", orb.Point{-115.1987, 36.1291}},
		{"Cardenas Markets", "Cardenas", entity.TierMidTier, "2710 N Las Vegas Blvd", "89030", orb.Point{-115.1654, 36.2108}},
		{"Mariana's Supermarket", "Independent", entity.TierMidTier, "3045 N Las Vegas Blvd", "89030", orb.Point{-115.1654, 36.2200}},
	}
}

func defaultRecipes() []RecipeTemplate {
	return []RecipeTemplate{
		{"Classic Spaghetti Marinara", []string{"Pantry Staples", "Fresh Produce", "Dairy & Eggs"}, "easy", 30, 4},
		{"Grilled Chicken Salad", []string{"Meat & Seafood", "Fresh Produce", "Pantry Staples"}, "medium", 25, 2},
		{"Beef Stir Fry", []string{"Meat & Seafood", "Fresh Produce", "Pantry Staples"}, "medium", 20, 4},
		{"Breakfast Sandwich", []string{"Dairy & Eggs", "Bakery", "Meat & Seafood"}, "easy", 10, 1},
		{"Vegetable Soup", []string{"Fresh Produce", "Pantry Staples"}, "easy", 45, 6},
	}
}

// Fixed vocabularies shared by the generators.
var (
	namePrefixes = []string{"", "Premium", "Organic", "Fresh", "Select", "Choice"}

	storeSpecialties = []string{
		"Fresh produce", "Organic foods", "International cuisine",
		"Bulk items", "Prepared foods", "Bakery", "Pharmacy",
		"Floral", "Seafood counter", "Meat department",
	}

	seasons = []entity.Season{entity.SeasonSpring, entity.SeasonSummer, entity.SeasonFall, entity.SeasonWinter}

	monthAbbrevs = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

	allergenVocabulary = []string{"milk", "eggs", "fish", "shellfish", "tree nuts", "peanuts", "wheat", "soybeans"}

	cuisineTypes = []string{"American", "Italian", "Mexican", "Asian", "Mediterranean"}

	mealTypes = []string{"breakfast", "lunch", "dinner", "snack"}
)

// seasonalCategory restricts seasonal availability records to produce.
const seasonalCategory = "Fresh Produce"

var defaultHours = entity.StoreHours{
	Monday:    "6:00 AM - 11:00 PM",
	Tuesday:   "6:00 AM - 11:00 PM",
	Wednesday: "6:00 AM - 11:00 PM",
	Thursday:  "6:00 AM - 11:00 PM",
	Friday:    "6:00 AM - 12:00 AM",
	Saturday:  "6:00 AM - 12:00 AM",
	Sunday:    "7:00 AM - 10:00 PM",
}
