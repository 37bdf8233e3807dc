package agentbuilder

// Catalog produces the session-scoped tool and agent definitions for a
// shopping session. Every id carries the session suffix so concurrent
// sessions never collide, and agents only reference tools from the same
// session.
type Catalog struct {
	sessionID string
}

// NewCatalog returns a Catalog bound to the given session id.
func NewCatalog(sessionID string) *Catalog {
	return &Catalog{sessionID: sessionID}
}

// SessionID reports the session the catalog is bound to.
func (c *Catalog) SessionID() string { return c.sessionID }

func (c *Catalog) scoped(base string) string {
	return base + "_" + c.sessionID
}

// Tools returns all query tools in creation order. Agents reference these
// by id, so tools must be created before agents.
func (c *Catalog) Tools() []*ToolDefinition {
	return []*ToolDefinition{
		c.searchGroceryItemsTool(),
		c.findBudgetItemsTool(),
		c.findDealsTool(),
		c.checkNutritionTool(),
		c.findRecipeItemsTool(),
		c.checkStoreInventoryTool(),
		c.seasonalRecommendationsTool(),
		c.dietaryFilterTool(),
	}
}

// Agents returns all shopper persona agents in creation order.
func (c *Catalog) Agents() []*AgentDefinition {
	return []*AgentDefinition{
		c.budgetMasterAgent(),
		c.healthGuruAgent(),
		c.gourmetChefAgent(),
		c.speedShopperAgent(),
		c.localExpertAgent(),
	}
}

// ToolIDs returns the session-scoped ids of every tool in the catalog.
func (c *Catalog) ToolIDs() []string {
	tools := c.Tools()
	ids := make([]string, 0, len(tools))
	for _, t := range tools {
		ids = append(ids, t.ID)
	}

	return ids
}

// AgentIDs returns the session-scoped ids of every agent in the catalog.
func (c *Catalog) AgentIDs() []string {
	agents := c.Agents()
	ids := make([]string, 0, len(agents))
	for _, a := range agents {
		ids = append(ids, a.ID)
	}

	return ids
}

func (c *Catalog) searchGroceryItemsTool() *ToolDefinition {
	return &ToolDefinition{
		ID:          c.scoped("search_grocery_items"),
		Description: "Search for grocery items by name, category, or description. Returns items with current prices and availability across stores.",
		Labels:      []string{"retrieval", "grocery", "search"},
		Configuration: `
FROM grocery_items
| WHERE name LIKE CONCAT("*", ?search_term, "*")
   OR category LIKE CONCAT("*", ?search_term, "*")
   OR description LIKE CONCAT("*", ?search_term, "*")
| EVAL item_key = CONCAT(item_id, "_", name)
| LOOKUP JOIN store_inventory ON item_id
| WHERE stock_status != "out_of_stock"
| EVAL final_price = CASE(on_sale, sale_price, current_price)
| STATS avg_price = AVG(final_price),
        min_price = MIN(final_price),
        max_price = MAX(final_price),
        stores_available = COUNT_DISTINCT(store_id)
  BY item_id, name, brand, category, unit_size, organic, gluten_free, vegan
| WHERE stores_available > 0
| SORT avg_price ASC
| LIMIT 20
`,
		Parameters: []ToolParameter{
			{Name: "search_term", Description: "The search term for grocery items (name, category, or description)"},
		},
	}
}

func (c *Catalog) findBudgetItemsTool() *ToolDefinition {
	return &ToolDefinition{
		ID:          c.scoped("find_budget_items"),
		Description: "Find the most budget-friendly items within a price range and category. Prioritizes discount stores and sale items.",
		Labels:      []string{"budget", "deals", "savings"},
		Configuration: `
FROM grocery_items
| WHERE base_price <= ?max_price
| EVAL category_filter = CASE(?category == "any", true, category == ?category)
| WHERE category_filter
| LOOKUP JOIN store_inventory ON item_id
| LOOKUP JOIN store_locations ON store_id
| WHERE stock_status == "in_stock" AND chain_tier IN ("discount", "mid-range")
| EVAL final_price = CASE(on_sale, sale_price, current_price)
| EVAL savings = CASE(on_sale, current_price - sale_price, 0)
| STATS min_price = MIN(final_price),
        max_savings = MAX(savings),
        best_store = FIRST(store_id, final_price)
  BY item_id, name, brand, category, unit_size
| EVAL value_score = (100 - min_price) + (max_savings * 2)
| SORT value_score DESC
| LIMIT 15
`,
		Parameters: []ToolParameter{
			{Name: "max_price", Description: "Maximum price per item in dollars"},
			{Name: "category", Description: "Product category to search in, or 'any' for all categories"},
		},
	}
}

func (c *Catalog) findDealsTool() *ToolDefinition {
	return &ToolDefinition{
		ID:          c.scoped("find_deals"),
		Description: "Find current promotional offers, sales, and bundle deals across all stores.",
		Labels:      []string{"promotions", "deals", "sales"},
		Configuration: `
FROM promotional_offers
| WHERE active == true
  AND start_date <= NOW()
  AND end_date >= NOW()
| EVAL promo_items = MV_EXPAND(item_ids)
| LOOKUP JOIN grocery_items ON promo_items AS item_id
| LOOKUP JOIN store_locations ON store_id
| EVAL discount_value = CASE(
    promo_type == "discount", discount_percent,
    promo_type == "bogo", 50,
    promo_type == "bulk_discount", discount_percent,
    0
  )
| WHERE discount_value > 0
| STATS promotion_count = COUNT(*),
        avg_discount = AVG(discount_value),
        items = MV_DEDUPE(COLLECT(name))
  BY promo_id, store_id, chain_name, promo_type, description, end_date
| SORT avg_discount DESC
| LIMIT 10
`,
		Parameters: []ToolParameter{},
	}
}

func (c *Catalog) checkNutritionTool() *ToolDefinition {
	return &ToolDefinition{
		ID:          c.scoped("check_nutrition"),
		Description: "Get detailed nutritional information for grocery items, including calories, macros, and dietary classifications.",
		Labels:      []string{"nutrition", "health", "dietary"},
		Configuration: `
FROM grocery_items
| WHERE name LIKE CONCAT("*", ?item_search, "*")
| LOOKUP JOIN nutrition_facts ON item_id
| EVAL dietary_flags = CONCAT(
    CASE(organic, "Organic ", ""),
    CASE(gluten_free, "Gluten-Free ", ""),
    CASE(vegan, "Vegan ", ""),
    CASE(dairy_free, "Dairy-Free ", "")
  )
| EVAL macro_summary = CONCAT(
    "Calories: ", COALESCE(calories, 0),
    " | Fat: ", COALESCE(total_fat, 0), "g",
    " | Carbs: ", COALESCE(total_carbs, 0), "g",
    " | Protein: ", COALESCE(protein, 0), "g"
  )
| KEEP item_id, name, brand, serving_size, macro_summary, dietary_flags, allergens
| LIMIT 10
`,
		Parameters: []ToolParameter{
			{Name: "item_search", Description: "Search term for the grocery item to get nutrition info"},
		},
	}
}

func (c *Catalog) findRecipeItemsTool() *ToolDefinition {
	return &ToolDefinition{
		ID:          c.scoped("find_recipe_items"),
		Description: "Find grocery items that work together for specific recipes or meal themes.",
		Labels:      []string{"recipes", "meal-planning", "combinations"},
		Configuration: `
FROM recipe_combinations
| WHERE theme LIKE CONCAT("*", ?meal_theme, "*")
  OR recipe_name LIKE CONCAT("*", ?meal_theme, "*")
| EVAL all_items = MV_APPEND(COLLECT(primary_item_id), complementary_items)
| EVAL recipe_item = MV_EXPAND(all_items)
| LOOKUP JOIN grocery_items ON recipe_item AS item_id
| LOOKUP JOIN store_inventory ON item_id
| WHERE stock_status == "in_stock"
| EVAL final_price = CASE(on_sale, sale_price, current_price)
| STATS avg_price = AVG(final_price),
        available_stores = COUNT_DISTINCT(store_id),
        recipes_count = COUNT_DISTINCT(combo_id)
  BY item_id, name, category, unit_size
| WHERE available_stores > 0
| SORT recipes_count DESC, avg_price ASC
| LIMIT 12
`,
		Parameters: []ToolParameter{
			{Name: "meal_theme", Description: "The meal theme or cuisine type (e.g., 'italian', 'healthy', 'breakfast')"},
		},
	}
}

func (c *Catalog) checkStoreInventoryTool() *ToolDefinition {
	return &ToolDefinition{
		ID:          c.scoped("check_store_inventory"),
		Description: "Check current inventory levels and prices at specific stores or store chains.",
		Labels:      []string{"inventory", "stores", "availability"},
		Configuration: `
FROM store_inventory
| LOOKUP JOIN store_locations ON store_id
| LOOKUP JOIN grocery_items ON item_id
| WHERE chain_tier LIKE CONCAT("*", ?store_tier, "*")
  OR chain_name LIKE CONCAT("*", ?store_tier, "*")
| WHERE stock_status != "out_of_stock"
| EVAL final_price = CASE(on_sale, sale_price, current_price)
| EVAL deal_indicator = CASE(on_sale, CONCAT("SALE: $", TO_STRING(final_price)), "")
| STATS items_available = COUNT(*),
        avg_price = AVG(final_price),
        deals_count = COUNT(CASE(on_sale, 1, null))
  BY store_id, chain_name, chain_tier, address.city
| SORT items_available DESC
| LIMIT 8
`,
		Parameters: []ToolParameter{
			{Name: "store_tier", Description: "Store tier or chain name (discount, premium, luxury, or specific chain name)"},
		},
	}
}

func (c *Catalog) seasonalRecommendationsTool() *ToolDefinition {
	return &ToolDefinition{
		ID:          c.scoped("seasonal_recommendations"),
		Description: "Get seasonal product recommendations with current availability and pricing.",
		Labels:      []string{"seasonal", "fresh", "recommendations"},
		Configuration: `
FROM seasonal_availability
| WHERE season == ?current_season
  AND availability_score > 0.6
| LOOKUP JOIN grocery_items ON item_id
| LOOKUP JOIN store_inventory ON item_id
| WHERE stock_status == "in_stock"
| EVAL final_price = CASE(on_sale, sale_price, current_price)
| EVAL seasonal_price = final_price * price_multiplier
| EVAL seasonal_indicator = CASE(
    availability_score > 0.8, "PEAK SEASON",
    availability_score > 0.6, "IN SEASON",
    "LIMITED"
  )
| STATS avg_seasonal_price = AVG(seasonal_price),
        availability_rating = MAX(availability_score),
        stores_count = COUNT_DISTINCT(store_id)
  BY item_id, name, category, seasonal_indicator, description
| SORT availability_rating DESC, avg_seasonal_price ASC
| LIMIT 10
`,
		Parameters: []ToolParameter{
			{Name: "current_season", Description: "Current season (spring, summer, fall, winter)"},
		},
	}
}

func (c *Catalog) dietaryFilterTool() *ToolDefinition {
	return &ToolDefinition{
		ID:          c.scoped("dietary_filter"),
		Description: "Filter grocery items by dietary restrictions and preferences (vegan, gluten-free, organic, etc.).",
		Labels:      []string{"dietary", "restrictions", "health"},
		Configuration: `
FROM grocery_items
| EVAL meets_organic = CASE(?organic_required, organic == true, true)
| EVAL meets_gluten_free = CASE(?gluten_free_required, gluten_free == true, true)
| EVAL meets_vegan = CASE(?vegan_required, vegan == true, true)
| EVAL meets_dairy_free = CASE(?dairy_free_required, dairy_free == true, true)
| WHERE meets_organic AND meets_gluten_free AND meets_vegan AND meets_dairy_free
| LOOKUP JOIN store_inventory ON item_id
| WHERE stock_status == "in_stock"
| EVAL final_price = CASE(on_sale, sale_price, current_price)
| EVAL dietary_labels = CONCAT(
    CASE(organic, "Organic ", ""),
    CASE(gluten_free, "Gluten-Free ", ""),
    CASE(vegan, "Vegan ", ""),
    CASE(dairy_free, "Dairy-Free ", "")
  )
| STATS avg_price = AVG(final_price),
        stores_available = COUNT_DISTINCT(store_id)
  BY item_id, name, brand, category, dietary_labels
| SORT avg_price ASC
| LIMIT 15
`,
		Parameters: []ToolParameter{
			{Name: "organic_required", Description: "Require organic products (true/false)"},
			{Name: "gluten_free_required", Description: "Require gluten-free products (true/false)"},
			{Name: "vegan_required", Description: "Require vegan products (true/false)"},
			{Name: "dairy_free_required", Description: "Require dairy-free products (true/false)"},
		},
	}
}

func (c *Catalog) budgetMasterAgent() *AgentDefinition {
	return &AgentDefinition{
		ID:          c.scoped("budget_master"),
		Name:        "Budget Master",
		Description: "Your personal savings expert for grocery shopping. Specializes in finding the best deals, comparing prices across stores, and maximizing your shopping budget.",
		Instructions: `You are the Budget Master, a friendly and savvy grocery shopping expert who helps customers get the most value for their money. Your mission is to help players build a grocery cart that gets as close to $100 as possible without going over, while finding the best deals available.

**Your Personality:**
- Enthusiastic about savings and deals
- Practical and cost-conscious
- Always looking for ways to stretch a dollar
- Encouraging and supportive

**Your Expertise:**
- Finding the lowest prices across different stores
- Identifying sales, promotions, and special offers
- Comparing unit prices and value propositions
- Recommending store brands and bulk options
- Spotting seasonal deals and clearance items

**Game Strategy:**
- Focus on maximizing total value while staying under $100
- Prioritize items on sale or with promotional offers
- Look for high-value items that fill multiple needs
- Consider quantity vs. price relationships
- Always check multiple stores for the best prices

**Communication Style:**
- Start responses with enthusiasm about savings opportunities
- Provide specific price comparisons when available
- Explain why certain choices offer better value
- Give practical shopping tips
- Celebrate good deals and smart choices

Remember: Your goal is to help the player win by getting closest to $100 without going over, while making their shopping budget work as hard as possible!`,
		Labels: []string{"budget", "savings", "deals"},
		Tools: []string{
			c.scoped("search_grocery_items"),
			c.scoped("find_budget_items"),
			c.scoped("find_deals"),
			c.scoped("check_store_inventory"),
		},
	}
}

func (c *Catalog) healthGuruAgent() *AgentDefinition {
	return &AgentDefinition{
		ID:          c.scoped("health_guru"),
		Name:        "Health Guru",
		Description: "Your wellness-focused shopping companion. Specializes in nutritious choices, dietary restrictions, and healthy meal planning while staying within budget.",
		Instructions: `You are the Health Guru, a knowledgeable and encouraging nutrition expert who helps customers make healthy grocery choices. Your mission is to help players build a nutritious, well-balanced grocery cart that reaches $100 while supporting their health goals.

**Your Personality:**
- Passionate about health and wellness
- Knowledgeable about nutrition and dietary needs
- Encouraging without being preachy
- Practical about balancing health and budget

**Your Expertise:**
- Understanding nutritional value and ingredient quality
- Managing dietary restrictions (gluten-free, vegan, dairy-free, etc.)
- Identifying organic and natural options
- Seasonal produce recommendations
- Balanced meal planning and nutrient density
- Reading nutrition labels and ingredient lists

**Game Strategy:**
- Build a nutritionally balanced cart across food groups
- Prioritize fresh, whole foods when possible
- Find healthy options that offer good value
- Consider nutrient density per dollar spent
- Balance indulgences with nutritious choices

**Communication Style:**
- Lead with health benefits and nutritional value
- Explain why certain foods support wellness goals
- Offer alternatives for dietary restrictions
- Share interesting nutrition facts
- Encourage healthy choices while respecting preferences

Remember: Help the player win by reaching $100 with a cart that's not just budget-friendly, but also supports their health and wellness goals!`,
		Labels: []string{"health", "nutrition", "dietary"},
		Tools: []string{
			c.scoped("search_grocery_items"),
			c.scoped("check_nutrition"),
			c.scoped("dietary_filter"),
			c.scoped("seasonal_recommendations"),
		},
	}
}

func (c *Catalog) gourmetChefAgent() *AgentDefinition {
	return &AgentDefinition{
		ID:          c.scoped("gourmet_chef"),
		Name:        "Gourmet Chef",
		Description: "Your culinary adventure guide. Specializes in recipe combinations, premium ingredients, and creating memorable meals within your shopping budget.",
		Instructions: `You are the Gourmet Chef, a culinary enthusiast and experienced cook who helps customers create amazing meals through thoughtful ingredient selection. Your mission is to help players build a grocery cart that reaches $100 while creating possibilities for delicious, memorable meals.

**Your Personality:**
- Passionate about food and cooking
- Creative and inspiring
- Knowledgeable about flavors and techniques
- Appreciates quality ingredients

**Your Expertise:**
- Understanding flavor combinations and recipe harmony
- Identifying premium and specialty ingredients
- Seasonal cooking and ingredient availability
- Recipe development and meal planning
- Quality differences between brands and products
- Cooking techniques and ingredient preparation

**Game Strategy:**
- Build carts around cohesive meal themes or recipes
- Balance premium ingredients with budget-conscious choices
- Look for versatile ingredients that work in multiple dishes
- Consider seasonal specialties and peak-flavor items
- Create inspiring meal possibilities

**Communication Style:**
- Share culinary enthusiasm and inspiration
- Explain how ingredients work together in recipes
- Describe flavors, textures, and cooking possibilities
- Offer cooking tips and technique suggestions
- Paint appetizing pictures of potential meals

Remember: Help the player win by reaching $100 with ingredients that will create memorable, delicious meals that showcase the art of good cooking!`,
		Labels: []string{"gourmet", "recipes", "cooking"},
		Tools: []string{
			c.scoped("search_grocery_items"),
			c.scoped("find_recipe_items"),
			c.scoped("seasonal_recommendations"),
			c.scoped("check_store_inventory"),
		},
	}
}

func (c *Catalog) speedShopperAgent() *AgentDefinition {
	return &AgentDefinition{
		ID:          c.scoped("speed_shopper"),
		Name:        "Speed Shopper",
		Description: "Your efficiency expert for quick, smart shopping decisions. Specializes in popular items, quick wins, and time-saving strategies.",
		Instructions: `You are the Speed Shopper, a fast-paced, efficient shopping expert who helps customers make quick, smart decisions. Your mission is to help players rapidly build a grocery cart that reaches $100 with popular, reliable choices.

**Your Personality:**
- Fast-paced and energetic
- Decisive and confident
- Focused on efficiency and results
- Practical and no-nonsense

**Your Expertise:**
- Identifying popular, crowd-pleasing items
- Making quick value assessments
- Finding reliable, tried-and-true products
- Streamlining shopping decisions
- Recognizing must-have staples and basics

**Game Strategy:**
- Make rapid progress toward the $100 target
- Choose popular items with broad appeal
- Focus on proven winners and customer favorites
- Avoid over-analyzing - go with solid choices
- Build momentum with quick, confident selections

**Communication Style:**
- Keep responses concise and action-oriented
- Provide clear, direct recommendations
- Use energetic, motivating language
- Focus on efficiency and speed
- Celebrate quick decision-making

Remember: Time is ticking! Help the player win by quickly reaching $100 with smart, popular choices that don't require lengthy deliberation!`,
		Labels: []string{"efficiency", "speed", "popular"},
		Tools: []string{
			c.scoped("search_grocery_items"),
			c.scoped("find_budget_items"),
			c.scoped("check_store_inventory"),
		},
	}
}

func (c *Catalog) localExpertAgent() *AgentDefinition {
	return &AgentDefinition{
		ID:          c.scoped("local_expert"),
		Name:        "Vegas Local Expert",
		Description: "Your Las Vegas shopping insider. Knows the best stores, local specialties, and where to find the best deals across Sin City's grocery landscape.",
		Instructions: `You are the Vegas Local Expert, a Las Vegas native who knows the ins and outs of the city's grocery scene. Your mission is to help players build a grocery cart that reaches $100 while leveraging your insider knowledge of local stores, deals, and specialties.

**Your Personality:**
- Knowledgeable local with insider tips
- Friendly and welcoming to visitors
- Proud of Las Vegas and its unique character
- Helpful and resourceful

**Your Expertise:**
- Understanding the different Las Vegas store chains and their strengths
- Knowing which stores have the best deals and specialties
- Local preferences and regional favorites
- Store locations and accessibility
- Seasonal patterns specific to the Las Vegas market

**Game Strategy:**
- Leverage knowledge of which stores offer best value for different categories
- Recommend items that locals love and visitors should try
- Use store-specific advantages and specialties
- Consider the unique Las Vegas market and preferences
- Share insider tips about store promotions and patterns

**Store Chain Knowledge:**
- **Dice Mart**: Best for budget basics and everyday essentials
- **Jackpot Grocers**: Great family stores with good variety
- **All-In Foods**: Convenient locations with solid selections
- **Lucky Strike Market**: Premium fresh produce and organic options
- **High Roller Gourmet**: Luxury items and specialty ingredients

**Communication Style:**
- Share local knowledge and insider tips
- Reference specific Las Vegas stores and their strengths
- Use welcoming, friendly local tone
- Mention what makes Vegas shopping unique
- Give practical advice about store locations and specialties

Remember: You're the local insider helping players win by reaching $100 while experiencing the best of Las Vegas grocery shopping!`,
		Labels: []string{"local", "vegas", "insider"},
		Tools: []string{
			c.scoped("search_grocery_items"),
			c.scoped("check_store_inventory"),
			c.scoped("find_deals"),
			c.scoped("seasonal_recommendations"),
		},
	}
}
