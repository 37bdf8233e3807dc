package elastic

import "elasticart/internal/dataset"

// Index mappings use lookup mode so the Agent Builder tools can enrich
// query results with LOOKUP JOINs across the grocery indices.
const lookupSettings = `"settings": {"index.mode": "lookup"}`

func indexMappings() map[string]string {
	return map[string]string{
		dataset.CollectionStores: `{
  ` + lookupSettings + `,
  "mappings": {
    "properties": {
      "store_id": {"type": "keyword"},
      "store_name": {"type": "text", "fields": {"keyword": {"type": "keyword"}}},
      "chain_name": {"type": "keyword"},
      "chain_tier": {"type": "keyword"},
      "address": {
        "properties": {
          "street": {"type": "text"},
          "city": {"type": "keyword"},
          "state": {"type": "keyword"},
          "zip_code": {"type": "keyword"},
          "coordinates": {"type": "geo_point"}
        }
      },
      "phone": {"type": "keyword"},
      "specialties": {"type": "keyword"}
    }
  }
}`,
		dataset.CollectionItems: `{
  ` + lookupSettings + `,
  "mappings": {
    "properties": {
      "item_id": {"type": "keyword"},
      "name": {"type": "text", "fields": {"keyword": {"type": "keyword"}}},
      "brand": {"type": "keyword"},
      "category": {"type": "keyword"},
      "sub_category": {"type": "keyword"},
      "description": {"type": "text"},
      "base_price": {"type": "double"},
      "unit_size": {"type": "keyword"},
      "unit_type": {"type": "keyword"},
      "barcode": {"type": "keyword"},
      "organic": {"type": "boolean"},
      "gluten_free": {"type": "boolean"},
      "vegan": {"type": "boolean"},
      "vegetarian": {"type": "boolean"},
      "dairy_free": {"type": "boolean"},
      "nut_free": {"type": "boolean"},
      "tags": {"type": "keyword"},
      "created_date": {"type": "date"}
    }
  }
}`,
		dataset.CollectionInventory: `{
  ` + lookupSettings + `,
  "mappings": {
    "properties": {
      "inventory_id": {"type": "keyword"},
      "store_id": {"type": "keyword"},
      "item_id": {"type": "keyword"},
      "current_price": {"type": "double"},
      "on_sale": {"type": "boolean"},
      "sale_price": {"type": "double"},
      "sale_end_date": {"type": "date"},
      "stock_level": {"type": "integer"},
      "stock_status": {"type": "keyword"},
      "seasonal_availability": {"type": "boolean"},
      "last_restocked": {"type": "date"},
      "last_updated": {"type": "date"},
      "price_last_updated": {"type": "date"}
    }
  }
}`,
		dataset.CollectionNutrition: `{
  ` + lookupSettings + `,
  "mappings": {
    "properties": {
      "item_id": {"type": "keyword"},
      "serving_size": {"type": "keyword"},
      "calories": {"type": "integer"},
      "total_fat": {"type": "double"},
      "saturated_fat": {"type": "double"},
      "cholesterol": {"type": "integer"},
      "sodium": {"type": "integer"},
      "total_carbs": {"type": "double"},
      "dietary_fiber": {"type": "double"},
      "total_sugars": {"type": "double"},
      "protein": {"type": "double"},
      "ingredients": {"type": "text"},
      "allergens": {"type": "keyword"},
      "organic": {"type": "boolean"},
      "gluten_free": {"type": "boolean"},
      "vegan": {"type": "boolean"},
      "vegetarian": {"type": "boolean"},
      "dairy_free": {"type": "boolean"},
      "nut_free": {"type": "boolean"}
    }
  }
}`,
		dataset.CollectionPromotions: `{
  ` + lookupSettings + `,
  "mappings": {
    "properties": {
      "offer_id": {"type": "keyword"},
      "item_id": {"type": "keyword"},
      "store_id": {"type": "keyword"},
      "offer_type": {"type": "keyword"},
      "discount_percent": {"type": "integer"},
      "fixed_discount": {"type": "double"},
      "min_quantity": {"type": "integer"},
      "description": {"type": "text"},
      "start_date": {"type": "date"},
      "end_date": {"type": "date"},
      "conditions": {"type": "text"},
      "active": {"type": "boolean"}
    }
  }
}`,
		dataset.CollectionSeasonal: `{
  ` + lookupSettings + `,
  "mappings": {
    "properties": {
      "item_id": {"type": "keyword"},
      "season": {"type": "keyword"},
      "availability_score": {"type": "double"},
      "price_multiplier": {"type": "double"},
      "peak_months": {"type": "keyword"},
      "description": {"type": "text"}
    }
  }
}`,
		dataset.CollectionRecipes: `{
  ` + lookupSettings + `,
  "mappings": {
    "properties": {
      "recipe_id": {"type": "keyword"},
      "recipe_name": {"type": "text", "fields": {"keyword": {"type": "keyword"}}},
      "primary_item_id": {"type": "keyword"},
      "ingredient_ids": {"type": "keyword"},
      "difficulty": {"type": "keyword"},
      "prep_time": {"type": "integer"},
      "cook_time": {"type": "integer"},
      "total_time": {"type": "integer"},
      "servings": {"type": "integer"},
      "cuisine_type": {"type": "keyword"},
      "meal_type": {"type": "keyword"},
      "description": {"type": "text"},
      "instructions": {"type": "text"},
      "tags": {"type": "keyword"}
    }
  }
}`,
	}
}
