package generator

import (
	"elasticart/internal/dataset"
	"elasticart/internal/domain/entity"

	"github.com/pkg/errors"
)

// RefreshDynamic re-rolls the dynamic fields of an existing dataset in
// place: inventory pricing, sale state and stock levels, plus a full
// regeneration of promotional offers. Stores, items, nutrition, seasonal
// data and recipes are left untouched.
func (g *Generator) RefreshDynamic(ds *dataset.Dataset) error {
	if len(ds.Stores) == 0 || len(ds.Items) == 0 {
		return errors.New("refresh requires previously generated stores and items")
	}

	tierByStore := make(map[string]entity.ChainTier, len(ds.Stores))
	for i := range ds.Stores {
		tierByStore[ds.Stores[i].StoreID] = ds.Stores[i].ChainTier
	}

	basePriceByItem := make(map[string]float64, len(ds.Items))
	for i := range ds.Items {
		basePriceByItem[ds.Items[i].ItemID] = ds.Items[i].BasePrice
	}

	for i := range ds.Inventory {
		rec := &ds.Inventory[i]

		tier, ok := tierByStore[rec.StoreID]
		if !ok {
			return errors.Errorf("inventory record %s references unknown store %s", rec.InventoryID, rec.StoreID)
		}
		base, ok := basePriceByItem[rec.ItemID]
		if !ok {
			return errors.Errorf("inventory record %s references unknown item %s", rec.InventoryID, rec.ItemID)
		}

		lo, hi := tierMultiplierRange(tier)
		rec.CurrentPrice = round2(base * g.uniform(lo, hi))

		rec.OnSale = g.rng.Float64() < 0.3
		rec.SalePrice = nil
		rec.SaleEndDate = nil
		if rec.OnSale {
			sale := round2(rec.CurrentPrice * g.uniform(0.7, 0.9))
			if sale >= rec.CurrentPrice {
				sale = round2(rec.CurrentPrice - 0.01)
			}
			end := g.now.AddDate(0, 0, g.intBetween(1, 14))
			rec.SalePrice = &sale
			rec.SaleEndDate = &end
		}

		rec.StockLevel = g.intBetween(5, 100)
		rec.StockStatus = g.stockStatus()
		rec.LastUpdated = g.now
		rec.PriceLastUpdated = g.now
	}

	ds.Promotions = g.GeneratePromotions(ds.Items, ds.Stores)

	return nil
}
