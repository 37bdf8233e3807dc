package dataset

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Read loads previously written artifacts from dir. Missing files leave
// the corresponding collection nil so callers can work with partial
// datasets (e.g. a price refresh only needs stores, items and inventory).
func Read(dir string) (*Dataset, error) {
	ds := &Dataset{}

	if err := readCollection(dir, CollectionStores, &ds.Stores); err != nil {
		return nil, err
	}
	if err := readCollection(dir, CollectionItems, &ds.Items); err != nil {
		return nil, err
	}
	if err := readCollection(dir, CollectionInventory, &ds.Inventory); err != nil {
		return nil, err
	}
	if err := readCollection(dir, CollectionNutrition, &ds.Nutrition); err != nil {
		return nil, err
	}
	if err := readCollection(dir, CollectionPromotions, &ds.Promotions); err != nil {
		return nil, err
	}
	if err := readCollection(dir, CollectionSeasonal, &ds.Seasonal); err != nil {
		return nil, err
	}
	if err := readCollection(dir, CollectionRecipes, &ds.Recipes); err != nil {
		return nil, err
	}

	return ds, nil
}

func readCollection[T any](dir, name string, out *[]T) error {
	path := filepath.Join(dir, FileName(name))

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "read %s", path)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrapf(err, "parse %s", path)
	}

	return nil
}
