package shopping

import (
	"sort"
	"strings"

	"eng-backend/entities"
)

// CartItem is the aggregation result for one distinct food item: the total
// grams needed across every meal occurrence in the planning week.
type CartItem struct {
	FoodItemID   string
	FoodName     string
	TotalGrams   float64
	OriginalUnit string
}

// BuildShoppingList aggregates a plan's meals into a deduplicated,
// frequency-weighted ingredient list. It is a pure function of the plan
// snapshot and the frequency entries: no hidden state, same inputs give the
// same output.
//
// Meals without a day type are skipped, as are meals whose day type has
// frequency 0 (absent from the mapping counts as 0). Lines with a missing
// food item are skipped rather than failing the whole pass. Quantities in
// non-gram units are converted through the food item's serving size when one
// exists; without a serving size the raw quantity is taken as grams.
func BuildShoppingList(meals []*entities.Meal, frequencies []DayTypeFrequency) []CartItem {
	lookup := frequencyLookup(frequencies)
	totals := make(map[string]*CartItem)

	for _, meal := range meals {
		if meal == nil || meal.DayType == nil {
			continue
		}
		frequency := lookup[DayType(*meal.DayType)]
		if frequency == 0 {
			continue
		}

		for _, line := range meal.FoodItems {
			if line == nil || line.FoodItem == nil {
				continue
			}
			food := line.FoodItem

			grams := line.Quantity
			if line.Unit != "g" && food.ServingSizeG != nil {
				grams = line.Quantity * *food.ServingSizeG
			}
			weighted := grams * float64(frequency)

			id := food.ID.String()
			item, ok := totals[id]
			if !ok {
				item = &CartItem{
					FoodItemID:   id,
					FoodName:     food.FoodName,
					OriginalUnit: line.Unit,
				}
				totals[id] = item
			}
			item.TotalGrams += weighted
		}
	}

	items := make([]CartItem, 0, len(totals))
	for _, item := range totals {
		items = append(items, *item)
	}
	sort.Slice(items, func(i, j int) bool {
		a, b := strings.ToLower(items[i].FoodName), strings.ToLower(items[j].FoodName)
		if a == b {
			return items[i].FoodItemID < items[j].FoodItemID
		}
		return a < b
	})
	return items
}
