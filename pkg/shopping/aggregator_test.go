package shopping

import (
	"math"
	"testing"

	"eng-backend/entities"

	"github.com/google/uuid"
)

func gramsEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func dayType(dt DayType) *string {
	s := string(dt)
	return &s
}

func mealWith(dt *string, lines ...*entities.MealFoodItem) *entities.Meal {
	return &entities.Meal{ID: uuid.New(), DayType: dt, FoodItems: lines}
}

func line(food *entities.FoodItem, quantity float64, unit string) *entities.MealFoodItem {
	return &entities.MealFoodItem{
		ID:         uuid.New(),
		FoodItemID: food.ID,
		Quantity:   quantity,
		Unit:       unit,
		FoodItem:   food,
	}
}

func foodItem(name string, servingSizeG *float64) *entities.FoodItem {
	return &entities.FoodItem{ID: uuid.New(), FoodName: name, ServingSizeG: servingSizeG}
}

func servingSize(g float64) *float64 { return &g }

func TestBuildShoppingListWorkedExample(t *testing.T) {
	// One training meal with 200g chicken, one rest meal with 1 serving of
	// rice at 150g per serving; 4 training days and 3 rest days.
	chicken := foodItem("Chicken", nil)
	rice := foodItem("Rice", servingSize(150))

	meals := []*entities.Meal{
		mealWith(dayType(DayTypeTraining), line(chicken, 200, "g")),
		mealWith(dayType(DayTypeRest), line(rice, 1, "serving")),
	}
	frequencies := []DayTypeFrequency{
		{DayType: DayTypeTraining, Frequency: 4},
		{DayType: DayTypeRest, Frequency: 3},
	}

	items := BuildShoppingList(meals, frequencies)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].FoodName != "Chicken" || items[1].FoodName != "Rice" {
		t.Fatalf("expected [Chicken, Rice], got [%s, %s]", items[0].FoodName, items[1].FoodName)
	}
	if !gramsEqual(items[0].TotalGrams, 800) {
		t.Fatalf("expected 800g chicken, got %v", items[0].TotalGrams)
	}
	if !gramsEqual(items[1].TotalGrams, 450) {
		t.Fatalf("expected 450g rice, got %v", items[1].TotalGrams)
	}
}

func TestBuildShoppingListAllZeroFrequenciesIsEmpty(t *testing.T) {
	meals := []*entities.Meal{
		mealWith(dayType(DayTypeTraining), line(foodItem("Oats", nil), 100, "g")),
	}
	items := BuildShoppingList(meals, []DayTypeFrequency{{DayType: DayTypeTraining, Frequency: 0}})
	if len(items) != 0 {
		t.Fatalf("expected empty list, got %d items", len(items))
	}
}

func TestBuildShoppingListSkipsMealsWithoutDayType(t *testing.T) {
	oats := foodItem("Oats", nil)
	meals := []*entities.Meal{
		mealWith(nil, line(oats, 100, "g")),
		mealWith(dayType(DayTypeTraining), line(foodItem("Eggs", servingSize(60)), 2, "serving")),
	}
	frequencies := []DayTypeFrequency{{DayType: DayTypeTraining, Frequency: 7}}

	items := BuildShoppingList(meals, frequencies)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].FoodName == "Oats" {
		t.Fatalf("untyped meal leaked into totals")
	}
}

func TestBuildShoppingListAdditivityAcrossDayTypes(t *testing.T) {
	// Same food in two meals with different day types: total is qA*fA + qB*fB.
	oats := foodItem("Oats", nil)
	meals := []*entities.Meal{
		mealWith(dayType(DayTypeTraining), line(oats, 80, "g")),
		mealWith(dayType(DayTypeRest), line(oats, 50, "g")),
	}
	frequencies := []DayTypeFrequency{
		{DayType: DayTypeTraining, Frequency: 4},
		{DayType: DayTypeRest, Frequency: 3},
	}

	items := BuildShoppingList(meals, frequencies)
	if len(items) != 1 {
		t.Fatalf("expected 1 deduplicated item, got %d", len(items))
	}
	if !gramsEqual(items[0].TotalGrams, 80*4+50*3) {
		t.Fatalf("expected %v, got %v", float64(80*4+50*3), items[0].TotalGrams)
	}
}

func TestBuildShoppingListUnitConversion(t *testing.T) {
	// Non-gram unit without a serving size falls back to treating the raw
	// quantity as grams.
	noServing := foodItem("Protein Powder", nil)
	withServing := foodItem("Bread", servingSize(40))
	meals := []*entities.Meal{
		mealWith(dayType(DayTypeTraining),
			line(noServing, 30, "scoop"),
			line(withServing, 2, "slice"),
		),
	}
	frequencies := []DayTypeFrequency{{DayType: DayTypeTraining, Frequency: 1}}

	items := BuildShoppingList(meals, frequencies)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	for _, item := range items {
		switch item.FoodName {
		case "Protein Powder":
			if !gramsEqual(item.TotalGrams, 30) {
				t.Fatalf("expected fallback 30g, got %v", item.TotalGrams)
			}
		case "Bread":
			if !gramsEqual(item.TotalGrams, 80) {
				t.Fatalf("expected 2*40g, got %v", item.TotalGrams)
			}
		}
	}
}

func TestBuildShoppingListSkipsMissingFoodItems(t *testing.T) {
	broken := &entities.MealFoodItem{ID: uuid.New(), Quantity: 100, Unit: "g", FoodItem: nil}
	meals := []*entities.Meal{
		mealWith(dayType(DayTypeTraining), broken, line(foodItem("Rice", nil), 50, "g")),
	}
	frequencies := []DayTypeFrequency{{DayType: DayTypeTraining, Frequency: 1}}

	items := BuildShoppingList(meals, frequencies)
	if len(items) != 1 {
		t.Fatalf("expected the malformed line to be skipped, got %d items", len(items))
	}
}

func TestBuildShoppingListSortedByFoodName(t *testing.T) {
	meals := []*entities.Meal{
		mealWith(dayType(DayTypeTraining),
			line(foodItem("banana", nil), 100, "g"),
			line(foodItem("Apple", nil), 100, "g"),
			line(foodItem("Carrot", nil), 100, "g"),
		),
	}
	frequencies := []DayTypeFrequency{{DayType: DayTypeTraining, Frequency: 1}}

	items := BuildShoppingList(meals, frequencies)
	want := []string{"Apple", "banana", "Carrot"}
	for i, name := range want {
		if items[i].FoodName != name {
			t.Fatalf("expected order %v, got position %d = %s", want, i, items[i].FoodName)
		}
	}
}

func TestBuildShoppingListIsIdempotent(t *testing.T) {
	chicken := foodItem("Chicken", nil)
	rice := foodItem("Rice", servingSize(150))
	meals := []*entities.Meal{
		mealWith(dayType(DayTypeTraining), line(chicken, 200, "g"), line(rice, 1, "serving")),
		mealWith(dayType(DayTypeLowCarb), line(chicken, 150, "g")),
	}
	frequencies := []DayTypeFrequency{
		{DayType: DayTypeTraining, Frequency: 4},
		{DayType: DayTypeLowCarb, Frequency: 2},
	}

	first := BuildShoppingList(meals, frequencies)
	second := BuildShoppingList(meals, frequencies)
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("item %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestBuildShoppingListCapturesFirstSeenUnit(t *testing.T) {
	rice := foodItem("Rice", servingSize(150))
	meals := []*entities.Meal{
		mealWith(dayType(DayTypeTraining), line(rice, 1, "serving")),
		mealWith(dayType(DayTypeRest), line(rice, 100, "g")),
	}
	frequencies := []DayTypeFrequency{
		{DayType: DayTypeTraining, Frequency: 1},
		{DayType: DayTypeRest, Frequency: 1},
	}

	items := BuildShoppingList(meals, frequencies)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].OriginalUnit != "serving" {
		t.Fatalf("expected first-seen unit %q, got %q", "serving", items[0].OriginalUnit)
	}
}
