package shopping

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"eng-backend/domain"
	"eng-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type inMemoryShoppingRepository struct {
	plans       map[string]*entities.NutritionPlan
	assignments map[string]*entities.AssignedPlan
	workouts    map[string][]*entities.Workout
	failFetches bool
}

func newInMemoryShoppingRepository() *inMemoryShoppingRepository {
	return &inMemoryShoppingRepository{
		plans:       make(map[string]*entities.NutritionPlan),
		assignments: make(map[string]*entities.AssignedPlan),
		workouts:    make(map[string][]*entities.Workout),
	}
}

func (r *inMemoryShoppingRepository) GetPlanWithMeals(_ context.Context, planID string) (*entities.NutritionPlan, error) {
	if r.failFetches {
		return nil, errors.New("connection refused")
	}
	plan, ok := r.plans[planID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return plan, nil
}

func (r *inMemoryShoppingRepository) GetLatestAssignment(_ context.Context, athleteID string) (*entities.AssignedPlan, error) {
	if r.failFetches {
		return nil, errors.New("connection refused")
	}
	assignment, ok := r.assignments[athleteID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return assignment, nil
}

func (r *inMemoryShoppingRepository) GetWorkoutsByTemplate(_ context.Context, templateID string) ([]*entities.Workout, error) {
	if r.failFetches {
		return nil, errors.New("connection refused")
	}
	return r.workouts[templateID], nil
}

type inMemoryPreferenceStore struct {
	values map[string]string
}

func newInMemoryPreferenceStore() *inMemoryPreferenceStore {
	return &inMemoryPreferenceStore{values: make(map[string]string)}
}

func (s *inMemoryPreferenceStore) Get(_ context.Context, userID string, key string) (string, bool, error) {
	v, ok := s.values[userID+"/"+key]
	return v, ok, nil
}

func (s *inMemoryPreferenceStore) Set(_ context.Context, userID string, key string, value string) error {
	s.values[userID+"/"+key] = value
	return nil
}

func TestGenerateShoppingListReportsNoMealsCondition(t *testing.T) {
	repo := newInMemoryShoppingRepository()
	planID := uuid.New().String()
	repo.plans[planID] = &entities.NutritionPlan{Name: "Cut Phase 1"}

	service := NewShoppingService(repo, newInMemoryPreferenceStore())

	res, err := service.GenerateShoppingList(context.Background(), uuid.New().String(), domain.GenerateShoppingListRequest{
		PlanID:      planID,
		Frequencies: []domain.DayTypeFrequencyRequest{{DayType: string(DayTypeTraining), Frequency: 5}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.NoMeals {
		t.Fatalf("expected no-meals condition to be reported")
	}
	if len(res.Items) != 0 {
		t.Fatalf("expected empty items, got %d", len(res.Items))
	}
}

func TestGenerateShoppingListUnknownPlan(t *testing.T) {
	service := NewShoppingService(newInMemoryShoppingRepository(), newInMemoryPreferenceStore())

	_, err := service.GenerateShoppingList(context.Background(), uuid.New().String(), domain.GenerateShoppingListRequest{
		PlanID: uuid.New().String(),
	})
	if !errors.Is(err, domain.ErrPlanNotFound) {
		t.Fatalf("expected ErrPlanNotFound, got %v", err)
	}
}

func TestGenerateShoppingListAttachesRetailerLinks(t *testing.T) {
	repo := newInMemoryShoppingRepository()
	planID := uuid.New().String()
	repo.plans[planID] = &entities.NutritionPlan{
		Meals: []*entities.Meal{
			mealWith(dayType(DayTypeTraining), line(foodItem("Chicken Breast, Skinless", nil), 200, "g")),
		},
	}
	service := NewShoppingService(repo, newInMemoryPreferenceStore())

	res, err := service.GenerateShoppingList(context.Background(), uuid.New().String(), domain.GenerateShoppingListRequest{
		PlanID:      planID,
		Frequencies: []domain.DayTypeFrequencyRequest{{DayType: string(DayTypeTraining), Frequency: 1}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(res.Items))
	}
	links := res.Items[0].SearchLinks
	// Only the pre-comma segment of the name is searched.
	want := "Chicken+Breast"
	if !strings.Contains(links.Retailer1, want) || !strings.Contains(links.Retailer2, want) {
		t.Fatalf("expected links to search %q, got %q and %q", want, links.Retailer1, links.Retailer2)
	}
	if strings.Contains(links.Retailer1, "Skinless") {
		t.Fatalf("expected the post-comma segment to be dropped: %q", links.Retailer1)
	}
}

func TestGenerateShoppingListRemembersLastPlan(t *testing.T) {
	repo := newInMemoryShoppingRepository()
	prefs := newInMemoryPreferenceStore()
	planID := uuid.New().String()
	userID := uuid.New().String()
	repo.plans[planID] = &entities.NutritionPlan{
		Meals: []*entities.Meal{
			mealWith(dayType(DayTypeTraining), line(foodItem("Rice", nil), 100, "g")),
		},
	}
	service := NewShoppingService(repo, prefs)

	_, err := service.GenerateShoppingList(context.Background(), userID, domain.GenerateShoppingListRequest{
		PlanID:      planID,
		Frequencies: []domain.DayTypeFrequencyRequest{{DayType: string(DayTypeTraining), Frequency: 1}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, found, _ := prefs.Get(context.Background(), userID, preferenceKeyLastPlanID)
	if !found || stored != planID {
		t.Fatalf("expected last plan id %q stored, got %q (found=%v)", planID, stored, found)
	}
}

func TestSuggestFrequenciesFromAssignment(t *testing.T) {
	repo := newInMemoryShoppingRepository()
	athleteID := uuid.New()
	templateID := uuid.New()
	repo.assignments[athleteID.String()] = &entities.AssignedPlan{
		AthleteID:         athleteID,
		ProgramTemplateID: &templateID,
		AssignedAt:        time.Now(),
	}
	repo.workouts[templateID.String()] = workouts("Push", "Pull", "Low Carb Cardio")

	service := NewShoppingService(repo, newInMemoryPreferenceStore())

	res, err := service.SuggestFrequencies(context.Background(), athleteID.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := map[string]int{}
	for _, f := range res.Frequencies {
		got[f.DayType] = f.Frequency
	}
	if got[string(DayTypeTraining)] != 2 || got[string(DayTypeLowCarb)] != 1 {
		t.Fatalf("unexpected suggestion %v", got)
	}
	// 3 accounted days, so 4 rest days of padding.
	if got[string(DayTypeRest)] != 4 {
		t.Fatalf("expected 4 rest days, got %d", got[string(DayTypeRest)])
	}
}

func TestSuggestFrequenciesIsNonFatal(t *testing.T) {
	// No assignment at all.
	service := NewShoppingService(newInMemoryShoppingRepository(), newInMemoryPreferenceStore())
	res, err := service.SuggestFrequencies(context.Background(), uuid.New().String())
	if err != nil {
		t.Fatalf("expected missing assignment to be non-fatal, got %v", err)
	}
	if len(res.Frequencies) != 0 {
		t.Fatalf("expected empty suggestion, got %v", res.Frequencies)
	}

	// Backend fetch failure.
	repo := newInMemoryShoppingRepository()
	repo.failFetches = true
	service = NewShoppingService(repo, newInMemoryPreferenceStore())
	res, err = service.SuggestFrequencies(context.Background(), uuid.New().String())
	if err != nil {
		t.Fatalf("expected fetch failure to be non-fatal, got %v", err)
	}
	if len(res.Frequencies) != 0 {
		t.Fatalf("expected empty suggestion, got %v", res.Frequencies)
	}
}

func TestSaveFrequenciesDropsZeroEntriesAndRoundTrips(t *testing.T) {
	prefs := newInMemoryPreferenceStore()
	service := NewShoppingService(newInMemoryShoppingRepository(), prefs)
	userID := uuid.New().String()
	planID := uuid.New().String()

	saved, err := service.SaveFrequencies(context.Background(), userID, domain.SaveFrequenciesRequest{
		PlanID: planID,
		Frequencies: []domain.DayTypeFrequencyRequest{
			{DayType: string(DayTypeTraining), Frequency: 3},
			{DayType: string(DayTypeRest), Frequency: 0},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(saved.Frequencies) != 1 || saved.Frequencies[0].DayType != string(DayTypeTraining) {
		t.Fatalf("expected only the training entry persisted, got %v", saved.Frequencies)
	}

	loaded, err := service.GetSavedFrequencies(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loaded.PlanID != planID {
		t.Fatalf("expected plan id %q, got %q", planID, loaded.PlanID)
	}
	if len(loaded.Frequencies) != 1 || loaded.Frequencies[0].Frequency != 3 {
		t.Fatalf("round trip mismatch: %v", loaded.Frequencies)
	}
}

func TestGetSavedFrequenciesWithNothingSaved(t *testing.T) {
	service := NewShoppingService(newInMemoryShoppingRepository(), newInMemoryPreferenceStore())
	res, err := service.GetSavedFrequencies(context.Background(), uuid.New().String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.PlanID != "" || len(res.Frequencies) != 0 {
		t.Fatalf("expected empty state, got %+v", res)
	}
}
