package goals

import (
	"context"
	"testing"
	"time"

	"eng-backend/domain"
	"eng-backend/entities"

	"gorm.io/gorm"
)

type inMemoryGoalsRepository struct {
	stepGoals    map[string]*entities.StepGoal
	stepEntries  map[string]map[string]*entities.StepEntry
	waterGoals   map[string]*entities.WaterGoal
	waterEntries map[string][]*entities.WaterEntry
}

func newInMemoryGoalsRepository() *inMemoryGoalsRepository {
	return &inMemoryGoalsRepository{
		stepGoals:    map[string]*entities.StepGoal{},
		stepEntries:  map[string]map[string]*entities.StepEntry{},
		waterGoals:   map[string]*entities.WaterGoal{},
		waterEntries: map[string][]*entities.WaterEntry{},
	}
}

func (r *inMemoryGoalsRepository) UpsertStepGoal(_ context.Context, goal *entities.StepGoal) error {
	r.stepGoals[goal.UserID.String()] = goal
	return nil
}

func (r *inMemoryGoalsRepository) GetStepGoal(_ context.Context, userID string) (*entities.StepGoal, error) {
	goal, ok := r.stepGoals[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return goal, nil
}

func (r *inMemoryGoalsRepository) UpsertStepEntry(_ context.Context, entry *entities.StepEntry) error {
	userID := entry.UserID.String()
	if r.stepEntries[userID] == nil {
		r.stepEntries[userID] = map[string]*entities.StepEntry{}
	}
	r.stepEntries[userID][entry.Date.Format("2006-01-02")] = entry
	return nil
}

func (r *inMemoryGoalsRepository) GetStepEntries(_ context.Context, userID string, from, to time.Time) ([]*entities.StepEntry, error) {
	var entries []*entities.StepEntry
	for _, entry := range r.stepEntries[userID] {
		if entry.Date.Before(from) || entry.Date.After(to) {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (r *inMemoryGoalsRepository) UpsertWaterGoal(_ context.Context, goal *entities.WaterGoal) error {
	r.waterGoals[goal.UserID.String()] = goal
	return nil
}

func (r *inMemoryGoalsRepository) GetWaterGoal(_ context.Context, userID string) (*entities.WaterGoal, error) {
	goal, ok := r.waterGoals[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return goal, nil
}

func (r *inMemoryGoalsRepository) CreateWaterEntry(_ context.Context, entry *entities.WaterEntry) error {
	userID := entry.UserID.String()
	r.waterEntries[userID] = append(r.waterEntries[userID], entry)
	return nil
}

func (r *inMemoryGoalsRepository) GetWaterEntries(_ context.Context, userID string, from, to time.Time) ([]*entities.WaterEntry, error) {
	var entries []*entities.WaterEntry
	for _, entry := range r.waterEntries[userID] {
		if entry.Date.Before(from) || entry.Date.After(to) {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

const testUserID = "7a9f7d4e-6b1a-4a0f-9f59-2f3f8b9c1d2e"

func TestLogStepsReplacesSameDay(t *testing.T) {
	repo := newInMemoryGoalsRepository()
	svc := NewGoalsService(repo)
	ctx := context.Background()

	today := time.Now().Format("2006-01-02")

	if err := svc.SetStepGoal(ctx, testUserID, domain.SetStepGoalRequest{DailySteps: 10000}); err != nil {
		t.Fatalf("set goal: %v", err)
	}
	if err := svc.LogSteps(ctx, testUserID, domain.LogStepsRequest{Date: today, Steps: 4000}); err != nil {
		t.Fatalf("log steps: %v", err)
	}
	// Re-logging the same day replaces the daily total rather than adding.
	if err := svc.LogSteps(ctx, testUserID, domain.LogStepsRequest{Date: today, Steps: 6500}); err != nil {
		t.Fatalf("log steps again: %v", err)
	}

	stats, err := svc.GetStepStats(ctx, testUserID, "", "")
	if err != nil {
		t.Fatalf("get stats: %v", err)
	}
	if stats.DailyGoal != 10000 {
		t.Fatalf("expected daily goal 10000, got %d", stats.DailyGoal)
	}
	if stats.TotalSteps != 6500 {
		t.Fatalf("expected total 6500, got %d", stats.TotalSteps)
	}
	if len(stats.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(stats.Entries))
	}
}

func TestLogWaterAccumulates(t *testing.T) {
	repo := newInMemoryGoalsRepository()
	svc := NewGoalsService(repo)
	ctx := context.Background()

	today := time.Now().Format("2006-01-02")

	if err := svc.SetWaterGoal(ctx, testUserID, domain.SetWaterGoalRequest{TargetML: 3000}); err != nil {
		t.Fatalf("set goal: %v", err)
	}
	for _, amount := range []int{500, 750} {
		if err := svc.LogWater(ctx, testUserID, domain.LogWaterRequest{Date: today, AmountML: amount}); err != nil {
			t.Fatalf("log water %d: %v", amount, err)
		}
	}

	stats, err := svc.GetWaterStats(ctx, testUserID, "", "")
	if err != nil {
		t.Fatalf("get stats: %v", err)
	}
	if stats.TargetML != 3000 {
		t.Fatalf("expected target 3000, got %d", stats.TargetML)
	}
	if stats.TotalML != 1250 {
		t.Fatalf("expected total 1250, got %d", stats.TotalML)
	}
	if len(stats.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(stats.Entries))
	}
}

func TestStatsWithoutGoal(t *testing.T) {
	repo := newInMemoryGoalsRepository()
	svc := NewGoalsService(repo)

	stats, err := svc.GetStepStats(context.Background(), testUserID, "", "")
	if err != nil {
		t.Fatalf("get stats: %v", err)
	}
	if stats.DailyGoal != 0 || stats.TotalSteps != 0 {
		t.Fatalf("expected empty stats, got %+v", stats)
	}
}

func TestLogStepsRejectsBadDate(t *testing.T) {
	repo := newInMemoryGoalsRepository()
	svc := NewGoalsService(repo)

	err := svc.LogSteps(context.Background(), testUserID, domain.LogStepsRequest{Date: "29/08/2026", Steps: 100})
	if err != domain.ErrInvalidDate {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}
