package worker

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/clubstats/football-stats-api/internal/models"
)

var testDefs = []AchievementDefinition{
	{Code: "goals_2", Name: "Double", Tier: "bronze", Metric: MetricGoals, Threshold: 2},
	{Code: "goals_3", Name: "Treble", Tier: "silver", Metric: MetricGoals, Threshold: 3},
	{Code: "assists_1", Name: "Provider", Tier: "bronze", Metric: MetricAssists, Threshold: 1},
}

func newTestAchievementWorker(t *testing.T) (*AchievementWorker, *MockDBStore, *MockStatStore) {
	t.Helper()
	db := NewMockDBStore(testDefs)
	stats := NewMockStatStore()
	return NewAchievementWorker(db, stats, zap.NewNop().Sugar()), db, stats
}

func TestNewAchievementWorkerFallsBackToDefaults(t *testing.T) {
	db := NewMockDBStore(nil)
	db.QueryErr = errors.New("relation does not exist")
	w := NewAchievementWorker(db, NewMockStatStore(), nil)

	if len(w.defs[MetricGoals]) == 0 {
		t.Fatal("expected default goal milestones to be loaded")
	}
}

func TestCounterIncrements(t *testing.T) {
	scorer, assister := uuid.NewString(), uuid.NewString()
	tests := []struct {
		name  string
		event models.MatchEvent
		want  map[string]string
	}{
		{
			name:  "goal with assist",
			event: models.MatchEvent{Type: models.EventGoal, PlayerID: scorer, RelatedPlayerID: assister},
			want:  map[string]string{scorer: MetricGoals, assister: MetricAssists},
		},
		{
			name:  "self assist ignored",
			event: models.MatchEvent{Type: models.EventGoal, PlayerID: scorer, RelatedPlayerID: scorer},
			want:  map[string]string{scorer: MetricGoals},
		},
		{
			name:  "name-only goal skipped",
			event: models.MatchEvent{Type: models.EventGoal, PlayerName: "Alex Morgan"},
			want:  map[string]string{},
		},
		{
			name:  "save",
			event: models.MatchEvent{Type: models.EventSave, PlayerID: scorer},
			want:  map[string]string{scorer: MetricSaves},
		},
		{
			name:  "clean sheet",
			event: models.MatchEvent{Type: models.EventCleanSheet, PlayerID: scorer},
			want:  map[string]string{scorer: MetricCleanSheets},
		},
		{
			name:  "own goal has no career counter",
			event: models.MatchEvent{Type: models.EventOwnGoal, PlayerID: scorer},
			want:  map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := counterIncrements(&tt.event)
			if len(got) != len(tt.want) {
				t.Fatalf("counterIncrements() = %v; want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("counterIncrements()[%s] = %q; want %q", k, got[k], v)
				}
			}
		})
	}
}

func TestProcessEventUnlocksMilestones(t *testing.T) {
	w, db, stats := newTestAchievementWorker(t)
	scorer, assister := uuid.NewString(), uuid.NewString()

	goal := func() *models.MatchEvent {
		return &models.MatchEvent{
			ID:              uuid.New(),
			Type:            models.EventGoal,
			PlayerID:        scorer,
			RelatedPlayerID: assister,
			RecordedAt:      time.Now().UTC(),
		}
	}

	w.ProcessEvent(goal())
	if db.HasUnlocked(scorer, "goals_2") {
		t.Error("goals_2 unlocked after one goal")
	}
	if !db.HasUnlocked(assister, "assists_1") {
		t.Error("assists_1 not unlocked after first assist")
	}

	w.ProcessEvent(goal())
	if !db.HasUnlocked(scorer, "goals_2") {
		t.Error("goals_2 not unlocked after two goals")
	}
	if db.HasUnlocked(scorer, "goals_3") {
		t.Error("goals_3 unlocked after two goals")
	}

	w.ProcessEvent(goal())
	if !db.HasUnlocked(scorer, "goals_3") {
		t.Error("goals_3 not unlocked after three goals")
	}

	if got := stats.Counter(CounterKey(scorer, MetricGoals)); got != 3 {
		t.Errorf("goal counter = %d; want 3", got)
	}
	if got := stats.Counter(CounterKey(assister, MetricAssists)); got != 3 {
		t.Errorf("assist counter = %d; want 3", got)
	}
	// assists_1, goals_2, goals_3: each threshold crossed exactly once
	if db.Inserts != 3 {
		t.Errorf("unlock inserts = %d; want 3", db.Inserts)
	}
}

func TestProcessEventCountsOnce(t *testing.T) {
	w, _, stats := newTestAchievementWorker(t)
	ev := &models.MatchEvent{ID: uuid.New(), Type: models.EventSave, PlayerID: uuid.NewString()}

	w.ProcessEvent(ev)
	w.ProcessEvent(ev)

	if got := stats.Counter(CounterKey(ev.PlayerID, MetricSaves)); got != 1 {
		t.Errorf("save counter = %d; want 1 after replay", got)
	}
}

func TestProcessEventStoreFailure(t *testing.T) {
	w, db, stats := newTestAchievementWorker(t)
	stats.Err = errors.New("redis down")

	w.ProcessEvent(&models.MatchEvent{ID: uuid.New(), Type: models.EventGoal, PlayerID: uuid.NewString()})
	if db.Inserts != 0 {
		t.Errorf("unlock inserts = %d; want 0 when counters are unavailable", db.Inserts)
	}
}

func TestAchievementWorkerDrainsOnStop(t *testing.T) {
	w, _, stats := newTestAchievementWorker(t)
	w.Start()

	player := uuid.NewString()
	for i := 0; i < 20; i++ {
		w.Enqueue(&models.MatchEvent{ID: uuid.New(), Type: models.EventSave, PlayerID: player})
	}
	w.Stop()

	if got := stats.Counter(CounterKey(player, MetricSaves)); got != 20 {
		t.Errorf("save counter = %d; want 20", got)
	}

	// Enqueue after Stop must not panic
	w.Enqueue(&models.MatchEvent{ID: uuid.New(), Type: models.EventSave, PlayerID: player})
}
