package logic

import (
	"context"
	"errors"
	"testing"

	"github.com/clubstats/football-stats-api/internal/models"
)

func TestFetchSnapshot(t *testing.T) {
	f := &mockFetcher{
		records: []models.ParticipationRecord{rec("m1", "p1", "Alex", nil)},
		events: map[models.EventType][]models.MatchEvent{
			models.EventSave:       {event(models.EventSave, "m1", "p1", "")},
			models.EventCleanSheet: {event(models.EventCleanSheet, "m1", "p1", "")},
			models.EventOwnGoal:    {},
		},
	}

	scope := models.RecordScope{MatchIDs: []string{"m1"}}
	snap, err := FetchSnapshot(context.Background(), f, scope)
	if err != nil {
		t.Fatalf("FetchSnapshot() error = %v", err)
	}
	if len(snap.Records) != 1 || len(snap.Saves) != 1 || len(snap.CleanSheets) != 1 || len(snap.OwnGoals) != 0 {
		t.Errorf("snapshot = %+v; want 1 record, 1 save, 1 clean sheet", snap)
	}

	if len(f.filters) != 3 {
		t.Fatalf("event fetches = %d; want 3", len(f.filters))
	}
	for _, filter := range f.filters {
		if len(filter.MatchIDs) != 1 || filter.MatchIDs[0] != "m1" {
			t.Errorf("event filter %+v not scoped to m1", filter)
		}
	}
}

func TestFetchSnapshotFailsWhole(t *testing.T) {
	boom := errors.New("connection reset")
	tests := []struct {
		name string
		f    *mockFetcher
	}{
		{"records", &mockFetcher{recordsErr: boom}},
		{"saves", &mockFetcher{eventsErr: map[models.EventType]error{models.EventSave: boom}}},
		{"clean sheets", &mockFetcher{eventsErr: map[models.EventType]error{models.EventCleanSheet: boom}}},
		{"own goals", &mockFetcher{eventsErr: map[models.EventType]error{models.EventOwnGoal: boom}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap, err := FetchSnapshot(context.Background(), tt.f, models.RecordScope{})
			if !errors.Is(err, boom) {
				t.Errorf("FetchSnapshot() error = %v; want wrapped %v", err, boom)
			}
			if snap != nil {
				t.Error("FetchSnapshot() returned a partial snapshot")
			}
		})
	}
}

func TestLeaderboardServiceNoPartialResult(t *testing.T) {
	f := &mockFetcher{
		records:   []models.ParticipationRecord{rec("m1", "p1", "Alex", &models.StatRow{Goals: 1, MinutesPlayed: 90})},
		eventsErr: map[models.EventType]error{models.EventCleanSheet: errors.New("timeout")},
	}
	svc := NewLeaderboardService(f, NewNormalizer("", 0), LeaderboardLimits{}, nil)

	set, err := svc.GetLeaderboards(context.Background())
	if err == nil || set != nil {
		t.Errorf("GetLeaderboards() = (%v, %v); want (nil, error)", set, err)
	}
	dash, err := svc.GetDashboard(context.Background())
	if err == nil || dash != nil {
		t.Errorf("GetDashboard() = (%v, %v); want (nil, error)", dash, err)
	}
}

func TestLeaderboardServiceLimits(t *testing.T) {
	var records []models.ParticipationRecord
	for _, id := range []string{"a", "b", "c", "d"} {
		records = append(records, rec("m1", id, "Player "+id, &models.StatRow{Goals: 1, MinutesPlayed: 90}))
	}
	f := &mockFetcher{records: records}
	svc := NewLeaderboardService(f, NewNormalizer("", 0), LeaderboardLimits{Full: 3, Summary: 2}, nil)

	set, err := svc.GetLeaderboards(context.Background())
	if err != nil {
		t.Fatalf("GetLeaderboards() error = %v", err)
	}
	if len(set.TopGoalScorers) != 3 {
		t.Errorf("TopGoalScorers has %d entries; want 3", len(set.TopGoalScorers))
	}

	dash, err := svc.GetDashboard(context.Background())
	if err != nil {
		t.Fatalf("GetDashboard() error = %v", err)
	}
	if len(dash.Attack["goals"].Top) != 2 {
		t.Errorf("goals card has %d entries; want 2", len(dash.Attack["goals"].Top))
	}
	if len(f.scopes) != 2 || len(f.scopes[0].MatchIDs) != 0 {
		t.Errorf("leaderboards should read every match, got scopes %+v", f.scopes)
	}
}

func TestSnapshotTalliesDropped(t *testing.T) {
	snap := &Snapshot{
		Records: []models.ParticipationRecord{rec("m1", "p1", "Alex", nil)},
		Saves: []models.MatchEvent{
			event(models.EventSave, "m1", "", "Alex"),
			event(models.EventSave, "m1", "", "Ghost"),
		},
		OwnGoals: []models.MatchEvent{event(models.EventOwnGoal, "m2", "", "Alex")},
	}
	tallies, dropped := snap.Tallies()
	if tallies.Saves.Count("m1", "p1") != 1 {
		t.Errorf("saves for p1 = %d; want 1", tallies.Saves.Count("m1", "p1"))
	}
	if dropped != 2 {
		t.Errorf("dropped = %d; want 2", dropped)
	}
}
