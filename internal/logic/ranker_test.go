package logic

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/clubstats/football-stats-api/internal/models"
)

func TestRateQualificationThreshold(t *testing.T) {
	records := []models.ParticipationRecord{
		rec("m1", "solo", "One Match Wonder", &models.StatRow{Goals: 5, MinutesPlayed: 90}),
		rec("m1", "reg", "Regular", &models.StatRow{Goals: 1, MinutesPlayed: 90}),
		rec("m2", "reg", "Regular", &models.StatRow{Goals: 1, MinutesPlayed: 90}),
	}
	set := BuildLeaderboardSet(aggregate(records, nil, nil, nil), 10)

	if len(set.GoalsPerMatch) != 1 || set.GoalsPerMatch[0].ID != "reg" {
		t.Errorf("GoalsPerMatch = %v; want only reg", ids(set.GoalsPerMatch))
	}
	if len(set.TopGoalScorers) != 2 || set.TopGoalScorers[0].ID != "solo" {
		t.Errorf("TopGoalScorers = %v; want [solo reg]", ids(set.TopGoalScorers))
	}
}

func TestTopNTruncationStableTies(t *testing.T) {
	var records []models.ParticipationRecord
	// 15 players; p00..p04 have 3 assists, the rest 1
	for i := 0; i < 15; i++ {
		assists := 1
		if i < 5 {
			assists = 3
		}
		id := fmt.Sprintf("p%02d", i)
		records = append(records, rec("m1", id, "Player "+id, &models.StatRow{Assists: assists, MinutesPlayed: 90}))
	}
	set := BuildLeaderboardSet(aggregate(records, nil, nil, nil), 10)

	got := ids(set.TopAssistMakers)
	want := []string{"p00", "p01", "p02", "p03", "p04", "p05", "p06", "p07", "p08", "p09"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopAssistMakers = %v; want %v", got, want)
	}
}

func TestViewsFilterZeroMetrics(t *testing.T) {
	records := []models.ParticipationRecord{
		rec("m1", "p1", "Bench", &models.StatRow{MinutesPlayed: 0}),
	}
	set := BuildLeaderboardSet(aggregate(records, nil, nil, nil), 10)

	if len(set.MostActivePlayers) != 1 {
		t.Errorf("MostActivePlayers = %v; want [p1]", ids(set.MostActivePlayers))
	}
	for name, view := range map[string][]models.LeaderboardEntry{
		"goals":   set.TopGoalScorers,
		"assists": set.TopAssistMakers,
		"rate":    set.GoalsPerMatch,
		"perf":    set.TopPerformers,
		"minutes": set.MostMinutesPlayed,
		"cs":      set.TopCleanSheets,
		"saves":   set.TopSaves,
	} {
		if len(view) != 0 {
			t.Errorf("%s view = %v; want empty", name, ids(view))
		}
	}
}

func TestTopPerformersCarryScore(t *testing.T) {
	records := []models.ParticipationRecord{
		rec("m1", "p1", "Alex", &models.StatRow{Goals: 2, Assists: 1, Saves: 4, CleanSheets: 1, MinutesPlayed: 90}),
	}
	set := BuildLeaderboardSet(aggregate(records, nil, nil, nil), 10)

	if len(set.TopPerformers) != 1 {
		t.Fatalf("TopPerformers = %v; want one entry", ids(set.TopPerformers))
	}
	score := set.TopPerformers[0].UnifiedScore
	if score == nil || *score != 12 {
		t.Errorf("UnifiedScore = %v; want 12", score)
	}
	if set.TopGoalScorers[0].UnifiedScore != nil {
		t.Error("UnifiedScore should only be set on the top performers view")
	}
}

func TestTopPerformersRequireGoalOrAssist(t *testing.T) {
	records := []models.ParticipationRecord{
		rec("m1", "gk", "Keeper", &models.StatRow{Saves: 10, CleanSheets: 1, MinutesPlayed: 90}),
	}
	set := BuildLeaderboardSet(aggregate(records, nil, nil, nil), 10)
	if len(set.TopPerformers) != 0 {
		t.Errorf("TopPerformers = %v; want empty", ids(set.TopPerformers))
	}
	if len(set.TopSaves) != 1 || len(set.TopCleanSheets) != 1 {
		t.Error("keeper missing from keeper views")
	}
}

func TestAggregationIdempotent(t *testing.T) {
	records := []models.ParticipationRecord{
		rec("m1", "p1", "Alex", &models.StatRow{Goals: 1, Assists: 2, MinutesPlayed: 90, Rating: floatPtr(7.1)}),
		rec("m1", "p2", "Sam", &models.StatRow{Goals: 1, Assists: 2, MinutesPlayed: 80}),
		rec("m2", "p2", "Sam", nil),
		rec("m2", "p3", "Mary", &models.StatRow{Saves: 5, MinutesPlayed: 90}),
	}
	saves := []models.MatchEvent{event(models.EventSave, "m2", "", "Mary")}

	first := BuildLeaderboardSet(aggregate(records, saves, nil, nil), 10)
	second := BuildLeaderboardSet(aggregate(records, saves, nil, nil), 10)
	if !reflect.DeepEqual(first, second) {
		t.Error("two runs over the same snapshot differ")
	}

	d1 := BuildDashboard(aggregate(records, saves, nil, nil), 5)
	d2 := BuildDashboard(aggregate(records, saves, nil, nil), 5)
	if !reflect.DeepEqual(d1, d2) {
		t.Error("two dashboard runs over the same snapshot differ")
	}
}

func TestBuildDashboard(t *testing.T) {
	var records []models.ParticipationRecord
	for i := 0; i < 8; i++ {
		id := fmt.Sprintf("p%d", i)
		records = append(records,
			rec("m1", id, "Player "+id, &models.StatRow{Goals: i, MinutesPlayed: 90}),
			rec("m2", id, "Player "+id, &models.StatRow{Goals: 1, MinutesPlayed: 90}),
		)
	}
	dash := BuildDashboard(aggregate(records, nil, nil, nil), 5)

	goals := dash.Attack["goals"]
	if len(goals.Top) != 5 {
		t.Fatalf("goals card has %d entries; want 5", len(goals.Top))
	}
	if goals.Top[0].PlayerID != "p7" || goals.Top[0].Rank != 1 || goals.Top[0].DisplayValue != "8" {
		t.Errorf("goals card leader = %+v; want p7 rank 1 value 8", goals.Top[0])
	}
	if rate := dash.Attack["goals_per_match"].Top[0]; rate.DisplayValue != "4.00" {
		t.Errorf("goals_per_match display = %q; want 4.00", rate.DisplayValue)
	}
	if mins := dash.Overall["minutes"].Top[0]; mins.DisplayValue != "180'" {
		t.Errorf("minutes display = %q; want 180'", mins.DisplayValue)
	}
	if len(dash.Goalkeeping["saves"].Top) != 0 {
		t.Error("saves card should be empty")
	}
}

func TestRankLimitZeroMeansAll(t *testing.T) {
	agg := NewAggregates()
	for i := 0; i < 3; i++ {
		p := agg.Upsert(fmt.Sprintf("p%d", i), "P", "")
		p.Goals = i + 1
	}
	if got := ViewTopGoalScorers.Rank(agg.Players(), 0); len(got) != 3 {
		t.Errorf("Rank(limit 0) returned %d players; want 3", len(got))
	}
}

func ids(entries []models.LeaderboardEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}
