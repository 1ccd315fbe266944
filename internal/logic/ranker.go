package logic

import (
	"fmt"
	"sort"

	"github.com/clubstats/football-stats-api/internal/models"
)

const (
	// DefaultLeaderboardSize caps each full leaderboard view
	DefaultLeaderboardSize = 10
	// DefaultSummarySize caps each dashboard card
	DefaultSummarySize = 5
	// MinMatchesForRate is the qualification threshold for per-match rate views
	MinMatchesForRate = 2
)

// View is one leaderboard projection: filter, sort key (desc) and size cap
// applied to the shared aggregate snapshot.
type View struct {
	Key       string
	Title     string
	Icon      string
	Filter    func(p *PlayerAggregate) bool
	Metric    func(p *PlayerAggregate) float64
	WithScore bool
}

var (
	ViewTopGoalScorers = View{
		Key: "topGoalScorers", Title: "Top Goal Scorers", Icon: "ball",
		Filter: func(p *PlayerAggregate) bool { return p.Goals > 0 },
		Metric: func(p *PlayerAggregate) float64 { return float64(p.Goals) },
	}
	ViewTopAssistMakers = View{
		Key: "topAssistMakers", Title: "Top Assist Makers", Icon: "boot",
		Filter: func(p *PlayerAggregate) bool { return p.Assists > 0 },
		Metric: func(p *PlayerAggregate) float64 { return float64(p.Assists) },
	}
	ViewMostActivePlayers = View{
		Key: "mostActivePlayers", Title: "Most Active Players", Icon: "calendar",
		Filter: func(p *PlayerAggregate) bool { return p.MatchesPlayed() > 0 },
		Metric: func(p *PlayerAggregate) float64 { return float64(p.MatchesPlayed()) },
	}
	ViewGoalsPerMatch = View{
		Key: "goalsPerMatch", Title: "Goals per Match", Icon: "chart",
		Filter: func(p *PlayerAggregate) bool {
			return p.MatchesPlayed() >= MinMatchesForRate && p.Goals > 0
		},
		Metric: func(p *PlayerAggregate) float64 { return p.GoalsPerMatch },
	}
	ViewTopPerformers = View{
		Key: "topPerformers", Title: "Top Performers", Icon: "star",
		Filter:    func(p *PlayerAggregate) bool { return p.Goals+p.Assists > 0 },
		Metric:    func(p *PlayerAggregate) float64 { return p.UnifiedScore },
		WithScore: true,
	}
	ViewMostMinutesPlayed = View{
		Key: "mostMinutesPlayed", Title: "Most Minutes Played", Icon: "clock",
		Filter: func(p *PlayerAggregate) bool { return p.TotalMinutes > 0 },
		Metric: func(p *PlayerAggregate) float64 { return float64(p.TotalMinutes) },
	}
	ViewTopCleanSheets = View{
		Key: "topCleanSheets", Title: "Top Clean Sheets", Icon: "shield",
		Filter: func(p *PlayerAggregate) bool { return p.CleanSheets > 0 },
		Metric: func(p *PlayerAggregate) float64 { return float64(p.CleanSheets) },
	}
	ViewTopSaves = View{
		Key: "topSaves", Title: "Top Saves", Icon: "gloves",
		Filter: func(p *PlayerAggregate) bool { return p.Saves > 0 },
		Metric: func(p *PlayerAggregate) float64 { return float64(p.Saves) },
	}
)

// Rank filters players, stable-sorts them by the view metric descending and
// truncates to limit. Players with equal metrics keep their input order.
func (v View) Rank(players []*PlayerAggregate, limit int) []*PlayerAggregate {
	ranked := make([]*PlayerAggregate, 0, len(players))
	for _, p := range players {
		if v.Filter(p) {
			ranked = append(ranked, p)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return v.Metric(ranked[i]) > v.Metric(ranked[j])
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// Entries ranks players and projects them to leaderboard entries.
func (v View) Entries(players []*PlayerAggregate, limit int) []models.LeaderboardEntry {
	ranked := v.Rank(players, limit)
	entries := make([]models.LeaderboardEntry, 0, len(ranked))
	for _, p := range ranked {
		entry := toLeaderboardEntry(p)
		if v.WithScore {
			score := p.UnifiedScore
			entry.UnifiedScore = &score
		}
		entries = append(entries, entry)
	}
	return entries
}

func toLeaderboardEntry(p *PlayerAggregate) models.LeaderboardEntry {
	return models.LeaderboardEntry{
		ID:              p.ID,
		Name:            p.Name,
		PhotoURL:        p.PhotoURL,
		Goals:           p.Goals,
		Assists:         p.Assists,
		YellowCards:     p.YellowCards,
		RedCards:        p.RedCards,
		Saves:           p.Saves,
		CleanSheets:     p.CleanSheets,
		MatchesPlayed:   p.MatchesPlayed(),
		TotalMinutes:    p.TotalMinutes,
		GoalsPerMatch:   p.GoalsPerMatch,
		AssistsPerMatch: p.AssistsPerMatch,
	}
}

// BuildLeaderboardSet computes every view from the same finalized snapshot.
func BuildLeaderboardSet(agg *Aggregates, limit int) *models.LeaderboardSet {
	if limit <= 0 {
		limit = DefaultLeaderboardSize
	}
	players := agg.Players()
	return &models.LeaderboardSet{
		TopGoalScorers:    ViewTopGoalScorers.Entries(players, limit),
		TopAssistMakers:   ViewTopAssistMakers.Entries(players, limit),
		MostActivePlayers: ViewMostActivePlayers.Entries(players, limit),
		GoalsPerMatch:     ViewGoalsPerMatch.Entries(players, limit),
		TopPerformers:     ViewTopPerformers.Entries(players, limit),
		MostMinutesPlayed: ViewMostMinutesPlayed.Entries(players, limit),
		TopCleanSheets:    ViewTopCleanSheets.Entries(players, limit),
		TopSaves:          ViewTopSaves.Entries(players, limit),
	}
}

// Card renders a view as a dashboard card.
func (v View) Card(players []*PlayerAggregate, limit int) models.LeaderboardCard {
	ranked := v.Rank(players, limit)
	card := models.LeaderboardCard{
		Title:  v.Title,
		Metric: v.Key,
		Icon:   v.Icon,
		Top:    make([]models.LeaderboardCardEntry, 0, len(ranked)),
	}
	for i, p := range ranked {
		value := v.Metric(p)
		card.Top = append(card.Top, models.LeaderboardCardEntry{
			PlayerID:     p.ID,
			PlayerName:   p.Name,
			PhotoURL:     p.PhotoURL,
			Value:        value,
			Rank:         i + 1,
			DisplayValue: formatMetric(v.Key, value),
		})
	}
	return card
}

func formatMetric(key string, value float64) string {
	switch key {
	case ViewGoalsPerMatch.Key:
		return fmt.Sprintf("%.2f", value)
	case ViewTopPerformers.Key:
		return fmt.Sprintf("%.1f", value)
	case ViewMostMinutesPlayed.Key:
		return fmt.Sprintf("%.0f'", value)
	}
	return fmt.Sprintf("%.0f", value)
}

// BuildDashboard is the condensed top-N summary grouped for the dashboard.
func BuildDashboard(agg *Aggregates, limit int) *models.LeaderboardDashboard {
	if limit <= 0 {
		limit = DefaultSummarySize
	}
	players := agg.Players()
	return &models.LeaderboardDashboard{
		Attack: map[string]models.LeaderboardCard{
			"goals":           ViewTopGoalScorers.Card(players, limit),
			"assists":         ViewTopAssistMakers.Card(players, limit),
			"goals_per_match": ViewGoalsPerMatch.Card(players, limit),
		},
		Goalkeeping: map[string]models.LeaderboardCard{
			"clean_sheets": ViewTopCleanSheets.Card(players, limit),
			"saves":        ViewTopSaves.Card(players, limit),
		},
		Overall: map[string]models.LeaderboardCard{
			"top_performers": ViewTopPerformers.Card(players, limit),
			"most_active":    ViewMostActivePlayers.Card(players, limit),
			"minutes":        ViewMostMinutesPlayed.Card(players, limit),
		},
	}
}
