package models

import "time"

// PlayerProfileStats is a single player's career view, computed with the same
// aggregation engine as the leaderboards
type PlayerProfileStats struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	PhotoURL string `json:"photo_url,omitempty"`

	Goals           int     `json:"goals"`
	Assists         int     `json:"assists"`
	YellowCards     int     `json:"yellow_cards"`
	RedCards        int     `json:"red_cards"`
	Saves           int     `json:"saves"`
	CleanSheets     int     `json:"clean_sheets"`
	OwnGoals        int     `json:"own_goals"`
	MatchesPlayed   int     `json:"matches_played"`
	TotalMinutes    int     `json:"total_minutes"`
	GoalsPerMatch   float64 `json:"goals_per_match"`
	AssistsPerMatch float64 `json:"assists_per_match"`
	AverageRating   float64 `json:"average_rating"`
	UnifiedScore    float64 `json:"unified_score"`

	Matches []PlayerMatchLine `json:"matches"`
}

// PlayerMatchLine is the normalized contribution of a player in one match
type PlayerMatchLine struct {
	MatchID       string   `json:"match_id"`
	MatchDate     string   `json:"match_date,omitempty"`
	TournamentID  string   `json:"tournament_id,omitempty"`
	Goals         int      `json:"goals"`
	Assists       int      `json:"assists"`
	YellowCards   int      `json:"yellow_cards"`
	RedCards      int      `json:"red_cards"`
	Saves         int      `json:"saves"`
	CleanSheets   int      `json:"clean_sheets"`
	MinutesPlayed int      `json:"minutes_played"`
	Rating        *float64 `json:"rating,omitempty"`
	HasStats      bool     `json:"has_stats"`
}

// Player is a club member as stored in Postgres
type Player struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	Position  string    `json:"position,omitempty"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"created_at"`
}

// ClubOverview holds headline counts for the club dashboard
type ClubOverview struct {
	Players          int64 `json:"players"`
	Teams            int64 `json:"teams"`
	Matches          int64 `json:"matches"`
	CompletedMatches int64 `json:"completed_matches"`
	Tournaments      int64 `json:"tournaments"`
	Goals            int64 `json:"goals"`
	EventsIngested   int64 `json:"events_ingested"`
}
