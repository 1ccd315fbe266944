package models

import "time"

// MatchSummary is the header of a match
type MatchSummary struct {
	ID           string    `json:"id"`
	TournamentID string    `json:"tournament_id,omitempty"`
	Round        int       `json:"round,omitempty"`
	HomeTeamID   string    `json:"home_team_id"`
	HomeTeamName string    `json:"home_team_name"`
	AwayTeamID   string    `json:"away_team_id"`
	AwayTeamName string    `json:"away_team_name"`
	HomeScore    int       `json:"home_score"`
	AwayScore    int       `json:"away_score"`
	Status       string    `json:"status"`
	MatchDate    time.Time `json:"match_date"`
	Venue        string    `json:"venue,omitempty"`
}

// RosterLine is one participating player with their normalized stats
type RosterLine struct {
	PlayerID      string   `json:"player_id"`
	Name          string   `json:"name"`
	PhotoURL      string   `json:"photo_url,omitempty"`
	TeamID        string   `json:"team_id,omitempty"`
	Goals         int      `json:"goals"`
	Assists       int      `json:"assists"`
	YellowCards   int      `json:"yellow_cards"`
	RedCards      int      `json:"red_cards"`
	Saves         int      `json:"saves"`
	CleanSheets   int      `json:"clean_sheets"`
	OwnGoals      int      `json:"own_goals"`
	MinutesPlayed int      `json:"minutes_played"`
	Rating        *float64 `json:"rating,omitempty"`
}

// MatchDetail is the full match report
type MatchDetail struct {
	Match    MatchSummary `json:"match"`
	Roster   []RosterLine `json:"roster"`
	Timeline []MatchEvent `json:"timeline"`
}
