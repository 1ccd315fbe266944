package models

import "time"

// Tournament status values
const (
	TournamentUpcoming  = "upcoming"
	TournamentOngoing   = "ongoing"
	TournamentCompleted = "completed"
)

type Tournament struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Status    string     `json:"status"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	TeamCount int        `json:"team_count"`
	Matches   int        `json:"matches"`
	Completed int        `json:"completed_matches"`
	CreatedAt time.Time  `json:"created_at"`
}

// TeamRef identifies a team taking part in a tournament
type TeamRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Fixture is one generated pairing, before it is persisted as a match
type Fixture struct {
	MatchID    string    `json:"match_id,omitempty"`
	Round      int       `json:"round"`
	HomeTeamID string    `json:"home_team_id"`
	AwayTeamID string    `json:"away_team_id"`
	MatchDate  time.Time `json:"match_date"`
}

// TournamentStats is the tournament-scoped player ranking response
type TournamentStats struct {
	TournamentID     string                  `json:"tournament_id"`
	CompletedMatches int                     `json:"completed_matches"`
	Players          []TournamentPlayerEntry `json:"players"`
}
