package models

// StandingRow is one team's line in a tournament league table
type StandingRow struct {
	Position       int    `json:"position"`
	TeamID         string `json:"team_id"`
	TeamName       string `json:"team_name"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Drawn          int    `json:"drawn"`
	Lost           int    `json:"lost"`
	GoalsFor       int    `json:"goals_for"`
	GoalsAgainst   int    `json:"goals_against"`
	GoalDifference int    `json:"goal_difference"`
	Points         int    `json:"points"`
}

// MatchResult is the minimal shape needed to build standings
type MatchResult struct {
	HomeTeamID   string
	HomeTeamName string
	AwayTeamID   string
	AwayTeamName string
	HomeScore    int
	AwayScore    int
}
