package models

// LeaderboardEntry is a read-only projection of one player's aggregate
type LeaderboardEntry struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	PhotoURL string `json:"photo_url,omitempty"`

	Goals       int `json:"goals"`
	Assists     int `json:"assists"`
	YellowCards int `json:"yellow_cards"`
	RedCards    int `json:"red_cards"`
	Saves       int `json:"saves"`
	CleanSheets int `json:"clean_sheets"`

	MatchesPlayed   int     `json:"matches_played"`
	TotalMinutes    int     `json:"total_minutes"`
	GoalsPerMatch   float64 `json:"goals_per_match"`
	AssistsPerMatch float64 `json:"assists_per_match"`

	// Only populated for the top performers view
	UnifiedScore *float64 `json:"unified_score,omitempty"`
}

// LeaderboardSet holds every leaderboard view computed from one aggregate snapshot
type LeaderboardSet struct {
	TopGoalScorers    []LeaderboardEntry `json:"topGoalScorers"`
	TopAssistMakers   []LeaderboardEntry `json:"topAssistMakers"`
	MostActivePlayers []LeaderboardEntry `json:"mostActivePlayers"`
	GoalsPerMatch     []LeaderboardEntry `json:"goalsPerMatch"`
	TopPerformers     []LeaderboardEntry `json:"topPerformers"`
	MostMinutesPlayed []LeaderboardEntry `json:"mostMinutesPlayed"`
	TopCleanSheets    []LeaderboardEntry `json:"topCleanSheets"`
	TopSaves          []LeaderboardEntry `json:"topSaves"`
}

// LeaderboardResponse is the envelope returned by every leaderboard endpoint
type LeaderboardResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

type LeaderboardCard struct {
	Title  string                 `json:"title"`
	Metric string                 `json:"metric"`
	Icon   string                 `json:"icon"`
	Top    []LeaderboardCardEntry `json:"top"`
}

type LeaderboardCardEntry struct {
	PlayerID     string  `json:"player_id"`
	PlayerName   string  `json:"player_name"`
	PhotoURL     string  `json:"photo_url,omitempty"`
	Value        float64 `json:"value"`
	Rank         int     `json:"rank"`
	DisplayValue string  `json:"display_value,omitempty"`
}

// LeaderboardDashboard is the condensed top-5 summary shown on the club dashboard
type LeaderboardDashboard struct {
	Attack      map[string]LeaderboardCard `json:"attack"`
	Goalkeeping map[string]LeaderboardCard `json:"goalkeeping"`
	Overall     map[string]LeaderboardCard `json:"overall"`
}

// TournamentPlayerEntry is one row of a tournament-scoped player ranking
type TournamentPlayerEntry struct {
	Rank     int    `json:"rank"`
	ID       string `json:"id"`
	Name     string `json:"name"`
	PhotoURL string `json:"photo_url,omitempty"`

	Goals         int     `json:"goals"`
	Assists       int     `json:"assists"`
	YellowCards   int     `json:"yellow_cards"`
	RedCards      int     `json:"red_cards"`
	Saves         int     `json:"saves"`
	CleanSheets   int     `json:"clean_sheets"`
	MatchesPlayed int     `json:"matches_played"`
	TotalMinutes  int     `json:"total_minutes"`
	AverageRating float64 `json:"average_rating"`
	UnifiedScore  float64 `json:"unified_score"`
}
