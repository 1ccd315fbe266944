package models

import "time"

type CreatePlayerRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	PhotoURL string `json:"photo_url" validate:"omitempty,url"`
	Position string `json:"position" validate:"omitempty,oneof=goalkeeper defender midfielder forward"`
}

type CreateTeamRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type CreateTournamentRequest struct {
	Name      string     `json:"name" validate:"required,max=120"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

type RegisterTeamsRequest struct {
	TeamIDs []string `json:"team_ids" validate:"required,min=1,dive,required"`
}

type CreateMatchRequest struct {
	TournamentID string    `json:"tournament_id"`
	HomeTeamID   string    `json:"home_team_id" validate:"required"`
	AwayTeamID   string    `json:"away_team_id" validate:"required,nefield=HomeTeamID"`
	MatchDate    time.Time `json:"match_date" validate:"required"`
	Venue        string    `json:"venue" validate:"max=120"`
}

type UpdateMatchRequest struct {
	Status    string `json:"status" validate:"required,oneof=scheduled live completed cancelled"`
	HomeScore int    `json:"home_score" validate:"gte=0"`
	AwayScore int    `json:"away_score" validate:"gte=0"`
}

type AddRosterRequest struct {
	PlayerID string `json:"player_id" validate:"required"`
	TeamID   string `json:"team_id"`
}

// UpsertStatsRequest sets the single stat row of a participation record
type UpsertStatsRequest struct {
	Goals         int      `json:"goals" validate:"gte=0"`
	Assists       int      `json:"assists" validate:"gte=0"`
	YellowCards   int      `json:"yellow_cards" validate:"gte=0,lte=2"`
	RedCards      int      `json:"red_cards" validate:"gte=0,lte=1"`
	MinutesPlayed int      `json:"minutes_played" validate:"gte=0,lte=130"`
	Saves         int      `json:"saves" validate:"gte=0"`
	CleanSheets   int      `json:"clean_sheets" validate:"gte=0,lte=1"`
	Rating        *float64 `json:"rating" validate:"omitempty,gte=0,lte=10"`
}

type GenerateFixturesRequest struct {
	StartDate    time.Time `json:"start_date" validate:"required"`
	DaysBetween  int       `json:"days_between" validate:"gte=0,lte=60"`
	DoubleRounds bool      `json:"double_rounds"`
}

// CreatedResponse is returned by admin create endpoints
type CreatedResponse struct {
	ID string `json:"id"`
}
