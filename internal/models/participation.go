package models

// Match status values
const (
	MatchScheduled = "scheduled"
	MatchLive      = "live"
	MatchCompleted = "completed"
	MatchCancelled = "cancelled"
)

// UnknownPlayerName is the display name given to a participation whose
// player could not be resolved. Such players never reach a leaderboard.
const UnknownPlayerName = "Unknown"

// StatRow holds the per-match counters of one participation record.
type StatRow struct {
	Goals         int      `json:"goals"`
	Assists       int      `json:"assists"`
	YellowCards   int      `json:"yellow_cards"`
	RedCards      int      `json:"red_cards"`
	MinutesPlayed int      `json:"minutes_played"`
	Saves         int      `json:"saves"`
	CleanSheets   int      `json:"clean_sheets"`
	Rating        *float64 `json:"rating"`
}

// PlayerRef is the player identity joined onto a participation record.
type PlayerRef struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	PhotoURL string `json:"photo_url"`
}

// MatchRef is the match identity joined onto a participation record.
type MatchRef struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	TournamentID string `json:"tournament_id"`
	MatchDate    string `json:"match_date"`
}

// ParticipationRecord links one player to one match. Stats, Player and Match
// are joined relations and may be absent.
type ParticipationRecord struct {
	ID       string             `json:"id"`
	PlayerID string             `json:"player_id"`
	MatchID  string             `json:"match_id"`
	TeamID   string             `json:"team_id"`
	Stats    JoinOne[StatRow]   `json:"player_stats"`
	Player   JoinOne[PlayerRef] `json:"players"`
	Match    JoinOne[MatchRef]  `json:"matches"`
}

// ResolvedPlayerID prefers the joined identity over the foreign key.
func (r ParticipationRecord) ResolvedPlayerID() string {
	if p, ok := r.Player.Get(); ok && p.ID != "" {
		return p.ID
	}
	return r.PlayerID
}

// ResolvedMatchID prefers the joined identity over the foreign key.
func (r ParticipationRecord) ResolvedMatchID() string {
	if m, ok := r.Match.Get(); ok && m.ID != "" {
		return m.ID
	}
	return r.MatchID
}

// DisplayName returns the joined player's name or UnknownPlayerName.
func (r ParticipationRecord) DisplayName() string {
	if p, ok := r.Player.Get(); ok && p.Name != "" {
		return p.Name
	}
	return UnknownPlayerName
}

// PhotoURL returns the joined player's photo reference, if any.
func (r ParticipationRecord) PhotoURL() string {
	if p, ok := r.Player.Get(); ok {
		return p.PhotoURL
	}
	return ""
}

// RecordScope selects which participation records a fetch returns.
// The zero value means every match.
type RecordScope struct {
	MatchIDs []string
	PlayerID string
}
