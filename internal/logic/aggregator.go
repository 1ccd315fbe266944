package logic

import (
	"strings"

	"github.com/clubstats/football-stats-api/internal/models"
)

// PlayerAggregate accumulates one player's totals across participation records.
// It lives for one request only.
type PlayerAggregate struct {
	ID       string
	Name     string
	PhotoURL string

	Goals        int
	Assists      int
	YellowCards  int
	RedCards     int
	Saves        int
	CleanSheets  int
	OwnGoals     int
	TotalMinutes int

	RatingSum    float64
	RatedMatches int

	matches map[string]struct{}

	// Set by Finalize
	GoalsPerMatch   float64
	AssistsPerMatch float64
	UnifiedScore    float64
	AverageRating   float64
}

// MatchesPlayed is the number of distinct matches the player took part in.
func (p *PlayerAggregate) MatchesPlayed() int {
	return len(p.matches)
}

// PlayedIn reports whether matchID is in the player's distinct-match set.
func (p *PlayerAggregate) PlayedIn(matchID string) bool {
	_, ok := p.matches[matchID]
	return ok
}

func (p *PlayerAggregate) add(matchID string, c Contribution) {
	p.matches[matchID] = struct{}{}

	p.Goals += c.Goals
	p.Assists += c.Assists
	p.YellowCards += c.YellowCards
	p.RedCards += c.RedCards
	p.Saves += c.Saves
	p.CleanSheets += c.CleanSheets
	p.OwnGoals += c.OwnGoals
	p.TotalMinutes += c.MinutesPlayed

	if c.Rating != nil {
		p.RatingSum += *c.Rating
		p.RatedMatches++
	}
}

// Aggregates maps player id to accumulator, remembering first-seen order so
// ranking ties resolve the same way on every run.
type Aggregates struct {
	byID  map[string]*PlayerAggregate
	order []*PlayerAggregate
}

func NewAggregates() *Aggregates {
	return &Aggregates{byID: make(map[string]*PlayerAggregate)}
}

// Upsert returns the accumulator for playerID, creating it with name and
// photo if the id has not been seen.
func (a *Aggregates) Upsert(playerID, name, photoURL string) *PlayerAggregate {
	if p, ok := a.byID[playerID]; ok {
		return p
	}
	p := &PlayerAggregate{
		ID:       playerID,
		Name:     name,
		PhotoURL: photoURL,
		matches:  make(map[string]struct{}),
	}
	a.byID[playerID] = p
	a.order = append(a.order, p)
	return p
}

// Fold adds one normalized record. Records without a player or match id, or
// whose player resolves to the Unknown placeholder, are skipped and Fold
// returns false. Event-sourced counters apply once per (player, match).
func (a *Aggregates) Fold(rec models.ParticipationRecord, c Contribution) bool {
	playerID := rec.ResolvedPlayerID()
	matchID := rec.ResolvedMatchID()
	if playerID == "" || matchID == "" {
		return false
	}

	name := strings.TrimSpace(rec.DisplayName())
	if name == "" || name == models.UnknownPlayerName {
		return false
	}

	p := a.Upsert(playerID, name, rec.PhotoURL())
	if p.PlayedIn(matchID) {
		c = c.withoutEvents()
	}
	p.add(matchID, c)
	return true
}

// Get returns the accumulator for playerID.
func (a *Aggregates) Get(playerID string) (*PlayerAggregate, bool) {
	p, ok := a.byID[playerID]
	return p, ok
}

// Players returns accumulators in first-seen order. The slice is a copy.
func (a *Aggregates) Players() []*PlayerAggregate {
	out := make([]*PlayerAggregate, len(a.order))
	copy(out, a.order)
	return out
}

func (a *Aggregates) Len() int {
	return len(a.order)
}
