package logic

import (
	"fmt"
	"strings"

	"github.com/clubstats/football-stats-api/internal/models"
)

// DefaultMinutesPlayed is assumed for a player on the roster with no stat row.
const DefaultMinutesPlayed = 90

// KeeperStatsSource selects where saves and clean sheets are read from.
type KeeperStatsSource string

const (
	// KeeperStatsAdditive sums stat-row counters and attributed events.
	KeeperStatsAdditive KeeperStatsSource = "additive"
	// KeeperStatsFromStats ignores save/clean_sheet events.
	KeeperStatsFromStats KeeperStatsSource = "stats"
	// KeeperStatsFromEvents ignores the stat-row saves/clean_sheets columns.
	KeeperStatsFromEvents KeeperStatsSource = "events"
)

// ParseKeeperStatsSource validates a configured source. Empty means additive.
func ParseKeeperStatsSource(s string) (KeeperStatsSource, error) {
	switch KeeperStatsSource(strings.ToLower(strings.TrimSpace(s))) {
	case "", KeeperStatsAdditive:
		return KeeperStatsAdditive, nil
	case KeeperStatsFromStats:
		return KeeperStatsFromStats, nil
	case KeeperStatsFromEvents:
		return KeeperStatsFromEvents, nil
	}
	return "", fmt.Errorf("invalid keeper stats source: %q", s)
}

// Contribution is the fixed-shape effective output of one participation record.
type Contribution struct {
	Goals         int
	Assists       int
	YellowCards   int
	RedCards      int
	MinutesPlayed int
	Saves         int
	CleanSheets   int
	OwnGoals      int
	Rating        *float64
	HasStats      bool

	// Event-sourced share of Saves and CleanSheets. Events are keyed by
	// (match, player), so a second record for the same match must not
	// count them again.
	EventSaves       int
	EventCleanSheets int
}

// withoutEvents drops the event-sourced counters.
func (c Contribution) withoutEvents() Contribution {
	c.Saves -= c.EventSaves
	c.CleanSheets -= c.EventCleanSheets
	c.OwnGoals = 0
	c.EventSaves, c.EventCleanSheets = 0, 0
	return c
}

// Normalizer resolves contributions from stat rows and attributed events.
type Normalizer struct {
	Source         KeeperStatsSource
	DefaultMinutes int
}

// NewNormalizer returns a Normalizer, falling back to additive / 90 minutes.
func NewNormalizer(source KeeperStatsSource, defaultMinutes int) Normalizer {
	if source == "" {
		source = KeeperStatsAdditive
	}
	if defaultMinutes <= 0 {
		defaultMinutes = DefaultMinutesPlayed
	}
	return Normalizer{Source: source, DefaultMinutes: defaultMinutes}
}

// EventTallies holds attributed event counts for one snapshot.
type EventTallies struct {
	Saves       EventTally
	CleanSheets EventTally
	OwnGoals    EventTally
}

// Normalize produces the contribution of rec. It never fails: missing inputs
// degrade to zero, or to the default minutes.
func (n Normalizer) Normalize(rec models.ParticipationRecord, tallies EventTallies) Contribution {
	var c Contribution

	minutes := n.DefaultMinutes
	if minutes <= 0 {
		minutes = DefaultMinutesPlayed
	}
	c.MinutesPlayed = minutes

	var statSaves, statCleanSheets int
	if row, ok := rec.Stats.Get(); ok {
		c.HasStats = true
		c.Goals = row.Goals
		c.Assists = row.Assists
		c.YellowCards = row.YellowCards
		c.RedCards = row.RedCards
		c.MinutesPlayed = row.MinutesPlayed
		c.Rating = row.Rating
		statSaves = row.Saves
		statCleanSheets = row.CleanSheets
	}

	matchID := rec.ResolvedMatchID()
	playerID := rec.ResolvedPlayerID()
	eventSaves := tallies.Saves.Count(matchID, playerID)
	eventCleanSheets := tallies.CleanSheets.Count(matchID, playerID)

	switch n.Source {
	case KeeperStatsFromStats:
		c.Saves, c.CleanSheets = statSaves, statCleanSheets
	case KeeperStatsFromEvents:
		c.Saves, c.CleanSheets = eventSaves, eventCleanSheets
		c.EventSaves, c.EventCleanSheets = eventSaves, eventCleanSheets
	default:
		c.Saves = statSaves + eventSaves
		c.CleanSheets = statCleanSheets + eventCleanSheets
		c.EventSaves, c.EventCleanSheets = eventSaves, eventCleanSheets
	}

	c.OwnGoals = tallies.OwnGoals.Count(matchID, playerID)
	return c
}

type tallyKey struct {
	matchID  string
	playerID string
}

// EventTally counts events per (match, player). The zero value is usable for reads.
type EventTally map[tallyKey]int

// Count returns how many events were attributed to playerID in matchID.
func (t EventTally) Count(matchID, playerID string) int {
	if t == nil {
		return 0
	}
	return t[tallyKey{matchID: matchID, playerID: playerID}]
}

// RosterIndex resolves display names to player ids, one table per match.
// A name shared by two roster players maps to "" and never resolves.
type RosterIndex map[string]map[string]string

func normalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// BuildRosterIndex indexes the roster of every match present in records.
func BuildRosterIndex(records []models.ParticipationRecord) RosterIndex {
	idx := make(RosterIndex)
	for _, rec := range records {
		matchID := rec.ResolvedMatchID()
		playerID := rec.ResolvedPlayerID()
		if matchID == "" || playerID == "" {
			continue
		}
		p, ok := rec.Player.Get()
		if !ok || strings.TrimSpace(p.Name) == "" {
			continue
		}
		key := normalizeName(p.Name)

		roster, ok := idx[matchID]
		if !ok {
			roster = make(map[string]string)
			idx[matchID] = roster
		}
		if existing, seen := roster[key]; seen && existing != playerID {
			roster[key] = ""
			continue
		}
		roster[key] = playerID
	}
	return idx
}

// Resolve looks name up in the roster of matchID only.
func (r RosterIndex) Resolve(matchID, name string) (string, bool) {
	roster, ok := r[matchID]
	if !ok {
		return "", false
	}
	id, ok := roster[normalizeName(name)]
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// TallyEvents attributes events to players. Events carrying a player id use
// it directly; otherwise the name is resolved against that match's roster.
// Unresolved events are dropped.
func TallyEvents(events []models.MatchEvent, roster RosterIndex) (EventTally, int) {
	tally := make(EventTally)
	dropped := 0
	for _, ev := range events {
		if ev.MatchID == "" {
			dropped++
			continue
		}
		playerID := ev.PlayerID
		if playerID == "" {
			id, ok := roster.Resolve(ev.MatchID, ev.PlayerName)
			if !ok {
				dropped++
				continue
			}
			playerID = id
		}
		tally[tallyKey{matchID: ev.MatchID, playerID: playerID}]++
	}
	return tally, dropped
}
