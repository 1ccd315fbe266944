package logic

import (
	"context"
	"sync"

	"github.com/clubstats/football-stats-api/internal/models"
)

// mockFetcher serves canned records and events. Safe for concurrent use.
type mockFetcher struct {
	mu sync.Mutex

	records    []models.ParticipationRecord
	events     map[models.EventType][]models.MatchEvent
	tournament map[string][]string

	recordsErr error
	eventsErr  map[models.EventType]error

	scopes  []models.RecordScope
	filters []models.EventFilter
}

func (m *mockFetcher) FetchParticipationRecords(ctx context.Context, scope models.RecordScope) ([]models.ParticipationRecord, error) {
	m.mu.Lock()
	m.scopes = append(m.scopes, scope)
	m.mu.Unlock()
	if m.recordsErr != nil {
		return nil, m.recordsErr
	}

	inScope := func(rec models.ParticipationRecord) bool {
		if scope.PlayerID != "" && rec.ResolvedPlayerID() != scope.PlayerID {
			return false
		}
		if len(scope.MatchIDs) == 0 {
			return true
		}
		for _, id := range scope.MatchIDs {
			if rec.ResolvedMatchID() == id {
				return true
			}
		}
		return false
	}

	out := []models.ParticipationRecord{}
	for _, rec := range m.records {
		if inScope(rec) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (m *mockFetcher) FetchEvents(ctx context.Context, filter models.EventFilter) ([]models.MatchEvent, error) {
	m.mu.Lock()
	m.filters = append(m.filters, filter)
	m.mu.Unlock()
	if err := m.eventsErr[filter.Type]; err != nil {
		return nil, err
	}
	return m.events[filter.Type], nil
}

func (m *mockFetcher) FetchTournamentMatches(ctx context.Context, tournamentID, status string) ([]string, error) {
	return m.tournament[tournamentID], nil
}

func floatPtr(v float64) *float64 { return &v }

// rec builds a participation record with a joined player and match.
func rec(matchID, playerID, name string, stats *models.StatRow) models.ParticipationRecord {
	r := models.ParticipationRecord{
		ID:       matchID + "/" + playerID,
		PlayerID: playerID,
		MatchID:  matchID,
		Player:   models.Some(models.PlayerRef{ID: playerID, Name: name}),
		Match:    models.Some(models.MatchRef{ID: matchID, Status: models.MatchCompleted}),
	}
	if stats != nil {
		r.Stats = models.Some(*stats)
	}
	return r
}

func event(t models.EventType, matchID, playerID, name string) models.MatchEvent {
	return models.MatchEvent{Type: t, MatchID: matchID, PlayerID: playerID, PlayerName: name}
}

// aggregate folds records with events through the default normalizer.
func aggregate(records []models.ParticipationRecord, saves, cleanSheets, ownGoals []models.MatchEvent) *Aggregates {
	snap := &Snapshot{Records: records, Saves: saves, CleanSheets: cleanSheets, OwnGoals: ownGoals}
	return BuildAggregates(snap, NewNormalizer(KeeperStatsAdditive, DefaultMinutesPlayed), nil)
}
