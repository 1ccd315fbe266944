package logic

import (
	"context"
	"fmt"
	"sort"

	"github.com/clubstats/football-stats-api/internal/models"
)

// GetTournamentStats ranks players over the tournament's completed matches.
// A tournament with no completed matches yields an empty ranking.
func (s *tournamentService) GetTournamentStats(ctx context.Context, tournamentID string) (*models.TournamentStats, error) {
	matchIDs, err := s.fetcher.FetchTournamentMatches(ctx, tournamentID, models.MatchCompleted)
	if err != nil {
		return nil, fmt.Errorf("completed matches: %w", err)
	}

	stats := &models.TournamentStats{
		TournamentID:     tournamentID,
		CompletedMatches: len(matchIDs),
		Players:          []models.TournamentPlayerEntry{},
	}
	if len(matchIDs) == 0 {
		return stats, nil
	}

	snap, err := FetchSnapshot(ctx, s.fetcher, models.RecordScope{MatchIDs: matchIDs})
	if err != nil {
		return nil, err
	}

	agg := BuildAggregates(snap, s.normalizer, s.logger)
	stats.Players = RankTournamentPlayers(agg.Players())
	return stats, nil
}

// RankTournamentPlayers orders by goals, then assists, then average rating,
// all descending. Remaining ties keep first-seen order.
func RankTournamentPlayers(players []*PlayerAggregate) []models.TournamentPlayerEntry {
	ranked := make([]*PlayerAggregate, len(players))
	copy(ranked, players)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Goals != b.Goals {
			return a.Goals > b.Goals
		}
		if a.Assists != b.Assists {
			return a.Assists > b.Assists
		}
		return a.AverageRating > b.AverageRating
	})

	entries := make([]models.TournamentPlayerEntry, 0, len(ranked))
	for i, p := range ranked {
		entries = append(entries, models.TournamentPlayerEntry{
			Rank:          i + 1,
			ID:            p.ID,
			Name:          p.Name,
			PhotoURL:      p.PhotoURL,
			Goals:         p.Goals,
			Assists:       p.Assists,
			YellowCards:   p.YellowCards,
			RedCards:      p.RedCards,
			Saves:         p.Saves,
			CleanSheets:   p.CleanSheets,
			MatchesPlayed: p.MatchesPlayed(),
			TotalMinutes:  p.TotalMinutes,
			AverageRating: Round2(p.AverageRating),
			UnifiedScore:  p.UnifiedScore,
		})
	}
	return entries
}
