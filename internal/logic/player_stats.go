package logic

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/clubstats/football-stats-api/internal/models"
)

type playerStatsService struct {
	pg         PgPool
	fetcher    RecordFetcher
	normalizer Normalizer
	logger     *zap.SugaredLogger
}

func NewPlayerStatsService(pg PgPool, fetcher RecordFetcher, normalizer Normalizer, logger *zap.SugaredLogger) PlayerStatsService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &playerStatsService{pg: pg, fetcher: fetcher, normalizer: normalizer, logger: logger}
}

// GetPlayerStats aggregates one player's career. The snapshot covers the
// full rosters of the player's matches so name-only events resolve exactly
// as they do on the leaderboards.
func (s *playerStatsService) GetPlayerStats(ctx context.Context, playerID string) (*models.PlayerProfileStats, error) {
	player, err := s.getPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	profile := &models.PlayerProfileStats{
		ID:       player.ID,
		Name:     player.Name,
		PhotoURL: player.PhotoURL,
		Matches:  []models.PlayerMatchLine{},
	}

	own, err := s.fetcher.FetchParticipationRecords(ctx, models.RecordScope{PlayerID: playerID})
	if err != nil {
		return nil, fmt.Errorf("player participations: %w", err)
	}
	if len(own) == 0 {
		return profile, nil
	}

	matchIDs := make([]string, 0, len(own))
	seen := make(map[string]bool, len(own))
	for _, rec := range own {
		id := rec.ResolvedMatchID()
		if id != "" && !seen[id] {
			seen[id] = true
			matchIDs = append(matchIDs, id)
		}
	}

	snap, err := FetchSnapshot(ctx, s.fetcher, models.RecordScope{MatchIDs: matchIDs})
	if err != nil {
		return nil, err
	}
	tallies, _ := snap.Tallies()

	agg := NewAggregates()
	for _, rec := range snap.Records {
		if rec.ResolvedPlayerID() != playerID {
			continue
		}
		c := s.normalizer.Normalize(rec, tallies)
		if !agg.Fold(rec, c) {
			continue
		}
		line := models.PlayerMatchLine{
			MatchID:       rec.ResolvedMatchID(),
			Goals:         c.Goals,
			Assists:       c.Assists,
			YellowCards:   c.YellowCards,
			RedCards:      c.RedCards,
			Saves:         c.Saves,
			CleanSheets:   c.CleanSheets,
			MinutesPlayed: c.MinutesPlayed,
			Rating:        c.Rating,
			HasStats:      c.HasStats,
		}
		if m, ok := rec.Match.Get(); ok {
			line.MatchDate = m.MatchDate
			line.TournamentID = m.TournamentID
		}
		profile.Matches = append(profile.Matches, line)
	}
	agg.Finalize()

	if p, ok := agg.Get(playerID); ok {
		profile.Goals = p.Goals
		profile.Assists = p.Assists
		profile.YellowCards = p.YellowCards
		profile.RedCards = p.RedCards
		profile.Saves = p.Saves
		profile.CleanSheets = p.CleanSheets
		profile.OwnGoals = p.OwnGoals
		profile.MatchesPlayed = p.MatchesPlayed()
		profile.TotalMinutes = p.TotalMinutes
		profile.GoalsPerMatch = p.GoalsPerMatch
		profile.AssistsPerMatch = p.AssistsPerMatch
		profile.AverageRating = Round2(p.AverageRating)
		profile.UnifiedScore = p.UnifiedScore
	}

	return profile, nil
}

func (s *playerStatsService) getPlayer(ctx context.Context, playerID string) (*models.Player, error) {
	var p models.Player
	err := s.pg.QueryRow(ctx, `
		SELECT id::text, name, COALESCE(photo_url, ''), COALESCE(position, ''), approved, created_at
		FROM players
		WHERE id = $1::uuid
	`, playerID).Scan(&p.ID, &p.Name, &p.PhotoURL, &p.Position, &p.Approved, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("player query failed: %w", err)
	}
	return &p, nil
}
