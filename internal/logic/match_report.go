package logic

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/clubstats/football-stats-api/internal/models"
)

type matchReportService struct {
	pg         PgPool
	fetcher    RecordFetcher
	normalizer Normalizer
	logger     *zap.SugaredLogger
}

func NewMatchReportService(pg PgPool, fetcher RecordFetcher, normalizer Normalizer, logger *zap.SugaredLogger) MatchReportService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &matchReportService{pg: pg, fetcher: fetcher, normalizer: normalizer, logger: logger}
}

// GetMatchDetails fetches the header, the normalized roster and the event
// timeline of one match.
func (s *matchReportService) GetMatchDetails(ctx context.Context, matchID string) (*models.MatchDetail, error) {
	var (
		summary  *models.MatchSummary
		snap     *Snapshot
		timeline []models.MatchEvent
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		summary, err = s.getMatchSummary(ctx, matchID)
		return err
	})

	g.Go(func() error {
		var err error
		snap, err = FetchSnapshot(ctx, s.fetcher, models.RecordScope{MatchIDs: []string{matchID}})
		return err
	})

	g.Go(func() error {
		var err error
		timeline, err = s.fetcher.FetchEvents(ctx, models.EventFilter{MatchIDs: []string{matchID}})
		if err != nil {
			return fmt.Errorf("timeline: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &models.MatchDetail{
		Match:    *summary,
		Roster:   BuildRoster(snap, s.normalizer),
		Timeline: timeline,
	}, nil
}

// BuildRoster normalizes every participation of the snapshot in record order.
// Placeholder players are left out as they are everywhere else.
func BuildRoster(snap *Snapshot, n Normalizer) []models.RosterLine {
	tallies, _ := snap.Tallies()

	roster := make([]models.RosterLine, 0, len(snap.Records))
	for _, rec := range snap.Records {
		playerID := rec.ResolvedPlayerID()
		name := rec.DisplayName()
		if playerID == "" || name == models.UnknownPlayerName {
			continue
		}
		c := n.Normalize(rec, tallies)
		roster = append(roster, models.RosterLine{
			PlayerID:      playerID,
			Name:          name,
			PhotoURL:      rec.PhotoURL(),
			TeamID:        rec.TeamID,
			Goals:         c.Goals,
			Assists:       c.Assists,
			YellowCards:   c.YellowCards,
			RedCards:      c.RedCards,
			Saves:         c.Saves,
			CleanSheets:   c.CleanSheets,
			OwnGoals:      c.OwnGoals,
			MinutesPlayed: c.MinutesPlayed,
			Rating:        c.Rating,
		})
	}
	return roster
}

func (s *matchReportService) getMatchSummary(ctx context.Context, matchID string) (*models.MatchSummary, error) {
	var m models.MatchSummary
	err := s.pg.QueryRow(ctx, `
		SELECT
			m.id::text, COALESCE(m.tournament_id::text, ''), COALESCE(m.round, 0),
			m.home_team_id::text, ht.name, m.away_team_id::text, at.name,
			COALESCE(m.home_score, 0), COALESCE(m.away_score, 0),
			m.status, m.match_date, COALESCE(m.venue, '')
		FROM matches m
		JOIN teams ht ON ht.id = m.home_team_id
		JOIN teams at ON at.id = m.away_team_id
		WHERE m.id = $1::uuid
	`, matchID).Scan(
		&m.ID, &m.TournamentID, &m.Round,
		&m.HomeTeamID, &m.HomeTeamName, &m.AwayTeamID, &m.AwayTeamName,
		&m.HomeScore, &m.AwayScore,
		&m.Status, &m.MatchDate, &m.Venue,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("match query failed: %w", err)
	}
	return &m, nil
}
