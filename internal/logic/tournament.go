package logic

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/clubstats/football-stats-api/internal/models"
)

type tournamentService struct {
	pg         PgPool
	fetcher    RecordFetcher
	normalizer Normalizer
	logger     *zap.SugaredLogger
}

func NewTournamentService(pg PgPool, fetcher RecordFetcher, normalizer Normalizer, logger *zap.SugaredLogger) TournamentService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &tournamentService{pg: pg, fetcher: fetcher, normalizer: normalizer, logger: logger}
}

const tournamentSelect = `
	SELECT
		t.id::text, t.name, t.status, t.start_date, t.end_date, t.created_at,
		(SELECT count(*) FROM tournament_teams tt WHERE tt.tournament_id = t.id),
		(SELECT count(*) FROM matches m WHERE m.tournament_id = t.id),
		(SELECT count(*) FROM matches m WHERE m.tournament_id = t.id AND m.status = 'completed')
	FROM tournaments t`

func scanTournament(row pgx.Row) (*models.Tournament, error) {
	var t models.Tournament
	if err := row.Scan(&t.ID, &t.Name, &t.Status, &t.StartDate, &t.EndDate, &t.CreatedAt,
		&t.TeamCount, &t.Matches, &t.Completed); err != nil {
		return nil, err
	}
	return &t, nil
}

// GetTournaments lists tournaments, newest first.
func (s *tournamentService) GetTournaments(ctx context.Context) ([]models.Tournament, error) {
	rows, err := s.pg.Query(ctx, tournamentSelect+" ORDER BY t.created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("tournaments query failed: %w", err)
	}
	defer rows.Close()

	tournaments := []models.Tournament{}
	for rows.Next() {
		t, err := scanTournament(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tournament: %w", err)
		}
		tournaments = append(tournaments, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("tournament row iteration failed: %w", err)
	}
	return tournaments, nil
}

func (s *tournamentService) GetTournament(ctx context.Context, id string) (*models.Tournament, error) {
	t, err := scanTournament(s.pg.QueryRow(ctx, tournamentSelect+" WHERE t.id = $1::uuid", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("tournament query failed: %w", err)
	}
	return t, nil
}

// querier is satisfied by both the pool and a transaction.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// registeredTeams returns the tournament's teams in registration order.
func registeredTeams(ctx context.Context, q querier, tournamentID string) ([]models.TeamRef, error) {
	rows, err := q.Query(ctx, `
		SELECT t.id::text, t.name
		FROM tournament_teams tt
		JOIN teams t ON t.id = tt.team_id
		WHERE tt.tournament_id = $1::uuid
		ORDER BY tt.registered_at, t.name
	`, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("registered teams query failed: %w", err)
	}
	defer rows.Close()

	teams := []models.TeamRef{}
	for rows.Next() {
		var t models.TeamRef
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}
