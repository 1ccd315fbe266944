package logic

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/clubstats/football-stats-api/internal/models"
)

type adminService struct {
	pg     PgPool
	logger *zap.SugaredLogger
}

func NewAdminService(pg PgPool, logger *zap.SugaredLogger) AdminService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &adminService{pg: pg, logger: logger}
}

// translatePgError maps constraint violations to sentinel errors.
func translatePgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%w: %s", ErrConflict, pgErr.ConstraintName)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%w: %s", ErrNotFound, pgErr.ConstraintName)
		}
	}
	return err
}

func (s *adminService) insert(ctx context.Context, what, sql string, args ...any) (string, error) {
	id := uuid.New().String()
	if _, err := s.pg.Exec(ctx, sql, append([]any{id}, args...)...); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", what, translatePgError(err))
	}
	s.logger.Infow("Created record", "kind", what, "id", id)
	return id, nil
}

func (s *adminService) CreatePlayer(ctx context.Context, req models.CreatePlayerRequest) (string, error) {
	return s.insert(ctx, "player", `
		INSERT INTO players (id, name, photo_url, position, approved)
		VALUES ($1::uuid, $2, NULLIF($3, ''), NULLIF($4, ''), true)
	`, req.Name, req.PhotoURL, req.Position)
}

func (s *adminService) CreateTeam(ctx context.Context, req models.CreateTeamRequest) (string, error) {
	return s.insert(ctx, "team", `INSERT INTO teams (id, name) VALUES ($1::uuid, $2)`, req.Name)
}

func (s *adminService) CreateTournament(ctx context.Context, req models.CreateTournamentRequest) (string, error) {
	return s.insert(ctx, "tournament", `
		INSERT INTO tournaments (id, name, status, start_date, end_date)
		VALUES ($1::uuid, $2, $3, $4, $5)
	`, req.Name, models.TournamentUpcoming, req.StartDate, req.EndDate)
}

// RegisterTeams adds teams to a tournament. Already registered teams are ignored.
func (s *adminService) RegisterTeams(ctx context.Context, tournamentID string, req models.RegisterTeamsRequest) error {
	for _, teamID := range req.TeamIDs {
		_, err := s.pg.Exec(ctx, `
			INSERT INTO tournament_teams (tournament_id, team_id)
			VALUES ($1::uuid, $2::uuid)
			ON CONFLICT DO NOTHING
		`, tournamentID, teamID)
		if err != nil {
			return fmt.Errorf("failed to register team %s: %w", teamID, translatePgError(err))
		}
	}
	return nil
}

func (s *adminService) CreateMatch(ctx context.Context, req models.CreateMatchRequest) (string, error) {
	var tournamentID *string
	if req.TournamentID != "" {
		tournamentID = &req.TournamentID
	}
	return s.insert(ctx, "match", `
		INSERT INTO matches (id, tournament_id, home_team_id, away_team_id, match_date, venue, status)
		VALUES ($1::uuid, $2::uuid, $3::uuid, $4::uuid, $5, NULLIF($6, ''), $7)
	`, tournamentID, req.HomeTeamID, req.AwayTeamID, req.MatchDate, req.Venue, models.MatchScheduled)
}

// UpdateMatch sets a match's status and score.
func (s *adminService) UpdateMatch(ctx context.Context, matchID string, req models.UpdateMatchRequest) error {
	tag, err := s.pg.Exec(ctx, `
		UPDATE matches SET status = $2, home_score = $3, away_score = $4
		WHERE id = $1::uuid
	`, matchID, req.Status, req.HomeScore, req.AwayScore)
	if err != nil {
		return fmt.Errorf("failed to update match: %w", translatePgError(err))
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// AddToRoster creates the participation record linking a player to a match.
func (s *adminService) AddToRoster(ctx context.Context, matchID string, req models.AddRosterRequest) (string, error) {
	var teamID *string
	if req.TeamID != "" {
		teamID = &req.TeamID
	}
	return s.insert(ctx, "roster entry", `
		INSERT INTO match_players (id, match_id, player_id, team_id)
		VALUES ($1::uuid, $2::uuid, $3::uuid, $4::uuid)
	`, matchID, req.PlayerID, teamID)
}

// UpsertStats writes the single stat row of a player's participation in a match.
func (s *adminService) UpsertStats(ctx context.Context, matchID, playerID string, req models.UpsertStatsRequest) error {
	var participationID string
	err := s.pg.QueryRow(ctx, `
		SELECT id::text FROM match_players
		WHERE match_id = $1::uuid AND player_id = $2::uuid
	`, matchID, playerID).Scan(&participationID)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("participation lookup failed: %w", err)
	}

	_, err = s.pg.Exec(ctx, `
		INSERT INTO player_stats (match_player_id, goals, assists, yellow_cards, red_cards, minutes_played, saves, clean_sheets, rating)
		VALUES ($1::uuid, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (match_player_id) DO UPDATE SET
			goals = EXCLUDED.goals,
			assists = EXCLUDED.assists,
			yellow_cards = EXCLUDED.yellow_cards,
			red_cards = EXCLUDED.red_cards,
			minutes_played = EXCLUDED.minutes_played,
			saves = EXCLUDED.saves,
			clean_sheets = EXCLUDED.clean_sheets,
			rating = EXCLUDED.rating,
			updated_at = now()
	`, participationID, req.Goals, req.Assists, req.YellowCards, req.RedCards,
		req.MinutesPlayed, req.Saves, req.CleanSheets, req.Rating)
	if err != nil {
		return fmt.Errorf("failed to upsert stats: %w", translatePgError(err))
	}
	return nil
}
