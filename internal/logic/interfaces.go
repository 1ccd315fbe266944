package logic

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"

	"github.com/clubstats/football-stats-api/internal/models"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrFixturesExist  = errors.New("fixtures already exist for tournament")
	ErrNotEnoughTeams = errors.New("at least two teams are required")
	ErrConflict       = errors.New("conflicting record")
)

// PgPool defines the interface for PostgreSQL connection pool
type PgPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

// RedisClient defines the interface for Redis client
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// RecordFetcher is the read boundary to storage. Every join shape is already
// normalized by the time records leave it.
type RecordFetcher interface {
	FetchParticipationRecords(ctx context.Context, scope models.RecordScope) ([]models.ParticipationRecord, error)
	FetchEvents(ctx context.Context, filter models.EventFilter) ([]models.MatchEvent, error)
	FetchTournamentMatches(ctx context.Context, tournamentID, status string) ([]string, error)
}

type LeaderboardService interface {
	GetLeaderboards(ctx context.Context) (*models.LeaderboardSet, error)
	GetDashboard(ctx context.Context) (*models.LeaderboardDashboard, error)
}

type TournamentService interface {
	GetTournaments(ctx context.Context) ([]models.Tournament, error)
	GetTournament(ctx context.Context, id string) (*models.Tournament, error)
	GetTournamentStats(ctx context.Context, tournamentID string) (*models.TournamentStats, error)
	GetStandings(ctx context.Context, tournamentID string) ([]models.StandingRow, error)
	GenerateFixtures(ctx context.Context, tournamentID string, req models.GenerateFixturesRequest) ([]models.Fixture, error)
}

type PlayerStatsService interface {
	GetPlayerStats(ctx context.Context, playerID string) (*models.PlayerProfileStats, error)
}

type MatchReportService interface {
	GetMatchDetails(ctx context.Context, matchID string) (*models.MatchDetail, error)
}

type AchievementsService interface {
	GetAchievements(ctx context.Context, scope AchievementScope, contextID string, playerID string) ([]models.ContextualAchievement, error)
	GetPlayerAchievements(ctx context.Context, playerID string) ([]models.PlayerAchievement, error)
}

type ClubService interface {
	GetOverview(ctx context.Context) (*models.ClubOverview, error)
}

type AdminService interface {
	CreatePlayer(ctx context.Context, req models.CreatePlayerRequest) (string, error)
	CreateTeam(ctx context.Context, req models.CreateTeamRequest) (string, error)
	CreateTournament(ctx context.Context, req models.CreateTournamentRequest) (string, error)
	RegisterTeams(ctx context.Context, tournamentID string, req models.RegisterTeamsRequest) error
	CreateMatch(ctx context.Context, req models.CreateMatchRequest) (string, error)
	UpdateMatch(ctx context.Context, matchID string, req models.UpdateMatchRequest) error
	AddToRoster(ctx context.Context, matchID string, req models.AddRosterRequest) (string, error)
	UpsertStats(ctx context.Context, matchID, playerID string, req models.UpsertStatsRequest) error
}
