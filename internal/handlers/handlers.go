package handlers

import (
	"context"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/clubstats/football-stats-api/internal/logic"
	"github.com/clubstats/football-stats-api/internal/models"
)

// MaxBodySize limits the size of request bodies to 1MB
const MaxBodySize = 1048576

// IngestQueue defines the interface for the event ingestion worker pool
type IngestQueue interface {
	Enqueue(event *models.MatchEvent) bool
	QueueDepth() int
}

// Postgres is the pool surface the handlers need: queries for schema
// install and a ping for readiness. *pgxpool.Pool satisfies it.
type Postgres interface {
	logic.PgPool
	Ping(ctx context.Context) error
}

// RedisPinger is satisfied by *redis.Client.
type RedisPinger interface {
	Ping(ctx context.Context) *redis.StatusCmd
}

type Config struct {
	WorkerPool IngestQueue
	Postgres   Postgres
	ClickHouse driver.Conn
	Redis      RedisPinger
	Logger     *zap.Logger
	// Services
	Leaderboard  logic.LeaderboardService
	Tournament   logic.TournamentService
	PlayerStats  logic.PlayerStatsService
	MatchReport  logic.MatchReportService
	Achievements logic.AchievementsService
	Club         logic.ClubService
	Admin        logic.AdminService
	// MigrationsDir holds postgres/ and clickhouse/ schema files
	MigrationsDir string
}

type Handler struct {
	pool          IngestQueue
	pg            Postgres
	ch            driver.Conn
	redis         RedisPinger
	logger        *zap.SugaredLogger
	validator     *validator.Validate
	leaderboard   logic.LeaderboardService
	tournament    logic.TournamentService
	playerStats   logic.PlayerStatsService
	matchReport   logic.MatchReportService
	achievements  logic.AchievementsService
	club          logic.ClubService
	admin         logic.AdminService
	migrationsDir string
}

func New(cfg Config) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	migrations := cfg.MigrationsDir
	if migrations == "" {
		migrations = "migrations"
	}
	return &Handler{
		pool:          cfg.WorkerPool,
		pg:            cfg.Postgres,
		ch:            cfg.ClickHouse,
		redis:         cfg.Redis,
		logger:        logger.Sugar(),
		validator:     validator.New(),
		leaderboard:   cfg.Leaderboard,
		tournament:    cfg.Tournament,
		playerStats:   cfg.PlayerStats,
		matchReport:   cfg.MatchReport,
		achievements:  cfg.Achievements,
		club:          cfg.Club,
		admin:         cfg.Admin,
		migrationsDir: migrations,
	}
}
