// Command api serves the club stats REST API.
//
//	@title						Club Football Stats API
//	@version					1.0
//	@description				Leaderboards, tournament stats and achievements for a members football club.
//	@BasePath					/api/v1
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/swaggo/swag"
	"go.uber.org/zap"

	"github.com/clubstats/football-stats-api/docs"
	"github.com/clubstats/football-stats-api/internal/auth"
	"github.com/clubstats/football-stats-api/internal/config"
	"github.com/clubstats/football-stats-api/internal/handlers"
	"github.com/clubstats/football-stats-api/internal/logic"
	"github.com/clubstats/football-stats-api/internal/worker"
)

const tokenDuration = 24 * time.Hour

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("Server exited with error", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(cfg *config.Config, logger *zap.Logger) error {
	sugar := logger.Sugar()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	keeperSource, err := logic.ParseKeeperStatsSource(cfg.KeeperStatsSource)
	if err != nil {
		return err
	}

	// PostgreSQL
	pgPool, err := pgxpool.New(ctx, cfg.PostgresURL)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer pgPool.Close()
	if err := pgPool.Ping(ctx); err != nil {
		return fmt.Errorf("ping postgres: %w", err)
	}
	sugar.Info("Connected to PostgreSQL")

	// ClickHouse
	chOpts, err := clickhouse.ParseDSN(cfg.ClickHouseURL)
	if err != nil {
		return fmt.Errorf("parse clickhouse dsn: %w", err)
	}
	chConn, err := clickhouse.Open(chOpts)
	if err != nil {
		return fmt.Errorf("connect clickhouse: %w", err)
	}
	defer chConn.Close()
	if err := chConn.Ping(ctx); err != nil {
		return fmt.Errorf("ping clickhouse: %w", err)
	}
	sugar.Info("Connected to ClickHouse")

	// Redis
	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("parse redis url: %w", err)
	}
	rdb := redis.NewClient(redisOpts)
	defer rdb.Close()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}
	sugar.Info("Connected to Redis")

	// Stats engine
	normalizer := logic.NewNormalizer(keeperSource, cfg.DefaultMinutes)
	fetcher := logic.NewRecordFetcher(pgPool, chConn, sugar)

	// Background workers. The achievement worker must outlive the pool
	// because the pool hands it every persisted event.
	achievementWorker := worker.NewAchievementWorker(pgPool, worker.NewRedisStatStore(rdb), sugar)
	achievementWorker.Start()

	pool := worker.NewPool(worker.PoolConfig{
		WorkerCount:   cfg.WorkerCount,
		QueueSize:     cfg.QueueSize,
		BatchSize:     cfg.BatchSize,
		FlushInterval: cfg.FlushInterval,
		ClickHouse:    chConn,
		Counters:      worker.NewRedisStatStore(rdb),
		Achievements:  achievementWorker,
		Logger:        logger,
	})
	pool.Start(ctx)

	h := handlers.New(handlers.Config{
		WorkerPool: pool,
		Postgres:   pgPool,
		ClickHouse: chConn,
		Redis:      rdb,
		Logger:     logger,
		Leaderboard: logic.NewLeaderboardService(fetcher, normalizer, logic.LeaderboardLimits{
			Full:    cfg.LeaderboardSize,
			Summary: cfg.SummarySize,
		}, sugar),
		Tournament:   logic.NewTournamentService(pgPool, fetcher, normalizer, sugar),
		PlayerStats:  logic.NewPlayerStatsService(pgPool, fetcher, normalizer, sugar),
		MatchReport:  logic.NewMatchReportService(pgPool, fetcher, normalizer, sugar),
		Achievements: logic.NewAchievementsService(pgPool, fetcher, normalizer, sugar),
		Club:         logic.NewClubService(pgPool, rdb, sugar),
		Admin:        logic.NewAdminService(pgPool, sugar),
	})

	authSvc := auth.NewService(cfg.JWTSecret, cfg.JWTIssuer, tokenDuration)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/doc.json", func(w http.ResponseWriter, r *http.Request) {
		doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(doc))
	})
	r.Mount("/api/v1", h.Routes(authSvc, auth.RequireAdmin))

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		sugar.Infow("API listening", "port", cfg.Port, "env", cfg.Env)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			pool.Stop()
			achievementWorker.Stop()
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
		sugar.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("Graceful shutdown failed", "error", err)
		srv.Close()
	}

	// Flush queued events before the achievement worker drains
	pool.Stop()
	achievementWorker.Stop()
	sugar.Info("Server stopped")
	return nil
}
