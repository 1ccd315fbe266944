package logic

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/clubstats/football-stats-api/internal/models"
)

// EventsIngestedKey is the Redis counter the ingestion pipeline increments
// for every persisted match event.
const EventsIngestedKey = "club:events:ingested"

type clubService struct {
	pg     PgPool
	redis  RedisClient
	logger *zap.SugaredLogger
}

func NewClubService(pg PgPool, rdb RedisClient, logger *zap.SugaredLogger) ClubService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &clubService{pg: pg, redis: rdb, logger: logger}
}

// GetOverview returns headline counts for the club.
func (s *clubService) GetOverview(ctx context.Context) (*models.ClubOverview, error) {
	var o models.ClubOverview
	err := s.pg.QueryRow(ctx, `
		SELECT
			(SELECT count(*) FROM players),
			(SELECT count(*) FROM teams),
			(SELECT count(*) FROM matches),
			(SELECT count(*) FROM matches WHERE status = 'completed'),
			(SELECT count(*) FROM tournaments),
			(SELECT COALESCE(sum(goals), 0) FROM player_stats)
	`).Scan(&o.Players, &o.Teams, &o.Matches, &o.CompletedMatches, &o.Tournaments, &o.Goals)
	if err != nil {
		return nil, fmt.Errorf("overview query failed: %w", err)
	}

	if s.redis != nil {
		val, err := s.redis.Get(ctx, EventsIngestedKey).Result()
		switch {
		case errors.Is(err, redis.Nil):
		case err != nil:
			s.logger.Warnw("Failed to read ingestion counter", "error", err)
		default:
			o.EventsIngested, _ = strconv.ParseInt(val, 10, 64)
		}
	}

	return &o, nil
}
