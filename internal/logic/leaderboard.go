package logic

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/clubstats/football-stats-api/internal/models"
)

var (
	aggregationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "club_stats_aggregation_duration_seconds",
		Help:    "Time spent fetching and aggregating a stats snapshot",
		Buckets: prometheus.DefBuckets,
	}, []string{"view"})

	aggregationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "club_stats_aggregation_failures_total",
		Help: "Aggregations aborted by an upstream fetch failure",
	}, []string{"view"})
)

// LeaderboardLimits caps the full and summary views.
type LeaderboardLimits struct {
	Full    int
	Summary int
}

type leaderboardService struct {
	fetcher    RecordFetcher
	normalizer Normalizer
	limits     LeaderboardLimits
	logger     *zap.SugaredLogger
}

func NewLeaderboardService(fetcher RecordFetcher, normalizer Normalizer, limits LeaderboardLimits, logger *zap.SugaredLogger) LeaderboardService {
	if limits.Full <= 0 {
		limits.Full = DefaultLeaderboardSize
	}
	if limits.Summary <= 0 {
		limits.Summary = DefaultSummarySize
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &leaderboardService{fetcher: fetcher, normalizer: normalizer, limits: limits, logger: logger}
}

// aggregate builds the club-wide snapshot shared by every view.
func (s *leaderboardService) aggregate(ctx context.Context, view string) (*Aggregates, error) {
	start := time.Now()
	defer func() {
		aggregationDuration.WithLabelValues(view).Observe(time.Since(start).Seconds())
	}()

	snap, err := FetchSnapshot(ctx, s.fetcher, models.RecordScope{})
	if err != nil {
		aggregationFailures.WithLabelValues(view).Inc()
		return nil, err
	}
	return BuildAggregates(snap, s.normalizer, s.logger), nil
}

// GetLeaderboards computes all eight views from one snapshot.
func (s *leaderboardService) GetLeaderboards(ctx context.Context) (*models.LeaderboardSet, error) {
	agg, err := s.aggregate(ctx, "leaderboards")
	if err != nil {
		return nil, err
	}
	return BuildLeaderboardSet(agg, s.limits.Full), nil
}

// GetDashboard computes the condensed top-N cards.
func (s *leaderboardService) GetDashboard(ctx context.Context) (*models.LeaderboardDashboard, error) {
	agg, err := s.aggregate(ctx, "dashboard")
	if err != nil {
		return nil, err
	}
	return BuildDashboard(agg, s.limits.Summary), nil
}
