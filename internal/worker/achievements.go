package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/clubstats/football-stats-api/internal/models"
)

// Career counter names, stored as player:{id}:{metric}
const (
	MetricGoals       = "goals"
	MetricAssists     = "assists"
	MetricSaves       = "saves"
	MetricCleanSheets = "clean_sheets"
)

// eventSeenTTL bounds how long a processed event id is remembered.
const eventSeenTTL = 7 * 24 * time.Hour

// DBStore abstracts the database operations
type DBStore interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// StatStore abstracts the storage for career counters (e.g., Redis)
type StatStore interface {
	IncrBy(ctx context.Context, key string, value int64) (int64, error)
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error)
}

// RedisStatStore implements StatStore using Redis
type RedisStatStore struct {
	client *redis.Client
}

func NewRedisStatStore(client *redis.Client) *RedisStatStore {
	return &RedisStatStore{client: client}
}

func (s *RedisStatStore) IncrBy(ctx context.Context, key string, value int64) (int64, error) {
	return s.client.IncrBy(ctx, key, value).Result()
}

func (s *RedisStatStore) SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error) {
	return s.client.SetNX(ctx, key, value, expiration).Result()
}

// AchievementDefinition holds criteria for unlocking
type AchievementDefinition struct {
	Code      string
	Name      string
	Tier      string
	Metric    string
	Threshold int64
}

// DefaultMilestones is used when the achievements table cannot be read.
var DefaultMilestones = []AchievementDefinition{
	{Code: "goals_10", Name: "Finisher", Tier: "bronze", Metric: MetricGoals, Threshold: 10},
	{Code: "goals_50", Name: "Goal Machine", Tier: "silver", Metric: MetricGoals, Threshold: 50},
	{Code: "goals_100", Name: "Centurion", Tier: "gold", Metric: MetricGoals, Threshold: 100},
	{Code: "assists_10", Name: "Provider", Tier: "bronze", Metric: MetricAssists, Threshold: 10},
	{Code: "assists_50", Name: "Maestro", Tier: "gold", Metric: MetricAssists, Threshold: 50},
	{Code: "saves_50", Name: "Safe Hands", Tier: "bronze", Metric: MetricSaves, Threshold: 50},
	{Code: "saves_200", Name: "Brick Wall", Tier: "gold", Metric: MetricSaves, Threshold: 200},
	{Code: "clean_sheets_10", Name: "Shutout Specialist", Tier: "silver", Metric: MetricCleanSheets, Threshold: 10},
}

// AchievementWorker maintains career counters and unlocks milestones
type AchievementWorker struct {
	db        DBStore            // Postgres for definitions and unlocks
	statStore StatStore          // Redis for counters
	logger    *zap.SugaredLogger // Logger for debugging
	defs      map[string][]AchievementDefinition
	mu        sync.RWMutex
	ctx       context.Context
	cancel    context.CancelFunc
	jobQueue  chan *models.MatchEvent
	wg        sync.WaitGroup
	workers   int
}

// NewAchievementWorker creates a new achievement processing worker
func NewAchievementWorker(db DBStore, statStore StatStore, logger *zap.SugaredLogger) *AchievementWorker {
	ctx, cancel := context.WithCancel(context.Background())
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	worker := &AchievementWorker{
		db:        db,
		statStore: statStore,
		logger:    logger,
		defs:      make(map[string][]AchievementDefinition),
		ctx:       ctx,
		cancel:    cancel,
		jobQueue:  make(chan *models.MatchEvent, 10000),
		workers:   2,
	}

	if err := worker.loadAchievementDefinitions(); err != nil {
		logger.Warnw("Failed to load achievement definitions, using defaults", "error", err)
		worker.setDefinitions(DefaultMilestones)
	}

	return worker
}

// Start begins the achievement worker
func (w *AchievementWorker) Start() {
	w.logger.Info("Achievement Worker started")
	for i := 0; i < w.workers; i++ {
		w.wg.Add(1)
		go w.worker()
	}
}

// Stop drains queued events and stops the workers
func (w *AchievementWorker) Stop() {
	close(w.jobQueue)
	w.wg.Wait()
	w.cancel()
	w.logger.Info("Achievement Worker stopped")
}

func (w *AchievementWorker) worker() {
	defer w.wg.Done()
	for event := range w.jobQueue {
		w.ProcessEvent(event)
	}
}

// Enqueue adds an event to the processing queue
func (w *AchievementWorker) Enqueue(event *models.MatchEvent) {
	defer func() {
		if r := recover(); r != nil {
			w.logger.Warnw("Achievement worker stopped, dropping event", "event", event.ID)
		}
	}()
	select {
	case w.jobQueue <- event:
	default:
		w.logger.Warnw("Achievement worker queue full, dropping event", "type", event.Type)
	}
}

func (w *AchievementWorker) setDefinitions(defs []AchievementDefinition) {
	byMetric := make(map[string][]AchievementDefinition)
	for _, d := range defs {
		byMetric[d.Metric] = append(byMetric[d.Metric], d)
	}
	w.mu.Lock()
	w.defs = byMetric
	w.mu.Unlock()
}

// loadAchievementDefinitions loads all achievements from database
func (w *AchievementWorker) loadAchievementDefinitions() error {
	if w.db == nil {
		return fmt.Errorf("no database configured")
	}

	rows, err := w.db.Query(w.ctx, `SELECT code, name, tier, metric, threshold FROM achievements`)
	if err != nil {
		return fmt.Errorf("failed to query achievements: %w", err)
	}
	defer rows.Close()

	var defs []AchievementDefinition
	for rows.Next() {
		var d AchievementDefinition
		if err := rows.Scan(&d.Code, &d.Name, &d.Tier, &d.Metric, &d.Threshold); err != nil {
			w.logger.Errorw("Failed to scan achievement", "error", err)
			continue
		}
		defs = append(defs, d)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	if len(defs) == 0 {
		return fmt.Errorf("achievements table is empty")
	}

	w.setDefinitions(defs)
	w.logger.Infow("Loaded achievement definitions", "count", len(defs))
	return nil
}

// ReloadDefinitions reloads achievement definitions from database
func (w *AchievementWorker) ReloadDefinitions() error {
	return w.loadAchievementDefinitions()
}

// counterIncrements maps an event to the career counters it advances.
// Events without a player id are skipped: career counters are keyed by id
// and name resolution needs a roster the worker does not have.
func counterIncrements(event *models.MatchEvent) map[string]string {
	inc := make(map[string]string)
	switch event.Type {
	case models.EventGoal:
		if event.PlayerID != "" {
			inc[event.PlayerID] = MetricGoals
		}
		if event.RelatedPlayerID != "" && event.RelatedPlayerID != event.PlayerID {
			inc[event.RelatedPlayerID] = MetricAssists
		}
	case models.EventSave:
		if event.PlayerID != "" {
			inc[event.PlayerID] = MetricSaves
		}
	case models.EventCleanSheet:
		if event.PlayerID != "" {
			inc[event.PlayerID] = MetricCleanSheets
		}
	}
	return inc
}

// CounterKey is the Redis key of a player's career counter.
func CounterKey(playerID, metric string) string {
	return fmt.Sprintf("player:%s:%s", playerID, metric)
}

// ProcessEvent advances career counters and unlocks crossed milestones.
// Public for testing; use Enqueue() in production
func (w *AchievementWorker) ProcessEvent(event *models.MatchEvent) {
	inc := counterIncrements(event)
	if len(inc) == 0 {
		return
	}

	// Each event id is counted once even if the batch is replayed.
	first, err := w.statStore.SetNX(w.ctx, "event:"+event.ID.String()+":counted", 1, eventSeenTTL)
	if err != nil {
		w.logger.Errorw("Failed to mark event", "event", event.ID, "error", err)
		return
	}
	if !first {
		return
	}

	for playerID, metric := range inc {
		total, err := w.statStore.IncrBy(w.ctx, CounterKey(playerID, metric), 1)
		if err != nil {
			w.logger.Errorw("Failed to increment counter", "player", playerID, "metric", metric, "error", err)
			continue
		}
		w.checkMilestones(playerID, metric, total-1, total, event.RecordedAt)
	}
}

// checkMilestones unlocks every definition whose threshold lies in (before, after].
func (w *AchievementWorker) checkMilestones(playerID, metric string, before, after int64, at time.Time) {
	w.mu.RLock()
	defs := w.defs[metric]
	w.mu.RUnlock()

	for _, d := range defs {
		if before < d.Threshold && after >= d.Threshold {
			w.unlockAchievement(playerID, d, at)
		}
	}
}

// unlockAchievement records an achievement unlock. Re-unlocking is a no-op.
func (w *AchievementWorker) unlockAchievement(playerID string, def AchievementDefinition, at time.Time) {
	if at.IsZero() {
		at = time.Now().UTC()
	}
	tag, err := w.db.Exec(w.ctx, `
		INSERT INTO player_achievements (player_id, achievement_code, unlocked_at)
		VALUES ($1::uuid, $2, $3)
		ON CONFLICT (player_id, achievement_code) DO NOTHING
	`, playerID, def.Code, at)
	if err != nil {
		w.logger.Errorw("Failed to insert achievement unlock", "code", def.Code, "player", playerID, "error", err)
		return
	}
	if tag.RowsAffected() > 0 {
		w.logger.Infow("Achievement unlocked", "code", def.Code, "player", playerID, "tier", def.Tier)
	}
}
