package handlers

import (
	"context"
	"net/http"
	"sync"

	"github.com/clubstats/football-stats-api/internal/logic"
	"github.com/clubstats/football-stats-api/internal/models"
)

// MockIngestQueue records enqueued events. Zero Capacity means unbounded.
type MockIngestQueue struct {
	mu       sync.Mutex
	Events   []*models.MatchEvent
	Capacity int
}

func (m *MockIngestQueue) Enqueue(event *models.MatchEvent) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Capacity > 0 && len(m.Events) >= m.Capacity {
		return false
	}
	m.Events = append(m.Events, event)
	return true
}

func (m *MockIngestQueue) QueueDepth() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Events)
}

type MockLeaderboardService struct {
	Set       *models.LeaderboardSet
	Dashboard *models.LeaderboardDashboard
	Err       error
}

func (m *MockLeaderboardService) GetLeaderboards(ctx context.Context) (*models.LeaderboardSet, error) {
	return m.Set, m.Err
}

func (m *MockLeaderboardService) GetDashboard(ctx context.Context) (*models.LeaderboardDashboard, error) {
	return m.Dashboard, m.Err
}

type MockTournamentService struct {
	logic.TournamentService
	Stats        *models.TournamentStats
	Tournament   *models.Tournament
	Fixtures     []models.Fixture
	Err          error
	FixturesReq  models.GenerateFixturesRequest
	RequestedIDs []string
}

func (m *MockTournamentService) GetTournament(ctx context.Context, id string) (*models.Tournament, error) {
	m.RequestedIDs = append(m.RequestedIDs, id)
	return m.Tournament, m.Err
}

func (m *MockTournamentService) GetTournamentStats(ctx context.Context, id string) (*models.TournamentStats, error) {
	m.RequestedIDs = append(m.RequestedIDs, id)
	return m.Stats, m.Err
}

func (m *MockTournamentService) GenerateFixtures(ctx context.Context, id string, req models.GenerateFixturesRequest) ([]models.Fixture, error) {
	m.RequestedIDs = append(m.RequestedIDs, id)
	m.FixturesReq = req
	return m.Fixtures, m.Err
}

type MockAchievementsService struct {
	List     []models.ContextualAchievement
	Err      error
	Scope    logic.AchievementScope
	PlayerID string
}

func (m *MockAchievementsService) GetAchievements(ctx context.Context, scope logic.AchievementScope, contextID, playerID string) ([]models.ContextualAchievement, error) {
	m.Scope, m.PlayerID = scope, playerID
	return m.List, m.Err
}

func (m *MockAchievementsService) GetPlayerAchievements(ctx context.Context, playerID string) ([]models.PlayerAchievement, error) {
	return []models.PlayerAchievement{}, m.Err
}

type MockAdminService struct {
	logic.AdminService
	ID  string
	Err error
}

func (m *MockAdminService) CreateTeam(ctx context.Context, req models.CreateTeamRequest) (string, error) {
	return m.ID, m.Err
}

func (m *MockAdminService) UpdateMatch(ctx context.Context, matchID string, req models.UpdateMatchRequest) error {
	return m.Err
}

// passAuth admits every request.
type passAuth struct{}

func (passAuth) RequireIdentity(next http.Handler) http.Handler { return next }
