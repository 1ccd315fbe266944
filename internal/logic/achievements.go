package logic

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/clubstats/football-stats-api/internal/models"
)

type achievementsService struct {
	pg         PgPool
	fetcher    RecordFetcher
	normalizer Normalizer
	logger     *zap.SugaredLogger
}

func NewAchievementsService(pg PgPool, fetcher RecordFetcher, normalizer Normalizer, logger *zap.SugaredLogger) AchievementsService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &achievementsService{pg: pg, fetcher: fetcher, normalizer: normalizer, logger: logger}
}

type AchievementScope string

const (
	ScopeMatch      AchievementScope = "match"
	ScopeTournament AchievementScope = "tournament"
)

// contextualRule is an achievement evaluated against one aggregate.
type contextualRule struct {
	id, name, description, icon, tier string
	max                               int
	progress                          func(p *PlayerAggregate) int
}

var matchRules = []contextualRule{
	{
		id: "match_hat_trick", name: "Hat-trick", description: "Score three goals in a match",
		icon: "ball", tier: "gold", max: 3,
		progress: func(p *PlayerAggregate) int { return p.Goals },
	},
	{
		id: "match_brace", name: "Brace", description: "Score two goals in a match",
		icon: "ball", tier: "silver", max: 2,
		progress: func(p *PlayerAggregate) int { return p.Goals },
	},
	{
		id: "match_playmaker", name: "Playmaker", description: "Provide three assists in a match",
		icon: "boot", tier: "gold", max: 3,
		progress: func(p *PlayerAggregate) int { return p.Assists },
	},
	{
		id: "match_clean_sheet", name: "Clean Sheet", description: "Keep a clean sheet",
		icon: "shield", tier: "bronze", max: 1,
		progress: func(p *PlayerAggregate) int { return p.CleanSheets },
	},
	{
		id: "match_wall", name: "The Wall", description: "Make five saves in a match",
		icon: "gloves", tier: "silver", max: 5,
		progress: func(p *PlayerAggregate) int { return p.Saves },
	},
}

func (r contextualRule) evaluate(p *PlayerAggregate) models.ContextualAchievement {
	progress := r.progress(p)
	if progress > r.max {
		progress = r.max
	}
	return models.ContextualAchievement{
		ID:          r.id,
		Name:        r.name,
		Description: r.description,
		Icon:        r.icon,
		Tier:        r.tier,
		PlayerID:    p.ID,
		PlayerName:  p.Name,
		Progress:    progress,
		MaxProgress: r.max,
		IsUnlocked:  progress >= r.max,
	}
}

// GetAchievements evaluates achievements for a match or tournament.
// contextID is the match_id or tournament_id. With a playerID every rule is
// returned with its progress; without one only unlocked achievements of all
// players are returned.
func (s *achievementsService) GetAchievements(ctx context.Context, scope AchievementScope, contextID string, playerID string) ([]models.ContextualAchievement, error) {
	switch scope {
	case ScopeMatch:
		snap, err := FetchSnapshot(ctx, s.fetcher, models.RecordScope{MatchIDs: []string{contextID}})
		if err != nil {
			return nil, err
		}
		agg := BuildAggregates(snap, s.normalizer, s.logger)
		return EvaluateMatchAchievements(agg, playerID), nil
	case ScopeTournament:
		return s.getTournamentAchievements(ctx, contextID, playerID)
	default:
		return nil, fmt.Errorf("unsupported scope: %s", scope)
	}
}

// EvaluateMatchAchievements applies the match rules to a single-match snapshot.
func EvaluateMatchAchievements(agg *Aggregates, playerID string) []models.ContextualAchievement {
	list := []models.ContextualAchievement{}

	if playerID != "" {
		p, ok := agg.Get(playerID)
		if !ok {
			return list
		}
		for _, r := range matchRules {
			list = append(list, r.evaluate(p))
		}
		return list
	}

	for _, p := range agg.Players() {
		for _, r := range matchRules {
			if a := r.evaluate(p); a.IsUnlocked {
				list = append(list, a)
			}
		}
	}
	return list
}

func (s *achievementsService) getTournamentAchievements(ctx context.Context, tournamentID, playerID string) ([]models.ContextualAchievement, error) {
	matchIDs, err := s.fetcher.FetchTournamentMatches(ctx, tournamentID, models.MatchCompleted)
	if err != nil {
		return nil, fmt.Errorf("completed matches: %w", err)
	}
	if len(matchIDs) == 0 {
		return []models.ContextualAchievement{}, nil
	}

	snap, err := FetchSnapshot(ctx, s.fetcher, models.RecordScope{MatchIDs: matchIDs})
	if err != nil {
		return nil, err
	}
	agg := BuildAggregates(snap, s.normalizer, s.logger)
	return EvaluateTournamentAchievements(agg, len(matchIDs), playerID), nil
}

// EvaluateTournamentAchievements awards the golden boot and golden glove to
// the leaders (first-seen order breaks ties) and ever-present to players
// who appeared in every completed match.
func EvaluateTournamentAchievements(agg *Aggregates, completedMatches int, playerID string) []models.ContextualAchievement {
	players := agg.Players()

	var boot, glove *PlayerAggregate
	if top := ViewTopGoalScorers.Rank(players, 1); len(top) > 0 {
		boot = top[0]
	}
	if top := ViewTopCleanSheets.Rank(players, 1); len(top) > 0 {
		glove = top[0]
	}

	list := []models.ContextualAchievement{}
	for _, p := range players {
		if playerID != "" && p.ID != playerID {
			continue
		}

		candidates := []models.ContextualAchievement{
			{
				ID: "tourn_golden_boot", Name: "Golden Boot", Description: "Finish as the tournament's top scorer",
				Icon: "trophy", Tier: "gold", MaxProgress: 1, IsUnlocked: p == boot,
			},
			{
				ID: "tourn_golden_glove", Name: "Golden Glove", Description: "Keep the most clean sheets in the tournament",
				Icon: "gloves", Tier: "gold", MaxProgress: 1, IsUnlocked: p == glove,
			},
			{
				ID: "tourn_ever_present", Name: "Ever Present", Description: "Play every completed match of the tournament",
				Icon: "calendar", Tier: "silver", MaxProgress: completedMatches, Progress: p.MatchesPlayed(),
				IsUnlocked: p.MatchesPlayed() >= completedMatches,
			},
		}

		for _, a := range candidates {
			a.PlayerID = p.ID
			a.PlayerName = p.Name
			if a.IsUnlocked && a.MaxProgress == 1 {
				a.Progress = 1
			}
			if playerID != "" || a.IsUnlocked {
				list = append(list, a)
			}
		}
	}
	return list
}

// GetPlayerAchievements returns the career milestones a player has unlocked.
func (s *achievementsService) GetPlayerAchievements(ctx context.Context, playerID string) ([]models.PlayerAchievement, error) {
	rows, err := s.pg.Query(ctx, `
		SELECT a.code, a.name, a.tier, pa.unlocked_at
		FROM player_achievements pa
		JOIN achievements a ON a.code = pa.achievement_code
		WHERE pa.player_id = $1::uuid
		ORDER BY pa.unlocked_at DESC
	`, playerID)
	if err != nil {
		return nil, fmt.Errorf("player achievements query failed: %w", err)
	}
	defer rows.Close()

	list := []models.PlayerAchievement{}
	for rows.Next() {
		var pa models.PlayerAchievement
		if err := rows.Scan(&pa.Code, &pa.Name, &pa.Tier, &pa.UnlockedAt); err != nil {
			return nil, fmt.Errorf("failed to scan achievement: %w", err)
		}
		list = append(list, pa)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("achievement row iteration failed: %w", err)
	}
	return list, nil
}
