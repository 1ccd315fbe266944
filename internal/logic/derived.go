package logic

import "math"

// Unified score weights
const (
	GoalWeight       = 3.0
	AssistWeight     = 2.0
	SaveWeight       = 0.5
	CleanSheetWeight = 2.0
	OwnGoalPenalty   = 2.0
)

// Round2 rounds half away from zero to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// PerMatch returns total/matches rounded to two places, or 0 without matches.
func PerMatch(total, matches int) float64 {
	if matches <= 0 {
		return 0
	}
	return Round2(float64(total) / float64(matches))
}

// UnifiedScore is the weighted single-number performance metric. It is left
// unrounded.
func UnifiedScore(goals, assists, saves, cleanSheets, ownGoals int) float64 {
	return GoalWeight*float64(goals) +
		AssistWeight*float64(assists) +
		SaveWeight*float64(saves) +
		CleanSheetWeight*float64(cleanSheets) -
		OwnGoalPenalty*float64(ownGoals)
}

// AverageRating is the mean of the non-null ratings, 0 when none exist.
func AverageRating(sum float64, rated int) float64 {
	if rated <= 0 {
		return 0
	}
	return sum / float64(rated)
}

// Finalize computes derived metrics on every accumulator. Call it once after
// all records have been folded.
func (a *Aggregates) Finalize() {
	for _, p := range a.order {
		p.finalize()
	}
}

func (p *PlayerAggregate) finalize() {
	matches := p.MatchesPlayed()
	p.GoalsPerMatch = PerMatch(p.Goals, matches)
	p.AssistsPerMatch = PerMatch(p.Assists, matches)
	p.UnifiedScore = UnifiedScore(p.Goals, p.Assists, p.Saves, p.CleanSheets, p.OwnGoals)
	p.AverageRating = AverageRating(p.RatingSum, p.RatedMatches)
}
