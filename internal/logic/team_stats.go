package logic

import (
	"context"
	"fmt"
	"sort"

	"github.com/clubstats/football-stats-api/internal/models"
)

// Points per result
const (
	PointsWin  = 3
	PointsDraw = 1
)

// GetStandings builds the league table of a tournament from its completed
// matches. Registered teams that have not played yet appear with zeros.
func (s *tournamentService) GetStandings(ctx context.Context, tournamentID string) ([]models.StandingRow, error) {
	teams, err := registeredTeams(ctx, s.pg, tournamentID)
	if err != nil {
		return nil, err
	}

	rows, err := s.pg.Query(ctx, `
		SELECT
			m.home_team_id::text, ht.name,
			m.away_team_id::text, at.name,
			COALESCE(m.home_score, 0), COALESCE(m.away_score, 0)
		FROM matches m
		JOIN teams ht ON ht.id = m.home_team_id
		JOIN teams at ON at.id = m.away_team_id
		WHERE m.tournament_id = $1::uuid AND m.status = $2
	`, tournamentID, models.MatchCompleted)
	if err != nil {
		return nil, fmt.Errorf("results query failed: %w", err)
	}
	defer rows.Close()

	var results []models.MatchResult
	for rows.Next() {
		var r models.MatchResult
		if err := rows.Scan(&r.HomeTeamID, &r.HomeTeamName, &r.AwayTeamID, &r.AwayTeamName, &r.HomeScore, &r.AwayScore); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("results row iteration failed: %w", err)
	}

	return ComputeStandings(teams, results), nil
}

// ComputeStandings applies 3/1/0 points and orders by points, goal
// difference, goals scored, then team name.
func ComputeStandings(teams []models.TeamRef, results []models.MatchResult) []models.StandingRow {
	byID := make(map[string]*models.StandingRow)
	var order []*models.StandingRow

	row := func(id, name string) *models.StandingRow {
		if r, ok := byID[id]; ok {
			return r
		}
		r := &models.StandingRow{TeamID: id, TeamName: name}
		byID[id] = r
		order = append(order, r)
		return r
	}

	for _, t := range teams {
		row(t.ID, t.Name)
	}

	for _, res := range results {
		home := row(res.HomeTeamID, res.HomeTeamName)
		away := row(res.AwayTeamID, res.AwayTeamName)

		home.Played++
		away.Played++
		home.GoalsFor += res.HomeScore
		home.GoalsAgainst += res.AwayScore
		away.GoalsFor += res.AwayScore
		away.GoalsAgainst += res.HomeScore

		switch {
		case res.HomeScore > res.AwayScore:
			home.Won++
			away.Lost++
			home.Points += PointsWin
		case res.HomeScore < res.AwayScore:
			away.Won++
			home.Lost++
			away.Points += PointsWin
		default:
			home.Drawn++
			away.Drawn++
			home.Points += PointsDraw
			away.Points += PointsDraw
		}
	}

	table := make([]models.StandingRow, 0, len(order))
	for _, r := range order {
		r.GoalDifference = r.GoalsFor - r.GoalsAgainst
		table = append(table, *r)
	}

	sort.SliceStable(table, func(i, j int) bool {
		a, b := table[i], table[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDifference != b.GoalDifference {
			return a.GoalDifference > b.GoalDifference
		}
		if a.GoalsFor != b.GoalsFor {
			return a.GoalsFor > b.GoalsFor
		}
		return a.TeamName < b.TeamName
	})

	for i := range table {
		table[i].Position = i + 1
	}
	return table
}
