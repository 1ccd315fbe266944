package logic

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/clubstats/football-stats-api/internal/models"
)

// DefaultDaysBetweenRounds spaces rounds when the request does not.
const DefaultDaysBetweenRounds = 7

// RoundRobin pairs every team with every other team once (twice when double
// is set, with home and away swapped) using the circle method. An odd team
// count gets a bye each round.
func RoundRobin(teamIDs []string, double bool) []models.Fixture {
	if len(teamIDs) < 2 {
		return nil
	}

	ring := make([]string, len(teamIDs))
	copy(ring, teamIDs)
	if len(ring)%2 == 1 {
		ring = append(ring, "") // bye
	}
	n := len(ring)
	rounds := n - 1

	var fixtures []models.Fixture
	for r := 0; r < rounds; r++ {
		for i := 0; i < n/2; i++ {
			home, away := ring[i], ring[n-1-i]
			if home == "" || away == "" {
				continue
			}
			// Alternate the fixed team's venue so it is not always at home.
			if i == 0 && r%2 == 1 {
				home, away = away, home
			}
			fixtures = append(fixtures, models.Fixture{Round: r + 1, HomeTeamID: home, AwayTeamID: away})
		}

		// Rotate everything except the first slot clockwise.
		last := ring[n-1]
		copy(ring[2:], ring[1:n-1])
		ring[1] = last
	}

	if double {
		firstLeg := len(fixtures)
		for _, f := range fixtures[:firstLeg] {
			fixtures = append(fixtures, models.Fixture{
				Round:      f.Round + rounds,
				HomeTeamID: f.AwayTeamID,
				AwayTeamID: f.HomeTeamID,
			})
		}
	}
	return fixtures
}

// ScheduleFixtures assigns match ids and dates, one round every daysBetween days.
func ScheduleFixtures(fixtures []models.Fixture, start time.Time, daysBetween int) {
	if daysBetween <= 0 {
		daysBetween = DefaultDaysBetweenRounds
	}
	for i := range fixtures {
		fixtures[i].MatchID = uuid.New().String()
		fixtures[i].MatchDate = start.AddDate(0, 0, (fixtures[i].Round-1)*daysBetween)
	}
}

// GenerateFixtures creates the round-robin schedule for a tournament. The
// tournament row is locked for the duration so two concurrent calls cannot
// both pass the existing-matches guard.
func (s *tournamentService) GenerateFixtures(ctx context.Context, tournamentID string, req models.GenerateFixturesRequest) ([]models.Fixture, error) {
	tx, err := s.pg.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var locked string
	err = tx.QueryRow(ctx, `SELECT id::text FROM tournaments WHERE id = $1::uuid FOR UPDATE`, tournamentID).Scan(&locked)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("tournament lock failed: %w", err)
	}

	var existing int
	if err := tx.QueryRow(ctx, `SELECT count(*) FROM matches WHERE tournament_id = $1::uuid`, tournamentID).Scan(&existing); err != nil {
		return nil, fmt.Errorf("existing matches query failed: %w", err)
	}
	if existing > 0 {
		return nil, ErrFixturesExist
	}

	teams, err := registeredTeams(ctx, tx, tournamentID)
	if err != nil {
		return nil, err
	}
	if len(teams) < 2 {
		return nil, ErrNotEnoughTeams
	}

	ids := make([]string, len(teams))
	for i, t := range teams {
		ids[i] = t.ID
	}
	fixtures := RoundRobin(ids, req.DoubleRounds)
	ScheduleFixtures(fixtures, req.StartDate, req.DaysBetween)

	for _, f := range fixtures {
		_, err := tx.Exec(ctx, `
			INSERT INTO matches (id, tournament_id, round, home_team_id, away_team_id, match_date, status)
			VALUES ($1::uuid, $2::uuid, $3, $4::uuid, $5::uuid, $6, $7)
		`, f.MatchID, tournamentID, f.Round, f.HomeTeamID, f.AwayTeamID, f.MatchDate, models.MatchScheduled)
		if err != nil {
			return nil, fmt.Errorf("failed to insert fixture: %w", err)
		}
	}

	if _, err := tx.Exec(ctx, `UPDATE tournaments SET status = $2 WHERE id = $1::uuid AND status = $3`,
		tournamentID, models.TournamentOngoing, models.TournamentUpcoming); err != nil {
		return nil, fmt.Errorf("failed to update tournament status: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit fixtures: %w", err)
	}

	s.logger.Infow("Generated fixtures", "tournament", tournamentID, "teams", len(teams), "matches", len(fixtures))
	return fixtures, nil
}
