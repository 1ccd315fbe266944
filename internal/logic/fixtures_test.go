package logic

import (
	"fmt"
	"testing"
	"time"

	"github.com/clubstats/football-stats-api/internal/models"
)

func teamIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("t%d", i+1)
	}
	return ids
}

func TestRoundRobinCoversEveryPairing(t *testing.T) {
	for _, n := range []int{2, 3, 4, 5, 6, 9} {
		t.Run(fmt.Sprintf("%d teams", n), func(t *testing.T) {
			fixtures := RoundRobin(teamIDs(n), false)

			wantMatches := n * (n - 1) / 2
			if len(fixtures) != wantMatches {
				t.Fatalf("got %d fixtures; want %d", len(fixtures), wantMatches)
			}

			wantRounds := n - 1
			if n%2 == 1 {
				wantRounds = n
			}

			seen := make(map[string]bool)
			perRound := make(map[int]map[string]bool)
			for _, f := range fixtures {
				if f.HomeTeamID == f.AwayTeamID {
					t.Fatalf("team %s plays itself", f.HomeTeamID)
				}
				if f.Round < 1 || f.Round > wantRounds {
					t.Errorf("round %d out of range 1..%d", f.Round, wantRounds)
				}

				a, b := f.HomeTeamID, f.AwayTeamID
				if a > b {
					a, b = b, a
				}
				key := a + "-" + b
				if seen[key] {
					t.Errorf("pairing %s scheduled twice", key)
				}
				seen[key] = true

				if perRound[f.Round] == nil {
					perRound[f.Round] = make(map[string]bool)
				}
				for _, team := range []string{f.HomeTeamID, f.AwayTeamID} {
					if perRound[f.Round][team] {
						t.Errorf("team %s plays twice in round %d", team, f.Round)
					}
					perRound[f.Round][team] = true
				}
			}
		})
	}
}

func TestRoundRobinDouble(t *testing.T) {
	fixtures := RoundRobin(teamIDs(4), true)
	if len(fixtures) != 12 {
		t.Fatalf("got %d fixtures; want 12", len(fixtures))
	}

	legs := make(map[string]int)
	for _, f := range fixtures {
		legs[f.HomeTeamID+"@"+f.AwayTeamID]++
		if f.Round < 1 || f.Round > 6 {
			t.Errorf("round %d out of range 1..6", f.Round)
		}
	}
	for key, n := range legs {
		if n != 1 {
			t.Errorf("fixture %s appears %d times", key, n)
		}
	}
	if len(legs) != 12 {
		t.Errorf("got %d distinct home/away fixtures; want 12", len(legs))
	}
}

func TestRoundRobinTooFewTeams(t *testing.T) {
	if got := RoundRobin(nil, false); got != nil {
		t.Errorf("RoundRobin(nil) = %v; want nil", got)
	}
	if got := RoundRobin([]string{"t1"}, true); got != nil {
		t.Errorf("RoundRobin(1 team) = %v; want nil", got)
	}
}

func TestRoundRobinDoesNotMutateInput(t *testing.T) {
	ids := teamIDs(5)
	RoundRobin(ids, false)
	for i, id := range ids {
		if id != fmt.Sprintf("t%d", i+1) {
			t.Fatalf("input mutated: %v", ids)
		}
	}
}

func TestScheduleFixtures(t *testing.T) {
	start := time.Date(2026, 3, 1, 15, 0, 0, 0, time.UTC)
	fixtures := []models.Fixture{{Round: 1}, {Round: 1}, {Round: 3}}

	ScheduleFixtures(fixtures, start, 0)

	if !fixtures[0].MatchDate.Equal(start) || !fixtures[1].MatchDate.Equal(start) {
		t.Errorf("round 1 dates = %v, %v; want %v", fixtures[0].MatchDate, fixtures[1].MatchDate, start)
	}
	if want := start.AddDate(0, 0, 14); !fixtures[2].MatchDate.Equal(want) {
		t.Errorf("round 3 date = %v; want %v", fixtures[2].MatchDate, want)
	}
	if fixtures[0].MatchID == "" || fixtures[0].MatchID == fixtures[1].MatchID {
		t.Error("fixtures need distinct match ids")
	}

	ScheduleFixtures(fixtures, start, 3)
	if want := start.AddDate(0, 0, 6); !fixtures[2].MatchDate.Equal(want) {
		t.Errorf("round 3 date with 3-day spacing = %v; want %v", fixtures[2].MatchDate, want)
	}
}
