package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/clubstats/football-stats-api/internal/models"
)

// board is one named leaderboard and the column it ranks by.
type board struct {
	Key     string
	Title   string
	Metric  string
	Entries []models.LeaderboardEntry
}

func boardsOf(set *models.LeaderboardSet) []board {
	return []board{
		{"topGoalScorers", "Top Goal Scorers", "goals", set.TopGoalScorers},
		{"topAssistMakers", "Top Assist Makers", "assists", set.TopAssistMakers},
		{"mostActivePlayers", "Most Active Players", "matches", set.MostActivePlayers},
		{"goalsPerMatch", "Goals per Match", "goals/match", set.GoalsPerMatch},
		{"topPerformers", "Top Performers", "score", set.TopPerformers},
		{"mostMinutesPlayed", "Most Minutes Played", "minutes", set.MostMinutesPlayed},
		{"topCleanSheets", "Top Clean Sheets", "clean sheets", set.TopCleanSheets},
		{"topSaves", "Top Saves", "saves", set.TopSaves},
	}
}

func findBoard(boards []board, key string) (board, bool) {
	for _, b := range boards {
		if b.Key == key {
			return b, true
		}
	}
	return board{}, false
}

// metricValue formats the ranked column of an entry.
func metricValue(metric string, e models.LeaderboardEntry) string {
	switch metric {
	case "goals":
		return strconv.Itoa(e.Goals)
	case "assists":
		return strconv.Itoa(e.Assists)
	case "matches":
		return strconv.Itoa(e.MatchesPlayed)
	case "goals/match":
		return strconv.FormatFloat(e.GoalsPerMatch, 'f', 2, 64)
	case "score":
		if e.UnifiedScore == nil {
			return "-"
		}
		return strconv.FormatFloat(*e.UnifiedScore, 'f', 1, 64)
	case "minutes":
		return strconv.Itoa(e.TotalMinutes)
	case "clean sheets":
		return strconv.Itoa(e.CleanSheets)
	case "saves":
		return strconv.Itoa(e.Saves)
	}
	return ""
}

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
}

func renderBoard(w io.Writer, b board) {
	fmt.Fprintf(w, "\n%s\n", b.Title)
	if len(b.Entries) == 0 {
		fmt.Fprintln(w, "(no players)")
		return
	}

	table := newTable(w)
	table.Header("#", "Player", b.Metric, "MP")
	for i, e := range b.Entries {
		table.Append(i+1, e.Name, metricValue(b.Metric, e), e.MatchesPlayed)
	}
	table.Render()
}

func renderDashboard(w io.Writer, d *models.LeaderboardDashboard) {
	sections := []struct {
		title string
		cards map[string]models.LeaderboardCard
	}{
		{"Attack", d.Attack},
		{"Goalkeeping", d.Goalkeeping},
		{"Overall", d.Overall},
	}
	for _, s := range sections {
		keys := make([]string, 0, len(s.cards))
		for k := range s.cards {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			card := s.cards[k]
			fmt.Fprintf(w, "\n%s: %s\n", s.title, card.Title)
			table := newTable(w)
			table.Header("#", "Player", card.Metric)
			for _, e := range card.Top {
				value := e.DisplayValue
				if value == "" {
					value = strconv.FormatFloat(e.Value, 'f', -1, 64)
				}
				table.Append(e.Rank, e.PlayerName, value)
			}
			table.Render()
		}
	}
}

func renderTournament(w io.Writer, s *models.TournamentStats) {
	fmt.Fprintf(w, "Tournament %s (%d completed matches)\n", s.TournamentID, s.CompletedMatches)
	if len(s.Players) == 0 {
		fmt.Fprintln(w, "(no players)")
		return
	}

	table := newTable(w)
	table.Header("#", "Player", "G", "A", "Sv", "CS", "MP", "Min", "Rating", "Score")
	for _, p := range s.Players {
		table.Append(p.Rank, p.Name, p.Goals, p.Assists, p.Saves, p.CleanSheets,
			p.MatchesPlayed, p.TotalMinutes,
			strconv.FormatFloat(p.AverageRating, 'f', 2, 64),
			strconv.FormatFloat(p.UnifiedScore, 'f', 1, 64))
	}
	table.Render()
}
