package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	summaryOnly bool
	boardName   string
)

var leaderboardsCmd = &cobra.Command{
	Use:   "leaderboards",
	Short: "Print the club leaderboards",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()
		c := newClient()

		if summaryOnly {
			d, err := c.Dashboard(ctx)
			if err != nil {
				return err
			}
			renderDashboard(os.Stdout, d)
			return nil
		}

		set, err := c.Leaderboards(ctx)
		if err != nil {
			return err
		}
		boards := boardsOf(set)
		if boardName != "" {
			b, ok := findBoard(boards, boardName)
			if !ok {
				return fmt.Errorf("unknown board %q", boardName)
			}
			boards = []board{b}
		}
		for _, b := range boards {
			renderBoard(os.Stdout, b)
		}
		return nil
	},
}

var tournamentCmd = &cobra.Command{
	Use:   "tournament <id>",
	Short: "Print the player table of a tournament",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		stats, err := newClient().TournamentStats(ctx, args[0])
		if err != nil {
			return err
		}
		renderTournament(os.Stdout, stats)
		return nil
	},
}

func init() {
	leaderboardsCmd.Flags().BoolVar(&summaryOnly, "summary", false, "print the top-5 dashboard instead of full boards")
	leaderboardsCmd.Flags().StringVar(&boardName, "board", "", "print a single board, e.g. topGoalScorers")
}
