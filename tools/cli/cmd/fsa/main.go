// Command fsa prints club leaderboards and tournament tables from a
// running API.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	apiURL  string
	token   string
	timeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "fsa",
	Short: "Club football stats from the terminal",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", envOr("FSA_API_URL", "http://localhost:8080"), "API base URL")
	rootCmd.PersistentFlags().StringVar(&token, "token", os.Getenv("FSA_TOKEN"), "bearer token of an approved member")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "request timeout")

	rootCmd.AddCommand(leaderboardsCmd)
	rootCmd.AddCommand(tournamentCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func newClient() *Client {
	return NewClient(apiURL, token, timeout)
}
