package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/clubstats/football-stats-api/internal/models"
)

// Client reads the /api/v1 endpoints.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewClient(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: timeout},
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// get fetches path and decodes the envelope's data into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1"+path, nil)
	if err != nil {
		return err
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("%s: unexpected response: %w", resp.Status, err)
	}
	if resp.StatusCode != http.StatusOK {
		if env.Error != "" {
			return fmt.Errorf("%s: %s", resp.Status, env.Error)
		}
		return fmt.Errorf("%s", resp.Status)
	}
	if !env.Success {
		return fmt.Errorf("request was not successful")
	}
	return json.Unmarshal(env.Data, out)
}

func (c *Client) Leaderboards(ctx context.Context) (*models.LeaderboardSet, error) {
	var set models.LeaderboardSet
	if err := c.get(ctx, "/stats/leaderboards", &set); err != nil {
		return nil, err
	}
	return &set, nil
}

func (c *Client) Dashboard(ctx context.Context) (*models.LeaderboardDashboard, error) {
	var d models.LeaderboardDashboard
	if err := c.get(ctx, "/stats/leaderboards/summary", &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *Client) TournamentStats(ctx context.Context, id string) (*models.TournamentStats, error) {
	var stats models.TournamentStats
	if err := c.get(ctx, "/tournaments/"+id+"/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
