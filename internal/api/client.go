// Package api is the HTTP client for the remote score ledger.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pefman/card-rpg/internal/score"
)

var httpClient = &http.Client{Timeout: 8 * time.Second}

// Config holds ledger API configuration.
type Config struct {
	BaseURL string
}

// Client talks to the ledger service. It implements score.Ledger.
type Client struct {
	config Config
}

func NewClient(baseURL string) *Client {
	return &Client{
		config: Config{BaseURL: baseURL},
	}
}

func (c *Client) apiGet(ctx context.Context, path string, out interface{}) error {
	base := strings.TrimRight(c.config.BaseURL, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ledger status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) apiPost(ctx context.Context, path string, body interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	base := strings.TrimRight(c.config.BaseURL, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, base+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("ledger status %d", resp.StatusCode)
	}
	return nil
}

// MyScore fetches one player's record. Unknown players come back as 0/0
// from the service itself.
func (c *Client) MyScore(ctx context.Context, player string) (int, int, error) {
	var res struct {
		Wins   int `json:"wins"`
		Losses int `json:"losses"`
	}
	if err := c.apiGet(ctx, "/api/scores/"+url.PathEscape(player), &res); err != nil {
		return 0, 0, err
	}
	return res.Wins, res.Losses, nil
}

// AllScores fetches the full leaderboard, unordered.
func (c *Client) AllScores(ctx context.Context) ([]score.Entry, error) {
	var res []score.Entry
	if err := c.apiGet(ctx, "/api/scores", &res); err != nil {
		return nil, err
	}
	return res, nil
}

// RecordGame appends one finished game to the ledger.
func (c *Client) RecordGame(ctx context.Context, player string, won bool) error {
	body := struct {
		Player string `json:"player"`
		Won    bool   `json:"won"`
	}{Player: player, Won: won}
	return c.apiPost(ctx, "/api/games", body)
}
