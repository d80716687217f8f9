// Package chesscom fetches a player's public data from the chess.com
// published-data API. Fetch failures degrade to empty results so a
// transient outage only produces a sparser report.
package chesscom

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/skillet-labs/chessdash/internal/domains/dtos"
	"github.com/skillet-labs/chessdash/internal/domains/entities"
	"github.com/skillet-labs/chessdash/pkg/logging"
)

const defaultBaseUrl = "https://api.chess.com"

const userAgent = "chessdash report generator"

type Client struct {
	http    *http.Client
	baseUrl *url.URL

	// archiveDelay paces sequential archive fetches to respect the API's
	// informal rate limits.
	archiveDelay time.Duration
}

func NewClient(archiveDelay time.Duration) *Client {
	baseUrl, _ := url.Parse(defaultBaseUrl)
	return &Client{
		http:         &http.Client{Timeout: 30 * time.Second},
		baseUrl:      baseUrl,
		archiveDelay: archiveDelay,
	}
}

// NewClientWithBaseUrl is used by tests to point the client at a stub
// server.
func NewClientWithBaseUrl(rawUrl string, archiveDelay time.Duration) (*Client, error) {
	baseUrl, err := url.Parse(rawUrl)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base url: %w", err)
	}
	client := NewClient(archiveDelay)
	client.baseUrl = baseUrl
	return client, nil
}

// FetchPlayerStats returns the per-time-class rating records for a player.
// A failed fetch yields an empty response.
func (client *Client) FetchPlayerStats(ctx context.Context, username string) dtos.PlayerStatsResponse {
	u := client.baseUrl.JoinPath("pub", "player", username, "stats")
	var stats dtos.PlayerStatsResponse
	if err := client.getJson(ctx, u.String(), &stats); err != nil {
		logging.Warn(
			"failed to fetch player stats",
			zap.String("username", username),
			zap.Error(err),
		)
		return dtos.PlayerStatsResponse{}
	}
	return stats
}

// FetchArchives returns the list of monthly archive urls for a player.
func (client *Client) FetchArchives(ctx context.Context, username string) []string {
	u := client.baseUrl.JoinPath("pub", "player", username, "games", "archives")
	var archives dtos.ArchivesResponse
	if err := client.getJson(ctx, u.String(), &archives); err != nil {
		logging.Warn(
			"failed to fetch archive list",
			zap.String("username", username),
			zap.Error(err),
		)
		return nil
	}
	return archives.Archives
}

// FetchArchiveGames returns the games of one monthly archive.
func (client *Client) FetchArchiveGames(ctx context.Context, archiveUrl string) ([]entities.Game, error) {
	var archive dtos.ArchiveGamesResponse
	if err := client.getJson(ctx, archiveUrl, &archive); err != nil {
		return nil, err
	}
	return dtos.GamesFromArchive(archive), nil
}

// FetchAllGames walks every monthly archive sequentially, pausing between
// requests. Archives that fail to fetch are skipped.
func (client *Client) FetchAllGames(ctx context.Context, username string) []entities.Game {
	archives := client.FetchArchives(ctx, username)

	var games []entities.Game
	for _, archiveUrl := range archives {
		select {
		case <-ctx.Done():
			return games
		case <-time.After(client.archiveDelay):
		}
		archiveGames, err := client.FetchArchiveGames(ctx, archiveUrl)
		if err != nil {
			logging.Warn(
				"failed to fetch archive",
				zap.String("archive", archiveUrl),
				zap.Error(err),
			)
			continue
		}
		games = append(games, archiveGames...)
	}
	return games
}

func (client *Client) getJson(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode body: %w", err)
	}
	return nil
}
