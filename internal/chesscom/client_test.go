package chesscom

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	mux.HandleFunc("/pub/player/skillet/stats", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"chess_rapid": {
				"last": {"rating": 1200},
				"best": {"rating": 1250},
				"record": {"win": 30, "loss": 20, "draw": 10}
			}
		}`)
	})
	mux.HandleFunc("/pub/player/skillet/games/archives", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"archives": [%q, %q, %q]}`,
			server.URL+"/archive/2024/01",
			server.URL+"/archive/2024/02",
			server.URL+"/broken",
		)
	})
	mux.HandleFunc("/archive/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"games": [{
			"white": {"username": "skillet", "rating": 1200, "result": "win"},
			"black": {"username": "opponent", "rating": 1190, "result": "resigned"},
			"end_time": 1700000000,
			"eco": "https://www.chess.com/openings/Vienna-Game",
			"time_control": "600"
		}]}`)
	})
	mux.HandleFunc("/broken", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})
	return server
}

func TestFetchPlayerStats(t *testing.T) {
	server := newTestServer(t)
	client, err := NewClientWithBaseUrl(server.URL, 0)
	require.NoError(t, err)

	stats := client.FetchPlayerStats(context.Background(), "skillet")

	require.Contains(t, stats, "chess_rapid")
	assert.Equal(t, 1200, stats["chess_rapid"].Last.Rating)
	assert.Equal(t, 30, stats["chess_rapid"].Record.Win)
}

func TestFetchPlayerStatsDegradesToEmpty(t *testing.T) {
	server := newTestServer(t)
	client, err := NewClientWithBaseUrl(server.URL, 0)
	require.NoError(t, err)

	stats := client.FetchPlayerStats(context.Background(), "unknown")

	assert.Empty(t, stats)
}

func TestFetchAllGamesSkipsFailedArchives(t *testing.T) {
	server := newTestServer(t)
	client, err := NewClientWithBaseUrl(server.URL, 0)
	require.NoError(t, err)

	games := client.FetchAllGames(context.Background(), "skillet")

	// Two healthy archives of one game each; the broken one is skipped.
	require.Len(t, games, 2)
	assert.Equal(t, "skillet", games[0].White.Username)
	assert.Equal(t, int64(1700000000), games[0].EndTime)
}

func TestFetchAllGamesNoArchives(t *testing.T) {
	server := newTestServer(t)
	client, err := NewClientWithBaseUrl(server.URL, 0)
	require.NoError(t, err)

	games := client.FetchAllGames(context.Background(), "unknown")

	assert.Empty(t, games)
}

func TestFetchAllGamesHonorsContext(t *testing.T) {
	server := newTestServer(t)
	client, err := NewClientWithBaseUrl(server.URL, 0)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	games := client.FetchAllGames(ctx, "skillet")

	assert.Empty(t, games)
}
