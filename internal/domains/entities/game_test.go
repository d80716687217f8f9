package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeats(t *testing.T) {
	game := Game{
		White: GameSeat{Username: "Skillet", Rating: 1200, Result: "win"},
		Black: GameSeat{Username: "opponent", Rating: 1190, Result: "resigned"},
	}

	player, opponent, isWhite, ok := game.Seats("skillet")
	require.True(t, ok)
	assert.True(t, isWhite)
	assert.Equal(t, "Skillet", player.Username)
	assert.Equal(t, "opponent", opponent.Username)

	player, opponent, isWhite, ok = game.Seats("OPPONENT")
	require.True(t, ok)
	assert.False(t, isWhite)
	assert.Equal(t, "opponent", player.Username)
	assert.Equal(t, "Skillet", opponent.Username)

	_, _, _, ok = game.Seats("stranger")
	assert.False(t, ok)
}

func TestPlayerRecordWinRate(t *testing.T) {
	assert.Zero(t, PlayerRecord{}.WinRate())

	record := PlayerRecord{Wins: 30, Losses: 20, Draws: 10}
	assert.Equal(t, 60, record.TotalGames())
	assert.InDelta(t, 50.0, record.WinRate(), 1e-9)
}
