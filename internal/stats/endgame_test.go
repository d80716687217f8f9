package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skillet-labs/chessdash/internal/domains/entities"
)

const (
	// White queen against a bare king: 3 pieces, +9 for White.
	queenUpFen = "4k3/8/8/8/8/8/8/3QK3 w - - 0 1"
	// Mirror image, -9 for White.
	queenDownFen = "3qk3/8/8/8/8/8/8/4K3 w - - 0 1"
	// Kings only.
	bareKingsFen = "4k3/8/8/8/8/8/8/4K3 w - - 0 1"
	// Full starting position, clearly not an endgame.
	startFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	// 16 pieces, no queens: inside the queenless endgame bound.
	queenlessFen = "rnb1kbnr/pppppppp/8/8/8/8/8/4K3 w - - 0 1"
)

func endgameGame(asWhite bool, result, fen string) entities.Game {
	game := newGame(asWhite, result, 100, 1000)
	game.Fen = fen
	return game
}

func TestAnalyzeEndgamesWinningConverted(t *testing.T) {
	games := []entities.Game{endgameGame(true, "win", queenUpFen)}

	result := AnalyzeEndgames(games, trackedPlayer)

	assert.Equal(t, 1, result.Total)
	assert.Equal(t, 1, result.WinningConverted)
	assert.Equal(t, entities.EndgameStats{Total: 1, WinningConverted: 1}, result)
}

func TestAnalyzeEndgamesBuckets(t *testing.T) {
	tests := []struct {
		name    string
		asWhite bool
		result  string
		fen     string
		want    entities.EndgameStats
	}{
		{
			name: "winning drawn", asWhite: true, result: "stalemate", fen: queenUpFen,
			want: entities.EndgameStats{Total: 1, WinningDrawn: 1},
		},
		{
			name: "winning lost", asWhite: true, result: "timeout", fen: queenUpFen,
			want: entities.EndgameStats{Total: 1, WinningLost: 1},
		},
		{
			name: "losing drawn counts as saved", asWhite: true, result: "stalemate", fen: queenDownFen,
			want: entities.EndgameStats{Total: 1, LosingSaved: 1},
		},
		{
			name: "losing won counts as saved", asWhite: true, result: "win", fen: queenDownFen,
			want: entities.EndgameStats{Total: 1, LosingSaved: 1},
		},
		{
			name: "losing lost", asWhite: true, result: "resigned", fen: queenDownFen,
			want: entities.EndgameStats{Total: 1, LosingLost: 1},
		},
		{
			name: "equal won", asWhite: true, result: "win", fen: bareKingsFen,
			want: entities.EndgameStats{Total: 1, EqualWon: 1},
		},
		{
			name: "equal drawn", asWhite: true, result: "agreed", fen: bareKingsFen,
			want: entities.EndgameStats{Total: 1, EqualDrawn: 1},
		},
		{
			name: "equal lost", asWhite: true, result: "abandoned", fen: bareKingsFen,
			want: entities.EndgameStats{Total: 1, EqualLost: 1},
		},
		{
			// The perspective flips the material sign: Black is up a
			// queen in queenDownFen.
			name: "black perspective", asWhite: false, result: "win", fen: queenDownFen,
			want: entities.EndgameStats{Total: 1, WinningConverted: 1},
		},
		{
			name: "queenless sixteen pieces is an endgame", asWhite: true, result: "win", fen: queenlessFen,
			want: entities.EndgameStats{Total: 1, LosingSaved: 1},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			games := []entities.Game{endgameGame(test.asWhite, test.result, test.fen)}
			assert.Equal(t, test.want, AnalyzeEndgames(games, trackedPlayer))
		})
	}
}

func TestAnalyzeEndgamesSkips(t *testing.T) {
	games := []entities.Game{
		endgameGame(true, "win", ""),          // no final position
		endgameGame(true, "win", "not a fen"), // undecodable
		endgameGame(true, "win", startFen),    // not an endgame
	}

	assert.Equal(t, entities.EndgameStats{}, AnalyzeEndgames(games, trackedPlayer))
}

func TestEndgameRatesGuardZeroDenominators(t *testing.T) {
	var empty entities.EndgameStats
	assert.Zero(t, empty.ConversionRate())
	assert.Zero(t, empty.SaveRate())
	assert.Zero(t, empty.EqualWinRate())

	full := entities.EndgameStats{
		WinningConverted: 3, WinningDrawn: 1, WinningLost: 0,
		LosingSaved: 1, LosingLost: 3,
		EqualWon: 1, EqualDrawn: 1, EqualLost: 2,
	}
	assert.InDelta(t, 75.0, full.ConversionRate(), 1e-9)
	assert.InDelta(t, 25.0, full.SaveRate(), 1e-9)
	assert.InDelta(t, 25.0, full.EqualWinRate(), 1e-9)
}
