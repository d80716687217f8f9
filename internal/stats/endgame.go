package stats

import (
	"github.com/notnil/chess"

	"github.com/skillet-labs/chessdash/internal/domains/entities"
)

// winningThreshold is the material edge (in pawns) that marks a position
// as winning or, negated, losing.
const winningThreshold = 3

var pieceValues = map[chess.PieceType]int{
	chess.Pawn:   1,
	chess.Knight: 3,
	chess.Bishop: 3,
	chess.Rook:   5,
	chess.Queen:  9,
	chess.King:   0,
}

// AnalyzeEndgames classifies each game's final position as a winning,
// losing or equal endgame for the tracked player and tallies how those
// positions were resolved. Games with a missing or undecodable final FEN
// are skipped entirely, including from the total.
func AnalyzeEndgames(games []entities.Game, username string) entities.EndgameStats {
	var result entities.EndgameStats
	for _, game := range games {
		if game.Fen == "" {
			continue
		}
		player, _, isWhite, ok := game.Seats(username)
		if !ok {
			continue
		}
		withFen, err := chess.FEN(game.Fen)
		if err != nil {
			continue
		}
		board := chess.NewGame(withFen).Position().Board()

		pieces, queens, whiteMaterial, blackMaterial := census(board)
		if !isEndgame(pieces, queens) {
			continue
		}
		result.Total++

		material := whiteMaterial - blackMaterial
		if !isWhite {
			material = -material
		}

		outcome := Classify(player.Result)
		switch {
		case material >= winningThreshold:
			switch outcome {
			case entities.OutcomeWin:
				result.WinningConverted++
			case entities.OutcomeDraw:
				result.WinningDrawn++
			default:
				result.WinningLost++
			}
		case material <= -winningThreshold:
			if outcome == entities.OutcomeLoss {
				result.LosingLost++
			} else {
				result.LosingSaved++
			}
		default:
			switch outcome {
			case entities.OutcomeWin:
				result.EqualWon++
			case entities.OutcomeDraw:
				result.EqualDrawn++
			default:
				result.EqualLost++
			}
		}
	}
	return result
}

func census(board *chess.Board) (pieces, queens, whiteMaterial, blackMaterial int) {
	for _, piece := range board.SquareMap() {
		pieces++
		if piece.Type() == chess.Queen {
			queens++
		}
		if piece.Color() == chess.White {
			whiteMaterial += pieceValues[piece.Type()]
		} else {
			blackMaterial += pieceValues[piece.Type()]
		}
	}
	return pieces, queens, whiteMaterial, blackMaterial
}

// isEndgame is a heuristic: few pieces left, or queens off the board with
// a somewhat reduced count.
func isEndgame(pieces, queens int) bool {
	return pieces <= 10 || (queens == 0 && pieces <= 16)
}
