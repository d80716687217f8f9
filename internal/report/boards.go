package report

import (
	"net/url"
	"strings"
)

// startingPositionFen is the fallback board shown when no opening in the
// table matches.
const startingPositionFen = "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1"

type openingBoard struct {
	name string
	fen  string
}

// openingBoards maps lowercased opening names to the position a few moves
// in, used purely as card artwork. Order matters: lookups scan top to
// bottom so ambiguous names resolve deterministically.
var openingBoards = []openingBoard{
	{"kings pawn opening", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"},
	{"queens pawn opening", "rnbqkbnr/pppppppp/8/8/3P4/8/PPP1PPPP/RNBQKBNR b KQkq d3 0 1"},
	{"sicilian defense", "rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2"},
	{"french defense", "rnbqkbnr/pppp1ppp/4p3/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2"},
	{"caro kann defense", "rnbqkbnr/pp1ppppp/2p5/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2"},
	{"italian game", "r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R b KQkq - 3 3"},
	{"ruy lopez", "r1bqkbnr/pppp1ppp/2n5/1B2p3/4P3/5N2/PPPP1PPP/RNBQK2R b KQkq - 3 3"},
	{"scotch game", "r1bqkbnr/pppp1ppp/2n5/4p3/3PP3/5N2/PPP2PPP/RNBQKB1R b KQkq d3 0 3"},
	{"vienna game", "rnbqkbnr/pppp1ppp/8/4p3/4P3/2N5/PPPP1PPP/R1BQKBNR b KQkq - 1 2"},
	{"four knights game", "r1bqkb1r/pppp1ppp/2n2n2/4p3/4P3/2N2N2/PPPP1PPP/R1BQKB1R w KQkq - 4 4"},
	{"pirc defense", "rnbqkbnr/ppp1pppp/3p4/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2"},
	{"scandinavian defense", "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR b KQkq - 0 2"},
	{"kings indian defense", "rnbqkb1r/pppppp1p/5np1/8/2PP4/8/PP2PPPP/RNBQKBNR w KQkq - 0 3"},
	{"queens gambit", "rnbqkbnr/ppp1pppp/8/3p4/2PP4/8/PP2PPPP/RNBQKBNR b KQkq c3 0 2"},
	{"london system", "rnbqkbnr/ppp1pppp/8/3p4/3P1B2/8/PPP1PPPP/RN1QKBNR b KQkq - 1 2"},
	{"english opening", "rnbqkbnr/pppppppp/8/8/2P5/8/PP1PPPPP/RNBQKBNR b KQkq c3 0 1"},
	{"philidor defense", "rnbqkbnr/ppp2ppp/3p4/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 0 3"},
	{"petrov defense", "rnbqkb1r/pppp1ppp/5n2/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3"},
	{"three knights opening", "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/2N2N2/PPPP1PPP/R1BQKB1R b KQkq - 3 3"},
	{"bishops opening", "rnbqkbnr/pppp1ppp/8/4p3/2B1P3/8/PPPP1PPP/RNBQK1NR b KQkq - 1 2"},
	{"center game", "rnbqkbnr/pppp1ppp/8/4p3/3PP3/8/PPP2PPP/RNBQKBNR b KQkq d3 0 2"},
	{"alekhine defense", "rnbqkb1r/pppppppp/5n2/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 1 2"},
}

// BoardForOpening finds the best illustrative position for an opening
// name: exact containment either way first, then any shared word longer
// than three characters, then the starting position.
func BoardForOpening(openingName string) string {
	name := strings.ToLower(openingName)

	for _, board := range openingBoards {
		if strings.Contains(name, board.name) || strings.Contains(board.name, name) {
			return board.fen
		}
	}

	words := strings.Fields(name)
	for _, board := range openingBoards {
		keyWords := strings.Fields(board.name)
		for _, word := range words {
			if len(word) <= 3 {
				continue
			}
			for _, keyWord := range keyWords {
				if word == keyWord {
					return board.fen
				}
			}
		}
	}

	return startingPositionFen
}

// BoardImageUrl builds a lichess board image url for a FEN.
func BoardImageUrl(fen string) string {
	return "https://lichess1.org/export/fen.gif?fen=" +
		url.QueryEscape(fen) +
		"&color=white&theme=brown&piece=cburnett"
}
