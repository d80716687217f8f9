// Package report renders the computed statistics into static documents.
// It never talks to the network; everything it needs arrives in Data.
package report

import (
	"strings"
	"time"

	"gopkg.in/freeeve/pgn.v1"

	"github.com/skillet-labs/chessdash/internal/domains/entities"
	"github.com/skillet-labs/chessdash/internal/stats"
	"github.com/skillet-labs/chessdash/pkg/utils"
)

// chartWindow caps how many rating points feed the trend chart.
const chartWindow = 30

// openingNameLimit keeps opening card titles from overflowing their card.
const openingNameLimit = 28

// Data is the full precomputed payload a renderer needs. Both the HTML
// and the Markdown renderer consume the same Data.
type Data struct {
	Username    string
	GeneratedAt time.Time
	RunId       string

	Record entities.PlayerRecord
	Streak entities.Streak

	// RatingHistory holds the most recent points, oldest first.
	RatingHistory []entities.RatingPoint

	BestOpenings  []OpeningCard
	WorstOpenings []OpeningCard

	LastGame *GameSummary
	Analysis string

	Endgames entities.EndgameStats
}

// OpeningCard is one best/worst opening entry with its illustrative board.
type OpeningCard struct {
	Name     string
	Eco      string
	Wins     int
	Losses   int
	Draws    int
	Total    int
	WinRate  float64
	ImageUrl string
}

// GameSummary describes the most recent game for the report header.
type GameSummary struct {
	ResultLabel    string
	ResultClass    string
	Color          string
	Opponent       string
	OpponentRating int
	SpeedLabel     string
	MoveCount      int
	Url            string
}

// Build runs the analyzers over the game list and assembles the render
// payload. An empty game list produces a Data that renders to a sparse but
// valid document.
func Build(
	username string,
	record entities.PlayerRecord,
	games []entities.Game,
	analysis string,
	runId string,
	generatedAt time.Time,
) Data {
	history := stats.RatingHistory(games, username)
	if len(history) > chartWindow {
		history = history[len(history)-chartWindow:]
	}

	best, worst := stats.AnalyzeOpenings(games, username)

	data := Data{
		Username:      username,
		GeneratedAt:   generatedAt,
		RunId:         runId,
		Record:        record,
		Streak:        stats.CurrentStreak(games, username),
		RatingHistory: history,
		BestOpenings:  openingCards(best),
		WorstOpenings: openingCards(worst),
		Analysis:      analysis,
		Endgames:      stats.AnalyzeEndgames(games, username),
	}
	if last, ok := stats.LatestGame(games, username); ok {
		data.LastGame = summarize(last, username)
	}
	return data
}

// StreakClass is the css/badge class for the current streak.
func (d Data) StreakClass() string {
	switch d.Streak.Type {
	case entities.OutcomeWin:
		return "win"
	case entities.OutcomeLoss:
		return "loss"
	default:
		return "draw"
	}
}

func openingCards(openings []entities.OpeningPerformance) []OpeningCard {
	cards := make([]OpeningCard, 0, len(openings))
	for _, opening := range openings {
		name := opening.Name
		if len(name) > openingNameLimit {
			name = name[:openingNameLimit]
		}
		cards = append(cards, OpeningCard{
			Name:     name,
			Eco:      opening.Eco,
			Wins:     opening.Wins,
			Losses:   opening.Losses,
			Draws:    opening.Draws,
			Total:    opening.Total,
			WinRate:  opening.WinRate,
			ImageUrl: BoardImageUrl(BoardForOpening(opening.Name)),
		})
	}
	return cards
}

func summarize(game entities.Game, username string) *GameSummary {
	player, opponent, isWhite, ok := game.Seats(username)
	if !ok {
		return nil
	}
	color := "White"
	if !isWhite {
		color = "Black"
	}

	summary := &GameSummary{
		Color:          color,
		Opponent:       opponent.Username,
		OpponentRating: opponent.Rating,
		SpeedLabel:     utils.TimeControlLabel(game.TimeControl),
		MoveCount:      moveCount(game.Pgn),
		Url:            game.Url,
	}
	switch stats.Classify(player.Result) {
	case entities.OutcomeWin:
		summary.ResultLabel, summary.ResultClass = "Won", "win"
	case entities.OutcomeLoss:
		summary.ResultLabel, summary.ResultClass = "Lost", "loss"
	default:
		summary.ResultLabel, summary.ResultClass = "Drew", "draw"
	}
	return summary
}

// moveCount counts full moves in the PGN, 0 when the text does not parse.
func moveCount(pgnText string) int {
	if pgnText == "" {
		return 0
	}
	scanner := pgn.NewPGNScanner(strings.NewReader(pgnText))
	if !scanner.Next() {
		return 0
	}
	game, err := scanner.Scan()
	if err != nil || game == nil {
		return 0
	}
	return (len(game.Moves) + 1) / 2
}
