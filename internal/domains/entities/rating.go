package entities

import "time"

// RatingPoint is the tracked player's rating after one finished game.
type RatingPoint struct {
	Date   time.Time
	Rating int
}

// PlayerRecord holds the headline numbers from the player stats endpoint
// for a single time class.
type PlayerRecord struct {
	CurrentRating int
	BestRating    int
	Wins          int
	Losses        int
	Draws         int
}

func (r PlayerRecord) TotalGames() int {
	return r.Wins + r.Losses + r.Draws
}

// WinRate is a percentage, 0 when no games are recorded.
func (r PlayerRecord) WinRate() float64 {
	total := r.TotalGames()
	if total == 0 {
		return 0
	}
	return float64(r.Wins) / float64(total) * 100
}
