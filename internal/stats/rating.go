package stats

import (
	"sort"
	"time"

	"github.com/skillet-labs/chessdash/internal/domains/entities"
)

// RatingHistory extracts the tracked player's rating after each finished
// game, ordered oldest first. Games without an end time are dropped.
func RatingHistory(games []entities.Game, username string) []entities.RatingPoint {
	sorted := make([]entities.Game, len(games))
	copy(sorted, games)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].EndTime < sorted[j].EndTime
	})

	var history []entities.RatingPoint
	for _, game := range sorted {
		if game.EndTime == 0 {
			continue
		}
		player, _, _, ok := game.Seats(username)
		if !ok {
			continue
		}
		history = append(history, entities.RatingPoint{
			Date:   time.Unix(game.EndTime, 0).Truncate(24 * time.Hour),
			Rating: player.Rating,
		})
	}
	return history
}

// LatestGame returns the most recently finished game, or false when the
// list holds no game involving the tracked player.
func LatestGame(games []entities.Game, username string) (entities.Game, bool) {
	var latest entities.Game
	found := false
	for _, game := range games {
		if _, _, _, ok := game.Seats(username); !ok {
			continue
		}
		if !found || game.EndTime > latest.EndTime {
			latest = game
			found = true
		}
	}
	return latest, found
}
