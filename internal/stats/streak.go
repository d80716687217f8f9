package stats

import (
	"sort"

	"github.com/skillet-labs/chessdash/internal/domains/entities"
)

// CurrentStreak reports the run of identical outcomes ending at the most
// recent game. This is a prefix run over the newest-first order, not the
// longest run anywhere in the history. An empty game list yields a
// zero-count streak.
func CurrentStreak(games []entities.Game, username string) entities.Streak {
	sorted := make([]entities.Game, len(games))
	copy(sorted, games)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].EndTime > sorted[j].EndTime
	})

	streak := entities.Streak{}
	for _, game := range sorted {
		player, _, _, ok := game.Seats(username)
		if !ok {
			continue
		}
		outcome := Classify(player.Result)
		if streak.Count == 0 {
			streak.Type = outcome
			streak.Count = 1
			continue
		}
		if outcome != streak.Type {
			break
		}
		streak.Count++
	}
	return streak
}
