// Package stats derives descriptive statistics from a player's game list.
// Every function takes the same immutable slice of games and returns an
// independent result, so callers may run them in any order.
package stats

import "github.com/skillet-labs/chessdash/internal/domains/entities"

// lossResults are the raw API result codes that count as a loss. Anything
// outside this set that is not "win" classifies as a draw; the catch-all
// covers stalemate, repetition, insufficient material, agreed draws and
// whatever else the API may emit.
var lossResults = map[string]struct{}{
	"checkmated": {},
	"timeout":    {},
	"resigned":   {},
	"abandoned":  {},
	"lose":       {},
}

// Classify maps a raw result string to an outcome from the tracked
// player's perspective. Total: unrecognized strings classify as a draw.
func Classify(result string) entities.Outcome {
	if result == "win" {
		return entities.OutcomeWin
	}
	if _, ok := lossResults[result]; ok {
		return entities.OutcomeLoss
	}
	return entities.OutcomeDraw
}
