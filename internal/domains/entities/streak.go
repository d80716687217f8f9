package entities

import "fmt"

// Streak is the run of identical outcomes ending at the most recent game.
type Streak struct {
	Type  Outcome
	Count int
}

// Label renders the badge text, e.g. "2 Wins" or "1 Loss".
func (s Streak) Label() string {
	if s.Count == 0 {
		return "No games"
	}
	var noun string
	switch s.Type {
	case OutcomeWin:
		noun = "Win"
	case OutcomeLoss:
		noun = "Loss"
	default:
		noun = "Draw"
	}
	if s.Count > 1 {
		if s.Type == OutcomeLoss {
			noun += "es"
		} else {
			noun += "s"
		}
	}
	return fmt.Sprintf("%d %s", s.Count, noun)
}
