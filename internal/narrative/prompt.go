package narrative

import (
	"fmt"
	"strings"

	"github.com/skillet-labs/chessdash/internal/domains/entities"
)

func buildPrompt(game entities.Game, username string) string {
	player, opponent, isWhite, ok := game.Seats(username)
	if !ok {
		player, opponent = game.White, game.Black
		isWhite = true
	}
	color := "White"
	if !isWhite {
		color = "Black"
	}
	pgn := game.Pgn
	if pgn == "" {
		pgn = "No PGN available"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are a chess coach analyzing a game for a student. Provide a detailed but accessible analysis.\n\n")
	fmt.Fprintf(&b, "Player: %s (playing as %s, rated %d)\n", username, color, player.Rating)
	fmt.Fprintf(&b, "Opponent: %s (rated %d)\n", opponent.Username, opponent.Rating)
	fmt.Fprintf(&b, "Result: %s\n", player.Result)
	fmt.Fprintf(&b, "Time Control: %s\n\n", game.TimeControl)
	fmt.Fprintf(&b, "PGN:\n%s\n\n", pgn)
	b.WriteString(`Cover, in order, each as a short titled section of 2-3 sentences:
- Opening Assessment: the opening and any inaccuracies.
- Critical Moment: THE key turning point, with specific moves like "After 15. Nxe5...".
- Tactical Opportunities: missed tactics or nice combinations.
- Endgame Notes: how the endgame was handled, if one was reached.
- Key Lesson: one memorable, actionable takeaway.

Be specific about move numbers. Use chess notation when referencing moves.`)
	return b.String()
}
