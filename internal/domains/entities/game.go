package entities

import "strings"

// GameSeat is one side of a finished game as reported by the archive API.
type GameSeat struct {
	Username string
	Rating   int
	Result   string
}

// Game is a normalized completed game pulled from a monthly archive.
type Game struct {
	White       GameSeat
	Black       GameSeat
	EndTime     int64
	Eco         string
	Pgn         string
	Fen         string
	TimeControl string
	Url         string
}

// Seats resolves which seat belongs to the tracked player. The second
// return is the opponent seat. ok is false when neither seat matches the
// username; such games carry no stats for the tracked player.
func (g Game) Seats(username string) (player, opponent GameSeat, isWhite, ok bool) {
	switch {
	case strings.EqualFold(g.White.Username, username):
		return g.White, g.Black, true, true
	case strings.EqualFold(g.Black.Username, username):
		return g.Black, g.White, false, true
	}
	return GameSeat{}, GameSeat{}, false, false
}
