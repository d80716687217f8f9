package dtos

import "github.com/skillet-labs/chessdash/internal/domains/entities"

// PlayerStatsResponse mirrors GET /pub/player/{username}/stats. Only the
// per-time-class records are read; everything else the endpoint returns is
// ignored.
type PlayerStatsResponse map[string]TimeClassStats

type TimeClassStats struct {
	Last   RatingSnapshot `json:"last"`
	Best   RatingSnapshot `json:"best"`
	Record RecordCounts   `json:"record"`
}

type RatingSnapshot struct {
	Rating int `json:"rating"`
}

type RecordCounts struct {
	Win  int `json:"win"`
	Loss int `json:"loss"`
	Draw int `json:"draw"`
}

// ArchivesResponse mirrors GET /pub/player/{username}/games/archives.
type ArchivesResponse struct {
	Archives []string `json:"archives"`
}

// ArchiveGamesResponse mirrors one monthly archive.
type ArchiveGamesResponse struct {
	Games []GameRecord `json:"games"`
}

type GameRecord struct {
	White       SeatRecord `json:"white"`
	Black       SeatRecord `json:"black"`
	EndTime     int64      `json:"end_time"`
	Eco         string     `json:"eco"`
	Pgn         string     `json:"pgn"`
	Fen         string     `json:"fen"`
	TimeControl string     `json:"time_control"`
	Url         string     `json:"url"`
}

type SeatRecord struct {
	Username string `json:"username"`
	Rating   int    `json:"rating"`
	Result   string `json:"result"`
}

func PlayerRecordFromStats(resp PlayerStatsResponse, timeClass string) entities.PlayerRecord {
	tc, ok := resp[timeClass]
	if !ok {
		return entities.PlayerRecord{}
	}
	return entities.PlayerRecord{
		CurrentRating: tc.Last.Rating,
		BestRating:    tc.Best.Rating,
		Wins:          tc.Record.Win,
		Losses:        tc.Record.Loss,
		Draws:         tc.Record.Draw,
	}
}

func GamesFromArchive(resp ArchiveGamesResponse) []entities.Game {
	games := make([]entities.Game, 0, len(resp.Games))
	for _, record := range resp.Games {
		games = append(games, GameFromRecord(record))
	}
	return games
}

func GameFromRecord(record GameRecord) entities.Game {
	return entities.Game{
		White: entities.GameSeat{
			Username: record.White.Username,
			Rating:   record.White.Rating,
			Result:   record.White.Result,
		},
		Black: entities.GameSeat{
			Username: record.Black.Username,
			Rating:   record.Black.Rating,
			Result:   record.Black.Result,
		},
		EndTime:     record.EndTime,
		Eco:         record.Eco,
		Pgn:         record.Pgn,
		Fen:         record.Fen,
		TimeControl: record.TimeControl,
		Url:         record.Url,
	}
}
