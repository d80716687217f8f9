package stats

import (
	"sort"
	"strings"

	"github.com/skillet-labs/chessdash/internal/domains/entities"
)

// minOpeningGames filters out openings seen too rarely to rank.
const minOpeningGames = 3

type openingTally struct {
	wins   int
	losses int
	draws  int
	eco    string
}

// AnalyzeOpenings groups games by opening name, computes a win rate per
// opening, and returns the top and bottom three by win rate. Openings with
// fewer than three games are ignored, and the worst list stays empty until
// at least three openings qualify so a tiny pool cannot fill both lists.
// Ties keep first-appearance order.
func AnalyzeOpenings(games []entities.Game, username string) (best, worst []entities.OpeningPerformance) {
	tallies := make(map[string]*openingTally)
	var order []string

	for _, game := range games {
		player, _, _, ok := game.Seats(username)
		if !ok || game.Eco == "" {
			continue
		}
		name := openingName(game.Eco)
		tally, ok := tallies[name]
		if !ok {
			tally = &openingTally{}
			tallies[name] = tally
			order = append(order, name)
		}
		switch Classify(player.Result) {
		case entities.OutcomeWin:
			tally.wins++
		case entities.OutcomeLoss:
			tally.losses++
		default:
			tally.draws++
		}
		tally.eco = ecoCode(game.Pgn)
	}

	var openings []entities.OpeningPerformance
	for _, name := range order {
		tally := tallies[name]
		total := tally.wins + tally.losses + tally.draws
		if total < minOpeningGames {
			continue
		}
		openings = append(openings, entities.OpeningPerformance{
			Name:    name,
			Eco:     tally.eco,
			Wins:    tally.wins,
			Losses:  tally.losses,
			Draws:   tally.draws,
			Total:   total,
			WinRate: float64(tally.wins) / float64(total) * 100,
		})
	}

	sort.SliceStable(openings, func(i, j int) bool {
		return openings[i].WinRate > openings[j].WinRate
	})

	if len(openings) < minOpeningGames {
		return openings, nil
	}
	return openings[:3], openings[len(openings)-3:]
}

// openingName derives a display name from the opening URL slug, e.g.
// ".../openings/Sicilian-Defense" becomes "Sicilian Defense".
func openingName(ecoUrl string) string {
	segments := strings.Split(ecoUrl, "/")
	return strings.ReplaceAll(segments[len(segments)-1], "-", " ")
}

// ecoCode pulls the ECO tag value out of the PGN header block, empty when
// the tag is absent.
func ecoCode(pgn string) string {
	const tag = `[ECO "`
	start := strings.Index(pgn, tag)
	if start < 0 {
		return ""
	}
	rest := pgn[start+len(tag):]
	end := strings.Index(rest, `"`)
	if end < 0 {
		return ""
	}
	return rest[:end]
}
