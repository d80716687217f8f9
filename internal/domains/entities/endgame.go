package entities

// EndgameStats tallies how endgame positions were resolved, bucketed by
// the material situation the tracked player reached them with. A losing
// position that ends in a draw counts as saved, so the losing branch has
// two buckets where the others have three.
type EndgameStats struct {
	Total int

	WinningConverted int
	WinningDrawn     int
	WinningLost      int

	LosingSaved int
	LosingLost  int

	EqualWon   int
	EqualDrawn int
	EqualLost  int
}

func (s EndgameStats) WinningTotal() int {
	return s.WinningConverted + s.WinningDrawn + s.WinningLost
}

func (s EndgameStats) LosingTotal() int {
	return s.LosingSaved + s.LosingLost
}

func (s EndgameStats) EqualTotal() int {
	return s.EqualWon + s.EqualDrawn + s.EqualLost
}

// ConversionRate is the percentage of winning endgames actually won,
// 0 when no winning endgames were reached.
func (s EndgameStats) ConversionRate() float64 {
	return percentage(s.WinningConverted, s.WinningTotal())
}

// SaveRate is the percentage of losing endgames held to a draw or win.
func (s EndgameStats) SaveRate() float64 {
	return percentage(s.LosingSaved, s.LosingTotal())
}

// EqualWinRate is the percentage of equal endgames won.
func (s EndgameStats) EqualWinRate() float64 {
	return percentage(s.EqualWon, s.EqualTotal())
}

func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
